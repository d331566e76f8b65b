// Package sat implements the CNF-SAT algorithm library described by the
// instance model, kernelization engine, and search algorithms: DPLL and
// CDCL, Monien-Speckenmeyer splitting, the Paturi-Pudlak-Zane randomized
// algorithm, and the local search family (GSAT, WalkSAT, Schoening,
// Dantsin). The package is single-threaded and purely CPU-bound; every
// reduction returns a new Instance rather than mutating one in place.
package sat

import (
	"sort"

	"github.com/ashgrove-vane/satkernel/core"
)

// Instance is the canonical CNF container: an unordered collection of
// clauses over variables in [1..NumVariables] once normalized. Clause
// iteration order is preserved (insertion order) since it is significant
// for deterministic tie-breaks within a single solver run. Instances are
// immutable from a solver's point of view; every reduction yields a new
// value.
type Instance struct {
	clauses   [][]core.Literal
	numVars   int
	bitMatrix [][]byte // lazily computed, cached once; nil until computed
}

// FromClauses builds an Instance from raw clause slices. It asserts
// invariant 1 (every literal is non-zero) and invariant 4 without the
// tautology-removal half (no clause may contain the same literal twice;
// complementary pairs are permitted here and removed later by the
// kernelizer). It does not enforce variable contiguity; call Normalize
// for that. All structural violations found are aggregated into a single
// returned error.
func FromClauses(clauses [][]int) (*Instance, error) {
	var violations []string
	out := make([][]core.Literal, len(clauses))
	maxVar := 0

	for i, clause := range clauses {
		seen := make(map[core.Literal]bool, len(clause))
		lits := make([]core.Literal, 0, len(clause))
		for _, raw := range clause {
			if raw == 0 {
				violations = append(violations, "clause contains a zero literal")
				continue
			}
			lit := core.Literal(raw)
			if seen[lit] {
				violations = append(violations, "clause contains a duplicate literal")
				continue
			}
			seen[lit] = true
			lits = append(lits, lit)
			if v := int(lit.Var()); v > maxVar {
				maxVar = v
			}
		}
		out[i] = lits
	}

	if len(violations) > 0 {
		return nil, core.CombineValidation("FromClauses", violations...)
	}

	return &Instance{clauses: out, numVars: maxVar}, nil
}

// FromBitMatrix builds an Instance from an m x 2n byte grid, per §6: each
// byte must be 0 or 1, the grid must have an even number of columns, and
// row i's set bits are exactly the literals of clause i (column 2(v-1) is
// positive v, column 2(v-1)+1 is negative v).
func FromBitMatrix(matrix [][]byte) (*Instance, error) {
	if len(matrix) == 0 {
		return &Instance{}, nil
	}
	width := len(matrix[0])
	if width%2 != 0 {
		return nil, core.NewError(core.InvalidInstance, "FromBitMatrix", "bit matrix must have an even number of columns")
	}
	for _, row := range matrix {
		if len(row) != width {
			return nil, core.NewError(core.InvalidInstance, "FromBitMatrix", "bit matrix rows must have equal length")
		}
		for _, b := range row {
			if b != 0 && b != 1 {
				return nil, core.NewError(core.InvalidInstance, "FromBitMatrix", "bit matrix entries must be 0 or 1")
			}
		}
	}

	n := width / 2
	clauses := make([][]int, len(matrix))
	for i, row := range matrix {
		var clause []int
		for v := 1; v <= n; v++ {
			if row[2*(v-1)] == 1 {
				clause = append(clause, v)
			}
			if row[2*(v-1)+1] == 1 {
				clause = append(clause, -v)
			}
		}
		clauses[i] = clause
	}

	inst, err := FromClauses(clauses)
	if err != nil {
		return nil, err
	}
	// n is authoritative here (the bit matrix names it explicitly), even
	// if the highest-indexed column happens to be all zero in every row.
	if n > inst.numVars {
		inst.numVars = n
	}
	return inst, nil
}

// Clauses returns the clause list in insertion order. Each clause is
// returned as a fresh []int so callers cannot mutate the Instance's
// internal state.
func (in *Instance) Clauses() [][]int {
	out := make([][]int, len(in.clauses))
	for i, clause := range in.clauses {
		row := make([]int, len(clause))
		for j, lit := range clause {
			row[j] = int(lit)
		}
		out[i] = row
	}
	return out
}

// NumClauses returns the number of clauses in the instance.
func (in *Instance) NumClauses() int { return len(in.clauses) }

// NumVariables returns n. For an instance built by FromClauses (and so by
// Simplify and Normalize) it is the highest-indexed variable referenced by
// any clause (0 for the empty instance). FromBitMatrix sets it from the
// matrix width, and the kernelizer's tautology, subsumption and merge
// rules keep the input's n even when a variable no longer occurs.
func (in *Instance) NumVariables() int { return in.numVars }

// AllVariables returns the sorted set of variables actually referenced by
// some clause. For a normalized instance this is exactly [1..n]; for a
// non-normalized one it may contain gaps.
func (in *Instance) AllVariables() []int {
	seen := make(map[int]bool)
	for _, clause := range in.clauses {
		for _, lit := range clause {
			seen[int(lit.Var())] = true
		}
	}
	vars := make([]int, 0, len(seen))
	for v := range seen {
		vars = append(vars, v)
	}
	sort.Ints(vars)
	return vars
}

// HasEmptyClause reports whether any clause is empty (always false, so the
// instance is unsatisfiable).
func (in *Instance) HasEmptyClause() bool {
	for _, clause := range in.clauses {
		if len(clause) == 0 {
			return true
		}
	}
	return false
}

// LongestClauseLength returns the length of the longest clause, or 0 for
// the empty instance.
func (in *Instance) LongestClauseLength() int {
	longest := 0
	for _, clause := range in.clauses {
		if len(clause) > longest {
			longest = len(clause)
		}
	}
	return longest
}

// ShortestClauseLength returns the length of the shortest clause, or 0
// for the empty instance (no clauses).
func (in *Instance) ShortestClauseLength() int {
	shortest := -1
	for _, clause := range in.clauses {
		if shortest == -1 || len(clause) < shortest {
			shortest = len(clause)
		}
	}
	if shortest == -1 {
		return 0
	}
	return shortest
}

// litsToInts converts an internal clause to a plain []int, used by code in
// this package that needs one clause without going through the
// defensive-copy Clauses() accessor.
func litsToInts(clause []core.Literal) []int {
	out := make([]int, len(clause))
	for i, lit := range clause {
		out[i] = int(lit)
	}
	return out
}

// clauseOf returns the internal literal slice for clause index i without
// copying; callers must treat it as read-only.
func (in *Instance) clauseOf(i int) []core.Literal { return in.clauses[i] }

// Normalize relabels the variables of the instance into the contiguous
// range [1..n'], preserving polarity and first-occurrence order, per
// normalize_clauses in the data model. It returns a new Instance; the
// receiver is left untouched.
func (in *Instance) Normalize() *Instance {
	varMap := make(map[int]int)
	next := 1

	clauses := make([][]int, len(in.clauses))
	for i, clause := range in.clauses {
		row := make([]int, len(clause))
		for j, lit := range clause {
			v := int(lit.Var())
			mapped, ok := varMap[v]
			if !ok {
				mapped = next
				varMap[v] = mapped
				next++
			}
			if lit.Positive() {
				row[j] = mapped
			} else {
				row[j] = -mapped
			}
		}
		clauses[i] = row
	}

	out, err := FromClauses(clauses)
	if err != nil {
		// Normalize operates on an already-validated Instance: the
		// relabeling is a bijection on variables and cannot introduce a
		// zero literal or a fresh duplicate within a clause.
		panic(err)
	}
	return out
}
