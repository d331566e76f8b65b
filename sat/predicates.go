package sat

import (
	"math"

	"github.com/ashgrove-vane/satkernel/core"
)

// PureLiteral returns any literal whose variable occurs in only one
// polarity across all clauses, preferring the positive literal when a
// variable's only occurrence could be reported either way (it can't be:
// a variable is pure in exactly one polarity, never both). Returns 0 if
// no pure literal exists, or if the instance has no variables.
func PureLiteral(in *Instance) int {
	if in.numVars == 0 {
		return 0
	}

	positive := make(map[int]bool)
	negative := make(map[int]bool)
	for _, clause := range in.clauses {
		for _, lit := range clause {
			if lit.Positive() {
				positive[int(lit.Var())] = true
			} else {
				negative[int(lit.Var())] = true
			}
		}
	}

	for _, v := range in.AllVariables() {
		hasPos, hasNeg := positive[v], negative[v]
		if hasPos && !hasNeg {
			return v
		}
		if hasNeg && !hasPos {
			return -v
		}
	}
	return 0
}

// AutarkAssignment reports whether the partial assignment is self-
// sufficient ("autark"): every clause mentioning a variable in its domain
// is satisfied by it.
func AutarkAssignment(in *Instance, assignment Assignment) bool {
	for _, clause := range in.clauses {
		touched := false
		for _, lit := range clause {
			if _, ok := assignment[int(lit.Var())]; ok {
				touched = true
				break
			}
		}
		if !touched {
			continue
		}
		satisfied := false
		for _, lit := range clause {
			if val, ok := assignment[int(lit.Var())]; ok && val == lit.Positive() {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

// Is2SAT reports whether the longest clause in the instance has length
// exactly 2 (the structural criterion from §4.D, distinct from running the
// dedicated 2-SAT solver).
func Is2SAT(in *Instance) bool {
	return in.LongestClauseLength() == 2
}

// IsToveySatisfied implements Tovey's criterion: with k the minimum clause
// length, it returns true iff some variable's total positive+negative
// occurrence count exceeds k. When true the instance may be
// unsatisfiable; when false it is trivially satisfiable.
func IsToveySatisfied(in *Instance) bool {
	if in.NumClauses() == 0 {
		return false
	}
	k := in.ShortestClauseLength()

	occurrences := make(map[int]int)
	for _, clause := range in.clauses {
		for _, lit := range clause {
			occurrences[int(lit.Var())]++
		}
	}
	for _, count := range occurrences {
		if count > k {
			return true
		}
	}
	return false
}

// IsBiathletSatisfied implements the Biathlet criterion: with t = 2^n and
// s = sum over clauses of 2^(n-|c|), returns s >= t. When false, the
// instance is trivially satisfiable.
func IsBiathletSatisfied(in *Instance) bool {
	n := in.numVars
	if n == 0 {
		return in.NumClauses() == 0
	}
	t := math.Pow(2, float64(n))
	s := 0.0
	for _, clause := range in.clauses {
		s += math.Pow(2, float64(n-len(clause)))
	}
	return s >= t
}

// IsLLLSatisfied implements the Lovász Local Lemma criterion: applicable
// only when every clause has the same length k. For each clause, it
// counts how many other clauses share at least one variable with it, and
// returns true iff some clause has at least 2^(k-2) such neighbours (the
// instance may be unsatisfiable). When every count is strictly smaller,
// the formula is trivially satisfiable. Fails with LllNotApplicable when
// clause lengths differ.
func IsLLLSatisfied(in *Instance) (bool, error) {
	if in.NumClauses() == 0 {
		return false, core.NewError(core.LllNotApplicable, "IsLLLSatisfied", "instance has no clauses")
	}
	k := len(in.clauses[0])
	for _, clause := range in.clauses {
		if len(clause) != k {
			return false, core.NewError(core.LllNotApplicable, "IsLLLSatisfied", "clause lengths are not uniform")
		}
	}

	varSets := make([]map[int]bool, len(in.clauses))
	for i, clause := range in.clauses {
		vars := make(map[int]bool, len(clause))
		for _, lit := range clause {
			vars[int(lit.Var())] = true
		}
		varSets[i] = vars
	}

	threshold := math.Pow(2, float64(k-2))
	for i := range in.clauses {
		neighbours := 0
		for j := range in.clauses {
			if i == j {
				continue
			}
			if sharesVariable(varSets[i], varSets[j]) {
				neighbours++
			}
		}
		if float64(neighbours) >= threshold {
			return true, nil
		}
	}
	return false, nil
}

func sharesVariable(a, b map[int]bool) bool {
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	for v := range small {
		if large[v] {
			return true
		}
	}
	return false
}
