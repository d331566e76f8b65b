package sat

import (
	"sort"

	"github.com/ashgrove-vane/satkernel/core"
	"go.uber.org/zap"
)

// KernelStep tries, in fixed order, unit propagation, tautology
// elimination, duplicate/subsumption removal, pure literal elimination,
// and "2-Eige-Zwillinge" merging, returning the result of the first rule
// that fires. If no rule fires, changed is false and instance is returned
// unchanged.
func KernelStep(in *Instance) (out *Instance, changed bool) {
	if next, ok := removeUnitClause(in); ok {
		return next, true
	}
	if next, ok := removeTautologicalClauses(in); ok {
		return next, true
	}
	if next, ok := removeDuplicateAndSubsumedClauses(in); ok {
		return next, true
	}
	if next, ok := removePureLiteral(in); ok {
		return next, true
	}
	if next, ok := mergeZweiEigeZwillinge(in); ok {
		return next, true
	}
	return in, false
}

func removeUnitClause(in *Instance) (*Instance, bool) {
	for _, clause := range in.clauses {
		if len(clause) == 1 {
			lit := clause[0]
			next := Simplify(in, Assignment{int(lit.Var()): lit.Positive()})
			return next, true
		}
	}
	return in, false
}

func removeTautologicalClauses(in *Instance) (*Instance, bool) {
	var clauses [][]int
	changed := false
	for _, clause := range in.clauses {
		if clauseIsTautology(clause) {
			changed = true
			continue
		}
		clauses = append(clauses, litsToInts(clause))
	}
	if !changed {
		return in, false
	}
	next, err := FromClauses(clauses)
	if err != nil {
		panic(err)
	}
	next.numVars = in.numVars
	return next, true
}

func clauseIsTautology(clause []core.Literal) bool {
	seen := make(map[int]bool, len(clause))
	for _, lit := range clause {
		if seen[-int(lit)] {
			return true
		}
		seen[int(lit)] = true
	}
	return false
}

func removeDuplicateAndSubsumedClauses(in *Instance) (*Instance, bool) {
	n := len(in.clauses)
	keySets := make([]map[int]bool, n)
	for i, clause := range in.clauses {
		s := make(map[int]bool, len(clause))
		for _, lit := range clause {
			s[int(lit)] = true
		}
		keySets[i] = s
	}

	kept := make([]bool, n)
	seenDuplicate := make(map[string]bool)
	for i := 0; i < n; i++ {
		key := clauseKey(in.clauses[i])
		if seenDuplicate[key] {
			continue
		}
		seenDuplicate[key] = true
		kept[i] = true
	}

	changed := false
	for i := 0; i < n; i++ {
		if !kept[i] {
			changed = true
			continue
		}
		for j := 0; j < n; j++ {
			if i == j || !kept[j] {
				continue
			}
			if len(keySets[j]) < len(keySets[i]) && isSubset(keySets[j], keySets[i]) {
				kept[i] = false
				changed = true
				break
			}
		}
	}

	if !changed {
		return in, false
	}

	var clauses [][]int
	for i := 0; i < n; i++ {
		if kept[i] {
			clauses = append(clauses, litsToInts(in.clauses[i]))
		}
	}
	next, err := FromClauses(clauses)
	if err != nil {
		panic(err)
	}
	next.numVars = in.numVars
	return next, true
}

func clauseKey(clause []core.Literal) string {
	vals := make([]int, len(clause))
	for i, lit := range clause {
		vals[i] = int(lit)
	}
	sort.Ints(vals)
	key := make([]byte, 0, len(vals)*8)
	for _, v := range vals {
		key = append(key, byte(v), byte(v>>8), byte(v>>16), byte(v>>24), ',')
	}
	return string(key)
}

func isSubset(small, large map[int]bool) bool {
	for v := range small {
		if !large[v] {
			return false
		}
	}
	return true
}

func removePureLiteral(in *Instance) (*Instance, bool) {
	lit := PureLiteral(in)
	if lit == 0 {
		return in, false
	}
	v := lit
	if v < 0 {
		v = -v
	}
	next := Simplify(in, Assignment{v: lit > 0})
	return next, true
}

// mergeZweiEigeZwillinge finds two clauses C1 = D u {l}, C2 = D u {-l}
// (differing in exactly two complementary literals) and replaces both by
// the single clause D.
func mergeZweiEigeZwillinge(in *Instance) (*Instance, bool) {
	n := len(in.clauses)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ci, cj := in.clauses[i], in.clauses[j]
			if len(ci) != len(cj) {
				continue
			}
			setI := make(map[int]bool, len(ci))
			for _, lit := range ci {
				setI[int(lit)] = true
			}
			setJ := make(map[int]bool, len(cj))
			for _, lit := range cj {
				setJ[int(lit)] = true
			}

			var onlyI, onlyJ []int
			for v := range setI {
				if !setJ[v] {
					onlyI = append(onlyI, v)
				}
			}
			for v := range setJ {
				if !setI[v] {
					onlyJ = append(onlyJ, v)
				}
			}
			if len(onlyI) != 1 || len(onlyJ) != 1 {
				continue
			}
			if onlyI[0] != -onlyJ[0] {
				continue
			}

			var merged []int
			for v := range setI {
				if v != onlyI[0] {
					merged = append(merged, v)
				}
			}

			var clauses [][]int
			for k, clause := range in.clauses {
				if k == i || k == j {
					continue
				}
				clauses = append(clauses, litsToInts(clause))
			}
			clauses = append(clauses, merged)
			next, err := FromClauses(clauses)
			if err != nil {
				panic(err)
			}
			next.numVars = in.numVars
			return next, true
		}
	}
	return in, false
}

// NormalizeToKernel iterates KernelStep until it reports no change,
// logging one Debug line per fixpoint iteration.
func NormalizeToKernel(in *Instance, log *zap.Logger) *Instance {
	log = nopIfNil(log)
	iterations := 0
	for {
		next, changed := KernelStep(in)
		if !changed {
			break
		}
		iterations++
		log.Debug("kernelizer step applied", zap.Int("iteration", iterations), zap.Int("clauses", next.NumClauses()))
		in = next
	}
	log.Debug("normalized to kernel", zap.Int("iterations", iterations))
	return in
}

// KernelClassification reports why an instance failed to qualify as a
// kernel instance, or "" if it qualifies.
type KernelClassification struct {
	IsKernel bool
	Reason   string
}

// IsKernelInstance returns true iff the instance is already stable under
// one KernelStep and none of the triviality conditions apply: no empty
// clause, LLL holds (or is inapplicable due to non-uniform clause
// lengths, per the Open Question decision), Biathlet holds, one
// connected component, Tovey holds, not 2-SAT, and not renamable Horn.
// Any triviality hit classifies the instance and is reported, not
// returned as an error.
func IsKernelInstance(in *Instance, log *zap.Logger) KernelClassification {
	log = nopIfNil(log)

	if _, changed := KernelStep(in); changed {
		log.Debug("could simplify further: not a kernel instance")
		return KernelClassification{IsKernel: false, Reason: "reducible"}
	}

	if in.HasEmptyClause() {
		log.Debug("instance has an empty clause: not a kernel instance")
		return KernelClassification{IsKernel: false, Reason: "empty clause"}
	}

	if shortestEqualsLongest(in) {
		if satisfied, err := IsLLLSatisfied(in); err == nil && !satisfied {
			log.Debug("LLL not satisfied: trivially satisfiable")
			return KernelClassification{IsKernel: false, Reason: "lll"}
		}
	}

	if !IsBiathletSatisfied(in) {
		log.Debug("biathlet not satisfied: trivially satisfiable")
		return KernelClassification{IsKernel: false, Reason: "biathlet"}
	}

	if !IsOneConnectedComponent(in) {
		log.Debug("not one connected component: splittable")
		return KernelClassification{IsKernel: false, Reason: "splittable"}
	}

	if !IsToveySatisfied(in) {
		log.Debug("tovey's criterion not satisfied: trivially satisfiable")
		return KernelClassification{IsKernel: false, Reason: "tovey"}
	}

	if Is2SAT(in) {
		log.Debug("instance is 2-SAT: polynomially solvable")
		return KernelClassification{IsKernel: false, Reason: "2-sat"}
	}

	if horn, err := IsRenamableHorn(in); err == nil && horn {
		log.Debug("instance is renamable horn: polynomially solvable")
		return KernelClassification{IsKernel: false, Reason: "renamable-horn"}
	}

	return KernelClassification{IsKernel: true}
}

func shortestEqualsLongest(in *Instance) bool {
	return in.NumClauses() > 0 && in.ShortestClauseLength() == in.LongestClauseLength()
}

func nopIfNil(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
