package sat

// IsRenamableHorn builds the auxiliary 2-CNF formula F* whose clauses are
// every unordered pair of distinct literals co-occurring in some original
// clause, and returns the satisfiability of F* via the dedicated 2-SAT
// solver. F*'s clause list is built as an ordered slice (not a set) so
// that first-insertion order is preserved for determinism, per the design
// note on this ambiguity in the source.
func IsRenamableHorn(in *Instance) (bool, error) {
	seen := make(map[[2]int]bool)
	var clauses [][]int

	for _, clause := range in.clauses {
		for i := 0; i < len(clause); i++ {
			for j := i + 1; j < len(clause); j++ {
				a, b := int(clause[i]), int(clause[j])
				if seen[[2]int{a, b}] || seen[[2]int{b, a}] {
					continue
				}
				seen[[2]int{a, b}] = true
				clauses = append(clauses, []int{a, b})
			}
		}
	}

	checkInstance, err := FromClauses(clauses)
	if err != nil {
		return false, err
	}
	return Is2SATSatisfiable(checkInstance)
}
