package sat

// buildOrderingPrinciple constructs the ordering-principle CNF directly as
// clause slices (no DIMACS parsing, which is an external collaborator):
// variables x(i,j) for every ordered pair of distinct elements of
// [1..n] assert "i precedes j". The clauses assert totality and
// antisymmetry (every pair is ordered exactly one way), transitivity, and
// that every element has some predecessor - jointly unsatisfiable for
// every finite n, since a finite order always has a minimal element.
func buildOrderingPrinciple(n int) [][]int {
	idx := func(i, j int) int { return (i-1)*n + j }

	var clauses [][]int

	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			clauses = append(clauses, []int{idx(i, j), idx(j, i)})
			clauses = append(clauses, []int{-idx(i, j), -idx(j, i)})
		}
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			if j == i {
				continue
			}
			for k := 1; k <= n; k++ {
				if k == i || k == j {
					continue
				}
				clauses = append(clauses, []int{-idx(i, j), -idx(j, k), idx(i, k)})
			}
		}
	}

	for i := 1; i <= n; i++ {
		var clause []int
		for j := 1; j <= n; j++ {
			if j == i {
				continue
			}
			clause = append(clause, idx(j, i))
		}
		clauses = append(clauses, clause)
	}

	return clauses
}
