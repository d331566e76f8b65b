package sat

// IsSatisfiableBruteForce enumerates all 2^n total assignments in
// increasing binary order and returns true on the first one that
// satisfies every clause, along with the number of assignments tried.
// Used as the soundness/completeness oracle for the other solvers on
// small instances; exponential, never a production code path.
func IsSatisfiableBruteForce(in *Instance) (bool, int) {
	vars := in.AllVariables()
	n := len(vars)
	if n == 0 {
		return in.NumClauses() == 0, 0
	}

	total := 1 << uint(n)
	for mask := 0; mask < total; mask++ {
		assignment := make(Assignment, n)
		for i, v := range vars {
			assignment[v] = (mask>>uint(i))&1 == 1
		}
		if CheckAssignment(in, assignment) {
			return true, mask + 1
		}
	}
	return false, total
}
