package sat

// IsSatisfiableMonienSpeckenmeyer runs the Monien-Speckenmeyer splitting
// algorithm: select a clause c of minimum length k; for i = 0..k-1,
// explore the partial assignment that sets c[0..i-1] false and c[i] true.
// The iterative form uses an explicit stack and pushes the i=k-1 branch
// first so i=0 is explored first. When withAutark is set, each of the k
// candidate partial assignments is checked for being autark before
// enumerating branches; an autark assignment replaces the node by the
// simplified instance with no further branching. Returns the verdict and
// the number of search nodes explored.
func IsSatisfiableMonienSpeckenmeyer(in *Instance, withAutark bool) (bool, int) {
	stack := []dpllNode{{instance: in}}
	iterations := 0

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		iterations++

		if node.instance.NumClauses() == 0 {
			return true, iterations
		}
		if node.instance.HasEmptyClause() {
			continue
		}

		k := node.instance.ShortestClauseLength()
		clause := firstClauseOfLength(node.instance, k)

		if withAutark {
			if next, ok := tryAutarkBranch(node, clause, k); ok {
				stack = append(stack, next)
				continue
			}
		}

		for i := k - 1; i >= 0; i-- {
			assignment := partialAssignmentUpTo(clause, i)
			stack = append(stack, dpllNode{
				instance:    Simplify(node.instance, assignment),
				assignments: append(append([]int{}, node.assignments...), literalsOf(assignment)...),
			})
		}
	}

	return false, iterations
}

func firstClauseOfLength(in *Instance, k int) []int {
	for _, clause := range in.clauses {
		if len(clause) == k {
			return litsToInts(clause)
		}
	}
	return nil
}

// partialAssignmentUpTo builds the assignment setting clause[0..i-1] to
// false and clause[i] to true.
func partialAssignmentUpTo(clause []int, i int) Assignment {
	assignment := make(Assignment, i+1)
	for j := 0; j < i; j++ {
		lit := clause[j]
		assignment[abs(lit)] = lit < 0
	}
	assignment[abs(clause[i])] = clause[i] > 0
	return assignment
}

func literalsOf(assignment Assignment) []int {
	lits := make([]int, 0, len(assignment))
	for v, val := range assignment {
		if val {
			lits = append(lits, v)
		} else {
			lits = append(lits, -v)
		}
	}
	return lits
}

func tryAutarkBranch(node dpllNode, clause []int, k int) (dpllNode, bool) {
	for i := 0; i < k; i++ {
		assignment := partialAssignmentUpTo(clause, i)
		if AutarkAssignment(node.instance, assignment) {
			return dpllNode{
				instance:    Simplify(node.instance, assignment),
				assignments: append(append([]int{}, node.assignments...), literalsOf(assignment)...),
			}, true
		}
	}
	return dpllNode{}, false
}

// IsSatisfiableMonienSpeckenmeyerRecursive is the recursive expression of
// the same algorithm, kept for pedagogical comparison.
func IsSatisfiableMonienSpeckenmeyerRecursive(in *Instance, withAutark bool) bool {
	if in.NumClauses() == 0 {
		return true
	}
	if in.HasEmptyClause() {
		return false
	}

	k := in.ShortestClauseLength()
	clause := firstClauseOfLength(in, k)

	if withAutark {
		for i := 0; i < k; i++ {
			assignment := partialAssignmentUpTo(clause, i)
			if AutarkAssignment(in, assignment) {
				return IsSatisfiableMonienSpeckenmeyerRecursive(Simplify(in, assignment), withAutark)
			}
		}
	}

	for i := 0; i < k; i++ {
		assignment := partialAssignmentUpTo(clause, i)
		if IsSatisfiableMonienSpeckenmeyerRecursive(Simplify(in, assignment), withAutark) {
			return true
		}
	}
	return false
}
