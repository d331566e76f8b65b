package sat

// dpllNode is a search node in the iterative/recursive DPLL and
// Monien-Speckenmeyer searches: the reduced instance reached so far, and
// the literals committed to get there (for debugging; not required by the
// search itself since the reduced instance already reflects them).
type dpllNode struct {
	instance    *Instance
	assignments []int
}

// IsSatisfiableDPLL runs the iterative DPLL algorithm: an explicit stack
// of search nodes, each carrying the reduced instance and the literals
// committed along the branch. At each node it tries, in order: the
// no-clauses-left / empty-clause terminal cases, unit propagation, pure
// literal elimination, then the heuristic's branching literal (exploring
// its preferred polarity first). Returns the verdict and the number of
// search nodes explored.
func IsSatisfiableDPLL(in *Instance, heuristic Heuristic) (bool, int) {
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

		if lit, ok := firstUnitLiteral(node.instance); ok {
			stack = append(stack, dpllNode{
				instance:    Simplify(node.instance, Assignment{abs(lit): lit > 0}),
				assignments: append(append([]int{}, node.assignments...), lit),
			})
			continue
		}

		if lit := PureLiteral(node.instance); lit != 0 {
			stack = append(stack, dpllNode{
				instance:    Simplify(node.instance, Assignment{abs(lit): lit > 0}),
				assignments: append(append([]int{}, node.assignments...), lit),
			})
			continue
		}

		lit := heuristic(node.instance)
		isPositive := lit > 0

		// Second branch pushed first so the heuristic's preferred branch
		// is popped (explored) next.
		stack = append(stack, dpllNode{
			instance:    Simplify(node.instance, Assignment{abs(lit): !isPositive}),
			assignments: append(append([]int{}, node.assignments...), -lit),
		})
		stack = append(stack, dpllNode{
			instance:    Simplify(node.instance, Assignment{abs(lit): isPositive}),
			assignments: append(append([]int{}, node.assignments...), lit),
		})
	}

	return false, iterations
}

func firstUnitLiteral(in *Instance) (int, bool) {
	for _, clause := range in.clauses {
		if len(clause) == 1 {
			return int(clause[0]), true
		}
	}
	return 0, false
}

// IsSatisfiableDPLLRecursive is the recursive expression of the same
// algorithm; behaviourally identical to IsSatisfiableDPLL, kept for
// pedagogical comparison. Production callers should prefer the iterative
// form to keep stack depth bounded.
func IsSatisfiableDPLLRecursive(in *Instance, heuristic Heuristic) bool {
	if in.NumClauses() == 0 {
		return true
	}
	if in.HasEmptyClause() {
		return false
	}

	if lit, ok := firstUnitLiteral(in); ok {
		return IsSatisfiableDPLLRecursive(Simplify(in, Assignment{abs(lit): lit > 0}), heuristic)
	}

	if lit := PureLiteral(in); lit != 0 {
		return IsSatisfiableDPLLRecursive(Simplify(in, Assignment{abs(lit): lit > 0}), heuristic)
	}

	lit := heuristic(in)
	isPositive := lit > 0

	if IsSatisfiableDPLLRecursive(Simplify(in, Assignment{abs(lit): isPositive}), heuristic) {
		return true
	}
	return IsSatisfiableDPLLRecursive(Simplify(in, Assignment{abs(lit): !isPositive}), heuristic)
}
