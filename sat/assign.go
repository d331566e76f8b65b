package sat

// Assignment maps a variable to a boolean value; it may be partial.
type Assignment map[int]bool

// Simplify removes every clause containing a literal that is true under
// assignments, and removes every false literal from the remaining clauses.
// Variables absent from assignments are preserved untouched. The result is
// a new Instance; any clause in it is a (possibly reduced) subset of the
// literals of an original clause, and it has at most as many clauses as
// the input.
func Simplify(in *Instance, assignments Assignment) *Instance {
	out, _ := simplifyTracked(in, assignments, nil)
	return out
}

// SimplifyWithProvenance behaves like Simplify but additionally returns,
// for each surviving clause, the index in parents that produced it. No
// solver in this package calls it; CDCL keeps each antecedent clause in
// its own reason map instead. parents[i] names
// the original-instance index of in's clause i; if parents is nil it is
// treated as the identity mapping range(in.NumClauses()).
func SimplifyWithProvenance(in *Instance, assignments Assignment, parents []int) (*Instance, []int) {
	if parents == nil {
		parents = make([]int, in.NumClauses())
		for i := range parents {
			parents[i] = i
		}
	}
	return simplifyTracked(in, assignments, parents)
}

func simplifyTracked(in *Instance, assignments Assignment, parents []int) (*Instance, []int) {
	var clauses [][]int
	var outParents []int

	for i, clause := range in.clauses {
		satisfied := false
		var kept []int
		for _, lit := range clause {
			val, ok := assignments[int(lit.Var())]
			if !ok {
				kept = append(kept, int(lit))
				continue
			}
			litTrue := val == lit.Positive()
			if litTrue {
				satisfied = true
				break
			}
			// literal is false under the assignment: drop it.
		}
		if satisfied {
			continue
		}
		clauses = append(clauses, kept)
		if parents != nil {
			outParents = append(outParents, parents[i])
		}
	}

	out, err := FromClauses(clauses)
	if err != nil {
		// simplify only ever removes literals/clauses from an already
		// validated instance; it cannot introduce a zero literal or a
		// fresh duplicate.
		panic(err)
	}
	// NumVariables of the result reflects only the surviving clauses (the
	// highest variable still present), so it can be smaller than the
	// input's.
	if parents != nil {
		return out, outParents
	}
	return out, nil
}
