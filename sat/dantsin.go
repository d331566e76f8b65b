package sat

import "github.com/ashgrove-vane/satkernel/core"

// IsSatisfiableDantsin runs Dantsin's covering-code local search: a
// covering code of radius CoveringRadius(n) is generated over the
// variables, and each codeword is used in turn as the starting assignment
// for a Hamming-ball search of that same radius (searchHammingBall),
// which recursively branches over every literal of a randomly chosen
// unsatisfied clause, since the covering code is already constructed to
// put some codeword within the search radius of every satisfying
// assignment. Returns the verdict and the total number of flips attempted
// across all codewords.
func IsSatisfiableDantsin(in *Instance, rng core.Rand) (bool, int) {
	vars := in.AllVariables()
	n := len(vars)
	if n == 0 {
		return in.NumClauses() == 0, 0
	}

	code := GenerateCoveringCode(n)
	radius := CoveringRadius(n)

	flips := 0
	for _, word := range code {
		start := make(Assignment, n)
		for i, v := range vars {
			start[v] = word[i]
		}

		if _, ok := searchHammingBall(in, start, radius, rng, &flips); ok {
			return true, flips
		}
	}

	return false, flips
}
