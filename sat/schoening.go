package sat

import (
	"math"

	"github.com/ashgrove-vane/satkernel/core"
)

// searchHammingBall is the primitive shared by two-sided deterministic
// local search and Dantsin's covering-code search: a recursive branching
// search of the Hamming ball of radius radius around assignment. If
// assignment already satisfies the instance, it succeeds immediately. If
// radius is exhausted first, it fails. Otherwise it picks one unsatisfied
// clause uniformly at random and recursively tries flipping each of its
// literals in turn (radius-1 each), backtracking to the next literal on
// failure and returning true as soon as any branch succeeds. flips counts
// the number of flip attempts made across the whole recursion.
func searchHammingBall(in *Instance, assignment Assignment, radius int, rng core.Rand, flips *int) (Assignment, bool) {
	if CheckAssignment(in, assignment) {
		return assignment, true
	}
	if radius == 0 {
		return assignment, false
	}

	unsatisfied := UnsatisfiedClauses(in, assignment)
	clause := unsatisfied[rng.Intn(len(unsatisfied))]

	for _, lit := range clause {
		v := abs(lit)
		next := cloneAssignment(assignment)
		next[v] = !next[v]
		*flips++
		if result, ok := searchHammingBall(in, next, radius-1, rng, flips); ok {
			return result, true
		}
	}
	return assignment, false
}

// IsSatisfiableSchoening runs Schoening's randomized algorithm: maxTries
// restarts from a uniformly random total assignment, each followed by up
// to 3n flips, each flip choosing an unsatisfied clause uniformly at
// random and flipping one of its variables uniformly at random. It runs
// its own flip loop and does not call searchHammingBall. Returns the
// verdict and the number of flips performed.
func IsSatisfiableSchoening(in *Instance, maxTries int, rng core.Rand) (bool, int) {
	vars := in.AllVariables()
	maxFlips := 3 * in.NumVariables()
	flips := 0

	pick := func(clause []int) int {
		return abs(clause[rng.Intn(len(clause))])
	}

	for try := 0; try < maxTries; try++ {
		start := randomAssignment(vars, rng)
		assignment := cloneAssignment(start)
		for flip := 0; flip < maxFlips; flip++ {
			flips++
			if CheckAssignment(in, assignment) {
				return true, flips
			}
			unsatisfied := UnsatisfiedClauses(in, assignment)
			clause := unsatisfied[rng.Intn(len(unsatisfied))]
			v := pick(clause)
			assignment[v] = !assignment[v]
		}
	}
	return false, flips
}

// IsSatisfiableRandomLocalSearch runs random local search: maxTries
// restarts from a uniformly random total assignment, each followed by up
// to maxFlips flips of a variable chosen uniformly from the whole
// instance (not restricted to an unsatisfied clause).
func IsSatisfiableRandomLocalSearch(in *Instance, maxTries, maxFlips int, rng core.Rand) (bool, int) {
	vars := in.AllVariables()
	flips := 0

	for try := 0; try < maxTries; try++ {
		assignment := randomAssignment(vars, rng)
		for flip := 0; flip < maxFlips; flip++ {
			flips++
			if CheckAssignment(in, assignment) {
				return true, flips
			}
			v := vars[rng.Intn(len(vars))]
			assignment[v] = !assignment[v]
		}
	}
	return false, flips
}

// IsSatisfiableTwoSidedDeterministicLocalSearch runs the two-sided
// deterministic local search: starting from the all-false assignment, it
// searches the Hamming ball of radius ceil(n/2) via searchHammingBall; if
// that fails, it tries again from the all-true assignment within the same
// radius. Only the two starting points are fixed ("deterministic"); the
// Hamming-ball search itself still picks among unsatisfied clauses at
// random, per the algorithm it is grounded on.
func IsSatisfiableTwoSidedDeterministicLocalSearch(in *Instance, rng core.Rand) (bool, int) {
	vars := in.AllVariables()
	radius := int(math.Ceil(float64(len(vars)) / 2))

	flips := 0

	allFalse := make(Assignment, len(vars))
	for _, v := range vars {
		allFalse[v] = false
	}
	if _, ok := searchHammingBall(in, allFalse, radius, rng, &flips); ok {
		return true, flips
	}

	allTrue := make(Assignment, len(vars))
	for _, v := range vars {
		allTrue[v] = true
	}
	if _, ok := searchHammingBall(in, allTrue, radius, rng, &flips); ok {
		return true, flips
	}

	return false, flips
}
