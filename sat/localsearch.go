package sat

import "github.com/ashgrove-vane/satkernel/core"

// DefaultMaxTries is the default restart budget for the GSAT/WalkSAT
// family, per §6.
const DefaultMaxTries = 1000

// DefaultWalkProbability is the default probability p used by GSAT+walk
// and WalkSAT to take a random step instead of the greedy one.
const DefaultWalkProbability = 0.55

func maxFlipsFor(in *Instance) int { return 2 * in.NumVariables() }

func randomAssignment(vars []int, rng core.Rand) Assignment {
	assignment := make(Assignment, len(vars))
	for _, v := range vars {
		assignment[v] = rng.Bool()
	}
	return assignment
}

// gsatFlipCandidate returns the variable whose flip maximizes the number
// of satisfied clauses, breaking ties uniformly at random.
func gsatFlipCandidate(in *Instance, assignment Assignment, rng core.Rand) int {
	vars := in.AllVariables()

	bestScore := -1
	var best []int
	for _, v := range vars {
		flipped := cloneAssignment(assignment)
		flipped[v] = !flipped[v]
		score := CountSatisfied(in, flipped)
		if score > bestScore {
			bestScore = score
			best = []int{v}
		} else if score == bestScore {
			best = append(best, v)
		}
	}
	return best[rng.Intn(len(best))]
}

// walksatFlipCandidate restricts the GSAT-style greedy choice to the
// variables of a single clause.
func walksatFlipCandidate(in *Instance, assignment Assignment, clause []int, rng core.Rand) int {
	bestScore := -1
	var best []int
	for _, lit := range clause {
		v := abs(lit)
		flipped := cloneAssignment(assignment)
		flipped[v] = !flipped[v]
		score := CountSatisfied(in, flipped)
		if score > bestScore {
			bestScore = score
			best = []int{v}
		} else if score == bestScore {
			best = append(best, v)
		}
	}
	return best[rng.Intn(len(best))]
}

func cloneAssignment(a Assignment) Assignment {
	out := make(Assignment, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

func variablesOfUnsatisfiedClauses(in *Instance, assignment Assignment) []int {
	seen := make(map[int]bool)
	var out []int
	for _, clause := range UnsatisfiedClauses(in, assignment) {
		for _, lit := range clause {
			v := abs(lit)
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// IsSatisfiableGSAT runs GSAT: maxTries restarts from a uniformly random
// total assignment, each followed by up to 2n flips, each flip chosen
// greedily to maximize the number of satisfied clauses. Returns the
// verdict and the number of flip steps performed.
func IsSatisfiableGSAT(in *Instance, maxTries int, rng core.Rand) (bool, int) {
	vars := in.AllVariables()
	maxFlips := maxFlipsFor(in)
	flips := 0

	for try := 0; try < maxTries; try++ {
		assignment := randomAssignment(vars, rng)
		for flip := 0; flip < maxFlips; flip++ {
			flips++
			if CheckAssignment(in, assignment) {
				return true, flips
			}
			v := gsatFlipCandidate(in, assignment, rng)
			assignment[v] = !assignment[v]
		}
	}
	return false, flips
}

// IsSatisfiableGSATWithWalk runs GSAT+walk (Selman et al. 1994): like
// GSAT, but with probability p each flip instead picks uniformly at
// random among the variables occurring in some currently unsatisfied
// clause.
func IsSatisfiableGSATWithWalk(in *Instance, maxTries int, p float64, rng core.Rand) (bool, int) {
	vars := in.AllVariables()
	maxFlips := maxFlipsFor(in)
	flips := 0

	for try := 0; try < maxTries; try++ {
		assignment := randomAssignment(vars, rng)
		for flip := 0; flip < maxFlips; flip++ {
			flips++
			if CheckAssignment(in, assignment) {
				return true, flips
			}

			var v int
			if rng.Float64() < p {
				candidates := variablesOfUnsatisfiedClauses(in, assignment)
				v = candidates[rng.Intn(len(candidates))]
			} else {
				v = gsatFlipCandidate(in, assignment, rng)
			}
			assignment[v] = !assignment[v]
		}
	}
	return false, flips
}

// IsSatisfiableWalkSAT runs WalkSAT (Selman et al. 1994): each flip first
// picks an unsatisfied clause uniformly at random; with probability p it
// then picks any variable of that clause uniformly, otherwise it applies
// the GSAT-style greedy rule restricted to that clause's variables.
func IsSatisfiableWalkSAT(in *Instance, maxTries int, p float64, rng core.Rand) (bool, int) {
	vars := in.AllVariables()
	maxFlips := maxFlipsFor(in)
	flips := 0

	for try := 0; try < maxTries; try++ {
		assignment := randomAssignment(vars, rng)
		for flip := 0; flip < maxFlips; flip++ {
			flips++
			if CheckAssignment(in, assignment) {
				return true, flips
			}

			unsatisfied := UnsatisfiedClauses(in, assignment)
			clause := unsatisfied[rng.Intn(len(unsatisfied))]

			var v int
			if rng.Float64() < p {
				v = abs(clause[rng.Intn(len(clause))])
			} else {
				v = walksatFlipCandidate(in, assignment, clause, rng)
			}
			assignment[v] = !assignment[v]
		}
	}
	return false, flips
}
