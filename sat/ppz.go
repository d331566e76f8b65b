package sat

import (
	"math"

	"github.com/ashgrove-vane/satkernel/core"
)

// DefaultErrorRate is the conventional target error rate (one-sided: the
// probability of a false UNSAT verdict) for the errorRate parameter of
// IsSatisfiablePPZ and PPZIterations. Callers pass it explicitly; no
// function substitutes it for a missing value.
const DefaultErrorRate = 1e-8

// PPZIterations computes T = ceil((-ln epsilon) / p) with
// p = 2^(-n*(1 - 1/k)), k the longest clause length and n the variable
// count, per the Paturi-Pudlak-Zane analysis.
func PPZIterations(in *Instance, errorRate float64) int {
	k := in.LongestClauseLength()
	n := in.NumVariables()
	c := -math.Log(errorRate)
	p := math.Pow(2, -float64(n)*(1-1/float64(k)))
	return int(math.Ceil(c / p))
}

// IsSatisfiablePPZ runs the Paturi-Pudlak-Zane randomized algorithm: each
// iteration draws a uniformly random permutation of the variables and
// assigns each in turn, following any unit clause the progressively
// simplified instance already contains, otherwise assigning uniformly at
// random. Returns true on finding a satisfying assignment; after
// PPZIterations(in, errorRate) failed iterations, returns false (UNSAT
// with probability at least 1-errorRate).
func IsSatisfiablePPZ(in *Instance, errorRate float64, rng core.Rand) bool {
	if in.NumClauses() == 0 {
		return true
	}
	if in.HasEmptyClause() {
		return false
	}

	iterations := PPZIterations(in, errorRate)
	allVars := in.AllVariables()

	for iter := 0; iter < iterations; iter++ {
		perm := rng.Perm(len(allVars))
		current := in

		for _, idx := range perm {
			variable := allVars[idx]

			value, ok := unitClauseValue(current, variable)
			if !ok {
				value = rng.Bool()
			}
			current = Simplify(current, Assignment{variable: value})
		}

		if !current.HasEmptyClause() {
			return true
		}
	}

	return false
}

// unitClauseValue reports whether the instance contains a unit clause on
// variable (either polarity) and, if so, the value that satisfies it.
func unitClauseValue(in *Instance, variable int) (bool, bool) {
	for _, clause := range in.clauses {
		if len(clause) != 1 {
			continue
		}
		lit := int(clause[0])
		if abs(lit) == variable {
			return lit > 0, true
		}
	}
	return false, false
}
