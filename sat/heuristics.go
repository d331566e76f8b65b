package sat

import "github.com/ashgrove-vane/satkernel/core"

// Heuristic selects the next literal to branch on. Returning l means "try
// |l| := (l>0) first, then the opposite". Every heuristic below except
// ShortestClause and RDLCS breaks ties deterministically by preferring the
// smallest |l|, then the positive literal. ShortestClause is deterministic
// but returns the first literal of the first shortest clause without that
// tie-break; RDLCS consults a PRNG for polarity.
type Heuristic func(in *Instance) int

func literalCounts(in *Instance) map[int]int {
	counts := make(map[int]int)
	for _, clause := range in.clauses {
		for _, lit := range clause {
			counts[int(lit)]++
		}
	}
	return counts
}

// DLIS (Dynamic Largest Individual Sum) selects the literal with the
// highest occurrence count across all clauses.
func DLIS(in *Instance) int {
	counts := literalCounts(in)
	best := 0
	bestCount := -1
	first := true
	for lit, count := range counts {
		if first || count > bestCount || (count == bestCount && lessPreferred(lit, best)) {
			best, bestCount, first = lit, count, false
		}
	}
	return best
}

// lessPreferred reports whether candidate is preferred over current under
// the tie-break rule: smallest |l|, preferring positive.
func lessPreferred(candidate, current int) bool {
	ac, acur := abs(candidate), abs(current)
	if ac != acur {
		return ac < acur
	}
	// Same variable: prefer positive.
	return candidate > current
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// DLCS (Dynamic Largest Clause Sum) selects the variable with the largest
// total occurrence of both polarities, returning whichever polarity
// occurs at least as often.
func DLCS(in *Instance) int {
	counts := literalCounts(in)
	vars := in.AllVariables()

	best := vars[0]
	bestTotal := counts[best] + counts[-best]
	for _, v := range vars[1:] {
		total := counts[v] + counts[-v]
		if total > bestTotal || (total == bestTotal && v < best) {
			best, bestTotal = v, total
		}
	}
	if counts[best] >= counts[-best] {
		return best
	}
	return -best
}

// RDLCS (Random DLCS) is DLCS with a randomly chosen polarity.
func RDLCS(rng core.Rand) Heuristic {
	return func(in *Instance) int {
		counts := literalCounts(in)
		vars := in.AllVariables()

		best := vars[0]
		bestTotal := counts[best] + counts[-best]
		for _, v := range vars[1:] {
			total := counts[v] + counts[-v]
			if total > bestTotal || (total == bestTotal && v < best) {
				best, bestTotal = v, total
			}
		}
		if rng.Float64() < 0.5 {
			return best
		}
		return -best
	}
}

// MOM (Maximum Occurrence in Minimal size clauses) selects the variable
// occurring most in the shortest clauses, breaking ties by maximizing the
// product of positive and negative occurrence counts in those clauses,
// then by smallest variable. Always returns the positive literal.
func MOM(in *Instance) int {
	k := in.ShortestClauseLength()
	counts := make(map[int]int)
	for _, clause := range in.clauses {
		if len(clause) != k {
			continue
		}
		for _, lit := range clause {
			counts[int(lit)]++
		}
	}

	vars := in.AllVariables()
	maxValue := -1
	for _, v := range vars {
		total := counts[v] + counts[-v]
		if total > maxValue {
			maxValue = total
		}
	}

	best := 0
	bestScore := -1
	first := true
	for _, v := range vars {
		total := counts[v] + counts[-v]
		if total != maxValue {
			continue
		}
		score := counts[v] * counts[-v]
		if first || score > bestScore || (score == bestScore && v < abs(best)) {
			best, bestScore, first = v, score, false
		}
	}
	return best
}

func clauseScores(in *Instance) map[int]float64 {
	scores := make(map[int]float64)
	for _, clause := range in.clauses {
		weight := pow2Neg(len(clause))
		for _, lit := range clause {
			scores[int(lit)] += weight
		}
	}
	return scores
}

func pow2Neg(k int) float64 {
	v := 1.0
	for i := 0; i < k; i++ {
		v /= 2
	}
	return v
}

// JeroslawWang scores each literal by summing 2^-|c| over clauses
// containing it, picking the literal with the highest score (ties: the
// smallest |l|, preferring positive).
func JeroslawWang(in *Instance) int {
	scores := clauseScores(in)
	best := 0
	bestScore := 0.0
	first := true
	for lit, score := range scores {
		if first || score > bestScore || (score == bestScore && lessPreferred(lit, best)) {
			best, bestScore, first = lit, score, false
		}
	}
	return best
}

// JeroslawWangTwoSided scores variables by the combined score of both
// polarities, returning whichever polarity scores higher.
func JeroslawWangTwoSided(in *Instance) int {
	scores := clauseScores(in)
	vars := in.AllVariables()

	best := vars[0]
	bestTotal := scores[best] + scores[-best]
	for _, v := range vars[1:] {
		total := scores[v] + scores[-v]
		if total > bestTotal || (total == bestTotal && v < best) {
			best, bestTotal = v, total
		}
	}
	if scores[best] >= scores[-best] {
		return best
	}
	return -best
}

// ShortestClause returns the first literal of the first occurring clause
// with minimal length.
func ShortestClause(in *Instance) int {
	k := in.ShortestClauseLength()
	for _, clause := range in.clauses {
		if len(clause) == k {
			return int(clause[0])
		}
	}
	return 0
}
