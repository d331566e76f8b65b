package sat

import "math"

// CoveringCodeDelta is the fractional Hamming radius used by the
// covering-code generator and Dantsin's search: radius(n) = floor(delta*n).
const CoveringCodeDelta = 0.25

// coveringCodeDenseLimit is the smallest n for which the generator no
// longer builds the code by brute-force greedy selection over all 2^n
// points (greedy selection is used for n below it). From it on,
// exhaustive enumeration is infeasible and the generator instead builds
// the code by self-concatenating a fixed base code (see
// GenerateCoveringCode).
const coveringCodeDenseLimit = 8

// coveringCodeBaseSize is the length of the fixed base code used to build
// larger codes by self-concatenation once n reaches coveringCodeDenseLimit.
const coveringCodeBaseSize = 4

// coveringCodeBase is the fixed radius-1 covering code of length 4,
// self-concatenated to build codes for n >= coveringCodeDenseLimit.
var coveringCodeBase = [][]bool{
	{false, false, false, false},
	{false, true, true, true},
	{true, false, false, false},
	{true, true, true, true},
}

// CoveringRadius returns floor(CoveringCodeDelta * n).
func CoveringRadius(n int) int {
	return int(math.Floor(CoveringCodeDelta * float64(n)))
}

// GenerateCoveringCode builds a set of length-n bit patterns such that
// every point in {0,1}^n lies within Hamming distance CoveringRadius(n) of
// some codeword. For n below coveringCodeDenseLimit it runs a direct
// greedy set-cover: repeatedly pick the point (covered or not) whose
// radius-ball covers the most remaining uncovered points. For n at or
// above the limit, exhaustive enumeration of 2^n points is infeasible, so
// it instead self-concatenates the fixed base code ceil(n/4) times (the
// full cross product of that many copies of the base code, one chosen
// base codeword per 4-bit block) to reach a multiple of 4 at least n,
// then — when n is not itself a multiple of 4 — truncates every extended
// codeword to its first n bits, verifies the covering property over all
// 2^n points, and greedily patches any uncovered point by adding it as
// its own codeword until coverage holds.
func GenerateCoveringCode(n int) [][]bool {
	if n <= 0 {
		return nil
	}
	if n < coveringCodeDenseLimit {
		return greedyCoveringCode(n, CoveringRadius(n))
	}

	blockCount := (n + coveringCodeBaseSize - 1) / coveringCodeBaseSize
	extended := selfConcatenate(coveringCodeBase, blockCount)
	if n%coveringCodeBaseSize == 0 {
		return extended
	}
	return adaptCode(extended, n, CoveringRadius(n))
}

func greedyCoveringCode(n, radius int) [][]bool {
	total := 1 << uint(n)
	covered := make([]bool, total)
	remaining := total

	var code [][]bool
	for remaining > 0 {
		bestPoint, bestGain := -1, -1
		for p := 0; p < total; p++ {
			gain := countUncoveredInBall(p, n, radius, covered)
			if gain > bestGain {
				bestPoint, bestGain = p, gain
			}
		}
		if bestPoint < 0 || bestGain == 0 {
			// Guard only: while any point is uncovered, that point's own
			// ball has gain at least 1, so this branch is not reached.
			// It would cover whatever remains with the first uncovered
			// point.
			for p := 0; p < total; p++ {
				if !covered[p] {
					bestPoint = p
					break
				}
			}
		}
		code = append(code, intToBits(bestPoint, n))
		remaining -= markCoveredInBall(bestPoint, n, radius, covered)
	}
	return code
}

// selfConcatenate returns the full cross product of k copies of base: one
// codeword per k-tuple of base codewords, each the bit-concatenation of
// its tuple's codewords in order. k must be at least 1.
func selfConcatenate(base [][]bool, k int) [][]bool {
	if k < 1 || len(base) == 0 {
		return nil
	}
	if k == 1 {
		out := make([][]bool, len(base))
		copy(out, base)
		return out
	}

	blockLen := len(base[0])
	total := 1
	for i := 0; i < k; i++ {
		total *= len(base)
	}

	result := make([][]bool, 0, total)
	indices := make([]int, k)
	for {
		word := make([]bool, 0, blockLen*k)
		for _, idx := range indices {
			word = append(word, base[idx]...)
		}
		result = append(result, word)

		pos := k - 1
		for pos >= 0 {
			indices[pos]++
			if indices[pos] < len(base) {
				break
			}
			indices[pos] = 0
			pos--
		}
		if pos < 0 {
			break
		}
	}
	return result
}

// adaptCode truncates every codeword in extended to its first targetN
// bits, then verifies that every one of the 2^targetN boolean vectors lies
// within radius of some truncated codeword, greedily adding any uncovered
// vector as a new codeword of its own until the covering property holds.
func adaptCode(extended [][]bool, targetN, radius int) [][]bool {
	truncated := make([][]bool, len(extended))
	for i, word := range extended {
		cw := make([]bool, targetN)
		copy(cw, word[:targetN])
		truncated[i] = cw
	}

	total := 1 << uint(targetN)
	covered := make([]bool, total)
	for _, cw := range truncated {
		markCoveredInBall(bitsToInt(cw), targetN, radius, covered)
	}

	for p := 0; p < total; p++ {
		if covered[p] {
			continue
		}
		word := intToBits(p, targetN)
		truncated = append(truncated, word)
		markCoveredInBall(p, targetN, radius, covered)
	}
	return truncated
}

func intToBits(p, n int) []bool {
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[n-1-i] = (p>>uint(i))&1 == 1
	}
	return bits
}

func bitsToInt(bits []bool) int {
	v := 0
	for _, b := range bits {
		v <<= 1
		if b {
			v |= 1
		}
	}
	return v
}

func hammingDistanceInt(a, b, n int) int {
	x := a ^ b
	count := 0
	for i := 0; i < n; i++ {
		if (x>>uint(i))&1 == 1 {
			count++
		}
	}
	return count
}

func countUncoveredInBall(center, n, radius int, covered []bool) int {
	count := 0
	total := 1 << uint(n)
	for p := 0; p < total; p++ {
		if !covered[p] && hammingDistanceInt(center, p, n) <= radius {
			count++
		}
	}
	return count
}

func markCoveredInBall(center, n, radius int, covered []bool) int {
	newly := 0
	total := 1 << uint(n)
	for p := 0; p < total; p++ {
		if !covered[p] && hammingDistanceInt(center, p, n) <= radius {
			covered[p] = true
			newly++
		}
	}
	return newly
}
