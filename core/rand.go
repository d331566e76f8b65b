package core

import "math/rand"

// SystemRand wraps a *math/rand.Rand to satisfy Rand. Construct one per
// solver invocation with its own seed so concurrent invocations never share
// PRNG state.
type SystemRand struct {
	r *rand.Rand
}

// NewSystemRand returns a SystemRand seeded with the given seed.
func NewSystemRand(seed int64) *SystemRand {
	return &SystemRand{r: rand.New(rand.NewSource(seed))}
}

func (s *SystemRand) Float64() float64 { return s.r.Float64() }
func (s *SystemRand) Intn(n int) int   { return s.r.Intn(n) }
func (s *SystemRand) Bool() bool       { return s.r.Intn(2) == 0 }
func (s *SystemRand) Perm(n int) []int { return s.r.Perm(n) }
