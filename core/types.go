package core

// Variable is a positive integer identifying a propositional variable.
// Well-formed instances use variables forming a contiguous range [1..n].
type Variable int

// Literal is a non-zero integer; its sign indicates polarity and |Literal|
// is the Variable it refers to.
type Literal int

// Var returns the variable underlying a literal, stripping its sign.
func (l Literal) Var() Variable {
	if l < 0 {
		return Variable(-l)
	}
	return Variable(l)
}

// Positive reports whether the literal is the positive occurrence of its
// variable.
func (l Literal) Positive() bool { return l > 0 }

// Negate returns the complementary literal.
func (l Literal) Negate() Literal { return -l }

// Rand is the PRNG capability injected into randomized algorithms (RDLCS,
// PPZ, the local search family). Two concurrent solver invocations must use
// independent Rand values; nothing in this module shares PRNG state.
type Rand interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
	// Intn returns a pseudo-random number in [0, n).
	Intn(n int) int
	// Bool returns a pseudo-random boolean with equal probability.
	Bool() bool
	// Perm returns a pseudo-random permutation of [0, n).
	Perm(n int) []int
}

// Cancel is a cooperative cancellation callback. The solver that accepts
// one (sat.IsSatisfiableCDCLWithOptions) polls it between search nodes;
// there is no guarantee of intra-propagation responsiveness. A nil Cancel
// is always treated as "never cancelled".
type Cancel func() bool

// Cancelled reports whether c requests cancellation, treating a nil
// callback as "never cancelled".
func Cancelled(c Cancel) bool {
	return c != nil && c()
}
