// Package scalar defines the arithmetic capability that the quadmatrix
// core is written against, and the concrete backends that satisfy it.
//
// A single algorithm body in the quadmatrix package runs unchanged over
// any type that implements S: today that is Float64 and BigFloat, and an
// arbitrary-precision decimal backend can be added later (see the Context
// type in decimal.go) without touching a single line of the core.
package scalar

// S is the capability set the quadmatrix core requires of a scalar type.
// Implementations must be value types: every method returns a new value
// rather than mutating the receiver, so the core can be written in pure
// combinator style regardless of whether a given backend happens to be
// mutable internally (see DESIGN.md on the extended-precision backend).
//
// Equality of two scalars is defined by Cmp(x) == 0, never by Go's == on
// the underlying representation: a decimal backend can represent the same
// numeric value with different internal scale, so only Cmp is trustworthy.
type S[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Abs() T
	Sqrt() T

	// Cmp returns -1, 0, or +1 as the receiver is less than, equal to, or
	// greater than x. Behavior is undefined if either operand is NaN.
	Cmp(x T) int

	IsZero() bool
	IsNaN() bool
	IsInf() bool
	IsNeg() bool

	// Zero, One, Inf and NaN return the named constant at the receiver's
	// configured precision. They never inspect the receiver's value, only
	// its configuration (e.g. a decimal backend's rounding context), so
	// they are safe to call on any value of the implementing type.
	Zero() T
	One() T
	Inf() T
	NaN() T
}

// Equal reports whether a and b compare equal under Cmp, per the equality
// rule documented on S.
func Equal[T S[T]](a, b T) bool {
	return a.Cmp(b) == 0
}
