package scalar

// Context is the extension point for an arbitrary-precision decimal
// backend; this package defines no Decimal value type itself. That
// implementation is deliberately out of scope for this core:
// the arbitrary-precision scalar implementation itself is assumed to be
// supplied by whoever needs it, the way the extended-precision slot is
// filled by BigFloat (see bigfloat.go). No decimal package appears
// anywhere in the retrieved example corpus, so none is fabricated here
// (see DESIGN.md).
//
// A conforming implementation pairs a decimal value with a Context fixing
// precision and rounding mode at construction: arithmetic at a given
// instance uses a single configured context, established once and
// invariant for the lifetime of the solver. Such a type would satisfy
// S[Decimal] exactly as Float64 and BigFloat do.
type Context struct {
	// Precision is the number of significant decimal digits carried by
	// values created under this context.
	Precision uint
	// Rounding selects the rounding mode applied when an operation's exact
	// result cannot be represented at Precision.
	Rounding RoundingMode
}

// RoundingMode enumerates the rounding policies a Decimal context may use.
type RoundingMode int

const (
	RoundHalfEven RoundingMode = iota
	RoundHalfUp
	RoundDown
	RoundUp
	RoundCeiling
	RoundFloor
)
