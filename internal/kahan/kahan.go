// Package kahan implements compensated (Kahan) summation over any scalar
// backend satisfying scalar.S. Splitting it out of the core lets the
// Cholesky engine, the row-equilibration pass, and the auxiliary
// matrix-multiply/norm/residual paths share one implementation instead of
// three near-duplicate copies.
package kahan

import "github.com/m-vokhm/QuadMatrix-sub001/scalar"

// Accumulator carries the running sum and compensation term of a
// compensated summation:
//
//	y = x − c; t = sum + y; c = (t − sum) − y; sum = t
type Accumulator[T scalar.S[T]] struct {
	sum T
	c   T
	set bool
}

// NewAccumulator returns an accumulator seeded at zero, using zero's
// configuration (precision, rounding context) as the configuration for
// every subsequent term and result.
func NewAccumulator[T scalar.S[T]](zero T) Accumulator[T] {
	return Accumulator[T]{sum: zero.Zero(), c: zero.Zero(), set: true}
}

// Add folds x into the running sum.
func (a *Accumulator[T]) Add(x T) {
	if !a.set {
		a.sum, a.c = x.Zero(), x.Zero()
		a.set = true
	}
	y := x.Sub(a.c)
	t := a.sum.Add(y)
	a.c = t.Sub(a.sum).Sub(y)
	a.sum = t
}

// Sum returns the accumulated total.
func (a *Accumulator[T]) Sum() T {
	return a.sum
}

// Sum reduces terms with compensated summation in a single call, seeded
// at zero's configuration. It returns zero's Zero() for an empty input.
func Sum[T scalar.S[T]](zero T, terms []T) T {
	acc := NewAccumulator(zero)
	for _, x := range terms {
		acc.Add(x)
	}
	return acc.Sum()
}
