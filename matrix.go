// Package quadmatrix implements a square dense real-matrix solver: LU
// decomposition with partial pivoting and optional row equilibration, a
// Cholesky decomposition for symmetric positive-definite matrices, the
// derived linear solvers, inversion, determinant, norm, condition number,
// and an iterative-refinement pass that sharpens the solves and the
// inverse.
//
// The package is generic over the scalar arithmetic backend (package
// scalar): the same algorithm bodies run unchanged over float64,
// extended-precision, or (once supplied) arbitrary-precision decimal
// values. Input validation, format conversion between scalar
// representations, and any public-facing facade are the caller's
// responsibility; this package is the numerical core alone.
package quadmatrix

import (
	"fmt"
	"strings"

	"github.com/m-vokhm/QuadMatrix-sub001/scalar"
)

// Matrix is a square, dense, row-major matrix of scalars. The zero value
// is not usable; construct one with NewMatrix.
type Matrix[T scalar.S[T]] struct {
	n    int
	data []T // row-major, length n*n
}

// NewMatrix builds an n×n matrix from rows, which must contain n slices
// each of length n. NewMatrix panics if rows is not square; shape
// validation of user input ahead of this call is the outward
// collaborator's responsibility, but a malformed literal reaching the
// core is still a programmer error worth panicking on, exactly as
// mat64.NewDense panics on a malformed backing slice.
func NewMatrix[T scalar.S[T]](rows [][]T) *Matrix[T] {
	n := len(rows)
	if n == 0 {
		panic(ErrShape)
	}
	data := make([]T, n*n)
	for i, row := range rows {
		if len(row) != n {
			panic(ErrShape)
		}
		copy(data[i*n:(i+1)*n], row)
	}
	return &Matrix[T]{n: n, data: data}
}

// newMatrixData builds a matrix directly from an already row-major,
// already-owned data slice. Internal only: callers must guarantee data is
// not aliased elsewhere.
func newMatrixData[T scalar.S[T]](n int, data []T) *Matrix[T] {
	return &Matrix[T]{n: n, data: data}
}

// N returns the matrix's dimension.
func (m *Matrix[T]) N() int { return m.n }

// At returns the element at row i, column j.
func (m *Matrix[T]) At(i, j int) T { return m.data[i*m.n+j] }

func (m *Matrix[T]) set(i, j int, v T) { m.data[i*m.n+j] = v }

// Row returns a freshly allocated copy of row i.
func (m *Matrix[T]) Row(i int) []T {
	out := make([]T, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])
	return out
}

// Clone returns a deep copy of m: the fresh-allocation guarantee every
// public facade makes sits on top of this.
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)
	return &Matrix[T]{n: m.n, data: data}
}

// Equal reports whether a and b have the same shape and compare equal
// element-wise under Cmp (per the S equality rule, never Go ==).
func (a *Matrix[T]) Equal(b *Matrix[T]) bool {
	if a.n != b.n {
		return false
	}
	for i := range a.data {
		if !scalar.Equal(a.data[i], b.data[i]) {
			return false
		}
	}
	return true
}

// String formats m one row per line, for debugging and test failure
// output. It is not part of any public solving contract.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.n; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j := 0; j < m.n; j++ {
			if j > 0 {
				b.WriteByte('\t')
			}
			fmt.Fprintf(&b, "%v", m.At(i, j))
		}
	}
	return b.String()
}

// Vector is an ordered, fixed-length sequence of scalars.
type Vector[T scalar.S[T]] struct {
	data []T
}

// NewVector builds a vector owning a copy of values.
func NewVector[T scalar.S[T]](values []T) *Vector[T] {
	data := make([]T, len(values))
	copy(data, values)
	return &Vector[T]{data: data}
}

func newVectorData[T scalar.S[T]](data []T) *Vector[T] {
	return &Vector[T]{data: data}
}

// Len returns the vector's length.
func (v *Vector[T]) Len() int { return len(v.data) }

// At returns the element at index i.
func (v *Vector[T]) At(i int) T { return v.data[i] }

// Slice returns a freshly allocated copy of the vector's elements.
func (v *Vector[T]) Slice() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}

// Clone returns a deep copy of v.
func (v *Vector[T]) Clone() *Vector[T] {
	return NewVector(v.data)
}

// Equal reports whether a and b have the same length and compare equal
// element-wise under Cmp.
func (a *Vector[T]) Equal(b *Vector[T]) bool {
	if len(a.data) != len(b.data) {
		return false
	}
	for i := range a.data {
		if !scalar.Equal(a.data[i], b.data[i]) {
			return false
		}
	}
	return true
}

// String formats v as a comma-separated list, for debugging and test
// failure output.
func (v *Vector[T]) String() string {
	parts := make([]string, len(v.data))
	for i, x := range v.data {
		parts[i] = fmt.Sprintf("%v", x)
	}
	return strings.Join(parts, ", ")
}
