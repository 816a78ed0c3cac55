package quadmatrix

import (
	"math"

	"github.com/m-vokhm/QuadMatrix-sub001/internal/kahan"
	"github.com/m-vokhm/QuadMatrix-sub001/scalar"
)

// Transpose returns a freshly allocated transpose of the original matrix A.
// It does not consult or disturb any cached factorization.
func (s *Solver[T]) Transpose() *Matrix[T] {
	n := s.a.N()
	data := make([]T, n*n)
	out := newMatrixData(n, data)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.set(i, j, s.a.At(j, i))
		}
	}
	return out
}

// Unity returns a freshly allocated N×N identity matrix, at the scalar
// configuration of A's elements.
func (s *Solver[T]) Unity() *Matrix[T] {
	n := s.a.N()
	zero := s.a.At(0, 0).Zero()
	one := zero.One()
	data := make([]T, n*n)
	out := newMatrixData(n, data)
	for i := 0; i < n; i++ {
		out.set(i, i, one)
		for j := 0; j < n; j++ {
			if j != i {
				out.set(i, j, zero)
			}
		}
	}
	return out
}

// MultiplyMatrix returns A·f, a fresh N×N matrix, using compensated
// summation for each inner product.
func (s *Solver[T]) MultiplyMatrix(f *Matrix[T]) (*Matrix[T], *Error) {
	n := s.a.N()
	if f.N() != n {
		return nil, newError("multiplyMatrix", SizeMismatch)
	}
	zero := s.a.At(0, 0).Zero()
	data := make([]T, n*n)
	out := newMatrixData(n, data)
	terms := make([]T, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				terms[k] = s.a.At(i, k).Mul(f.At(k, j))
			}
			out.set(i, j, kahan.Sum(zero, terms))
		}
	}
	return out, nil
}

// MultiplyVector returns A·v, a fresh vector, using compensated summation
// for each inner product.
func (s *Solver[T]) MultiplyVector(v *Vector[T]) (*Vector[T], *Error) {
	n := s.a.N()
	if v.Len() != n {
		return nil, newError("multiplyVector", SizeMismatch)
	}
	zero := s.a.At(0, 0).Zero()
	data := make([]T, n)
	terms := make([]T, n)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			terms[k] = s.a.At(i, k).Mul(v.At(k))
		}
		data[i] = kahan.Sum(zero, terms)
	}
	return newVectorData(data), nil
}

// MultiplyScalar returns f·A, a fresh matrix.
func (s *Solver[T]) MultiplyScalar(f T) *Matrix[T] {
	n := s.a.N()
	data := make([]T, n*n)
	for i, v := range s.a.data {
		data[i] = v.Mul(f)
	}
	return newMatrixData(n, data)
}

// Add returns A+B, a fresh matrix. Elementwise shape agreement is checked
// here rather than left to the caller: a mismatch is reported rather than
// panicking or silently truncating.
func (s *Solver[T]) Add(b *Matrix[T]) (*Matrix[T], *Error) {
	return elementwise(s.a, b, "add", func(x, y T) T { return x.Add(y) })
}

// Subtract returns A-B, a fresh matrix.
func (s *Solver[T]) Subtract(b *Matrix[T]) (*Matrix[T], *Error) {
	return elementwise(s.a, b, "subtract", func(x, y T) T { return x.Sub(y) })
}

func elementwise[T scalar.S[T]](a, b *Matrix[T], op string, f func(x, y T) T) (*Matrix[T], *Error) {
	n := a.N()
	if b.N() != n {
		return nil, newError(op, SizeMismatch)
	}
	data := make([]T, n*n)
	for i := range data {
		data[i] = f(a.data[i], b.data[i])
	}
	return newMatrixData(n, data), nil
}

// Determinant returns det(A), computed from the cached LU factorization
// (triggering it if absent) and memoized thereafter:
//
//	det = detSign * Π(W[i][i]) / Π(rowScales[i])
//
// A singular A yields a determinant of zero rather than an error — the
// sole operation with this contract.
func (s *Solver[T]) Determinant() T {
	if s.determinant != nil {
		return *s.determinant
	}
	zero := s.a.At(0, 0).Zero()
	if err := s.ensureLU("determinant"); err != nil {
		z := zero
		s.determinant = &z
		return z
	}

	n := s.lu.N()
	one := zero.One()
	prod := one
	for i := 0; i < n; i++ {
		prod = prod.Mul(s.lu.At(i, i))
	}
	for _, r := range s.rowScales {
		prod = prod.Div(r)
	}
	if s.detSign < 0 {
		prod = zero.Sub(prod)
	}
	s.determinant = &prod
	return prod
}

// Norm returns the row-sum (infinity) norm of A: max_i Σ_j |A[i][j]|,
// computed with compensated summation and memoized.
func (s *Solver[T]) Norm() T {
	if s.norm != nil {
		return *s.norm
	}
	n := s.a.N()
	zero := s.a.At(0, 0).Zero()
	var best T
	terms := make([]T, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			terms[j] = s.a.At(i, j).Abs()
		}
		rowSum := kahan.Sum(zero, terms)
		if i == 0 || rowSum.Cmp(best) > 0 {
			best = rowSum
		}
	}
	s.norm = &best
	return best
}

// Inverse returns A⁻¹, computed by solving A·X = I and memoized. The
// identity right-hand side is built internally so the public caller's
// own data is never at risk from the "spoils B" internal contract.
func (s *Solver[T]) Inverse() (*Matrix[T], *Error) {
	if s.inversion != nil {
		return s.inversion.Clone(), nil
	}
	x, err := s.solveLUMat("inverse", s.Unity())
	if err != nil {
		return nil, err
	}
	s.inversion = x
	return x.Clone(), nil
}

// Cond returns the condition number norm(A)·norm(A⁻¹) as a float64, or
// +Inf when A is non-invertible.
func (s *Solver[T]) Cond() float64 {
	inv, err := s.Inverse()
	if err != nil {
		return math.Inf(1)
	}
	normA := s.Norm()
	invSolver := &Solver[T]{a: inv, needToScale: s.needToScale, detSign: 1}
	normInv := invSolver.Norm()
	return toFloat64(normA) * toFloat64(normInv)
}

// float64Valuer is implemented by scalar backends that can report an
// approximate float64 view of themselves. Cond's return type is pinned to
// float64 regardless of the solving precision, so any backend wired into
// Solver for Cond must implement it; Float64 does so trivially and
// BigFloat exposes Float64() for exactly this purpose.
type float64Valuer interface {
	Float64() float64
}

// toFloat64 extracts the float64 view of x for Cond's mandated return
// type. It panics for a backend that implements S but not float64Valuer,
// which in practice only affects a not-yet-written Decimal backend (see
// decimal.go) — Cond would need a conversion method added there too.
func toFloat64[T scalar.S[T]](x T) float64 {
	if f, ok := any(x).(scalar.Float64); ok {
		return float64(f)
	}
	if v, ok := any(x).(float64Valuer); ok {
		return v.Float64()
	}
	panic("quadmatrix: Cond requires a scalar backend convertible to float64")
}
