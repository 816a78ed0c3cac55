package quadmatrix

import (
	"github.com/m-vokhm/QuadMatrix-sub001/internal/kahan"
	"github.com/m-vokhm/QuadMatrix-sub001/scalar"
)

const (
	refineMaxIterations = 20
	// refineMinFactorHalvings is the number of times one must be halved to
	// reach MIN_FACTOR = 1/8, i.e. log2(8).
	refineMinFactorHalvings = 3
)

// refineVec runs the damped-correction iterative refinement loop over a
// vector right-hand side. Each correction solve is routed through
// s.lastMethod rather than a fresh factorization, reusing whichever of LU
// or Cholesky produced x0.
func (s *Solver[T]) refineVec(op string, x0, b *Vector[T]) (*Vector[T], *Error) {
	zero := x0.At(0).Zero()
	one := zero.One()
	two := one.Add(one)
	minFactor := one
	for i := 0; i < refineMinFactorHalvings; i++ {
		minFactor = minFactor.Div(two)
	}

	correctionFactor := one
	bestError := zero.Inf()
	bestX := x0.Clone()
	xk := x0.Clone()

	for iter := 0; iter < refineMaxIterations; iter++ {
		ax, err := s.MultiplyVector(xk)
		if err != nil {
			return nil, err
		}
		r := subtractVectors(ax, b)
		errVal := sumOfSquaresVec(r)

		if errVal.Cmp(bestError) < 0 {
			bestError = errVal
			bestX = xk.Clone()
			if errVal.IsZero() {
				return bestX, nil
			}
		} else {
			correctionFactor = correctionFactor.Div(two)
			if correctionFactor.Cmp(minFactor) < 0 {
				return bestX, nil
			}
		}

		delta, derr := s.solveByLastMethodVec(op, r)
		if derr != nil {
			return nil, derr
		}
		xk = subtractScaledVec(xk, correctionFactor, delta)
	}
	return bestX, nil
}

// refineMat is refineVec's matrix-right-hand-side counterpart. The error
// metric differs: root-mean-square of the residual rather than a bare
// sum of squares.
func (s *Solver[T]) refineMat(op string, x0, b *Matrix[T]) (*Matrix[T], *Error) {
	zero := x0.At(0, 0).Zero()
	one := zero.One()
	two := one.Add(one)
	minFactor := one
	for i := 0; i < refineMinFactorHalvings; i++ {
		minFactor = minFactor.Div(two)
	}

	n := x0.N()
	nSquared := one
	for i := 0; i < n*n-1; i++ {
		nSquared = nSquared.Add(one)
	}

	correctionFactor := one
	bestError := zero.Inf()
	bestX := x0.Clone()
	xk := x0.Clone()

	for iter := 0; iter < refineMaxIterations; iter++ {
		ax, err := s.MultiplyMatrix(xk)
		if err != nil {
			return nil, err
		}
		r := subtractMatrices(ax, b)
		errVal := sumOfSquaresMat(r).Div(nSquared).Sqrt()

		if errVal.Cmp(bestError) < 0 {
			bestError = errVal
			bestX = xk.Clone()
			if errVal.IsZero() {
				return bestX, nil
			}
		} else {
			correctionFactor = correctionFactor.Div(two)
			if correctionFactor.Cmp(minFactor) < 0 {
				return bestX, nil
			}
		}

		delta, derr := s.solveByLastMethodMat(op, r)
		if derr != nil {
			return nil, derr
		}
		xk = subtractScaledMat(xk, correctionFactor, delta)
	}
	return bestX, nil
}

func subtractVectors[T scalar.S[T]](a, b *Vector[T]) *Vector[T] {
	out := make([]T, a.Len())
	for i := range out {
		out[i] = a.At(i).Sub(b.At(i))
	}
	return newVectorData(out)
}

func subtractScaledVec[T scalar.S[T]](x *Vector[T], factor T, delta *Vector[T]) *Vector[T] {
	out := make([]T, x.Len())
	for i := range out {
		out[i] = x.At(i).Sub(factor.Mul(delta.At(i)))
	}
	return newVectorData(out)
}

func sumOfSquaresVec[T scalar.S[T]](v *Vector[T]) T {
	zero := v.At(0).Zero()
	terms := make([]T, v.Len())
	for i := range terms {
		terms[i] = v.At(i).Mul(v.At(i))
	}
	return kahan.Sum(zero, terms)
}

func subtractMatrices[T scalar.S[T]](a, b *Matrix[T]) *Matrix[T] {
	n := a.N()
	out := make([]T, n*n)
	for i := range out {
		out[i] = a.data[i].Sub(b.data[i])
	}
	return newMatrixData(n, out)
}

func subtractScaledMat[T scalar.S[T]](x *Matrix[T], factor T, delta *Matrix[T]) *Matrix[T] {
	n := x.N()
	out := make([]T, n*n)
	for i := range out {
		out[i] = x.data[i].Sub(factor.Mul(delta.data[i]))
	}
	return newMatrixData(n, out)
}

func sumOfSquaresMat[T scalar.S[T]](m *Matrix[T]) T {
	zero := m.data[0].Zero()
	terms := make([]T, len(m.data))
	for i, v := range m.data {
		terms[i] = v.Mul(v)
	}
	return kahan.Sum(zero, terms)
}
