package quadmatrix

import "github.com/m-vokhm/QuadMatrix-sub001/internal/kahan"

// ensureCholesky factorizes s.a into its lower-triangular Cholesky factor
// on first call and returns the cached result thereafter. Cholesky does
// not use equilibration or pivoting. Unlike ensureLU, entry here does not
// reset errorCode — a deliberately preserved asymmetry flagged as
// possibly buggy in DESIGN.md.
func (s *Solver[T]) ensureCholesky(op string) *Error {
	if s.cholError {
		return newError(op, s.cholErrorKind)
	}
	if s.chol != nil {
		return nil
	}

	n := s.a.N()
	zero := s.a.At(0, 0).Zero()
	data := make([]T, n*n)
	l := newMatrixData(n, data)

	for i := 0; i < n; i++ {
		sum2 := kahan.NewAccumulator(zero)
		for j := 0; j < i; j++ {
			if s.a.At(i, j).Cmp(s.a.At(j, i)) != 0 {
				s.cholError = true
				s.cholErrorKind = Asymmetric
				s.errorCode = Asymmetric
				return newError(op, Asymmetric)
			}

			dot := kahan.NewAccumulator(zero)
			for k := 0; k < j; k++ {
				dot.Add(l.At(i, k).Mul(l.At(j, k)))
			}
			v := s.a.At(i, j).Sub(dot.Sum()).Div(l.At(j, j))
			l.set(i, j, v)
			sum2.Add(v.Mul(v))
		}

		d := s.a.At(i, i).Sub(sum2.Sum())
		if !d.IsNeg() && !d.IsZero() && !d.IsNaN() && !d.IsInf() {
			l.set(i, i, d.Sqrt())
			continue
		}
		// d <= 0, or infinite, or NaN: not positive-definite. d must be
		// strictly greater than zero; zero itself is rejected too.
		s.cholError = true
		s.cholErrorKind = NonSPD
		s.errorCode = NonSPD
		return newError(op, NonSPD)
	}

	s.chol = l
	s.lastMethod = methodCholesky
	return nil
}

// solveCholeskyVec solves A·x = b via the cached Cholesky factor. b is
// not mutated.
func (s *Solver[T]) solveCholeskyVec(op string, b *Vector[T]) (*Vector[T], *Error) {
	if err := s.ensureCholesky(op); err != nil {
		return nil, err
	}
	n := s.chol.N()
	if b.Len() != n {
		return nil, newError(op, SizeMismatch)
	}

	x := b.Slice()
	for i := 0; i < n; i++ {
		for k := 0; k < i; k++ {
			x[i] = x[i].Sub(x[k].Mul(s.chol.At(i, k)))
		}
		x[i] = x[i].Div(s.chol.At(i, i))
	}
	for k := n - 1; k >= 0; k-- {
		for i := k + 1; i < n; i++ {
			x[k] = x[k].Sub(x[i].Mul(s.chol.At(i, k)))
		}
		x[k] = x[k].Div(s.chol.At(k, k))
	}

	s.lastMethod = methodCholesky
	return newVectorData(x), nil
}

// solveCholeskyMat solves A·X = B column by column via the cached
// Cholesky factor.
func (s *Solver[T]) solveCholeskyMat(op string, b *Matrix[T]) (*Matrix[T], *Error) {
	if err := s.ensureCholesky(op); err != nil {
		return nil, err
	}
	n := s.chol.N()
	if b.N() != n {
		return nil, newError(op, SizeMismatch)
	}

	cols := make([]*Vector[T], b.N())
	for c := 0; c < n; c++ {
		col := make([]T, n)
		for r := 0; r < n; r++ {
			col[r] = b.At(r, c)
		}
		cols[c] = newVectorData(col)
	}

	data := make([]T, n*n)
	for c, col := range cols {
		x, err := s.solveCholeskyVec(op, col)
		if err != nil {
			return nil, err
		}
		for r := 0; r < n; r++ {
			data[r*n+c] = x.At(r)
		}
	}

	s.lastMethod = methodCholesky
	return newMatrixData(n, data), nil
}
