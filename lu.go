package quadmatrix

import (
	"github.com/m-vokhm/QuadMatrix-sub001/internal/pivot"
	"github.com/m-vokhm/QuadMatrix-sub001/scalar"
)

// ensureLU factorizes s.a in place into s.lu on first call and returns the
// cached result on every later call (an UNFACTORED -> FACTORED -> ERROR
// state machine: there is no return to UNFACTORED).
//
// Per a documented, and flagged-as-possibly-buggy (see DESIGN.md)
// asymmetry, errorCode is reset to OK at the entry of every LU solve so a
// prior Cholesky failure cannot mask a later LU success; Cholesky entry
// does not do the same.
func (s *Solver[T]) ensureLU(op string) *Error {
	s.errorCode = OK

	if s.luError {
		s.errorCode = NonInvertible
		return newError(op, NonInvertible)
	}
	if s.lu != nil {
		return nil
	}

	work, rowScales := equilibrate(s.a, s.needToScale)
	n := work.N()
	perm := pivot.New(n)
	sign := 1

	for i := 0; i < n; i++ {
		p := i
		max := work.At(i, i).Abs()
		for j := i + 1; j < n; j++ {
			v := work.At(j, i).Abs()
			if v.Cmp(max) > 0 {
				max = v
				p = j
			}
		}
		if p != i {
			swapRows(work, p, i)
			perm.Swap(p, i)
			sign = -sign
		}

		pivotVal := work.At(i, i)
		if pivotVal.IsZero() {
			s.luError = true
			s.errorCode = NonInvertible
			return newError(op, NonInvertible)
		}
		inv := pivotVal.One().Div(pivotVal)

		for j := i + 1; j < n; j++ {
			jv := work.At(j, i)
			if jv.IsZero() {
				continue
			}
			f := jv.Mul(inv)
			work.set(j, i, f)
			for k := i + 1; k < n; k++ {
				work.set(j, k, work.At(j, k).Sub(work.At(i, k).Mul(f)))
			}
		}
	}

	if !perm.IsPermutation() {
		panic("quadmatrix: pivot bookkeeping violated the permutation invariant")
	}

	s.lu = work
	s.pivot = perm
	s.rowScales = rowScales
	s.detSign = sign
	s.lastMethod = methodLU
	return nil
}

func swapRows[T scalar.S[T]](m *Matrix[T], a, b int) {
	if a == b {
		return
	}
	n := m.N()
	ra := m.data[a*n : a*n+n]
	rb := m.data[b*n : b*n+n]
	for k := 0; k < n; k++ {
		ra[k], rb[k] = rb[k], ra[k]
	}
}

// solveLUVec solves A·x = b using the cached LU factors. b is not
// mutated.
func (s *Solver[T]) solveLUVec(op string, b *Vector[T]) (*Vector[T], *Error) {
	if err := s.ensureLU(op); err != nil {
		return nil, err
	}
	n := s.lu.N()
	if b.Len() != n {
		return nil, newError(op, SizeMismatch)
	}

	// Scale, then permute: z[i] = b[pivot[i]] * rowScales[pivot[i]].
	raw := make([]T, n)
	for i := 0; i < n; i++ {
		raw[i] = b.At(i).Mul(s.rowScales[i])
	}
	z := pivot.Apply(s.pivot, raw)

	forwardSolve(s.lu, z)
	backSolve(s.lu, z)

	s.lastMethod = methodLU
	return newVectorData(z), nil
}

// forwardSolve performs the unit-lower-triangular solve L·z = y in place,
// using the multipliers packed below the diagonal of lu.
func forwardSolve[T scalar.S[T]](lu *Matrix[T], z []T) {
	n := lu.N()
	for k := 0; k < n; k++ {
		for i := k + 1; i < n; i++ {
			z[i] = z[i].Sub(z[k].Mul(lu.At(i, k)))
		}
	}
}

// backSolve performs the upper-triangular solve U·x = z in place.
func backSolve[T scalar.S[T]](lu *Matrix[T], z []T) {
	n := lu.N()
	for k := n - 1; k >= 0; k-- {
		z[k] = z[k].Div(lu.At(k, k))
		for i := 0; i < k; i++ {
			z[i] = z[i].Sub(z[k].Mul(lu.At(i, k)))
		}
	}
}

// solveLUMat solves A·X = B using the cached LU factors, column by column.
// Per the documented "spoils B" contract, b's backing data is
// overwritten; callers that need to keep b must pass a copy.
func (s *Solver[T]) solveLUMat(op string, b *Matrix[T]) (*Matrix[T], *Error) {
	if err := s.ensureLU(op); err != nil {
		return nil, err
	}
	n := s.lu.N()
	if b.N() != n {
		return nil, newError(op, SizeMismatch)
	}

	// Scale and permute each column of b, then run the same forward/back
	// substitution as the vector path across all columns at once per row,
	// so the innermost operation is a row-vector update across all M
	// columns rather than M separate scalar updates.
	scaled := make([]T, n*n)
	col := make([]T, n)
	for c := 0; c < n; c++ {
		for i := 0; i < n; i++ {
			col[i] = b.At(i, c).Mul(s.rowScales[i])
		}
		permuted := pivot.Apply(s.pivot, col)
		for i := 0; i < n; i++ {
			scaled[i*n+c] = permuted[i]
		}
	}
	x := newMatrixData(n, scaled)

	for k := 0; k < n; k++ {
		for i := k + 1; i < n; i++ {
			f := s.lu.At(i, k)
			for c := 0; c < n; c++ {
				x.set(i, c, x.At(i, c).Sub(x.At(k, c).Mul(f)))
			}
		}
	}
	for k := n - 1; k >= 0; k-- {
		d := s.lu.At(k, k)
		for c := 0; c < n; c++ {
			x.set(k, c, x.At(k, c).Div(d))
		}
		for i := 0; i < k; i++ {
			f := s.lu.At(i, k)
			for c := 0; c < n; c++ {
				x.set(i, c, x.At(i, c).Sub(x.At(k, c).Mul(f)))
			}
		}
	}

	// Spoils-B contract: this internal entry point writes the
	// solution back through b's storage for the benefit of any caller that
	// already owns a scratch buffer it doesn't need afterward. The public
	// SolveMatrix/SolveMatrixAccurately facades protect the caller's data
	// by passing a Clone() here instead of the caller's own matrix.
	copy(b.data, x.data)

	s.lastMethod = methodLU
	return x, nil
}
