package quadmatrix

import (
	"github.com/m-vokhm/QuadMatrix-sub001/internal/kahan"
	"github.com/m-vokhm/QuadMatrix-sub001/scalar"
)

// equilibrate builds the working LU buffer and the row-scale vector by
// optional row equilibration. When needToScale is false, the working
// buffer is a deep copy of A and rowScales is all ones.
func equilibrate[T scalar.S[T]](a *Matrix[T], needToScale bool) (work *Matrix[T], rowScales []T) {
	n := a.N()
	zero := a.At(0, 0).Zero()
	one := zero.One()

	rowScales = make([]T, n)
	if !needToScale {
		for i := range rowScales {
			rowScales[i] = one
		}
		return a.Clone(), rowScales
	}

	data := make([]T, n*n)
	for i := 0; i < n; i++ {
		abs := make([]T, n)
		for j := 0; j < n; j++ {
			abs[j] = a.At(i, j).Abs()
		}
		rowSum := kahan.Sum(zero, abs)

		var scale T
		if rowSum.IsZero() {
			scale = one
		} else {
			scale = one.Div(rowSum)
		}
		rowScales[i] = scale

		for j := 0; j < n; j++ {
			data[i*n+j] = a.At(i, j).Mul(scale)
		}
	}
	return newMatrixData(n, data), rowScales
}
