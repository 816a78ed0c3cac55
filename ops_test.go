package quadmatrix

import (
	"math"
	"testing"

	"github.com/m-vokhm/QuadMatrix-sub001/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranspose(t *testing.T) {
	a := f64Matrix([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	s := NewSolver(a, false)
	tr := s.Transpose()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, a.At(j, i), tr.At(i, j))
		}
	}
}

func TestUnity(t *testing.T) {
	a := f64Matrix([][]float64{{5, 0}, {0, 5}})
	s := NewSolver(a, false)
	u := s.Unity()
	assert.Equal(t, scalar.Float64(1), u.At(0, 0))
	assert.Equal(t, scalar.Float64(0), u.At(0, 1))
	assert.Equal(t, scalar.Float64(1), u.At(1, 1))
}

func TestMultiplyScalar(t *testing.T) {
	a := f64Matrix([][]float64{{1, 2}, {3, 4}})
	s := NewSolver(a, false)
	out := s.MultiplyScalar(scalar.Float64(2))
	assert.Equal(t, scalar.Float64(2), out.At(0, 0))
	assert.Equal(t, scalar.Float64(8), out.At(1, 1))
}

func TestAddSubtract(t *testing.T) {
	a := f64Matrix([][]float64{{1, 2}, {3, 4}})
	b := f64Matrix([][]float64{{10, 20}, {30, 40}})
	s := NewSolver(a, false)

	sum, err := s.Add(b)
	require.Nil(t, err)
	assert.Equal(t, scalar.Float64(11), sum.At(0, 0))
	assert.Equal(t, scalar.Float64(44), sum.At(1, 1))

	diff, err := s.Subtract(b)
	require.Nil(t, err)
	assert.Equal(t, scalar.Float64(-9), diff.At(0, 0))

	mismatched := f64Matrix([][]float64{{1}})
	_, err = s.Add(mismatched)
	require.NotNil(t, err)
	assert.Equal(t, SizeMismatch, err.Kind)
}

func TestNorm(t *testing.T) {
	a := f64Matrix([][]float64{{1, -2, 3}, {-4, 5, -6}, {0, 0, 1}})
	s := NewSolver(a, false)
	// row sums of absolute values: 6, 15, 1 -> max is 15.
	assert.InDelta(t, 15.0, float64(s.Norm()), 1e-9)
}

func TestCondOfIdentityIsOne(t *testing.T) {
	a := f64Matrix([][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	s := NewSolver(a, false)
	assert.InDelta(t, 1.0, s.Cond(), 1e-9)
}

func TestCondOfSingularIsInf(t *testing.T) {
	a := f64Matrix([][]float64{{1, 2}, {2, 4}})
	s := NewSolver(a, false)
	assert.True(t, math.IsInf(s.Cond(), 1))
}

func TestInverseIsMemoized(t *testing.T) {
	a := f64Matrix([][]float64{{2, 0}, {0, 4}})
	s := NewSolver(a, false)

	inv1, err := s.Inverse()
	require.Nil(t, err)
	inv2, err := s.Inverse()
	require.Nil(t, err)
	assert.True(t, inv1.Equal(inv2))
	// Each call returns an independently owned matrix.
	inv1.set(0, 0, scalar.Float64(-1))
	assert.NotEqual(t, inv1.At(0, 0), inv2.At(0, 0))
}

func TestInverseAccurately(t *testing.T) {
	a := f64Matrix([][]float64{{4, 3}, {6, 3}})
	s := NewSolver(a, false)

	inv, err := s.InverseAccurately()
	require.Nil(t, err)

	prod, err := s.MultiplyMatrix(inv)
	require.Nil(t, err)
	assert.InDelta(t, 1.0, float64(prod.At(0, 0)), 1e-9)
	assert.InDelta(t, 0.0, float64(prod.At(0, 1)), 1e-9)
	assert.InDelta(t, 1.0, float64(prod.At(1, 1)), 1e-9)
}
