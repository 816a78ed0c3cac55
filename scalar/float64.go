package scalar

import "math"

// Float64 is the binary floating-point backend, the mandatory baseline
// precision: comparisons and Sqrt route directly to the host platform's
// IEEE-754 primitives.
type Float64 float64

func (x Float64) Add(y Float64) Float64 { return x + y }
func (x Float64) Sub(y Float64) Float64 { return x - y }
func (x Float64) Mul(y Float64) Float64 { return x * y }
func (x Float64) Div(y Float64) Float64 { return x / y }
func (x Float64) Abs() Float64          { return Float64(math.Abs(float64(x))) }
func (x Float64) Sqrt() Float64         { return Float64(math.Sqrt(float64(x))) }

func (x Float64) Cmp(y Float64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func (x Float64) IsZero() bool { return float64(x) == 0 }
func (x Float64) IsNaN() bool  { return math.IsNaN(float64(x)) }
func (x Float64) IsInf() bool  { return math.IsInf(float64(x), 0) }
func (x Float64) IsNeg() bool  { return float64(x) < 0 }

func (Float64) Zero() Float64 { return 0 }
func (Float64) One() Float64  { return 1 }
func (Float64) Inf() Float64  { return Float64(math.Inf(1)) }
func (Float64) NaN() Float64  { return Float64(math.NaN()) }
