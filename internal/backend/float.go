package backend

import (
	"math"
	"strconv"
)

// Float evaluates logarithms in fixed-width IEEE-754 double precision.
// Once base^exp underflows to zero, Eval returns a DomainError; that is the
// boundary the probe is looking for.
type Float struct {
	base int
}

// NewFloat returns a double-precision float adapter for the given base.
func NewFloat(base int) *Float {
	return &Float{base: base}
}

func (f *Float) Name() string { return KindFloat }

// Eval computes log(base^exp) in double precision.
func (f *Float) Eval(exp int) (Result, error) {
	x := powFloat(f.base, exp)
	if x <= 0 {
		return Result{}, &DomainError{Backend: f.Name(), Exp: exp, Input: x}
	}
	v := math.Log(x)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return Result{}, &DomainError{Backend: f.Name(), Exp: exp, Input: x}
	}
	return Result{Value: formatFloat(v)}, nil
}

// powFloat computes base^exp as a float64. Base 10 goes through the exact
// table-driven math.Pow10, which underflows to zero below 10^-323.
func powFloat(base, exp int) float64 {
	if base == 10 {
		return math.Pow10(exp)
	}
	return math.Pow(float64(base), float64(exp))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
