package backend

import (
	"math"

	"github.com/edkrueger/log-precision/internal/vecmath"
)

// Vector evaluates logarithms through the lane-wise vecmath kernel. The
// representation is the same double precision as Float, but failure surfaces
// differently: a lane quietly turns non-finite instead of leaving the log
// domain. With escalate set, such lanes become UnderflowErrors; without it
// they pass through as ordinary values and the probe never finds a boundary.
type Vector struct {
	base     int
	escalate bool
}

// NewVector returns a vectorized double-precision adapter for the given base.
func NewVector(base int, escalate bool) *Vector {
	return &Vector{base: base, escalate: escalate}
}

func (v *Vector) Name() string { return KindVector }

// Eval broadcasts base^exp across the kernel lanes and takes the lane-wise log.
func (v *Vector) Eval(exp int) (Result, error) {
	x := powFloat(v.base, exp)
	lanes := vecmath.Log64(vecmath.Broadcast(x)).Data()
	for i, lane := range lanes {
		if math.IsInf(lane, 0) || math.IsNaN(lane) {
			if v.escalate {
				return Result{}, &UnderflowError{Backend: v.Name(), Exp: exp, Lane: i}
			}
			return Result{Value: formatFloat(lane)}, nil
		}
	}
	return Result{Value: formatFloat(lanes[0])}, nil
}
