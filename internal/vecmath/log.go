// Package vecmath provides a small lane-oriented vector math kernel.
//
// The kernel mirrors the shape of SIMD math libraries: operations work on
// fixed-width lane vectors, and each operation is a package-level function
// variable so an architecture-specific implementation can be installed at
// init time. Only the portable fallback is provided here; it applies the
// scalar routine to each lane independently, which preserves the exact
// IEEE-754 semantics of the underlying representation.
package vecmath

import "math"

// Lanes is the fixed lane count of a Vec.
const Lanes = 4

// Vec is a fixed-width vector of float64 lanes.
type Vec struct {
	lanes [Lanes]float64
}

// Broadcast returns a Vec with x replicated across every lane.
func Broadcast(x float64) Vec {
	var v Vec
	for i := range v.lanes {
		v.lanes[i] = x
	}
	return v
}

// Load returns a Vec holding the first Lanes elements of data.
// Missing elements are zero.
func Load(data []float64) Vec {
	var v Vec
	copy(v.lanes[:], data)
	return v
}

// Data returns a copy of the lane values.
func (v Vec) Data() []float64 {
	out := make([]float64, Lanes)
	copy(out, v.lanes[:])
	return out
}

// Log64 computes ln(x) for each lane of the input vector.
//
// Special cases, per lane:
//   - Log64(0) = -Inf
//   - Log64(x) = NaN for x < 0
//   - Log64(+Inf) = +Inf
//   - Log64(NaN) = NaN
//
// This function variable holds the portable fallback and may be replaced
// by an optimized implementation at init time.
var Log64 func(v Vec) Vec = logFallback

func logFallback(v Vec) Vec {
	var out Vec
	for i, x := range v.lanes {
		out.lanes[i] = math.Log(x)
	}
	return out
}
