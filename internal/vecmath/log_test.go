package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcast(t *testing.T) {
	v := Broadcast(2.5)
	data := v.Data()
	require.Len(t, data, Lanes)
	for _, x := range data {
		assert.Equal(t, 2.5, x)
	}
}

func TestLoadPartial(t *testing.T) {
	v := Load([]float64{1, 2})
	data := v.Data()
	require.Len(t, data, Lanes)
	assert.Equal(t, 1.0, data[0])
	assert.Equal(t, 2.0, data[1])
	assert.Equal(t, 0.0, data[2])
	assert.Equal(t, 0.0, data[3])
}

func TestLog64(t *testing.T) {
	v := Log64(Load([]float64{1, math.E, 10, 100}))
	data := v.Data()
	assert.Equal(t, 0.0, data[0])
	assert.InDelta(t, 1.0, data[1], 1e-15)
	assert.InDelta(t, math.Ln10, data[2], 1e-15)
	assert.InDelta(t, 2*math.Ln10, data[3], 1e-14)
}

func TestLog64SpecialCases(t *testing.T) {
	data := Log64(Load([]float64{0, -1, math.Inf(1), math.NaN()})).Data()
	assert.True(t, math.IsInf(data[0], -1), "Log64(0) should be -Inf")
	assert.True(t, math.IsNaN(data[1]), "Log64(-1) should be NaN")
	assert.True(t, math.IsInf(data[2], 1), "Log64(+Inf) should be +Inf")
	assert.True(t, math.IsNaN(data[3]), "Log64(NaN) should be NaN")
}

func TestLog64Subnormal(t *testing.T) {
	// Smallest subnormal double still has a finite log.
	tiny := math.SmallestNonzeroFloat64
	data := Log64(Broadcast(tiny)).Data()
	for _, x := range data {
		assert.False(t, math.IsInf(x, 0))
		assert.False(t, math.IsNaN(x))
		assert.InDelta(t, -744.44, x, 0.01)
	}
}
