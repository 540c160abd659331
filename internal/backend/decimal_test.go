package backend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalEval(t *testing.T) {
	d, err := NewDecimal(10, DefaultDecimalParams())
	require.NoError(t, err)

	res, err := d.Eval(0)
	require.NoError(t, err)
	assert.Equal(t, "0", res.Value)
	assert.False(t, res.NegInf)

	res, err = d.Eval(-1)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.Value, "-2.302585092994"), "got %s", res.Value)
}

func TestDecimalBoundaryAdjacency(t *testing.T) {
	// With the default context (precision 28, min exponent -999999) the
	// smallest nonzero power of ten is 1E-1000026; one step further the
	// power underflows to exact zero and ln returns the sentinel.
	d, err := NewDecimal(10, DefaultDecimalParams())
	require.NoError(t, err)

	res, err := d.Eval(-1000026)
	require.NoError(t, err)
	assert.False(t, res.NegInf)
	// ln(1E-1000026) = -1000026 * ln(10)
	assert.True(t, strings.HasPrefix(res.Value, "-2302644.96020646"), "got %s", res.Value)

	res, err = d.Eval(-1000027)
	require.NoError(t, err)
	assert.True(t, res.NegInf)
	assert.Equal(t, "-Infinity", res.Value)
}

func TestDecimalBoundaryTracksPrecision(t *testing.T) {
	// The boundary is min_exponent - precision: two more digits of working
	// precision push e-tiny, and with it the boundary, two steps down.
	params := DefaultDecimalParams()
	params.Precision = 30
	d, err := NewDecimal(10, params)
	require.NoError(t, err)

	res, err := d.Eval(-1000028)
	require.NoError(t, err)
	assert.False(t, res.NegInf)

	res, err = d.Eval(-1000029)
	require.NoError(t, err)
	assert.True(t, res.NegInf)
}

func TestDecimalDeepExponents(t *testing.T) {
	// Exponents far beyond what an exponential-based power implementation
	// accepts must evaluate cleanly all the way down to the boundary.
	d, err := NewDecimal(10, DefaultDecimalParams())
	require.NoError(t, err)

	for _, exp := range []int{-1024, -131072, -500000, -999999, -1000026} {
		res, err := d.Eval(exp)
		require.NoError(t, err, "exponent %d", exp)
		assert.False(t, res.NegInf, "exponent %d", exp)
		assert.True(t, strings.HasPrefix(res.Value, "-"), "exponent %d: got %s", exp, res.Value)
	}
}

func TestDecimalNonDecimalBase(t *testing.T) {
	// Base 2 exercises the square-and-multiply path: 2^-100000 is around
	// 10^-30103 and still finite, while 2^-3400000 is far below e-tiny
	// and underflows to the sentinel.
	d, err := NewDecimal(2, DefaultDecimalParams())
	require.NoError(t, err)

	res, err := d.Eval(-100000)
	require.NoError(t, err)
	assert.False(t, res.NegInf)
	assert.True(t, strings.HasPrefix(res.Value, "-69314."), "got %s", res.Value)

	res, err = d.Eval(-3400000)
	require.NoError(t, err)
	assert.True(t, res.NegInf)
}

func TestDecimalDeterminism(t *testing.T) {
	d, err := NewDecimal(10, DefaultDecimalParams())
	require.NoError(t, err)
	first, err := d.Eval(-500000)
	require.NoError(t, err)
	res, err := d.Eval(-500000)
	require.NoError(t, err)
	assert.Equal(t, first, res)
}

func TestDecimalParamsValidation(t *testing.T) {
	_, err := NewDecimal(10, DecimalParams{Precision: 0, MinExponent: -10, MaxExponent: 10})
	assert.Error(t, err)

	_, err = NewDecimal(10, DecimalParams{Precision: 5, MinExponent: 10, MaxExponent: 20})
	assert.Error(t, err)
}
