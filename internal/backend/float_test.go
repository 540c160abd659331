package backend

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatEval(t *testing.T) {
	f := NewFloat(10)

	res, err := f.Eval(0)
	require.NoError(t, err)
	assert.Equal(t, "0", res.Value)
	assert.False(t, res.NegInf)

	res, err = f.Eval(-1)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.Value, "-2.302585"), "got %s", res.Value)
}

func TestFloatBoundaryAdjacency(t *testing.T) {
	f := NewFloat(10)

	// One above the boundary: subnormal input, finite log.
	res, err := f.Eval(-323)
	require.NoError(t, err)
	assert.False(t, res.NegInf)
	assert.NotEmpty(t, res.Value)

	// At the boundary: 10^-324 underflows to zero, out of the log domain.
	_, err = f.Eval(-324)
	require.Error(t, err)
	var derr *DomainError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, KindFloat, derr.Backend)
	assert.Equal(t, -324, derr.Exp)
	assert.Equal(t, 0.0, derr.Input)
}

func TestFloatDeterminism(t *testing.T) {
	f := NewFloat(10)
	first, err := f.Eval(-100)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		res, err := f.Eval(-100)
		require.NoError(t, err)
		assert.Equal(t, first, res)
	}
}
