package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/limes/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, rc := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(rc[0], rc[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	assert.Contains(t, err.Error(), "Dense.At(2,0)")
	err = m.Set(0, -1, 1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	assert.Contains(t, err.Error(), "Dense.Set(0,-1)")
}

func TestDense_FillString(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	m.Fill(math.NaN())
	require.NoError(t, m.Set(0, 0, 1))

	v, _ := m.At(1, 1)
	assert.True(t, math.IsNaN(v))
	assert.Equal(t, "[1, NaN]\n[NaN, NaN]\n", m.String())
}
