package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeomean(t *testing.T) {
	v, ok := Geomean([]float64{2, 8})
	require.True(t, ok)
	assert.Equal(t, 4.0, v)

	v, ok = Geomean([]float64{3})
	require.True(t, ok)
	assert.Equal(t, 3.0, v)

	v, ok = Geomean([]float64{1, 1, 1, 1})
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
}

func TestGeomean_Empty(t *testing.T) {
	_, ok := Geomean(nil)
	assert.False(t, ok)
}
