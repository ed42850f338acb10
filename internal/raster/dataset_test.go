package raster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetSetAndGet(t *testing.T) {
	ds := New(2, 2)
	require.NoError(t, ds.Set("red", Band{1, 2, 3, 4}))

	band, err := ds.Get("red")
	require.NoError(t, err)
	assert.Equal(t, Band{1, 2, 3, 4}, band)

	_, err = ds.Get("nir")
	assert.ErrorIs(t, err, ErrBandNotFound)
}

func TestDatasetSetRejectsWrongShape(t *testing.T) {
	ds := New(2, 2)
	err := ds.Set("red", Band{1, 2, 3})
	assert.Error(t, err)
}

func TestDatasetSetOverwrites(t *testing.T) {
	ds := New(2, 1)
	require.NoError(t, ds.Set("ndvi", Band{0.1, 0.2}))
	require.NoError(t, ds.Set("ndvi", Band{0.3, 0.4}))

	band, err := ds.Get("ndvi")
	require.NoError(t, err)
	assert.Equal(t, Band{0.3, 0.4}, band)
	assert.Equal(t, []string{"ndvi"}, ds.Names())
}

func TestDatasetRename(t *testing.T) {
	ds := New(2, 1)
	require.NoError(t, ds.Set("nbart_red", Band{100, 200}))
	require.NoError(t, ds.Set("nbart_nir", Band{300, 400}))

	renamed := ds.Rename(map[string]string{"nbart_red": "red", "nbar_red": "red"})

	assert.Equal(t, []string{"nbart_nir", "red"}, renamed.Names())

	// The original keeps its names.
	assert.Equal(t, []string{"nbart_nir", "nbart_red"}, ds.Names())

	band, err := renamed.Get("red")
	require.NoError(t, err)
	assert.Equal(t, Band{100, 200}, band)
}

func TestDatasetDivide(t *testing.T) {
	ds := New(2, 1)
	require.NoError(t, ds.Set("red", Band{1000, 2500}))

	divided := ds.Divide(1000.0)

	band, err := divided.Get("red")
	require.NoError(t, err)
	assert.Equal(t, Band{1.0, 2.5}, band)

	// The original is untouched.
	band, err = ds.Get("red")
	require.NoError(t, err)
	assert.Equal(t, Band{1000, 2500}, band)
}

func TestBandElementwiseOps(t *testing.T) {
	a := Band{1, 2, 3}
	b := Band{4, 5, 6}

	assert.Equal(t, Band{5, 7, 9}, a.Add(b))
	assert.Equal(t, Band{-3, -3, -3}, a.Sub(b))
	assert.Equal(t, Band{4, 10, 18}, a.Mul(b))
	assert.Equal(t, Band{0.25, 0.4, 0.5}, a.Div(b))
	assert.Equal(t, Band{2, 4, 6}, a.Scale(2))
	assert.Equal(t, Band{1.5, 2.5, 3.5}, a.AddScalar(0.5))
	assert.Equal(t, Band{9, 8, 7}, a.SubFrom(10))
	assert.Equal(t, Band{1, 0.5, 0.25}, Band{1, 2, 4}.Reciprocal())
}

func TestBandDivisionByZeroFollowsIEEE(t *testing.T) {
	numerator := Band{1, -1, 0}
	denominator := Band{0, 0, 0}

	result := numerator.Div(denominator)

	assert.True(t, math.IsInf(result[0], 1))
	assert.True(t, math.IsInf(result[1], -1))
	assert.True(t, math.IsNaN(result[2]))
}
