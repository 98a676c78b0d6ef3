package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_IdenticalPoints(t *testing.T) {
	assert.Equal(t, 0.0, DistanceKm(139.7671, 35.6812, 139.7671, 35.6812))
	assert.Equal(t, 0.0, DistanceKm(0, 0, 0, 0))
}

func TestDistanceKm_Symmetric(t *testing.T) {
	// Tokyo Station <-> Shibuya Station
	d1 := DistanceKm(139.7671, 35.6812, 139.7016, 35.6580)
	d2 := DistanceKm(139.7016, 35.6580, 139.7671, 35.6812)

	assert.Equal(t, d1, d2)
	assert.Greater(t, d1, 0.0)
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Tokyo Station to Osaka Station is roughly 400 km
	d := DistanceKm(139.7671, 35.6812, 135.4959, 34.7025)

	assert.InDelta(t, 400, d, 10)
}

func TestDistanceKm_NaNPropagates(t *testing.T) {
	assert.True(t, math.IsNaN(DistanceKm(math.NaN(), 35.0, 139.0, 35.0)))
	assert.True(t, math.IsNaN(DistanceKm(139.0, 35.0, 139.0, math.NaN())))
}
