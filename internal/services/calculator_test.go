package services

import (
	"context"
	"math"
	"place-distance-service/internal/adapters/distance"
	"place-distance-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceCalculatorRoundsToTwoDecimals(t *testing.T) {
	c, err := NewDistanceCalculator(distance.MockDistanceMethod{Km: 325.2987})
	require.NoError(t, err)

	km, err := c.Calculate(context.Background(),
		domain.Coordinates{Lat: 37.55, Lon: 126.97},
		domain.Coordinates{Lat: 35.11, Lon: 129.04},
	)
	require.NoError(t, err)
	assert.Equal(t, 325.3, km)
}

func TestDistanceCalculatorGeodesic(t *testing.T) {
	c, err := NewDistanceCalculator(distance.Geodesic{})
	require.NoError(t, err)

	km, err := c.Calculate(context.Background(),
		domain.Coordinates{Lat: 0, Lon: 0},
		domain.Coordinates{Lat: 0, Lon: 1},
	)
	require.NoError(t, err)
	assert.Equal(t, 111.32, km)
}

func TestDistanceCalculatorRejectsInvalidCoordinates(t *testing.T) {
	c, err := NewDistanceCalculator(distance.Haversine{})
	require.NoError(t, err)

	_, err = c.Calculate(context.Background(),
		domain.Coordinates{Lat: 120, Lon: 0},
		domain.Coordinates{Lat: 0, Lon: 0},
	)
	require.ErrorIs(t, err, domain.ErrInvalidCoordinates)
}

func TestDistanceCalculatorRejectsNonFinite(t *testing.T) {
	c, err := NewDistanceCalculator(distance.MockDistanceMethod{Km: math.NaN()})
	require.NoError(t, err)

	_, err = c.Calculate(context.Background(), domain.Coordinates{}, domain.Coordinates{})
	require.Error(t, err)
}
