package distance

import (
	"place-distance-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodsOneDegreeOnEquator(t *testing.T) {
	a := domain.Coordinates{Lat: 0, Lon: 0}
	b := domain.Coordinates{Lat: 0, Lon: 1}

	assert.InDelta(t, 111.3195, Geodesic{}.Kilometers(a, b), 0.001)
	assert.InDelta(t, 111.1949, Haversine{}.Kilometers(a, b), 0.001)
}

func TestMethodsAgreeOnSeoulBusan(t *testing.T) {
	seoul := domain.Coordinates{Lat: 37.55, Lon: 126.97}
	busan := domain.Coordinates{Lat: 35.11, Lon: 129.04}

	g := Geodesic{}.Kilometers(seoul, busan)
	h := Haversine{}.Kilometers(seoul, busan)

	assert.InDelta(t, 328, g, 5)
	assert.InDelta(t, g, h, g*0.005)
	assert.InDelta(t, g, Geodesic{}.Kilometers(busan, seoul), 1e-9)
}

func TestMethodsSamePointIsZero(t *testing.T) {
	p := domain.Coordinates{Lat: 37.55, Lon: 126.97}
	assert.Zero(t, Geodesic{}.Kilometers(p, p))
	assert.Zero(t, Haversine{}.Kilometers(p, p))
}

func TestNewMethod(t *testing.T) {
	m, err := NewMethod("")
	require.NoError(t, err)
	assert.Equal(t, MethodGeodesic, m.Name())

	m, err = NewMethod(" Haversine ")
	require.NoError(t, err)
	assert.Equal(t, MethodHaversine, m.Name())

	_, err = NewMethod("manhattan")
	require.Error(t, err)
}
