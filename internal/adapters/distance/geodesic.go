package distance

import (
	"place-distance-service/internal/domain"

	"github.com/tidwall/geodesic"
)

// Geodesic measures the shortest path on the WGS84 ellipsoid.
type Geodesic struct{}

func (Geodesic) Name() string { return MethodGeodesic }

func (Geodesic) Kilometers(start, end domain.Coordinates) float64 {
	var meters float64
	geodesic.WGS84.Inverse(start.Lat, start.Lon, end.Lat, end.Lon, &meters, nil, nil)
	return meters / 1000
}
