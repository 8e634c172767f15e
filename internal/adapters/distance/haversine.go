package distance

import (
	"place-distance-service/internal/domain"

	"github.com/umahmood/haversine"
)

// Haversine measures great-circle distance on a sphere of radius 6371 km.
// It is cheaper than Geodesic and off by up to ~0.5%.
type Haversine struct{}

func (Haversine) Name() string { return MethodHaversine }

func (Haversine) Kilometers(start, end domain.Coordinates) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: start.Lat, Lon: start.Lon},
		haversine.Coord{Lat: end.Lat, Lon: end.Lon},
	)
	return km
}
