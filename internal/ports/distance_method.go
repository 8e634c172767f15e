package ports

import "place-distance-service/internal/domain"

// Contract for computing the distance in kilometers between two points.
type DistanceMethod interface {
	Name() string
	Kilometers(start, end domain.Coordinates) float64
}
