package distance

import (
	"fmt"
	"place-distance-service/internal/ports"
	"strings"
)

const (
	MethodGeodesic  = "geodesic"
	MethodHaversine = "haversine"
)

// NewMethod returns the distance method registered under name.
// An empty name selects the geodesic method.
func NewMethod(name string) (ports.DistanceMethod, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", MethodGeodesic:
		return Geodesic{}, nil
	case MethodHaversine:
		return Haversine{}, nil
	default:
		return nil, fmt.Errorf("unknown distance method %q", name)
	}
}
