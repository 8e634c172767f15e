package distance

import "place-distance-service/internal/domain"

// MockDistanceMethod returns a fixed distance regardless of input.
type MockDistanceMethod struct {
	Km float64
}

func (MockDistanceMethod) Name() string { return "mock" }

func (m MockDistanceMethod) Kilometers(start, end domain.Coordinates) float64 { return m.Km }
