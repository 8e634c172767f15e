package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"place-distance-service/internal/domain"
	"place-distance-service/internal/platform/obs"
	"place-distance-service/internal/ports"
)

// DistanceCalculator computes the distance between two coordinates
// in kilometers, rounded to two decimal places.
type DistanceCalculator struct {
	method ports.DistanceMethod
}

func NewDistanceCalculator(method ports.DistanceMethod) (*DistanceCalculator, error) {
	if method == nil {
		return nil, errors.New("new distance calculator: method is nil")
	}
	return &DistanceCalculator{method: method}, nil
}

func (c *DistanceCalculator) Calculate(
	ctx context.Context,
	start domain.Coordinates,
	end domain.Coordinates,
) (_ float64, err error) {
	defer obs.Time(ctx, "calculator."+c.method.Name())(&err)

	if err := start.Validate(); err != nil {
		return 0, fmt.Errorf("calculate: start: %w", err)
	}
	if err := end.Validate(); err != nil {
		return 0, fmt.Errorf("calculate: end: %w", err)
	}

	km := c.method.Kilometers(start, end)
	if math.IsNaN(km) || math.IsInf(km, 0) {
		return 0, fmt.Errorf("calculate: %s returned %v", c.method.Name(), km)
	}

	return math.Round(km*100) / 100, nil
}
