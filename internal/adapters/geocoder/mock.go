package geocoder

import (
	"context"
	"place-distance-service/internal/domain"
	"sync/atomic"
)

// MockGeocoder resolves queries from a fixed table. Unknown queries are
// reported as not found; a non-nil Err fails every call.
type MockGeocoder struct {
	m     map[string]domain.Place
	Err   error
	calls atomic.Int64
}

func NewMockGeocoder(places map[string]domain.Place) *MockGeocoder {
	m := make(map[string]domain.Place, len(places))
	for k, v := range places {
		m[k] = v
	}
	return &MockGeocoder{m: m}
}

func (g *MockGeocoder) Geocode(ctx context.Context, query string) (domain.Place, error) {
	g.calls.Add(1)

	if g.Err != nil {
		return domain.Place{}, g.Err
	}

	p, ok := g.m[query]
	if !ok {
		return domain.Place{}, domain.ErrLocationNotFound
	}

	return p, nil
}

// Calls returns how many lookups reached the mock.
func (g *MockGeocoder) Calls() int { return int(g.calls.Load()) }
