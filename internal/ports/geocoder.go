package ports

import (
	"context"
	"place-distance-service/internal/domain"
)

// Contract for resolving free-text place names to coordinates.
type Geocoder interface {
	// Return the best match for query, or domain.ErrLocationNotFound when the
	// provider answered but had no match.
	Geocode(ctx context.Context, query string) (domain.Place, error)
}
