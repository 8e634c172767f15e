package ports

import (
	"context"
	"place-distance-service/internal/domain"
)

// Persistent mapping from normalized query text to a resolved place.
// Keys are expected to be normalized by the caller.
type GeocodeCache interface {
	// Return the cached places for the given queries; misses are omitted.
	GetMany(ctx context.Context, queries []string) (map[string]domain.Place, error)
	// Store query -> place mappings.
	PutMany(ctx context.Context, results map[string]domain.Place) error
}
