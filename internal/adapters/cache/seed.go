package cache

import (
	"context"
	"fmt"
	"os"
	"place-distance-service/internal/domain"
	"place-distance-service/internal/ports"
	"strings"

	"github.com/goccy/go-json"
)

type PlaceSeed struct {
	Query   string  `json:"query"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Populate a geocode cache with known places from a JSON file.
// Queries are stored whitespace-normalized, matching the locator's keys.
func SeedFromJSON(ctx context.Context, c ports.GeocodeCache, jsonPath string) (int, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("seed geocode cache: read %q: %w", jsonPath, err)
	}

	var data []PlaceSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return 0, fmt.Errorf("seed geocode cache: parse json: %w", err)
	}

	rows := make(map[string]domain.Place, len(data))
	for i, item := range data {
		query := strings.Join(strings.Fields(item.Query), " ")
		if query == "" {
			return 0, fmt.Errorf("seed geocode cache: item at index %d: query cannot be empty", i+1)
		}

		coords := domain.Coordinates{Lat: item.Lat, Lon: item.Lon}
		if err := coords.Validate(); err != nil {
			return 0, fmt.Errorf("seed geocode cache: item %q: %w", query, err)
		}

		addr := strings.TrimSpace(item.Address)
		if addr == "" {
			addr = query
		}
		rows[query] = domain.Place{Address: addr, Coordinates: coords}
	}

	if err := c.PutMany(ctx, rows); err != nil {
		return 0, fmt.Errorf("seed geocode cache: %w", err)
	}

	return len(rows), nil
}
