package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"place-distance-service/internal/domain"
	"place-distance-service/internal/platform/obs"
	"place-distance-service/internal/ports"
	"strings"

	"golang.org/x/sync/singleflight"
)

// Locator resolves place names to coordinates.
//
// It coordinates:
//   - Query normalization
//   - Persistent geocode caching (optional)
//   - De-duplication of concurrent upstream lookups for the same query
//
// Negative answers are never cached. The locator is safe for concurrent use.
type Locator struct {
	geocoder ports.Geocoder
	cache    ports.GeocodeCache
	group    singleflight.Group
}

// NewLocator builds a Locator. cache may be nil.
func NewLocator(geocoder ports.Geocoder, cache ports.GeocodeCache) (*Locator, error) {
	if geocoder == nil {
		return nil, errors.New("new locator: geocoder is nil")
	}
	return &Locator{geocoder: geocoder, cache: cache}, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func (l *Locator) Locate(ctx context.Context, query string) (_ domain.Place, err error) {
	defer obs.Time(ctx, "locator.Locate")(&err)

	norm := normalize(query)
	if norm == "" {
		return domain.Place{}, domain.ErrEmptyQuery
	}

	// Check persistent cache before issuing external API calls.
	if l.cache != nil {
		hits, err := l.cache.GetMany(ctx, []string{norm})
		if err != nil {
			log.Printf("geocode cache read failed: query=%q err=%v", norm, err)
		} else if p, ok := hits[norm]; ok {
			return p, nil
		}
	}

	// The shared lookup must outlive any single caller's cancellation;
	// the upstream client's timeout bounds it. Only the shared call fills
	// the cache, so concurrent callers write it once.
	shared := context.WithoutCancel(ctx)
	ch := l.group.DoChan(norm, func() (any, error) {
		place, err := l.geocoder.Geocode(shared, norm)
		if err != nil {
			return nil, err
		}
		if l.cache != nil {
			if err := l.cache.PutMany(shared, map[string]domain.Place{norm: place}); err != nil {
				log.Printf("geocode cache write failed: query=%q err=%v", norm, err)
			}
		}
		return place, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return domain.Place{}, ctx.Err()
	case res = <-ch:
	}

	if res.Err != nil {
		if errors.Is(res.Err, domain.ErrLocationNotFound) {
			return domain.Place{}, res.Err
		}
		return domain.Place{}, fmt.Errorf("geocode %q: %w", norm, res.Err)
	}

	return res.Val.(domain.Place), nil
}
