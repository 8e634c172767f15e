package cache

import (
	"context"
	"errors"
	"fmt"
	"place-distance-service/internal/domain"
	"place-distance-service/internal/platform/obs"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "geocode:"

type redisPlace struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// RedisGeocodeCache stores places as JSON strings under "geocode:<query>".
// A zero TTL keeps entries until evicted by Redis.
type RedisGeocodeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{Client: client, TTL: ttl}
}

func (s *RedisGeocodeCache) GetMany(
	ctx context.Context,
	queries []string,
) (_ map[string]domain.Place, err error) {
	defer obs.Time(ctx, "geocode.cache.redis.GetMany")(&err)

	if s.Client == nil {
		return nil, errors.New("geocode cache: redis client is nil")
	}

	uniq := uniqueKeys(queries)
	if len(uniq) == 0 {
		return map[string]domain.Place{}, nil
	}

	keys := make([]string, 0, len(uniq))
	for _, q := range uniq {
		keys = append(keys, redisKeyPrefix+q)
	}

	vals, err := s.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get geocode cache: redis mget: %w", err)
	}

	out := make(map[string]domain.Place, len(uniq))
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			continue
		}

		var rp redisPlace
		if err := json.Unmarshal([]byte(raw), &rp); err != nil {
			return nil, fmt.Errorf("get geocode cache: decode %q: %w", keys[i], err)
		}
		out[uniq[i]] = domain.Place{
			Address:     rp.Address,
			Coordinates: domain.Coordinates{Lat: rp.Lat, Lon: rp.Lon},
		}
	}

	return out, nil
}

func (s *RedisGeocodeCache) PutMany(ctx context.Context, results map[string]domain.Place) error {
	if s.Client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	if len(results) == 0 {
		return nil
	}

	pipe := s.Client.TxPipeline()
	for query, p := range results {
		if strings.TrimSpace(query) == "" {
			return fmt.Errorf("insert geocode cache: empty query key")
		}

		b, err := json.Marshal(redisPlace{Address: p.Address, Lat: p.Coordinates.Lat, Lon: p.Coordinates.Lon})
		if err != nil {
			return fmt.Errorf("insert geocode cache query=%q: %w", query, err)
		}
		pipe.Set(ctx, redisKeyPrefix+query, b, s.TTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert geocode cache: redis exec: %w", err)
	}

	return nil
}
