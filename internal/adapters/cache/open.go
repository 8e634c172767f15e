package cache

import (
	"context"
	"fmt"
	"place-distance-service/internal/platform/db"
	"place-distance-service/internal/ports"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	BackendNone     = "none"
	BackendSqlite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Options struct {
	Backend     string
	SqlitePath  string
	DatabaseURL string
	RedisAddr   string
	TTL         time.Duration
}

// Open connects the configured geocode cache backend, creating its schema
// when it is SQL-backed. The returned close func is never nil.
// BackendNone yields a nil cache.
func Open(ctx context.Context, opts Options) (ports.GeocodeCache, func() error, error) {
	noop := func() error { return nil }

	switch strings.ToLower(strings.TrimSpace(opts.Backend)) {
	case "", BackendNone:
		return nil, noop, nil

	case BackendSqlite:
		sqlDB, err := db.OpenSqlite(opts.SqlitePath)
		if err != nil {
			return nil, noop, err
		}
		if err := InitSqliteSchema(ctx, sqlDB); err != nil {
			sqlDB.Close()
			return nil, noop, err
		}
		return NewSqliteGeocodeCache(sqlDB), sqlDB.Close, nil

	case BackendPostgres:
		if strings.TrimSpace(opts.DatabaseURL) == "" {
			return nil, noop, fmt.Errorf("open cache: DATABASE_URL is required for %s", BackendPostgres)
		}
		sqlDB, err := db.OpenPostgres(opts.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		if err := InitPostgresSchema(ctx, sqlDB); err != nil {
			sqlDB.Close()
			return nil, noop, err
		}
		return NewPostgresGeocodeCache(sqlDB), sqlDB.Close, nil

	case BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: opts.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, noop, fmt.Errorf("open cache: ping redis %q: %w", opts.RedisAddr, err)
		}
		return NewRedisGeocodeCache(client, opts.TTL), client.Close, nil

	default:
		return nil, noop, fmt.Errorf("open cache: unknown backend %q", opts.Backend)
	}
}
