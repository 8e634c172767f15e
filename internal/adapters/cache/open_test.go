package cache

import (
	"context"
	"path/filepath"
	"place-distance-service/internal/domain"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenNone(t *testing.T) {
	c, closeFn, err := Open(context.Background(), Options{Backend: "none"})
	require.NoError(t, err)
	assert.Nil(t, c)
	assert.NoError(t, closeFn())
}

func TestOpenSqliteFile(t *testing.T) {
	ctx := context.Background()
	c, closeFn, err := Open(ctx, Options{
		Backend:    BackendSqlite,
		SqlitePath: filepath.Join(t.TempDir(), "cache.db"),
	})
	require.NoError(t, err)
	defer closeFn()

	require.IsType(t, &SqliteGeocodeCache{}, c)
	require.NoError(t, c.PutMany(ctx, map[string]domain.Place{"a": {Address: "A"}}))
}

func TestOpenRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	c, closeFn, err := Open(context.Background(), Options{Backend: "Redis", RedisAddr: mr.Addr()})
	require.NoError(t, err)
	defer closeFn()

	assert.IsType(t, &RedisGeocodeCache{}, c)
}

func TestOpenErrors(t *testing.T) {
	_, _, err := Open(context.Background(), Options{Backend: "memcached"})
	require.Error(t, err)

	_, _, err = Open(context.Background(), Options{Backend: BackendPostgres})
	require.Error(t, err)
}
