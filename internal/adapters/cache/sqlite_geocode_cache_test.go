package cache

import (
	"context"
	"database/sql"
	"place-distance-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestSqlite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, InitSqliteSchema(context.Background(), db))
	return db
}

func TestSqliteGeocodeCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewSqliteGeocodeCache(openTestSqlite(t))

	seoul := domain.Place{Address: "Seoul Station, Korea", Coordinates: domain.Coordinates{Lat: 37.55, Lon: 126.97}}
	require.NoError(t, c.PutMany(ctx, map[string]domain.Place{"Seoul Station": seoul}))

	got, err := c.GetMany(ctx, []string{"Seoul Station", " Seoul Station ", "Busan Station", ""})
	require.NoError(t, err)
	assert.Equal(t, map[string]domain.Place{"Seoul Station": seoul}, got)
}

func TestSqliteGeocodeCacheOverwrites(t *testing.T) {
	ctx := context.Background()
	c := NewSqliteGeocodeCache(openTestSqlite(t))

	require.NoError(t, c.PutMany(ctx, map[string]domain.Place{
		"busan": {Address: "old", Coordinates: domain.Coordinates{Lat: 1, Lon: 1}},
	}))
	require.NoError(t, c.PutMany(ctx, map[string]domain.Place{
		"busan": {Address: "Busan Station, Korea", Coordinates: domain.Coordinates{Lat: 35.11, Lon: 129.04}},
	}))

	got, err := c.GetMany(ctx, []string{"busan"})
	require.NoError(t, err)
	assert.Equal(t, "Busan Station, Korea", got["busan"].Address)
}

func TestSqliteGeocodeCacheRejectsEmptyKey(t *testing.T) {
	c := NewSqliteGeocodeCache(openTestSqlite(t))
	err := c.PutMany(context.Background(), map[string]domain.Place{"  ": {}})
	require.Error(t, err)
}
