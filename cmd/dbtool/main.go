package main

import (
	"context"
	"log"
	"place-distance-service/internal/adapters/cache"
	"place-distance-service/internal/config"
	"time"
)

// dbtool prepares the configured geocode cache: it creates the schema
// (SQL backends) and, when SEED_PATH is set, pre-loads known places.
func main() {
	config.Load()

	ctx := context.Background()
	backend := config.Get("CACHE_BACKEND", cache.BackendSqlite)

	log.Printf("Initializing geocode cache backend=%s...", backend)
	c, closeCache, err := cache.Open(ctx, cache.Options{
		Backend:     backend,
		SqlitePath:  config.Get("DB_PATH", "data/geocode.db"),
		DatabaseURL: config.Get("DATABASE_URL", ""),
		RedisAddr:   config.Get("REDIS_ADDR", "localhost:6379"),
		TTL:         config.Duration("CACHE_TTL", 30*24*time.Hour),
	})
	if err != nil {
		log.Fatalf("cache initialization failed: %v", err)
	}
	defer closeCache()
	log.Println("Cache ready.")

	seedPath := config.Get("SEED_PATH", "")
	if seedPath == "" || c == nil {
		return
	}

	log.Printf("Seeding geocode cache from %s...", seedPath)
	n, err := cache.SeedFromJSON(ctx, c, seedPath)
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Printf("Seeding complete. places=%d", n)
}
