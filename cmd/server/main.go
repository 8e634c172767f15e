package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"place-distance-service/internal/adapters/cache"
	"place-distance-service/internal/adapters/distance"
	"place-distance-service/internal/adapters/geocoder"
	"place-distance-service/internal/api"
	"place-distance-service/internal/config"
	"place-distance-service/internal/ports"
	"place-distance-service/internal/services"
	"strings"
	"syscall"
	"time"
)

// main is the application composition root.
// It wires concrete adapters (geocoder, cache, distance method) behind ports
// and starts the HTTP server.
func main() {
	config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := config.Get("PORT", "8000")

	geo, err := newGeocoder()
	if err != nil {
		log.Fatal(err)
	}

	geocodeCache, closeCache, err := cache.Open(ctx, cache.Options{
		Backend:     config.Get("CACHE_BACKEND", cache.BackendSqlite),
		SqlitePath:  config.Get("DB_PATH", "data/geocode.db"),
		DatabaseURL: config.Get("DATABASE_URL", ""),
		RedisAddr:   config.Get("REDIS_ADDR", "localhost:6379"),
		TTL:         config.Duration("CACHE_TTL", 30*24*time.Hour),
	})
	if err != nil {
		log.Fatal(err)
	}
	defer closeCache()

	locator, err := services.NewLocator(geo, geocodeCache)
	if err != nil {
		log.Fatal(err)
	}

	method, err := distance.NewMethod(config.Get("DISTANCE_METHOD", distance.MethodGeodesic))
	if err != nil {
		log.Fatal(err)
	}
	calculator, err := services.NewDistanceCalculator(method)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(locator, calculator)

	// Write timeout covers a cold-cache geocode including upstream retries.
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown failed: %v", err)
		}
	}()

	log.Printf("Server listening addr=:%s method=%s", port, method.Name())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func newGeocoder() (ports.Geocoder, error) {
	lang := config.Get("GEOCODE_LANGUAGE", "ko")

	switch provider := strings.ToLower(config.Get("GEOCODER", "nominatim")); provider {
	case "nominatim":
		return geocoder.NewNominatimGeocoder(geocoder.NominatimConfig{
			BaseURL:           config.Get("NOMINATIM_URL", geocoder.DefaultNominatimURL),
			UserAgent:         config.Get("NOMINATIM_USER_AGENT", "place-distance-service/1.0"),
			Language:          lang,
			Timeout:           config.Duration("GEOCODE_TIMEOUT", 10*time.Second),
			RequestsPerSecond: config.Float("NOMINATIM_RPS", 1),
		})
	case "ors":
		orsKey := config.Get("ORS_API_KEY", "")
		if orsKey == "" {
			return nil, errors.New("ORS_API_KEY is required")
		}
		return geocoder.NewORSGeocoder(orsKey, config.Get("ORS_URL", geocoder.DefaultORSURL), lang)
	default:
		return nil, fmt.Errorf("unknown GEOCODER %q", provider)
	}
}
