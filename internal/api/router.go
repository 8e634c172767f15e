package api

import (
	"net/http"
	"place-distance-service/internal/api/handlers"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(locator handlers.Locator, calculator handlers.Calculator) http.Handler {
	mux := http.NewServeMux()

	geocodeHandler := &handlers.GeocodeHandler{Locator: locator}
	calculateHandler := handlers.NewCalculateHandler(calculator)

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/api/geocode", geocodeHandler.Geocode)
	mux.HandleFunc("/api/calculate", calculateHandler.Calculate)

	return requestIDMiddleware(loggingMiddleware(mux))
}
