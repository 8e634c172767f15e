package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"place-distance-service/internal/api/dto"
	"place-distance-service/internal/domain"
	"place-distance-service/internal/platform/obs"
)

type Locator interface {
	Locate(ctx context.Context, query string) (domain.Place, error)
}

// GeocodeHandler resolves a free-text place name to coordinates.
type GeocodeHandler struct {
	Locator Locator
}

// Geocode answers GET /api/geocode?query=<text>. A well-formed miss is a
// 200 with found=false; only upstream failures are reported as errors.
func (h *GeocodeHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	query := r.URL.Query().Get("query")

	place, err := h.Locator.Locate(r.Context(), query)
	switch {
	case err == nil:
		lat, lon := place.Coordinates.Lat, place.Coordinates.Lon
		writeJSON(w, r, http.StatusOK, dto.GeocodeResponse{
			Found:   true,
			Address: place.Address,
			Lat:     &lat,
			Lon:     &lon,
		})
	case errors.Is(err, domain.ErrEmptyQuery):
		writeError(w, r, http.StatusBadRequest, "query is required")
	case errors.Is(err, domain.ErrLocationNotFound):
		writeJSON(w, r, http.StatusOK, dto.GeocodeResponse{
			Found:   false,
			Message: "Location not found",
		})
	default:
		reqID, _ := r.Context().Value(obs.RequestIDKey).(string)
		log.Printf("geocode failed: req_id=%s query=%q err=%v", reqID, query, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
