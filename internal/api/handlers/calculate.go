package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"place-distance-service/internal/api/dto"
	"place-distance-service/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

type Calculator interface {
	Calculate(ctx context.Context, start, end domain.Coordinates) (float64, error)
}

type CalculateHandler struct {
	Calculator Calculator
	Validate   *validator.Validate
}

func NewCalculateHandler(c Calculator) *CalculateHandler {
	return &CalculateHandler{Calculator: c, Validate: validator.New()}
}

// Calculate answers POST /api/calculate with the distance between two points.
func (h *CalculateHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.CalculateRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			writeError(w, r, http.StatusBadRequest, "invalid field: "+verrs[0].Namespace())
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid request")
		return
	}

	start := domain.Coordinates{Lat: *req.Start.Lat, Lon: *req.Start.Lon}
	end := domain.Coordinates{Lat: *req.End.Lat, Lon: *req.End.Lon}

	km, err := h.Calculator.Calculate(r.Context(), start, end)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCoordinates) {
			writeError(w, r, http.StatusBadRequest, "coordinates out of range")
			return
		}
		log.Printf("calculate distance failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.CalculateResponse{DistanceKm: km})
}
