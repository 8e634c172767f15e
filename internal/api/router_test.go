package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"place-distance-service/internal/adapters/distance"
	"place-distance-service/internal/adapters/geocoder"
	"place-distance-service/internal/domain"
	"place-distance-service/internal/services"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, g *geocoder.MockGeocoder) http.Handler {
	t.Helper()

	locator, err := services.NewLocator(g, nil)
	require.NoError(t, err)
	calc, err := services.NewDistanceCalculator(distance.MockDistanceMethod{Km: 325.3})
	require.NoError(t, err)

	return NewRouter(locator, calc)
}

func doRequest(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestGeocodeFound(t *testing.T) {
	h := newTestRouter(t, geocoder.NewMockGeocoder(map[string]domain.Place{
		"Seoul Station": {Address: "Seoul Station, Korea", Coordinates: domain.Coordinates{Lat: 37.55, Lon: 126.97}},
	}))

	rec := doRequest(h, http.MethodGet, "/api/geocode?query=Seoul%20Station", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["found"])
	assert.Equal(t, "Seoul Station, Korea", body["address"])
	assert.Equal(t, 37.55, body["lat"])
	assert.Equal(t, 126.97, body["lon"])
}

func TestGeocodeNotFound(t *testing.T) {
	h := newTestRouter(t, geocoder.NewMockGeocoder(nil))

	rec := doRequest(h, http.MethodGet, "/api/geocode?query=Atlantis", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["found"])
	assert.Equal(t, "Location not found", body["message"])
	assert.NotContains(t, body, "lat")
}

func TestGeocodeMissingQuery(t *testing.T) {
	h := newTestRouter(t, geocoder.NewMockGeocoder(nil))

	rec := doRequest(h, http.MethodGet, "/api/geocode?query=%20%20", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGeocodeUpstreamFailure(t *testing.T) {
	g := geocoder.NewMockGeocoder(nil)
	g.Err = errors.New("dial tcp: connection refused")
	h := newTestRouter(t, g)

	rec := doRequest(h, http.MethodGet, "/api/geocode?query=Seoul", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestGeocodeMethodNotAllowed(t *testing.T) {
	h := newTestRouter(t, geocoder.NewMockGeocoder(nil))

	rec := doRequest(h, http.MethodPost, "/api/geocode?query=Seoul", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
}

func TestCalculate(t *testing.T) {
	h := newTestRouter(t, geocoder.NewMockGeocoder(nil))

	rec := doRequest(h, http.MethodPost, "/api/calculate",
		`{"start":{"lat":37.55,"lon":126.97},"end":{"lat":35.11,"lon":129.04}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"distance_km":325.3}`, rec.Body.String())
}

func TestCalculateRejectsBadBodies(t *testing.T) {
	h := newTestRouter(t, geocoder.NewMockGeocoder(nil))

	tests := map[string]string{
		"not json":       `nope`,
		"missing end":    `{"start":{"lat":1,"lon":2}}`,
		"missing lon":    `{"start":{"lat":1},"end":{"lat":1,"lon":2}}`,
		"lat too large":  `{"start":{"lat":91,"lon":2},"end":{"lat":1,"lon":2}}`,
		"unknown field":  `{"start":{"lat":1,"lon":2},"end":{"lat":1,"lon":2},"mode":"car"}`,
		"trailing value": `{"start":{"lat":1,"lon":2},"end":{"lat":1,"lon":2}} {}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			rec := doRequest(h, http.MethodPost, "/api/calculate", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestCalculateAcceptsZeroCoordinates(t *testing.T) {
	h := newTestRouter(t, geocoder.NewMockGeocoder(nil))

	rec := doRequest(h, http.MethodPost, "/api/calculate",
		`{"start":{"lat":0,"lon":0},"end":{"lat":0,"lon":1}}`)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestHealth(t *testing.T) {
	h := newTestRouter(t, geocoder.NewMockGeocoder(nil))

	rec := doRequest(h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRequestIDIsPropagated(t *testing.T) {
	h := newTestRouter(t, geocoder.NewMockGeocoder(nil))

	req := httptest.NewRequest(http.MethodGet, "/health", nil).WithContext(context.Background())
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}
