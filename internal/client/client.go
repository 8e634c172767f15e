// Package client is the HTTP client for the place distance API
// (/api/geocode and /api/calculate).
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"place-distance-service/internal/domain"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// StatusError reports a non-2xx response from the API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

// GeocodeResult is the decoded /api/geocode answer. Coordinates is set only
// when Found is true.
type GeocodeResult struct {
	Found       bool
	Address     string
	Coordinates domain.Coordinates
	Message     string
}

type geocodeResponse struct {
	Found   bool     `json:"found"`
	Address string   `json:"address"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
	Message string   `json:"message"`
}

type calculateRequest struct {
	Start domain.Coordinates `json:"start"`
	End   domain.Coordinates `json:"end"`
}

type calculateResponse struct {
	DistanceKm *Distance `json:"distance_km"`
}

// Client is safe for concurrent use. It never retries.
type Client struct {
	baseURL string
	session *http.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("new client: parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("new client: unsupported scheme %q", u.Scheme)
	}

	return &Client{
		baseURL: strings.TrimRight(u.String(), "/"),
		session: &http.Client{Timeout: timeout},
	}, nil
}

// Geocode sends the raw query to /api/geocode. A well-formed negative answer
// is returned as Found=false with a nil error.
func (c *Client) Geocode(ctx context.Context, query string) (GeocodeResult, error) {
	endpoint := c.baseURL + "/api/geocode?query=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return GeocodeResult{}, fmt.Errorf("geocode: create request: %w", err)
	}

	var decoded geocodeResponse
	if err := c.do(req, &decoded); err != nil {
		return GeocodeResult{}, fmt.Errorf("geocode: %w", err)
	}

	if !decoded.Found {
		return GeocodeResult{Found: false, Message: decoded.Message}, nil
	}

	if decoded.Lat == nil || decoded.Lon == nil {
		return GeocodeResult{}, errors.New("geocode: found response without coordinates")
	}

	return GeocodeResult{
		Found:       true,
		Address:     decoded.Address,
		Coordinates: domain.Coordinates{Lat: *decoded.Lat, Lon: *decoded.Lon},
	}, nil
}

// Calculate posts both points to /api/calculate and returns distance_km as sent.
func (c *Client) Calculate(ctx context.Context, start, end domain.Coordinates) (Distance, error) {
	payload, err := json.Marshal(calculateRequest{Start: start, End: end})
	if err != nil {
		return "", fmt.Errorf("calculate: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/calculate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("calculate: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var decoded calculateResponse
	if err := c.do(req, &decoded); err != nil {
		return "", fmt.Errorf("calculate: %w", err)
	}

	if decoded.DistanceKm == nil {
		return "", errors.New("calculate: response has no distance_km")
	}

	return *decoded.DistanceKm, nil
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")

	resp, err := c.session.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
