package geocoder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"place-distance-service/internal/domain"
	"place-distance-service/internal/platform/obs"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const DefaultNominatimURL = "https://nominatim.openstreetmap.org"

type NominatimConfig struct {
	BaseURL   string
	UserAgent string
	// Preferred language of the returned address (accept-language).
	Language string
	Timeout  time.Duration
	// Requests per second allowed upstream; zero disables limiting.
	RequestsPerSecond float64
}

// NominatimGeocoder implements ports.Geocoder against the OpenStreetMap
// Nominatim search API. The public instance requires an identifying
// User-Agent and at most one request per second.
type NominatimGeocoder struct {
	upstream
	baseURL  string
	language string
}

func NewNominatimGeocoder(cfg NominatimConfig) (*NominatimGeocoder, error) {
	if strings.TrimSpace(cfg.UserAgent) == "" {
		return nil, errors.New("nominatim user agent is empty")
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultNominatimURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &NominatimGeocoder{
		upstream: newUpstream(timeout, cfg.RequestsPerSecond, map[string]string{
			"User-Agent": cfg.UserAgent,
		}),
		baseURL:  baseURL,
		language: cfg.Language,
	}, nil
}

func (n *NominatimGeocoder) Geocode(ctx context.Context, query string) (_ domain.Place, err error) {
	defer obs.Time(ctx, "nominatim.Geocode")(&err)

	endpoint := n.baseURL + "/search"

	resp, err := n.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := n.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("q", query)
		q.Set("format", "jsonv2")
		q.Set("limit", "1")
		if n.language != "" {
			q.Set("accept-language", n.language)
		}
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Place{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Place{}, fmt.Errorf("read nominatim response: %w", err)
	}

	if !gjson.ValidBytes(body) {
		return domain.Place{}, errors.New("nominatim response is not valid JSON")
	}

	results := gjson.ParseBytes(body)
	if !results.IsArray() {
		return domain.Place{}, fmt.Errorf("unexpected nominatim response: %.200s", body)
	}

	// An empty array is a well-formed negative answer.
	if results.Get("#").Int() == 0 {
		return domain.Place{}, domain.ErrLocationNotFound
	}

	first := results.Get("0")
	lat, lon := first.Get("lat"), first.Get("lon")
	if !lat.Exists() || !lon.Exists() {
		return domain.Place{}, fmt.Errorf("invalid coordinate format for %q", query)
	}

	return domain.Place{
		Address: first.Get("display_name").String(),
		Coordinates: domain.Coordinates{
			Lat: lat.Float(),
			Lon: lon.Float(),
		},
	}, nil
}
