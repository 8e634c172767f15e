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

const DefaultORSURL = "https://api.openrouteservice.org"

// ORSGeocoder implements ports.Geocoder using OpenRouteService (/geocode/search).
type ORSGeocoder struct {
	upstream
	baseURL  string
	language string
}

func NewORSGeocoder(apiKey, baseURL, language string) (*ORSGeocoder, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = DefaultORSURL
	}

	return &ORSGeocoder{
		upstream: newUpstream(10*time.Second, 0, map[string]string{
			"Authorization": apiKey,
		}),
		baseURL:  baseURL,
		language: language,
	}, nil
}

func (o *ORSGeocoder) Geocode(ctx context.Context, query string) (_ domain.Place, err error) {
	defer obs.Time(ctx, "ors.Geocode")(&err)

	endpoint := o.baseURL + "/geocode/search"

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", query)
		q.Set("size", "1")
		if o.language != "" {
			q.Set("lang", o.language)
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
		return domain.Place{}, fmt.Errorf("read geocode response: %w", err)
	}

	if !gjson.ValidBytes(body) {
		return domain.Place{}, errors.New("geocode response is not valid JSON")
	}

	if gjson.GetBytes(body, "features.#").Int() == 0 {
		return domain.Place{}, domain.ErrLocationNotFound
	}

	coords := gjson.GetBytes(body, "features.0.geometry.coordinates").Array()
	if len(coords) != 2 {
		return domain.Place{}, fmt.Errorf("invalid coordinate format for %q", query)
	}

	return domain.Place{
		Address: gjson.GetBytes(body, "features.0.properties.label").String(),
		Coordinates: domain.Coordinates{
			Lon: coords[0].Float(),
			Lat: coords[1].Float(),
		},
	}, nil
}
