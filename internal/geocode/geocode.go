package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	apperrors "placeshare/internal/errors"
	"placeshare/internal/model"
)

// Geocoder resolves a free-text address to a coordinate pair.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (model.Location, error)
}

// HTTPGeocoder resolves addresses against a Nominatim-compatible search
// endpoint. Every failure mode (unreachable upstream, non-200, empty result,
// malformed coordinates) surfaces as ErrGeocodeFailed so callers can gate
// place creation on a single sentinel.
type HTTPGeocoder struct {
	baseURL string
	client  *http.Client
}

// NewHTTPGeocoder creates a geocoder for the given base URL with a hard
// request timeout.
func NewHTTPGeocoder(baseURL string, timeout time.Duration) *HTTPGeocoder {
	return &HTTPGeocoder{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// searchResult is the subset of the Nominatim response we consume.
// Coordinates arrive as strings.
type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve implements Geocoder.
func (g *HTTPGeocoder) Resolve(ctx context.Context, address string) (model.Location, error) {
	endpoint := fmt.Sprintf("%s/search?format=json&limit=1&q=%s", g.baseURL, url.QueryEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.Location{}, fmt.Errorf("%w: build request: %v", apperrors.ErrGeocodeFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return model.Location{}, fmt.Errorf("%w: %v", apperrors.ErrGeocodeFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Location{}, fmt.Errorf("%w: upstream returned status %d", apperrors.ErrGeocodeFailed, resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return model.Location{}, fmt.Errorf("%w: decode response: %v", apperrors.ErrGeocodeFailed, err)
	}
	if len(results) == 0 {
		return model.Location{}, fmt.Errorf("%w: no match for address", apperrors.ErrGeocodeFailed)
	}

	lat, err := decimal.NewFromString(results[0].Lat)
	if err != nil {
		return model.Location{}, fmt.Errorf("%w: invalid latitude %q", apperrors.ErrGeocodeFailed, results[0].Lat)
	}
	lng, err := decimal.NewFromString(results[0].Lon)
	if err != nil {
		return model.Location{}, fmt.Errorf("%w: invalid longitude %q", apperrors.ErrGeocodeFailed, results[0].Lon)
	}

	return model.Location{Lat: lat, Lng: lng}, nil
}
