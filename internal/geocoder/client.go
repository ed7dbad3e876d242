// Package geocoder resolves free-text postal addresses into WGS 84
// coordinates through an external HTTP geocoding service. The default
// endpoint speaks the Nominatim search API, but any service with the
// same query/response shape can be plugged in via GEOCODER_BASE_URL.
package geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultBaseURL = "https://nominatim.openstreetmap.org"
	userAgent      = "property-booking-api/1.0"
)

// ErrNoMatch is returned when the service answers successfully but finds
// no coordinates for the given address.
var ErrNoMatch = errors.New("geocoder: no match for address")

// Point is a latitude/longitude pair.
type Point struct {
	Lat  float64
	Long float64
}

// Client calls the geocoding service. The zero value is not usable;
// construct it with NewClient.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient builds a geocoding client. baseURL and apiKey may be empty;
// an empty baseURL selects the public Nominatim endpoint.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// searchResult mirrors one element of the Nominatim response array.
// Coordinates arrive as decimal strings.
type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves a full address string into coordinates. It returns
// ErrNoMatch when the service has no result, and wraps transport or
// decoding failures so callers can surface them as a creation failure.
func (c *Client) Geocode(ctx context.Context, address string) (Point, error) {
	if address == "" {
		return Point{}, fmt.Errorf("geocoder: address is required")
	}

	params := url.Values{
		"q":      {address},
		"format": {"json"},
		"limit":  {"1"},
	}
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return Point{}, fmt.Errorf("geocoder: creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Point{}, fmt.Errorf("geocoder: sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Point{}, fmt.Errorf("geocoder: unexpected status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Point{}, fmt.Errorf("geocoder: decoding response: %w", err)
	}
	if len(results) == 0 {
		return Point{}, ErrNoMatch
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Point{}, fmt.Errorf("geocoder: invalid lat %q: %w", results[0].Lat, err)
	}
	long, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Point{}, fmt.Errorf("geocoder: invalid lon %q: %w", results[0].Lon, err)
	}
	return Point{Lat: lat, Long: long}, nil
}
