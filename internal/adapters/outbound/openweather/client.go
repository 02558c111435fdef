// Package openweather implements the weather capability on top of the
// OpenWeatherMap geocoding and current weather APIs.
package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// APIClient is a thin client for the OpenWeatherMap REST API.
type APIClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewAPIClient creates a new client.
func NewAPIClient(baseURL, apiKey string, httpClient *http.Client) APIClient {
	return APIClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    httpClient,
	}
}

// GeocodingResult is one entry of the direct geocoding response.
type GeocodingResult struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state,omitempty"`
}

// CurrentWeatherResponse is the subset of the current weather payload in use.
type CurrentWeatherResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("openweather: non-2xx response: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

// Geocode calls /geo/1.0/direct and returns at most limit matches.
func (c APIClient) Geocode(ctx context.Context, query string, limit int) ([]GeocodingResult, error) {
	if query == "" {
		return nil, errors.New("query is required")
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))

	var out []GeocodingResult
	if err := c.get(ctx, "/geo/1.0/direct", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CurrentWeather calls /data/2.5/weather for the given coordinates.
func (c APIClient) CurrentWeather(ctx context.Context, lat, lon float64, units string) (*CurrentWeatherResponse, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("units", units)

	var out CurrentWeatherResponse
	if err := c.get(ctx, "/data/2.5/weather", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c APIClient) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	params.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
