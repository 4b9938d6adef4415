// Package weather proxies current-conditions lookups to the Open-Meteo
// forecast API. Single attempt, no retry, no caching; the call is never
// tied to a database transaction.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const DefaultBaseURL = "https://api.open-meteo.com"

// ErrUpstreamUnavailable marks a non-success or unreachable forecast
// provider; the boundary maps it to 502 instead of a plain 500.
var ErrUpstreamUnavailable = errors.New("weather provider unavailable")

// Report is the reshaped current-conditions answer: the echoed coordinate
// pair plus the provider's temperature, windspeed and observation time.
type Report struct {
	Coordinates     string
	Temperature     float64
	Windspeed       float64
	ObservationTime string
}

type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Current fetches the current weather for the coordinate pair.
func (c *Client) Current(ctx context.Context, lat, lon float64) (*Report, error) {
	query := url.Values{}
	query.Set("latitude", formatCoord(lat))
	query.Set("longitude", formatCoord(lon))
	query.Set("current_weather", "true")

	reqURL := c.baseURL + "/v1/forecast?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build forecast request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("forecast request failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error("forecast provider returned non-success", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var payload struct {
		CurrentWeather struct {
			Temperature float64 `json:"temperature"`
			Windspeed   float64 `json:"windspeed"`
			Time        string  `json:"time"`
		} `json:"current_weather"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUpstreamUnavailable, err)
	}

	return &Report{
		Coordinates:     formatCoord(lat) + ", " + formatCoord(lon),
		Temperature:     payload.CurrentWeather.Temperature,
		Windspeed:       payload.CurrentWeather.Windspeed,
		ObservationTime: payload.CurrentWeather.Time,
	}, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
