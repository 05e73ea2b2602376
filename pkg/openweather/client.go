// Package openweather is a minimal HTTP client for the OpenWeatherMap
// current-weather API.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"
)

// DefaultBaseURL is the production OpenWeatherMap endpoint.
const DefaultBaseURL = "https://api.openweathermap.org"

// Client is the HTTP wrapper for the OpenWeatherMap API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new OpenWeatherMap client. An empty baseURL falls
// back to the production endpoint.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Current fetches current weather for a city in metric units. lang selects
// the language of the textual description.
func (c *Client) Current(ctx context.Context, city, lang string) (Weather, error) {
	if city == "" {
		return Weather{}, fmt.Errorf("city is required")
	}

	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")
	if lang != "" {
		params.Set("lang", lang)
	}

	endpoint := fmt.Sprintf("%s/data/2.5/weather?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Weather{}, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Weather{}, fmt.Errorf("failed to call weather API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return Weather{}, fmt.Errorf("weather API error %d: %s", resp.StatusCode, string(raw))
	}

	var data currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return Weather{}, fmt.Errorf("failed to decode weather response: %w", err)
	}
	if len(data.Weather) == 0 {
		return Weather{}, fmt.Errorf("weather response missing conditions")
	}

	return Weather{
		City:        city,
		Description: capitalize(data.Weather[0].Description),
		Temperature: round1(data.Main.Temp),
		FeelsLike:   round1(data.Main.FeelsLike),
		Humidity:    data.Main.Humidity,
		Pressure:    data.Main.Pressure,
		WindSpeed:   data.Wind.Speed,
		Clouds:      data.Clouds.All,
		Timestamp:   data.Dt,
		Sunrise:     data.Sys.Sunrise,
		Sunset:      data.Sys.Sunset,
	}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return strings.TrimSpace(string(runes))
}
