package handlers

import (
	"context"
	"fmt"

	"voice-tool-backend/internal/locale"
	pkgLog "voice-tool-backend/pkg/log"
	"voice-tool-backend/pkg/openweather"
)

// WeatherClient abstracts the OpenWeatherMap client for mocking.
type WeatherClient interface {
	Current(ctx context.Context, city, lang string) (openweather.Weather, error)
}

// WeatherHandler answers get_weather via the weather backend, requesting
// descriptions in the resolved locale's language.
type WeatherHandler struct {
	l      pkgLog.Logger
	client WeatherClient
}

// NewWeatherHandler creates the weather tool.
func NewWeatherHandler(l pkgLog.Logger, client WeatherClient) *WeatherHandler {
	return &WeatherHandler{
		l:      l,
		client: client,
	}
}

func (h *WeatherHandler) Name() string {
	return "get_weather"
}

func (h *WeatherHandler) Execute(ctx context.Context, profile locale.Profile, args map[string]any) (any, error) {
	city := stringArg(args, "city")
	if city == "" {
		return nil, fmt.Errorf("city parameter is required")
	}

	weather, err := h.client.Current(ctx, city, profile.WeatherCode)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weather for %s: %w", city, err)
	}
	return weather, nil
}
