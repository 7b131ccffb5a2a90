package api

import (
	"context"

	"weather-watchlist/internal/domain/model/external"
)

// OpenWeatherGateway defines the calls made to the OpenWeather provider
type OpenWeatherGateway interface {
	// SearchCities resolves a free text city name to at most limit matches
	SearchCities(ctx context.Context, query string, limit int) ([]external.GeoLocationResponse, error)

	// GetCurrentWeather returns the current conditions at the given coordinates
	GetCurrentWeather(ctx context.Context, lat, lon float64) (*external.CurrentWeatherResponse, error)

	// GetForecast returns the 5-day forecast in 3-hour steps at the given coordinates
	GetForecast(ctx context.Context, lat, lon float64) (*external.ForecastResponse, error)
}
