package api

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"weather-watchlist/internal/domain/model/external"
	"weather-watchlist/pkg/http"
)

// OpenWeatherConfig holds the provider credentials and unit system
type OpenWeatherConfig struct {
	BaseURL string
	APIKey  string
	Units   string
}

// openWeatherGatewayImpl implements the OpenWeatherGateway interface
type openWeatherGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
	units      string
}

// NewOpenWeatherGateway creates a new instance of OpenWeatherGateway with HTTP client
func NewOpenWeatherGateway(config OpenWeatherConfig, clientOptions http.ClientOptions) OpenWeatherGateway {
	units := config.Units
	if units == "" {
		units = "metric"
	}
	if clientOptions.Logger == nil {
		clientOptions.Logger = http.ZapLogger{Name: "openweather"}
	}

	return &openWeatherGatewayImpl{
		httpClient: http.NewHttpClient(config.BaseURL, clientOptions),
		apiKey:     config.APIKey,
		units:      units,
	}
}

// SearchCities resolves a city name with the direct geocoding API
func (w *openWeatherGatewayImpl) SearchCities(ctx context.Context, query string, limit int) ([]external.GeoLocationResponse, error) {
	successResp, errResp, _, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/geo/1.0/direct").
		WithQueryParams(map[string]string{
			"q":     query,
			"limit": strconv.Itoa(limit),
			"appid": w.apiKey,
		}).
		WithSuccessResp(&[]external.GeoLocationResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, providerError("search cities", errResp, err)
	}
	if successResp == nil {
		return []external.GeoLocationResponse{}, nil
	}
	return *successResp.(*[]external.GeoLocationResponse), nil
}

// GetCurrentWeather gets the current conditions for the coordinates
func (w *openWeatherGatewayImpl) GetCurrentWeather(ctx context.Context, lat, lon float64) (*external.CurrentWeatherResponse, error) {
	successResp, errResp, _, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/data/2.5/weather").
		WithQueryParams(w.coordinateParams(lat, lon)).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, providerError("current weather", errResp, err)
	}
	response, ok := successResp.(*external.CurrentWeatherResponse)
	if !ok || len(response.Weather) == 0 {
		return nil, errors.New("current weather: response without conditions")
	}
	return response, nil
}

// GetForecast gets the 5-day / 3-hour forecast for the coordinates
func (w *openWeatherGatewayImpl) GetForecast(ctx context.Context, lat, lon float64) (*external.ForecastResponse, error) {
	successResp, errResp, _, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/data/2.5/forecast").
		WithQueryParams(w.coordinateParams(lat, lon)).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, providerError("forecast", errResp, err)
	}
	if successResp == nil {
		return &external.ForecastResponse{}, nil
	}
	return successResp.(*external.ForecastResponse), nil
}

func (w *openWeatherGatewayImpl) coordinateParams(lat, lon float64) map[string]string {
	return map[string]string{
		"lat":   strconv.FormatFloat(lat, 'f', -1, 64),
		"lon":   strconv.FormatFloat(lon, 'f', -1, 64),
		"units": w.units,
		"appid": w.apiKey,
	}
}

func providerError(operation string, errResp any, err error) error {
	if errorResponse, ok := errResp.(*external.APIErrorResponse); ok && errorResponse.Message != "" {
		return fmt.Errorf("%s: %s: %w", operation, errorResponse.Message, err)
	}
	return fmt.Errorf("%s: %w", operation, err)
}
