package api

import (
	"context"
	"errors"

	"weather-watchlist/internal/domain/entity"
	"weather-watchlist/internal/domain/model"
	"weather-watchlist/pkg/http"
)

// ErrNotFound is wrapped by WatchlistGateway errors when the API answers 404.
var ErrNotFound = errors.New("not found")

// StatusError is the error carried by every non-2xx answer.
type StatusError = http.StatusError

// WatchlistGateway is the client side of the watchlist REST API
type WatchlistGateway interface {
	ListLocations(ctx context.Context) ([]entity.Location, error)
	AddLocation(ctx context.Context, cityName string) (*entity.Location, error)
	SetFavorite(ctx context.Context, id int64, favorite bool) (*entity.Location, error)
	Rename(ctx context.Context, id int64, displayName string) (*entity.Location, error)
	DeleteLocation(ctx context.Context, id int64) error
	GetWeather(ctx context.Context, id int64) (*model.WeatherReport, error)
	SyncLocation(ctx context.Context, id int64) (*entity.WeatherSnapshot, error)
	Search(ctx context.Context, query string) ([]entity.Suggestion, error)
}
