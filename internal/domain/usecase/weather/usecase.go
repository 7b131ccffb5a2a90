package weather

import (
	"context"

	"weather-watchlist/internal/domain/entity"
	"weather-watchlist/internal/domain/model"
)

type UseCase interface {
	// GetWeather returns the latest stored snapshot of a location and its live forecast
	GetWeather(ctx context.Context, locationID int64) (*model.WeatherReport, error)

	// SyncLocation fetches the current conditions, stores them and stamps the location
	SyncLocation(ctx context.Context, locationID int64) (*entity.WeatherSnapshot, error)

	// SyncAllScheduled refreshes every location, through the sync queue when one is configured
	SyncAllScheduled(ctx context.Context, requestID string) error

	// PruneSnapshots deletes snapshots older than the retention window
	PruneSnapshots(ctx context.Context) (int64, error)
}
