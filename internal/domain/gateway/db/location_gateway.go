package db

import (
	"context"
	"errors"
	"time"

	"weather-watchlist/internal/domain/entity"
)

// ErrNotFound is returned when no row matches the lookup
var ErrNotFound = errors.New("record not found")

// LocationUpdate holds the optional fields of a location update. Nil fields are left unchanged.
type LocationUpdate struct {
	IsFavorite  *bool
	DisplayName *string
}

type LocationGateway interface {
	// Location operations
	FindAll(ctx context.Context) ([]entity.Location, error)
	FindByID(ctx context.Context, id int64) (*entity.Location, error)
	FindByCoordinates(ctx context.Context, lat, lon float64) (*entity.Location, error)
	Create(ctx context.Context, location entity.Location) (*entity.Location, error)
	Update(ctx context.Context, id int64, update LocationUpdate) (*entity.Location, error)
	DeleteByID(ctx context.Context, id int64) error

	// Snapshot operations
	FindLatestSnapshot(ctx context.Context, locationID int64) (*entity.WeatherSnapshot, error)
	SaveSnapshot(ctx context.Context, snapshot entity.WeatherSnapshot) (*entity.WeatherSnapshot, error)
	DeleteSnapshotsBefore(ctx context.Context, before time.Time) (int64, error)
}
