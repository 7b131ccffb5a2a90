package location

import (
	"context"

	"weather-watchlist/internal/domain/entity"
	"weather-watchlist/internal/domain/gateway/db"
)

type UseCase interface {
	// ListLocations returns every tracked location ordered by id
	ListLocations(ctx context.Context) ([]entity.Location, error)

	// CreateLocation geocodes cityName and tracks it, returning the existing entry for known coordinates
	CreateLocation(ctx context.Context, cityName string) (*entity.Location, error)

	// UpdateLocation changes the favorite flag and/or the display name
	UpdateLocation(ctx context.Context, id int64, update db.LocationUpdate) (*entity.Location, error)

	// DeleteLocation removes a location with its snapshots
	DeleteLocation(ctx context.Context, id int64) error

	// SearchCities suggests at most the configured number of cities for an autocomplete query
	SearchCities(ctx context.Context, query string) ([]entity.Suggestion, error)
}
