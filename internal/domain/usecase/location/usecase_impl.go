package location

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"weather-watchlist/internal/domain/entity"
	"weather-watchlist/internal/domain/gateway/api"
	"weather-watchlist/internal/domain/gateway/db"
	"weather-watchlist/internal/domain/model"
	"weather-watchlist/internal/domain/usecase/weather"
	"weather-watchlist/pkg/log"
	"weather-watchlist/pkg/msg"

	"go.uber.org/zap"
)

const minSearchLength = 3

type locationUseCase struct {
	apiGateway     api.OpenWeatherGateway
	dbGateway      db.LocationGateway
	weatherUseCase weather.UseCase
	searchLimit    int
}

func NewLocationUseCase(apiGateway api.OpenWeatherGateway, dbGateway db.LocationGateway, weatherUseCase weather.UseCase, searchLimit int) UseCase {
	if searchLimit <= 0 {
		searchLimit = 5
	}
	return &locationUseCase{
		apiGateway:     apiGateway,
		dbGateway:      dbGateway,
		weatherUseCase: weatherUseCase,
		searchLimit:    searchLimit,
	}
}

func (uc *locationUseCase) ListLocations(ctx context.Context) ([]entity.Location, error) {
	locations, err := uc.dbGateway.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

// CreateLocation stores the first geocoding match. A failed initial sync is logged and the location is
// still returned; its weather shows as syncing until the next sync succeeds.
func (uc *locationUseCase) CreateLocation(ctx context.Context, cityName string) (*entity.Location, error) {
	cityName = strings.TrimSpace(cityName)
	if cityName == "" {
		return nil, fmt.Errorf("empty city name: %w", model.ErrCityNotFound)
	}

	matches, err := uc.apiGateway.SearchCities(ctx, cityName, 1)
	if err != nil {
		log.Warn("Geocoding failed", zap.String("city", cityName), zap.Error(err))
		return nil, fmt.Errorf("geocode %q: %w", cityName, model.ErrCityNotFound)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("geocode %q: %w", cityName, model.ErrCityNotFound)
	}
	match := matches[0]

	existing, err := uc.dbGateway.FindByCoordinates(ctx, match.Lat, match.Lon)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing location: %w", err)
	}

	created, err := uc.dbGateway.Create(ctx, entity.Location{
		Name:    match.Name,
		Country: match.Country,
		Lat:     match.Lat,
		Lon:     match.Lon,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save location: %w", err)
	}
	log.Info(msg.GetMessage("location.created", created.Name, created.Country, created.ID))

	snapshot, err := uc.weatherUseCase.SyncLocation(ctx, created.ID)
	if err != nil {
		log.Warn("Initial sync failed", zap.Int64("location_id", created.ID), zap.Error(err))
		return created, nil
	}
	created.LastSynced = &snapshot.Timestamp
	return created, nil
}

func (uc *locationUseCase) UpdateLocation(ctx context.Context, id int64, update db.LocationUpdate) (*entity.Location, error) {
	location, err := uc.dbGateway.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("location %d: %w", id, model.ErrLocationNotFound)
		}
		return nil, fmt.Errorf("failed to update location: %w", err)
	}
	return location, nil
}

func (uc *locationUseCase) DeleteLocation(ctx context.Context, id int64) error {
	if err := uc.dbGateway.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("location %d: %w", id, model.ErrLocationNotFound)
		}
		return fmt.Errorf("failed to delete location: %w", err)
	}
	log.Info(msg.GetMessage("location.deleted", id))
	return nil
}

// SearchCities answers an empty list for short queries and when the provider fails.
func (uc *locationUseCase) SearchCities(ctx context.Context, query string) ([]entity.Suggestion, error) {
	suggestions := make([]entity.Suggestion, 0)
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minSearchLength {
		return suggestions, nil
	}

	matches, err := uc.apiGateway.SearchCities(ctx, query, uc.searchLimit)
	if err != nil {
		log.Warn("City search failed", zap.String("query", query), zap.Error(err))
		return suggestions, nil
	}

	for _, match := range matches {
		if len(suggestions) == uc.searchLimit {
			break
		}
		suggestions = append(suggestions, entity.Suggestion{
			Name:    match.Name,
			Country: match.Country,
			State:   match.State,
			Lat:     match.Lat,
			Lon:     match.Lon,
		})
	}
	return suggestions, nil
}
