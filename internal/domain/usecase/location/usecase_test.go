package location

import (
	"context"
	"errors"
	"testing"

	"weather-watchlist/internal/domain/entity"
	"weather-watchlist/internal/domain/gateway/db"
	"weather-watchlist/internal/domain/model"
	"weather-watchlist/internal/domain/model/external"
	"weather-watchlist/internal/domain/usecase/weather"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeProvider struct {
	matches     []external.GeoLocationResponse
	failSearch  bool
	failCurrent bool
	lastLimit   int
}

func (f *fakeProvider) SearchCities(_ context.Context, _ string, limit int) ([]external.GeoLocationResponse, error) {
	f.lastLimit = limit
	if f.failSearch {
		return nil, errors.New("provider down")
	}
	if limit < len(f.matches) {
		return f.matches[:limit], nil
	}
	return f.matches, nil
}

func (f *fakeProvider) GetCurrentWeather(context.Context, float64, float64) (*external.CurrentWeatherResponse, error) {
	if f.failCurrent {
		return nil, errors.New("provider down")
	}
	return &external.CurrentWeatherResponse{
		Main:    external.MainDTO{Temp: 12.3, Humidity: 70},
		Weather: []external.ConditionDTO{{Description: "mist", Icon: "50d"}},
	}, nil
}

func (f *fakeProvider) GetForecast(context.Context, float64, float64) (*external.ForecastResponse, error) {
	return &external.ForecastResponse{}, nil
}

func newUseCase(t *testing.T, provider *fakeProvider) (UseCase, *db.GormLocationGateway) {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := conn.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := conn.AutoMigrate(&entity.Location{}, &entity.WeatherSnapshot{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	gateway := db.NewGormLocationGateway(conn)
	weatherUseCase := weather.NewWeatherUseCase(provider, gateway, nil, weather.Options{})
	return NewLocationUseCase(provider, gateway, weatherUseCase, 5), gateway
}

func london() external.GeoLocationResponse {
	return external.GeoLocationResponse{Name: "London", Country: "GB", State: "England", Lat: 51.5073, Lon: -0.1276}
}

func TestCreateLocationSyncsAndDeduplicates(t *testing.T) {
	ctx := context.Background()
	useCase, gateway := newUseCase(t, &fakeProvider{matches: []external.GeoLocationResponse{london()}})

	created, err := useCase.CreateLocation(ctx, "  london ")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Name != "London" || created.Country != "GB" || created.LastSynced == nil {
		t.Fatalf("unexpected location %+v", created)
	}
	if snapshot, err := gateway.FindLatestSnapshot(ctx, created.ID); err != nil || snapshot.Icon != "50d" {
		t.Fatalf("initial sync missing: %v %+v", err, snapshot)
	}

	again, err := useCase.CreateLocation(ctx, "London")
	if err != nil || again.ID != created.ID {
		t.Fatalf("expected the existing location, got %v %+v", err, again)
	}
	locations, _ := useCase.ListLocations(ctx)
	if len(locations) != 1 {
		t.Fatalf("duplicate created: %d locations", len(locations))
	}
}

func TestCreateLocationNotFound(t *testing.T) {
	ctx := context.Background()

	useCase, _ := newUseCase(t, &fakeProvider{})
	if _, err := useCase.CreateLocation(ctx, "Atlantis"); !errors.Is(err, model.ErrCityNotFound) {
		t.Fatalf("expected city not found, got %v", err)
	}

	useCase, _ = newUseCase(t, &fakeProvider{failSearch: true})
	if _, err := useCase.CreateLocation(ctx, "London"); !errors.Is(err, model.ErrCityNotFound) {
		t.Fatalf("expected city not found on provider failure, got %v", err)
	}
}

func TestCreateLocationKeepsLocationWhenInitialSyncFails(t *testing.T) {
	ctx := context.Background()
	useCase, _ := newUseCase(t, &fakeProvider{matches: []external.GeoLocationResponse{london()}, failCurrent: true})

	created, err := useCase.CreateLocation(ctx, "London")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 || created.LastSynced != nil {
		t.Fatalf("unexpected location %+v", created)
	}
}

func TestUpdateAndDeleteLocation(t *testing.T) {
	ctx := context.Background()
	useCase, _ := newUseCase(t, &fakeProvider{matches: []external.GeoLocationResponse{london()}})
	created, _ := useCase.CreateLocation(ctx, "London")

	favorite := true
	updated, err := useCase.UpdateLocation(ctx, created.ID, db.LocationUpdate{IsFavorite: &favorite})
	if err != nil || !updated.IsFavorite {
		t.Fatalf("update: %v %+v", err, updated)
	}
	if _, err := useCase.UpdateLocation(ctx, 999, db.LocationUpdate{IsFavorite: &favorite}); !errors.Is(err, model.ErrLocationNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := useCase.DeleteLocation(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := useCase.DeleteLocation(ctx, created.ID); !errors.Is(err, model.ErrLocationNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSearchCities(t *testing.T) {
	ctx := context.Background()
	matches := make([]external.GeoLocationResponse, 7)
	for i := range matches {
		matches[i] = london()
	}
	provider := &fakeProvider{matches: matches}
	useCase, _ := newUseCase(t, provider)

	short, err := useCase.SearchCities(ctx, "lo")
	if err != nil || short == nil || len(short) != 0 {
		t.Fatalf("short query should answer an empty list, got %v %v", short, err)
	}

	suggestions, err := useCase.SearchCities(ctx, "lon")
	if err != nil || len(suggestions) != 5 || provider.lastLimit != 5 {
		t.Fatalf("expected 5 suggestions, got %d (%v)", len(suggestions), err)
	}
	if suggestions[0].State != "England" {
		t.Fatalf("unexpected suggestion %+v", suggestions[0])
	}

	provider.failSearch = true
	failed, err := useCase.SearchCities(ctx, "lon")
	if err != nil || len(failed) != 0 {
		t.Fatalf("provider failure should answer an empty list, got %v %v", failed, err)
	}
}
