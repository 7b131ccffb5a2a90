package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"weather-watchlist/internal/domain/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&entity.Location{}, &entity.WeatherSnapshot{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestLocationCRUD(t *testing.T) {
	ctx := context.Background()
	gateway := NewGormLocationGateway(newTestDB(t))

	created, err := gateway.Create(ctx, entity.Location{Name: "Paris", Country: "FR", Lat: 48.8566, Lon: 2.3522})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("id not assigned")
	}

	found, err := gateway.FindByCoordinates(ctx, 48.85661, 2.35219)
	if err != nil || found.ID != created.ID {
		t.Fatalf("find by coordinates: %v %+v", err, found)
	}
	if _, err := gateway.FindByCoordinates(ctx, 51.5, -0.12); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	favorite, name := true, "Home"
	updated, err := gateway.Update(ctx, created.ID, LocationUpdate{IsFavorite: &favorite, DisplayName: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.IsFavorite || updated.Label() != "Home" {
		t.Fatalf("unexpected update result %+v", updated)
	}

	reloaded, err := gateway.FindByID(ctx, created.ID)
	if err != nil || !reloaded.IsFavorite || reloaded.Label() != "Home" {
		t.Fatalf("update not persisted: %v %+v", err, reloaded)
	}

	if _, err := gateway.Update(ctx, 999, LocationUpdate{IsFavorite: &favorite}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSnapshotsStampLocationAndCascadeOnDelete(t *testing.T) {
	ctx := context.Background()
	gateway := NewGormLocationGateway(newTestDB(t))
	location, _ := gateway.Create(ctx, entity.Location{Name: "Oslo", Country: "NO", Lat: 59.91, Lon: 10.75})

	if _, err := gateway.FindLatestSnapshot(ctx, location.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected no snapshot, got %v", err)
	}

	base := time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC)
	for i, temp := range []float64{10, 12, 11} {
		_, err := gateway.SaveSnapshot(ctx, entity.WeatherSnapshot{
			LocationID: location.ID,
			Temp:       temp,
			Timestamp:  entity.NewTimestamp(base.Add(time.Duration(i) * time.Hour)),
		})
		if err != nil {
			t.Fatalf("save snapshot: %v", err)
		}
	}

	latest, err := gateway.FindLatestSnapshot(ctx, location.ID)
	if err != nil || latest.Temp != 11 {
		t.Fatalf("unexpected latest snapshot: %v %+v", err, latest)
	}
	reloaded, _ := gateway.FindByID(ctx, location.ID)
	if reloaded.LastSynced == nil || !reloaded.LastSynced.Equal(base.Add(2*time.Hour)) {
		t.Fatalf("last_synced not stamped: %+v", reloaded.LastSynced)
	}

	if err := gateway.DeleteByID(ctx, location.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var snapshots int64
	gateway.DB.Model(&entity.WeatherSnapshot{}).Count(&snapshots)
	if snapshots != 0 {
		t.Fatalf("snapshots left behind: %d", snapshots)
	}
	if err := gateway.DeleteByID(ctx, location.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestSaveSnapshotForMissingLocation(t *testing.T) {
	gateway := NewGormLocationGateway(newTestDB(t))

	_, err := gateway.SaveSnapshot(context.Background(), entity.WeatherSnapshot{LocationID: 42, Timestamp: entity.NewTimestamp(time.Now())})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteSnapshotsBefore(t *testing.T) {
	ctx := context.Background()
	gateway := NewGormLocationGateway(newTestDB(t))
	location, _ := gateway.Create(ctx, entity.Location{Name: "Lima", Country: "PE"})

	now := time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC)
	for _, age := range []time.Duration{40 * 24 * time.Hour, 31 * 24 * time.Hour, time.Hour} {
		if _, err := gateway.SaveSnapshot(ctx, entity.WeatherSnapshot{LocationID: location.ID, Timestamp: entity.NewTimestamp(now.Add(-age))}); err != nil {
			t.Fatalf("save snapshot: %v", err)
		}
	}

	removed, err := gateway.DeleteSnapshotsBefore(ctx, now.Add(-30*24*time.Hour))
	if err != nil || removed != 2 {
		t.Fatalf("expected 2 removed, got %d (%v)", removed, err)
	}
	latest, err := gateway.FindLatestSnapshot(ctx, location.ID)
	if err != nil || !latest.Timestamp.Equal(now.Add(-time.Hour)) {
		t.Fatalf("recent snapshot lost: %v %+v", err, latest)
	}
}

func TestGormHealth(t *testing.T) {
	db := newTestDB(t)

	status := NewGormHealthDBGateway(db).Health(context.Background())
	if status.Status != "UP" || status.Details["dialect"] != "sqlite" {
		t.Fatalf("unexpected health %+v", status)
	}

	sqlDB, _ := db.DB()
	status = NewSQLCHealthDBGateway(sqlDB).Health(context.Background())
	if status.Status != "UP" || status.Details["locations"] != "0" {
		t.Fatalf("unexpected raw health %+v", status)
	}

	_ = sqlDB.Close()
	if status := NewGormHealthDBGateway(db).Health(context.Background()); status.Status != "DOWN" {
		t.Fatalf("expected DOWN after close, got %+v", status)
	}
}
