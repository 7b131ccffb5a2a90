package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"weather-watchlist/internal/domain/entity"

	"gorm.io/gorm"
)

// coordinateTolerance is the distance in degrees under which two geocoded points are the same city.
const coordinateTolerance = 1e-4

type GormLocationGateway struct {
	DB *gorm.DB
}

var _ LocationGateway = (*GormLocationGateway)(nil)

func NewGormLocationGateway(db *gorm.DB) *GormLocationGateway {
	return &GormLocationGateway{DB: db}
}

func (gateway *GormLocationGateway) FindAll(ctx context.Context) ([]entity.Location, error) {
	locations := make([]entity.Location, 0)
	if err := gateway.DB.WithContext(ctx).Order("id").Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("find locations: %w", err)
	}
	return locations, nil
}

func (gateway *GormLocationGateway) FindByID(ctx context.Context, id int64) (*entity.Location, error) {
	var location entity.Location
	if err := gateway.DB.WithContext(ctx).First(&location, id).Error; err != nil {
		return nil, notFound(err, "find location %d", id)
	}
	return &location, nil
}

func (gateway *GormLocationGateway) FindByCoordinates(ctx context.Context, lat, lon float64) (*entity.Location, error) {
	var location entity.Location
	err := gateway.DB.WithContext(ctx).
		Where("lat BETWEEN ? AND ?", lat-coordinateTolerance, lat+coordinateTolerance).
		Where("lon BETWEEN ? AND ?", lon-coordinateTolerance, lon+coordinateTolerance).
		Order("id").
		First(&location).Error
	if err != nil {
		return nil, notFound(err, "find location at %f,%f", lat, lon)
	}
	return &location, nil
}

func (gateway *GormLocationGateway) Create(ctx context.Context, location entity.Location) (*entity.Location, error) {
	location.ID = 0
	if err := gateway.DB.WithContext(ctx).Create(&location).Error; err != nil {
		return nil, fmt.Errorf("create location: %w", err)
	}
	return &location, nil
}

func (gateway *GormLocationGateway) Update(ctx context.Context, id int64, update LocationUpdate) (*entity.Location, error) {
	var updated *entity.Location
	err := gateway.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var location entity.Location
		if err := tx.First(&location, id).Error; err != nil {
			return notFound(err, "update location %d", id)
		}

		changes := map[string]any{}
		if update.IsFavorite != nil {
			changes["is_favorite"] = *update.IsFavorite
			location.IsFavorite = *update.IsFavorite
		}
		if update.DisplayName != nil {
			changes["display_name"] = *update.DisplayName
			location.DisplayName = update.DisplayName
		}
		if len(changes) > 0 {
			if err := tx.Model(&entity.Location{}).Where("id = ?", id).Updates(changes).Error; err != nil {
				return fmt.Errorf("update location %d: %w", id, err)
			}
		}
		updated = &location
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteByID removes the location and its snapshots in one transaction, snapshots first.
func (gateway *GormLocationGateway) DeleteByID(ctx context.Context, id int64) error {
	return gateway.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("location_id = ?", id).Delete(&entity.WeatherSnapshot{}).Error; err != nil {
			return fmt.Errorf("delete snapshots of location %d: %w", id, err)
		}
		result := tx.Delete(&entity.Location{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete location %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("delete location %d: %w", id, ErrNotFound)
		}
		return nil
	})
}

func (gateway *GormLocationGateway) FindLatestSnapshot(ctx context.Context, locationID int64) (*entity.WeatherSnapshot, error) {
	var snapshot entity.WeatherSnapshot
	err := gateway.DB.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("timestamp DESC").
		Order("id DESC").
		First(&snapshot).Error
	if err != nil {
		return nil, notFound(err, "find latest snapshot of location %d", locationID)
	}
	return &snapshot, nil
}

// SaveSnapshot stores the snapshot and stamps the location's last_synced with its timestamp.
func (gateway *GormLocationGateway) SaveSnapshot(ctx context.Context, snapshot entity.WeatherSnapshot) (*entity.WeatherSnapshot, error) {
	snapshot.ID = 0
	err := gateway.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&snapshot).Error; err != nil {
			return fmt.Errorf("save snapshot of location %d: %w", snapshot.LocationID, err)
		}
		result := tx.Model(&entity.Location{}).
			Where("id = ?", snapshot.LocationID).
			Update("last_synced", snapshot.Timestamp)
		if result.Error != nil {
			return fmt.Errorf("stamp location %d: %w", snapshot.LocationID, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("stamp location %d: %w", snapshot.LocationID, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (gateway *GormLocationGateway) DeleteSnapshotsBefore(ctx context.Context, before time.Time) (int64, error) {
	result := gateway.DB.WithContext(ctx).
		Where("timestamp < ?", entity.NewTimestamp(before)).
		Delete(&entity.WeatherSnapshot{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete snapshots before %s: %w", before.Format(time.RFC3339), result.Error)
	}
	return result.RowsAffected, nil
}

func notFound(err error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
