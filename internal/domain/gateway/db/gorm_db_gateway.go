package db

import (
	"context"
	"time"

	"weather-watchlist/internal/domain/model"

	"gorm.io/gorm"
)

type GormHealthDBGateway struct {
	DB *gorm.DB
}

var _ HealthDBGateway = (*GormHealthDBGateway)(nil)

func NewGormHealthDBGateway(db *gorm.DB) *GormHealthDBGateway {
	return &GormHealthDBGateway{DB: db}
}

func (gateway *GormHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	sqlDB, err := gateway.DB.DB()
	if err != nil {
		return down(err)
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err = sqlDB.PingContext(ctx); err != nil {
		return down(err)
	}

	stats := sqlDB.Stats()
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"message":          string(model.StatusUp),
			"dialect":          gateway.DB.Dialector.Name(),
			"open_connections": itoa(stats.OpenConnections),
			"in_use":           itoa(stats.InUse),
		},
	}
}
