package gorm

import (
	"fmt"
	"time"

	"weather-watchlist/internal/domain/entity"
	"weather-watchlist/pkg/resource"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the PostgreSQL database described by app.db.* and migrates the watchlist tables.
func Connect() (*gorm.DB, error) {
	host := resource.GetString("app.db.host")
	port := resource.GetString("app.db.port")
	password := resource.GetString("app.db.password")
	username := resource.GetString("app.db.username")
	database := resource.GetString("app.db.database")
	schema := resource.GetString("app.db.schema")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable search_path=%s",
		host, username, password, database, port, schema)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("connect database %s@%s:%s/%s: %w", username, host, port, database, err)
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the location and weather_snapshot tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entity.Location{}, &entity.WeatherSnapshot{}); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}
