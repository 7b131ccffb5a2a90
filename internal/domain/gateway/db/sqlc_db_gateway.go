package db

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"weather-watchlist/internal/domain/model"
)

// SQLCHealthDBGateway probes the database over a plain database/sql pool, independent of the ORM.
type SQLCHealthDBGateway struct {
	DB *sql.DB
}

var _ HealthDBGateway = (*SQLCHealthDBGateway)(nil)

func NewSQLCHealthDBGateway(db *sql.DB) *SQLCHealthDBGateway {
	return &SQLCHealthDBGateway{DB: db}
}

func (gateway *SQLCHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var locations int64
	if err := gateway.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM location`).Scan(&locations); err != nil {
		return down(err)
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"message":   string(model.StatusUp),
			"locations": strconv.FormatInt(locations, 10),
		},
	}
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
