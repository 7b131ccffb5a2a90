package db

import (
	"context"

	"weather-watchlist/internal/domain/model"
)

type HealthDBGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

func down(err error) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusDown,
		Details: map[string]string{
			"message": err.Error(),
		},
	}
}
