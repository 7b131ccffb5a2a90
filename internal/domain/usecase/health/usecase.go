package health

import (
	"context"

	"weather-watchlist/internal/domain/model"
)

type UseCase interface {
	CheckHealth(ctx context.Context) model.HealthResponse
}
