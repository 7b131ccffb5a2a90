package health

import (
	"context"

	"weather-watchlist/internal/domain/gateway/cache"
	"weather-watchlist/internal/domain/gateway/db"
	"weather-watchlist/internal/domain/gateway/queue"
	"weather-watchlist/internal/domain/model"
)

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	cacheGateway cache.ForecastCache
	queueGateway queue.HealthGateway
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, cacheGateway cache.ForecastCache, queueGateway queue.HealthGateway) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		cacheGateway: cacheGateway,
		queueGateway: queueGateway,
	}
}

// CheckHealth is UP when every enabled component is UP. Disabled components do not count.
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	dbHealth := useCase.dbGateway.Health(ctx)
	cacheHealth := useCase.cacheGateway.Health(ctx)
	queueHealth := useCase.queueGateway.Health()

	overallStatus := model.StatusUp
	for _, component := range []model.ComponentHealthStatus{dbHealth, cacheHealth, queueHealth} {
		if component.Status != model.StatusUp && component.Status != model.StatusDisabled {
			overallStatus = model.StatusDown
		}
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Database: dbHealth,
		Cache:    cacheHealth,
		Queue:    queueHealth,
	}
}
