package queue

import (
	"weather-watchlist/internal/domain/model"
	"weather-watchlist/pkg/sqs"
)

// WorkerHealthChecker is the part of a queue worker the health gateway reads
type WorkerHealthChecker interface {
	HealthCheck() sqs.WorkerHealth
}

type HealthGateway interface {
	Health() model.ComponentHealthStatus
	RegisterWorker(name string, worker WorkerHealthChecker)
	UnregisterWorker(name string)
}
