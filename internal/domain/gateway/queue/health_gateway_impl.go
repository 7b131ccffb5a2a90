package queue

import (
	"strconv"
	"sync"

	"weather-watchlist/internal/domain/model"
	"weather-watchlist/pkg/sqs"
)

// QueueHealthGateway folds the health of the registered sync-queue consumers into one component.
type QueueHealthGateway struct {
	mu        sync.RWMutex
	consumers map[string]WorkerHealthChecker
}

var _ HealthGateway = (*QueueHealthGateway)(nil)

func NewQueueHealthGateway() *QueueHealthGateway {
	return &QueueHealthGateway{consumers: map[string]WorkerHealthChecker{}}
}

func (g *QueueHealthGateway) RegisterWorker(name string, worker WorkerHealthChecker) {
	g.mu.Lock()
	g.consumers[name] = worker
	g.mu.Unlock()
}

func (g *QueueHealthGateway) UnregisterWorker(name string) {
	g.mu.Lock()
	delete(g.consumers, name)
	g.mu.Unlock()
}

// Health is DISABLED when no consumer is registered, which happens when no sync queue is configured.
// A single stopped consumer marks the whole queue DOWN.
func (g *QueueHealthGateway) Health() model.ComponentHealthStatus {
	g.mu.RLock()
	snapshot := make(map[string]sqs.WorkerHealth, len(g.consumers))
	for name, consumer := range g.consumers {
		snapshot[name] = consumer.HealthCheck()
	}
	g.mu.RUnlock()

	if len(snapshot) == 0 {
		return model.ComponentHealthStatus{
			Status:  model.StatusDisabled,
			Details: map[string]string{"message": "sync queue not configured", "workers_total": "0"},
		}
	}

	details := map[string]string{}
	up := 0
	for name, health := range snapshot {
		state := "DOWN"
		if health.Status == sqs.StatusUp {
			state = "UP"
			up++
		}
		details[name+"_status"] = state
		for key, value := range health.Details {
			details[name+"_"+key] = value
		}
	}

	details["workers_total"] = strconv.Itoa(len(snapshot))
	details["workers_up"] = strconv.Itoa(up)
	details["workers_down"] = strconv.Itoa(len(snapshot) - up)

	status := model.StatusUp
	if up < len(snapshot) {
		status = model.StatusDown
	}
	return model.ComponentHealthStatus{Status: status, Details: details}
}
