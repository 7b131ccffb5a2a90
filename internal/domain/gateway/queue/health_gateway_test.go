package queue

import (
	"testing"

	"weather-watchlist/internal/domain/model"
	"weather-watchlist/pkg/sqs"
)

type stubWorker struct {
	health sqs.WorkerHealth
}

func (w stubWorker) HealthCheck() sqs.WorkerHealth { return w.health }

func TestQueueHealth(t *testing.T) {
	gateway := NewQueueHealthGateway()
	if status := gateway.Health(); status.Status != model.StatusDisabled {
		t.Fatalf("expected DISABLED without workers, got %s", status.Status)
	}

	gateway.RegisterWorker("sync", stubWorker{sqs.WorkerHealth{Status: sqs.StatusUp, Details: map[string]string{"queue": "sync-queue"}}})
	status := gateway.Health()
	if status.Status != model.StatusUp || status.Details["sync_queue"] != "sync-queue" || status.Details["workers_up"] != "1" {
		t.Fatalf("unexpected health %+v", status)
	}

	gateway.RegisterWorker("retry", stubWorker{sqs.WorkerHealth{Status: sqs.StatusDown}})
	status = gateway.Health()
	if status.Status != model.StatusDown || status.Details["workers_down"] != "1" {
		t.Fatalf("unexpected health %+v", status)
	}

	gateway.UnregisterWorker("retry")
	if status := gateway.Health(); status.Status != model.StatusUp {
		t.Fatalf("expected UP after unregister, got %s", status.Status)
	}
}
