package schedule

import (
	"context"
	"fmt"

	"weather-watchlist/internal/domain/usecase/weather"
	"weather-watchlist/pkg/log"
	"weather-watchlist/pkg/msg"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type RetentionScheduler struct {
	cron    *cron.Cron
	useCase weather.UseCase
}

func NewRetentionScheduler(useCase weather.UseCase) *RetentionScheduler {
	return &RetentionScheduler{cron: cron.New(), useCase: useCase}
}

// InitRetentionScheduleTasks schedules the snapshot cleanup with a standard five field cron expression
func (scheduler *RetentionScheduler) InitRetentionScheduleTasks(cronExpression string) error {
	if _, err := scheduler.cron.AddFunc(cronExpression, scheduler.PruneSnapshots); err != nil {
		return fmt.Errorf("invalid snapshot cleanup cron %q: %w", cronExpression, err)
	}

	scheduler.cron.Start()
	return nil
}

func (scheduler *RetentionScheduler) PruneSnapshots() {
	if _, err := scheduler.useCase.PruneSnapshots(context.Background()); err != nil {
		log.Error(msg.GetMessage("snapshot.error.cleanup-failed"), zap.Error(err))
	}
}

// Stop waits for a running cleanup
func (scheduler *RetentionScheduler) Stop() {
	ctx := scheduler.cron.Stop()
	<-ctx.Done()
}
