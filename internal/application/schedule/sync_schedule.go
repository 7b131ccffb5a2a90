package schedule

import (
	"context"
	"fmt"
	"time"

	"weather-watchlist/internal/domain/usecase/weather"
	"weather-watchlist/pkg/log"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

const syncJobName = "weather-sync-all"

// SyncSchedulerConfig holds configuration for the periodic sync. A nil Locker runs the job on every
// instance; with a Locker only the instance holding the lock runs a given tick.
type SyncSchedulerConfig struct {
	Interval time.Duration
	Locker   gocron.Locker
	Clock    clockwork.Clock
}

// SyncScheduler refreshes every tracked location on a fixed interval
type SyncScheduler struct {
	scheduler gocron.Scheduler
	useCase   weather.UseCase
	interval  time.Duration
}

func NewSyncScheduler(useCase weather.UseCase, config SyncSchedulerConfig) (*SyncScheduler, error) {
	if config.Interval <= 0 {
		return nil, fmt.Errorf("sync interval must be positive, got %s", config.Interval)
	}

	options := []gocron.SchedulerOption{
		gocron.WithLogger(cronLogger{}),
		gocron.WithLocation(time.UTC),
	}
	if config.Locker != nil {
		options = append(options, gocron.WithDistributedLocker(config.Locker))
	}
	if config.Clock != nil {
		options = append(options, gocron.WithClock(config.Clock))
	}

	scheduler, err := gocron.NewScheduler(options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync scheduler: %w", err)
	}

	return &SyncScheduler{scheduler: scheduler, useCase: useCase, interval: config.Interval}, nil
}

// InitSyncScheduleTasks registers the sync job and starts the scheduler
func (s *SyncScheduler) InitSyncScheduleTasks() error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.ExecuteScheduledTask),
		gocron.WithName(syncJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule weather sync: %w", err)
	}

	s.scheduler.Start()
	log.Info("Weather sync scheduler started", zap.Duration("interval", s.interval))
	return nil
}

// ExecuteScheduledTask syncs every location under a fresh request id
func (s *SyncScheduler) ExecuteScheduledTask(ctx context.Context) {
	requestID := uuid.New().String()
	log.Info("Weather sync scheduled task triggered", zap.String("request_id", requestID))

	if err := s.useCase.SyncAllScheduled(ctx, requestID); err != nil {
		log.Error("Failed to execute scheduled weather sync", zap.String("request_id", requestID), zap.Error(err))
		return
	}

	log.Info("Scheduled weather sync completed", zap.String("request_id", requestID))
}

// Stop waits for a running sync and stops the scheduler
func (s *SyncScheduler) Stop() error {
	return s.scheduler.Shutdown()
}

// cronLogger routes gocron's own messages to the application log
type cronLogger struct{}

func (cronLogger) Debug(msg string, args ...any) { log.Debugw(msg, args...) }
func (cronLogger) Error(msg string, args ...any) { log.Errorw(msg, args...) }
func (cronLogger) Info(msg string, args ...any)  { log.Debugw(msg, args...) }
func (cronLogger) Warn(msg string, args ...any)  { log.Warnw(msg, args...) }
