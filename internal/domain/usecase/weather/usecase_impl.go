package weather

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"weather-watchlist/internal/domain/entity"
	"weather-watchlist/internal/domain/gateway/api"
	"weather-watchlist/internal/domain/gateway/cache"
	"weather-watchlist/internal/domain/gateway/db"
	"weather-watchlist/internal/domain/gateway/queue"
	"weather-watchlist/internal/domain/model"
	"weather-watchlist/internal/domain/model/external"
	"weather-watchlist/pkg/log"
	"weather-watchlist/pkg/msg"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// inlineSyncLimit bounds concurrent provider calls when syncing without a queue.
const inlineSyncLimit = 4

// Options configure the weather use case. A nil QueueSender or an empty QueueName syncs inline.
type Options struct {
	QueueName   string
	QueueSender queue.Sender
	Retention   time.Duration
	Clock       clockwork.Clock
}

type weatherUseCase struct {
	apiGateway   api.OpenWeatherGateway
	dbGateway    db.LocationGateway
	cacheGateway cache.ForecastCache
	queueSender  queue.Sender
	queueName    string
	retention    time.Duration
	clock        clockwork.Clock
}

func NewWeatherUseCase(apiGateway api.OpenWeatherGateway, dbGateway db.LocationGateway, cacheGateway cache.ForecastCache, opts Options) UseCase {
	if cacheGateway == nil {
		cacheGateway = cache.NoopForecastCache{}
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Retention <= 0 {
		opts.Retention = 30 * 24 * time.Hour
	}

	return &weatherUseCase{
		apiGateway:   apiGateway,
		dbGateway:    dbGateway,
		cacheGateway: cacheGateway,
		queueSender:  opts.QueueSender,
		queueName:    opts.QueueName,
		retention:    opts.Retention,
		clock:        opts.Clock,
	}
}

// GetWeather never fails on the provider: an unavailable forecast is reported as empty.
func (uc *weatherUseCase) GetWeather(ctx context.Context, locationID int64) (*model.WeatherReport, error) {
	location, err := uc.findLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}

	report := &model.WeatherReport{Location: *location}

	snapshot, err := uc.dbGateway.FindLatestSnapshot(ctx, locationID)
	switch {
	case err == nil:
		report.Current = snapshot
	case !errors.Is(err, db.ErrNotFound):
		return nil, fmt.Errorf("failed to read latest snapshot: %w", err)
	}

	report.Forecast = uc.forecast(ctx, *location)
	return report, nil
}

func (uc *weatherUseCase) forecast(ctx context.Context, location entity.Location) []entity.ForecastEntry {
	cached, err := uc.cacheGateway.Get(ctx, location.Lat, location.Lon)
	if err == nil {
		return cached
	}
	if !errors.Is(err, cache.ErrMiss) {
		log.Warn("Forecast cache unavailable", zap.Int64("location_id", location.ID), zap.Error(err))
	}

	response, err := uc.apiGateway.GetForecast(ctx, location.Lat, location.Lon)
	if err != nil {
		log.Warn("Forecast unavailable", zap.Int64("location_id", location.ID), zap.Error(err))
		return []entity.ForecastEntry{}
	}

	forecast := convertForecast(response)
	if err := uc.cacheGateway.Set(ctx, location.Lat, location.Lon, forecast); err != nil {
		log.Warn("Failed to cache forecast", zap.Int64("location_id", location.ID), zap.Error(err))
	}
	return forecast
}

func convertForecast(response *external.ForecastResponse) []entity.ForecastEntry {
	forecast := make([]entity.ForecastEntry, 0, len(response.List))
	for _, item := range response.List {
		entry := entity.ForecastEntry{
			Timestamp: entity.NewTimestamp(time.Unix(item.Dt, 0)),
			Temp:      item.Main.Temp,
		}
		if len(item.Weather) > 0 {
			entry.Description = item.Weather[0].Description
			entry.Icon = item.Weather[0].Icon
		}
		forecast = append(forecast, entry)
	}
	return forecast
}

func (uc *weatherUseCase) SyncLocation(ctx context.Context, locationID int64) (*entity.WeatherSnapshot, error) {
	location, err := uc.findLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}

	current, err := uc.apiGateway.GetCurrentWeather(ctx, location.Lat, location.Lon)
	if err != nil {
		return nil, fmt.Errorf("sync location %d: %w: %w", locationID, model.ErrProviderUnavailable, err)
	}

	snapshot := entity.WeatherSnapshot{
		LocationID:  locationID,
		Temp:        current.Main.Temp,
		Description: current.Weather[0].Description,
		Icon:        current.Weather[0].Icon,
		Humidity:    current.Main.Humidity,
		WindSpeed:   current.Wind.Speed,
		FeelsLike:   current.Main.FeelsLike,
		Timestamp:   entity.NewTimestamp(uc.clock.Now()),
	}

	saved, err := uc.dbGateway.SaveSnapshot(ctx, snapshot)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("sync location %d: %w", locationID, model.ErrLocationNotFound)
		}
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}

	log.Debug(msg.GetMessage("weather.synced", locationID))
	return saved, nil
}

// SyncAllScheduled enqueues one message per location when a queue is configured; otherwise it
// syncs inline with bounded concurrency. Individual failures are logged, not returned.
func (uc *weatherUseCase) SyncAllScheduled(ctx context.Context, requestID string) error {
	locations, err := uc.dbGateway.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list locations: %w", err)
	}

	log.Info(msg.GetMessage("weather.sync-all.start", len(locations)), zap.String("request_id", requestID))
	if len(locations) == 0 {
		return nil
	}

	if uc.queueSender != nil && uc.queueName != "" {
		return uc.enqueueAll(ctx, requestID, locations)
	}
	uc.syncInline(ctx, requestID, locations)
	return nil
}

func (uc *weatherUseCase) enqueueAll(ctx context.Context, requestID string, locations []entity.Location) error {
	messages := make([]queue.BatchMessage, len(locations))
	for i, location := range locations {
		messages[i] = queue.BatchMessage{
			MessageID: "sync-" + strconv.FormatInt(location.ID, 10),
			Body:      model.SyncMessage{LocationID: location.ID, RequestID: requestID},
		}
	}

	result, err := uc.queueSender.SendMessageBatch(ctx, uc.queueName, messages)
	if err != nil {
		return fmt.Errorf("failed to enqueue locations: %w", err)
	}
	for _, failedID := range result.Failed {
		log.Warn("Failed to enqueue location", zap.String("request_id", requestID), zap.String("message_id", failedID))
	}

	log.Info(msg.GetMessage("weather.sync-all.end", len(result.Successful), len(result.Failed)),
		zap.String("request_id", requestID),
		zap.String("mode", "queue"))
	return nil
}

func (uc *weatherUseCase) syncInline(ctx context.Context, requestID string, locations []entity.Location) {
	var synced, failed atomic.Int64
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(inlineSyncLimit)

	for _, location := range locations {
		group.Go(func() error {
			if _, err := uc.SyncLocation(groupCtx, location.ID); err != nil {
				failed.Add(1)
				log.Warn("Failed to sync location",
					zap.String("request_id", requestID),
					zap.Int64("location_id", location.ID),
					zap.Error(err))
				return nil
			}
			synced.Add(1)
			return nil
		})
	}
	_ = group.Wait()

	log.Info(msg.GetMessage("weather.sync-all.end", synced.Load(), failed.Load()),
		zap.String("request_id", requestID),
		zap.String("mode", "inline"))
}

func (uc *weatherUseCase) PruneSnapshots(ctx context.Context) (int64, error) {
	cutoff := uc.clock.Now().Add(-uc.retention)
	log.Info(msg.GetMessage("snapshot.cron.start", cutoff.UTC().Format(time.RFC3339)))

	removed, err := uc.dbGateway.DeleteSnapshotsBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune snapshots: %w", err)
	}

	log.Info(msg.GetMessage("snapshot.cron.end", removed))
	return removed, nil
}

func (uc *weatherUseCase) findLocation(ctx context.Context, id int64) (*entity.Location, error) {
	location, err := uc.dbGateway.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("location %d: %w", id, model.ErrLocationNotFound)
		}
		return nil, fmt.Errorf("failed to find location: %w", err)
	}
	return location, nil
}
