package cache

import (
	"context"
	"errors"
	"fmt"

	"weather-watchlist/internal/domain/entity"
	"weather-watchlist/internal/domain/model"
	"weather-watchlist/pkg/redis"
)

// ForecastCacheName prefixes forecast keys and names the TTL entry in the redis config.
const ForecastCacheName = "forecast"

// ErrMiss is returned by Get when nothing is cached for the coordinates
var ErrMiss = errors.New("forecast not cached")

type ForecastCache interface {
	Get(ctx context.Context, lat, lon float64) ([]entity.ForecastEntry, error)
	Set(ctx context.Context, lat, lon float64, forecast []entity.ForecastEntry) error
	Health(ctx context.Context) model.ComponentHealthStatus
}

// key rounds to about a hundred meters so the same city always lands on one entry.
func key(lat, lon float64) string {
	return fmt.Sprintf("%.3f:%.3f", lat, lon)
}

type RedisForecastCache struct {
	client *redis.Client
	cache  *redis.Cache
}

var _ ForecastCache = (*RedisForecastCache)(nil)

func NewRedisForecastCache(client *redis.Client) *RedisForecastCache {
	return &RedisForecastCache{
		client: client,
		cache:  redis.NewCache(client, redis.NewCacheOptions().WithCacheName(ForecastCacheName)),
	}
}

func (c *RedisForecastCache) Get(ctx context.Context, lat, lon float64) ([]entity.ForecastEntry, error) {
	var forecast []entity.ForecastEntry
	if err := c.cache.Get(ctx, key(lat, lon), &forecast); err != nil {
		if errors.Is(err, redis.ErrCacheMiss) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("read cached forecast: %w", err)
	}
	return forecast, nil
}

func (c *RedisForecastCache) Set(ctx context.Context, lat, lon float64, forecast []entity.ForecastEntry) error {
	if err := c.cache.Set(ctx, key(lat, lon), forecast); err != nil {
		return fmt.Errorf("cache forecast: %w", err)
	}
	return nil
}

func (c *RedisForecastCache) Health(ctx context.Context) model.ComponentHealthStatus {
	check := c.client.CheckHealth(ctx)
	status := model.StatusDown
	if check.Status == redis.StatusUp {
		status = model.StatusUp
	}
	return model.ComponentHealthStatus{Status: status, Details: check.Details}
}

// NoopForecastCache never holds anything; used when redis is disabled.
type NoopForecastCache struct{}

var _ ForecastCache = NoopForecastCache{}

func (NoopForecastCache) Get(context.Context, float64, float64) ([]entity.ForecastEntry, error) {
	return nil, ErrMiss
}

func (NoopForecastCache) Set(context.Context, float64, float64, []entity.ForecastEntry) error {
	return nil
}

func (NoopForecastCache) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusDisabled,
		Details: map[string]string{"message": "redis disabled"},
	}
}
