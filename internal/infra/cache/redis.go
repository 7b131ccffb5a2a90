package cache

import (
	"context"
	"fmt"

	"weather-watchlist/internal/domain/gateway/cache"
	"weather-watchlist/pkg/redis"
	"weather-watchlist/pkg/resource"
)

// NewRedisClient connects to the server described by app.redis.* and checks it answers.
func NewRedisClient(ctx context.Context) (*redis.Client, error) {
	config := redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database"))
	if ttl := resource.GetDuration("app.redis.cache.forecast-ttl"); ttl > 0 {
		config.WithCacheTTL(cache.ForecastCacheName, ttl)
	}

	client, err := redis.NewClient(config)
	if err != nil {
		return nil, err
	}
	if err = client.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s:%d: %w", config.Host, config.Port, err)
	}
	return client, nil
}
