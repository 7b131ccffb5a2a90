package cache

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"weather-watchlist/internal/domain/entity"
	"weather-watchlist/internal/domain/model"
	"weather-watchlist/pkg/redis"

	"github.com/alicebob/miniredis/v2"
)

func TestRedisForecastCache(t *testing.T) {
	srv := miniredis.RunT(t)
	port, _ := strconv.Atoi(srv.Port())
	client, err := redis.NewClient(redis.NewRedisConfig().
		WithHost(srv.Host()).
		WithPort(port).
		WithCacheTTL(ForecastCacheName, 10*time.Minute))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	ctx := context.Background()
	c := NewRedisForecastCache(client)

	if _, err := c.Get(ctx, 48.8566, 2.3522); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected miss, got %v", err)
	}

	forecast := []entity.ForecastEntry{{Timestamp: entity.NewTimestamp(time.Date(2024, 5, 6, 15, 0, 0, 0, time.UTC)), Temp: 18.4, Icon: "10d"}}
	if err := c.Set(ctx, 48.8566, 2.3522, forecast); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !srv.Exists("forecast::48.857:2.352") {
		t.Fatalf("unexpected keys %v", srv.Keys())
	}

	got, err := c.Get(ctx, 48.85661, 2.35219)
	if err != nil || len(got) != 1 || got[0].Temp != 18.4 || !got[0].Timestamp.Equal(forecast[0].Timestamp.Time) {
		t.Fatalf("unexpected cached forecast %v %+v", err, got)
	}

	srv.FastForward(11 * time.Minute)
	if _, err := c.Get(ctx, 48.8566, 2.3522); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected expiry, got %v", err)
	}

	if health := c.Health(ctx); health.Status != model.StatusUp {
		t.Fatalf("unexpected health %+v", health)
	}
}

func TestNoopForecastCache(t *testing.T) {
	c := NoopForecastCache{}
	if err := c.Set(context.Background(), 1, 2, []entity.ForecastEntry{{Temp: 1}}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := c.Get(context.Background(), 1, 2); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected miss, got %v", err)
	}
	if c.Health(context.Background()).Status != model.StatusDisabled {
		t.Fatal("noop cache should report disabled")
	}
}
