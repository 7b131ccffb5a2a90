package redis

import (
	"context"
	"strconv"
	"time"
)

// HealthStatus is the reachability of the Redis server
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// HealthCheck represents the health check response for Redis
type HealthCheck struct {
	Status  HealthStatus
	Details map[string]string
}

// CheckHealth pings the server and reports pool statistics
func (c *Client) CheckHealth(ctx context.Context) HealthCheck {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	details := map[string]string{
		"host":     c.config.Host,
		"port":     strconv.Itoa(c.config.Port),
		"database": strconv.Itoa(c.config.Database),
	}

	if err := c.Ping(ctx); err != nil {
		details["message"] = err.Error()
		return HealthCheck{Status: StatusDown, Details: details}
	}

	stats := c.rdb.PoolStats()
	details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
	details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)
	return HealthCheck{Status: StatusUp, Details: details}
}
