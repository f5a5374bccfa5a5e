package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// RedisHealthCheck represents the health check response for Redis
type RedisHealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthChecker provides Redis health checking functionality
type HealthChecker struct {
	client  *Client
	timeout time.Duration
}

// NewHealthChecker creates a new Redis health checker
func NewHealthChecker(client *Client) *HealthChecker {
	return &HealthChecker{
		client:  client,
		timeout: 2 * time.Second,
	}
}

// HealthCheck pings Redis and runs a set/get/delete round trip on a scratch key
func (h *HealthChecker) HealthCheck(ctx context.Context) RedisHealthCheck {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	config := h.client.GetConfig()
	details := map[string]string{
		"host":     config.Host,
		"port":     strconv.Itoa(config.Port),
		"database": strconv.Itoa(config.Database),
	}

	start := time.Now()
	err := h.client.Ping(ctx)
	if err == nil {
		err = h.testBasicOperations(ctx)
	}
	details["latency"] = time.Since(start).String()

	stats := h.client.Stats()
	details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
	details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)

	if err != nil {
		details["error"] = err.Error()
		return RedisHealthCheck{Status: StatusDown, Details: details}
	}
	return RedisHealthCheck{Status: StatusUp, Details: details}
}

func (h *HealthChecker) testBasicOperations(ctx context.Context) error {
	const testKey = "health_check_test"
	const testValue = "test_value"

	if err := h.client.Set(ctx, testKey, testValue, time.Minute); err != nil {
		return fmt.Errorf("set operation failed: %w", err)
	}

	value, err := h.client.GetBytes(ctx, testKey)
	if err != nil {
		return fmt.Errorf("get operation failed: %w", err)
	}
	if string(value) != testValue {
		return fmt.Errorf("value mismatch: expected %s, got %s", testValue, value)
	}

	if err := h.client.Delete(ctx, testKey); err != nil {
		return fmt.Errorf("delete operation failed: %w", err)
	}
	return nil
}
