package health

import (
	"context"
	"maps"

	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/redis"
)

type redisHealthGateway struct {
	checker *redis.HealthChecker
}

// NewRedisHealthGateway reports the health of a Redis connection.
func NewRedisHealthGateway(checker *redis.HealthChecker) ComponentGateway {
	return &redisHealthGateway{checker: checker}
}

func (gateway *redisHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	check := gateway.checker.HealthCheck(ctx)

	status := model.StatusDown
	switch check.Status {
	case redis.StatusUp:
		status = model.StatusUp
	case redis.StatusUnknown:
		status = model.StatusUnknown
	}

	return model.ComponentHealthStatus{
		Status:  status,
		Details: check.Details,
	}
}

type staticHealthGateway struct {
	status model.ComponentHealthStatus
}

// NewStaticHealthGateway always reports the given status, for components without a remote dependency.
func NewStaticHealthGateway(status model.HealthStatus, details map[string]string) ComponentGateway {
	return &staticHealthGateway{status: model.ComponentHealthStatus{Status: status, Details: details}}
}

func (gateway *staticHealthGateway) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  gateway.status.Status,
		Details: maps.Clone(gateway.status.Details),
	}
}
