package health

import (
	"context"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	healthgateway "weather-dashboard/internal/domain/gateway/health"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/redis"
)

func TestCheckHealth(t *testing.T) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	client, err := redis.NewClient(redis.NewRedisConfig().WithHost(mr.Host()).WithPort(port))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	redisGateway := healthgateway.NewRedisHealthGateway(redis.NewHealthChecker(client))
	disabled := healthgateway.NewStaticHealthGateway(model.StatusDisabled, map[string]string{"backend": "none"})
	memory := healthgateway.NewStaticHealthGateway(model.StatusUp, map[string]string{"backend": "memory"})

	t.Run("redis up", func(t *testing.T) {
		response := NewHealthUseCase(redisGateway, memory).CheckHealth(context.Background())

		assert.Equal(t, model.StatusUp, response.Status)
		assert.Equal(t, model.StatusUp, response.Cache.Status)
		assert.Equal(t, "memory", response.History.Details["backend"])
	})

	t.Run("disabled cache does not bring the service down", func(t *testing.T) {
		response := NewHealthUseCase(disabled, memory).CheckHealth(context.Background())

		assert.Equal(t, model.StatusUp, response.Status)
		assert.Equal(t, model.StatusDisabled, response.Cache.Status)
	})

	t.Run("redis down", func(t *testing.T) {
		mr.Close()
		response := NewHealthUseCase(redisGateway, memory).CheckHealth(context.Background())

		assert.Equal(t, model.StatusDown, response.Status)
		assert.Equal(t, model.StatusDown, response.Cache.Status)
		assert.NotEmpty(t, response.Cache.Details["error"])
	})
}
