package cache

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/domain/model/external"
	"weather-dashboard/pkg/redis"
)

func newGateway(t *testing.T) (WeatherCacheGateway, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	client, err := redis.NewClient(redis.NewRedisConfig().WithHost(mr.Host()).WithPort(port))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	cache := redis.NewCache(client, redis.NewCacheOptions().WithCacheName(CurrentWeatherCacheName).WithTTL(600*time.Second))
	return NewRedisWeatherCacheGateway(cache), mr
}

func TestRedisWeatherCache(t *testing.T) {
	gateway, mr := newGateway(t)
	ctx := context.Background()
	reading := &external.CurrentWeatherResponse{
		Name: "London",
		Main: external.MainMetrics{Temp: 14.2},
		Metadata: &external.ReadingMetadata{
			CitySearched: "London",
			Units:        "metric",
		},
	}

	_, hit := gateway.GetCurrentWeather(ctx, "London", "metric")
	assert.False(t, hit)

	gateway.SaveCurrentWeather(ctx, " London ", "metric", reading)
	assert.True(t, mr.Exists("current::london::metric"))
	assert.Equal(t, 600*time.Second, mr.TTL("current::london::metric"))

	got, hit := gateway.GetCurrentWeather(ctx, "LONDON", "metric")
	require.True(t, hit)
	assert.Equal(t, "London", got.Name)
	assert.InDelta(t, 14.2, got.Main.Temp, 0.001)
	assert.Equal(t, "London", got.Metadata.CitySearched)

	_, hit = gateway.GetCurrentWeather(ctx, "London", "imperial")
	assert.False(t, hit)
	assert.True(t, gateway.Enabled())
}

func TestRedisWeatherCacheOutageIsAMiss(t *testing.T) {
	gateway, mr := newGateway(t)
	mr.Close()

	assert.NotPanics(t, func() {
		gateway.SaveCurrentWeather(context.Background(), "Paris", "metric", &external.CurrentWeatherResponse{Name: "Paris"})
	})
	_, hit := gateway.GetCurrentWeather(context.Background(), "Paris", "metric")
	assert.False(t, hit)
}

func TestNoopWeatherCache(t *testing.T) {
	gateway := NewNoopWeatherCacheGateway()
	gateway.SaveCurrentWeather(context.Background(), "Paris", "metric", &external.CurrentWeatherResponse{Name: "Paris"})

	_, hit := gateway.GetCurrentWeather(context.Background(), "Paris", "metric")
	assert.False(t, hit)
	assert.False(t, gateway.Enabled())
}
