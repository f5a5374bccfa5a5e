package cache

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"weather-dashboard/internal/domain/model/external"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/redis"
)

const CurrentWeatherCacheName = "current"

// WeatherCacheGateway stores recent current-weather readings for the presentation layer.
// Cache failures are logged and reported as misses.
type WeatherCacheGateway interface {
	GetCurrentWeather(ctx context.Context, city string, units string) (*external.CurrentWeatherResponse, bool)
	SaveCurrentWeather(ctx context.Context, city string, units string, reading *external.CurrentWeatherResponse)
	Enabled() bool
}

type redisWeatherCacheGateway struct {
	cache *redis.Cache
}

// NewRedisWeatherCacheGateway keys readings as current::{city}::{units}.
func NewRedisWeatherCacheGateway(cache *redis.Cache) WeatherCacheGateway {
	return &redisWeatherCacheGateway{cache: cache}
}

func cacheKey(city, units string) string {
	return strings.ToLower(strings.TrimSpace(city)) + "::" + units
}

func (g *redisWeatherCacheGateway) GetCurrentWeather(ctx context.Context, city string, units string) (*external.CurrentWeatherResponse, bool) {
	var reading external.CurrentWeatherResponse
	if err := g.cache.Get(ctx, cacheKey(city, units), &reading); err != nil {
		if !errors.Is(err, redis.ErrCacheMiss) {
			log.Warn(msg.GetMessage("cache.error.get", city, err.Error()), zap.Error(err))
		}
		return nil, false
	}
	return &reading, true
}

func (g *redisWeatherCacheGateway) SaveCurrentWeather(ctx context.Context, city string, units string, reading *external.CurrentWeatherResponse) {
	if reading == nil {
		return
	}
	if err := g.cache.Set(ctx, cacheKey(city, units), reading); err != nil {
		log.Warn(msg.GetMessage("cache.error.set", city, err.Error()), zap.Error(err))
	}
}

func (g *redisWeatherCacheGateway) Enabled() bool {
	return true
}

type noopWeatherCacheGateway struct{}

// NewNoopWeatherCacheGateway is used when caching is disabled.
func NewNoopWeatherCacheGateway() WeatherCacheGateway {
	return noopWeatherCacheGateway{}
}

func (noopWeatherCacheGateway) GetCurrentWeather(context.Context, string, string) (*external.CurrentWeatherResponse, bool) {
	return nil, false
}

func (noopWeatherCacheGateway) SaveCurrentWeather(context.Context, string, string, *external.CurrentWeatherResponse) {
}

func (noopWeatherCacheGateway) Enabled() bool {
	return false
}
