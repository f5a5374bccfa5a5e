package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "weather-dashboard/configs"
	"weather-dashboard/internal/application/controller"
	"weather-dashboard/internal/application/middleware"
	"weather-dashboard/internal/application/schedule"
	apigateway "weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/internal/domain/gateway/cache"
	healthgateway "weather-dashboard/internal/domain/gateway/health"
	"weather-dashboard/internal/domain/gateway/history"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/health"
	"weather-dashboard/internal/domain/usecase/weather"
	pkghttp "weather-dashboard/pkg/http"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/redis"
	"weather-dashboard/pkg/resource"
)

func main() {
	defer log.Sync()
	log.Info(msg.GetMessage("app.start"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.Validator = controller.NewRequestValidator()
	e.Use(echomw.RequestID())
	e.Use(echomw.Recover())
	middleware.SetupRequestLogger(e)
	api := e.Group(resource.GetString("app.server.context-path"))

	cacheEnabled := resource.GetBool("app.cache.enabled")
	historyBackend := resource.GetString("app.history.backend")

	var redisClient *redis.Client
	if cacheEnabled || historyBackend == "redis" {
		redisClient = newRedisClient()
		defer func() { _ = redisClient.Close() }()
	}

	// Init Gateways
	weatherGateway := apigateway.NewWeatherGateway(apigateway.GatewayConfig{
		BaseURL:       resource.GetString("app.weather.base-url"),
		GeocodingURL:  resource.GetString("app.weather.geocoding-url"),
		Timeout:       resource.GetDuration("app.weather.timeout"),
		MaxRetries:    resource.GetInt("app.weather.max-retries"),
		BackoffFactor: resource.GetDuration("app.weather.backoff-factor"),
		MaxBackoff:    resource.GetDuration("app.weather.max-backoff"),
		Logger:        pkghttp.NewZapLogger(),
	})

	historySize := resource.GetInt("app.history.size")
	historyGateway := history.NewMemoryHistoryGateway(historySize)
	historyHealth := healthgateway.NewStaticHealthGateway(model.StatusUp, map[string]string{"backend": "memory"})
	if historyBackend == "redis" {
		historyGateway = history.NewRedisHistoryGateway(redisClient, resource.GetString("app.history.key"), historySize)
		historyHealth = healthgateway.NewRedisHealthGateway(redis.NewHealthChecker(redisClient))
	}

	cacheGateway := cache.NewNoopWeatherCacheGateway()
	cacheHealth := healthgateway.NewStaticHealthGateway(model.StatusDisabled, nil)
	if cacheEnabled {
		cacheGateway = cache.NewRedisWeatherCacheGateway(redis.NewCache(redisClient,
			redis.NewCacheOptions().
				WithCacheName(cache.CurrentWeatherCacheName).
				WithTTL(resource.GetDuration("app.cache.ttl"))))
		cacheHealth = healthgateway.NewRedisHealthGateway(redis.NewHealthChecker(redisClient))
	}

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway, historyGateway, resource.GetDuration("app.weather.batch.interval"))
	healthUseCase := health.NewHealthUseCase(cacheHealth, historyHealth)

	// Init Controller
	weatherController := controller.NewWeatherController(api, weatherUseCase, cacheGateway, controller.WeatherSettings{
		DefaultCity:    resource.GetString("app.weather.default-city"),
		DefaultUnits:   model.Units(resource.GetString("app.weather.default-units")),
		SearchLimit:    resource.GetInt("app.weather.search-limit"),
		MaxBatchCities: resource.GetInt("app.weather.batch.max-cities"),
		HistoryPage:    historySize,
	})
	healthController := controller.NewHealthController(api, healthUseCase)

	// Init Routes
	weatherController.InitWeatherRoutes()
	healthController.InitHealthRoutes()

	// Init Schedule
	if resource.GetBool("app.schedule.enabled") && cacheEnabled {
		scheduler := schedule.NewWeatherScheduler(weatherUseCase, cacheGateway, schedule.WeatherSchedulerConfig{
			CronExpression: resource.GetString("app.schedule.cron"),
			Cities:         favoriteCities(resource.GetStringSlice("app.schedule.cities")),
			Units:          model.Units(resource.GetString("app.weather.default-units")),
		})
		if err := scheduler.InitWeatherScheduleTasks(); err == nil {
			defer scheduler.Stop()
		}
	}

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		log.Info(msg.GetMessage("app.started", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(msg.GetMessage("app.error.start", err), zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info(msg.GetMessage("app.shutdown"))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error(msg.GetMessage("app.error.shutdown", err), zap.Error(err))
	}
}

func newRedisClient() *redis.Client {
	config := redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithCacheTTL(cache.CurrentWeatherCacheName, resource.GetDuration("app.cache.ttl"))

	client, err := redis.NewClient(config)
	if err != nil {
		log.Fatal(msg.GetMessage("app.error.redis", config.Addr(), err), zap.Error(err))
	}
	return client
}

// favoriteCities accepts both a YAML list and a single comma separated value coming from the environment
func favoriteCities(values []string) []string {
	cities := make([]string, 0, len(values))
	for _, value := range values {
		for _, city := range strings.Split(value, ",") {
			if city = strings.TrimSpace(city); city != "" {
				cities = append(cities, city)
			}
		}
	}
	return cities
}
