package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"weather-dashboard/internal/domain/gateway/cache"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/weather"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

const defaultRunTimeout = 2 * time.Minute

// WeatherSchedulerConfig holds configuration for the cache warm-up scheduler
type WeatherSchedulerConfig struct {
	CronExpression string
	Cities         []string
	Units          model.Units
	RunTimeout     time.Duration
}

// WeatherScheduler periodically looks up the favorite cities and stores the readings in the response cache
type WeatherScheduler struct {
	cron         *cron.Cron
	useCase      weather.UseCase
	cacheGateway cache.WeatherCacheGateway
	config       WeatherSchedulerConfig
}

func NewWeatherScheduler(useCase weather.UseCase, cacheGateway cache.WeatherCacheGateway, config WeatherSchedulerConfig) *WeatherScheduler {
	if config.Units == "" {
		config.Units = model.UnitsMetric
	}
	if config.RunTimeout <= 0 {
		config.RunTimeout = defaultRunTimeout
	}
	return &WeatherScheduler{
		cron:         cron.New(),
		useCase:      useCase,
		cacheGateway: cacheGateway,
		config:       config,
	}
}

// InitWeatherScheduleTasks registers the warm-up job and starts the cron
func (s *WeatherScheduler) InitWeatherScheduleTasks() error {
	if _, err := s.cron.AddFunc(s.config.CronExpression, s.ExecuteScheduledTask); err != nil {
		log.Error(msg.GetMessage("schedule.error.init", err), zap.Error(err))
		return err
	}

	s.cron.Start()
	log.Info(msg.GetMessage("schedule.start", s.config.CronExpression))
	return nil
}

// ExecuteScheduledTask runs one warm-up pass over the configured cities
func (s *WeatherScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()
	if len(s.config.Cities) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.config.RunTimeout)
	defer cancel()

	log.Info(msg.GetMessage("schedule.run-start", len(s.config.Cities)), zap.String("request_id", requestID))

	result := s.useCase.GetMultipleCitiesWeather(ctx, s.config.Cities, s.config.Units)
	for city, reading := range result.Successful {
		s.cacheGateway.SaveCurrentWeather(ctx, city, s.config.Units.String(), reading)
	}

	log.Info(msg.GetMessage("schedule.run-end", result.SuccessfulCount, result.ErrorCount),
		zap.String("request_id", requestID),
		zap.Any("errors", result.Errors),
	)
}

// Stop waits for a running job to finish
func (s *WeatherScheduler) Stop() {
	<-s.cron.Stop().Done()
}
