package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/internal/domain/gateway/history"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/model/external"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/util/numberutils"
)

const DefaultBatchInterval = 100 * time.Millisecond

type weatherUseCase struct {
	apiGateway     api.WeatherGateway
	historyGateway history.SearchHistoryGateway
	batchLimiter   *rate.Limiter
	now            func() time.Time
}

// NewWeatherUseCase builds the weather client. Batch lookups are paced to one provider call per
// batchInterval across all callers; a non-positive interval disables pacing.
// historyGateway may be nil, in which case nothing is recorded.
func NewWeatherUseCase(apiGateway api.WeatherGateway, historyGateway history.SearchHistoryGateway, batchInterval time.Duration) UseCase {
	limit := rate.Inf
	if batchInterval > 0 {
		limit = rate.Every(batchInterval)
	}

	return &weatherUseCase{
		apiGateway:     apiGateway,
		historyGateway: historyGateway,
		batchLimiter:   rate.NewLimiter(limit, 1),
		now:            time.Now,
	}
}

// ResolveCoordinates returns the coordinates of the first geocoding match for city
func (uc *weatherUseCase) ResolveCoordinates(ctx context.Context, city string) (float64, float64, error) {
	if err := validateCity(city); err != nil {
		return 0, 0, err
	}

	results, err := uc.apiGateway.GeocodeCity(ctx, city, 1)
	if err != nil {
		err = asWeatherError(err)
		log.Error(msg.GetMessage("weather.log.coordinates-fail", city, err.Error()), zap.Error(err))
		return 0, 0, err
	}

	if len(results) == 0 {
		return 0, 0, model.NewCityNotFoundError(city)
	}

	lat, lon := results[0].Lat, results[0].Lon
	log.Info(msg.GetMessage("weather.log.coordinates", city, lat, lon))
	return lat, lon, nil
}

// GetCurrentWeather fetches current weather for a city. The lookup is recorded in the search
// history before returning, whatever the outcome.
func (uc *weatherUseCase) GetCurrentWeather(ctx context.Context, city string, units model.Units) (*external.CurrentWeatherResponse, error) {
	if err := validateCity(city); err != nil {
		return nil, err
	}

	start := uc.now()
	reading, err := uc.apiGateway.GetCurrentWeatherByCity(ctx, city, units.String())
	if err != nil {
		err = asWeatherError(err)
		uc.recordSearch(ctx, city, false)
		log.Error(msg.GetMessage("weather.log.current-fail", city, err.Error()),
			zap.String("city", city),
			zap.Error(err),
		)
		return nil, err
	}

	uc.recordSearch(ctx, city, true)
	fetched := uc.now()
	reading.Metadata = &external.ReadingMetadata{
		CitySearched: city,
		Units:        units.String(),
		FetchTime:    fetched,
		ResponseTime: fetched.Sub(start).Seconds(),
	}

	log.Info(msg.GetMessage("weather.log.current-success", city), zap.String("city", city))
	return reading, nil
}

// GetForecast fetches a forecast of days*8 3-hour steps for a city
func (uc *weatherUseCase) GetForecast(ctx context.Context, city string, days int, units model.Units) (*external.ForecastResponse, error) {
	if !numberutils.IsIntInRange(days, MinForecastDays, MaxForecastDays) {
		return nil, model.NewValidationError(msg.GetMessage("weather.error.days-range", MinForecastDays, MaxForecastDays))
	}
	if err := validateCity(city); err != nil {
		return nil, err
	}

	start := uc.now()
	forecast, err := uc.apiGateway.GetForecast(ctx, city, days*ForecastStepsDaily, units.String())
	if err != nil {
		err = asWeatherError(err)
		log.Error(msg.GetMessage("weather.log.forecast-fail", city, err.Error()), zap.Error(err))
		return nil, err
	}

	fetched := uc.now()
	forecast.Metadata = &external.ReadingMetadata{
		CitySearched:  city,
		Units:         units.String(),
		DaysRequested: days,
		FetchTime:     fetched,
		ResponseTime:  fetched.Sub(start).Seconds(),
	}

	log.Info(msg.GetMessage("weather.log.forecast-success", days, city))
	return forecast, nil
}

// GetWeatherByCoordinates fetches current weather directly by coordinates, without geocoding
func (uc *weatherUseCase) GetWeatherByCoordinates(ctx context.Context, lat, lon float64, units model.Units) (*external.CurrentWeatherResponse, error) {
	start := uc.now()
	reading, err := uc.apiGateway.GetCurrentWeatherByCoordinates(ctx, lat, lon, units.String())
	if err != nil {
		err = asWeatherError(err)
		log.Error(msg.GetMessage("weather.log.coordinates-weather-fail", lat, lon, err.Error()), zap.Error(err))
		return nil, err
	}

	fetched := uc.now()
	reading.Metadata = &external.ReadingMetadata{
		Coordinates:  &external.Coord{Lat: lat, Lon: lon},
		Units:        units.String(),
		FetchTime:    fetched,
		ResponseTime: fetched.Sub(start).Seconds(),
	}

	log.Info(msg.GetMessage("weather.log.coordinates-success", lat, lon))
	return reading, nil
}

// SearchCities returns geocoding matches for query
func (uc *weatherUseCase) SearchCities(ctx context.Context, query string, limit int) ([]external.GeocodeResult, error) {
	if err := validateCity(query); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	results, err := uc.apiGateway.GeocodeCity(ctx, query, limit)
	if err != nil {
		err = asWeatherError(err)
		log.Error(msg.GetMessage("weather.log.search-fail", query, err.Error()), zap.Error(err))
		return nil, err
	}
	if results == nil {
		results = []external.GeocodeResult{}
	}

	log.Info(msg.GetMessage("weather.log.search-success", len(results), query))
	return results, nil
}

// GetAirQuality fetches air pollution data for a coordinate pair
func (uc *weatherUseCase) GetAirQuality(ctx context.Context, lat, lon float64) (*external.AirPollutionResponse, error) {
	quality, err := uc.apiGateway.GetAirPollution(ctx, lat, lon)
	if err != nil {
		err = asWeatherError(err)
		log.Error(msg.GetMessage("weather.log.air-quality-fail", lat, lon, err.Error()), zap.Error(err))
		return nil, err
	}

	log.Info(msg.GetMessage("weather.log.air-quality-success", lat, lon))
	return quality, nil
}

// GetMultipleCitiesWeather runs GetCurrentWeather for every city sequentially, in input order
func (uc *weatherUseCase) GetMultipleCitiesWeather(ctx context.Context, cities []string, units model.Units) *model.BatchResult {
	result := model.NewBatchResult(len(cities))

	for _, city := range cities {
		if err := uc.batchLimiter.Wait(ctx); err != nil {
			result.AddError(city, contextError(ctx, err))
			continue
		}

		reading, err := uc.GetCurrentWeather(ctx, city, units)
		if err != nil {
			log.Warn(msg.GetMessage("weather.log.batch-item-fail", city, err.Error()))
			result.AddError(city, err)
			continue
		}
		result.AddSuccess(city, reading)
	}

	log.Info(msg.GetMessage("weather.log.batch-done", result.SuccessfulCount, result.TotalRequested),
		zap.Int("successful", result.SuccessfulCount),
		zap.Int("errors", result.ErrorCount),
	)
	return result
}

// SearchHistory lists the recorded lookups
func (uc *weatherUseCase) SearchHistory(ctx context.Context) ([]entity.SearchEntry, error) {
	if uc.historyGateway == nil {
		return []entity.SearchEntry{}, nil
	}

	entries, err := uc.historyGateway.List(ctx)
	if err != nil {
		return nil, model.NewUnexpectedError(err)
	}
	return entries, nil
}

// recordSearch hands the lookup to the history gateway. A failing recorder is logged and never
// replaces the lookup outcome.
func (uc *weatherUseCase) recordSearch(ctx context.Context, city string, success bool) {
	if uc.historyGateway == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error(msg.GetMessage("weather.log.history-panic", city, fmt.Sprint(r)))
		}
	}()

	uc.historyGateway.Record(ctx, entity.SearchEntry{
		City:      city,
		Timestamp: uc.now(),
		Success:   success,
	})
}

func validateCity(city string) error {
	if strings.TrimSpace(city) == "" {
		return model.NewValidationError(msg.GetMessage("weather.error.city-required"))
	}
	return nil
}

// asWeatherError guarantees callers only ever see *model.WeatherError.
func asWeatherError(err error) error {
	var weatherErr *model.WeatherError
	if errors.As(err, &weatherErr) {
		return weatherErr
	}
	return model.NewUnexpectedError(err)
}

// contextError describes why the batch limiter refused to wait. The limiter fails early when the
// next token would arrive after the deadline, before ctx itself expires.
func contextError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return model.NewTimeoutError(ctx.Err())
	}
	if ctx.Err() != nil {
		return model.NewCanceledError(ctx.Err())
	}
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return model.NewTimeoutError(err)
	}
	return model.NewUnexpectedError(err)
}
