package weather

import (
	"context"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/model/external"
)

const (
	MinForecastDays    = 1
	MaxForecastDays    = 5
	ForecastStepsDaily = 8
	DefaultSearchLimit = 5
)

// UseCase is the weather client used by the presentation layer.
// Every error returned is a *model.WeatherError.
type UseCase interface {
	// ResolveCoordinates geocodes a city name, first provider match wins
	ResolveCoordinates(ctx context.Context, city string) (lat float64, lon float64, err error)

	// GetCurrentWeather fetches the current conditions for a city and records the lookup in the search history
	GetCurrentWeather(ctx context.Context, city string, units model.Units) (*external.CurrentWeatherResponse, error)

	// GetForecast fetches days (1 to 5) worth of 3-hour forecast steps
	GetForecast(ctx context.Context, city string, days int, units model.Units) (*external.ForecastResponse, error)

	// GetWeatherByCoordinates fetches the current conditions at a coordinate pair
	GetWeatherByCoordinates(ctx context.Context, lat, lon float64, units model.Units) (*external.CurrentWeatherResponse, error)

	// SearchCities returns up to limit matches in provider order, empty when nothing matches
	SearchCities(ctx context.Context, query string, limit int) ([]external.GeocodeResult, error)

	// GetAirQuality fetches the air pollution data at a coordinate pair
	GetAirQuality(ctx context.Context, lat, lon float64) (*external.AirPollutionResponse, error)

	// GetMultipleCitiesWeather looks up each city in order, pacing the calls.
	// Per-city failures are collected in the result and never abort the batch.
	GetMultipleCitiesWeather(ctx context.Context, cities []string, units model.Units) *model.BatchResult

	// SearchHistory returns the recorded lookups, newest first
	SearchHistory(ctx context.Context) ([]entity.SearchEntry, error)
}
