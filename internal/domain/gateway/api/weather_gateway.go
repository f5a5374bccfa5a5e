package api

import (
	"context"

	"weather-dashboard/internal/domain/model/external"
)

// WeatherGateway defines the calls made to the weather provider.
// Every error returned is a *model.WeatherError.
type WeatherGateway interface {
	// GeocodeCity resolves a free-text place name into at most limit matches, in provider order.
	// No match yields an empty slice, not an error.
	GeocodeCity(ctx context.Context, query string, limit int) ([]external.GeocodeResult, error)

	// GetCurrentWeatherByCity gets the current conditions for a city name
	GetCurrentWeatherByCity(ctx context.Context, city string, units string) (*external.CurrentWeatherResponse, error)

	// GetCurrentWeatherByCoordinates gets the current conditions at a coordinate pair
	GetCurrentWeatherByCoordinates(ctx context.Context, lat, lon float64, units string) (*external.CurrentWeatherResponse, error)

	// GetForecast gets count 3-hour forecast steps for a city
	GetForecast(ctx context.Context, city string, count int, units string) (*external.ForecastResponse, error)

	// GetAirPollution gets the air quality index and pollutant components at a coordinate pair
	GetAirPollution(ctx context.Context, lat, lon float64) (*external.AirPollutionResponse, error)
}
