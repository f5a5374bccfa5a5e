package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	nethttp "net/http"
	"net/url"
	"strconv"
	"time"

	"weather-dashboard/configs"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/model/external"
	"weather-dashboard/pkg/http"
)

const (
	DefaultBaseURL      = "https://api.openweathermap.org/data/2.5"
	DefaultGeocodingURL = "https://api.openweathermap.org/geo/1.0"
	DefaultTimeout      = 10 * time.Second
	DefaultMaxRetries   = 3
)

// GatewayConfig configures the provider gateway. Zero values take the defaults above.
type GatewayConfig struct {
	// APIKey overrides the process-wide key read from OPENWEATHER_API_KEY.
	APIKey       string
	BaseURL      string
	GeocodingURL string
	// Timeout bounds each attempt, retries included.
	Timeout time.Duration
	// MaxRetries is the number of retries after the first attempt. Negative disables retries.
	MaxRetries    int
	BackoffFactor time.Duration
	MaxBackoff    time.Duration
	Logger        http.HTTPLogger
}

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	apiKey          string
	weatherClient   *http.Client
	geocodingClient *http.Client
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP clients for the weather and geocoding APIs
func NewWeatherGateway(config GatewayConfig) WeatherGateway {
	if config.APIKey == "" && configs.Env != nil {
		config.APIKey = configs.Env.OpenWeatherAPIKey
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.GeocodingURL == "" {
		config.GeocodingURL = DefaultGeocodingURL
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}

	backoff := http.DefaultBackoffConfig()
	switch {
	case config.MaxRetries < 0:
		backoff.MaxRetries = 0
	case config.MaxRetries > 0:
		backoff.MaxRetries = config.MaxRetries
	}
	if config.BackoffFactor > 0 {
		backoff.InitialInterval = config.BackoffFactor
	}
	if config.MaxBackoff > 0 {
		backoff.MaxInterval = config.MaxBackoff
	}

	clientOptions := http.ClientOptions{
		DefaultHeaders: map[string]string{"Accept": "application/json"},
		ReadTimeout:    config.Timeout,
		Backoff:        backoff,
		Logger:         config.Logger,
	}

	return &weatherGatewayImpl{
		apiKey:          config.APIKey,
		weatherClient:   http.NewHttpClient(config.BaseURL, clientOptions),
		geocodingClient: http.NewHttpClient(config.GeocodingURL, clientOptions),
	}
}

// GeocodeCity resolves a place name through the geocoding API
func (w *weatherGatewayImpl) GeocodeCity(ctx context.Context, query string, limit int) ([]external.GeocodeResult, error) {
	successResp, errResp, statusCode, err := w.geocodingClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/direct").
		WithQueryParams(w.withKey(map[string]string{
			"q":     query,
			"limit": strconv.Itoa(limit),
		})).
		WithSuccessResp(&[]external.GeocodeResult{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, classifyError(statusCode, errResp, err)
	}

	results := *successResp.(*[]external.GeocodeResult)
	if results == nil {
		results = []external.GeocodeResult{}
	}
	return results, nil
}

// GetCurrentWeatherByCity gets current weather by city name
func (w *weatherGatewayImpl) GetCurrentWeatherByCity(ctx context.Context, city string, units string) (*external.CurrentWeatherResponse, error) {
	return w.getCurrentWeather(ctx, map[string]string{
		"q":     city,
		"units": units,
	})
}

// GetCurrentWeatherByCoordinates gets current weather by latitude and longitude
func (w *weatherGatewayImpl) GetCurrentWeatherByCoordinates(ctx context.Context, lat, lon float64, units string) (*external.CurrentWeatherResponse, error) {
	return w.getCurrentWeather(ctx, map[string]string{
		"lat":   formatCoordinate(lat),
		"lon":   formatCoordinate(lon),
		"units": units,
	})
}

func (w *weatherGatewayImpl) getCurrentWeather(ctx context.Context, query map[string]string) (*external.CurrentWeatherResponse, error) {
	successResp, errResp, statusCode, err := w.weatherClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/weather").
		WithQueryParams(w.withKey(query)).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, classifyError(statusCode, errResp, err)
	}

	response := successResp.(*external.CurrentWeatherResponse)
	if response.Failed() {
		return nil, model.NewProviderError(statusCode, response.Cod.String(), response.Message.String())
	}
	return response, nil
}

// GetForecast gets the 3-hour step forecast for a city
func (w *weatherGatewayImpl) GetForecast(ctx context.Context, city string, count int, units string) (*external.ForecastResponse, error) {
	successResp, errResp, statusCode, err := w.weatherClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/forecast").
		WithQueryParams(w.withKey(map[string]string{
			"q":     city,
			"units": units,
			"cnt":   strconv.Itoa(count),
		})).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, classifyError(statusCode, errResp, err)
	}

	response := successResp.(*external.ForecastResponse)
	if response.Failed() {
		return nil, model.NewProviderError(statusCode, response.Cod.String(), response.Message.String())
	}
	return response, nil
}

// GetAirPollution gets air quality data for a coordinate pair
func (w *weatherGatewayImpl) GetAirPollution(ctx context.Context, lat, lon float64) (*external.AirPollutionResponse, error) {
	successResp, errResp, statusCode, err := w.weatherClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/air_pollution").
		WithQueryParams(w.withKey(map[string]string{
			"lat": formatCoordinate(lat),
			"lon": formatCoordinate(lon),
		})).
		WithSuccessResp(&external.AirPollutionResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, classifyError(statusCode, errResp, err)
	}

	response := successResp.(*external.AirPollutionResponse)
	if response.Failed() {
		return nil, model.NewProviderError(statusCode, response.Cod.String(), response.Message.String())
	}
	return response, nil
}

func (w *weatherGatewayImpl) withKey(query map[string]string) map[string]string {
	query["appid"] = w.apiKey
	return query
}

func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// classifyError turns a transport outcome into a *model.WeatherError.
func classifyError(statusCode int, errResp any, err error) error {
	if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr != nil && apiErr.Message != "" {
		err = fmt.Errorf("%w: %s", err, apiErr.Message)
	}

	switch {
	case errors.Is(err, http.ErrHTTPStatus):
		switch statusCode {
		case nethttp.StatusUnauthorized:
			return model.NewUnauthorizedError(statusCode, err)
		case nethttp.StatusNotFound:
			return model.NewNotFoundError(statusCode, err)
		case nethttp.StatusTooManyRequests:
			return model.NewRateLimitedError(statusCode, err)
		default:
			return model.NewHTTPError(statusCode, err)
		}
	case errors.Is(err, http.ErrDecodeResponse):
		return model.NewMalformedResponseError(statusCode, err)
	case isTimeout(err):
		return model.NewTimeoutError(err)
	case errors.Is(err, context.Canceled):
		return model.NewCanceledError(err)
	case isConnectionError(err):
		return model.NewConnectionError(err)
	default:
		return model.NewUnexpectedError(err)
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isConnectionError(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return !errors.Is(err, context.Canceled)
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
