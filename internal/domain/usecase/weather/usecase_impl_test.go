package weather

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/internal/domain/gateway/api/mock"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/model/external"
)

type recordingHistory struct {
	mu      sync.Mutex
	entries []entity.SearchEntry
}

func (h *recordingHistory) Record(_ context.Context, entry entity.SearchEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, entry)
}

func (h *recordingHistory) List(_ context.Context) ([]entity.SearchEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]entity.SearchEntry(nil), h.entries...), nil
}

type panickingHistory struct{}

func (panickingHistory) Record(context.Context, entity.SearchEntry) {
	panic("history store exploded")
}

func (panickingHistory) List(context.Context) ([]entity.SearchEntry, error) {
	return nil, errors.New("unavailable")
}

func londonReading() *external.CurrentWeatherResponse {
	return &external.CurrentWeatherResponse{
		ProviderEnvelope: external.ProviderEnvelope{Cod: "200"},
		Coord:            external.Coord{Lat: 51.5085, Lon: -0.1257},
		Weather:          []external.WeatherCondition{{ID: 803, Main: "Clouds", Description: "broken clouds", Icon: "04d"}},
		Main:             external.MainMetrics{Temp: 14.2, FeelsLike: 13.6, Humidity: 76, Pressure: 1012},
		Wind:             external.Wind{Speed: 4.6, Deg: 240},
		Sys:              external.CurrentSys{Country: "GB", Sunrise: 1699946000, Sunset: 1699979000},
		Name:             "London",
	}
}

func newUseCase(t *testing.T, historyGateway *recordingHistory) (*mock.MockWeatherGateway, UseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockWeatherGateway(ctrl)
	if historyGateway == nil {
		return gateway, NewWeatherUseCase(gateway, nil, time.Millisecond)
	}
	return gateway, NewWeatherUseCase(gateway, historyGateway, time.Millisecond)
}

func TestGetCurrentWeatherAttachesMetadata(t *testing.T) {
	for _, city := range []string{"London", "São Paulo", "new york", " Paris "} {
		t.Run(city, func(t *testing.T) {
			historyGateway := &recordingHistory{}
			gateway, useCase := newUseCase(t, historyGateway)
			gateway.EXPECT().GetCurrentWeatherByCity(gomock.Any(), city, "metric").Return(londonReading(), nil)

			reading, err := useCase.GetCurrentWeather(context.Background(), city, model.UnitsMetric)

			require.NoError(t, err)
			require.NotNil(t, reading.Metadata)
			assert.Equal(t, city, reading.Metadata.CitySearched)
			assert.Equal(t, "metric", reading.Metadata.Units)
			assert.False(t, reading.Metadata.FetchTime.IsZero())
			assert.GreaterOrEqual(t, reading.Metadata.ResponseTime, 0.0)

			require.Len(t, historyGateway.entries, 1)
			assert.Equal(t, city, historyGateway.entries[0].City)
			assert.True(t, historyGateway.entries[0].Success)
		})
	}
}

func TestGetCurrentWeatherFailureRecordsHistory(t *testing.T) {
	historyGateway := &recordingHistory{}
	gateway, useCase := newUseCase(t, historyGateway)
	gateway.EXPECT().
		GetCurrentWeatherByCity(gomock.Any(), "Atlantis", "imperial").
		Return(nil, model.NewNotFoundError(404, errors.New("http error")))

	reading, err := useCase.GetCurrentWeather(context.Background(), "Atlantis", model.UnitsImperial)

	assert.Nil(t, reading)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNotFound))
	require.Len(t, historyGateway.entries, 1)
	assert.Equal(t, "Atlantis", historyGateway.entries[0].City)
	assert.False(t, historyGateway.entries[0].Success)
}

func TestHistoryTimestampUsesClock(t *testing.T) {
	historyGateway := &recordingHistory{}
	gateway, useCase := newUseCase(t, historyGateway)
	fixed := time.Date(2024, 7, 1, 9, 30, 0, 0, time.UTC)
	useCase.(*weatherUseCase).now = func() time.Time { return fixed }
	gateway.EXPECT().GetCurrentWeatherByCity(gomock.Any(), "Oslo", "metric").Return(londonReading(), nil)

	reading, err := useCase.GetCurrentWeather(context.Background(), "Oslo", model.UnitsMetric)

	require.NoError(t, err)
	assert.Equal(t, fixed, historyGateway.entries[0].Timestamp)
	assert.Equal(t, fixed, reading.Metadata.FetchTime)
	assert.Zero(t, reading.Metadata.ResponseTime)
}

func TestPanickingHistoryNeverMasksOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockWeatherGateway(ctrl)
	useCase := NewWeatherUseCase(gateway, panickingHistory{}, 0)

	gateway.EXPECT().GetCurrentWeatherByCity(gomock.Any(), "London", "metric").Return(londonReading(), nil)
	gateway.EXPECT().GetCurrentWeatherByCity(gomock.Any(), "Nowhere", "metric").Return(nil, model.NewNotFoundError(404, nil))

	reading, err := useCase.GetCurrentWeather(context.Background(), "London", model.UnitsMetric)
	require.NoError(t, err)
	assert.Equal(t, "London", reading.Name)

	_, err = useCase.GetCurrentWeather(context.Background(), "Nowhere", model.UnitsMetric)
	assert.True(t, errors.Is(err, model.ErrNotFound))

	_, err = useCase.SearchHistory(context.Background())
	assert.True(t, errors.Is(err, model.ErrUnexpected))
}

func TestGetCurrentWeatherRejectsEmptyCity(t *testing.T) {
	historyGateway := &recordingHistory{}
	_, useCase := newUseCase(t, historyGateway)

	for _, city := range []string{"", "   "} {
		_, err := useCase.GetCurrentWeather(context.Background(), city, model.UnitsMetric)
		assert.True(t, errors.Is(err, model.ErrValidation))
		assert.Equal(t, "City name is required", err.Error())
	}
	assert.Empty(t, historyGateway.entries)
}

func TestRawGatewayErrorsAreWrapped(t *testing.T) {
	gateway, useCase := newUseCase(t, &recordingHistory{})
	gateway.EXPECT().GetCurrentWeatherByCity(gomock.Any(), "London", "metric").Return(nil, errors.New("boom"))

	_, err := useCase.GetCurrentWeather(context.Background(), "London", model.UnitsMetric)

	var weatherErr *model.WeatherError
	require.True(t, errors.As(err, &weatherErr))
	assert.Equal(t, model.KindUnexpected, weatherErr.Kind)
	assert.Equal(t, "Unexpected error: boom", weatherErr.Message)
}

func TestGetForecastValidatesDaysBeforeAnyCall(t *testing.T) {
	for _, days := range []int{-1, 0, 6, 40} {
		t.Run(fmt.Sprint(days), func(t *testing.T) {
			// the mock fails the test on any unexpected gateway call
			_, useCase := newUseCase(t, nil)

			forecast, err := useCase.GetForecast(context.Background(), "London", days, model.UnitsMetric)

			assert.Nil(t, forecast)
			assert.True(t, errors.Is(err, model.ErrValidation))
			assert.Equal(t, "Days must be between 1 and 5", err.Error())
		})
	}
}

func TestGetForecastRequestsEightStepsPerDay(t *testing.T) {
	for days := MinForecastDays; days <= MaxForecastDays; days++ {
		t.Run(fmt.Sprint(days), func(t *testing.T) {
			gateway, useCase := newUseCase(t, nil)
			gateway.EXPECT().
				GetForecast(gomock.Any(), "Berlin", days*8, "metric").
				Return(&external.ForecastResponse{Cnt: days * 8, City: external.ForecastCity{Name: "Berlin"}}, nil)

			forecast, err := useCase.GetForecast(context.Background(), "Berlin", days, model.UnitsMetric)

			require.NoError(t, err)
			assert.Equal(t, "Berlin", forecast.City.Name)
			assert.Equal(t, days, forecast.Metadata.DaysRequested)
			assert.Equal(t, "Berlin", forecast.Metadata.CitySearched)
		})
	}
}

func TestGetWeatherByCoordinatesSkipsGeocoding(t *testing.T) {
	historyGateway := &recordingHistory{}
	gateway, useCase := newUseCase(t, historyGateway)
	gateway.EXPECT().GetCurrentWeatherByCoordinates(gomock.Any(), 48.8566, 2.3522, "standard").Return(londonReading(), nil)

	reading, err := useCase.GetWeatherByCoordinates(context.Background(), 48.8566, 2.3522, model.UnitsStandard)

	require.NoError(t, err)
	assert.Equal(t, &external.Coord{Lat: 48.8566, Lon: 2.3522}, reading.Metadata.Coordinates)
	assert.Empty(t, reading.Metadata.CitySearched)
	assert.Empty(t, historyGateway.entries)
}

func TestGetCurrentWeatherIsIdempotent(t *testing.T) {
	gateway, useCase := newUseCase(t, &recordingHistory{})
	gateway.EXPECT().GetCurrentWeatherByCity(gomock.Any(), "London", "metric").DoAndReturn(
		func(context.Context, string, string) (*external.CurrentWeatherResponse, error) {
			return londonReading(), nil
		}).Times(2)

	first, err := useCase.GetCurrentWeather(context.Background(), "London", model.UnitsMetric)
	require.NoError(t, err)
	second, err := useCase.GetCurrentWeather(context.Background(), "London", model.UnitsMetric)
	require.NoError(t, err)

	for _, reading := range []*external.CurrentWeatherResponse{first, second} {
		reading.Metadata.FetchTime = time.Time{}
		reading.Metadata.ResponseTime = 0
	}
	assert.Equal(t, first, second)
}

func TestResolveCoordinates(t *testing.T) {
	t.Run("no match is not found", func(t *testing.T) {
		gateway, useCase := newUseCase(t, nil)
		gateway.EXPECT().GeocodeCity(gomock.Any(), "Atlantis", 1).Return([]external.GeocodeResult{}, nil)

		_, _, err := useCase.ResolveCoordinates(context.Background(), "Atlantis")

		assert.True(t, errors.Is(err, model.ErrNotFound))
		assert.Equal(t, "City 'Atlantis' not found", err.Error())
	})

	t.Run("first of two matches wins", func(t *testing.T) {
		gateway, useCase := newUseCase(t, nil)
		gateway.EXPECT().GeocodeCity(gomock.Any(), "London", 1).Return([]external.GeocodeResult{
			{Name: "London", Country: "GB", Lat: 51.5073, Lon: -0.1276},
			{Name: "London", Country: "CA", Lat: 42.9834, Lon: -81.2330},
		}, nil)

		lat, lon, err := useCase.ResolveCoordinates(context.Background(), "London")

		require.NoError(t, err)
		assert.Equal(t, 51.5073, lat)
		assert.Equal(t, -0.1276, lon)
	})

	t.Run("gateway error propagates", func(t *testing.T) {
		gateway, useCase := newUseCase(t, nil)
		gateway.EXPECT().GeocodeCity(gomock.Any(), "London", 1).Return(nil, model.NewUnauthorizedError(401, nil))

		_, _, err := useCase.ResolveCoordinates(context.Background(), "London")

		assert.True(t, errors.Is(err, model.ErrUnauthorized))
	})
}

func TestSearchCities(t *testing.T) {
	t.Run("keeps provider order", func(t *testing.T) {
		gateway, useCase := newUseCase(t, nil)
		matches := []external.GeocodeResult{
			{Name: "London", Country: "GB"},
			{Name: "Londrina", Country: "BR"},
			{Name: "Londonderry", Country: "GB"},
		}
		gateway.EXPECT().GeocodeCity(gomock.Any(), "Lon", 5).Return(matches, nil)

		results, err := useCase.SearchCities(context.Background(), "Lon", 5)

		require.NoError(t, err)
		assert.Equal(t, matches, results)
	})

	t.Run("nothing matches", func(t *testing.T) {
		gateway, useCase := newUseCase(t, nil)
		gateway.EXPECT().GeocodeCity(gomock.Any(), "Zzz", 5).Return(nil, nil)

		results, err := useCase.SearchCities(context.Background(), "Zzz", 5)

		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})

	t.Run("non positive limit uses default", func(t *testing.T) {
		gateway, useCase := newUseCase(t, nil)
		gateway.EXPECT().GeocodeCity(gomock.Any(), "Rome", DefaultSearchLimit).Return([]external.GeocodeResult{{Name: "Rome"}}, nil)

		results, err := useCase.SearchCities(context.Background(), "Rome", 0)

		require.NoError(t, err)
		assert.Len(t, results, 1)
	})
}

func TestGetAirQuality(t *testing.T) {
	gateway, useCase := newUseCase(t, nil)
	gateway.EXPECT().GetAirPollution(gomock.Any(), 35.68, 139.69).Return(&external.AirPollutionResponse{
		List: []external.AirPollutionEntry{{Main: external.AirQualityIndex{AQI: 3}}},
	}, nil)

	quality, err := useCase.GetAirQuality(context.Background(), 35.68, 139.69)

	require.NoError(t, err)
	assert.Equal(t, 3, quality.List[0].Main.AQI)
}

func TestGetMultipleCitiesWeatherPartialSuccess(t *testing.T) {
	historyGateway := &recordingHistory{}
	gateway, useCase := newUseCase(t, historyGateway)
	gomock.InOrder(
		gateway.EXPECT().GetCurrentWeatherByCity(gomock.Any(), "ValidCity", "metric").Return(londonReading(), nil),
		gateway.EXPECT().GetCurrentWeatherByCity(gomock.Any(), "BadCity", "metric").Return(nil, model.NewNotFoundError(404, nil)),
	)

	var result *model.BatchResult
	require.NotPanics(t, func() {
		result = useCase.GetMultipleCitiesWeather(context.Background(), []string{"ValidCity", "BadCity"}, model.UnitsMetric)
	})

	assert.Equal(t, 2, result.TotalRequested)
	assert.Equal(t, 1, result.SuccessfulCount)
	assert.Equal(t, 1, result.ErrorCount)
	assert.Contains(t, result.Successful, "ValidCity")
	assert.Equal(t, "ValidCity", result.Successful["ValidCity"].Metadata.CitySearched)
	assert.Equal(t, "City not found. Please check the spelling.", result.Errors["BadCity"])
	require.Len(t, historyGateway.entries, 2)
	assert.Equal(t, "ValidCity", historyGateway.entries[0].City)
	assert.Equal(t, "BadCity", historyGateway.entries[1].City)
}

func TestGetMultipleCitiesWeatherIsPaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockWeatherGateway(ctrl)
	useCase := NewWeatherUseCase(gateway, nil, 30*time.Millisecond)
	gateway.EXPECT().GetCurrentWeatherByCity(gomock.Any(), gomock.Any(), "metric").Return(londonReading(), nil).Times(3)

	start := time.Now()
	result := useCase.GetMultipleCitiesWeather(context.Background(), []string{"A", "B", "C"}, model.UnitsMetric)

	assert.Equal(t, 3, result.SuccessfulCount)
	assert.GreaterOrEqual(t, time.Since(start), 55*time.Millisecond)
}

func TestGetMultipleCitiesWeatherCancelled(t *testing.T) {
	_, useCase := newUseCase(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := useCase.GetMultipleCitiesWeather(ctx, []string{"A", "B"}, model.UnitsMetric)

	assert.Equal(t, 0, result.SuccessfulCount)
	assert.Equal(t, 2, result.ErrorCount)
	assert.Equal(t, 2, result.TotalRequested)
	assert.Equal(t, "Request was canceled.", result.Errors["A"])
}

func TestGetMultipleCitiesWeatherDeadlineBeforeNextToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockWeatherGateway(ctrl)
	useCase := NewWeatherUseCase(gateway, nil, time.Second)
	gateway.EXPECT().GetCurrentWeatherByCity(gomock.Any(), "A", "metric").Return(londonReading(), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	result := useCase.GetMultipleCitiesWeather(ctx, []string{"A", "B"}, model.UnitsMetric)

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, 1, result.SuccessfulCount)
	assert.Equal(t, "Request timeout. Please try again.", result.Errors["B"])
}

func TestResponseTimeIsInSeconds(t *testing.T) {
	gateway, useCase := newUseCase(t, nil)
	clock := time.Date(2024, 7, 1, 9, 30, 0, 0, time.UTC)
	useCase.(*weatherUseCase).now = func() time.Time {
		current := clock
		clock = clock.Add(1500 * time.Millisecond)
		return current
	}
	gateway.EXPECT().GetForecast(gomock.Any(), "Oslo", 8, "metric").Return(&external.ForecastResponse{}, nil)

	forecast, err := useCase.GetForecast(context.Background(), "Oslo", 1, model.UnitsMetric)

	require.NoError(t, err)
	assert.Equal(t, 1.5, forecast.Metadata.ResponseTime)
}

func TestGetMultipleCitiesWeatherEmpty(t *testing.T) {
	_, useCase := newUseCase(t, nil)

	result := useCase.GetMultipleCitiesWeather(context.Background(), nil, model.UnitsMetric)

	assert.Equal(t, 0, result.TotalRequested)
	assert.NotNil(t, result.Successful)
	assert.NotNil(t, result.Errors)
}

func TestRateLimitedAfterAllAttempts(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		hits.Add(1)
		w.WriteHeader(nethttp.StatusTooManyRequests)
	}))
	defer server.Close()

	gateway := api.NewWeatherGateway(api.GatewayConfig{
		APIKey:        "test-key",
		BaseURL:       server.URL,
		MaxRetries:    3,
		BackoffFactor: time.Millisecond,
	})
	historyGateway := &recordingHistory{}
	useCase := NewWeatherUseCase(gateway, historyGateway, 0)

	_, err := useCase.GetCurrentWeather(context.Background(), "London", model.UnitsMetric)

	assert.True(t, errors.Is(err, model.ErrRateLimited))
	assert.EqualValues(t, 4, hits.Load())
	require.Len(t, historyGateway.entries, 1)
	assert.False(t, historyGateway.entries[0].Success)
}

func TestSearchHistory(t *testing.T) {
	historyGateway := &recordingHistory{entries: []entity.SearchEntry{{City: "Oslo", Success: true}}}
	_, useCase := newUseCase(t, historyGateway)

	entries, err := useCase.SearchHistory(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []entity.SearchEntry{{City: "Oslo", Success: true}}, entries)

	_, withoutHistory := newUseCase(t, nil)
	entries, err = withoutHistory.SearchHistory(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
