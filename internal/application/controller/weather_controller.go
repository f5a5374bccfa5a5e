package controller

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"weather-dashboard/internal/domain/gateway/cache"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/model/external"
	"weather-dashboard/internal/domain/usecase/weather"
	"weather-dashboard/pkg/util/numberutils"
)

// WeatherSettings are the dashboard defaults applied to missing query parameters.
type WeatherSettings struct {
	DefaultCity    string
	DefaultUnits   model.Units
	SearchLimit    int
	MaxBatchCities int
	HistoryPage    int
}

type WeatherController struct {
	api          *echo.Group
	useCase      weather.UseCase
	cacheGateway cache.WeatherCacheGateway
	settings     WeatherSettings
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase, cacheGateway cache.WeatherCacheGateway, settings WeatherSettings) *WeatherController {
	if cacheGateway == nil {
		cacheGateway = cache.NewNoopWeatherCacheGateway()
	}
	if settings.DefaultUnits == "" {
		settings.DefaultUnits = model.UnitsMetric
	}
	if settings.SearchLimit <= 0 {
		settings.SearchLimit = 10
	}
	if settings.MaxBatchCities <= 0 {
		settings.MaxBatchCities = 10
	}
	if settings.HistoryPage <= 0 {
		settings.HistoryPage = 10
	}
	return &WeatherController{api: api, useCase: useCase, cacheGateway: cacheGateway, settings: settings}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather/current", controller.GetCurrentWeather)
	controller.api.GET("/weather/coordinates", controller.GetWeatherByCoordinates)
	controller.api.GET("/weather/geocode", controller.ResolveCoordinates)
	controller.api.GET("/weather/forecast", controller.GetForecast)
	controller.api.GET("/weather/compare", controller.CompareCities)
	controller.api.GET("/weather/search", controller.SearchCities)
	controller.api.GET("/weather/air-quality", controller.GetAirQuality)
	controller.api.GET("/weather/units", controller.GetUnitLabels)
	controller.api.POST("/weather/batch", controller.GetMultipleCitiesWeather)
	controller.api.GET("/weather/history", controller.GetSearchHistory)
	controller.api.GET("/weather/connection", controller.TestConnection)
}

// GetCurrentWeather godoc
// @Summary Get current weather
// @Description Current conditions for a city, served from the response cache when enabled
// @Tags weather
// @Produce json
// @Param city query string false "City name, defaults to the configured city"
// @Param units query string false "metric, imperial or standard"
// @Success 200 {object} external.CurrentWeatherResponse
// @Failure 404 {object} map[string]string "City not found"
// @Failure 502 {object} map[string]string "Provider error"
// @Router /weather/current [get]
func (controller *WeatherController) GetCurrentWeather(c echo.Context) error {
	city := controller.cityParam(c, "city")
	units := controller.unitsParam(c)

	reading, err := controller.currentWeather(c.Request().Context(), city, units)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, reading)
}

// GetWeatherByCoordinates godoc
// @Summary Get current weather by coordinates
// @Tags weather
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param units query string false "metric, imperial or standard"
// @Success 200 {object} external.CurrentWeatherResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Router /weather/coordinates [get]
func (controller *WeatherController) GetWeatherByCoordinates(c echo.Context) error {
	lat, lon, ok := parseCoordinates(c)
	if !ok {
		return badRequest(c, "lat and lon must be valid numbers")
	}

	reading, err := controller.useCase.GetWeatherByCoordinates(c.Request().Context(), lat, lon, controller.unitsParam(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, reading)
}

// ResolveCoordinates godoc
// @Summary Geocode a city
// @Tags weather
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "City not found"
// @Router /weather/geocode [get]
func (controller *WeatherController) ResolveCoordinates(c echo.Context) error {
	city := c.QueryParam("city")

	lat, lon, err := controller.useCase.ResolveCoordinates(c.Request().Context(), city)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"city": city, "lat": lat, "lon": lon})
}

// GetForecast godoc
// @Summary Get forecast
// @Description 3-hour forecast steps for 1 to 5 days
// @Tags weather
// @Produce json
// @Param city query string false "City name, defaults to the configured city"
// @Param days query int false "Days between 1 and 5" default(5)
// @Param units query string false "metric, imperial or standard"
// @Success 200 {object} external.ForecastResponse
// @Failure 400 {object} map[string]string "Invalid days"
// @Router /weather/forecast [get]
func (controller *WeatherController) GetForecast(c echo.Context) error {
	city := controller.cityParam(c, "city")
	days := weather.MaxForecastDays
	if raw := c.QueryParam("days"); raw != "" {
		days = numberutils.ToIntWithDefault(raw, 0)
	}

	forecast, err := controller.useCase.GetForecast(c.Request().Context(), city, days, controller.unitsParam(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, forecast)
}

type compareQuery struct {
	City1 string `query:"city1" validate:"required"`
	City2 string `query:"city2" validate:"required"`
	Units string `query:"units"`
}

// CompareCities godoc
// @Summary Compare two cities
// @Tags weather
// @Produce json
// @Param city1 query string true "First city"
// @Param city2 query string true "Second city"
// @Param units query string false "metric, imperial or standard"
// @Success 200 {object} model.CompareWeatherDTO
// @Failure 400 {object} map[string]string "Missing city"
// @Router /weather/compare [get]
func (controller *WeatherController) CompareCities(c echo.Context) error {
	var query compareQuery
	if err := c.Bind(&query); err != nil {
		return badRequest(c, "Invalid query parameters")
	}
	if err := c.Validate(&query); err != nil {
		return badRequest(c, validationMessage(err))
	}

	units := controller.settings.DefaultUnits
	if query.Units != "" {
		units = model.Units(query.Units)
	}

	ctx := c.Request().Context()
	first, err := controller.currentWeather(ctx, query.City1, units)
	if err != nil {
		return errorResponse(c, err)
	}
	second, err := controller.currentWeather(ctx, query.City2, units)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, model.CompareWeatherDTO{
		City1:  first,
		City2:  second,
		Labels: units.Labels(),
	})
}

// SearchCities godoc
// @Summary Search cities
// @Tags weather
// @Produce json
// @Param q query string true "Search term"
// @Param limit query int false "Maximum matches" default(10)
// @Success 200 {array} external.GeocodeResult
// @Router /weather/search [get]
func (controller *WeatherController) SearchCities(c echo.Context) error {
	limit := numberutils.ToIntWithDefault(c.QueryParam("limit"), controller.settings.SearchLimit)

	results, err := controller.useCase.SearchCities(c.Request().Context(), c.QueryParam("q"), limit)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, results)
}

// GetAirQuality godoc
// @Summary Get air quality
// @Description Air pollution by coordinates, or by city which is geocoded first
// @Tags weather
// @Produce json
// @Param lat query number false "Latitude"
// @Param lon query number false "Longitude"
// @Param city query string false "City name, used when lat and lon are absent"
// @Success 200 {object} external.AirPollutionResponse
// @Router /weather/air-quality [get]
func (controller *WeatherController) GetAirQuality(c echo.Context) error {
	ctx := c.Request().Context()

	lat, lon, ok := parseCoordinates(c)
	if !ok {
		if c.QueryParam("lat") != "" || c.QueryParam("lon") != "" {
			return badRequest(c, "lat and lon must be valid numbers")
		}

		var err error
		lat, lon, err = controller.useCase.ResolveCoordinates(ctx, controller.cityParam(c, "city"))
		if err != nil {
			return errorResponse(c, err)
		}
	}

	quality, err := controller.useCase.GetAirQuality(ctx, lat, lon)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, quality)
}

// GetUnitLabels godoc
// @Summary Display labels for a unit system
// @Tags weather
// @Produce json
// @Param units query string false "metric, imperial or standard"
// @Success 200 {object} model.UnitLabels
// @Router /weather/units [get]
func (controller *WeatherController) GetUnitLabels(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.unitsParam(c).Labels())
}

// GetMultipleCitiesWeather godoc
// @Summary Batch current weather
// @Description Current weather for several cities. The list is cut to the configured maximum.
// @Tags weather
// @Accept json
// @Produce json
// @Param request body model.BatchWeatherRequestDTO true "Cities and units"
// @Success 200 {object} model.BatchResult
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /weather/batch [post]
func (controller *WeatherController) GetMultipleCitiesWeather(c echo.Context) error {
	var dto model.BatchWeatherRequestDTO
	if err := c.Bind(&dto); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := c.Validate(&dto); err != nil {
		return badRequest(c, validationMessage(err))
	}

	units := controller.settings.DefaultUnits
	if dto.Units != "" {
		units = model.Units(dto.Units)
	}

	cities := dto.Cities
	truncated := len(cities) > controller.settings.MaxBatchCities
	if truncated {
		cities = cities[:controller.settings.MaxBatchCities]
	}

	ctx := c.Request().Context()
	result := controller.useCase.GetMultipleCitiesWeather(ctx, cities, units)
	result.Truncated = truncated
	for city, reading := range result.Successful {
		controller.cacheGateway.SaveCurrentWeather(ctx, city, units.String(), reading)
	}

	return c.JSON(http.StatusOK, result)
}

// GetSearchHistory godoc
// @Summary Search history
// @Description Recent city lookups, newest first
// @Tags weather
// @Produce json
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} model.Page[entity.SearchEntry]
// @Router /weather/history [get]
func (controller *WeatherController) GetSearchHistory(c echo.Context) error {
	page := numberutils.ToIntWithDefault(c.QueryParam("page"), 0)
	size := numberutils.ToIntWithDefault(c.QueryParam("size"), controller.settings.HistoryPage)

	entries, err := controller.useCase.SearchHistory(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, model.Paginate(entries, page, size))
}

// TestConnection godoc
// @Summary Provider connection test
// @Description Looks up the configured default city
// @Tags weather
// @Produce json
// @Success 200 {object} model.ConnectionStatusDTO
// @Failure 503 {object} model.ConnectionStatusDTO
// @Router /weather/connection [get]
func (controller *WeatherController) TestConnection(c echo.Context) error {
	city := controller.settings.DefaultCity

	_, err := controller.useCase.GetCurrentWeather(c.Request().Context(), city, controller.settings.DefaultUnits)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, model.ConnectionStatusDTO{City: city, Message: err.Error()})
	}
	return c.JSON(http.StatusOK, model.ConnectionStatusDTO{Connected: true, City: city, Message: "API connection successful"})
}

// currentWeather serves from the cache when possible and fills it on a miss
func (controller *WeatherController) currentWeather(ctx context.Context, city string, units model.Units) (*external.CurrentWeatherResponse, error) {
	if reading, ok := controller.cacheGateway.GetCurrentWeather(ctx, city, units.String()); ok {
		return reading, nil
	}

	reading, err := controller.useCase.GetCurrentWeather(ctx, city, units)
	if err != nil {
		return nil, err
	}
	controller.cacheGateway.SaveCurrentWeather(ctx, city, units.String(), reading)
	return reading, nil
}

func (controller *WeatherController) cityParam(c echo.Context, name string) string {
	if city := strings.TrimSpace(c.QueryParam(name)); city != "" {
		return city
	}
	return controller.settings.DefaultCity
}

func (controller *WeatherController) unitsParam(c echo.Context) model.Units {
	if units := c.QueryParam("units"); units != "" {
		return model.Units(units)
	}
	return controller.settings.DefaultUnits
}

func parseCoordinates(c echo.Context) (float64, float64, bool) {
	lat, err := numberutils.ToFloat64WithError(c.QueryParam("lat"))
	if err != nil {
		return 0, 0, false
	}
	lon, err := numberutils.ToFloat64WithError(c.QueryParam("lon"))
	if err != nil {
		return 0, 0, false
	}
	return lat, lon, true
}
