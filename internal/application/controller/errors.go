package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-dashboard/internal/domain/model"
)

// errorStatus maps a weather error to the HTTP status returned to dashboard clients.
func errorStatus(err error) int {
	var weatherErr *model.WeatherError
	if !errors.As(err, &weatherErr) {
		return http.StatusInternalServerError
	}

	switch weatherErr.Kind {
	case model.KindValidation:
		return http.StatusBadRequest
	case model.KindNotFound:
		return http.StatusNotFound
	case model.KindRateLimited:
		return http.StatusTooManyRequests
	case model.KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

func errorResponse(c echo.Context, err error) error {
	return c.JSON(errorStatus(err), map[string]string{"error": err.Error()})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": message})
}

// validationMessage unwraps the message of an echo.HTTPError produced by RequestValidator.
func validationMessage(err error) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if message, ok := httpErr.Message.(string); ok {
			return message
		}
	}
	return err.Error()
}
