package model

import (
	"fmt"

	"weather-dashboard/pkg/msg"
)

// ErrorKind distinguishes the causes a WeatherError can carry.
type ErrorKind string

const (
	KindTimeout           ErrorKind = "TIMEOUT"
	KindConnection        ErrorKind = "CONNECTION"
	KindUnauthorized      ErrorKind = "UNAUTHORIZED"
	KindNotFound          ErrorKind = "NOT_FOUND"
	KindRateLimited       ErrorKind = "RATE_LIMITED"
	KindHTTP              ErrorKind = "HTTP"
	KindMalformedResponse ErrorKind = "MALFORMED_RESPONSE"
	KindProvider          ErrorKind = "PROVIDER"
	KindValidation        ErrorKind = "VALIDATION"
	KindUnexpected        ErrorKind = "UNEXPECTED"
)

// WeatherError is the only error type returned by the weather gateway and use case.
type WeatherError struct {
	Kind ErrorKind
	// Message is human readable and safe to show to end users.
	Message string
	// StatusCode is the provider HTTP status, zero when no response was received.
	StatusCode int
	Err        error
}

func (e *WeatherError) Error() string {
	return e.Message
}

func (e *WeatherError) Unwrap() error {
	return e.Err
}

// Is matches any WeatherError of the same kind, so errors.Is(err, ErrNotFound) works.
func (e *WeatherError) Is(target error) bool {
	t, ok := target.(*WeatherError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is. Only Kind is compared.
var (
	ErrTimeout           = &WeatherError{Kind: KindTimeout}
	ErrConnection        = &WeatherError{Kind: KindConnection}
	ErrUnauthorized      = &WeatherError{Kind: KindUnauthorized}
	ErrNotFound          = &WeatherError{Kind: KindNotFound}
	ErrRateLimited       = &WeatherError{Kind: KindRateLimited}
	ErrHTTP              = &WeatherError{Kind: KindHTTP}
	ErrMalformedResponse = &WeatherError{Kind: KindMalformedResponse}
	ErrProvider          = &WeatherError{Kind: KindProvider}
	ErrValidation        = &WeatherError{Kind: KindValidation}
	ErrUnexpected        = &WeatherError{Kind: KindUnexpected}
)

func NewTimeoutError(err error) *WeatherError {
	return &WeatherError{Kind: KindTimeout, Message: msg.GetMessage("weather.error.timeout"), Err: err}
}

func NewConnectionError(err error) *WeatherError {
	return &WeatherError{Kind: KindConnection, Message: msg.GetMessage("weather.error.connection"), Err: err}
}

func NewUnauthorizedError(statusCode int, err error) *WeatherError {
	return &WeatherError{Kind: KindUnauthorized, Message: msg.GetMessage("weather.error.unauthorized"), StatusCode: statusCode, Err: err}
}

func NewNotFoundError(statusCode int, err error) *WeatherError {
	return &WeatherError{Kind: KindNotFound, Message: msg.GetMessage("weather.error.not-found"), StatusCode: statusCode, Err: err}
}

// NewCityNotFoundError is returned when geocoding yields no match for city.
func NewCityNotFoundError(city string) *WeatherError {
	return &WeatherError{Kind: KindNotFound, Message: msg.GetMessage("weather.error.city-not-found", city)}
}

func NewRateLimitedError(statusCode int, err error) *WeatherError {
	return &WeatherError{Kind: KindRateLimited, Message: msg.GetMessage("weather.error.rate-limited"), StatusCode: statusCode, Err: err}
}

func NewHTTPError(statusCode int, err error) *WeatherError {
	return &WeatherError{Kind: KindHTTP, Message: msg.GetMessage("weather.error.http", statusCode), StatusCode: statusCode, Err: err}
}

func NewMalformedResponseError(statusCode int, err error) *WeatherError {
	return &WeatherError{Kind: KindMalformedResponse, Message: msg.GetMessage("weather.error.malformed"), StatusCode: statusCode, Err: err}
}

// NewProviderError wraps a non-success cod embedded in an otherwise successful response.
func NewProviderError(statusCode int, cod, message string) *WeatherError {
	if message == "" {
		message = msg.GetMessage("weather.error.provider-unknown")
	}
	return &WeatherError{Kind: KindProvider, Message: msg.GetMessage("weather.error.provider", cod, message), StatusCode: statusCode}
}

func NewValidationError(message string) *WeatherError {
	return &WeatherError{Kind: KindValidation, Message: message}
}

// NewCanceledError is returned when the caller gave up on the request. The message never
// echoes err, which may describe the request.
func NewCanceledError(err error) *WeatherError {
	return &WeatherError{Kind: KindUnexpected, Message: msg.GetMessage("weather.error.canceled"), Err: err}
}

func NewUnexpectedError(err error) *WeatherError {
	return &WeatherError{Kind: KindUnexpected, Message: msg.GetMessage("weather.error.unexpected", fmt.Sprint(err)), Err: err}
}
