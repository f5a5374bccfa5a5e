package http

import (
	"errors"
	"net/url"

	"go.uber.org/zap"

	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called immediately after receiving an error response (error HTTP status)
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)

	// LogRequestRetry is called when backoff exists and a retry attempt is about to be made
	LogRequestRetry(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error, retryCount, maxRetries int)
}

// secretParams are query parameters never written to logs.
var secretParams = []string{"appid", "api_key", "apikey", "key", "token"}

// redactURL masks credential query parameters.
func redactURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	query := parsed.Query()
	changed := false
	for _, param := range secretParams {
		if query.Has(param) {
			query.Set(param, "***")
			changed = true
		}
	}
	if !changed {
		return rawURL
	}

	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// redactError replaces the request URL carried by a *url.Error, so transport errors
// can be logged and returned without exposing credentials.
func redactError(err error, redactedURL string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = redactedURL
	}
	return err
}

type noopLogger struct{}

func (noopLogger) LogRequest(string, string, map[string]string, string) {}

func (noopLogger) LogResponseSuccess(string, string, map[string]string, string, int, string, int64) {
}

func (noopLogger) LogResponseError(string, string, map[string]string, string, int, string, int64, error) {
}

func (noopLogger) LogRequestRetry(string, string, map[string]string, string, int, string, int64, error, int, int) {
}

// ZapLogger writes HTTP events through pkg/log. Response bodies are only logged at debug level.
type ZapLogger struct{}

// NewZapLogger creates an HTTPLogger backed by the application zap logger.
func NewZapLogger() *ZapLogger {
	return &ZapLogger{}
}

func (l *ZapLogger) LogRequest(method, url string, headers map[string]string, body string) {
	log.Info(msg.GetMessage("http.request", method, url),
		zap.String("method", method),
		zap.String("url", url),
	)
}

func (l *ZapLogger) LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64) {
	log.Info(msg.GetMessage("http.response", method, url, httpStatus, latency),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
	)
	log.Debug("response body", zap.String("url", url), zap.String("body", responseBody))
}

func (l *ZapLogger) LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error) {
	log.Error(msg.GetMessage("http.response-error", method, url, httpStatus, latency, errString(err)),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.Error(err),
	)
}

func (l *ZapLogger) LogRequestRetry(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error, retryCount, maxRetries int) {
	log.Warn(msg.GetMessage("http.retry", method, url, retryCount, maxRetries, httpStatus, errString(err)),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.Int("retry", retryCount),
		zap.Int("max_retries", maxRetries),
	)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
