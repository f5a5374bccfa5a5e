package http

import (
	"context"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"
)

// BackoffConfig describes when and how a failed request is retried.
type BackoffConfig struct {
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int
	// InitialInterval is the backoff factor: attempt n waits InitialInterval * 2^n.
	InitialInterval time.Duration
	// MaxInterval caps a single wait. Zero means no cap.
	MaxInterval time.Duration
	// RetryStatusCodes are the response statuses that trigger a retry.
	RetryStatusCodes []int
	// RetryMethods are the methods allowed to be retried.
	RetryMethods []string
	// RetryTransportErrors also retries timeouts and connection failures.
	RetryTransportErrors bool
}

// DefaultBackoffConfig retries idempotent requests three times on 429 and 5xx gateway errors.
func DefaultBackoffConfig() *BackoffConfig {
	return &BackoffConfig{
		MaxRetries:      3,
		InitialInterval: 1 * time.Second,
		MaxInterval:     30 * time.Second,
		RetryStatusCodes: []int{
			http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout,
		},
		RetryMethods:         []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		RetryTransportErrors: true,
	}
}

func (b *BackoffConfig) allowsMethod(method string) bool {
	return slices.Contains(b.RetryMethods, strings.ToUpper(method))
}

func (b *BackoffConfig) retriesStatus(statusCode int) bool {
	return slices.Contains(b.RetryStatusCodes, statusCode)
}

// delay returns the wait before retry number attempt (0-based). A Retry-After header wins
// over the exponential delay, both capped by MaxInterval.
func (b *BackoffConfig) delay(attempt int, retryAfter string) time.Duration {
	wait := b.InitialInterval << attempt
	if wait < 0 {
		wait = b.MaxInterval
	}

	if fromHeader, ok := parseRetryAfter(retryAfter); ok {
		wait = fromHeader
	}

	if b.MaxInterval > 0 && wait > b.MaxInterval {
		wait = b.MaxInterval
	}
	return wait
}

// parseRetryAfter accepts both delay-seconds and HTTP-date forms.
func parseRetryAfter(value string) (time.Duration, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	if seconds, err := strconv.Atoi(value); err == nil && seconds >= 0 {
		return time.Duration(seconds) * time.Second, true
	}
	if date, err := http.ParseTime(value); err == nil {
		wait := time.Until(date)
		if wait < 0 {
			wait = 0
		}
		return wait, true
	}
	return 0, false
}

// doRequestWithBackoff sends the request, retrying per the request backoff (or the client default),
// then decodes the last response. The body is encoded once and replayed on every attempt.
func (hc *Client) doRequestWithBackoff(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any, backoff *BackoffConfig) (any, any, int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if backoff == nil {
		backoff = hc.backoff
	}

	requestURL := hc.buildURL(path, queryParams)
	logURL := redactURL(requestURL)

	bodyBytes, contentType, err := hc.encodeBody(body)
	if err != nil {
		return nil, nil, 0, err
	}

	maxRetries := 0
	if backoff != nil && backoff.allowsMethod(method) {
		maxRetries = backoff.MaxRetries
	}

	for attempt := 0; ; attempt++ {
		hc.logger.LogRequest(method, logURL, headers, string(bodyBytes))

		result, err := hc.execute(ctx, method, requestURL, headers, bodyBytes, contentType)
		if err != nil {
			err = redactError(err, logURL)
			statusCode := 0
			var latency time.Duration
			if result != nil {
				statusCode = result.statusCode
				latency = result.latency
			}

			retryable := backoff != nil && backoff.RetryTransportErrors && ctx.Err() == nil
			if retryable && attempt < maxRetries {
				hc.logger.LogRequestRetry(method, logURL, headers, string(bodyBytes), statusCode, "", latency.Milliseconds(), err, attempt+1, maxRetries)
				if waitErr := wait(ctx, backoff.delay(attempt, "")); waitErr != nil {
					return nil, nil, 0, waitErr
				}
				continue
			}

			hc.logger.LogResponseError(method, logURL, headers, string(bodyBytes), statusCode, "", latency.Milliseconds(), err)
			return nil, nil, statusCode, err
		}

		if backoff != nil && backoff.retriesStatus(result.statusCode) && attempt < maxRetries {
			hc.logger.LogRequestRetry(method, logURL, headers, string(bodyBytes), result.statusCode, string(result.body), result.latency.Milliseconds(), nil, attempt+1, maxRetries)
			if waitErr := wait(ctx, backoff.delay(attempt, result.header.Get("Retry-After"))); waitErr != nil {
				return nil, nil, 0, waitErr
			}
			continue
		}

		success, failure, statusCode, err := hc.handleResponse(result, successResp, errorResp)
		if err != nil {
			hc.logger.LogResponseError(method, logURL, headers, string(bodyBytes), statusCode, string(result.body), result.latency.Milliseconds(), err)
		} else {
			hc.logger.LogResponseSuccess(method, logURL, headers, string(bodyBytes), statusCode, string(result.body), result.latency.Milliseconds())
		}
		return success, failure, statusCode, err
	}
}

// wait sleeps for d unless ctx is done first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
