package http

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	charsetpkg "golang.org/x/net/html/charset"
)

var (
	// ErrHTTPStatus is wrapped by the error returned for non-2xx responses.
	ErrHTTPStatus = errors.New("http error")
	// ErrDecodeResponse is wrapped by the error returned when a response body cannot be unmarshalled.
	ErrDecodeResponse = errors.New("failed to decode response body")
)

// Client represents an HTTP client with configuration options.
type Client struct {
	baseURL            string
	client             *http.Client
	followRedirect     bool
	dismiss404         bool
	defaultHeaders     map[string]string
	defaultContentType string
	backoff            *BackoffConfig
	logger             HTTPLogger
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect      bool
	Dismiss404          bool
	DefaultHeaders      map[string]string
	DefaultContentType  string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	// ReadTimeout bounds a single attempt; every retry gets a fresh window.
	ReadTimeout time.Duration
	// Backoff is the default retry policy. Nil disables retries.
	Backoff *BackoffConfig
	// Logger receives request, response and retry events. Nil means no logging.
	Logger HTTPLogger
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 200
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 20
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 60 * time.Second
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 60 * time.Second
	}
	if opts.DefaultContentType == "" {
		opts.DefaultContentType = "application/json"
	}
	if opts.Logger == nil {
		opts.Logger = noopLogger{}
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        opts.MaxIdleConns,
		MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
		IdleConnTimeout:     opts.IdleConnTimeout,
		DialContext: (&net.Dialer{
			Timeout: opts.ConnectionTimeout,
		}).DialContext,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Client{
		baseURL:            strings.TrimRight(baseURL, "/"),
		client:             client,
		followRedirect:     opts.FollowRedirect,
		dismiss404:         opts.Dismiss404,
		defaultHeaders:     opts.DefaultHeaders,
		defaultContentType: opts.DefaultContentType,
		backoff:            opts.Backoff,
		logger:             opts.Logger,
	}
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// Get sends a GET request to the specified path with optional query parameters, headers, and response types.
// It returns the success response, error response, status code, and error if any.
func (hc *Client) Get(ctx context.Context, path string, queryParams map[string]string, headers map[string]string, successResp any, errorResp any) (any, any, int, error) {
	return hc.doRequestWithBackoff(ctx, http.MethodGet, path, queryParams, headers, nil, successResp, errorResp, nil)
}

// Post sends a POST request to the specified path with optional query parameters, headers, and response types.
// POST is not idempotent, so it is never retried.
func (hc *Client) Post(ctx context.Context, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any) (any, any, int, error) {
	return hc.doRequestWithBackoff(ctx, http.MethodPost, path, queryParams, headers, body, successResp, errorResp, nil)
}

// encodeBody serializes the request body according to its type and the client's default content type.
func (hc *Client) encodeBody(body any) ([]byte, string, error) {
	if body == nil {
		return nil, "", nil
	}

	switch body := body.(type) {
	case string:
		return []byte(body), "text/plain", nil
	case []byte:
		return body, "application/octet-stream", nil
	}

	switch hc.defaultContentType {
	case "application/xml":
		xmlBody, err := xml.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body to XML: %w", err)
		}
		return xmlBody, "application/xml", nil
	case "text/plain":
		return []byte(fmt.Sprintf("%v", body)), "text/plain", nil
	default:
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body to JSON: %w", err)
		}
		return jsonBody, "application/json", nil
	}
}

// attemptResult holds the outcome of a single round trip.
type attemptResult struct {
	statusCode int
	header     http.Header
	body       []byte
	latency    time.Duration
}

// execute performs exactly one round trip and reads the whole response body.
func (hc *Client) execute(ctx context.Context, method, requestURL string, headers map[string]string, body []byte, contentType string) (*attemptResult, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := hc.client.Do(req)
	if err != nil {
		return &attemptResult{latency: time.Since(start)}, err
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	result := &attemptResult{
		statusCode: resp.StatusCode,
		header:     resp.Header,
		body:       bodyBytes,
		latency:    time.Since(start),
	}
	if err != nil {
		return result, err
	}
	return result, nil
}

// handleResponse unmarshals the final attempt into the success or error target.
func (hc *Client) handleResponse(result *attemptResult, successResp any, errorResp any) (any, any, int, error) {
	respContentType := result.header.Get("Content-Type")
	if respContentType == "" {
		respContentType = hc.defaultContentType
	}

	if result.statusCode >= 200 && result.statusCode < 300 {
		if successResp != nil {
			if err := hc.unmarshalResponse(result.body, respContentType, successResp); err != nil {
				return nil, nil, result.statusCode, fmt.Errorf("%w: %v", ErrDecodeResponse, err)
			}
		}
		return successResp, nil, result.statusCode, nil
	}

	if result.statusCode == http.StatusNotFound && hc.dismiss404 {
		return nil, nil, result.statusCode, nil
	}

	// error bodies are best effort, providers often answer 5xx with HTML
	if errorResp != nil {
		if err := hc.unmarshalResponse(result.body, respContentType, errorResp); err != nil {
			errorResp = nil
		}
	}

	return nil, errorResp, result.statusCode, fmt.Errorf("%w: status %d", ErrHTTPStatus, result.statusCode)
}

// unmarshalResponse unmarshals response body based on content type
func (hc *Client) unmarshalResponse(bodyBytes []byte, contentType string, target any) error {
	mainContentType := strings.TrimSpace(strings.Split(contentType, ";")[0])

	switch mainContentType {
	case "application/xml", "text/xml":
		dec := xml.NewDecoder(bytes.NewReader(bodyBytes))
		dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
			return charsetpkg.NewReaderLabel(charset, input)
		}
		return dec.Decode(target)
	case "text/plain":
		if strPtr, ok := target.(*string); ok {
			*strPtr = string(bodyBytes)
			return nil
		}
		return json.Unmarshal(bodyBytes, target)
	case "application/octet-stream":
		if bytePtr, ok := target.(*[]byte); ok {
			*bytePtr = bodyBytes
			return nil
		}
		return json.Unmarshal(bodyBytes, target)
	default:
		return json.Unmarshal(bodyBytes, target)
	}
}

// buildURL builds a normalized URL by properly handling baseURL and path
func (hc *Client) buildURL(path string, queryParams map[string]string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	requestURL := strings.TrimRight(hc.baseURL, "/") + path
	if len(queryParams) > 0 {
		requestURL += "?" + buildQueryString(queryParams)
	}
	return requestURL
}

// buildQueryString builds an escaped query string, keys sorted
func buildQueryString(params map[string]string) string {
	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}
	return values.Encode()
}
