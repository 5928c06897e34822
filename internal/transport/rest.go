package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/petebray/monzoreport/internal/types"
	"github.com/pkg/errors"
)

const (
	authHeaderKey      = "Authorization"
	requestIDHeaderKey = "X-Request-Id"
	contentType        = "application/json"
)

// REST handles communication with the Monzo HTTP API
type REST struct {
	baseURL     string
	httpClient  *http.Client
	retryClient *retryablehttp.Client
	headers     map[string]string
	token       string
	logger      types.Logger
	hooks       *types.Hooks
}

// Options for the REST transport
type Options struct {
	BaseURL     string
	HTTPClient  *http.Client
	Headers     map[string]string
	RetryConfig *types.RetryConfig
	Logger      types.Logger
	Hooks       *types.Hooks
}

// NewREST creates a new REST transport
func NewREST(opts *Options) *REST {
	if opts == nil {
		opts = &Options{}
	}

	// Set defaults
	if opts.BaseURL == "" {
		opts.BaseURL = types.DefaultBaseURL
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: types.DefaultTimeout,
		}
	}

	// Create retry client if configured
	var retryClient *retryablehttp.Client
	if opts.RetryConfig != nil {
		retryClient = retryablehttp.NewClient()
		retryClient.HTTPClient = opts.HTTPClient
		retryClient.RetryMax = opts.RetryConfig.MaxRetries
		retryClient.RetryWaitMin = opts.RetryConfig.RetryWait
		retryClient.RetryWaitMax = opts.RetryConfig.MaxWait

		if opts.Logger != nil {
			retryClient.Logger = &retryLogger{logger: opts.Logger}
		}
	}

	// Set default headers
	headers := map[string]string{
		"Accept":     contentType,
		"User-Agent": types.UserAgent,
	}

	// Merge custom headers
	for k, v := range opts.Headers {
		headers[k] = v
	}

	return &REST{
		baseURL:     opts.BaseURL,
		httpClient:  opts.HTTPClient,
		retryClient: retryClient,
		headers:     headers,
		logger:      opts.Logger,
		hooks:       opts.Hooks,
	}
}

// Get executes a GET request against the API and decodes the JSON
// response body into result.
func (t *REST) Get(ctx context.Context, path string, query url.Values, result interface{}) error {
	// Check authentication
	if t.token == "" {
		return types.ErrNotAuthenticated
	}

	endpoint := t.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	// Set headers
	for k, v := range t.headers {
		httpReq.Header.Set(k, v)
	}
	httpReq.Header.Set(authHeaderKey, fmt.Sprintf("Bearer %s", t.token))
	httpReq.Header.Set(requestIDHeaderKey, uuid.NewString())

	// Call request hook
	if t.hooks != nil && t.hooks.OnRequest != nil {
		t.hooks.OnRequest(ctx, httpReq)
	}

	// Log request
	if t.logger != nil {
		t.logger.Debug("API request", "method", http.MethodGet, "path", path, "query", query.Encode())
	}

	// Execute request
	start := time.Now()
	resp, err := t.doRequest(httpReq)
	duration := time.Since(start)

	if err != nil {
		if t.hooks != nil && t.hooks.OnError != nil {
			t.hooks.OnError(ctx, err)
		}
		return err
	}
	defer resp.Body.Close()

	// Call response hook
	if t.hooks != nil && t.hooks.OnResponse != nil {
		t.hooks.OnResponse(ctx, resp, duration)
	}

	// Read response
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response")
	}

	// Log response
	if t.logger != nil {
		t.logger.Debug("API response", "status", resp.StatusCode, "duration", duration, "size", len(respBody))
	}

	// Check status code
	if resp.StatusCode != http.StatusOK {
		return t.handleHTTPError(resp.StatusCode, respBody)
	}

	// Parse response
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return errors.Wrap(err, "failed to parse response")
		}
	}

	return nil
}

// SetAuth sets the access token used for bearer authentication
func (t *REST) SetAuth(token string) {
	t.token = token
}

// doRequest executes the HTTP request with retry if configured
func (t *REST) doRequest(req *http.Request) (*http.Response, error) {
	if t.retryClient != nil {
		// Convert to retryable request
		retryReq, err := retryablehttp.FromRequest(req)
		if err != nil {
			return nil, err
		}
		return t.retryClient.Do(retryReq)
	}
	return t.httpClient.Do(req)
}

// handleHTTPError maps HTTP error responses to typed errors
func (t *REST) handleHTTPError(statusCode int, body []byte) error {
	// Try to parse error response
	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Code    string `json:"code"`
	}

	_ = json.Unmarshal(body, &errResp)

	msg := errResp.Message
	if msg == "" {
		msg = errResp.Error
	}

	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &types.Error{
			Code:       "UNAUTHORIZED",
			Message:    msg,
			StatusCode: statusCode,
			Body:       string(body),
			Err:        types.ErrNotAuthenticated,
		}
	case http.StatusNotFound:
		return &types.Error{
			Code:       "NOT_FOUND",
			Message:    msg,
			StatusCode: statusCode,
			Body:       string(body),
			Err:        types.ErrNotFound,
		}
	case http.StatusTooManyRequests:
		return &types.Error{
			Code:       "RATE_LIMITED",
			Message:    msg,
			StatusCode: statusCode,
			Body:       string(body),
			Err:        types.ErrRateLimited,
		}
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return &types.Error{
			Code:       "TIMEOUT",
			Message:    msg,
			StatusCode: statusCode,
			Body:       string(body),
			Err:        types.ErrTimeout,
		}
	default:
		if statusCode >= 500 {
			baseMsg := fmt.Sprintf("server error: %d", statusCode)
			if msg != "" {
				baseMsg = fmt.Sprintf("%s: %s", baseMsg, msg)
			}
			return &types.Error{
				Code:       "SERVER_ERROR",
				Message:    baseMsg,
				StatusCode: statusCode,
				Body:       string(body),
				Err:        types.ErrServerError,
			}
		}
		return &types.Error{
			Code:       "HTTP_ERROR",
			Message:    fmt.Sprintf("HTTP error: %d", statusCode),
			StatusCode: statusCode,
			Body:       string(body),
		}
	}
}

// retryLogger adapts our logger to retryablehttp
type retryLogger struct {
	logger types.Logger
}

func (l *retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, keysAndValues...)
}

func (l *retryLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, keysAndValues...)
}

func (l *retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, keysAndValues...)
}
