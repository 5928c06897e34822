package monzo

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/petebray/monzoreport/internal/transport"
	internalTypes "github.com/petebray/monzoreport/internal/types"
)

const (
	// DefaultBaseURL is the default Monzo API base URL
	DefaultBaseURL = "https://api.monzo.com"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

// Client is the main Monzo API client
type Client struct {
	// Service interfaces
	Ping         PingService
	Accounts     AccountService
	Transactions TransactionService

	// Internal fields
	baseURL    string
	httpClient *http.Client
	transport  Transport
	options    *ClientOptions
}

// ClientOptions configures the client
type ClientOptions struct {
	// BaseURL overrides the default API base URL
	BaseURL string

	// HTTPClient allows using a custom HTTP client
	HTTPClient *http.Client

	// Timeout sets the HTTP client timeout
	Timeout time.Duration

	// AccessToken provides the bearer credential
	AccessToken string

	// Logger for debug logging
	Logger Logger

	// RetryConfig configures retry behavior; nil disables retries
	RetryConfig *internalTypes.RetryConfig

	// Hooks for observability
	Hooks *internalTypes.Hooks

	// SentryDSN enables Sentry error tracking when set
	SentryDSN string

	// SentryOptions allows custom Sentry configuration
	SentryOptions *sentry.ClientOptions
}

// Logger interface for logging
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Transport handles HTTP communication with the API
type Transport interface {
	Get(ctx context.Context, path string, query url.Values, result interface{}) error
	SetAuth(token string)
}

// NewClient creates a new Monzo client
func NewClient(opts *ClientOptions) (*Client, error) {
	if opts == nil {
		opts = &ClientOptions{}
	}

	// Initialize Sentry if DSN is provided
	if opts.SentryDSN != "" || opts.SentryOptions != nil {
		sentryOpts := sentry.ClientOptions{}

		if opts.SentryOptions != nil {
			sentryOpts = *opts.SentryOptions
		}

		if opts.SentryDSN != "" {
			sentryOpts.Dsn = opts.SentryDSN
		}

		if sentryOpts.Environment == "" {
			sentryOpts.Environment = "production"
		}

		if err := sentry.Init(sentryOpts); err != nil {
			// Log error but don't fail client creation
			if opts.Logger != nil {
				opts.Logger.Error("Failed to initialize Sentry", "error", err)
			}
		}
	}

	// Set defaults
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: DefaultTimeout,
		}
	}

	if opts.Timeout > 0 {
		opts.HTTPClient.Timeout = opts.Timeout
	}

	// Create transport using the internal package
	transportOpts := &transport.Options{
		BaseURL:     opts.BaseURL,
		HTTPClient:  opts.HTTPClient,
		RetryConfig: opts.RetryConfig,
		Logger:      opts.Logger,
		Hooks:       opts.Hooks,
	}
	trans := transport.NewREST(transportOpts)

	// Set auth if token provided
	if opts.AccessToken != "" {
		trans.SetAuth(opts.AccessToken)
	}

	// Create client
	c := &Client{
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
		transport:  trans,
		options:    opts,
	}

	// Initialize services
	c.initServices()

	return c, nil
}

// NewClientWithToken creates a client with an access token
func NewClientWithToken(token string) (*Client, error) {
	return NewClient(&ClientOptions{
		AccessToken: token,
	})
}

// initServices initializes all service implementations
func (c *Client) initServices() {
	c.Ping = &pingService{client: c}
	c.Accounts = &accountService{client: c}
	c.Transactions = &transactionService{client: c}
}

// SetToken sets the access token
func (c *Client) SetToken(token string) {
	c.transport.SetAuth(token)
}

// get executes a GET request against the API
func (c *Client) get(ctx context.Context, path string, query url.Values, result interface{}) error {
	start := time.Now()
	err := c.transport.Get(ctx, path, query, result)
	duration := time.Since(start)

	// Capture errors in Sentry
	if err != nil {
		if hub := sentry.GetHubFromContext(ctx); hub != nil {
			hub.WithScope(func(scope *sentry.Scope) {
				scope.SetTag("api.path", path)
				scope.SetContext("request", map[string]interface{}{
					"query":    query.Encode(),
					"duration": duration.String(),
				})
				hub.CaptureException(err)
			})
		} else {
			sentry.WithScope(func(scope *sentry.Scope) {
				scope.SetTag("api.path", path)
				scope.SetContext("request", map[string]interface{}{
					"query":    query.Encode(),
					"duration": duration.String(),
				})
				sentry.CaptureException(err)
			})
		}
	}

	return err
}

// logError logs through the configured logger if one is present
func (c *Client) logError(msg string, keysAndValues ...interface{}) {
	if c.options != nil && c.options.Logger != nil {
		c.options.Logger.Error(msg, keysAndValues...)
	}
}

// Close flushes any pending Sentry events and performs cleanup
func (c *Client) Close() {
	// Flush Sentry events with a 2 second timeout
	sentry.Flush(2 * time.Second)
}
