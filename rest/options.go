package rest

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// DefaultTimeout is applied when the caller does not supply an HTTP client.
const DefaultTimeout = 30 * time.Second

// Option configures a Client.
type Option func(*options)

// options holds configuration collected from Option values.
type options struct {
	baseURL     string
	httpClient  *http.Client
	timeout     time.Duration
	logger      zerolog.Logger
	service     string
	userAgent   string
	headers     http.Header
	tokenSource oauth2.TokenSource
	apiKeyName  string
	apiKey      string
	limit       rate.Limit
	burst       int
	metrics     *Metrics
}

func defaultOptions() *options {
	return &options{
		logger:  zerolog.Nop(),
		service: "rest",
		headers: make(http.Header),
	}
}

// WithBaseURL replaces the base URL passed to New. Service clients use it
// to point at GitHub Enterprise Server or a test server.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client used for requests. The client is
// copied, so wrapping its transport for auth or metrics does not affect the
// caller's value.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithLogger sets the logger used for per-request debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithServiceName labels log events and metrics.
func WithServiceName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.service = name
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *options) {
		o.userAgent = userAgent
	}
}

// WithHeader adds a header sent on every request. Later calls for the same
// key replace earlier ones.
func WithHeader(key, value string) Option {
	return func(o *options) {
		o.headers.Set(key, value)
	}
}

// WithTokenSource authenticates every request with a bearer token taken
// from ts.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(o *options) {
		o.tokenSource = ts
	}
}

// WithBearerToken authenticates every request with a fixed bearer token.
func WithBearerToken(token string) Option {
	return WithTokenSource(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
}

// WithAPIKeyParam appends name=key to the query string of every request.
// The key is redacted from log output and transport errors.
func WithAPIKeyParam(name, key string) Option {
	return func(o *options) {
		o.apiKeyName = name
		o.apiKey = key
	}
}

// WithRateLimit makes every request wait on a token bucket of the given
// rate and burst. A zero or negative limit disables limiting.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(o *options) {
		o.limit = limit
		if burst <= 0 {
			burst = 1
		}
		o.burst = burst
	}
}

// WithMetrics records request counts and latencies in m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}
