package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// RequestIDHeader carries the client-generated ID of each request.
const RequestIDHeader = "X-Request-Id"

const redacted = "REDACTED"

// Client performs JSON requests against a single API base URL.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     zerolog.Logger
	service    string
	userAgent  string
	headers    http.Header
	apiKeyName string
	apiKey     string
	limiter    *rate.Limiter
}

// Response is the raw result of a successful or failed request.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	RequestID  string
}

// NextURL returns the rel="next" target of the Link header, or "" on the
// last page.
func (r *Response) NextURL() string {
	if r == nil {
		return ""
	}
	return parseLinkNext(r.Header.Get("Link"))
}

// New creates a client for the API rooted at baseURL, unless WithBaseURL
// overrides it.
func New(baseURL string, opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.baseURL != "" {
		baseURL = o.baseURL
	}

	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}

	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base URL: %v", ErrInvalidConfig, err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("%w: base URL must be an absolute http(s) URL, got %q", ErrInvalidConfig, baseURL)
	}

	var httpClient http.Client
	if o.httpClient != nil {
		httpClient = *o.httpClient
	} else {
		httpClient.Timeout = DefaultTimeout
	}
	if o.timeout > 0 {
		httpClient.Timeout = o.timeout
	}

	transport := httpClient.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	if o.tokenSource != nil {
		transport = &oauth2.Transport{Source: o.tokenSource, Base: transport}
	}
	if o.metrics != nil {
		transport = o.metrics.instrument(o.service, transport)
	}
	httpClient.Transport = transport

	c := &Client{
		baseURL:    parsed,
		httpClient: &httpClient,
		logger:     o.logger.With().Str("service", o.service).Logger(),
		service:    o.service,
		userAgent:  o.userAgent,
		headers:    o.headers,
		apiKeyName: o.apiKeyName,
		apiKey:     o.apiKey,
	}
	if o.limit > 0 {
		c.limiter = rate.NewLimiter(o.limit, o.burst)
	}

	return c, nil
}

// BaseURL returns the API root the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Do sends one request. path is relative to the base URL and may carry its
// own query string; an absolute URL (such as a pagination link) is used as
// is. query values are merged in. body, when non-nil, is sent as JSON. On a
// 2xx response with a body, the JSON is decoded into out when out is
// non-nil. Non-2xx responses return the Response together with an
// *APIError.
func (c *Client) Do(ctx context.Context, method, path string, query *Query, body, out any) (*Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	reqURL, err := c.resolve(path, query)
	if err != nil {
		return nil, err
	}
	logURL := c.redact(reqURL)

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	for key, values := range c.headers {
		req.Header[key] = append([]string(nil), values...)
	}
	req.Header.Set(RequestIDHeader, requestID)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("waiting for rate limiter: %w", err)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = logURL
		}
		c.logger.Debug().
			Err(err).
			Str("method", method).
			Str("url", logURL).
			Str("request_id", requestID).
			Msg("API request failed")
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       raw,
		RequestID:  requestID,
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", logURL).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Str("request_id", requestID).
		Msg("API request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := parseAPIError(resp.StatusCode, method, logURL, raw)
		c.logger.Warn().
			Str("method", method).
			Str("url", logURL).
			Int("status", resp.StatusCode).
			Str("request_id", requestID).
			Str("message", apiErr.Message).
			Msg("API request returned an error")
		return result, apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(raw)) == 0 {
		return result, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return result, fmt.Errorf("decoding %s %s response: %w", method, logURL, err)
	}

	return result, nil
}

// Get sends a GET request and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, query *Query, out any) error {
	_, err := c.Do(ctx, http.MethodGet, path, query, nil, out)
	return err
}

// Post sends body as JSON and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, query *Query, body, out any) error {
	_, err := c.Do(ctx, http.MethodPost, path, query, body, out)
	return err
}

// Put sends body as JSON and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, query *Query, body, out any) error {
	_, err := c.Do(ctx, http.MethodPut, path, query, body, out)
	return err
}

// Patch sends body as JSON and decodes the response into out.
func (c *Client) Patch(ctx context.Context, path string, query *Query, body, out any) error {
	_, err := c.Do(ctx, http.MethodPatch, path, query, body, out)
	return err
}

// Delete sends a DELETE request. Some APIs take a JSON body on DELETE, so
// body is honoured when non-nil.
func (c *Client) Delete(ctx context.Context, path string, query *Query, body, out any) error {
	_, err := c.Do(ctx, http.MethodDelete, path, query, body, out)
	return err
}

// resolve joins path onto the base URL and merges the query.
func (c *Client) resolve(path string, query *Query) (*url.URL, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("invalid request path %q: %w", path, err)
	}

	var u url.URL
	if ref.IsAbs() {
		if !strings.EqualFold(ref.Host, c.baseURL.Host) || !strings.EqualFold(ref.Scheme, c.baseURL.Scheme) {
			return nil, fmt.Errorf("%w: %s://%s", ErrForeignHost, ref.Scheme, ref.Host)
		}
		u = *ref
	} else {
		u = *c.baseURL
		joined := strings.TrimRight(c.baseURL.EscapedPath(), "/") + "/" + strings.TrimLeft(ref.EscapedPath(), "/")
		unescaped, err := url.PathUnescape(joined)
		if err != nil {
			return nil, fmt.Errorf("invalid request path %q: %w", path, err)
		}
		u.Path = unescaped
		u.RawPath = joined
	}

	values := ref.Query()
	for key, vs := range query.Values() {
		for _, v := range vs {
			values.Add(key, v)
		}
	}
	if c.apiKeyName != "" && c.apiKey != "" && values.Get(c.apiKeyName) == "" {
		values.Set(c.apiKeyName, c.apiKey)
	}
	u.RawQuery = values.Encode()
	u.Fragment = ""

	return &u, nil
}

// redact renders u for logs with the API key hidden.
func (c *Client) redact(u *url.URL) string {
	if c.apiKeyName == "" {
		return u.String()
	}
	values := u.Query()
	if values.Get(c.apiKeyName) == "" {
		return u.String()
	}
	values.Set(c.apiKeyName, redacted)
	clean := *u
	clean.RawQuery = values.Encode()
	return clean.String()
}

// parseLinkNext extracts the URL with rel="next" from an RFC 5988 Link
// header.
//
// Format: <https://api.github.com/...?page=2>; rel="next", <...>; rel="last"
func parseLinkNext(header string) string {
	if header == "" {
		return ""
	}

	for _, part := range strings.Split(header, ",") {
		segments := strings.Split(strings.TrimSpace(part), ";")
		if len(segments) < 2 {
			continue
		}

		target := strings.TrimSpace(segments[0])
		if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
			continue
		}

		for _, param := range segments[1:] {
			param = strings.TrimSpace(param)
			if param == `rel="next"` || param == "rel=next" {
				return target[1 : len(target)-1]
			}
		}
	}

	return ""
}
