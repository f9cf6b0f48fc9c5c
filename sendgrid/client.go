package sendgrid

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/s0up4200/clientele/rest"
)

// DefaultBaseURL is the SendGrid v3 API endpoint. EU regional subusers use
// https://api.eu.sendgrid.com instead.
const DefaultBaseURL = "https://api.sendgrid.com"

// ErrAPIKeyRequired is returned by NewClient when no API key is given.
var ErrAPIKeyRequired = errors.New("sendgrid api key is required")

// Client talks to the SendGrid v3 Web API.
type Client struct {
	rest        *rest.Client
	logger      zerolog.Logger
	concurrency int
}

type options struct {
	onBehalfOf string
	rest       []rest.Option
}

// Option configures a Client.
type Option func(*options)

// WithOnBehalfOf makes every request on behalf of a subuser. The value is
// a subuser username, or "account-id <id>" for a customer account.
func WithOnBehalfOf(subuser string) Option {
	return func(o *options) {
		o.onBehalfOf = subuser
	}
}

// WithRESTOptions passes options through to the underlying rest client.
func WithRESTOptions(opts ...rest.Option) Option {
	return func(o *options) {
		o.rest = append(o.rest, opts...)
	}
}

// NewClient creates a SendGrid client authenticated with apiKey.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	base := []rest.Option{
		rest.WithLogger(logger),
		rest.WithServiceName("sendgrid"),
		rest.WithBearerToken(apiKey),
	}
	if o.onBehalfOf != "" {
		base = append(base, rest.WithHeader("On-Behalf-Of", o.onBehalfOf))
	}

	rc, err := rest.New(DefaultBaseURL, append(base, o.rest...)...)
	if err != nil {
		return nil, fmt.Errorf("creating sendgrid client: %w", err)
	}

	return &Client{
		rest:        rc,
		logger:      logger.With().Str("service", "sendgrid").Logger(),
		concurrency: len(suppressionLists),
	}, nil
}

// ListOptions selects a window of a limit/offset collection.
type ListOptions struct {
	Limit  int
	Offset int
}

func (o *ListOptions) apply(q *rest.Query) *rest.Query {
	if o == nil {
		return q
	}
	return q.Int("limit", o.Limit).Int("offset", o.Offset)
}

// allLimit is the page size used by the ListAll helpers.
const allLimit = 500
