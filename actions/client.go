package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/s0up4200/clientele/rest"
)

const (
	// DefaultBaseURL is the public GitHub REST API.
	DefaultBaseURL = "https://api.github.com"
	// APIVersion is sent as X-GitHub-Api-Version on every request.
	APIVersion = "2022-11-28"

	mediaType = "application/vnd.github+json"
)

// ErrTokenRequired is returned by NewClient when no token is given.
var ErrTokenRequired = errors.New("github token is required")

// Client talks to the GitHub Actions REST API.
type Client struct {
	rest        *rest.Client
	logger      zerolog.Logger
	concurrency int
}

// NewClient creates a GitHub Actions client authenticated with token (a
// personal access token, fine-grained token or installation token).
// rest.WithBaseURL points it at GitHub Enterprise Server.
func NewClient(token string, logger zerolog.Logger, opts ...rest.Option) (*Client, error) {
	if token == "" {
		return nil, ErrTokenRequired
	}

	base := []rest.Option{
		rest.WithLogger(logger),
		rest.WithServiceName("github"),
		rest.WithBearerToken(token),
		rest.WithHeader("Accept", mediaType),
		rest.WithHeader("X-GitHub-Api-Version", APIVersion),
	}

	rc, err := rest.New(DefaultBaseURL, append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("creating github client: %w", err)
	}

	return &Client{
		rest:        rc,
		logger:      logger.With().Str("service", "github").Logger(),
		concurrency: DefaultConcurrency,
	}, nil
}

// SetConcurrency bounds how many requests fan-out helpers such as
// ListJobsForRuns keep in flight.
func (c *Client) SetConcurrency(n int) {
	if n > 0 {
		c.concurrency = n
	}
}

// ListOptions selects a page of a list endpoint. Zero values are left to the
// API's defaults (page 1, 30 per page).
type ListOptions struct {
	Page    int
	PerPage int
}

func (o *ListOptions) apply(q *rest.Query) *rest.Query {
	if o == nil {
		return q
	}
	return q.Int("page", o.Page).Int("per_page", o.PerPage)
}

// allPerPage is the page size used by the ListAll helpers.
const allPerPage = 100

func repoPath(owner, repo, suffix string, params ...any) (string, error) {
	return rest.Path("/repos/{owner}/{repo}/actions"+suffix, append([]any{owner, repo}, params...)...)
}

func orgPath(org, suffix string, params ...any) (string, error) {
	return rest.Path("/orgs/{org}/actions"+suffix, append([]any{org}, params...)...)
}

func (c *Client) get(ctx context.Context, path string, q *rest.Query, out any) error {
	return c.rest.Get(ctx, path, q, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.rest.Post(ctx, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.rest.Put(ctx, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body any) error {
	return c.rest.Patch(ctx, path, nil, body, nil)
}

func (c *Client) delete(ctx context.Context, path string, q *rest.Query, out any) error {
	return c.rest.Delete(ctx, path, q, nil, out)
}
