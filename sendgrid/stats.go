package sendgrid

import (
	"context"
	"errors"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/s0up4200/clientele/rest"
)

// Metrics are the event counters of a stats bucket. Browser, device,
// client and mailbox provider stats fill only the fields they track.
type Metrics struct {
	Blocks           int `json:"blocks"`
	BounceDrops      int `json:"bounce_drops"`
	Bounces          int `json:"bounces"`
	Clicks           int `json:"clicks"`
	Deferred         int `json:"deferred"`
	Delivered        int `json:"delivered"`
	InvalidEmails    int `json:"invalid_emails"`
	Opens            int `json:"opens"`
	Processed        int `json:"processed"`
	Requests         int `json:"requests"`
	SpamReportDrops  int `json:"spam_report_drops"`
	SpamReports      int `json:"spam_reports"`
	UniqueClicks     int `json:"unique_clicks"`
	UniqueOpens      int `json:"unique_opens"`
	UnsubscribeDrops int `json:"unsubscribe_drops"`
	Unsubscribes     int `json:"unsubscribes"`
	Drops            int `json:"drops"`
}

// StatEntry is one metric set, named for category, subuser or
// dimension stats and anonymous for global stats.
type StatEntry struct {
	Type    string  `json:"type,omitempty"`
	Name    string  `json:"name,omitempty"`
	Metrics Metrics `json:"metrics"`
}

// Stat is the stats of one period. Date is the first day of the period.
type Stat struct {
	Date  string      `json:"date"`
	Stats []StatEntry `json:"stats"`
}

// StatsOptions selects the period of a stats query. StartDate is
// required; EndDate defaults to today.
type StatsOptions struct {
	StartDate    openapi_types.Date
	EndDate      openapi_types.Date
	AggregatedBy AggregatedBy
}

var errStartDateRequired = errors.New("stats start date is required")

func (o *StatsOptions) query() (*rest.Query, error) {
	if o == nil || o.StartDate.Time.IsZero() {
		return nil, errStartDateRequired
	}
	q := rest.NewQuery().Date("start_date", o.StartDate).String("aggregated_by", string(o.AggregatedBy))
	if !o.EndDate.Time.IsZero() {
		q.Date("end_date", o.EndDate)
	}
	return q, nil
}

// SumsOptions sorts and pages the totals of category and subuser stats.
type SumsOptions struct {
	StatsOptions
	ListOptions
	// SortByMetric defaults to delivered.
	SortByMetric    string
	SortByDirection SortByDirection
}

func (o *SumsOptions) query() (*rest.Query, error) {
	if o == nil {
		return nil, errStartDateRequired
	}
	q, err := o.StatsOptions.query()
	if err != nil {
		return nil, err
	}
	return o.ListOptions.apply(q).
		String("sort_by_metric", o.SortByMetric).
		String("sort_by_direction", string(o.SortByDirection)), nil
}

func (c *Client) stats(ctx context.Context, path string, q *rest.Query) ([]Stat, error) {
	var out []Stat
	if err := c.rest.Get(ctx, path, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) sums(ctx context.Context, path string, opts *SumsOptions) (*Stat, error) {
	q, err := opts.query()
	if err != nil {
		return nil, err
	}

	var out Stat
	if err := c.rest.Get(ctx, path, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// dimensionStats serves the endpoints that take an optional filter list
// under a single query key.
func (c *Client) dimensionStats(ctx context.Context, path string, opts *StatsOptions, key string, values []string) ([]Stat, error) {
	q, err := opts.query()
	if err != nil {
		return nil, err
	}
	return c.stats(ctx, path, q.Strings(key, values))
}

// GlobalStats returns account-wide email stats.
func (c *Client) GlobalStats(ctx context.Context, opts *StatsOptions) ([]Stat, error) {
	q, err := opts.query()
	if err != nil {
		return nil, err
	}
	return c.stats(ctx, "/v3/stats", q)
}

// CategoryStats returns stats for up to ten categories.
func (c *Client) CategoryStats(ctx context.Context, categories []string, opts *StatsOptions) ([]Stat, error) {
	if len(categories) == 0 {
		return nil, errors.New("at least one category is required")
	}
	return c.dimensionStats(ctx, "/v3/categories/stats", opts, "categories", categories)
}

// CategoryStatsSums returns the totals of every category over the period.
func (c *Client) CategoryStatsSums(ctx context.Context, opts *SumsOptions) (*Stat, error) {
	return c.sums(ctx, "/v3/categories/stats/sums", opts)
}

// SubuserStats returns stats for up to ten subusers.
func (c *Client) SubuserStats(ctx context.Context, subusers []string, opts *StatsOptions) ([]Stat, error) {
	if len(subusers) == 0 {
		return nil, errors.New("at least one subuser is required")
	}
	return c.dimensionStats(ctx, "/v3/subusers/stats", opts, "subusers", subusers)
}

// SubuserStatsSums returns the totals of every subuser over the period.
func (c *Client) SubuserStatsSums(ctx context.Context, opts *SumsOptions) (*Stat, error) {
	return c.sums(ctx, "/v3/subusers/stats/sums", opts)
}

// SubuserMonthlyStats returns one month of stats for every subuser, or
// only subuser when it is set. Only the year and month of date are used.
func (c *Client) SubuserMonthlyStats(ctx context.Context, date openapi_types.Date, subuser string, opts *ListOptions) (*Stat, error) {
	if date.Time.IsZero() {
		return nil, errors.New("month date is required")
	}

	q := opts.apply(rest.NewQuery().Date("date", date).String("subuser", subuser))

	var out Stat
	if err := c.rest.Get(ctx, "/v3/subusers/stats/monthly", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BrowserStats returns click stats by browser, optionally only for the
// named browsers.
func (c *Client) BrowserStats(ctx context.Context, opts *StatsOptions, browsers ...string) ([]Stat, error) {
	return c.dimensionStats(ctx, "/v3/browsers/stats", opts, "browsers", browsers)
}

// DeviceStats returns open stats by device type.
func (c *Client) DeviceStats(ctx context.Context, opts *StatsOptions) ([]Stat, error) {
	q, err := opts.query()
	if err != nil {
		return nil, err
	}
	return c.stats(ctx, "/v3/devices/stats", q)
}

// ClientStats returns open stats by email client.
func (c *Client) ClientStats(ctx context.Context, opts *StatsOptions) ([]Stat, error) {
	q, err := opts.query()
	if err != nil {
		return nil, err
	}
	return c.stats(ctx, "/v3/clients/stats", q)
}

// GeoStats returns open and click stats by country. country is "US", "CA"
// or empty for all.
func (c *Client) GeoStats(ctx context.Context, opts *StatsOptions, country string) ([]Stat, error) {
	q, err := opts.query()
	if err != nil {
		return nil, err
	}
	return c.stats(ctx, "/v3/geo/stats", q.String("country", country))
}

// MailboxProviderStats returns delivery stats by mailbox provider,
// optionally only for the named providers.
func (c *Client) MailboxProviderStats(ctx context.Context, opts *StatsOptions, providers ...string) ([]Stat, error) {
	return c.dimensionStats(ctx, "/v3/mailbox_providers/stats", opts, "mailbox_providers", providers)
}
