package sendgrid

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/clientele/rest"
)

// suppressionLists are the lists LookupSuppressions checks.
var suppressionLists = []SuppressionList{
	SuppressionBounces,
	SuppressionBlocks,
	SuppressionSpamReports,
	SuppressionInvalidEmails,
}

// Suppression is an entry of a bounce, block, spam report, invalid email
// or global unsubscribe list. Reason and Status are empty for lists that
// do not record them.
type Suppression struct {
	Email   string `json:"email"`
	Created int64  `json:"created"`
	Reason  string `json:"reason,omitempty"`
	Status  string `json:"status,omitempty"`
	IP      string `json:"ip,omitempty"`
}

// CreatedAt returns Created, a Unix timestamp, as a time.
func (s Suppression) CreatedAt() time.Time {
	return time.Unix(s.Created, 0).UTC()
}

// SuppressionListOptions filters a suppression list.
type SuppressionListOptions struct {
	ListOptions
	StartTime time.Time
	EndTime   time.Time
	// Email matches addresses starting with the given prefix.
	Email string
}

func (o *SuppressionListOptions) query() *rest.Query {
	q := rest.NewQuery()
	if o == nil {
		return q
	}
	return o.ListOptions.apply(q).
		Unix("start_time", o.StartTime).
		Unix("end_time", o.EndTime).
		String("email", o.Email)
}

func suppressionPath(list SuppressionList, email ...string) (string, error) {
	if len(email) == 0 {
		return rest.Path("/v3/suppression/{list}", string(list))
	}
	return rest.Path("/v3/suppression/{list}/{email}", string(list), email[0])
}

// ListSuppressions returns one page of a suppression list.
func (c *Client) ListSuppressions(ctx context.Context, list SuppressionList, opts *SuppressionListOptions) ([]Suppression, error) {
	path, err := suppressionPath(list)
	if err != nil {
		return nil, err
	}

	var out []Suppression
	if err := c.rest.Get(ctx, path, opts.query(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAllSuppressions pages through a whole suppression list. Limit and
// Offset of opts are ignored.
func (c *Client) ListAllSuppressions(ctx context.Context, list SuppressionList, opts *SuppressionListOptions) ([]Suppression, error) {
	path, err := suppressionPath(list)
	if err != nil {
		return nil, err
	}

	var filter *SuppressionListOptions
	if opts != nil {
		f := *opts
		f.ListOptions = ListOptions{}
		filter = &f
	}
	return rest.GetAllOffsetPages(ctx, c.rest, path, filter.query(), allLimit, rest.Items[Suppression]())
}

// GetSuppression returns the entries for one address. The result is empty
// when the address is not on the list.
func (c *Client) GetSuppression(ctx context.Context, list SuppressionList, email string) ([]Suppression, error) {
	path, err := suppressionPath(list, email)
	if err != nil {
		return nil, err
	}

	var out []Suppression
	if err := c.rest.Get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteSuppression removes one address from a list.
func (c *Client) DeleteSuppression(ctx context.Context, list SuppressionList, email string) error {
	path, err := suppressionPath(list, email)
	if err != nil {
		return err
	}
	return c.rest.Delete(ctx, path, nil, nil, nil)
}

// DeleteSuppressions removes several addresses from a list.
func (c *Client) DeleteSuppressions(ctx context.Context, list SuppressionList, emails []string) error {
	if len(emails) == 0 {
		return errors.New("at least one email is required")
	}

	path, err := suppressionPath(list)
	if err != nil {
		return err
	}

	body := struct {
		Emails []string `json:"emails"`
	}{emails}
	return c.rest.Delete(ctx, path, nil, body, nil)
}

// DeleteAllSuppressions empties a list.
func (c *Client) DeleteAllSuppressions(ctx context.Context, list SuppressionList) error {
	path, err := suppressionPath(list)
	if err != nil {
		return err
	}

	body := struct {
		DeleteAll bool `json:"delete_all"`
	}{true}
	return c.rest.Delete(ctx, path, nil, body, nil)
}

// ListBounces returns one page of bounces.
func (c *Client) ListBounces(ctx context.Context, opts *SuppressionListOptions) ([]Suppression, error) {
	return c.ListSuppressions(ctx, SuppressionBounces, opts)
}

// ListAllBounces returns every bounce.
func (c *Client) ListAllBounces(ctx context.Context, opts *SuppressionListOptions) ([]Suppression, error) {
	return c.ListAllSuppressions(ctx, SuppressionBounces, opts)
}

// GetBounce returns the bounces of one address.
func (c *Client) GetBounce(ctx context.Context, email string) ([]Suppression, error) {
	return c.GetSuppression(ctx, SuppressionBounces, email)
}

// DeleteBounce removes one address from the bounce list.
func (c *Client) DeleteBounce(ctx context.Context, email string) error {
	return c.DeleteSuppression(ctx, SuppressionBounces, email)
}

// DeleteAllBounces empties the bounce list.
func (c *Client) DeleteAllBounces(ctx context.Context) error {
	return c.DeleteAllSuppressions(ctx, SuppressionBounces)
}

// ListBlocks returns one page of blocks.
func (c *Client) ListBlocks(ctx context.Context, opts *SuppressionListOptions) ([]Suppression, error) {
	return c.ListSuppressions(ctx, SuppressionBlocks, opts)
}

// ListAllBlocks returns every block.
func (c *Client) ListAllBlocks(ctx context.Context, opts *SuppressionListOptions) ([]Suppression, error) {
	return c.ListAllSuppressions(ctx, SuppressionBlocks, opts)
}

// GetBlock returns the blocks of one address.
func (c *Client) GetBlock(ctx context.Context, email string) ([]Suppression, error) {
	return c.GetSuppression(ctx, SuppressionBlocks, email)
}

// DeleteBlock removes one address from the block list.
func (c *Client) DeleteBlock(ctx context.Context, email string) error {
	return c.DeleteSuppression(ctx, SuppressionBlocks, email)
}

// DeleteAllBlocks empties the block list.
func (c *Client) DeleteAllBlocks(ctx context.Context) error {
	return c.DeleteAllSuppressions(ctx, SuppressionBlocks)
}

// ListSpamReports returns one page of spam reports.
func (c *Client) ListSpamReports(ctx context.Context, opts *SuppressionListOptions) ([]Suppression, error) {
	return c.ListSuppressions(ctx, SuppressionSpamReports, opts)
}

// ListAllSpamReports returns every spam report.
func (c *Client) ListAllSpamReports(ctx context.Context, opts *SuppressionListOptions) ([]Suppression, error) {
	return c.ListAllSuppressions(ctx, SuppressionSpamReports, opts)
}

// GetSpamReport returns the spam reports of one address.
func (c *Client) GetSpamReport(ctx context.Context, email string) ([]Suppression, error) {
	return c.GetSuppression(ctx, SuppressionSpamReports, email)
}

// DeleteSpamReport removes one address from the spam report list.
func (c *Client) DeleteSpamReport(ctx context.Context, email string) error {
	return c.DeleteSuppression(ctx, SuppressionSpamReports, email)
}

// DeleteAllSpamReports empties the spam report list.
func (c *Client) DeleteAllSpamReports(ctx context.Context) error {
	return c.DeleteAllSuppressions(ctx, SuppressionSpamReports)
}

// ListInvalidEmails returns one page of invalid emails.
func (c *Client) ListInvalidEmails(ctx context.Context, opts *SuppressionListOptions) ([]Suppression, error) {
	return c.ListSuppressions(ctx, SuppressionInvalidEmails, opts)
}

// ListAllInvalidEmails returns every invalid email.
func (c *Client) ListAllInvalidEmails(ctx context.Context, opts *SuppressionListOptions) ([]Suppression, error) {
	return c.ListAllSuppressions(ctx, SuppressionInvalidEmails, opts)
}

// GetInvalidEmail returns the invalid email entries of one address.
func (c *Client) GetInvalidEmail(ctx context.Context, email string) ([]Suppression, error) {
	return c.GetSuppression(ctx, SuppressionInvalidEmails, email)
}

// DeleteInvalidEmail removes one address from the invalid email list.
func (c *Client) DeleteInvalidEmail(ctx context.Context, email string) error {
	return c.DeleteSuppression(ctx, SuppressionInvalidEmails, email)
}

// DeleteAllInvalidEmails empties the invalid email list.
func (c *Client) DeleteAllInvalidEmails(ctx context.Context) error {
	return c.DeleteAllSuppressions(ctx, SuppressionInvalidEmails)
}

// SuppressionLookup is where an address is suppressed. Lists the address
// is not on are absent.
type SuppressionLookup struct {
	Email string                            `json:"email"`
	Lists map[SuppressionList][]Suppression `json:"lists"`
}

// Suppressed reports whether the address is on any list.
func (l *SuppressionLookup) Suppressed() bool {
	return len(l.Lists) > 0
}

// LookupSuppressions checks the bounce, block, spam report and invalid
// email lists for email concurrently. A 404 from a list counts as not
// listed.
func (c *Client) LookupSuppressions(ctx context.Context, email string) (*SuppressionLookup, error) {
	if email == "" {
		return nil, errors.New("email is required")
	}

	results := make([][]Suppression, len(suppressionLists))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, list := range suppressionLists {
		g.Go(func() error {
			entries, err := c.GetSuppression(ctx, list, email)
			if errors.Is(err, rest.ErrNotFound) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("looking up %s: %w", list, err)
			}
			results[i] = entries
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	lookup := &SuppressionLookup{Email: email, Lists: make(map[SuppressionList][]Suppression)}
	for i, list := range suppressionLists {
		if len(results[i]) > 0 {
			lookup.Lists[list] = results[i]
		}
	}

	c.logger.Debug().
		Str("email", email).
		Int("lists", len(lookup.Lists)).
		Msg("suppression lookup complete")

	return lookup, nil
}
