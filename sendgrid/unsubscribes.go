package sendgrid

import (
	"context"
	"errors"
	"strconv"

	"github.com/s0up4200/clientele/rest"
)

// Group is an unsubscribe (ASM) group.
type Group struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	IsDefault    bool   `json:"is_default"`
	Unsubscribes int    `json:"unsubscribes,omitempty"`
}

type recipientEmails struct {
	RecipientEmails []string `json:"recipient_emails"`
}

// ListGlobalUnsubscribes returns one page of globally unsubscribed
// addresses.
func (c *Client) ListGlobalUnsubscribes(ctx context.Context, opts *SuppressionListOptions) ([]Suppression, error) {
	var out []Suppression
	if err := c.rest.Get(ctx, "/v3/suppression/unsubscribes", opts.query(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddGlobalUnsubscribes unsubscribes addresses from every email and
// returns the addresses added.
func (c *Client) AddGlobalUnsubscribes(ctx context.Context, emails []string) ([]string, error) {
	if len(emails) == 0 {
		return nil, errors.New("at least one email is required")
	}

	var out recipientEmails
	if err := c.rest.Post(ctx, "/v3/asm/suppressions/global", nil, recipientEmails{emails}, &out); err != nil {
		return nil, err
	}
	return out.RecipientEmails, nil
}

// DeleteGlobalUnsubscribe resubscribes an address.
func (c *Client) DeleteGlobalUnsubscribe(ctx context.Context, email string) error {
	path, err := rest.Path("/v3/asm/suppressions/global/{email}", email)
	if err != nil {
		return err
	}
	return c.rest.Delete(ctx, path, nil, nil, nil)
}

// ListGroups lists unsubscribe groups, or only those with the given IDs.
func (c *Client) ListGroups(ctx context.Context, ids ...int64) ([]Group, error) {
	strIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		strIDs = append(strIDs, strconv.FormatInt(id, 10))
	}
	q := rest.NewQuery().Strings("id", strIDs)

	var out []Group
	if err := c.rest.Get(ctx, "/v3/asm/groups", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func groupPath(id int64, suffix string, params ...any) (string, error) {
	return rest.Path("/v3/asm/groups/{group_id}"+suffix, append([]any{id}, params...)...)
}

// GetGroup gets an unsubscribe group.
func (c *Client) GetGroup(ctx context.Context, id int64) (*Group, error) {
	path, err := groupPath(id, "")
	if err != nil {
		return nil, err
	}

	var out Group
	if err := c.rest.Get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type groupBody struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	IsDefault   *bool  `json:"is_default,omitempty"`
}

// CreateGroup creates an unsubscribe group.
func (c *Client) CreateGroup(ctx context.Context, group Group) (*Group, error) {
	if group.Name == "" {
		return nil, errors.New("group name is required")
	}

	body := groupBody{Name: group.Name, Description: group.Description, IsDefault: &group.IsDefault}

	var out Group
	if err := c.rest.Post(ctx, "/v3/asm/groups", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateGroup updates the name, description and default flag of a group.
func (c *Client) UpdateGroup(ctx context.Context, id int64, group Group) (*Group, error) {
	path, err := groupPath(id, "")
	if err != nil {
		return nil, err
	}

	body := groupBody{Name: group.Name, Description: group.Description, IsDefault: &group.IsDefault}

	var out Group
	if err := c.rest.Patch(ctx, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteGroup deletes an unsubscribe group. Its suppressions move to the
// global unsubscribe list.
func (c *Client) DeleteGroup(ctx context.Context, id int64) error {
	path, err := groupPath(id, "")
	if err != nil {
		return err
	}
	return c.rest.Delete(ctx, path, nil, nil, nil)
}

// ListGroupSuppressions lists the addresses unsubscribed from a group.
func (c *Client) ListGroupSuppressions(ctx context.Context, id int64) ([]string, error) {
	path, err := groupPath(id, "/suppressions")
	if err != nil {
		return nil, err
	}

	var out []string
	if err := c.rest.Get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddGroupSuppressions unsubscribes addresses from a group and returns the
// addresses added.
func (c *Client) AddGroupSuppressions(ctx context.Context, id int64, emails []string) ([]string, error) {
	if len(emails) == 0 {
		return nil, errors.New("at least one email is required")
	}

	path, err := groupPath(id, "/suppressions")
	if err != nil {
		return nil, err
	}

	var out recipientEmails
	if err := c.rest.Post(ctx, path, nil, recipientEmails{emails}, &out); err != nil {
		return nil, err
	}
	return out.RecipientEmails, nil
}

// DeleteGroupSuppression resubscribes an address to a group.
func (c *Client) DeleteGroupSuppression(ctx context.Context, id int64, email string) error {
	path, err := groupPath(id, "/suppressions/{email}", email)
	if err != nil {
		return err
	}
	return c.rest.Delete(ctx, path, nil, nil, nil)
}
