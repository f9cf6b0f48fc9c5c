package sendgrid

import (
	"context"
	"errors"

	"github.com/s0up4200/clientele/rest"
)

// Subuser is a subuser of the parent account.
type Subuser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Disabled bool   `json:"disabled"`
}

// NewSubuser is the body of CreateSubuser.
type NewSubuser struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	IPs      []string `json:"ips"`
	// Region is "global" or "eu".
	Region string `json:"region,omitempty"`
}

// CreatedSubuser is the result of CreateSubuser.
type CreatedSubuser struct {
	Username string `json:"username"`
	UserID   int64  `json:"user_id"`
	Email    string `json:"email"`
	Region   string `json:"region,omitempty"`
}

// ListSubusersOptions filters ListSubusers.
type ListSubusersOptions struct {
	ListOptions
	Username string
}

// ListSubusers lists subusers.
func (c *Client) ListSubusers(ctx context.Context, opts *ListSubusersOptions) ([]Subuser, error) {
	q := rest.NewQuery()
	if opts != nil {
		opts.ListOptions.apply(q).String("username", opts.Username)
	}

	var out []Subuser
	if err := c.rest.Get(ctx, "/v3/subusers", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSubuser creates a subuser. At least one IP address is required.
func (c *Client) CreateSubuser(ctx context.Context, sub NewSubuser) (*CreatedSubuser, error) {
	if sub.Username == "" || sub.Email == "" || sub.Password == "" {
		return nil, errors.New("subuser username, email and password are required")
	}
	if len(sub.IPs) == 0 {
		return nil, errors.New("subuser needs at least one ip")
	}

	var out CreatedSubuser
	if err := c.rest.Post(ctx, "/v3/subusers", nil, sub, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSubuser deletes a subuser.
func (c *Client) DeleteSubuser(ctx context.Context, username string) error {
	path, err := rest.Path("/v3/subusers/{subuser_name}", username)
	if err != nil {
		return err
	}
	return c.rest.Delete(ctx, path, nil, nil, nil)
}

// SetSubuserDisabled enables or disables a subuser.
func (c *Client) SetSubuserDisabled(ctx context.Context, username string, disabled bool) error {
	path, err := rest.Path("/v3/subusers/{subuser_name}", username)
	if err != nil {
		return err
	}

	body := struct {
		Disabled bool `json:"disabled"`
	}{disabled}
	return c.rest.Patch(ctx, path, nil, body, nil)
}
