package sendgrid

import (
	"context"
	"errors"

	"github.com/s0up4200/clientele/rest"
)

// APIKey describes an API key. The secret itself is only returned once,
// by CreateAPIKey.
type APIKey struct {
	ID     string   `json:"api_key_id"`
	Name   string   `json:"name"`
	Scopes []string `json:"scopes,omitempty"`
}

// CreatedAPIKey is a new key together with its secret.
type CreatedAPIKey struct {
	APIKey
	Key string `json:"api_key"`
}

func apiKeyPath(id string) (string, error) {
	return rest.Path("/v3/api_keys/{api_key_id}", id)
}

// ListAPIKeys lists the keys of the account. limit of zero returns the
// API's default page.
func (c *Client) ListAPIKeys(ctx context.Context, limit int) ([]APIKey, error) {
	var out struct {
		Result []APIKey `json:"result"`
	}
	if err := c.rest.Get(ctx, "/v3/api_keys", rest.NewQuery().Int("limit", limit), &out); err != nil {
		return nil, err
	}
	return out.Result, nil
}

// CreateAPIKey creates a key. Without scopes the key gets full access.
func (c *Client) CreateAPIKey(ctx context.Context, name string, scopes ...string) (*CreatedAPIKey, error) {
	if name == "" {
		return nil, errors.New("api key name is required")
	}

	body := struct {
		Name   string   `json:"name"`
		Scopes []string `json:"scopes,omitempty"`
	}{name, scopes}

	var out CreatedAPIKey
	if err := c.rest.Post(ctx, "/v3/api_keys", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAPIKey gets a key with its scopes.
func (c *Client) GetAPIKey(ctx context.Context, id string) (*APIKey, error) {
	path, err := apiKeyPath(id)
	if err != nil {
		return nil, err
	}

	var out APIKey
	if err := c.rest.Get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAPIKeyName renames a key.
func (c *Client) UpdateAPIKeyName(ctx context.Context, id, name string) (*APIKey, error) {
	path, err := apiKeyPath(id)
	if err != nil {
		return nil, err
	}

	body := struct {
		Name string `json:"name"`
	}{name}

	var out APIKey
	if err := c.rest.Patch(ctx, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAPIKey revokes a key.
func (c *Client) DeleteAPIKey(ctx context.Context, id string) error {
	path, err := apiKeyPath(id)
	if err != nil {
		return err
	}
	return c.rest.Delete(ctx, path, nil, nil, nil)
}
