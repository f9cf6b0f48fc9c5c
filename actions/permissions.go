package actions

import "context"

// GetRepoPermissions gets whether Actions is enabled for a repository and
// which actions it may run.
func (c *Client) GetRepoPermissions(ctx context.Context, owner, repo string) (*RepoPermissions, error) {
	path, err := repoPath(owner, repo, "/permissions")
	if err != nil {
		return nil, err
	}

	var out RepoPermissions
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetRepoPermissions replaces the Actions policy of a repository.
// SelectedActionsURL is read-only and ignored.
func (c *Client) SetRepoPermissions(ctx context.Context, owner, repo string, perms RepoPermissions) error {
	path, err := repoPath(owner, repo, "/permissions")
	if err != nil {
		return err
	}

	body := struct {
		Enabled        bool           `json:"enabled"`
		AllowedActions AllowedActions `json:"allowed_actions,omitempty"`
	}{perms.Enabled, perms.AllowedActions}

	return c.put(ctx, path, body, nil)
}
