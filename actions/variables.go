package actions

import (
	"context"

	"github.com/s0up4200/clientele/rest"
)

// ListRepoVariables lists repository variables. The API caps PerPage at 30.
func (c *Client) ListRepoVariables(ctx context.Context, owner, repo string, opts *ListOptions) (*VariableList, error) {
	path, err := repoPath(owner, repo, "/variables")
	if err != nil {
		return nil, err
	}

	var out VariableList
	if err := c.get(ctx, path, opts.apply(rest.NewQuery()), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRepoVariable gets one repository variable.
func (c *Client) GetRepoVariable(ctx context.Context, owner, repo, name string) (*Variable, error) {
	path, err := repoPath(owner, repo, "/variables/{name}", name)
	if err != nil {
		return nil, err
	}

	var out Variable
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type variableBody struct {
	Name  string `json:"name,omitempty"`
	Value string `json:"value"`
}

// CreateRepoVariable creates a repository variable. It fails with 409 if
// the name is taken.
func (c *Client) CreateRepoVariable(ctx context.Context, owner, repo string, v Variable) error {
	path, err := repoPath(owner, repo, "/variables")
	if err != nil {
		return err
	}
	return c.post(ctx, path, variableBody{Name: v.Name, Value: v.Value}, nil)
}

// UpdateRepoVariable sets the value of the variable called name. A non-empty
// v.Name renames it.
func (c *Client) UpdateRepoVariable(ctx context.Context, owner, repo, name string, v Variable) error {
	path, err := repoPath(owner, repo, "/variables/{name}", name)
	if err != nil {
		return err
	}
	return c.patch(ctx, path, variableBody{Name: v.Name, Value: v.Value})
}

// DeleteRepoVariable deletes a repository variable.
func (c *Client) DeleteRepoVariable(ctx context.Context, owner, repo, name string) error {
	path, err := repoPath(owner, repo, "/variables/{name}", name)
	if err != nil {
		return err
	}
	return c.delete(ctx, path, nil, nil)
}
