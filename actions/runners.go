package actions

import (
	"context"

	"github.com/s0up4200/clientele/rest"
)

// ListRunnersOptions filters the runner listings.
type ListRunnersOptions struct {
	ListOptions
	Name string
}

func (o *ListRunnersOptions) query() *rest.Query {
	q := rest.NewQuery()
	if o == nil {
		return q
	}
	return o.ListOptions.apply(q).String("name", o.Name)
}

// ListRepoRunners lists the self-hosted runners of a repository.
func (c *Client) ListRepoRunners(ctx context.Context, owner, repo string, opts *ListRunnersOptions) (*RunnerList, error) {
	path, err := repoPath(owner, repo, "/runners")
	if err != nil {
		return nil, err
	}

	var out RunnerList
	if err := c.get(ctx, path, opts.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListOrgRunners lists the self-hosted runners of an organization.
func (c *Client) ListOrgRunners(ctx context.Context, org string, opts *ListRunnersOptions) (*RunnerList, error) {
	path, err := orgPath(org, "/runners")
	if err != nil {
		return nil, err
	}

	var out RunnerList
	if err := c.get(ctx, path, opts.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAllOrgRunners follows pagination and returns every runner of an
// organization.
func (c *Client) ListAllOrgRunners(ctx context.Context, org string) ([]Runner, error) {
	path, err := orgPath(org, "/runners")
	if err != nil {
		return nil, err
	}

	opts := &ListRunnersOptions{ListOptions: ListOptions{PerPage: allPerPage}}
	return rest.GetAllPages(ctx, c.rest, path, opts.query(), rest.Field[Runner]("runners"))
}

// GetRepoRunner gets one repository runner.
func (c *Client) GetRepoRunner(ctx context.Context, owner, repo string, runnerID int64) (*Runner, error) {
	path, err := repoPath(owner, repo, "/runners/{runner_id}", runnerID)
	if err != nil {
		return nil, err
	}

	var out Runner
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRepoRunner force-removes a runner from a repository.
func (c *Client) DeleteRepoRunner(ctx context.Context, owner, repo string, runnerID int64) error {
	path, err := repoPath(owner, repo, "/runners/{runner_id}", runnerID)
	if err != nil {
		return err
	}
	return c.delete(ctx, path, nil, nil)
}

// ListRunnerApplications lists the runner builds available for download.
func (c *Client) ListRunnerApplications(ctx context.Context, owner, repo string) ([]RunnerApplication, error) {
	path, err := repoPath(owner, repo, "/runners/downloads")
	if err != nil {
		return nil, err
	}

	var out []RunnerApplication
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateRepoRegistrationToken creates a token for config.sh on a
// repository runner.
func (c *Client) CreateRepoRegistrationToken(ctx context.Context, owner, repo string) (*RegistrationToken, error) {
	path, err := repoPath(owner, repo, "/runners/registration-token")
	if err != nil {
		return nil, err
	}
	return c.createToken(ctx, path)
}

// CreateRepoRemoveToken creates a token for config.sh remove.
func (c *Client) CreateRepoRemoveToken(ctx context.Context, owner, repo string) (*RegistrationToken, error) {
	path, err := repoPath(owner, repo, "/runners/remove-token")
	if err != nil {
		return nil, err
	}
	return c.createToken(ctx, path)
}

// CreateOrgRegistrationToken creates a token for config.sh on an
// organization runner.
func (c *Client) CreateOrgRegistrationToken(ctx context.Context, org string) (*RegistrationToken, error) {
	path, err := orgPath(org, "/runners/registration-token")
	if err != nil {
		return nil, err
	}
	return c.createToken(ctx, path)
}

func (c *Client) createToken(ctx context.Context, path string) (*RegistrationToken, error) {
	var out RegistrationToken
	if err := c.post(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRunnerLabels lists the labels of a repository runner.
func (c *Client) ListRunnerLabels(ctx context.Context, owner, repo string, runnerID int64) (*RunnerLabelList, error) {
	path, err := repoPath(owner, repo, "/runners/{runner_id}/labels", runnerID)
	if err != nil {
		return nil, err
	}

	var out RunnerLabelList
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type labelsBody struct {
	Labels []string `json:"labels"`
}

// AddRunnerLabels adds custom labels and returns the runner's full label
// set.
func (c *Client) AddRunnerLabels(ctx context.Context, owner, repo string, runnerID int64, labels []string) (*RunnerLabelList, error) {
	path, err := repoPath(owner, repo, "/runners/{runner_id}/labels", runnerID)
	if err != nil {
		return nil, err
	}

	var out RunnerLabelList
	if err := c.post(ctx, path, labelsBody{Labels: labels}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetRunnerLabels replaces all custom labels. An empty slice removes them.
func (c *Client) SetRunnerLabels(ctx context.Context, owner, repo string, runnerID int64, labels []string) (*RunnerLabelList, error) {
	path, err := repoPath(owner, repo, "/runners/{runner_id}/labels", runnerID)
	if err != nil {
		return nil, err
	}
	if labels == nil {
		labels = []string{}
	}

	var out RunnerLabelList
	if err := c.put(ctx, path, labelsBody{Labels: labels}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveRunnerLabel removes one custom label and returns the remaining set.
func (c *Client) RemoveRunnerLabel(ctx context.Context, owner, repo string, runnerID int64, label string) (*RunnerLabelList, error) {
	path, err := repoPath(owner, repo, "/runners/{runner_id}/labels/{name}", runnerID, label)
	if err != nil {
		return nil, err
	}

	var out RunnerLabelList
	if err := c.delete(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
