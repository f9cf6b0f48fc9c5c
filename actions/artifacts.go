package actions

import (
	"context"

	"github.com/s0up4200/clientele/rest"
)

// ListArtifactsOptions filters ListArtifacts.
type ListArtifactsOptions struct {
	ListOptions
	// Name matches artifacts by exact name.
	Name string
}

// ListArtifacts lists the artifacts of a repository.
func (c *Client) ListArtifacts(ctx context.Context, owner, repo string, opts *ListArtifactsOptions) (*ArtifactList, error) {
	path, err := repoPath(owner, repo, "/artifacts")
	if err != nil {
		return nil, err
	}

	q := rest.NewQuery()
	if opts != nil {
		opts.ListOptions.apply(q).String("name", opts.Name)
	}

	var out ArtifactList
	if err := c.get(ctx, path, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListWorkflowRunArtifacts lists the artifacts of one run.
func (c *Client) ListWorkflowRunArtifacts(ctx context.Context, owner, repo string, runID int64, opts *ListArtifactsOptions) (*ArtifactList, error) {
	path, err := repoPath(owner, repo, "/runs/{run_id}/artifacts", runID)
	if err != nil {
		return nil, err
	}

	q := rest.NewQuery()
	if opts != nil {
		opts.ListOptions.apply(q).String("name", opts.Name)
	}

	var out ArtifactList
	if err := c.get(ctx, path, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetArtifact gets one artifact.
func (c *Client) GetArtifact(ctx context.Context, owner, repo string, artifactID int64) (*Artifact, error) {
	path, err := repoPath(owner, repo, "/artifacts/{artifact_id}", artifactID)
	if err != nil {
		return nil, err
	}

	var out Artifact
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteArtifact deletes one artifact.
func (c *Client) DeleteArtifact(ctx context.Context, owner, repo string, artifactID int64) error {
	path, err := repoPath(owner, repo, "/artifacts/{artifact_id}", artifactID)
	if err != nil {
		return err
	}
	return c.delete(ctx, path, nil, nil)
}
