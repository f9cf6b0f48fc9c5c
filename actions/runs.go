package actions

import (
	"context"
	"net/http"

	"github.com/s0up4200/clientele/rest"
)

// ListWorkflowRunsOptions filters the run listings.
type ListWorkflowRunsOptions struct {
	ListOptions
	// Actor is the login of the user who triggered the run.
	Actor  string
	Branch string
	Event  string
	// Status accepts a RunStatus or a Conclusion value.
	Status RunStatus
	// Created is a date range in search syntax, such as ">=2024-01-01".
	Created             string
	ExcludePullRequests bool
	CheckSuiteID        int64
	HeadSHA             string
}

func (o *ListWorkflowRunsOptions) query() *rest.Query {
	q := rest.NewQuery()
	if o == nil {
		return q
	}
	return o.ListOptions.apply(q).
		String("actor", o.Actor).
		String("branch", o.Branch).
		String("event", o.Event).
		String("status", string(o.Status)).
		String("created", o.Created).
		Bool("exclude_pull_requests", o.ExcludePullRequests).
		Int64("check_suite_id", o.CheckSuiteID).
		String("head_sha", o.HeadSHA)
}

// RerunOptions configures re-runs.
type RerunOptions struct {
	EnableDebugLogging bool `json:"enable_debug_logging,omitempty"`
}

// ListRepoWorkflowRuns lists runs of every workflow in a repository.
func (c *Client) ListRepoWorkflowRuns(ctx context.Context, owner, repo string, opts *ListWorkflowRunsOptions) (*WorkflowRunList, error) {
	path, err := repoPath(owner, repo, "/runs")
	if err != nil {
		return nil, err
	}

	var out WorkflowRunList
	if err := c.get(ctx, path, opts.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAllRepoWorkflowRuns follows pagination and returns every matching
// run of the repository. Page and PerPage in opts are ignored.
func (c *Client) ListAllRepoWorkflowRuns(ctx context.Context, owner, repo string, opts *ListWorkflowRunsOptions) ([]WorkflowRun, error) {
	path, err := repoPath(owner, repo, "/runs")
	if err != nil {
		return nil, err
	}
	return c.listAllRuns(ctx, path, opts)
}

// ListWorkflowRuns lists runs of one workflow.
func (c *Client) ListWorkflowRuns(ctx context.Context, owner, repo string, workflow WorkflowRef, opts *ListWorkflowRunsOptions) (*WorkflowRunList, error) {
	path, err := workflowPath(owner, repo, workflow, "/runs")
	if err != nil {
		return nil, err
	}

	var out WorkflowRunList
	if err := c.get(ctx, path, opts.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAllWorkflowRuns follows pagination and returns every matching run of
// one workflow. Page and PerPage in opts are ignored.
func (c *Client) ListAllWorkflowRuns(ctx context.Context, owner, repo string, workflow WorkflowRef, opts *ListWorkflowRunsOptions) ([]WorkflowRun, error) {
	path, err := workflowPath(owner, repo, workflow, "/runs")
	if err != nil {
		return nil, err
	}
	return c.listAllRuns(ctx, path, opts)
}

func (c *Client) listAllRuns(ctx context.Context, path string, opts *ListWorkflowRunsOptions) ([]WorkflowRun, error) {
	var filters ListWorkflowRunsOptions
	if opts != nil {
		filters = *opts
	}
	filters.ListOptions = ListOptions{PerPage: allPerPage}

	return rest.GetAllPages(ctx, c.rest, path, filters.query(), rest.Field[WorkflowRun]("workflow_runs"))
}

// GetWorkflowRun gets one run.
func (c *Client) GetWorkflowRun(ctx context.Context, owner, repo string, runID int64) (*WorkflowRun, error) {
	path, err := repoPath(owner, repo, "/runs/{run_id}", runID)
	if err != nil {
		return nil, err
	}

	var out WorkflowRun
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetWorkflowRunAttempt gets one attempt of a run.
func (c *Client) GetWorkflowRunAttempt(ctx context.Context, owner, repo string, runID int64, attempt int) (*WorkflowRun, error) {
	path, err := repoPath(owner, repo, "/runs/{run_id}/attempts/{attempt_number}", runID, attempt)
	if err != nil {
		return nil, err
	}

	var out WorkflowRun
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteWorkflowRun deletes a completed run.
func (c *Client) DeleteWorkflowRun(ctx context.Context, owner, repo string, runID int64) error {
	return c.runAction(ctx, http.MethodDelete, owner, repo, runID, "", nil)
}

// CancelWorkflowRun requests cancellation of a run.
func (c *Client) CancelWorkflowRun(ctx context.Context, owner, repo string, runID int64) error {
	return c.runAction(ctx, http.MethodPost, owner, repo, runID, "/cancel", nil)
}

// ForceCancelWorkflowRun cancels a run even if always() conditions would
// keep its jobs going.
func (c *Client) ForceCancelWorkflowRun(ctx context.Context, owner, repo string, runID int64) error {
	return c.runAction(ctx, http.MethodPost, owner, repo, runID, "/force-cancel", nil)
}

// RerunWorkflowRun re-runs every job of a run.
func (c *Client) RerunWorkflowRun(ctx context.Context, owner, repo string, runID int64, opts *RerunOptions) error {
	return c.runAction(ctx, http.MethodPost, owner, repo, runID, "/rerun", opts)
}

// RerunFailedJobs re-runs the failed jobs of a run and their dependents.
func (c *Client) RerunFailedJobs(ctx context.Context, owner, repo string, runID int64, opts *RerunOptions) error {
	return c.runAction(ctx, http.MethodPost, owner, repo, runID, "/rerun-failed-jobs", opts)
}

// ApproveWorkflowRun approves a run from a first-time contributor's fork.
func (c *Client) ApproveWorkflowRun(ctx context.Context, owner, repo string, runID int64) error {
	return c.runAction(ctx, http.MethodPost, owner, repo, runID, "/approve", nil)
}

// DeleteWorkflowRunLogs deletes the logs of a run.
func (c *Client) DeleteWorkflowRunLogs(ctx context.Context, owner, repo string, runID int64) error {
	return c.runAction(ctx, http.MethodDelete, owner, repo, runID, "/logs", nil)
}

// GetWorkflowRunUsage gets the billable time of a run.
func (c *Client) GetWorkflowRunUsage(ctx context.Context, owner, repo string, runID int64) (*RunUsage, error) {
	path, err := repoPath(owner, repo, "/runs/{run_id}/timing", runID)
	if err != nil {
		return nil, err
	}

	var out RunUsage
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) runAction(ctx context.Context, method, owner, repo string, runID int64, suffix string, opts *RerunOptions) error {
	path, err := repoPath(owner, repo, "/runs/{run_id}"+suffix, runID)
	if err != nil {
		return err
	}

	var body any
	if opts != nil {
		body = opts
	}

	_, err = c.rest.Do(ctx, method, path, nil, body, nil)
	return err
}
