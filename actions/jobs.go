package actions

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/clientele/rest"
)

// DefaultConcurrency is how many requests ListJobsForRuns keeps in flight
// unless SetConcurrency says otherwise.
const DefaultConcurrency = 4

// ListWorkflowRunJobsOptions filters ListWorkflowRunJobs.
type ListWorkflowRunJobsOptions struct {
	ListOptions
	// Filter defaults to latest on the server side.
	Filter JobFilter
}

func (o *ListWorkflowRunJobsOptions) query() *rest.Query {
	q := rest.NewQuery()
	if o == nil {
		return q
	}
	return o.ListOptions.apply(q).String("filter", string(o.Filter))
}

// ListWorkflowRunJobs lists the jobs of a run.
func (c *Client) ListWorkflowRunJobs(ctx context.Context, owner, repo string, runID int64, opts *ListWorkflowRunJobsOptions) (*JobList, error) {
	path, err := repoPath(owner, repo, "/runs/{run_id}/jobs", runID)
	if err != nil {
		return nil, err
	}

	var out JobList
	if err := c.get(ctx, path, opts.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAllWorkflowRunJobs follows pagination and returns every job of a run.
func (c *Client) ListAllWorkflowRunJobs(ctx context.Context, owner, repo string, runID int64, filter JobFilter) ([]Job, error) {
	path, err := repoPath(owner, repo, "/runs/{run_id}/jobs", runID)
	if err != nil {
		return nil, err
	}

	opts := &ListWorkflowRunJobsOptions{ListOptions: ListOptions{PerPage: allPerPage}, Filter: filter}
	return rest.GetAllPages(ctx, c.rest, path, opts.query(), rest.Field[Job]("jobs"))
}

// ListWorkflowRunAttemptJobs lists the jobs of one attempt of a run.
func (c *Client) ListWorkflowRunAttemptJobs(ctx context.Context, owner, repo string, runID int64, attempt int, opts *ListOptions) (*JobList, error) {
	path, err := repoPath(owner, repo, "/runs/{run_id}/attempts/{attempt_number}/jobs", runID, attempt)
	if err != nil {
		return nil, err
	}

	var out JobList
	if err := c.get(ctx, path, opts.apply(rest.NewQuery()), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetJob gets one job.
func (c *Client) GetJob(ctx context.Context, owner, repo string, jobID int64) (*Job, error) {
	path, err := repoPath(owner, repo, "/jobs/{job_id}", jobID)
	if err != nil {
		return nil, err
	}

	var out Job
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RerunJob re-runs one job and the jobs that depend on it.
func (c *Client) RerunJob(ctx context.Context, owner, repo string, jobID int64, opts *RerunOptions) error {
	path, err := repoPath(owner, repo, "/jobs/{job_id}/rerun", jobID)
	if err != nil {
		return err
	}

	var body any
	if opts != nil {
		body = opts
	}
	return c.post(ctx, path, body, nil)
}

// ListJobsForRuns fetches the latest jobs of every run in runIDs
// concurrently and returns them keyed by run ID. The first failure cancels
// the remaining requests and is returned.
func (c *Client) ListJobsForRuns(ctx context.Context, owner, repo string, runIDs []int64) (map[int64][]Job, error) {
	result := make(map[int64][]Job, len(runIDs))
	if len(runIDs) == 0 {
		return result, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	var mu sync.Mutex

	for _, runID := range runIDs {
		g.Go(func() error {
			jobs, err := c.ListAllWorkflowRunJobs(ctx, owner, repo, runID, JobFilterLatest)
			if err != nil {
				return fmt.Errorf("listing jobs for run %d: %w", runID, err)
			}

			mu.Lock()
			result[runID] = jobs
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("runs", len(runIDs)).
		Str("repo", owner+"/"+repo).
		Msg("Fetched jobs for workflow runs")

	return result, nil
}
