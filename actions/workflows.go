package actions

import (
	"context"
	"strconv"

	"github.com/s0up4200/clientele/rest"
)

// WorkflowRef names a workflow either by numeric ID or by file name
// (for example "ci.yml"). The API accepts both wherever a workflow_id is
// expected.
type WorkflowRef string

// WorkflowByID refers to a workflow by its numeric ID.
func WorkflowByID(id int64) WorkflowRef {
	return WorkflowRef(strconv.FormatInt(id, 10))
}

// WorkflowByFile refers to a workflow by its file name.
func WorkflowByFile(name string) WorkflowRef {
	return WorkflowRef(name)
}

func workflowPath(owner, repo string, workflow WorkflowRef, suffix string) (string, error) {
	return repoPath(owner, repo, "/workflows/{workflow_id}"+suffix, string(workflow))
}

// ListWorkflows lists the workflows of a repository.
func (c *Client) ListWorkflows(ctx context.Context, owner, repo string, opts *ListOptions) (*WorkflowList, error) {
	path, err := repoPath(owner, repo, "/workflows")
	if err != nil {
		return nil, err
	}

	var out WorkflowList
	if err := c.get(ctx, path, opts.apply(rest.NewQuery()), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetWorkflow gets one workflow.
func (c *Client) GetWorkflow(ctx context.Context, owner, repo string, workflow WorkflowRef) (*Workflow, error) {
	path, err := workflowPath(owner, repo, workflow, "")
	if err != nil {
		return nil, err
	}

	var out Workflow
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DisableWorkflow sets a workflow's state to disabled_manually.
func (c *Client) DisableWorkflow(ctx context.Context, owner, repo string, workflow WorkflowRef) error {
	path, err := workflowPath(owner, repo, workflow, "/disable")
	if err != nil {
		return err
	}
	return c.put(ctx, path, nil, nil)
}

// EnableWorkflow sets a workflow's state to active.
func (c *Client) EnableWorkflow(ctx context.Context, owner, repo string, workflow WorkflowRef) error {
	path, err := workflowPath(owner, repo, workflow, "/enable")
	if err != nil {
		return err
	}
	return c.put(ctx, path, nil, nil)
}

// CreateWorkflowDispatch triggers a workflow that has a workflow_dispatch
// trigger. The API answers 204 and does not return the new run.
func (c *Client) CreateWorkflowDispatch(ctx context.Context, owner, repo string, workflow WorkflowRef, dispatch WorkflowDispatch) error {
	path, err := workflowPath(owner, repo, workflow, "/dispatches")
	if err != nil {
		return err
	}
	return c.post(ctx, path, dispatch, nil)
}

// GetWorkflowUsage gets the billable minutes a workflow used this cycle.
func (c *Client) GetWorkflowUsage(ctx context.Context, owner, repo string, workflow WorkflowRef) (*WorkflowUsage, error) {
	path, err := workflowPath(owner, repo, workflow, "/timing")
	if err != nil {
		return nil, err
	}

	var out WorkflowUsage
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
