package actions

import "context"

// API is the subset of Client the CLI depends on.
type API interface {
	ListWorkflows(ctx context.Context, owner, repo string, opts *ListOptions) (*WorkflowList, error)
	CreateWorkflowDispatch(ctx context.Context, owner, repo string, workflow WorkflowRef, dispatch WorkflowDispatch) error

	ListRepoWorkflowRuns(ctx context.Context, owner, repo string, opts *ListWorkflowRunsOptions) (*WorkflowRunList, error)
	ListAllRepoWorkflowRuns(ctx context.Context, owner, repo string, opts *ListWorkflowRunsOptions) ([]WorkflowRun, error)
	GetWorkflowRun(ctx context.Context, owner, repo string, runID int64) (*WorkflowRun, error)
	CancelWorkflowRun(ctx context.Context, owner, repo string, runID int64) error
	RerunWorkflowRun(ctx context.Context, owner, repo string, runID int64, opts *RerunOptions) error
	RerunFailedJobs(ctx context.Context, owner, repo string, runID int64, opts *RerunOptions) error

	ListAllWorkflowRunJobs(ctx context.Context, owner, repo string, runID int64, filter JobFilter) ([]Job, error)
	ListJobsForRuns(ctx context.Context, owner, repo string, runIDs []int64) (map[int64][]Job, error)

	ListRepoRunners(ctx context.Context, owner, repo string, opts *ListRunnersOptions) (*RunnerList, error)
	ListAllOrgRunners(ctx context.Context, org string) ([]Runner, error)

	GetRepoPublicKey(ctx context.Context, owner, repo string) (*PublicKey, error)
	CreateOrUpdateRepoSecret(ctx context.Context, owner, repo string, secret *EncryptedSecret) error
}

var _ API = (*Client)(nil)
