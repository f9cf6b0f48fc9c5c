package actions

import "time"

// User is the subset of a GitHub account returned inside Actions objects.
type User struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Type      string `json:"type,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	HTMLURL   string `json:"html_url,omitempty"`
}

// Repository is the minimal repository reference embedded in runs.
type Repository struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Private  bool   `json:"private"`
	HTMLURL  string `json:"html_url,omitempty"`
}

// Artifacts

// Artifact is a file bundle uploaded by a workflow run.
type Artifact struct {
	ID                 int64                `json:"id"`
	NodeID             string               `json:"node_id,omitempty"`
	Name               string               `json:"name"`
	SizeInBytes        int64                `json:"size_in_bytes"`
	URL                string               `json:"url,omitempty"`
	ArchiveDownloadURL string               `json:"archive_download_url,omitempty"`
	Expired            bool                 `json:"expired"`
	Digest             string               `json:"digest,omitempty"`
	CreatedAt          *time.Time           `json:"created_at,omitempty"`
	ExpiresAt          *time.Time           `json:"expires_at,omitempty"`
	UpdatedAt          *time.Time           `json:"updated_at,omitempty"`
	WorkflowRun        *ArtifactWorkflowRun `json:"workflow_run,omitempty"`
}

// ArtifactWorkflowRun identifies the run that produced an artifact.
type ArtifactWorkflowRun struct {
	ID               int64  `json:"id"`
	RepositoryID     int64  `json:"repository_id"`
	HeadRepositoryID int64  `json:"head_repository_id"`
	HeadBranch       string `json:"head_branch"`
	HeadSHA          string `json:"head_sha"`
}

// ArtifactList is one page of artifacts.
type ArtifactList struct {
	TotalCount int        `json:"total_count"`
	Artifacts  []Artifact `json:"artifacts"`
}

// Cache

// CacheUsage summarises the caches of one repository.
type CacheUsage struct {
	FullName                string `json:"full_name"`
	ActiveCachesSizeInBytes int64  `json:"active_caches_size_in_bytes"`
	ActiveCachesCount       int    `json:"active_caches_count"`
}

// Cache is one entry of the Actions cache.
type Cache struct {
	ID             int64      `json:"id"`
	Ref            string     `json:"ref"`
	Key            string     `json:"key"`
	Version        string     `json:"version"`
	SizeInBytes    int64      `json:"size_in_bytes"`
	LastAccessedAt *time.Time `json:"last_accessed_at,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

// CacheList is one page of caches.
type CacheList struct {
	TotalCount int     `json:"total_count"`
	Caches     []Cache `json:"actions_caches"`
}

// Permissions

// RepoPermissions is the Actions policy of a repository.
type RepoPermissions struct {
	Enabled            bool           `json:"enabled"`
	AllowedActions     AllowedActions `json:"allowed_actions,omitempty"`
	SelectedActionsURL string         `json:"selected_actions_url,omitempty"`
}

// Secrets and variables

// PublicKey is the libsodium public key secrets must be encrypted with.
type PublicKey struct {
	KeyID string `json:"key_id"`
	Key   string `json:"key"`
}

// Secret is the metadata of a stored secret. Values are never returned.
type Secret struct {
	Name                    string     `json:"name"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
	Visibility              Visibility `json:"visibility,omitempty"`
	SelectedRepositoriesURL string     `json:"selected_repositories_url,omitempty"`
}

// SecretList is one page of secrets.
type SecretList struct {
	TotalCount int      `json:"total_count"`
	Secrets    []Secret `json:"secrets"`
}

// EncryptedSecret is the request body for creating or updating a secret.
// Build one with EncryptSecret.
type EncryptedSecret struct {
	Name                  string     `json:"-"`
	KeyID                 string     `json:"key_id"`
	EncryptedValue        string     `json:"encrypted_value"`
	Visibility            Visibility `json:"visibility,omitempty"`
	SelectedRepositoryIDs []int64    `json:"selected_repository_ids,omitempty"`
}

// Variable is a plain-text configuration variable.
type Variable struct {
	Name      string     `json:"name"`
	Value     string     `json:"value"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// VariableList is one page of variables.
type VariableList struct {
	TotalCount int        `json:"total_count"`
	Variables  []Variable `json:"variables"`
}

// Workflows

// Workflow is a workflow file in .github/workflows.
type Workflow struct {
	ID        int64         `json:"id"`
	NodeID    string        `json:"node_id,omitempty"`
	Name      string        `json:"name"`
	Path      string        `json:"path"`
	State     WorkflowState `json:"state"`
	CreatedAt *time.Time    `json:"created_at,omitempty"`
	UpdatedAt *time.Time    `json:"updated_at,omitempty"`
	URL       string        `json:"url,omitempty"`
	HTMLURL   string        `json:"html_url,omitempty"`
	BadgeURL  string        `json:"badge_url,omitempty"`
}

// WorkflowList is one page of workflows.
type WorkflowList struct {
	TotalCount int        `json:"total_count"`
	Workflows  []Workflow `json:"workflows"`
}

// WorkflowUsage is the billable time of a workflow in the current cycle,
// keyed by runner OS (UBUNTU, MACOS, WINDOWS).
type WorkflowUsage struct {
	Billable map[string]WorkflowBill `json:"billable"`
}

// WorkflowBill is billable time on one runner OS.
type WorkflowBill struct {
	TotalMS int64 `json:"total_ms"`
}

// WorkflowDispatch triggers a workflow_dispatch event.
type WorkflowDispatch struct {
	Ref    string         `json:"ref"`
	Inputs map[string]any `json:"inputs,omitempty"`
}

// Workflow runs

// WorkflowRun is one execution of a workflow.
type WorkflowRun struct {
	ID                 int64            `json:"id"`
	Name               string           `json:"name"`
	NodeID             string           `json:"node_id,omitempty"`
	DisplayTitle       string           `json:"display_title,omitempty"`
	HeadBranch         string           `json:"head_branch"`
	HeadSHA            string           `json:"head_sha"`
	Path               string           `json:"path,omitempty"`
	RunNumber          int              `json:"run_number"`
	RunAttempt         int              `json:"run_attempt"`
	Event              string           `json:"event"`
	Status             RunStatus        `json:"status"`
	Conclusion         Conclusion       `json:"conclusion,omitempty"`
	WorkflowID         int64            `json:"workflow_id"`
	CheckSuiteID       int64            `json:"check_suite_id,omitempty"`
	URL                string           `json:"url,omitempty"`
	HTMLURL            string           `json:"html_url,omitempty"`
	JobsURL            string           `json:"jobs_url,omitempty"`
	LogsURL            string           `json:"logs_url,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
	RunStartedAt       *time.Time       `json:"run_started_at,omitempty"`
	Actor              *User            `json:"actor,omitempty"`
	TriggeringActor    *User            `json:"triggering_actor,omitempty"`
	Repository         *Repository      `json:"repository,omitempty"`
	HeadCommit         *HeadCommit      `json:"head_commit,omitempty"`
	PullRequests       []PullRequestRef `json:"pull_requests,omitempty"`
	ReferencedFlows    []ReferencedFlow `json:"referenced_workflows,omitempty"`
	PreviousAttemptURL string           `json:"previous_attempt_url,omitempty"`
}

// HeadCommit is the commit a run was triggered for.
type HeadCommit struct {
	ID        string     `json:"id"`
	TreeID    string     `json:"tree_id,omitempty"`
	Message   string     `json:"message"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Author    *GitActor  `json:"author,omitempty"`
	Committer *GitActor  `json:"committer,omitempty"`
}

// GitActor is a commit author or committer.
type GitActor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PullRequestRef links a run to a pull request.
type PullRequestRef struct {
	ID     int64  `json:"id"`
	Number int    `json:"number"`
	URL    string `json:"url,omitempty"`
}

// ReferencedFlow is a reusable workflow called by a run.
type ReferencedFlow struct {
	Path string `json:"path"`
	SHA  string `json:"sha"`
	Ref  string `json:"ref,omitempty"`
}

// WorkflowRunList is one page of runs.
type WorkflowRunList struct {
	TotalCount   int           `json:"total_count"`
	WorkflowRuns []WorkflowRun `json:"workflow_runs"`
}

// RunUsage is the billable time and total duration of a run.
type RunUsage struct {
	Billable      map[string]RunBill `json:"billable"`
	RunDurationMS int64              `json:"run_duration_ms"`
}

// RunBill is billable time of a run on one runner OS.
type RunBill struct {
	TotalMS int64        `json:"total_ms"`
	Jobs    int          `json:"jobs"`
	JobRuns []JobRunTime `json:"job_runs,omitempty"`
}

// JobRunTime is the duration of one job inside RunBill.
type JobRunTime struct {
	JobID      int64 `json:"job_id"`
	DurationMS int64 `json:"duration_ms"`
}

// Jobs

// Job is one job of a workflow run.
type Job struct {
	ID              int64      `json:"id"`
	RunID           int64      `json:"run_id"`
	RunURL          string     `json:"run_url,omitempty"`
	RunAttempt      int        `json:"run_attempt,omitempty"`
	NodeID          string     `json:"node_id,omitempty"`
	HeadSHA         string     `json:"head_sha"`
	HeadBranch      string     `json:"head_branch,omitempty"`
	URL             string     `json:"url,omitempty"`
	HTMLURL         string     `json:"html_url,omitempty"`
	Status          RunStatus  `json:"status"`
	Conclusion      Conclusion `json:"conclusion,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	Name            string     `json:"name"`
	Steps           []Step     `json:"steps,omitempty"`
	Labels          []string   `json:"labels"`
	RunnerID        int64      `json:"runner_id,omitempty"`
	RunnerName      string     `json:"runner_name,omitempty"`
	RunnerGroupID   int64      `json:"runner_group_id,omitempty"`
	RunnerGroupName string     `json:"runner_group_name,omitempty"`
	WorkflowName    string     `json:"workflow_name,omitempty"`
}

// Step is one step of a job.
type Step struct {
	Name        string     `json:"name"`
	Status      RunStatus  `json:"status"`
	Conclusion  Conclusion `json:"conclusion,omitempty"`
	Number      int        `json:"number"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// JobList is one page of jobs.
type JobList struct {
	TotalCount int   `json:"total_count"`
	Jobs       []Job `json:"jobs"`
}

// Runners

// Runner is a self-hosted runner.
type Runner struct {
	ID     int64         `json:"id"`
	Name   string        `json:"name"`
	OS     string        `json:"os"`
	Status RunnerStatus  `json:"status"`
	Busy   bool          `json:"busy"`
	Labels []RunnerLabel `json:"labels"`
}

// RunnerLabel is a label attached to a runner.
type RunnerLabel struct {
	ID   int64     `json:"id,omitempty"`
	Name string    `json:"name"`
	Type LabelType `json:"type,omitempty"`
}

// RunnerList is one page of runners.
type RunnerList struct {
	TotalCount int      `json:"total_count"`
	Runners    []Runner `json:"runners"`
}

// RunnerLabelList is the full label set of a runner.
type RunnerLabelList struct {
	TotalCount int           `json:"total_count"`
	Labels     []RunnerLabel `json:"labels"`
}

// RunnerApplication is a downloadable runner build.
type RunnerApplication struct {
	OS                string `json:"os"`
	Architecture      string `json:"architecture"`
	DownloadURL       string `json:"download_url"`
	Filename          string `json:"filename"`
	TempDownloadToken string `json:"temp_download_token,omitempty"`
	SHA256Checksum    string `json:"sha256_checksum,omitempty"`
}

// RegistrationToken registers or removes a runner. It expires after an
// hour.
type RegistrationToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
