package actions

// The string types below are open enums: values GitHub adds later decode
// verbatim and round-trip unchanged. Known reports whether a value is one
// of the constants documented here.

// RunStatus is the status of a workflow run or job. It also serves as the
// status filter of ListRepoWorkflowRuns, where conclusions are accepted too.
type RunStatus string

const (
	RunStatusQueued     RunStatus = "queued"
	RunStatusInProgress RunStatus = "in_progress"
	RunStatusCompleted  RunStatus = "completed"
	RunStatusWaiting    RunStatus = "waiting"
	RunStatusRequested  RunStatus = "requested"
	RunStatusPending    RunStatus = "pending"
)

// Known reports whether s is a documented status.
func (s RunStatus) Known() bool {
	switch s {
	case RunStatusQueued, RunStatusInProgress, RunStatusCompleted,
		RunStatusWaiting, RunStatusRequested, RunStatusPending:
		return true
	}
	return false
}

// Conclusion is the outcome of a completed run, job or step.
type Conclusion string

const (
	ConclusionSuccess        Conclusion = "success"
	ConclusionFailure        Conclusion = "failure"
	ConclusionNeutral        Conclusion = "neutral"
	ConclusionCancelled      Conclusion = "cancelled"
	ConclusionSkipped        Conclusion = "skipped"
	ConclusionTimedOut       Conclusion = "timed_out"
	ConclusionActionRequired Conclusion = "action_required"
	ConclusionStale          Conclusion = "stale"
	ConclusionStartupFailure Conclusion = "startup_failure"
)

// Known reports whether c is a documented conclusion.
func (c Conclusion) Known() bool {
	switch c {
	case ConclusionSuccess, ConclusionFailure, ConclusionNeutral, ConclusionCancelled,
		ConclusionSkipped, ConclusionTimedOut, ConclusionActionRequired, ConclusionStale,
		ConclusionStartupFailure:
		return true
	}
	return false
}

// WorkflowState is the state of a workflow file.
type WorkflowState string

const (
	WorkflowStateActive             WorkflowState = "active"
	WorkflowStateDeleted            WorkflowState = "deleted"
	WorkflowStateDisabledFork       WorkflowState = "disabled_fork"
	WorkflowStateDisabledInactivity WorkflowState = "disabled_inactivity"
	WorkflowStateDisabledManually   WorkflowState = "disabled_manually"
)

// Known reports whether s is a documented workflow state.
func (s WorkflowState) Known() bool {
	switch s {
	case WorkflowStateActive, WorkflowStateDeleted, WorkflowStateDisabledFork,
		WorkflowStateDisabledInactivity, WorkflowStateDisabledManually:
		return true
	}
	return false
}

// RunnerStatus is the connection state of a self-hosted runner.
type RunnerStatus string

const (
	RunnerStatusOnline  RunnerStatus = "online"
	RunnerStatusOffline RunnerStatus = "offline"
)

// Known reports whether s is a documented runner status.
func (s RunnerStatus) Known() bool {
	return s == RunnerStatusOnline || s == RunnerStatusOffline
}

// AllowedActions controls which actions a repository may run.
type AllowedActions string

const (
	AllowedActionsAll      AllowedActions = "all"
	AllowedActionsLocal    AllowedActions = "local_only"
	AllowedActionsSelected AllowedActions = "selected"
)

// Known reports whether a is a documented policy.
func (a AllowedActions) Known() bool {
	switch a {
	case AllowedActionsAll, AllowedActionsLocal, AllowedActionsSelected:
		return true
	}
	return false
}

// JobFilter selects which attempts ListWorkflowRunJobs returns.
type JobFilter string

const (
	JobFilterLatest JobFilter = "latest"
	JobFilterAll    JobFilter = "all"
)

// Known reports whether f is a documented filter.
func (f JobFilter) Known() bool {
	return f == JobFilterLatest || f == JobFilterAll
}

// Visibility controls which repositories can use an organization secret.
type Visibility string

const (
	VisibilityAll      Visibility = "all"
	VisibilityPrivate  Visibility = "private"
	VisibilitySelected Visibility = "selected"
)

// Known reports whether v is a documented visibility.
func (v Visibility) Known() bool {
	switch v {
	case VisibilityAll, VisibilityPrivate, VisibilitySelected:
		return true
	}
	return false
}

// CacheSort orders ListCaches results.
type CacheSort string

const (
	CacheSortCreatedAt      CacheSort = "created_at"
	CacheSortLastAccessedAt CacheSort = "last_accessed_at"
	CacheSortSizeInBytes    CacheSort = "size_in_bytes"
)

// Known reports whether s is a documented sort key.
func (s CacheSort) Known() bool {
	switch s {
	case CacheSortCreatedAt, CacheSortLastAccessedAt, CacheSortSizeInBytes:
		return true
	}
	return false
}

// Direction is a sort direction.
type Direction string

const (
	DirectionAsc  Direction = "asc"
	DirectionDesc Direction = "desc"
)

// Known reports whether d is asc or desc.
func (d Direction) Known() bool {
	return d == DirectionAsc || d == DirectionDesc
}

// LabelType tells default runner labels from custom ones.
type LabelType string

const (
	LabelTypeReadOnly LabelType = "read-only"
	LabelTypeCustom   LabelType = "custom"
)

// Known reports whether t is a documented label type.
func (t LabelType) Known() bool {
	return t == LabelTypeReadOnly || t == LabelTypeCustom
}
