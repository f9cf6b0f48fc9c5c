package actions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/clientele/rest"
)

// newTestClient serves r over httptest and returns a client pointed at it.
func newTestClient(t *testing.T, r chi.Router) *Client {
	t.Helper()

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	client, err := NewClient("test-token", zerolog.Nop(), rest.WithBaseURL(server.URL))
	require.NoError(t, err)
	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNewClient(t *testing.T) {
	_, err := NewClient("", zerolog.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenRequired)

	_, err = NewClient("t", zerolog.Nop(), rest.WithBaseURL("not a url"))
	require.Error(t, err)
	assert.ErrorIs(t, err, rest.ErrInvalidConfig)

	client, err := NewClient("t", zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, client.rest.BaseURL())
	assert.Equal(t, DefaultConcurrency, client.concurrency)

	client.SetConcurrency(0)
	assert.Equal(t, DefaultConcurrency, client.concurrency)
	client.SetConcurrency(8)
	assert.Equal(t, 8, client.concurrency)
}

func TestClientSendsGitHubHeaders(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/repos/{owner}/{repo}/actions/permissions", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "Bearer test-token", req.Header.Get("Authorization"))
		assert.Equal(t, "application/vnd.github+json", req.Header.Get("Accept"))
		assert.Equal(t, APIVersion, req.Header.Get("X-GitHub-Api-Version"))
		assert.NotEmpty(t, req.Header.Get(rest.RequestIDHeader))
		assert.Equal(t, "octo", chi.URLParam(req, "owner"))

		writeJSON(t, w, http.StatusOK, map[string]any{
			"enabled":              true,
			"allowed_actions":      "selected",
			"selected_actions_url": "https://api.github.com/repos/octo/hello/actions/permissions/selected-actions",
		})
	})

	client := newTestClient(t, r)

	perms, err := client.GetRepoPermissions(context.Background(), "octo", "hello")
	require.NoError(t, err)
	assert.True(t, perms.Enabled)
	assert.Equal(t, AllowedActionsSelected, perms.AllowedActions)
}

func TestSetRepoPermissions(t *testing.T) {
	r := chi.NewRouter()
	r.Put("/repos/{owner}/{repo}/actions/permissions", func(w http.ResponseWriter, req *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, map[string]any{"enabled": true, "allowed_actions": "local_only"}, body)
		w.WriteHeader(http.StatusNoContent)
	})

	client := newTestClient(t, r)

	err := client.SetRepoPermissions(context.Background(), "octo", "hello", RepoPermissions{
		Enabled:            true,
		AllowedActions:     AllowedActionsLocal,
		SelectedActionsURL: "ignored",
	})
	require.NoError(t, err)
}

func TestArtifactsAndCaches(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/repos/{owner}/{repo}/actions/runs/{run_id}/artifacts", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "42", chi.URLParam(req, "run_id"))
		assert.Equal(t, "coverage", req.URL.Query().Get("name"))
		assert.Equal(t, "2", req.URL.Query().Get("page"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"total_count": 1,
			"artifacts": []map[string]any{{
				"id": 11, "name": "coverage", "size_in_bytes": 2048, "expired": false,
				"workflow_run": map[string]any{"id": 42, "head_branch": "main"},
			}},
		})
	})
	r.Delete("/repos/{owner}/{repo}/actions/artifacts/{artifact_id}", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "11", chi.URLParam(req, "artifact_id"))
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/repos/{owner}/{repo}/actions/caches", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "refs/heads/main", req.URL.Query().Get("ref"))
		assert.Equal(t, "size_in_bytes", req.URL.Query().Get("sort"))
		assert.Equal(t, "desc", req.URL.Query().Get("direction"))
		assert.False(t, req.URL.Query().Has("key"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"total_count":    1,
			"actions_caches": []map[string]any{{"id": 5, "key": "go-mod-abc", "size_in_bytes": 1024}},
		})
	})
	r.Delete("/repos/{owner}/{repo}/actions/caches", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "go-mod-abc", req.URL.Query().Get("key"))
		assert.False(t, req.URL.Query().Has("ref"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"total_count":    1,
			"actions_caches": []map[string]any{{"id": 5, "key": "go-mod-abc"}},
		})
	})

	client := newTestClient(t, r)
	ctx := context.Background()

	artifacts, err := client.ListWorkflowRunArtifacts(ctx, "octo", "hello", 42, &ListArtifactsOptions{
		ListOptions: ListOptions{Page: 2},
		Name:        "coverage",
	})
	require.NoError(t, err)
	require.Len(t, artifacts.Artifacts, 1)
	assert.Equal(t, int64(2048), artifacts.Artifacts[0].SizeInBytes)
	assert.Equal(t, "main", artifacts.Artifacts[0].WorkflowRun.HeadBranch)

	require.NoError(t, client.DeleteArtifact(ctx, "octo", "hello", 11))

	caches, err := client.ListCaches(ctx, "octo", "hello", &ListCachesOptions{
		Ref:       "refs/heads/main",
		Sort:      CacheSortSizeInBytes,
		Direction: DirectionDesc,
	})
	require.NoError(t, err)
	require.Len(t, caches.Caches, 1)

	deleted, err := client.DeleteCachesByKey(ctx, "octo", "hello", "go-mod-abc", "")
	require.NoError(t, err)
	assert.Equal(t, 1, deleted.TotalCount)
}

func TestVariables(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/repos/{owner}/{repo}/actions/variables", func(w http.ResponseWriter, req *http.Request) {
		var body variableBody
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, variableBody{Name: "REGION", Value: "eu-west-1"}, body)
		w.WriteHeader(http.StatusCreated)
	})
	r.Patch("/repos/{owner}/{repo}/actions/variables/{name}", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "REGION", chi.URLParam(req, "name"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, map[string]any{"value": "us-east-1"}, body)
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/repos/{owner}/{repo}/actions/variables/{name}", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]any{"message": "Not Found"})
	})

	client := newTestClient(t, r)
	ctx := context.Background()

	require.NoError(t, client.CreateRepoVariable(ctx, "octo", "hello", Variable{Name: "REGION", Value: "eu-west-1"}))
	require.NoError(t, client.UpdateRepoVariable(ctx, "octo", "hello", "REGION", Variable{Value: "us-east-1"}))

	_, err := client.GetRepoVariable(ctx, "octo", "hello", "MISSING")
	require.Error(t, err)
	assert.True(t, errors.Is(err, rest.ErrNotFound))
}

func TestWorkflows(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/repos/{owner}/{repo}/actions/workflows/{workflow_id}", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "ci.yml", chi.URLParam(req, "workflow_id"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"id": 161335, "name": "CI", "path": ".github/workflows/ci.yml", "state": "disabled_inactivity",
		})
	})
	r.Put("/repos/{owner}/{repo}/actions/workflows/{workflow_id}/enable", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "161335", chi.URLParam(req, "workflow_id"))
		w.WriteHeader(http.StatusNoContent)
	})
	r.Post("/repos/{owner}/{repo}/actions/workflows/{workflow_id}/dispatches", func(w http.ResponseWriter, req *http.Request) {
		var body WorkflowDispatch
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "main", body.Ref)
		assert.Equal(t, "production", body.Inputs["environment"])
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/repos/{owner}/{repo}/actions/workflows/{workflow_id}/timing", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"billable": map[string]any{"UBUNTU": map[string]any{"total_ms": 180000}},
		})
	})

	client := newTestClient(t, r)
	ctx := context.Background()

	wf, err := client.GetWorkflow(ctx, "octo", "hello", WorkflowByFile("ci.yml"))
	require.NoError(t, err)
	assert.Equal(t, WorkflowStateDisabledInactivity, wf.State)

	require.NoError(t, client.EnableWorkflow(ctx, "octo", "hello", WorkflowByID(wf.ID)))
	require.NoError(t, client.CreateWorkflowDispatch(ctx, "octo", "hello", WorkflowByFile("deploy.yml"), WorkflowDispatch{
		Ref:    "main",
		Inputs: map[string]any{"environment": "production"},
	}))

	usage, err := client.GetWorkflowUsage(ctx, "octo", "hello", WorkflowByID(wf.ID))
	require.NoError(t, err)
	assert.Equal(t, int64(180000), usage.Billable["UBUNTU"].TotalMS)
}

func TestRunners(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/repos/{owner}/{repo}/actions/runners", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "builder-1", req.URL.Query().Get("name"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"total_count": 1,
			"runners": []map[string]any{{
				"id": 23, "name": "builder-1", "os": "linux", "status": "online", "busy": true,
				"labels": []map[string]any{{"id": 1, "name": "self-hosted", "type": "read-only"}},
			}},
		})
	})
	r.Post("/repos/{owner}/{repo}/actions/runners/registration-token", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(t, w, http.StatusCreated, map[string]any{
			"token": "LLBF3JGZDX3P5PMEXLND6TS6FCWO6", "expires_at": "2024-01-22T12:13:35.123-08:00",
		})
	})
	r.Put("/repos/{owner}/{repo}/actions/runners/{runner_id}/labels", func(w http.ResponseWriter, req *http.Request) {
		var body labelsBody
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.NotNil(t, body.Labels)
		assert.Empty(t, body.Labels)
		writeJSON(t, w, http.StatusOK, map[string]any{
			"total_count": 1,
			"labels":      []map[string]any{{"id": 1, "name": "self-hosted", "type": "read-only"}},
		})
	})
	r.Delete("/repos/{owner}/{repo}/actions/runners/{runner_id}/labels/{name}", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "23", chi.URLParam(req, "runner_id"))
		assert.Equal(t, "gpu", chi.URLParam(req, "name"))
		writeJSON(t, w, http.StatusOK, map[string]any{"total_count": 0, "labels": []any{}})
	})

	client := newTestClient(t, r)
	ctx := context.Background()

	runners, err := client.ListRepoRunners(ctx, "octo", "hello", &ListRunnersOptions{Name: "builder-1"})
	require.NoError(t, err)
	require.Len(t, runners.Runners, 1)
	assert.Equal(t, RunnerStatusOnline, runners.Runners[0].Status)
	assert.Equal(t, LabelTypeReadOnly, runners.Runners[0].Labels[0].Type)

	token, err := client.CreateRepoRegistrationToken(ctx, "octo", "hello")
	require.NoError(t, err)
	assert.Equal(t, "LLBF3JGZDX3P5PMEXLND6TS6FCWO6", token.Token)
	assert.False(t, token.ExpiresAt.IsZero())

	labels, err := client.SetRunnerLabels(ctx, "octo", "hello", 23, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, labels.TotalCount)

	labels, err = client.RemoveRunnerLabel(ctx, "octo", "hello", 23, "gpu")
	require.NoError(t, err)
	assert.Equal(t, 0, labels.TotalCount)
}

func TestOpenEnumsRoundTrip(t *testing.T) {
	raw := `{"id":1,"status":"expected","conclusion":"","workflow_id":2,"created_at":"2024-01-01T00:00:00Z","updated_at":"2024-01-01T00:00:00Z"}`

	var run WorkflowRun
	require.NoError(t, json.Unmarshal([]byte(raw), &run))
	assert.Equal(t, RunStatus("expected"), run.Status)
	assert.False(t, run.Status.Known())
	assert.False(t, run.Conclusion.Known())

	out, err := json.Marshal(run)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"status":"expected"`)
	assert.NotContains(t, string(out), `"conclusion"`)

	assert.True(t, RunStatusCompleted.Known())
	assert.True(t, ConclusionStartupFailure.Known())
	assert.True(t, WorkflowStateActive.Known())
	assert.True(t, AllowedActionsAll.Known())
	assert.True(t, JobFilterAll.Known())
	assert.True(t, VisibilitySelected.Known())
	assert.True(t, CacheSortCreatedAt.Known())
	assert.True(t, DirectionAsc.Known())
	assert.True(t, LabelTypeCustom.Known())
	assert.False(t, RunnerStatus("idle").Known())
}
