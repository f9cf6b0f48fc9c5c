package cmd

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/clientele/actions"
)

var (
	repoFlag string

	runsAll      bool
	runsBranch   string
	runsStatus   string
	runsEvent    string
	runsActor    string
	runsCreated  string
	runsPerPage  int
	runsPage     int
	rerunFailed  bool
	rerunDebug   bool
	jobsAll      bool
	runnersOrg   string
	dispatchRef  string
	dispatchIn   map[string]string
	secretValue  string
	workflowsAll bool
)

var runColumns = columns(
	"ID", "id",
	"WORKFLOW", "name",
	"BRANCH", "head_branch",
	"EVENT", "event",
	"STATUS", "status",
	"CONCLUSION", "conclusion",
	"ATTEMPT", "run_attempt",
	"CREATED", "created_at",
)

// actionsCmd groups the GitHub Actions commands
var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "GitHub Actions workflows, runs, jobs, runners and secrets",
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Workflow runs",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workflow runs of a repository",
	Args:  cobra.NoArgs,
	RunE:  runRunsList,
}

var runsGetCmd = &cobra.Command{
	Use:   "get <run-id>",
	Short: "Show one workflow run",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsGet,
}

var runsCancelCmd = &cobra.Command{
	Use:   "cancel <run-id>",
	Short: "Cancel a workflow run",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsCancel,
}

var runsRerunCmd = &cobra.Command{
	Use:   "rerun <run-id>",
	Short: "Re-run a workflow run, or only its failed jobs",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsRerun,
}

var workflowsCmd = &cobra.Command{
	Use:   "workflows",
	Short: "Workflows",
}

var workflowsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the workflows of a repository",
	Args:  cobra.NoArgs,
	RunE:  runWorkflowsList,
}

var dispatchCmd = &cobra.Command{
	Use:   "dispatch <workflow>",
	Short: "Trigger a workflow_dispatch event",
	Long: `Trigger a workflow that has a workflow_dispatch trigger. The workflow is
given by numeric ID or file name, e.g. "deploy.yml".`,
	Args: cobra.ExactArgs(1),
	RunE: runDispatch,
}

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Workflow jobs",
}

var jobsListCmd = &cobra.Command{
	Use:   "list <run-id>",
	Short: "List the jobs of a workflow run",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsList,
}

var runnersCmd = &cobra.Command{
	Use:   "runners",
	Short: "Self-hosted runners",
}

var runnersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List self-hosted runners of a repository or organization",
	Args:  cobra.NoArgs,
	RunE:  runRunnersList,
}

var secretsCmd = &cobra.Command{
	Use:   "secrets",
	Short: "Repository secrets",
}

var secretsSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Create or update a repository secret",
	Long: `Encrypt a value with the repository public key and store it as a secret.
Without --value the secret is read from standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runSecretsSet,
}

func init() {
	rootCmd.AddCommand(actionsCmd)
	actionsCmd.PersistentFlags().StringVarP(&repoFlag, "repo", "R", "", "repository as owner/name (default from github.owner and github.repo)")

	actionsCmd.AddCommand(runsCmd, workflowsCmd, dispatchCmd, jobsCmd, runnersCmd, secretsCmd)
	runsCmd.AddCommand(runsListCmd, runsGetCmd, runsCancelCmd, runsRerunCmd)
	workflowsCmd.AddCommand(workflowsListCmd)
	jobsCmd.AddCommand(jobsListCmd)
	runnersCmd.AddCommand(runnersListCmd)
	secretsCmd.AddCommand(secretsSetCmd)

	runsListCmd.Flags().BoolVar(&runsAll, "all", false, "follow pagination and list every run")
	runsListCmd.Flags().StringVar(&runsBranch, "branch", "", "only runs for this branch")
	runsListCmd.Flags().StringVar(&runsStatus, "status", "", "status or conclusion, e.g. in_progress or failure")
	runsListCmd.Flags().StringVar(&runsEvent, "event", "", "only runs triggered by this event")
	runsListCmd.Flags().StringVar(&runsActor, "actor", "", "only runs triggered by this user")
	runsListCmd.Flags().StringVar(&runsCreated, "created", "", `date range in search syntax, e.g. ">=2024-01-01"`)
	runsListCmd.Flags().IntVar(&runsPerPage, "per-page", 30, "results per page (max 100)")
	runsListCmd.Flags().IntVar(&runsPage, "page", 0, "page number")

	runsRerunCmd.Flags().BoolVar(&rerunFailed, "failed", false, "only re-run failed jobs")
	runsRerunCmd.Flags().BoolVar(&rerunDebug, "debug", false, "enable runner debug logging")

	workflowsListCmd.Flags().BoolVar(&workflowsAll, "all", false, "include disabled workflows")

	dispatchCmd.Flags().StringVar(&dispatchRef, "ref", "", "branch or tag to run the workflow on (required)")
	dispatchCmd.Flags().StringToStringVarP(&dispatchIn, "input", "i", nil, "workflow input as key=value (repeatable)")
	_ = dispatchCmd.MarkFlagRequired("ref")

	jobsListCmd.Flags().BoolVar(&jobsAll, "all-attempts", false, "include jobs of earlier attempts")

	runnersListCmd.Flags().StringVar(&runnersOrg, "org", "", "list organization runners instead of repository runners")

	secretsSetCmd.Flags().StringVar(&secretValue, "value", "", "secret value (default: read from stdin)")
}

// ownerRepo resolves --repo, falling back to the configured defaults
func ownerRepo() (string, string, error) {
	if repoFlag != "" {
		owner, repo, ok := strings.Cut(repoFlag, "/")
		if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
			return "", "", fmt.Errorf("invalid repository %q: expected owner/name", repoFlag)
		}
		return owner, repo, nil
	}
	if cfg.GitHub.Owner == "" || cfg.GitHub.Repo == "" {
		return "", "", fmt.Errorf("no repository given: use --repo owner/name or set github.owner and github.repo")
	}
	return cfg.GitHub.Owner, cfg.GitHub.Repo, nil
}

func parseRunID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid run ID %q", arg)
	}
	return id, nil
}

func runRunsList(cmd *cobra.Command, args []string) error {
	owner, repo, err := ownerRepo()
	if err != nil {
		return err
	}
	client, err := newActionsClient()
	if err != nil {
		return err
	}

	opts := &actions.ListWorkflowRunsOptions{
		ListOptions: actions.ListOptions{Page: runsPage, PerPage: runsPerPage},
		Actor:       runsActor,
		Branch:      runsBranch,
		Event:       runsEvent,
		Status:      actions.RunStatus(runsStatus),
		Created:     runsCreated,
	}

	if runsAll {
		runs, err := client.ListAllRepoWorkflowRuns(cmd.Context(), owner, repo, opts)
		if err != nil {
			return err
		}
		return renderList(cmd, runs, runColumns)
	}

	page, err := client.ListRepoWorkflowRuns(cmd.Context(), owner, repo, opts)
	if err != nil {
		return err
	}
	logger.Debug().Int("total", page.TotalCount).Int("page", len(page.WorkflowRuns)).Msg("Listed workflow runs")
	return renderList(cmd, page.WorkflowRuns, runColumns)
}

func runRunsGet(cmd *cobra.Command, args []string) error {
	owner, repo, err := ownerRepo()
	if err != nil {
		return err
	}
	id, err := parseRunID(args[0])
	if err != nil {
		return err
	}
	client, err := newActionsClient()
	if err != nil {
		return err
	}

	run, err := client.GetWorkflowRun(cmd.Context(), owner, repo, id)
	if err != nil {
		return err
	}
	return renderItem(cmd, run, slices.Concat(runColumns, columns(
		"TITLE", "display_title",
		"SHA", "head_sha",
		"ACTOR", "actor.login",
		"URL", "html_url",
	)))
}

func runRunsCancel(cmd *cobra.Command, args []string) error {
	owner, repo, err := ownerRepo()
	if err != nil {
		return err
	}
	id, err := parseRunID(args[0])
	if err != nil {
		return err
	}
	client, err := newActionsClient()
	if err != nil {
		return err
	}

	if err := client.CancelWorkflowRun(cmd.Context(), owner, repo, id); err != nil {
		return err
	}
	logger.Info().Int64("run_id", id).Msg("Cancellation requested")
	return nil
}

func runRunsRerun(cmd *cobra.Command, args []string) error {
	owner, repo, err := ownerRepo()
	if err != nil {
		return err
	}
	id, err := parseRunID(args[0])
	if err != nil {
		return err
	}
	client, err := newActionsClient()
	if err != nil {
		return err
	}

	opts := &actions.RerunOptions{EnableDebugLogging: rerunDebug}
	if rerunFailed {
		err = client.RerunFailedJobs(cmd.Context(), owner, repo, id, opts)
	} else {
		err = client.RerunWorkflowRun(cmd.Context(), owner, repo, id, opts)
	}
	if err != nil {
		return err
	}
	logger.Info().Int64("run_id", id).Bool("failed_only", rerunFailed).Msg("Re-run requested")
	return nil
}

func runWorkflowsList(cmd *cobra.Command, args []string) error {
	owner, repo, err := ownerRepo()
	if err != nil {
		return err
	}
	client, err := newActionsClient()
	if err != nil {
		return err
	}

	list, err := client.ListWorkflows(cmd.Context(), owner, repo, &actions.ListOptions{PerPage: 100})
	if err != nil {
		return err
	}

	workflows := list.Workflows
	if !workflowsAll {
		workflows = workflows[:0:0]
		for _, w := range list.Workflows {
			if w.State == actions.WorkflowStateActive {
				workflows = append(workflows, w)
			}
		}
	}

	return renderList(cmd, workflows, columns(
		"ID", "id",
		"NAME", "name",
		"PATH", "path",
		"STATE", "state",
	))
}

func runDispatch(cmd *cobra.Command, args []string) error {
	owner, repo, err := ownerRepo()
	if err != nil {
		return err
	}
	client, err := newActionsClient()
	if err != nil {
		return err
	}

	workflow := actions.WorkflowByFile(args[0])
	if id, err := strconv.ParseInt(args[0], 10, 64); err == nil {
		workflow = actions.WorkflowByID(id)
	}

	dispatch := actions.WorkflowDispatch{Ref: dispatchRef}
	if len(dispatchIn) > 0 {
		dispatch.Inputs = make(map[string]any, len(dispatchIn))
		for k, v := range dispatchIn {
			dispatch.Inputs[k] = v
		}
	}

	if err := client.CreateWorkflowDispatch(cmd.Context(), owner, repo, workflow, dispatch); err != nil {
		return err
	}
	logger.Info().Str("workflow", args[0]).Str("ref", dispatchRef).Msg("Workflow dispatched")
	return nil
}

func runJobsList(cmd *cobra.Command, args []string) error {
	owner, repo, err := ownerRepo()
	if err != nil {
		return err
	}
	id, err := parseRunID(args[0])
	if err != nil {
		return err
	}
	client, err := newActionsClient()
	if err != nil {
		return err
	}

	jobFilter := actions.JobFilterLatest
	if jobsAll {
		jobFilter = actions.JobFilterAll
	}

	jobs, err := client.ListAllWorkflowRunJobs(cmd.Context(), owner, repo, id, jobFilter)
	if err != nil {
		return err
	}
	return renderList(cmd, jobs, columns(
		"ID", "id",
		"NAME", "name",
		"STATUS", "status",
		"CONCLUSION", "conclusion",
		"ATTEMPT", "run_attempt",
		"RUNNER", "runner_name",
		"STARTED", "started_at",
	))
}

func runRunnersList(cmd *cobra.Command, args []string) error {
	client, err := newActionsClient()
	if err != nil {
		return err
	}

	var runners []actions.Runner
	if runnersOrg != "" {
		runners, err = client.ListAllOrgRunners(cmd.Context(), runnersOrg)
	} else {
		owner, repo, rerr := ownerRepo()
		if rerr != nil {
			return rerr
		}
		var list *actions.RunnerList
		list, err = client.ListRepoRunners(cmd.Context(), owner, repo, &actions.ListRunnersOptions{
			ListOptions: actions.ListOptions{PerPage: 100},
		})
		if list != nil {
			runners = list.Runners
		}
	}
	if err != nil {
		return err
	}

	return renderList(cmd, runners, columns(
		"ID", "id",
		"NAME", "name",
		"OS", "os",
		"STATUS", "status",
		"BUSY", "busy",
		"LABELS", "labels",
	))
}

func runSecretsSet(cmd *cobra.Command, args []string) error {
	owner, repo, err := ownerRepo()
	if err != nil {
		return err
	}

	value := secretValue
	if !cmd.Flags().Changed("value") {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read secret from stdin: %w", err)
		}
		value = strings.TrimRight(string(raw), "\r\n")
	}
	if value == "" {
		return fmt.Errorf("secret value is empty")
	}

	client, err := newActionsClient()
	if err != nil {
		return err
	}

	key, err := client.GetRepoPublicKey(cmd.Context(), owner, repo)
	if err != nil {
		return err
	}
	secret, err := actions.EncryptSecret(key, args[0], value)
	if err != nil {
		return err
	}
	if err := client.CreateOrUpdateRepoSecret(cmd.Context(), owner, repo, secret); err != nil {
		return err
	}

	logger.Info().Str("secret", args[0]).Str("repo", owner+"/"+repo).Msg("Secret stored")
	return nil
}
