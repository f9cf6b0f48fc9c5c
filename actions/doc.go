// Package actions provides a client for the GitHub Actions REST API.
//
// It covers artifacts, caches, permissions, secrets, variables, workflows,
// workflow runs, jobs and self-hosted runners. Each method maps to one
// endpoint and returns the decoded response; errors from the server come
// back as *rest.APIError.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := actions.NewClient(os.Getenv("GITHUB_TOKEN"), logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	runs, err := client.ListAllRepoWorkflowRuns(ctx, "octo", "hello-world",
//		&actions.ListWorkflowRunsOptions{Status: actions.RunStatusInProgress})
//
// GitHub Enterprise Server is reached by overriding the base URL:
//
//	client, err := actions.NewClient(token, logger,
//		rest.WithBaseURL("https://github.example.com/api/v3"))
//
// # Secrets
//
// Secret values are encrypted client-side with the repository's public key
// before upload:
//
//	key, err := client.GetRepoPublicKey(ctx, owner, repo)
//	secret, err := actions.EncryptSecret(key, "DEPLOY_TOKEN", value)
//	err = client.CreateOrUpdateRepoSecret(ctx, owner, repo, secret)
//
// # Enums
//
// Status, conclusion and similar fields are string types. Values the API
// adds later decode unchanged; Known tells documented values apart.
package actions
