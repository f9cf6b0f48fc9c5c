package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/time/rate"

	"github.com/s0up4200/clientele/actions"
	"github.com/s0up4200/clientele/rest"
	"github.com/s0up4200/clientele/sendgrid"
	"github.com/s0up4200/clientele/sheets"
)

// restOptions are the transport settings every service client shares
func restOptions(baseURL string) []rest.Option {
	userAgent := cfg.HTTP.UserAgent
	if userAgent != "" && version != "" {
		userAgent += "/" + strings.TrimPrefix(version, "v")
	}

	opts := []rest.Option{
		rest.WithBaseURL(baseURL),
		rest.WithTimeout(cfg.HTTP.Timeout),
		rest.WithUserAgent(userAgent),
		rest.WithMetrics(metrics),
	}
	if cfg.HTTP.RateLimit > 0 {
		opts = append(opts, rest.WithRateLimit(rate.Limit(cfg.HTTP.RateLimit), cfg.HTTP.Burst))
	}
	return opts
}

func newActionsClient() (*actions.Client, error) {
	client, err := actions.NewClient(cfg.GitHub.Token, logger, restOptions(cfg.GitHub.BaseURL)...)
	if errors.Is(err, actions.ErrTokenRequired) {
		return nil, fmt.Errorf("github token missing: set github.token, CLIENTELE_GITHUB_TOKEN or GITHUB_TOKEN")
	}
	if err != nil {
		return nil, err
	}
	client.SetConcurrency(cfg.GitHub.Concurrency)
	return client, nil
}

// newSheetsClient prefers service account credentials; an API key only
// reaches public spreadsheets.
func newSheetsClient(ctx context.Context) (*sheets.Client, error) {
	opts := restOptions(cfg.Sheets.BaseURL)

	switch {
	case cfg.Sheets.CredentialsFile != "":
		key, err := os.ReadFile(cfg.Sheets.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheets credentials: %w", err)
		}
		scope := sheets.ScopeSpreadsheets
		if cfg.Sheets.ReadOnly {
			scope = sheets.ScopeSpreadsheetsReadOnly
		}
		ts, err := sheets.ServiceAccountTokenSource(ctx, key, scope)
		if err != nil {
			return nil, err
		}
		opts = append(opts, rest.WithTokenSource(ts))
	case cfg.Sheets.APIKey != "":
		opts = append(opts, rest.WithAPIKeyParam("key", cfg.Sheets.APIKey))
	default:
		return nil, fmt.Errorf("sheets credentials missing: set sheets.credentials_file, GOOGLE_APPLICATION_CREDENTIALS or sheets.api_key")
	}

	return sheets.NewClient(logger, opts...)
}

func newSendGridClient() (*sendgrid.Client, error) {
	opts := []sendgrid.Option{sendgrid.WithRESTOptions(restOptions(cfg.SendGrid.BaseURL)...)}
	if cfg.SendGrid.OnBehalfOf != "" {
		opts = append(opts, sendgrid.WithOnBehalfOf(cfg.SendGrid.OnBehalfOf))
	}

	client, err := sendgrid.NewClient(cfg.SendGrid.APIKey, logger, opts...)
	if errors.Is(err, sendgrid.ErrAPIKeyRequired) {
		return nil, fmt.Errorf("sendgrid API key missing: set sendgrid.api_key, CLIENTELE_SENDGRID_API_KEY or SENDGRID_API_KEY")
	}
	return client, err
}
