package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/jwt"

	"github.com/s0up4200/clientele/rest"
)

const (
	// DefaultBaseURL is the Sheets API endpoint.
	DefaultBaseURL = "https://sheets.googleapis.com"

	// ScopeSpreadsheets grants read and write access to spreadsheets.
	ScopeSpreadsheets = "https://www.googleapis.com/auth/spreadsheets"
	// ScopeSpreadsheetsReadOnly grants read access to spreadsheets.
	ScopeSpreadsheetsReadOnly = "https://www.googleapis.com/auth/spreadsheets.readonly"

	defaultTokenURL = "https://oauth2.googleapis.com/token"
)

// Client talks to the Google Sheets API v4.
type Client struct {
	rest   *rest.Client
	logger zerolog.Logger
}

// NewClient creates a Sheets client. Authenticate it with
// rest.WithTokenSource (see ServiceAccountTokenSource) or, for public
// read-only sheets, rest.WithAPIKeyParam("key", apiKey).
func NewClient(logger zerolog.Logger, opts ...rest.Option) (*Client, error) {
	base := []rest.Option{
		rest.WithLogger(logger),
		rest.WithServiceName("sheets"),
	}

	rc, err := rest.New(DefaultBaseURL, append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("creating sheets client: %w", err)
	}

	return &Client{
		rest:   rc,
		logger: logger.With().Str("service", "sheets").Logger(),
	}, nil
}

// serviceAccountKey is the JSON key file downloaded from the Google Cloud
// console.
type serviceAccountKey struct {
	Type         string `json:"type"`
	ClientEmail  string `json:"client_email"`
	PrivateKey   string `json:"private_key"`
	PrivateKeyID string `json:"private_key_id"`
	TokenURI     string `json:"token_uri"`
}

// ServiceAccountTokenSource returns a token source that signs JWTs with a
// service account key and exchanges them for access tokens. Without scopes
// it requests ScopeSpreadsheets.
func ServiceAccountTokenSource(ctx context.Context, jsonKey []byte, scopes ...string) (oauth2.TokenSource, error) {
	var key serviceAccountKey
	if err := json.Unmarshal(jsonKey, &key); err != nil {
		return nil, fmt.Errorf("parsing service account key: %w", err)
	}
	if key.Type != "service_account" {
		return nil, fmt.Errorf("credentials type %q is not service_account", key.Type)
	}
	if key.ClientEmail == "" || key.PrivateKey == "" {
		return nil, errors.New("service account key is missing client_email or private_key")
	}

	if len(scopes) == 0 {
		scopes = []string{ScopeSpreadsheets}
	}
	tokenURL := key.TokenURI
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}

	cfg := &jwt.Config{
		Email:        key.ClientEmail,
		PrivateKey:   []byte(key.PrivateKey),
		PrivateKeyID: key.PrivateKeyID,
		Scopes:       scopes,
		TokenURL:     tokenURL,
	}

	return cfg.TokenSource(ctx), nil
}

func spreadsheetPath(spreadsheetID, suffix string, params ...any) (string, error) {
	return rest.Path("/v4/spreadsheets/{spreadsheetId}"+suffix, append([]any{spreadsheetID}, params...)...)
}
