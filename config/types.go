package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	GitHub   GitHubConfig   `mapstructure:"github"`
	Sheets   SheetsConfig   `mapstructure:"sheets"`
	SendGrid SendGridConfig `mapstructure:"sendgrid"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Output   OutputConfig   `mapstructure:"output"`
	Filters  FilterConfig   `mapstructure:"filters"`
}

// GitHubConfig holds GitHub Actions API connection details
type GitHubConfig struct {
	Token   string `mapstructure:"token"`
	BaseURL string `mapstructure:"base_url"`
	// Owner and Repo are the defaults for commands that take owner/repo.
	Owner       string `mapstructure:"owner"`
	Repo        string `mapstructure:"repo"`
	Concurrency int    `mapstructure:"concurrency"`
}

// SheetsConfig holds Google Sheets credentials. CredentialsFile takes
// precedence over APIKey.
type SheetsConfig struct {
	CredentialsFile string `mapstructure:"credentials_file"`
	APIKey          string `mapstructure:"api_key"`
	BaseURL         string `mapstructure:"base_url"`
	SpreadsheetID   string `mapstructure:"spreadsheet_id"`
	ReadOnly        bool   `mapstructure:"read_only"`
}

// SendGridConfig holds SendGrid API connection details
type SendGridConfig struct {
	APIKey     string `mapstructure:"api_key"`
	BaseURL    string `mapstructure:"base_url"`
	OnBehalfOf string `mapstructure:"on_behalf_of"`
	From       string `mapstructure:"from"`
}

// HTTPConfig applies to every API client
type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
	// RateLimit is requests per second; zero disables client-side limiting.
	RateLimit float64 `mapstructure:"rate_limit"`
	Burst     int     `mapstructure:"burst"`
	UserAgent string  `mapstructure:"user_agent"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// OutputConfig selects how command results are printed
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// FilterConfig maps preset names to filter expressions
type FilterConfig map[string]string
