package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. CLIENTELE_HTTP_TIMEOUT.
const EnvPrefix = "CLIENTELE"

// Output formats
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// conventionalEnv binds keys to the variables the services' own tooling
// reads, in addition to the CLIENTELE_ ones.
var conventionalEnv = map[string][]string{
	"github.token":            {"GITHUB_TOKEN", "GH_TOKEN"},
	"sendgrid.api_key":        {"SENDGRID_API_KEY"},
	"sheets.credentials_file": {"GOOGLE_APPLICATION_CREDENTIALS"},
}

// Load loads the configuration from file and environment. A missing config
// file is fine when configPath is empty; everything can come from the
// environment.
func Load(configPath string) (*Config, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".clientele"))
		}

		// Check /etc
		v.AddConfigPath("/etc/clientele/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// newViper returns a viper instance with defaults and environment bindings
// in place.
func newViper() (*viper.Viper, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, names := range conventionalEnv {
		if err := v.BindEnv(append([]string{key, EnvPrefix + "_" + envName(key)}, names...)...); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}
	return v, nil
}

func envName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// setDefaults sets default configuration values. Every scalar key needs
// one, even if empty: AutomaticEnv only overrides keys viper already knows.
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("github.base_url", "https://api.github.com")
	v.SetDefault("github.owner", "")
	v.SetDefault("github.repo", "")
	v.SetDefault("github.concurrency", 4)
	v.SetDefault("sheets.base_url", "https://sheets.googleapis.com")
	v.SetDefault("sheets.api_key", "")
	v.SetDefault("sheets.spreadsheet_id", "")
	v.SetDefault("sheets.read_only", false)
	v.SetDefault("sendgrid.base_url", "https://api.sendgrid.com")
	v.SetDefault("sendgrid.on_behalf_of", "")
	v.SetDefault("sendgrid.from", "")

	// HTTP defaults
	v.SetDefault("http.timeout", 30*time.Second)
	v.SetDefault("http.rate_limit", 0)
	v.SetDefault("http.burst", 1)
	v.SetDefault("http.user_agent", "clientele")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)

	// Output defaults
	v.SetDefault("output.format", FormatTable)
}

// validate checks if the configuration is valid. Credentials are checked
// by the commands that need them, so a config for one service does not
// have to carry the others.
func validate(cfg *Config) error {
	for name, raw := range map[string]string{
		"github.base_url":   cfg.GitHub.BaseURL,
		"sheets.base_url":   cfg.Sheets.BaseURL,
		"sendgrid.base_url": cfg.SendGrid.BaseURL,
	} {
		if raw != "" && !strings.HasPrefix(raw, "https://") && !strings.HasPrefix(raw, "http://") {
			return fmt.Errorf("%s must be an http(s) URL: %s", name, raw)
		}
	}

	if cfg.GitHub.Concurrency < 1 {
		return fmt.Errorf("github.concurrency must be at least 1, got %d", cfg.GitHub.Concurrency)
	}

	if cfg.HTTP.Timeout <= 0 {
		return fmt.Errorf("http.timeout must be positive")
	}
	if cfg.HTTP.RateLimit < 0 {
		return fmt.Errorf("http.rate_limit must not be negative")
	}
	if cfg.HTTP.RateLimit > 0 && cfg.HTTP.Burst < 1 {
		return fmt.Errorf("http.burst must be at least 1 when http.rate_limit is set")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	if err := ValidateOutputFormat(cfg.Output.Format); err != nil {
		return err
	}

	for name, expr := range cfg.Filters {
		if strings.TrimSpace(expr) == "" {
			return fmt.Errorf("filter preset %q has an empty expression", name)
		}
	}

	return nil
}

// ValidateOutputFormat checks an output format given in config or on the
// command line.
func ValidateOutputFormat(format string) error {
	switch format {
	case FormatJSON, FormatYAML, FormatTable:
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be json, yaml or table)", format)
}
