package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/clientele/config"
	"github.com/s0up4200/clientele/filter"
	"github.com/s0up4200/clientele/rest"
)

var (
	cfgFile   string
	cfg       *config.Config
	logger    zerolog.Logger
	filters   *filter.Manager
	registry  *prometheus.Registry
	metrics   *rest.Metrics
	version   = "dev"
	buildTime = "unknown"
	logDest   = os.Stderr

	// Global flags
	outputFormat string
	filterExpr   string
	presets      []string
	logLevel     string
	metricsFile  string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "clientele",
	Short: "Command line client for GitHub Actions, Google Sheets and SendGrid",
	Long: `clientele talks to the GitHub Actions, Google Sheets and SendGrid REST APIs.

List results can be narrowed with --filter, an expression evaluated against
each result's JSON fields, or with named presets from the config file:

  clientele actions runs list --filter 'conclusion == "failure" and daysSince(created_at) < 7'
  clientele sendgrid bounces list --preset hard-bounces -o json`,
	SilenceUsage:       true,
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: writeMetrics,
}

// SetVersion sets build information reported by the version command and
// used by update.
func SetVersion(v, built string) {
	version = v
	buildTime = built
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml, ~/.clientele/config.yaml or /etc/clientele/config.yaml)")
	flags.StringVarP(&outputFormat, "output", "o", "", "output format: json, yaml or table")
	flags.StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to list results")
	flags.StringSliceVarP(&presets, "preset", "p", nil, "filter preset from config (repeatable)")
	flags.StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn or error")
	flags.StringVar(&metricsFile, "metrics-file", "", "write request metrics to this file in Prometheus text format")
}

// initializeApp loads the configuration and builds the shared logger,
// metrics and filter presets
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("log-level") {
		if _, err := zerolog.ParseLevel(logLevel); err != nil || logLevel == "" {
			return fmt.Errorf("invalid log level: %s", logLevel)
		}
		cfg.Logging.Level = logLevel
	}
	if cmd.Flags().Changed("output") {
		if err := config.ValidateOutputFormat(outputFormat); err != nil {
			return err
		}
		cfg.Output.Format = outputFormat
	}

	logger = setupLogger(cfg.Logging, logDest)

	registry = prometheus.NewRegistry()
	metrics = rest.NewMetrics(registry)

	filters = filter.NewManager()
	if err := filters.RegisterFilters(cfg.Filters); err != nil {
		return fmt.Errorf("invalid filter presets: %w", err)
	}

	return nil
}

func writeMetrics(cmd *cobra.Command, args []string) error {
	if metricsFile == "" || registry == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(metricsFile, registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	logger.Debug().Str("path", metricsFile).Msg("Metrics written")
	return nil
}

// setupLogger configures the zerolog logger. Console output is colored
// only when color is enabled and out is a terminal.
func setupLogger(cfg config.LoggingConfig, out *os.File) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.Format == "json" {
		return zerolog.New(out).Level(level).With().Timestamp().Logger()
	}

	terminal := isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !terminal,
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
