package cmd

import (
	"fmt"
	"runtime"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const releaseRepo = "s0up4200/clientele"

var updateCheckOnly bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	// version works without a config file
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "clientele %s (built %s, %s %s/%s)\n",
			version, buildTime, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return err
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update clientele to the latest release",
	Args:  cobra.NoArgs,
	RunE:  runUpdate,
}

func init() {
	rootCmd.AddCommand(versionCmd, updateCmd)

	updateCmd.Flags().BoolVar(&updateCheckOnly, "check", false, "only report whether an update is available")
}

// needsUpdate compares the running version with a release version. Builds
// without a semantic version, such as "dev", are never replaced.
func needsUpdate(current, latest string) (bool, error) {
	cur, err := semver.ParseTolerant(current)
	if err != nil {
		return false, fmt.Errorf("cannot update development build %q", current)
	}
	rel, err := semver.ParseTolerant(latest)
	if err != nil {
		return false, fmt.Errorf("invalid release version %q: %w", latest, err)
	}
	return rel.GT(cur), nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(releaseRepo))
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	if !found {
		return fmt.Errorf("no release of %s found for %s/%s", releaseRepo, runtime.GOOS, runtime.GOARCH)
	}

	update, err := needsUpdate(version, latest.Version())
	if err != nil {
		return err
	}
	if !update {
		logger.Info().Str("version", version).Msg("Already up to date")
		return nil
	}
	if updateCheckOnly {
		logger.Info().Str("current", version).Str("latest", latest.Version()).Msg("Update available")
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}

	logger.Info().Str("from", version).Str("to", latest.Version()).Msg("Updating")
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update: %w", err)
	}

	logger.Info().Str("version", latest.Version()).Msg("Updated")
	return nil
}
