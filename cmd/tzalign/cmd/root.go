package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/oshokin/tzalign/internal/config"
	"github.com/oshokin/tzalign/internal/logger"
	"github.com/oshokin/tzalign/internal/service/cli"
	"github.com/oshokin/tzalign/internal/version"
)

var (
	// common holds the flag values shared by every subcommand.
	common cli.CommonOptions
	// logLevel is the minimum level for log output.
	logLevel string

	// rootCmd represents the base command for the alignment CLI.
	rootCmd = &cobra.Command{
		Use:   "tzalign",
		Short: "Normalize timestamps and align them to calendar boundaries.",
		Long: `tzalign attaches timezones to naive date-times, converts instants between
zones and snaps them to day, week and month boundaries.

Date-times are accepted as RFC 3339 (with offset) or as naive values such as
"2016-03-27T02:30:00", which are interpreted in the timezone given by
--timezone or the settings file. Wall clocks caught in a daylight saving
transition are shifted forward out of gaps and resolved to the earlier
occurrence of overlaps unless the policy flags say otherwise.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if level, ok := logger.ParseLogLevel(logLevel); ok {
				logger.SetLevel(level)
			}
		},
	}
)

// Execute runs the tzalign CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup persistent flags shared by all subcommands.
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&common.ConfigPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	flags.StringVarP(&common.Timezone, "timezone", "t", "", "timezone for naive date-times")
	flags.StringVar(&logLevel, "log-level", "", "minimum log level (debug, info, warn, error)")
	flags.BoolVar(&common.PreferLater, "prefer-later", false,
		"pick the later occurrence of an ambiguous wall clock")
	flags.BoolVar(&common.FailOnNonExistent, "fail-on-non-existent", false,
		"reject wall clocks inside a spring-forward gap")
	flags.BoolVar(&common.FailOnAmbiguous, "fail-on-ambiguous", false,
		"reject wall clocks inside a fall-back overlap")
}
