package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/tzalign/internal/service/cli"
)

// weeksCmd partitions a span into calendar weeks.
var weeksCmd = &cobra.Command{
	Use:   "weeks <start> <end>",
	Short: "Partition a span into calendar weeks.",
	Long: `Prints the weekly partitions of the span from start to end, one "start end"
pair per line. Interior partitions run Monday through Sunday; the first and
last partitions may be shorter when the span starts or ends mid-week.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Weeks(cmd.Context(), cmd.OutOrStdout(), &cli.WeeksOptions{
			CommonOptions: common,
			Start:         args[0],
			End:           args[1],
		})
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(weeksCmd)
}
