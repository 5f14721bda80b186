package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/tzalign/internal/service/cli"
)

// standardizeCmd normalizes a moment to UTC.
var standardizeCmd = &cobra.Command{
	Use:   "standardize <time>",
	Short: "Normalize a moment to UTC.",
	Long: `Normalizes the given moment to UTC. Naive input is first attached to the
effective timezone; input carrying its own offset is converted directly.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Standardize(cmd.Context(), cmd.OutOrStdout(), &cli.StandardizeOptions{
			CommonOptions: common,
			Time:          args[0],
		})
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(standardizeCmd)
}
