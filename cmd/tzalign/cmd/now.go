package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/tzalign/internal/service/cli"
)

// nowCmd prints the current moment in the effective timezone.
var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the current moment in the effective timezone.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cli.Now(cmd.Context(), cmd.OutOrStdout(), &cli.NowOptions{
			CommonOptions: common,
		})
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(nowCmd)
}
