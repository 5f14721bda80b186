package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/tzalign/internal/service/cli"
)

// convertCmd converts a moment into another timezone.
var convertCmd = &cobra.Command{
	Use:   "convert <time> <timezone>",
	Short: "Convert a moment into another timezone.",
	Long: `Converts the given moment into the target timezone, preserving the physical
instant. Naive input is first attached to the effective timezone.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Convert(cmd.Context(), cmd.OutOrStdout(), &cli.ConvertOptions{
			CommonOptions: common,
			Time:          args[0],
			To:            args[1],
		})
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(convertCmd)
}
