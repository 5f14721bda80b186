package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/tzalign/internal/service/cli"
)

var (
	// alignUnit is the calendar unit to align to.
	alignUnit string
	// alignDirection is down for the unit's start, up for its last instant.
	alignDirection string

	// alignCmd snaps a moment to a calendar boundary.
	alignCmd = &cobra.Command{
		Use:   "align <time>",
		Short: "Snap a moment to a day, week or month boundary.",
		Long: `Snaps the given moment to the boundary of a calendar unit in the effective
timezone. Down yields the unit's first instant (midnight, Monday, the 1st);
up yields its last representable instant (23:59:59.999999 of the closing day).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Align(cmd.Context(), cmd.OutOrStdout(), &cli.AlignOptions{
				CommonOptions: common,
				Time:          args[0],
				Unit:          alignUnit,
				Direction:     alignDirection,
			})
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	alignCmd.Flags().StringVarP(&alignUnit, "unit", "u", "day", "calendar unit: day, week or month")
	alignCmd.Flags().StringVarP(&alignDirection, "direction", "d", "down", "boundary direction: down or up")

	rootCmd.AddCommand(alignCmd)
}
