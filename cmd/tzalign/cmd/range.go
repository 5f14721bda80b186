package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/oshokin/tzalign/internal/service/cli"
)

var (
	// rangeStep is the distance between consecutive elements.
	rangeStep time.Duration
	// rangeSkipMissing drops wall clocks that fall in a transition gap.
	rangeSkipMissing bool

	// rangeCmd generates a sequence of moments between two bounds.
	rangeCmd = &cobra.Command{
		Use:   "range <start> <end>",
		Short: "Generate evenly stepped moments between two bounds.",
		Long: `Prints the moments from start to end at the given wall-clock step, one per
line. The step runs on the local calendar, so a 24h step lands on the same
wall clock every day even across daylight saving transitions. A positive
step with start after end walks backwards.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Range(cmd.Context(), cmd.OutOrStdout(), &cli.RangeOptions{
				CommonOptions: common,
				Start:         args[0],
				End:           args[1],
				Step:          rangeStep,
				SkipMissing:   rangeSkipMissing,
			})
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rangeCmd.Flags().DurationVarP(&rangeStep, "step", "s", 24*time.Hour, "distance between elements")
	rangeCmd.Flags().BoolVar(&rangeSkipMissing, "skip-missing", false,
		"drop wall clocks that fall in a transition gap")

	rootCmd.AddCommand(rangeCmd)
}
