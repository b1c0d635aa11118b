package cmd

import (
	"fmt"

	"github.com/sarchlab/ticktime/scale"
	"github.com/sarchlab/ticktime/timing"
	"github.com/spf13/cobra"
)

type sinceResult struct {
	Now     uint64 `json:"now" yaml:"now"`
	Earlier uint64 `json:"earlier" yaml:"earlier"`
	Scale   string `json:"scale" yaml:"scale"`
	Elapsed uint64 `json:"elapsed" yaml:"elapsed"`
	Wrapped bool   `json:"wrapped" yaml:"wrapped"`

	ratio scale.Ratio
}

func (r sinceResult) text() string {
	return timing.FormatDuration(r.Now, r.ratio) + " - " +
		timing.FormatDuration(r.Earlier, r.ratio) + " = " +
		timing.FormatDuration(r.Elapsed, r.ratio)
}

func newSinceCommand(root *rootOptions) *cobra.Command {
	var ratio scale.Ratio

	cmd := &cobra.Command{
		Use:   "since <now> <earlier>",
		Short: "Measure the time between two readings of a wrapping counter",
		Long: `Measure the time between two readings of a free-running counter that
wraps at the counter width. The readings are assumed to be less than half
the counter range apart; if earlier reads as being after now, the command
fails.`,
		Example: "  tickcalc since 4 4294967290 --scale us",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSince(cmd, root, ratio, args[0], args[1])
		},
	}

	cmd.Flags().Var(newRatioValue(&ratio, scale.Millis, durationQuantity), "scale", "scale of the counter")

	return cmd
}

func runSince(cmd *cobra.Command, root *rootOptions, ratio scale.Ratio, nowArg, earlierArg string) error {
	now, err := root.parseCount(nowArg)
	if err != nil {
		return err
	}

	earlier, err := root.parseCount(earlierArg)
	if err != nil {
		return err
	}

	elapsed, ok := elapsedTicks(now, earlier, root.width)
	if !ok {
		return fmt.Errorf("%w: %s is after %s",
			timing.ErrInstantOrder,
			timing.FormatDuration(earlier, ratio),
			timing.FormatDuration(now, ratio))
	}

	return root.printer(cmd).print(sinceResult{
		Now:     now,
		Earlier: earlier,
		Scale:   ratio.String(),
		Elapsed: elapsed,
		Wrapped: now < earlier,
		ratio:   ratio,
	})
}

// elapsedTicks runs the modular subtraction at the counter's own width.
func elapsedTicks(now, earlier uint64, width int) (uint64, bool) {
	if width == 32 {
		d, ok := timing.ElapsedTicks(uint32(now), uint32(earlier))
		return uint64(d), ok
	}

	return timing.ElapsedTicks(now, earlier)
}
