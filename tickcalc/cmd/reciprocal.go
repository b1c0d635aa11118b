package cmd

import (
	"fmt"

	"github.com/sarchlab/ticktime/scale"
	"github.com/sarchlab/ticktime/timing"
	"github.com/spf13/cobra"
)

type reciprocalOptions struct {
	from, to scale.Ratio
}

func newPeriodCommand(root *rootOptions) *cobra.Command {
	opts := &reciprocalOptions{}

	cmd := &cobra.Command{
		Use:     "period <rate>",
		Short:   "Print the period of a frequency",
		Example: "  tickcalc period 1 --from kHz --to us",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReciprocal(cmd, root, opts, args[0], rateQuantity, durationQuantity)
		},
	}

	cmd.Flags().Var(newRatioValue(&opts.from, scale.Hertz, rateQuantity), "from", "scale of the frequency")
	cmd.Flags().Var(newRatioValue(&opts.to, scale.Micros, durationQuantity), "to", "scale of the period")

	return cmd
}

func newFrequencyCommand(root *rootOptions) *cobra.Command {
	opts := &reciprocalOptions{}

	cmd := &cobra.Command{
		Use:     "frequency <duration>",
		Short:   "Print the frequency whose period is a duration",
		Example: "  tickcalc frequency 2 --from ms --to Hz",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReciprocal(cmd, root, opts, args[0], durationQuantity, rateQuantity)
		},
	}

	cmd.Flags().Var(newRatioValue(&opts.from, scale.Millis, durationQuantity), "from", "scale of the duration")
	cmd.Flags().Var(newRatioValue(&opts.to, scale.Hertz, rateQuantity), "to", "scale of the frequency")

	return cmd
}

func runReciprocal(
	cmd *cobra.Command,
	root *rootOptions,
	opts *reciprocalOptions,
	arg string,
	fromKind, toKind quantity,
) error {
	v, err := root.parseCount(arg)
	if err != nil {
		return err
	}

	f := scale.Reduce(opts.from, opts.to)
	root.log.Debug().
		Uint64("numerator", f.ReciprocalNumerator()).
		Msg("reciprocal")

	res, ok := f.Reciprocal(v, root.limit())
	if !ok {
		if v == 0 {
			return fmt.Errorf("%w: reciprocal of %s", timing.ErrDivideByZero, fromKind.format(v, opts.from))
		}

		return fmt.Errorf("%w: reciprocal of %s in %s at %d bits",
			timing.ErrConversion, fromKind.format(v, opts.from), opts.to, root.width)
	}

	return root.printer(cmd).print(conversionResult{
		Value:    v,
		From:     opts.from.String(),
		To:       opts.to.String(),
		Result:   res,
		Width:    root.width,
		from:     opts.from,
		to:       opts.to,
		fromKind: fromKind,
		toKind:   toKind,
		sep:      " -> ",
	})
}
