package cmd

import (
	"fmt"

	"github.com/sarchlab/ticktime/scale"
	"github.com/sarchlab/ticktime/timing"
	"github.com/spf13/cobra"
)

// quantity tells how a count is printed.
type quantity int

const (
	durationQuantity quantity = iota
	rateQuantity
)

func (q quantity) format(v uint64, r scale.Ratio) string {
	if q == rateQuantity {
		return timing.FormatRate(v, r)
	}

	return timing.FormatDuration(v, r)
}

// label names a ratio by its unit symbol, falling back to the bare fraction.
func (q quantity) label(r scale.Ratio) string {
	symbol := scale.DurationSymbol
	if q == rateQuantity {
		symbol = scale.RateSymbol
	}

	if sym, ok := symbol(r); ok {
		return sym
	}

	return r.String()
}

// conversionResult is printed by convert, period and frequency.
type conversionResult struct {
	Value  uint64 `json:"value" yaml:"value"`
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Result uint64 `json:"result" yaml:"result"`
	Width  int    `json:"width" yaml:"width"`

	from, to         scale.Ratio
	fromKind, toKind quantity
	sep              string
}

func (r conversionResult) text() string {
	return r.fromKind.format(r.Value, r.from) + r.sep + r.toKind.format(r.Result, r.to)
}

type convertOptions struct {
	from, to scale.Ratio
	ceil     bool
	rate     bool
}

func newConvertCommand(root *rootOptions) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <count>",
		Short: "Rescale a count from one scale into another",
		Long: `Rescale a duration (or, with --rate, a frequency) count into another
scale. The result truncates unless --ceil is given, and fails if it does
not fit the counter width.`,
		Example: `  tickcalc convert 1500 --from ms --to us
  tickcalc convert 250 --from ms --to 1/32768 --ceil
  tickcalc convert 5 --rate --from kHz --to Hz`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().Var(newRatioValue(&opts.from, scale.Millis, durationQuantity), "from", "scale of the input count")
	cmd.Flags().Var(newRatioValue(&opts.to, scale.Micros, durationQuantity), "to", "scale of the result")
	cmd.Flags().BoolVar(&opts.ceil, "ceil", false, "round up instead of truncating")
	cmd.Flags().BoolVar(&opts.rate, "rate", false, "treat the counts as frequencies")

	return cmd
}

func runConvert(cmd *cobra.Command, root *rootOptions, opts *convertOptions, arg string) error {
	v, err := root.parseCount(arg)
	if err != nil {
		return err
	}

	kind := durationQuantity
	if opts.rate {
		kind = rateQuantity
	}

	f := scale.Reduce(opts.from, opts.to)
	root.log.Debug().
		Stringer("from", opts.from).
		Stringer("to", opts.to).
		Uint64("left", f.Left).
		Uint64("right", f.Right).
		Msg("reduced scales")

	convert := f.LeftIntoRight
	if opts.ceil {
		convert = f.LeftIntoRightCeil
	}

	res, ok := convert(v, root.limit())
	if !ok {
		return fmt.Errorf("%w: %s into %s at %d bits",
			timing.ErrConversion, kind.format(v, opts.from), opts.to, root.width)
	}

	return root.printer(cmd).print(conversionResult{
		Value:    v,
		From:     opts.from.String(),
		To:       opts.to.String(),
		Result:   res,
		Width:    root.width,
		from:     opts.from,
		to:       opts.to,
		fromKind: kind,
		toKind:   kind,
		sep:      " = ",
	})
}
