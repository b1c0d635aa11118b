package cmd

import (
	"fmt"

	"github.com/sarchlab/ticktime/scale"
	"github.com/sarchlab/ticktime/timing"
	"github.com/spf13/cobra"
)

type compareResult struct {
	Left       uint64 `json:"left" yaml:"left"`
	LeftScale  string `json:"left_scale" yaml:"left_scale"`
	Right      uint64 `json:"right" yaml:"right"`
	RightScale string `json:"right_scale" yaml:"right_scale"`
	Comparable bool   `json:"comparable" yaml:"comparable"`
	Order      *int   `json:"order,omitempty" yaml:"order,omitempty"`

	left, right scale.Ratio
	width       int
}

func (r compareResult) text() string {
	l := timing.FormatDuration(r.Left, r.left)
	rr := timing.FormatDuration(r.Right, r.right)

	if r.Order == nil {
		return fmt.Sprintf("%s ? %s (incomparable at %d bits)", l, rr, r.width)
	}

	rel := "=="
	switch *r.Order {
	case -1:
		rel = "<"
	case 1:
		rel = ">"
	}

	return l + " " + rel + " " + rr
}

type compareOptions struct {
	left, right scale.Ratio
}

func newCompareCommand(root *rootOptions) *cobra.Command {
	opts := &compareOptions{}

	cmd := &cobra.Command{
		Use:   "compare <left> <right>",
		Short: "Order two durations kept in different scales",
		Long: `Order two durations kept in different scales. Both sides are scaled
into a common unit within the counter width; when that overflows the pair
is reported as incomparable.`,
		Example: "  tickcalc compare 10 1 --left 1/10000 --right ms",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, root, opts, args[0], args[1])
		},
	}

	cmd.Flags().Var(newRatioValue(&opts.left, scale.Millis, durationQuantity), "left", "scale of the left count")
	cmd.Flags().Var(newRatioValue(&opts.right, scale.Millis, durationQuantity), "right", "scale of the right count")

	return cmd
}

func runCompare(cmd *cobra.Command, root *rootOptions, opts *compareOptions, lArg, rArg string) error {
	l, err := root.parseCount(lArg)
	if err != nil {
		return err
	}

	r, err := root.parseCount(rArg)
	if err != nil {
		return err
	}

	res := compareResult{
		Left:       l,
		LeftScale:  opts.left.String(),
		Right:      r,
		RightScale: opts.right.String(),
		left:       opts.left,
		right:      opts.right,
		width:      root.width,
	}

	if order, ok := scale.Reduce(opts.left, opts.right).Compare(l, r, root.limit()); ok {
		res.Comparable = true
		res.Order = &order
	} else {
		root.log.Warn().Int("width", root.width).Msg("scaling overflows the counter width")
	}

	return root.printer(cmd).print(res)
}
