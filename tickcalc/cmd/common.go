package cmd

import (
	"fmt"
	"strings"

	"github.com/sarchlab/ticktime/scale"
	"github.com/spf13/cobra"
)

type commonScale struct {
	Ratio    string  `json:"ratio" yaml:"ratio"`
	Stride   uint64  `json:"stride" yaml:"stride"`
	ThisTick *uint64 `json:"this_tick,omitempty" yaml:"this_tick,omitempty"`
	NextTick *uint64 `json:"next_tick,omitempty" yaml:"next_tick,omitempty"`

	ratio scale.Ratio
	kind  quantity
}

type commonResult struct {
	Base   string        `json:"base" yaml:"base"`
	Scales []commonScale `json:"scales" yaml:"scales"`
}

func (r commonResult) text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "base %s", r.Base)

	for _, s := range r.Scales {
		fmt.Fprintf(&b, "\n%s stride %d", s.kind.label(s.ratio), s.Stride)

		if s.ThisTick != nil && s.NextTick != nil {
			fmt.Fprintf(&b, " this %d next %d", *s.ThisTick, *s.NextTick)
		}
	}

	return b.String()
}

func newCommonCommand(root *rootOptions) *cobra.Command {
	var at uint64

	cmd := &cobra.Command{
		Use:   "common <ratio>...",
		Short: "Find the common base of several scales",
		Long: `Find the coarsest base of which every given scale is an integer
multiple, and the stride of each scale on that base. With --at, also align
a base count to each scale's tick boundaries.`,
		Example: "  tickcalc common ms 1/32768 --at 250",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var align *uint64
			if cmd.Flags().Changed("at") {
				align = &at
			}

			return runCommon(cmd, root, args, align)
		},
	}

	cmd.Flags().Uint64Var(&at, "at", 0, "base count to align to each scale")

	return cmd
}

func runCommon(cmd *cobra.Command, root *rootOptions, args []string, at *uint64) error {
	registry := scale.NewRegistry()
	domains := make([]*scale.Domain, 0, len(args))
	kinds := make([]quantity, 0, len(args))

	for _, arg := range args {
		ratio, kind, err := parseRatio(arg)
		if err != nil {
			return err
		}

		domain, err := registry.Register(ratio)
		if err != nil {
			return fmt.Errorf("registering %s: %w", arg, err)
		}

		domains = append(domains, domain)
		kinds = append(kinds, kind)
	}

	base, err := registry.Base()
	if err != nil {
		return err
	}

	root.log.Debug().
		Int("distinct", registry.Len()).
		Stringer("base", base).
		Msg("common base")

	res := commonResult{Base: base.String()}

	for i, domain := range domains {
		s := commonScale{
			Ratio:  domain.Ratio().String(),
			Stride: domain.Stride(),
			ratio:  domain.Ratio(),
			kind:   kinds[i],
		}

		if at != nil {
			this, next := domain.ThisTick(*at), domain.NextTick(*at)
			s.ThisTick, s.NextTick = &this, &next
		}

		res.Scales = append(res.Scales, s)
	}

	return root.printer(cmd).print(res)
}
