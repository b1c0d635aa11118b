package cmd

import (
	"strings"

	"github.com/sarchlab/ticktime/scale"
	"github.com/spf13/pflag"
)

// ratioValue is a pflag.Value holding a scale ratio. It accepts "n/d", a
// plain integer or a unit symbol such as "ms" or "kHz".
type ratioValue struct {
	ratio *scale.Ratio
	kind  quantity
}

var _ pflag.Value = (*ratioValue)(nil)

func newRatioValue(p *scale.Ratio, def scale.Ratio, kind quantity) *ratioValue {
	*p = def
	return &ratioValue{ratio: p, kind: kind}
}

func (v *ratioValue) String() string {
	if v.ratio == nil || !v.ratio.Valid() {
		return ""
	}

	return v.kind.label(*v.ratio)
}

func (v *ratioValue) Set(s string) error {
	r, err := scale.Parse(s)
	if err != nil {
		return err
	}

	*v.ratio = r

	return nil
}

func (v *ratioValue) Type() string {
	return "ratio"
}

// parseRatio parses s and reports a rate when s is written as a rate symbol.
func parseRatio(s string) (scale.Ratio, quantity, error) {
	r, err := scale.Parse(s)
	if err != nil {
		return scale.Ratio{}, durationQuantity, err
	}

	if sym, ok := scale.RateSymbol(r); ok && sym == strings.TrimSpace(s) {
		return r, rateQuantity, nil
	}

	return r, durationQuantity, nil
}
