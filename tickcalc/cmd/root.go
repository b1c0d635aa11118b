// Package cmd provides the command-line interface of tickcalc.
package cmd

import (
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strconv"

	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Exit codes returned by Execute.
const (
	ExitSuccess     = 0
	ExitFailure     = 1 // the command ran and failed
	ExitConfigError = 2 // the environment could not be parsed
)

// rootOptions holds the global flags shared by every command.
type rootOptions struct {
	width    int
	output   string
	logLevel string

	runID string
	log   zerolog.Logger
}

// init validates the global flags and sets up logging. It runs before every
// command.
func (o *rootOptions) init(stderr io.Writer) error {
	if o.width != 32 && o.width != 64 {
		return fmt.Errorf("invalid width %d: must be 32 or 64", o.width)
	}

	if !slices.Contains(ValidOutputs, o.output) {
		return fmt.Errorf("invalid output %q: must be one of %v", o.output, ValidOutputs)
	}

	level, err := zerolog.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", o.logLevel, err)
	}

	o.log = newLogger(stderr, level, o.runID)

	return nil
}

// limit is the largest count a counter of the selected width holds.
func (o *rootOptions) limit() uint64 {
	if o.width == 32 {
		return math.MaxUint32
	}

	return math.MaxUint64
}

func (o *rootOptions) printer(cmd *cobra.Command) printer {
	return printer{format: o.output, w: cmd.OutOrStdout()}
}

// parseCount reads a tick or raw count that must fit the selected width.
func (o *rootOptions) parseCount(arg string) (uint64, error) {
	v, err := strconv.ParseUint(arg, 10, o.width)
	if err != nil {
		return 0, fmt.Errorf("invalid %d-bit count %q: %w", o.width, arg, err)
	}

	return v, nil
}

// NewRootCommand creates the tickcalc root command with cfg supplying the
// flag defaults.
func NewRootCommand(cfg Config) *cobra.Command {
	return newRootCommand(cfg, xid.New().String())
}

func newRootCommand(cfg Config, runID string) *cobra.Command {
	opts := &rootOptions{
		runID: runID,
		log:   zerolog.Nop(),
	}

	cmd := &cobra.Command{
		Use:   "tickcalc",
		Short: "Convert and compare tick counts across time scales",
		Long: `tickcalc works on bare tick counts whose scale is given as a ratio of
seconds (or hertz) per tick. A ratio is written as n/d, as a plain integer,
or as a unit symbol: h, min, s, ms, us, ns, Hz, kHz, MHz, GHz.

Counts are checked against the selected counter width, so a conversion
that would not fit a 32-bit counter fails just as it would on the device.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd.ErrOrStderr())
		},
	}

	flags := cmd.PersistentFlags()
	flags.IntVar(&opts.width, "width", cfg.Width, "counter width in bits (32|64)")
	flags.StringVarP(&opts.output, "output", "o", cfg.Output, "output format (text|json|yaml)")
	flags.StringVar(&opts.logLevel, "log-level", cfg.LogLevel, "log level (debug|info|warn|error)")

	cmd.AddCommand(newConvertCommand(opts))
	cmd.AddCommand(newCompareCommand(opts))
	cmd.AddCommand(newPeriodCommand(opts))
	cmd.AddCommand(newFrequencyCommand(opts))
	cmd.AddCommand(newSinceCommand(opts))
	cmd.AddCommand(newCommonCommand(opts))

	return cmd
}

// Execute runs tickcalc with the process arguments, writing results to
// stdout, and returns the exit code.
func Execute(stdout io.Writer) int {
	runID := xid.New().String()
	log := newLogger(os.Stderr, zerolog.InfoLevel, runID)

	cfg, err := LoadConfig()
	if err != nil {
		log.Error().Err(err).Msg("cannot load configuration")
		return ExitConfigError
	}

	root := newRootCommand(cfg, runID)
	root.SetOut(stdout)

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("tickcalc failed")
		return ExitFailure
	}

	return ExitSuccess
}
