package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	civil "github.com/JesseCoretta/go-civil"
)

// options holds the settings shared by every subcommand.
type options struct {
	cfgFile string
	verbose bool
	display bool
	output  string
	require []string

	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
}

// AddFlags registers the global flags on flagSet.
func (o *options) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&o.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	flagSet.BoolVarP(&o.verbose, "verbose", "v", false, "log diagnostics to stderr")
	flagSet.BoolVar(&o.display, "display", false, "separate date and time with a space")
	flagSet.StringVarP(&o.output, "output", "o", "text", "output format: text, json or yaml")
	flagSet.StringSliceVar(&o.require, "require", nil, "named constraints every date-time must satisfy")
}

// complete merges the config file into any flag left unset.
func (o *options) complete(cmd *cobra.Command) error {
	if o.cfgFile != "" {
		cfg, err := LoadConfig(o.cfgFile)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if !flags.Changed("display") {
			o.display = cfg.Display
		}
		if !flags.Changed("output") && cfg.Output != "" {
			o.output = cfg.Output
		}
		if !flags.Changed("require") && len(cfg.Require) > 0 {
			o.require = cfg.Require
		}
	}

	switch o.output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q", o.output)
	}

	o.logger = newCommandLogger(o.errOut, o.verbose).With("command", cmd.Name())
	o.logger.Debug("configured",
		"config", o.cfgFile,
		"output", o.output,
		"display", o.display,
		"require", o.require)
	return nil
}

// constraints resolves the --require names.
func (o *options) constraints() (civil.ConstraintGroup[civil.DateTime], error) {
	cs, err := civil.LookupConstraints[civil.DateTime](o.require...)
	if err != nil {
		return nil, err
	}
	return cs, nil
}

// dateTime parses s and applies the --require constraints.
func (o *options) dateTime(s string) (civil.DateTime, error) {
	cs, err := o.constraints()
	if err != nil {
		return civil.DateTime{}, err
	}
	dt, err := civil.NewDateTime(s, cs...)
	if err != nil {
		return civil.DateTime{}, err
	}
	o.logger.Debug("parsed", "input", s, "datetime", dt.String())
	return dt, nil
}

func (o *options) format(dt civil.DateTime) string {
	if o.display {
		return dt.Display()
	}
	return dt.String()
}

// NewRootCommand returns the civil command tree writing to out and errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	o := &options{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "civil",
		Short: "Civil date and time calculator",
		Long: `civil converts, inspects and computes with calendar dates and
times of day that carry no time zone.

Date-times are written as [±]YYYY-MM-DDTHH:MM:SS[.fraction], or as
zone-less GeneralizedTime (YYYYMMDDHHMMSS[.fraction]). Durations use
the ISO 8601 form, e.g. P1DT2.5S; pass negative ones after "--".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.complete(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	o.AddFlags(root.PersistentFlags())

	root.AddCommand(
		newParseCommand(o),
		newUnixCommand(o),
		newTSCommand(o),
		newAddCommand(o),
		newSinceCommand(o),
		newWeekCommand(o),
		newGTCommand(o),
		newVersionCommand(o),
	)
	return root
}

// Execute runs the command tree against the process arguments.
func Execute() error {
	return NewRootCommand(os.Stdout, os.Stderr).Execute()
}
