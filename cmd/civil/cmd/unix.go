package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	civil "github.com/JesseCoretta/go-civil"
)

// unixOptions holds the flags of the unix and ts subcommands.
type unixOptions struct {
	unit unit
}

// AddFlags registers the timestamp flags on flagSet.
func (u *unixOptions) AddFlags(flagSet *pflag.FlagSet) {
	u.unit = unitSeconds
	flagSet.VarP(&u.unit, "unit", "u", "timestamp resolution: s, ms, us or ns")
}

type unixResult struct {
	DateTime civil.DateTime `json:"datetime" yaml:"datetime"`
	Unit     string         `json:"unit" yaml:"unit"`
	Value    int64          `json:"value" yaml:"value"`
}

func newUnixCommand(o *options) *cobra.Command {
	uo := &unixOptions{}
	cmd := &cobra.Command{
		Use:   "unix <timestamp>",
		Short: "Convert a Unix timestamp to a date-time",
		Example: `  civil unix 1000000000
  civil unix --unit ms -- -1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid timestamp %q: %w", args[0], err)
			}

			var (
				dt civil.DateTime
				ok = true
			)
			switch uo.unit {
			case unitMillis:
				dt, ok = civil.FromUnixMilli(n)
			case unitMicros:
				dt, ok = civil.FromUnixMicro(n)
			case unitNanos:
				dt = civil.FromUnixNano(n)
			default:
				dt, ok = civil.FromUnix(n, 0)
			}
			if !ok {
				return fmt.Errorf("timestamp %d%s out of range", n, uo.unit)
			}

			cs, err := o.constraints()
			if err != nil {
				return err
			}
			if err = cs.Constrain(dt); err != nil {
				return err
			}
			o.logger.Debug("converted", "value", n, "unit", uo.unit.String())
			return o.emit(unixResult{DateTime: dt, Unit: uo.unit.String(), Value: n}, o.format(dt))
		},
	}
	uo.AddFlags(cmd.Flags())
	return cmd
}

func newTSCommand(o *options) *cobra.Command {
	uo := &unixOptions{}
	cmd := &cobra.Command{
		Use:     "ts <datetime>",
		Short:   "Convert a date-time to a Unix timestamp",
		Example: `  civil ts 2001-09-09T01:46:40 --unit ms`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := o.dateTime(args[0])
			if err != nil {
				return err
			}

			var (
				n  int64
				ok = true
			)
			switch uo.unit {
			case unitMillis:
				n = dt.UnixMilli()
			case unitMicros:
				n = dt.UnixMicro()
			case unitNanos:
				n, ok = dt.UnixNano()
			default:
				n = dt.Unix()
			}
			if !ok {
				return fmt.Errorf("%s cannot be expressed in %s", dt, uo.unit)
			}
			return o.emit(unixResult{DateTime: dt, Unit: uo.unit.String(), Value: n},
				strconv.FormatInt(n, 10))
		},
	}
	uo.AddFlags(cmd.Flags())
	return cmd
}
