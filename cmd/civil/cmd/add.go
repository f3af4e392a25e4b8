package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	civil "github.com/JesseCoretta/go-civil"
)

// addOptions holds the calendar offsets of the add subcommand.
type addOptions struct {
	months   int
	days     int64
	subtract bool
}

// AddFlags registers the offset flags on flagSet.
func (a *addOptions) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.IntVar(&a.months, "months", 0, "calendar months to add, clamping the day of month")
	flagSet.Int64Var(&a.days, "days", 0, "calendar days to add")
	flagSet.BoolVar(&a.subtract, "sub", false, "subtract the duration and offsets instead")
}

func newAddCommand(o *options) *cobra.Command {
	ao := &addOptions{}
	cmd := &cobra.Command{
		Use:   "add <datetime> [duration]",
		Short: "Add a duration and calendar offsets to a date-time",
		Long: `add applies --months, then --days, then the ISO 8601 duration to
the date-time. Leap seconds are preserved where the result stays
within the same second.`,
		Example: `  civil add 2016-12-31T23:59:60.5 PT0.5S
  civil add 2020-01-31T00:00:00 --months 1
  civil add 2017-01-01T00:00:00 --sub P1D`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := o.dateTime(args[0])
			if err != nil {
				return err
			}
			var d civil.Duration
			if len(args) == 2 {
				if d, err = civil.ParseDuration(args[1]); err != nil {
					return err
				}
			}

			months, days := ao.months, ao.days
			ok := true
			if ao.subtract {
				months, days = -months, -days
			}
			if months != 0 {
				dt, ok = dt.CheckedAddMonths(months)
			}
			if ok && days != 0 {
				dt, ok = dt.CheckedAddDays(days)
			}
			if ok {
				if ao.subtract {
					dt, ok = dt.CheckedSub(d)
				} else {
					dt, ok = dt.CheckedAdd(d)
				}
			}
			if !ok {
				return fmt.Errorf("result outside of %s .. %s", civil.MinDateTime, civil.MaxDateTime)
			}

			cs, err := o.constraints()
			if err != nil {
				return err
			}
			if err = cs.Constrain(dt); err != nil {
				return err
			}
			o.logger.Debug("computed", "months", months, "days", days, "duration", d.String())
			return o.emit(map[string]civil.DateTime{"datetime": dt}, o.format(dt))
		},
	}
	ao.AddFlags(cmd.Flags())
	return cmd
}
