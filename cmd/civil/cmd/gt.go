package cmd

import (
	"github.com/spf13/cobra"
)

func newGTCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:     "gt <datetime>",
		Short:   "Print a date-time as zone-less GeneralizedTime",
		Example: `  civil gt 2001-09-09T01:46:40.5`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := o.dateTime(args[0])
			if err != nil {
				return err
			}
			gt, err := dt.GeneralizedTime()
			if err != nil {
				return err
			}
			return o.emit(map[string]string{"generalizedTime": gt}, gt)
		},
	}
}
