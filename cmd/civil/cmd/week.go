package cmd

import (
	"github.com/spf13/cobra"

	civil "github.com/JesseCoretta/go-civil"
)

type weekResult struct {
	Date    civil.Date `json:"date" yaml:"date"`
	Week    string     `json:"week" yaml:"week"`
	Ordinal string     `json:"ordinal" yaml:"ordinal"`
	Weekday string     `json:"weekday" yaml:"weekday"`
}

func newWeekCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:     "week <date>",
		Short:   "Print the ISO week and ordinal forms of a date",
		Example: `  civil week 2005-01-01`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := civil.NewDate(args[0])
			if err != nil {
				var dt civil.DateTime
				if dt, err = o.dateTime(args[0]); err != nil {
					return err
				}
				d = dt.Date()
			}

			at := d.At(civil.Midnight)
			cs, err := o.constraints()
			if err != nil {
				return err
			}
			if err = cs.Constrain(at); err != nil {
				return err
			}
			res := weekResult{
				Date:    d,
				Week:    at.Format(civil.ISOWeekItems...),
				Ordinal: at.Format(civil.ISOOrdinalItems...),
				Weekday: d.Weekday().String(),
			}
			return o.emit(res, res.Week, res.Ordinal)
		},
	}
}
