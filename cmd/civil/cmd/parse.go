package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	civil "github.com/JesseCoretta/go-civil"
)

type parseResult struct {
	DateTime civil.DateTime `json:"datetime" yaml:"datetime"`
	Weekday  string         `json:"weekday" yaml:"weekday"`
	Ordinal  string         `json:"ordinal" yaml:"ordinal"`
	Week     string         `json:"week" yaml:"week"`
	Unix     int64          `json:"unix" yaml:"unix"`
	Leap     bool           `json:"leap" yaml:"leap"`
}

func newParseCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <datetime>",
		Short: "Parse a date-time and describe it",
		Example: `  civil parse 2016-12-31T23:59:60.5
  civil parse 20010909014640 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := o.dateTime(args[0])
			if err != nil {
				return err
			}
			res := parseResult{
				DateTime: dt,
				Weekday:  dt.Weekday().String(),
				Ordinal:  dt.Format(civil.ISOOrdinalItems...),
				Week:     dt.Format(civil.ISOWeekItems...),
				Unix:     dt.Unix(),
				Leap:     dt.IsLeapSecond(),
			}
			return o.emit(res,
				"datetime: "+o.format(dt),
				"weekday:  "+res.Weekday,
				"ordinal:  "+res.Ordinal,
				"week:     "+res.Week,
				fmt.Sprintf("unix:     %d", res.Unix),
				fmt.Sprintf("leap:     %t", res.Leap))
		},
	}
}
