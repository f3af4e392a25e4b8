package cmd

import (
	"github.com/spf13/cobra"

	civil "github.com/JesseCoretta/go-civil"
)

type sinceResult struct {
	From     civil.DateTime `json:"from" yaml:"from"`
	To       civil.DateTime `json:"to" yaml:"to"`
	Duration civil.Duration `json:"duration" yaml:"duration"`
	Seconds  int64          `json:"seconds" yaml:"seconds"`
}

func newSinceCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:     "since <to> <from>",
		Short:   "Print the duration elapsed from one date-time to another",
		Example: `  civil since 2016-07-09T03:05:07 2016-07-08T03:05:07`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := o.dateTime(args[0])
			if err != nil {
				return err
			}
			from, err := o.dateTime(args[1])
			if err != nil {
				return err
			}
			d := to.Since(from)
			return o.emit(sinceResult{From: from, To: to, Duration: d, Seconds: d.Seconds()}, d.String())
		},
	}
}
