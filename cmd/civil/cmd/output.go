package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// emit writes v in the selected output format, or lines when the
// format is text.
func (o *options) emit(v any, lines ...string) error {
	switch o.output {
	case "json":
		enc := json.NewEncoder(o.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(o.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	_, err := fmt.Fprintln(o.out, strings.Join(lines, "\n"))
	return err
}

// unit selects the resolution of a Unix timestamp.
type unit string

const (
	unitSeconds unit = "s"
	unitMillis  unit = "ms"
	unitMicros  unit = "us"
	unitNanos   unit = "ns"
)

func (r *unit) String() string { return string(*r) }

func (r *unit) Set(s string) error {
	switch u := unit(strings.ToLower(s)); u {
	case unitSeconds, unitMillis, unitMicros, unitNanos:
		*r = u
		return nil
	}
	return fmt.Errorf("unit must be one of s, ms, us or ns")
}

func (r *unit) Type() string { return "unit" }
