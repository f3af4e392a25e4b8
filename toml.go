package civil

/*
toml.go implements the TOML encoding of the types of this package.

DateTime, Date and Time values are written as TOML local date-time,
local date and local time literals respectively. Values with no such
literal, namely years outside 0000..9999 and leap seconds, are written
as quoted strings in canonical form instead. Decoding accepts either.
Duration values are always quoted strings.
*/

import (
	"time"

	"github.com/BurntSushi/toml"
)

var (
	_ toml.Marshaler   = DateTime{}
	_ toml.Marshaler   = Date{}
	_ toml.Marshaler   = Time{}
	_ toml.Marshaler   = Duration{}
	_ toml.Unmarshaler = (*DateTime)(nil)
	_ toml.Unmarshaler = (*Date)(nil)
	_ toml.Unmarshaler = (*Time)(nil)
	_ toml.Unmarshaler = (*Duration)(nil)
)

func quoteTOML(s string) []byte { return []byte(`"` + s + `"`) }

func tomlLiteral(year int, leap bool) bool {
	return year >= 0 && year <= 9999 && !leap
}

// MarshalTOML returns a local date-time literal or a quoted string.
func (r DateTime) MarshalTOML() ([]byte, error) {
	if tomlLiteral(r.Year(), r.IsLeapSecond()) {
		return []byte(r.String()), nil
	}
	return quoteTOML(r.String()), nil
}

/*
UnmarshalTOML accepts a TOML local date-time (or any date-time, whose
wall-clock reading is kept) or a string per [ParseDateTime].
*/
func (r *DateTime) UnmarshalTOML(v any) error {
	switch tv := v.(type) {
	case time.Time:
		dt, ok := FromTime(tv)
		if !ok {
			return errorTimeRange
		}
		*r = dt
		return nil
	case string:
		return r.UnmarshalText([]byte(tv))
	}
	return codecErrorf("TOML: unsupported value for DATE-TIME")
}

// MarshalTOML returns a local date literal or a quoted string.
func (r Date) MarshalTOML() ([]byte, error) {
	if tomlLiteral(r.Year(), false) {
		return []byte(r.String()), nil
	}
	return quoteTOML(r.String()), nil
}

// UnmarshalTOML accepts a TOML local date or a string per [ParseDate].
func (r *Date) UnmarshalTOML(v any) error {
	switch tv := v.(type) {
	case time.Time:
		d, ok := DateOf(tv.Date())
		if !ok {
			return errorTimeRange
		}
		*r = d
		return nil
	case string:
		return r.UnmarshalText([]byte(tv))
	}
	return codecErrorf("TOML: unsupported value for DATE")
}

// MarshalTOML returns a local time literal or a quoted string.
func (r Time) MarshalTOML() ([]byte, error) {
	if tomlLiteral(0, r.IsLeapSecond()) {
		return []byte(r.String()), nil
	}
	return quoteTOML(r.String()), nil
}

// UnmarshalTOML accepts a TOML local time or a string per [ParseTime].
func (r *Time) UnmarshalTOML(v any) error {
	switch tv := v.(type) {
	case time.Time:
		h, m, s := tv.Clock()
		*r, _ = TimeOf(h, m, s, tv.Nanosecond())
		return nil
	case string:
		return r.UnmarshalText([]byte(tv))
	}
	return codecErrorf("TOML: unsupported value for TIME")
}

// MarshalTOML returns the ISO 8601 form of the receiver instance, quoted.
func (r Duration) MarshalTOML() ([]byte, error) { return quoteTOML(r.String()), nil }

// UnmarshalTOML accepts a string per [ParseDuration].
func (r *Duration) UnmarshalTOML(v any) error {
	if s, ok := v.(string); ok {
		return r.UnmarshalText([]byte(s))
	}
	return codecErrorf("TOML: unsupported value for DURATION")
}
