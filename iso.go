package civil

/*
iso.go implements the canonical ISO 8601 text forms of Date, Time,
DateTime and Duration, along with their encoding.TextMarshaler and
encoding.TextUnmarshaler methods (which encoding/json honors).
*/

/*
String returns the canonical form of the receiver instance, e.g.:
"2001-09-09T01:46:40", "-0001-12-31T23:59:60.500" or
"+10000-01-01T00:00:00.000001".
*/
func (r DateTime) String() string {
	var buf [48]byte
	return string(r.AppendFormat(buf[:0], ISODateTimeItems...))
}

/*
Display returns the receiver instance formatted as with [DateTime.String]
but with a space in place of the "T" separator.
*/
func (r DateTime) Display() string {
	var buf [48]byte
	return string(r.AppendFormat(buf[:0], DisplayItems...))
}

// String returns the canonical form of the receiver instance, e.g.: "2015-02-18".
func (r Date) String() string {
	var buf [16]byte
	return string(DateTime{date: r}.AppendFormat(buf[:0], ISODateItems...))
}

// String returns the canonical form of the receiver instance, e.g.: "23:56:04.012".
func (r Time) String() string {
	var buf [24]byte
	return string(DateTime{time: r}.AppendFormat(buf[:0], ISOTimeItems...))
}

/*
ParseDateTime returns an instance of [DateTime] alongside an error
following an attempt to parse s in the canonical form written by
[DateTime.String]:

	[±]YYYY-MM-DDTHH:MM:SS[.fraction]

The fraction may hold any number of digits, of which the first nine
are kept. A second of 60 denotes a leap second. Errors are of type
*[ParseError].
*/
func ParseDateTime(s string) (DateTime, error) {
	return ParseItems(s, ISODateTimeItems...)
}

/*
ParseDate returns an instance of [Date] alongside an error following an
attempt to parse s as "[±]YYYY-MM-DD".
*/
func ParseDate(s string) (Date, error) {
	var p Parsed
	err := p.Parse(s, ISODateItems...)
	if err == nil {
		var d Date
		if d, err = p.ToDate(); err == nil {
			return d, nil
		}
	}
	return Date{}, withInput(err, s)
}

/*
ParseTime returns an instance of [Time] alongside an error following an
attempt to parse s as "HH:MM:SS[.fraction]".
*/
func ParseTime(s string) (Time, error) {
	var p Parsed
	err := p.Parse(s, ISOTimeItems...)
	if err == nil {
		var t Time
		if t, err = p.ToTime(); err == nil {
			return t, nil
		}
	}
	return Time{}, withInput(err, s)
}

/*
MarshalText returns the canonical form of the receiver instance. It never
fails.
*/
func (r DateTime) MarshalText() ([]byte, error) {
	return r.AppendFormat(make([]byte, 0, 32), ISODateTimeItems...), nil
}

/*
UnmarshalText parses b per [ParseDateTime] into the receiver instance.
*/
func (r *DateTime) UnmarshalText(b []byte) error {
	dt, err := ParseDateTime(string(b))
	if err == nil {
		*r = dt
	}
	return err
}

// MarshalText returns the canonical form of the receiver instance.
func (r Date) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText parses b per [ParseDate] into the receiver instance.
func (r *Date) UnmarshalText(b []byte) error {
	d, err := ParseDate(string(b))
	if err == nil {
		*r = d
	}
	return err
}

// MarshalText returns the canonical form of the receiver instance.
func (r Time) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText parses b per [ParseTime] into the receiver instance.
func (r *Time) UnmarshalText(b []byte) error {
	t, err := ParseTime(string(b))
	if err == nil {
		*r = t
	}
	return err
}

// MarshalText returns the ISO 8601 form of the receiver instance.
func (r Duration) MarshalText() ([]byte, error) {
	return r.appendISO(make([]byte, 0, 32)), nil
}

// UnmarshalText parses b per [ParseDuration] into the receiver instance.
func (r *Duration) UnmarshalText(b []byte) error {
	d, err := ParseDuration(string(b))
	if err == nil {
		*r = d
	}
	return err
}
