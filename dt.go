package civil

/*
dt.go implements the DateTime type, pairing a Date with a Time, and the
generic constructors of this package.
*/

import "time"

/*
DateTime implements a civil date and time of day without a time zone.
The zero value is 1970-01-01T00:00:00.

Ordering is lexicographic: by date first, then by time of day, such
that a leap second sorts between the second it extends and the next.
*/
type DateTime struct {
	date Date
	time Time
}

/*
MinDateTime and MaxDateTime are the first and last representable
instants, the start of [MinDate] and the final nanosecond of the leap
second which may close [MaxDate].
*/
var (
	MinDateTime = DateTime{date: MinDate}
	MaxDateTime = DateTime{date: MaxDate, time: Time{secs: secsPerDay - 1, frac: maxFrac - 1}}
)

/*
DateTimeOf returns the [DateTime] combining d and t. Every such
combination is valid.
*/
func DateTimeOf(d Date, t Time) DateTime { return DateTime{date: d, time: t} }

/*
At returns the [DateTime] combining the receiver instance with t.
*/
func (r Date) At(t Time) DateTime { return DateTime{date: r, time: t} }

// Date returns the date component of the receiver instance.
func (r DateTime) Date() Date { return r.date }

// Time returns the time-of-day component of the receiver instance.
func (r DateTime) Time() Time { return r.time }

// Year returns the calendar year of the receiver instance.
func (r DateTime) Year() int { return r.date.Year() }

// Month returns the calendar month of the receiver instance.
func (r DateTime) Month() time.Month { return r.date.Month() }

// Day returns the day of the month of the receiver instance.
func (r DateTime) Day() int { return r.date.Day() }

// YearDay returns the ordinal day of the year (1..366) of the receiver instance.
func (r DateTime) YearDay() int { return r.date.YearDay() }

// Weekday returns the day of the week of the receiver instance.
func (r DateTime) Weekday() time.Weekday { return r.date.Weekday() }

// ISOWeek returns the ISO 8601 week-numbering year and week of the receiver instance.
func (r DateTime) ISOWeek() (year, week int) { return r.date.ISOWeek() }

// Hour returns the hour (0..23) of the receiver instance.
func (r DateTime) Hour() int { return r.time.Hour() }

// Minute returns the minute (0..59) of the receiver instance.
func (r DateTime) Minute() int { return r.time.Minute() }

// Second returns the second (0..59) of the receiver instance; see [Time.Second].
func (r DateTime) Second() int { return r.time.Second() }

// Nanosecond returns the fractional part of the receiver instance, in
// nanoseconds, which is one billion or more within a leap second.
func (r DateTime) Nanosecond() int { return r.time.Nanosecond() }

// IsLeapSecond reports whether the receiver instance lies within a leap second.
func (r DateTime) IsLeapSecond() bool { return r.time.IsLeapSecond() }

/*
Compare returns -1, 0 or +1 if the receiver instance is before, equal
to or after u.
*/
func (r DateTime) Compare(u DateTime) int {
	if c := r.date.Compare(u.date); c != 0 {
		return c
	}
	return r.time.Compare(u.time)
}

// Before returns a Boolean value indicative of the receiver preceding u.
func (r DateTime) Before(u DateTime) bool { return r.Compare(u) < 0 }

// After returns a Boolean value indicative of the receiver following u.
func (r DateTime) After(u DateTime) bool { return r.Compare(u) > 0 }

// Equal returns a Boolean value indicative of the receiver matching u.
func (r DateTime) Equal(u DateTime) bool { return r == u }

/*
NewDateTime returns an instance of [DateTime] alongside an error
following an attempt to marshal x.

Accepted input types are:

  - string or []byte, parsed by [ParseDateTime], or by
    [ParseGeneralizedTime] when the value bears no '-' beyond an
    optional leading sign
  - [DateTime]
  - [time.Time], whose wall clock reading is taken as-is
  - int64, read as a count of Unix seconds

Any constraints supplied are applied to the result.
*/
func NewDateTime(x any, constraints ...Constraint[DateTime]) (DateTime, error) {
	var (
		dt  DateTime
		err error
	)

	switch tv := x.(type) {
	case string:
		dt, err = parseAnyDateTime(tv)
	case []byte:
		dt, err = parseAnyDateTime(string(tv))
	case DateTime:
		dt = tv
	case time.Time:
		var ok bool
		if dt, ok = FromTime(tv); !ok {
			err = errorTimeRange
		}
	case int64:
		var ok bool
		if dt, ok = FromUnix(tv, 0); !ok {
			err = generalErrorf("unix timestamp ", tv, " out of range")
		}
	default:
		return DateTime{}, errorBadTypeForConstructor("DATE-TIME", x)
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[DateTime] = constraints
		err = group.Constrain(dt)
	}
	if err != nil {
		return DateTime{}, err
	}
	return dt, nil
}

func parseAnyDateTime(s string) (DateTime, error) {
	if len(s) > 1 && stridxb(s[1:], '-') < 0 {
		return ParseGeneralizedTime(s)
	}
	return ParseDateTime(s)
}

/*
NewDate returns an instance of [Date] alongside an error following an
attempt to marshal x, which may be a string or []byte (parsed by
[ParseDate]), a [Date], a [DateTime] or a [time.Time]. Any constraints
supplied are applied to the result.
*/
func NewDate(x any, constraints ...Constraint[Date]) (Date, error) {
	var (
		d   Date
		err error
	)

	switch tv := x.(type) {
	case string:
		d, err = ParseDate(tv)
	case []byte:
		d, err = ParseDate(string(tv))
	case Date:
		d = tv
	case DateTime:
		d = tv.Date()
	case time.Time:
		dt, ok := FromTime(tv)
		if !ok {
			err = errorTimeRange
		}
		d = dt.Date()
	default:
		return Date{}, errorBadTypeForConstructor("DATE", x)
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[Date] = constraints
		err = group.Constrain(d)
	}
	if err != nil {
		return Date{}, err
	}
	return d, nil
}

/*
NewTime returns an instance of [Time] alongside an error following an
attempt to marshal x, which may be a string or []byte (parsed by
[ParseTime]), a [Time], a [DateTime] or a [time.Time]. Any constraints
supplied are applied to the result.
*/
func NewTime(x any, constraints ...Constraint[Time]) (Time, error) {
	var (
		t   Time
		err error
	)

	switch tv := x.(type) {
	case string:
		t, err = ParseTime(tv)
	case []byte:
		t, err = ParseTime(string(tv))
	case Time:
		t = tv
	case DateTime:
		t = tv.Time()
	case time.Time:
		h, m, s := tv.Clock()
		t, _ = TimeOf(h, m, s, tv.Nanosecond())
	default:
		return Time{}, errorBadTypeForConstructor("TIME", x)
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[Time] = constraints
		err = group.Constrain(t)
	}
	if err != nil {
		return Time{}, err
	}
	return t, nil
}
