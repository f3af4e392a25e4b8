//go:build !civil_no_dprc

package civil

/*
dprc_on.go contains legacy panicking constructors. They are excluded
when building with "-tags civil_no_dprc".
*/

import "time"

/*
Deprecated: FromYMD returns the [Date] for year-month-day and panics if
the combination is invalid or out of range.

Use [DateOf] instead.
*/
func FromYMD(year int, month time.Month, day int) Date {
	d, ok := DateOf(year, month, day)
	if !ok {
		panic("civil: invalid or out-of-range date " + itoa(year) + "-" +
			itoa(int(month)) + "-" + itoa(day))
	}
	return d
}

/*
Deprecated: FromHMS returns the [Time] for hour:min:sec and panics if
any field is out of range.

Use [TimeOf] instead.
*/
func FromHMS(hour, min, sec int) Time { return FromHMSNano(hour, min, sec, 0) }

/*
Deprecated: FromHMSNano returns the [Time] for hour:min:sec plus nsec
nanoseconds and panics if any field is out of range.

Use [TimeOf] instead.
*/
func FromHMSNano(hour, min, sec, nsec int) Time {
	t, ok := TimeOf(hour, min, sec, nsec)
	if !ok {
		panic("civil: invalid time " + itoa(hour) + ":" + itoa(min) + ":" +
			itoa(sec) + "." + itoa(nsec))
	}
	return t
}

/*
Deprecated: FromTimestamp returns the [DateTime] lying secs seconds plus
nsec nanoseconds after the epoch and panics if it is out of range.

Use [FromUnix] instead.
*/
func FromTimestamp(secs int64, nsec uint32) DateTime {
	dt, ok := FromUnix(secs, nsec)
	if !ok {
		panic("civil: timestamp " + fmtInt(secs, 10) + " out of range")
	}
	return dt
}
