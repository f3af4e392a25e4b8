package civil

/*
clk.go implements the time-of-day type, including the leap-second band
in which the fractional field reaches into a second second.
*/

/*
Time implements a time of day without a time zone, held as whole seconds
since midnight alongside a fractional part in nanoseconds. The zero value
is midnight.

A fractional part of one billion or more marks a leap second. Such values
are accepted at any second of the day, but only 23:59:59 plus a leap
fraction is rendered as second 60; see [Time.String].
*/
type Time struct {
	secs uint32
	frac uint32
}

/*
Midnight is the first instant of any day, 00:00:00.
*/
var Midnight Time

/*
TimeOf returns the [Time] for hour:min:sec plus nsec nanoseconds
alongside a Boolean value indicative of success. Hours must lie within
[0, 23], minutes and seconds within [0, 59]. A nsec value within
[10⁹, 2×10⁹) denotes a leap second.
*/
func TimeOf(hour, min, sec, nsec int) (Time, bool) {
	if hour < 0 || hour > 23 || min < 0 || min > 59 || sec < 0 || sec > 59 ||
		nsec < 0 || nsec >= maxFrac {
		debugClock(newLItem(hour, "hour"), newLItem(min, "min"),
			newLItem(sec, "sec"), newLItem(nsec, "nsec"), "rejected")
		return Time{}, false
	}
	return Time{secs: uint32(hour*secsPerHour + min*secsPerMinute + sec), frac: uint32(nsec)}, true
}

/*
TimeFromSeconds returns the [Time] lying secs seconds and nsec
nanoseconds after midnight, alongside a Boolean value indicative of
secs being below 86,400 and nsec below 2×10⁹.
*/
func TimeFromSeconds(secs, nsec uint32) (Time, bool) {
	if secs >= secsPerDay || nsec >= maxFrac {
		debugClock(newLItem(secs, "secs"), newLItem(nsec, "nsec"), "rejected")
		return Time{}, false
	}
	return Time{secs: secs, frac: nsec}, true
}

// Hour returns the hour of the receiver instance, within [0, 23].
func (r Time) Hour() int { return int(r.secs / secsPerHour) }

// Minute returns the minute of the receiver instance, within [0, 59].
func (r Time) Minute() int { return int(r.secs / secsPerMinute % 60) }

// Second returns the second of the receiver instance, within [0, 59].
func (r Time) Second() int { return int(r.secs % secsPerMinute) }

/*
Nanosecond returns the fractional part of the receiver instance, within
[0, 2×10⁹). Values of 10⁹ and above indicate a leap second.
*/
func (r Time) Nanosecond() int { return int(r.frac) }

/*
Clock returns the hour, minute and second of the receiver instance.
*/
func (r Time) Clock() (hour, min, sec int) {
	return r.Hour(), r.Minute(), r.Second()
}

/*
SecondsFromMidnight returns the number of whole seconds elapsed since
midnight, excluding any leap second.
*/
func (r Time) SecondsFromMidnight() uint32 { return r.secs }

/*
IsLeapSecond returns a Boolean value indicative of the receiver instance
lying within a leap second.
*/
func (r Time) IsLeapSecond() bool { return r.frac >= nanosPerSec }

/*
Compare returns -1, 0 or +1 if the receiver instance is before, equal
to or after u. A leap second sorts after the second it extends and
before the following one.
*/
func (r Time) Compare(u Time) int {
	switch {
	case r.secs < u.secs:
		return -1
	case r.secs > u.secs:
		return 1
	case r.frac < u.frac:
		return -1
	case r.frac > u.frac:
		return 1
	}
	return 0
}

// Before returns a Boolean value indicative of the receiver preceding u.
func (r Time) Before(u Time) bool { return r.Compare(u) < 0 }

// After returns a Boolean value indicative of the receiver following u.
func (r Time) After(u Time) bool { return r.Compare(u) > 0 }

/*
WrappingAdd returns the receiver instance shifted by d, wrapped around
midnight, alongside the signed number of whole days the addition carried
over.

When the receiver lies within a leap second, the remainder of that
second is consumed first: d reaches the next second only if it exceeds
the rest of the leap band, and reaches back before the leap second only
if it exceeds the elapsed part of the band. Otherwise the result stays
within the same leap second.
*/
func (r Time) WrappingAdd(d Duration) (Time, int64) {
	t, carry := r.overflowingAdd(d)
	return t, carry / secsPerDay
}

/*
WrappingSub returns the receiver instance shifted back by d, wrapped
around midnight, alongside the signed number of whole days carried. As
with [Time.WrappingAdd], a negative carry moves the date backward.
*/
func (r Time) WrappingSub(d Duration) (Time, int64) {
	return r.WrappingAdd(d.neg())
}

/*
overflowingAdd returns r+d wrapped into a single day, alongside the
overflow in seconds, which is always a multiple of 86,400.
*/
func (r Time) overflowingAdd(d Duration) (Time, int64) {
	secs, frac := int64(r.secs), int64(r.frac)

	if frac >= nanosPerSec {
		rest := maxFrac - frac
		switch {
		case d.Compare(Nanoseconds(rest)) >= 0:
			d = d.sub(Nanoseconds(rest))
			secs++
			frac = 0
		case d.Compare(Nanoseconds(-frac)) < 0:
			d = d.add(Nanoseconds(frac))
			frac = 0
		default:
			// d fits within the leap band and is therefore tiny
			n := frac + d.secs*nanosPerSec + int64(d.nanos)
			return Time{secs: uint32(secs), frac: uint32(n)}, 0
		}
	}

	dsecs := d.Seconds()
	dfrac := int64(d.nanosModSec())
	inDay := dsecs % secsPerDay
	carry := dsecs - inDay

	secs += inDay
	frac += dfrac
	switch {
	case frac < 0:
		frac += nanosPerSec
		secs--
	case frac >= nanosPerSec:
		frac -= nanosPerSec
		secs++
	}
	switch {
	case secs < 0:
		secs += secsPerDay
		carry -= secsPerDay
	case secs >= secsPerDay:
		secs -= secsPerDay
		carry += secsPerDay
	}

	return Time{secs: uint32(secs), frac: uint32(frac)}, carry
}

/*
Since returns the signed [Duration] from u to the receiver instance.

A leap second counts as a full second only when it lies between the two
operands: one instant within a leap second and the other in a later
(or earlier) second yields an extra second. Two instants in the same
leap second differ by their fractions alone.
*/
func (r Time) Since(u Time) Duration {
	secs := int64(r.secs) - int64(u.secs)
	frac := int64(r.frac) - int64(u.frac)

	var adjust int64
	switch {
	case r.secs > u.secs:
		if u.frac >= nanosPerSec {
			adjust = 1
		}
	case r.secs < u.secs:
		if r.frac >= nanosPerSec {
			adjust = -1
		}
	}

	return normDuration(secs+adjust, frac)
}
