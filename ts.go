package civil

/*
ts.go implements conversion between DateTime values and Unix timestamps
of second, millisecond, microsecond and nanosecond resolution. Every
timestamp is read as a UTC wall-clock reading; leap seconds never occur
in the timestamp scale.
*/

/*
FromUnix returns the [DateTime] lying secs seconds plus nsec nanoseconds
after 1970-01-01T00:00:00, alongside a Boolean value indicative of nsec
being below 2×10⁹ and the result being in range. A nsec value of 10⁹ or
above yields a leap second.
*/
func FromUnix(secs int64, nsec uint32) (dt DateTime, ok bool) {
	done := debugPath(newLItem(secs, "secs"), newLItem(nsec, "nsec"))
	defer func() { done(dt, newLItem(ok, "ok")) }()

	days, sod := divFloor(secs, secsPerDay)
	t, ok := TimeFromSeconds(uint32(sod), nsec)
	if !ok {
		return DateTime{}, false
	}
	d, ok := DateFromDays(days)
	if !ok {
		return DateTime{}, false
	}
	return DateTime{date: d, time: t}, true
}

/*
FromUnixMilli returns the [DateTime] lying ms milliseconds after the
epoch, alongside a Boolean value indicative of it being in range.
Negative values yield earlier instants: -1 is 1969-12-31T23:59:59.999.
*/
func FromUnixMilli(ms int64) (DateTime, bool) {
	s, r := divFloor(ms, millisPerSec)
	return FromUnix(s, uint32(r)*nanosPerMilli)
}

// FromUnixMicro is like [FromUnixMilli], for microseconds.
func FromUnixMicro(us int64) (DateTime, bool) {
	s, r := divFloor(us, microsPerSec)
	return FromUnix(s, uint32(r)*nanosPerMicro)
}

/*
FromUnixNano returns the [DateTime] lying ns nanoseconds after the epoch.
Every int64 value lies within range.
*/
func FromUnixNano(ns int64) DateTime {
	s, r := divFloor(ns, nanosPerSec)
	dt, _ := FromUnix(s, uint32(r))
	return dt
}

/*
Unix returns the number of whole seconds from the epoch to the receiver
instance, flooring for instants before it. Any leap second is dropped.
*/
func (r DateTime) Unix() int64 {
	return r.date.Days()*secsPerDay + int64(r.time.secs)
}

/*
UnixMilli returns the number of whole milliseconds from the epoch. The
leap fraction of a leap second counts toward the result, such that
23:59:60.5 reads one second beyond 23:59:59.5. The supported range
guarantees the result fits.
*/
func (r DateTime) UnixMilli() int64 {
	return r.Unix()*millisPerSec + int64(r.time.frac/nanosPerMilli)
}

// UnixMicro is like [DateTime.UnixMilli], for microseconds.
func (r DateTime) UnixMicro() int64 {
	return r.Unix()*microsPerSec + int64(r.time.frac/nanosPerMicro)
}

/*
UnixNano returns the number of nanoseconds from the epoch alongside a
Boolean value indicative of it fitting within an int64, which holds
between 1677-09-21T00:12:43.145224192 and 2262-04-11T23:47:16.854775807.
*/
func (r DateTime) UnixNano() (int64, bool) {
	secs, frac := r.Unix(), int64(r.time.frac)
	if secs < 0 && frac > 0 {
		// keep the product clear of the lower int64 bound
		secs++
		frac -= nanosPerSec
	}
	n, ok := mulInt64(secs, nanosPerSec)
	if ok {
		n, ok = addInt64(n, frac)
	}
	return n, ok
}

/*
UnixSubsecNanos returns the fractional part of the receiver instance in
nanoseconds, within [0, 2×10⁹).
*/
func (r DateTime) UnixSubsecNanos() uint32 { return r.time.frac }
