package civil

/*
arith.go implements checked arithmetic on DateTime values.
*/

// secsFitBits reports whether a carry of secs seconds stays below 2^maxSecsBits.
func secsFitBits(secs int64) bool {
	return secs > -(1<<maxSecsBits) && secs < 1<<maxSecsBits
}

/*
CheckedAdd returns the receiver instance shifted by d alongside a Boolean
value indicative of the result lying within [[MinDateTime], [MaxDateTime]].

The time of day is advanced first, wrapping past midnight as needed, and
the whole days thereby carried are then applied to the date. A receiver
lying within a leap second keeps it while d fits inside the remainder
of the leap band; see [Time.WrappingAdd]. Adding a zero [Duration]
always returns the receiver unchanged.
*/
func (r DateTime) CheckedAdd(d Duration) (dt DateTime, ok bool) {
	done := debugPath(r, newLItem(d, "delta"))
	defer func() { done(dt, newLItem(ok, "ok")) }()

	t, carry := r.time.overflowingAdd(d)
	return r.carry(t, carry, d)
}

/*
CheckedSub returns the receiver instance shifted back by d, as with
[DateTime.CheckedAdd]. The most negative [Duration] may be subtracted
even though it has no representable negation.
*/
func (r DateTime) CheckedSub(d Duration) (dt DateTime, ok bool) {
	done := debugPath(r, newLItem(d, "delta"))
	defer func() { done(dt, newLItem(ok, "ok")) }()

	t, carry := r.time.overflowingAdd(d.neg())
	return r.carry(t, carry, d)
}

func (r DateTime) carry(t Time, carry int64, d Duration) (DateTime, bool) {
	if !secsFitBits(carry) {
		debugArith(newLItem(r, "base"), newLItem(d, "delta"), "carry exceeds bound")
		return DateTime{}, false
	}
	date, ok := r.date.AddDays(carry / secsPerDay)
	if !ok {
		debugArith(newLItem(r, "base"), newLItem(d, "delta"), "date out of range")
		return DateTime{}, false
	}
	return DateTime{date: date, time: t}, true
}

/*
CheckedAddMonths returns the receiver instance shifted by n calendar
months, leaving the time of day untouched, alongside a Boolean value
indicative of success. The day of the month is clamped to the length of
the target month; see [Date.AddMonths].
*/
func (r DateTime) CheckedAddMonths(n int) (DateTime, bool) {
	d, ok := r.date.AddMonths(n)
	if !ok {
		return DateTime{}, false
	}
	return DateTime{date: d, time: r.time}, true
}

/*
CheckedSubMonths returns the receiver instance shifted back by n calendar
months, as with [DateTime.CheckedAddMonths].
*/
func (r DateTime) CheckedSubMonths(n int) (DateTime, bool) {
	if n == -n && n != 0 {
		return DateTime{}, false
	}
	return r.CheckedAddMonths(-n)
}

/*
CheckedAddDays returns the receiver instance shifted by n calendar days,
leaving the time of day untouched, alongside a Boolean value indicative
of success.
*/
func (r DateTime) CheckedAddDays(n int64) (DateTime, bool) {
	d, ok := r.date.AddDays(n)
	if !ok {
		return DateTime{}, false
	}
	return DateTime{date: d, time: r.time}, true
}

/*
CheckedSubDays returns the receiver instance shifted back by n calendar
days, as with [DateTime.CheckedAddDays].
*/
func (r DateTime) CheckedSubDays(n int64) (DateTime, bool) {
	if n == minInt64 {
		return DateTime{}, false
	}
	return r.CheckedAddDays(-n)
}

/*
Since returns the signed [Duration] from u to the receiver instance. The
result is always representable.

No leap-second table is consulted. The day difference counts 86,400
seconds per day, and the only leap seconds assumed to exist are those
held by the operands themselves: an operand within a leap second
contributes exactly one extra second, and when both operands are
leap-second instants exactly two leap seconds are assumed to have
occurred. Leap seconds lying strictly between the operands are never
counted.
*/
func (r DateTime) Since(u DateTime) Duration {
	days := r.date.DaysSince(u.date)
	return Duration{secs: days * secsPerDay}.add(r.time.Since(u.time))
}

/*
Add returns the receiver instance shifted by d, as with
[DateTime.CheckedAdd], and panics should the result be unrepresentable.
*/
func (r DateTime) Add(d Duration) DateTime {
	dt, ok := r.CheckedAdd(d)
	if !ok {
		panic("civil: " + r.String() + " + " + d.String() + " overflows the supported range")
	}
	return dt
}

/*
Sub returns the receiver instance shifted back by d, as with
[DateTime.CheckedSub], and panics should the result be unrepresentable.
*/
func (r DateTime) Sub(d Duration) DateTime {
	dt, ok := r.CheckedSub(d)
	if !ok {
		panic("civil: " + r.String() + " - " + d.String() + " overflows the supported range")
	}
	return dt
}

/*
AddMonths returns the receiver instance shifted by n calendar months,
as with [DateTime.CheckedAddMonths], and panics should the result be
unrepresentable.
*/
func (r DateTime) AddMonths(n int) DateTime {
	dt, ok := r.CheckedAddMonths(n)
	if !ok {
		panic("civil: " + r.String() + " + " + itoa(n) + " months overflows the supported range")
	}
	return dt
}
