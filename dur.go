package civil

/*
dur.go implements the signed, exact Duration type and its ISO 8601
textual form.
*/

import "time"

/*
Duration implements a signed span of time with nanosecond precision,
held as whole seconds plus a non-negative nanosecond remainder. The
zero value is a zero-length span.

Durations are bounded by [MinDuration] and [MaxDuration], the spans of
the smallest and largest int64 number of milliseconds. Every fallible
constructor and arithmetic method reports whether its result falls
within those bounds instead of wrapping.
*/
type Duration struct {
	secs  int64
	nanos int32
}

/*
MinDuration and MaxDuration are the smallest and largest representable
[Duration] values, -9223372036854775.808s and 9223372036854775.807s.
*/
var (
	MinDuration = Duration{secs: minInt64/millisPerSec - 1, nanos: nanosPerSec + minInt64%millisPerSec*nanosPerMilli}
	MaxDuration = Duration{secs: maxInt64 / millisPerSec, nanos: maxInt64 % millisPerSec * nanosPerMilli}
)

/*
normDuration returns the Duration of secs seconds plus nanos nanoseconds,
normalizing nanos into [0, 10⁹). The caller guarantees the result fits.
*/
func normDuration(secs, nanos int64) Duration {
	q, r := divFloor(nanos, nanosPerSec)
	return Duration{secs: secs + q, nanos: int32(r)}
}

func (r Duration) valid() bool {
	return r.Compare(MinDuration) >= 0 && r.Compare(MaxDuration) <= 0
}

func checkedDuration(d Duration) (Duration, bool) {
	if !d.valid() {
		debugArith(newLItem(d.secs, "secs"), "duration out of range")
		return Duration{}, false
	}
	return d, true
}

/*
DurationOf returns the [Duration] of secs seconds plus nanos nanoseconds
alongside a Boolean value indicative of the result being representable.
Either component may be negative or exceed the range of the other.
*/
func DurationOf(secs, nanos int64) (Duration, bool) {
	q, r := divFloor(nanos, nanosPerSec)
	s, ok := addInt64(secs, q)
	if !ok {
		return Duration{}, false
	}
	return checkedDuration(Duration{secs: s, nanos: int32(r)})
}

func scaledDuration(n, unit int64) (Duration, bool) {
	s, ok := mulInt64(n, unit)
	if !ok {
		debugArith(newLItem(n, "n"), newLItem(unit, "unit"), "overflow")
		return Duration{}, false
	}
	return checkedDuration(Duration{secs: s})
}

/*
Weeks returns the [Duration] of n weeks alongside a Boolean value
indicative of the result being representable.
*/
func Weeks(n int64) (Duration, bool) { return scaledDuration(n, secsPerWeek) }

// Days returns n days, as with [Weeks].
func Days(n int64) (Duration, bool) { return scaledDuration(n, secsPerDay) }

// Hours returns n hours, as with [Weeks].
func Hours(n int64) (Duration, bool) { return scaledDuration(n, secsPerHour) }

// Minutes returns n minutes, as with [Weeks].
func Minutes(n int64) (Duration, bool) { return scaledDuration(n, secsPerMinute) }

// Seconds returns n seconds, as with [Weeks].
func Seconds(n int64) (Duration, bool) { return scaledDuration(n, 1) }

/*
Milliseconds returns the [Duration] of n milliseconds. Every int64
value is representable.
*/
func Milliseconds(n int64) Duration {
	s, r := divFloor(n, millisPerSec)
	return Duration{secs: s, nanos: int32(r * nanosPerMilli)}
}

// Microseconds returns the [Duration] of n microseconds.
func Microseconds(n int64) Duration {
	s, r := divFloor(n, microsPerSec)
	return Duration{secs: s, nanos: int32(r * nanosPerMicro)}
}

// Nanoseconds returns the [Duration] of n nanoseconds.
func Nanoseconds(n int64) Duration {
	s, r := divFloor(n, nanosPerSec)
	return Duration{secs: s, nanos: int32(r)}
}

/*
IsZero returns a Boolean value indicative of the receiver instance
being a zero-length span.
*/
func (r Duration) IsZero() bool { return r.secs == 0 && r.nanos == 0 }

/*
IsNegative returns a Boolean value indicative of the receiver instance
being shorter than zero.
*/
func (r Duration) IsNegative() bool { return r.secs < 0 }

/*
Compare returns -1, 0 or +1 if the receiver instance is shorter than,
equal to or longer than u.
*/
func (r Duration) Compare(u Duration) int {
	switch {
	case r.secs < u.secs:
		return -1
	case r.secs > u.secs:
		return 1
	case r.nanos < u.nanos:
		return -1
	case r.nanos > u.nanos:
		return 1
	}
	return 0
}

/*
Seconds returns the number of whole seconds in the receiver instance,
truncated toward zero.
*/
func (r Duration) Seconds() int64 {
	if r.secs < 0 && r.nanos > 0 {
		return r.secs + 1
	}
	return r.secs
}

/*
nanosModSec returns the sub-second part of the receiver instance with
the sign of the whole, such that Seconds()*10⁹ + nanosModSec() is the
exact total.
*/
func (r Duration) nanosModSec() int32 {
	if r.secs < 0 && r.nanos > 0 {
		return r.nanos - nanosPerSec
	}
	return r.nanos
}

/*
SubsecNanos returns the sub-second part of the receiver instance in
nanoseconds, within (-10⁹, 10⁹) and carrying the sign of the receiver.
*/
func (r Duration) SubsecNanos() int32 { return r.nanosModSec() }

// WholeMinutes returns the number of whole minutes, truncated toward zero.
func (r Duration) WholeMinutes() int64 { return r.Seconds() / secsPerMinute }

// WholeHours returns the number of whole hours, truncated toward zero.
func (r Duration) WholeHours() int64 { return r.Seconds() / secsPerHour }

// WholeDays returns the number of whole days, truncated toward zero.
func (r Duration) WholeDays() int64 { return r.Seconds() / secsPerDay }

// WholeWeeks returns the number of whole weeks, truncated toward zero.
func (r Duration) WholeWeeks() int64 { return r.Seconds() / secsPerWeek }

/*
Milliseconds returns the total number of whole milliseconds, truncated
toward zero. The bounds of [Duration] guarantee the result fits.
*/
func (r Duration) Milliseconds() int64 {
	return r.Seconds()*millisPerSec + int64(r.nanosModSec()/nanosPerMilli)
}

/*
Microseconds returns the total number of whole microseconds, truncated
toward zero, alongside a Boolean value indicative of it fitting within
an int64.
*/
func (r Duration) Microseconds() (int64, bool) {
	return r.total(microsPerSec, nanosPerMicro)
}

/*
Nanoseconds returns the total number of nanoseconds alongside a Boolean
value indicative of it fitting within an int64, which holds for spans
up to roughly 292 years.
*/
func (r Duration) Nanoseconds() (int64, bool) {
	return r.total(nanosPerSec, 1)
}

func (r Duration) total(perSec, div int64) (int64, bool) {
	n, ok := mulInt64(r.Seconds(), perSec)
	if ok {
		n, ok = addInt64(n, int64(r.nanosModSec())/div)
	}
	return n, ok
}

// add and sub are unchecked; callers bound their operands.
func (r Duration) add(u Duration) Duration {
	return normDuration(r.secs+u.secs, int64(r.nanos)+int64(u.nanos))
}

func (r Duration) sub(u Duration) Duration {
	return normDuration(r.secs-u.secs, int64(r.nanos)-int64(u.nanos))
}

// neg is unchecked: negating MinDuration exceeds MaxDuration by 1ms.
func (r Duration) neg() Duration {
	if r.nanos == 0 {
		return Duration{secs: -r.secs}
	}
	return Duration{secs: -r.secs - 1, nanos: nanosPerSec - r.nanos}
}

/*
CheckedAdd returns the sum of the receiver instance and u alongside a
Boolean value indicative of it being representable.
*/
func (r Duration) CheckedAdd(u Duration) (Duration, bool) {
	s, ok := addInt64(r.secs, u.secs)
	if !ok {
		return Duration{}, false
	}
	nanos := r.nanos + u.nanos
	if nanos >= nanosPerSec {
		nanos -= nanosPerSec
		if s, ok = addInt64(s, 1); !ok {
			return Duration{}, false
		}
	}
	return checkedDuration(Duration{secs: s, nanos: nanos})
}

/*
CheckedSub returns the receiver instance less u alongside a Boolean
value indicative of it being representable.
*/
func (r Duration) CheckedSub(u Duration) (Duration, bool) {
	s, ok := addInt64(r.secs, -u.secs)
	if !ok {
		return Duration{}, false
	}
	nanos := r.nanos - u.nanos
	if nanos < 0 {
		nanos += nanosPerSec
		if s, ok = addInt64(s, -1); !ok {
			return Duration{}, false
		}
	}
	return checkedDuration(Duration{secs: s, nanos: nanos})
}

/*
CheckedMul returns the receiver instance scaled by n alongside a Boolean
value indicative of the product being representable.
*/
func (r Duration) CheckedMul(n int32) (Duration, bool) {
	carry, nanos := divFloor(int64(r.nanos)*int64(n), nanosPerSec)
	s, ok := mulInt64(r.secs, int64(n))
	if ok {
		s, ok = addInt64(s, carry)
	}
	if !ok {
		return Duration{}, false
	}
	return checkedDuration(Duration{secs: s, nanos: int32(nanos)})
}

/*
CheckedDiv returns the receiver instance divided by n, truncated to the
nanosecond, alongside a Boolean value indicative of n being non-zero
and the quotient being representable.
*/
func (r Duration) CheckedDiv(n int32) (Duration, bool) {
	if n == 0 {
		return Duration{}, false
	}
	d := int64(n)
	secs := r.secs / d
	carry := r.secs - secs*d
	extra := carry * nanosPerSec / d
	return checkedDuration(normDuration(secs, int64(r.nanos)/d+extra))
}

/*
Neg returns the negation of the receiver instance alongside a Boolean
value indicative of it being representable. Only [MinDuration] has no
representable negation.
*/
func (r Duration) Neg() (Duration, bool) { return checkedDuration(r.neg()) }

/*
Abs returns the magnitude of the receiver instance. The magnitude of
[MinDuration] saturates to [MaxDuration].
*/
func (r Duration) Abs() Duration {
	if !r.IsNegative() {
		return r
	}
	if d := r.neg(); d.valid() {
		return d
	}
	return MaxDuration
}

/*
Std returns the receiver instance as a [time.Duration] alongside an
error should it exceed the nanosecond range of that type.
*/
func (r Duration) Std() (time.Duration, error) {
	n, ok := r.Nanoseconds()
	if !ok {
		return 0, errorStdDuration
	}
	return time.Duration(n), nil
}

// DurationFromStd returns the [Duration] equal to d.
func DurationFromStd(d time.Duration) Duration { return Nanoseconds(int64(d)) }

/*
String returns the ISO 8601 form of the receiver instance, for example
"P3DT4.5S", "-PT0.001S" or "PT0S". Whole days are written before the
"T" designator and remaining seconds, with a three, six or nine digit
fraction as needed, after it.
*/
func (r Duration) String() string {
	return string(r.appendISO(make([]byte, 0, 32)))
}

func (r Duration) appendISO(b []byte) []byte {
	abs := r
	if r.IsNegative() {
		b = append(b, '-')
		abs = r.neg()
	}
	b = append(b, 'P')

	// MinDuration's magnitude exceeds MaxDuration but still fits int64 seconds
	days, secs := abs.secs/secsPerDay, abs.secs%secsPerDay
	if days != 0 {
		b = appInt(b, days, 10)
		b = append(b, 'D')
	}
	if secs != 0 || abs.nanos != 0 || days == 0 {
		b = append(b, 'T')
		b = appInt(b, secs, 10)
		b = appFrac(b, uint32(abs.nanos), '.')
		b = append(b, 'S')
	}
	return b
}

/*
ParseDuration returns an instance of [Duration] alongside an error
following an attempt to parse s as an ISO 8601 duration.

The input takes the form:

	[-]P[nW][nD][T[nH][nM][n[.f]S]]

... where f holds up to nine significant digits (further digits are
truncated) and may be introduced by a comma instead of a period. At
least one component must be present. Years and months have no exact
length and are therefore rejected, as is an empty "T" section.
*/
func ParseDuration(s string) (dur Duration, err error) {
	done := debugPath(s)
	defer func() { done(dur, err) }()

	in := s
	neg := hasPfx(s, "-")
	if neg {
		s = s[1:]
	}
	if s == "" || s[0] != 'P' {
		return Duration{}, parseError(ParseInvalid, in)
	}
	s = s[1:]

	var datePart, timePart string
	if i := stridxb(s, 'T'); i >= 0 {
		datePart, timePart = s[:i], s[i+1:]
		if timePart == "" {
			return Duration{}, parseError(ParseTooShort, in)
		}
	} else {
		datePart = s
	}
	if datePart == "" && timePart == "" {
		return Duration{}, parseError(ParseTooShort, in)
	}

	var p durationParser
	kind := p.marshalDate(datePart)
	if kind == 0 {
		kind = p.marshalTime(timePart)
	}
	if kind != 0 {
		return Duration{}, parseError(kind, in)
	}

	if neg {
		p.secs, p.nanos = -p.secs, -p.nanos
	}
	d, ok := DurationOf(p.secs, p.nanos)
	if !ok {
		return Duration{}, parseError(ParseOutOfRange, in)
	}
	debugParse(newLItem(in, "input"), newLItem(d, "duration"))
	return d, nil
}

type durationParser struct {
	secs  int64
	nanos int64
}

/*
component reads one "<digits>[.<digits>]<designator>" group from s,
returning the integral value, the fraction in nanoseconds, the
designator and the remainder of s.
*/
func (r *durationParser) component(s string) (n, frac int64, unit byte, rest string, kind ParseErrorKind) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		if n > (maxInt64-9)/10 {
			return 0, 0, 0, s, ParseOutOfRange
		}
		n = n*10 + int64(s[i]-'0')
		i++
	}
	if i == 0 {
		return 0, 0, 0, s, ParseInvalid
	}
	if i < len(s) && (s[i] == '.' || s[i] == ',') {
		i++
		start, scale := i, int64(nanosPerSec)
		for i < len(s) && isDigit(s[i]) {
			if scale /= 10; scale > 0 {
				frac += int64(s[i]-'0') * scale
			}
			i++
		}
		if i == start {
			return 0, 0, 0, s, ParseInvalid
		}
	}
	if i == len(s) {
		return 0, 0, 0, s, ParseTooShort
	}
	return n, frac, s[i], s[i+1:], 0
}

func (r *durationParser) accumulate(n, unit int64) ParseErrorKind {
	v, ok := mulInt64(n, unit)
	if ok {
		r.secs, ok = addInt64(r.secs, v)
	}
	if !ok {
		return ParseOutOfRange
	}
	return 0
}

func (r *durationParser) marshalDate(datePart string) (kind ParseErrorKind) {
	order := "WD"
	for len(datePart) > 0 && kind == 0 {
		var n, frac int64
		var unit byte
		if n, frac, unit, datePart, kind = r.component(datePart); kind != 0 {
			break
		}
		i := stridxb(order, unit)
		switch {
		case unit == 'Y' || unit == 'M':
			kind = ParseInvalid
		case i < 0 || frac != 0:
			kind = ParseInvalid
		case unit == 'W':
			kind = r.accumulate(n, secsPerWeek)
		default:
			kind = r.accumulate(n, secsPerDay)
		}
		order = order[i+1:]
	}
	return
}

func (r *durationParser) marshalTime(timePart string) (kind ParseErrorKind) {
	order := "HMS"
	for len(timePart) > 0 && kind == 0 {
		var n, frac int64
		var unit byte
		if n, frac, unit, timePart, kind = r.component(timePart); kind != 0 {
			break
		}
		i := stridxb(order, unit)
		switch {
		case i < 0:
			kind = ParseInvalid
		case unit != 'S' && frac != 0:
			kind = ParseInvalid
		case unit == 'H':
			kind = r.accumulate(n, secsPerHour)
		case unit == 'M':
			kind = r.accumulate(n, secsPerMinute)
		default:
			kind = r.accumulate(n, 1)
			r.nanos = frac
		}
		order = order[i+1:]
	}
	return
}

/*
NewDuration returns an instance of [Duration] alongside an error
following an attempt to marshal x.

Accepted input types are string and []byte (parsed by [ParseDuration]),
[time.Duration] and [Duration]. Any constraints supplied are applied to
the result.
*/
func NewDuration(x any, constraints ...Constraint[Duration]) (Duration, error) {
	var (
		d   Duration
		err error
	)

	switch tv := x.(type) {
	case string:
		d, err = ParseDuration(tv)
	case []byte:
		d, err = ParseDuration(string(tv))
	case time.Duration:
		d = DurationFromStd(tv)
	case Duration:
		d = tv
	default:
		return Duration{}, errorBadTypeForConstructor("DURATION", x)
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[Duration] = constraints
		err = group.Constrain(d)
	}
	if err != nil {
		return Duration{}, err
	}
	return d, nil
}
