package civil

/*
std.go implements conversion between the types of this package and
those of the standard library's time package.
*/

import "time"

/*
FromTime returns the wall-clock reading of t, in t's own location, as a
[DateTime] alongside a Boolean value indicative of the year being within
[[MinYear], [MaxYear]]. The location is discarded.
*/
func FromTime(t time.Time) (DateTime, bool) {
	y, m, d := t.Date()
	date, ok := DateOf(y, m, d)
	if !ok {
		debugCodec(newLItem(t.String(), "time.Time"), "out of range")
		return DateTime{}, false
	}
	h, mi, s := t.Clock()
	clock, _ := TimeOf(h, mi, s, t.Nanosecond())
	return DateTime{date: date, time: clock}, true
}

/*
In returns the [time.Time] bearing the receiver's wall-clock reading in
loc, which must not be nil. A leap second has no place on the time
package's scale and folds into the following second, as does any
reading skipped by a transition of loc.
*/
func (r DateTime) In(loc *time.Location) time.Time {
	y, m, d := r.date.Date()
	h, mi, s := r.time.Clock()
	return time.Date(y, m, d, h, mi, s, int(r.time.frac), loc)
}

// UTC is shorthand for In(time.UTC).
func (r DateTime) UTC() time.Time { return r.In(time.UTC) }
