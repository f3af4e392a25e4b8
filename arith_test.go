package civil

import (
	"fmt"
	"testing"
)

func TestDateTime_CheckedAdd(t *testing.T) {
	secs := func(n int64) Duration { d, _ := Seconds(n); return d }
	days := func(n int64) Duration { d, _ := Days(n); return d }

	for idx, tst := range []struct {
		from string
		d    Duration
		want string
	}{
		{"2001-09-09T01:46:40", Duration{}, "2001-09-09T01:46:40"},
		{"2001-09-09T01:46:40", secs(-1_000_000_000), "1970-01-01T00:00:00"},
		{"2020-02-28T23:00:00", secs(3600), "2020-02-29T00:00:00"},
		{"2021-02-28T23:00:00", secs(3600), "2021-03-01T00:00:00"},
		{"2000-01-01T00:00:00", Milliseconds(-1), "1999-12-31T23:59:59.999"},
		{"2000-01-01T00:00:00", days(366), "2001-01-01T00:00:00"},
		{"0000-01-01T00:00:00", secs(-1), "-0001-12-31T23:59:59"},
		{"2016-12-31T23:59:60.500", Duration{}, "2016-12-31T23:59:60.500"},
		{"2016-12-31T23:59:60.500", Milliseconds(250), "2016-12-31T23:59:60.750"},
		{"2016-12-31T23:59:60.500", Milliseconds(500), "2017-01-01T00:00:00"},
		{"2016-12-31T23:59:60.500", Milliseconds(-600), "2016-12-31T23:59:59.900"},
		{"2016-12-31T23:59:60.500", days(1), "2017-01-01T23:59:59.500"},
	} {
		got, ok := mustDateTime(t, tst.from).CheckedAdd(tst.d)
		if !ok || got.String() != tst.want {
			t.Errorf("%s[%d] failed: %s + %s want %s, got %s (%t)",
				t.Name(), idx, tst.from, tst.d, tst.want, got, ok)
		}
	}
}

func TestDateTime_CheckedSub(t *testing.T) {
	dt := mustDateTime(t, "2001-09-09T01:46:40")
	for _, d := range []Duration{Milliseconds(1), Milliseconds(-86_400_001), Microseconds(1 << 40)} {
		back, ok := dt.CheckedAdd(d)
		if !ok {
			t.Fatalf("%s failed: %s + %s rejected", t.Name(), dt, d)
		}
		if back, ok = back.CheckedSub(d); !ok || back != dt {
			t.Errorf("%s failed: %s - %s did not undo the addition: %s", t.Name(), dt, d, back)
		}
	}

	if got, ok := dt.CheckedSub(Milliseconds(6_400_000)); !ok || got.String() != "2001-09-09T00:00:00" {
		t.Errorf("%s failed: want midnight, got %s", t.Name(), got)
	}
	if got, ok := dt.CheckedSub(MinDuration); ok {
		t.Errorf("%s failed: subtracting MinDuration yielded %s", t.Name(), got)
	}
}

func TestDateTime_bounds(t *testing.T) {
	one, _ := Seconds(1)
	for idx, ok := range []bool{
		func() bool { _, ok := MaxDateTime.CheckedAdd(one); return ok }(),
		func() bool { _, ok := MaxDateTime.CheckedAdd(Nanoseconds(1)); return ok }(),
		func() bool { _, ok := MinDateTime.CheckedSub(one); return ok }(),
		func() bool { _, ok := MinDateTime.CheckedAdd(MaxDuration); return ok }(),
		func() bool { _, ok := MaxDateTime.CheckedAdd(MinDuration); return ok }(),
		func() bool { _, ok := MaxDateTime.CheckedAddDays(1); return ok }(),
		func() bool { _, ok := MinDateTime.CheckedSubDays(1); return ok }(),
		func() bool { _, ok := MinDateTime.CheckedSubDays(minInt64); return ok }(),
		func() bool { _, ok := MaxDateTime.CheckedAddMonths(1); return ok }(),
		func() bool { _, ok := MinDateTime.CheckedSubMonths(1); return ok }(),
	} {
		if ok {
			t.Errorf("%s[%d] failed: out-of-range result accepted", t.Name(), idx)
		}
	}

	// the full span is representable in both directions
	last := MaxDate.At(mustTime(t, "23:59:59"))
	span := last.Since(MinDateTime)
	if got, ok := MinDateTime.CheckedAdd(span); !ok || got != last {
		t.Errorf("%s failed: min + span want %s, got %s (%t)", t.Name(), last, got, ok)
	}
	if got, ok := last.CheckedSub(span); !ok || got != MinDateTime {
		t.Errorf("%s failed: max - span want %s, got %s (%t)", t.Name(), MinDateTime, got, ok)
	}
}

func TestSecsFitBits(t *testing.T) {
	for idx, tst := range []struct {
		secs int64
		want bool
	}{
		{0, true},
		{1<<maxSecsBits - 1, true},
		{-(1<<maxSecsBits - 1), true},
		{1 << maxSecsBits, false},
		{-(1 << maxSecsBits), false},
		{maxInt64, false},
		{minInt64, false},
	} {
		if got := secsFitBits(tst.secs); got != tst.want {
			t.Errorf("%s[%d] failed: %d want %t, got %t", t.Name(), idx, tst.secs, tst.want, got)
		}
	}
	if maxSecsBits != 44 {
		t.Errorf("%s failed: unexpected threshold %d", t.Name(), maxSecsBits)
	}
}

func TestDateTime_CheckedAddMonths(t *testing.T) {
	dt := mustDateTime(t, "2020-01-31T08:15:00")
	if got, ok := dt.CheckedAddMonths(1); !ok || got.String() != "2020-02-29T08:15:00" {
		t.Errorf("%s failed: want 2020-02-29T08:15:00, got %s", t.Name(), got)
	}
	if got, ok := dt.CheckedSubMonths(2); !ok || got.String() != "2019-11-30T08:15:00" {
		t.Errorf("%s failed: want 2019-11-30T08:15:00, got %s", t.Name(), got)
	}
	if got, ok := dt.CheckedAddDays(-31); !ok || got.String() != "2019-12-31T08:15:00" {
		t.Errorf("%s failed: want 2019-12-31T08:15:00, got %s", t.Name(), got)
	}
	if got, ok := dt.CheckedSubDays(-29); !ok || got.String() != "2020-02-29T08:15:00" {
		t.Errorf("%s failed: want 2020-02-29T08:15:00, got %s", t.Name(), got)
	}
}

func TestDateTime_Since(t *testing.T) {
	day, _ := Days(1)
	for idx, tst := range []struct {
		a, b string
		want Duration
	}{
		{"2001-09-10T00:00:00", "2001-09-09T00:00:00", day},
		{"2001-09-09T00:00:00", "2001-09-10T00:00:00", day.neg()},
		{"2001-09-09T01:46:40", "1970-01-01T00:00:00", Milliseconds(1_000_000_000_000)},
		{"2017-01-01T00:00:00", "2016-12-31T23:59:59", Milliseconds(1000)},
		{"2016-12-31T23:59:60.500", "2016-12-31T23:59:59.500", Milliseconds(1000)},
		// one leap operand contributes one extra second
		{"2016-12-31T23:59:60.500", "2016-12-30T23:59:59.500", Milliseconds(86_401_000)},
		// two leap operands: both leap seconds are assumed to exist
		{"2016-12-31T23:59:60.500", "2015-06-30T23:59:60.500", Milliseconds(550 * 86_400_000)},
		{"2016-12-31T23:59:60.750", "2015-06-30T23:59:60.500", Milliseconds(550*86_400_000 + 250)},
	} {
		got := mustDateTime(t, tst.a).Since(mustDateTime(t, tst.b))
		if got != tst.want {
			t.Errorf("%s[%d] failed: %s - %s want %s, got %s",
				t.Name(), idx, tst.a, tst.b, tst.want, got)
		}
	}

	if got := MaxDateTime.Since(MinDateTime); got.IsNegative() || got.WholeDays() != maxDays-minDays+1 {
		t.Errorf("%s failed: unexpected full span %s", t.Name(), got)
	}
}

func TestDateTime_panics(t *testing.T) {
	for idx, fn := range []func(){
		func() { MaxDateTime.Add(Nanoseconds(1)) },
		func() { MinDateTime.Sub(Nanoseconds(1)) },
		func() { MaxDateTime.AddMonths(1) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s[%d] failed: expected panic", t.Name(), idx)
				}
			}()
			fn()
		}()
	}

	dt := mustDateTime(t, "2001-09-09T01:46:40")
	if dt.Add(Milliseconds(500)).Sub(Milliseconds(500)) != dt {
		t.Errorf("%s failed: Add/Sub mismatch", t.Name())
	}
}

func ExampleDateTime_CheckedAdd() {
	dt, _ := ParseDateTime("2016-12-31T23:59:60.500")
	next, _ := dt.CheckedAdd(Milliseconds(800))
	fmt.Println(next)
	// Output: 2017-01-01T00:00:00.300
}

func ExampleDateTime_Since() {
	a, _ := ParseDateTime("2001-09-09T01:46:40")
	b, _ := ParseDateTime("1970-01-01T00:00:00")
	fmt.Println(a.Since(b).Seconds())
	// Output: 1000000000
}
