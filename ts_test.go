package civil

import (
	"fmt"
	"testing"
)

func TestFromUnix(t *testing.T) {
	for idx, tst := range []struct {
		secs int64
		nsec uint32
		want string
	}{
		{0, 0, "1970-01-01T00:00:00"},
		{1_000_000_000, 0, "2001-09-09T01:46:40"},
		{-1, 0, "1969-12-31T23:59:59"},
		{-86_400, 0, "1969-12-31T00:00:00"},
		{1_483_228_799, 1_500_000_000, "2016-12-31T23:59:60.500"},
		{1_234_567_890, 123_456_789, "2009-02-13T23:31:30.123456789"},
	} {
		dt, ok := FromUnix(tst.secs, tst.nsec)
		if !ok || dt.String() != tst.want {
			t.Errorf("%s[%d] failed: want %s, got %s (%t)", t.Name(), idx, tst.want, dt, ok)
			continue
		}
		if got := dt.Unix(); got != tst.secs {
			t.Errorf("%s[%d] failed: Unix want %d, got %d", t.Name(), idx, tst.secs, got)
		}
		if got := dt.UnixSubsecNanos(); got != tst.nsec {
			t.Errorf("%s[%d] failed: subsecond want %d, got %d", t.Name(), idx, tst.nsec, got)
		}
	}

	for idx, tst := range []struct {
		secs int64
		nsec uint32
	}{
		{0, 2_000_000_000},
		{MaxDateTime.Unix() + 1, 0},
		{MinDateTime.Unix() - 1, 0},
		{maxInt64, 0},
		{minInt64, 0},
	} {
		if dt, ok := FromUnix(tst.secs, tst.nsec); ok {
			t.Errorf("%s[%d] failed: accepted as %s", t.Name(), idx, dt)
		}
	}
}

func TestFromUnix_subsecond(t *testing.T) {
	if dt, ok := FromUnixMilli(-1); !ok || dt.String() != "1969-12-31T23:59:59.999" {
		t.Errorf("%s failed: want 1969-12-31T23:59:59.999, got %s", t.Name(), dt)
	}
	if dt, ok := FromUnixMilli(1_000_000_000_500); !ok || dt.UnixMilli() != 1_000_000_000_500 {
		t.Errorf("%s failed: millisecond round trip gave %s", t.Name(), dt)
	}
	if dt, ok := FromUnixMicro(1); !ok || dt.String() != "1970-01-01T00:00:00.000001" {
		t.Errorf("%s failed: want 1970-01-01T00:00:00.000001, got %s", t.Name(), dt)
	}
	if dt, ok := FromUnixMicro(-1_500_000); !ok || dt.UnixMicro() != -1_500_000 {
		t.Errorf("%s failed: microsecond round trip gave %s", t.Name(), dt)
	}
	if _, ok := FromUnixMilli(maxInt64); ok {
		t.Errorf("%s failed: oversized milliseconds accepted", t.Name())
	}

	for idx, tst := range []struct {
		ns   int64
		want string
	}{
		{0, "1970-01-01T00:00:00"},
		{-1, "1969-12-31T23:59:59.999999999"},
		{minInt64, "1677-09-21T00:12:43.145224192"},
		{maxInt64, "2262-04-11T23:47:16.854775807"},
	} {
		dt := FromUnixNano(tst.ns)
		if dt.String() != tst.want {
			t.Errorf("%s[%d] failed: want %s, got %s", t.Name(), idx, tst.want, dt)
		}
		if ns, ok := dt.UnixNano(); !ok || ns != tst.ns {
			t.Errorf("%s[%d] failed: nanosecond round trip gave %d (%t)", t.Name(), idx, ns, ok)
		}
	}

	if _, ok := MaxDateTime.UnixNano(); ok {
		t.Errorf("%s failed: MaxDateTime fits nanoseconds", t.Name())
	}
	if MinDateTime.Unix() != minDays*secsPerDay {
		t.Errorf("%s failed: unexpected MinDateTime seconds %d", t.Name(), MinDateTime.Unix())
	}
}

func TestDateTime_UnixMilli_leap(t *testing.T) {
	leap := mustDateTime(t, "2016-12-31T23:59:60.500")
	next := mustDateTime(t, "2017-01-01T00:00:00.500")
	if leap.UnixMilli() != next.UnixMilli() {
		t.Errorf("%s failed: leap second %d differs from %d",
			t.Name(), leap.UnixMilli(), next.UnixMilli())
	}
	if leap.Unix() != next.Unix()-1 {
		t.Errorf("%s failed: whole seconds should exclude the leap second", t.Name())
	}
}

func ExampleFromUnix() {
	dt, _ := FromUnix(1_000_000_000, 0)
	fmt.Println(dt, dt.Weekday())
	// Output: 2001-09-09T01:46:40 Sunday
}
