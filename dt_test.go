package civil

import (
	"errors"
	"testing"
	"time"
)

func mustDateTime(t *testing.T, s string) DateTime {
	t.Helper()
	dt, err := ParseDateTime(s)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	return dt
}

func TestDateTime_accessors(t *testing.T) {
	dt := mustDateTime(t, "2015-02-18T23:16:09.153")
	if dt.Year() != 2015 || dt.Month() != time.February || dt.Day() != 18 ||
		dt.YearDay() != 49 || dt.Weekday() != time.Wednesday {
		t.Errorf("%s failed: unexpected date fields of %s", t.Name(), dt)
	}
	if dt.Hour() != 23 || dt.Minute() != 16 || dt.Second() != 9 ||
		dt.Nanosecond() != 153_000_000 || dt.IsLeapSecond() {
		t.Errorf("%s failed: unexpected clock fields of %s", t.Name(), dt)
	}
	if y, w := dt.ISOWeek(); y != 2015 || w != 8 {
		t.Errorf("%s failed: want 2015-W08, got %d-W%02d", t.Name(), y, w)
	}
	if DateTimeOf(dt.Date(), dt.Time()) != dt || dt.Date().At(dt.Time()) != dt {
		t.Errorf("%s failed: reassembly mismatch", t.Name())
	}

	if MinDateTime.String() != "-262143-01-01T00:00:00" {
		t.Errorf("%s failed: unexpected MinDateTime %s", t.Name(), MinDateTime)
	}
	if !MaxDateTime.IsLeapSecond() || MaxDateTime.Date() != MaxDate {
		t.Errorf("%s failed: unexpected MaxDateTime %s", t.Name(), MaxDateTime)
	}
}

func TestDateTime_Compare(t *testing.T) {
	ordered := []string{
		"-0001-12-31T23:59:59",
		"0000-01-01T00:00:00",
		"2016-12-31T23:59:59",
		"2016-12-31T23:59:59.999999999",
		"2016-12-31T23:59:60",
		"2016-12-31T23:59:60.5",
		"2017-01-01T00:00:00",
	}
	for i := 1; i < len(ordered); i++ {
		a, b := mustDateTime(t, ordered[i-1]), mustDateTime(t, ordered[i])
		if !a.Before(b) || !b.After(a) || a.Compare(b) != -1 || b.Compare(a) != 1 {
			t.Errorf("%s failed: %s should precede %s", t.Name(), a, b)
		}
		if !a.Equal(a) || a.Compare(a) != 0 {
			t.Errorf("%s failed: %s unequal to itself", t.Name(), a)
		}
	}
}

func TestNewDateTime(t *testing.T) {
	want := mustDateTime(t, "2001-09-09T01:46:40.5")
	for idx, tst := range []any{
		"2001-09-09T01:46:40.500",
		[]byte("2001-09-09T01:46:40.5"),
		"20010909014640.5",
		"20010909014640,5",
		want,
		time.Date(2001, time.September, 9, 1, 46, 40, 500_000_000, time.FixedZone("X", -7200)),
	} {
		dt, err := NewDateTime(tst)
		if err != nil || dt != want {
			t.Errorf("%s[%d] failed: want %s, got %s (%v)", t.Name(), idx, want, dt, err)
		}
	}

	if dt, err := NewDateTime(int64(1_000_000_000)); err != nil || dt.String() != "2001-09-09T01:46:40" {
		t.Errorf("%s failed: unix input gave %s (%v)", t.Name(), dt, err)
	}
	if _, err := NewDateTime("20010909014640Z"); !errors.Is(err, errorGTZoneForbidden) {
		t.Errorf("%s failed: want zone error, got %v", t.Name(), err)
	}
	if _, err := NewDateTime(time.Date(300_000, 1, 1, 0, 0, 0, 0, time.UTC)); !errors.Is(err, errorTimeRange) {
		t.Errorf("%s failed: want range error, got %v", t.Name(), err)
	}
	if _, err := NewDateTime(3.14); err == nil {
		t.Errorf("%s failed: float accepted", t.Name())
	}
	if _, err := NewDateTime(nil); err == nil {
		t.Errorf("%s failed: nil accepted", t.Name())
	}
	if _, err := NewDateTime("-0001-12-31T23:59:59"); err != nil {
		t.Errorf("%s failed: %v", t.Name(), err)
	}
}

func TestNewDate(t *testing.T) {
	lo, _ := DateOf(2015, time.January, 1)
	hi, _ := DateOf(2015, time.February, 18)
	within := DateRangeConstraint(lo, hi)
	if d, err := NewDate("2015-02-18", within); err != nil || d.Day() != 18 {
		t.Errorf("%s failed: %s (%v)", t.Name(), d, err)
	}
	if _, err := NewDate("2015-02-19", within); err == nil {
		t.Errorf("%s failed: date past range accepted", t.Name())
	}
	if d, err := NewDate(mustDateTime(t, "2015-02-18T12:00:00")); err != nil || d.String() != "2015-02-18" {
		t.Errorf("%s failed: %s (%v)", t.Name(), d, err)
	}
	if _, err := NewDate("2015-02-30"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("%s failed: want out of range, got %v", t.Name(), err)
	}
	if _, err := NewDate(20150218); err == nil {
		t.Errorf("%s failed: int accepted", t.Name())
	}
}

func TestNewTime(t *testing.T) {
	noon, _ := TimeOf(12, 0, 0, 0)
	morning := TimeRangeConstraint(Midnight, noon)
	if tm, err := NewTime("09:30:00", morning); err != nil || tm.Hour() != 9 {
		t.Errorf("%s failed: %s (%v)", t.Name(), tm, err)
	}
	if _, err := NewTime("12:00:01", morning); err == nil {
		t.Errorf("%s failed: afternoon accepted", t.Name())
	}
	if tm, err := NewTime(time.Date(2020, 1, 1, 7, 8, 9, 10, time.UTC)); err != nil || tm.String() != "07:08:09.000000010" {
		t.Errorf("%s failed: %s (%v)", t.Name(), tm, err)
	}
	if _, err := NewTime("7:08:09"); !errors.Is(err, ErrInvalid) {
		t.Errorf("%s failed: want invalid, got %v", t.Name(), err)
	}
}
