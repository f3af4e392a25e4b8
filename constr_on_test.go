//go:build !civil_no_constr_pf

package civil

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestWeekdayConstraint(t *testing.T) {
	wed := WeekdayConstraint(time.Wednesday)
	if d, err := NewDate("2015-02-18", wed); err != nil || d.Day() != 18 {
		t.Errorf("%s failed: %s (%v)", t.Name(), d, err)
	}
	if _, err := NewDate("2015-02-19", wed); err == nil {
		t.Errorf("%s failed: Thursday accepted", t.Name())
	}
	if WeekdayConstraint()(MinDate) == nil {
		t.Errorf("%s failed: empty weekday set admitted a date", t.Name())
	}
}

func TestNoLeapSecondConstraint(t *testing.T) {
	if _, err := NewDateTime("2016-12-31T23:59:60", NoLeapSecondConstraint()); err == nil {
		t.Errorf("%s failed: leap second accepted", t.Name())
	}
	if _, err := NewDateTime("2016-12-31T23:59:59.999999999", NoLeapSecondConstraint()); err != nil {
		t.Errorf("%s failed: %v", t.Name(), err)
	}
}

func TestUnionIntersection(t *testing.T) {
	morning := TimeRangeConstraint(mustTime(t, "06:00:00"), mustTime(t, "12:00:00"))
	evening := TimeRangeConstraint(mustTime(t, "18:00:00"), mustTime(t, "22:00:00"))
	notNoon := PropertyConstraint(func(x Time) error {
		if x.Hour() == 12 {
			return errors.New("noon")
		}
		return nil
	})

	either := Union(morning, evening)
	both := Intersection(either, notNoon)
	for idx, tst := range []struct {
		in        string
		union, is bool
	}{
		{"07:30:00", true, true},
		{"12:00:00", true, false},
		{"19:00:00", true, true},
		{"15:00:00", false, false},
	} {
		tm := mustTime(t, tst.in)
		if (either(tm) == nil) != tst.union || (both(tm) == nil) != tst.is {
			t.Errorf("%s[%d] failed: %s union:%v intersection:%v",
				t.Name(), idx, tst.in, either(tm), both(tm))
		}
	}
}

func TestDefaultConstraints(t *testing.T) {
	cs, err := LookupConstraints[DateTime]("weekday", "NoLeap", "gtyears")
	if err != nil || len(cs) != 3 {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	var group ConstraintGroup[DateTime] = cs
	for idx, tst := range []struct {
		in string
		ok bool
	}{
		{"2015-02-18T12:00:00", true},
		{"2015-02-21T12:00:00", false},
		{"2016-12-30T23:59:60", false},
		{"+10000-01-03T00:00:00", false},
	} {
		if err = group.Constrain(mustDateTime(t, tst.in)); (err == nil) != tst.ok {
			t.Errorf("%s[%d] failed: %s want ok:%t, got %v", t.Name(), idx, tst.in, tst.ok, err)
		}
	}

	weekend, _ := LookupConstraints[DateTime]("weekend")
	if weekend[0](mustDateTime(t, "2015-02-21T12:00:00")) != nil {
		t.Errorf("%s failed: Saturday rejected as weekend", t.Name())
	}
}

func ExampleWeekdayConstraint() {
	_, err := NewDate("2015-02-21", WeekdayConstraint(time.Monday, time.Friday))
	fmt.Println(err)
	// Output: CONSTRAINT VIOLATION: date 2015-02-21 falls on disallowed weekday Saturday
}
