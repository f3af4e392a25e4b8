//go:build !civil_no_constr_pf

package civil

/*
constr_on.go contains prefabricated constraints and the constraint
combinators, along with the default registry entries. Build with the
"civil_no_constr_pf" tag to leave them out.
*/

import "time"

/*
WeekdayConstraint returns an instance of [Constraint] that admits only
dates falling on one of the given days of the week.
*/
func WeekdayConstraint(days ...time.Weekday) Constraint[Date] {
	var mask uint8
	for _, d := range days {
		mask |= 1 << uint(d%7)
	}
	return func(x Date) error {
		if wd := x.Weekday(); mask&(1<<uint(wd)) == 0 {
			return constraintViolationf("date ", x, " falls on disallowed weekday ", wd)
		}
		return nil
	}
}

/*
NoLeapSecondConstraint returns an instance of [Constraint] that rejects
values lying within a leap second.
*/
func NoLeapSecondConstraint() Constraint[DateTime] {
	return func(x DateTime) error {
		if x.IsLeapSecond() {
			return constraintViolationf("date-time ", x, " lies within a leap second")
		}
		return nil
	}
}

/*
PropertyConstraint returns an instance of [Constraint] that applies a
user-defined check function, which should return nil if the property is
satisfied or an error otherwise.
*/
func PropertyConstraint[T any](check func(T) error) Constraint[T] {
	return func(x T) error { return check(x) }
}

/*
Union returns an instance of [Constraint] which checks if at least one (1)
of the provided constraints is satisfied. Essentially, this is an "OR"ed
operation.
*/
func Union[T any](constraints ...Constraint[T]) Constraint[T] {
	return func(x T) error {
		for _, c := range constraints {
			if c(x) == nil {
				return nil
			}
		}
		return constraintViolationf("union failed all ", len(constraints), " constraints")
	}
}

/*
Intersection returns an instance of [Constraint] which checks if all of the
specified constraints are satisfied. Essentially, this is an "AND"ed operation.
*/
func Intersection[T any](constraints ...Constraint[T]) Constraint[T] {
	return func(x T) (err error) {
		for i := 0; i < len(constraints) && err == nil; i++ {
			err = constraints[i](x)
		}
		return
	}
}

func init() {
	onDate := func(c Constraint[Date]) Constraint[DateTime] {
		return LiftConstraint(DateTime.Date, c)
	}

	RegisterConstraint("weekday", onDate(WeekdayConstraint(
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)))
	RegisterConstraint("weekend", onDate(WeekdayConstraint(time.Saturday, time.Sunday)))
	RegisterConstraint("noleap", NoLeapSecondConstraint())
	RegisterConstraint("gtyears", LiftConstraint(DateTime.Year, RangeConstraint(0, 9999)))
}
