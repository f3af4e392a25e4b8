package civil

/*
constr.go contains constraint and constraint group components used to
restrict the values accepted by the constructors of this package.
*/

import (
	"reflect"
	"sync"

	"golang.org/x/exp/constraints"
)

/*
Constraint implements a generic closure function signature meant to enforce
the constraining of values.
*/
type Constraint[T any] func(T) error

/*
ConstraintGroup implements a wrapper of slices of [Constraint]. Slice instances
are added (and, thus, evaluated) in the order in which they are provided.
*/
type ConstraintGroup[T any] []Constraint[T]

/*
Constrain returns an error following the execution of all [Constraint] instances
against x which reside within the receiver instance. Evaluation stops at the
first failure.
*/
func (r ConstraintGroup[T]) Constrain(x T) (err error) {
	for i := 0; i < len(r) && err == nil; i++ {
		if r[i] != nil {
			err = r[i](x)
		}
	}
	if err != nil {
		debugConstraint(newLItem(err, "violation"))
	}
	return
}

/*
LiftConstraint adapts (or "converts") a [Constraint] for type U to type T.

For instance, to restrict the year of a [DateTime]:

	years := LiftConstraint(func(dt DateTime) int { return dt.Year() },
		RangeConstraint(1900, 2099))
*/
func LiftConstraint[T any, U any](convert func(T) U, c Constraint[U]) Constraint[T] {
	return func(x T) error {
		return c(convert(x))
	}
}

/*
RangeConstraint returns an instance of [Constraint] that checks if a value
lies within the inclusive range [min, max].
*/
func RangeConstraint[T constraints.Ordered](min, max T) Constraint[T] {
	return func(x T) error {
		if x < min || x > max {
			return constraintViolationf("value outside of allowed range")
		}
		return nil
	}
}

/*
comparer is qualified by every value type of this package which bears a
total order.
*/
type comparer[T any] interface {
	Compare(T) int
	String() string
}

func orderedRange[T comparer[T]](kind string, min, max T) Constraint[T] {
	return func(x T) error {
		if x.Compare(min) < 0 || x.Compare(max) > 0 {
			return constraintViolationf(kind, " ", x, " not in allowed range [",
				min, ", ", max, "]")
		}
		return nil
	}
}

/*
DateTimeRangeConstraint returns an instance of [Constraint] that rejects
any [DateTime] before min or after max.
*/
func DateTimeRangeConstraint(min, max DateTime) Constraint[DateTime] {
	return orderedRange("date-time", min, max)
}

/*
DateRangeConstraint returns an instance of [Constraint] that rejects
any [Date] before min or after max.
*/
func DateRangeConstraint(min, max Date) Constraint[Date] {
	return orderedRange("date", min, max)
}

/*
TimeRangeConstraint returns an instance of [Constraint] that rejects
any [Time] before min or after max. Windows which wrap past midnight
are expressed through [Union].
*/
func TimeRangeConstraint(min, max Time) Constraint[Time] {
	return orderedRange("time", min, max)
}

/*
DurationRangeConstraint returns an instance of [Constraint] that rejects
any [Duration] shorter than min or longer than max.
*/
func DurationRangeConstraint(min, max Duration) Constraint[Duration] {
	return orderedRange("duration", min, max)
}

/*
constraintEntry implements a private constraint registration type. Instances
of this type are used wherever constraints are referenced by name, such as
through the command line interface.
*/
type constraintEntry struct {
	typ reflect.Type
	fn  any
}

var (
	constraintMu  sync.RWMutex
	constraintReg = map[string]constraintEntry{}
)

/*
RegisterConstraint assigns the provided [Constraint] function instance to
the package-level registry under name, from which [LookupConstraints]
may later retrieve it. Case is not significant in the name.

This function will panic if name is already registered.

Unless this package is built with the "civil_no_constr_pf" tag, the
following [DateTime] constraints are registered by default:

  - "weekday": Monday through Friday
  - "weekend": Saturday and Sunday
  - "noleap": see [NoLeapSecondConstraint]
  - "gtyears": years 0000 through 9999, the range which has a
    [DateTime.GeneralizedTime] form
*/
func RegisterConstraint[T any](name string, c Constraint[T]) {
	key := lc(name)

	constraintMu.Lock()
	defer constraintMu.Unlock()

	if _, dup := constraintReg[key]; dup {
		panic("civil: duplicate constraint name " + name)
	}
	constraintReg[key] = constraintEntry{
		typ: reflect.TypeOf((*T)(nil)).Elem(),
		fn:  c,
	}
}

/*
RegisterConstraintGroup wraps g in a single [Constraint] and registers it
as with [RegisterConstraint].
*/
func RegisterConstraintGroup[T any](name string, g ConstraintGroup[T]) {
	RegisterConstraint(name, Constraint[T](g.Constrain))
}

/*
LookupConstraints returns the registered constraints bearing the given
names, in order, alongside an error should any name be unknown or
registered for a type other than T.
*/
func LookupConstraints[T any](names ...string) ([]Constraint[T], error) {
	want := reflect.TypeOf((*T)(nil)).Elem()

	constraintMu.RLock()
	defer constraintMu.RUnlock()

	var out []Constraint[T]
	for _, n := range names {
		e, ok := constraintReg[lc(n)]
		if !ok {
			return nil, generalErrorf("unknown constraint ", n)
		}
		if e.typ != want {
			return nil, generalErrorf("constraint ", n, " not applicable to ", want.String())
		}
		out = append(out, e.fn.(Constraint[T]))
	}
	return out, nil
}
