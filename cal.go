package civil

/*
cal.go implements the proleptic Gregorian calendar: conversion between
day-counts and calendar, ordinal and ISO week dates.
*/

import "time"

/*
Date implements a proleptic Gregorian calendar date without a time zone,
held as the number of days elapsed since 1970-01-01. The zero value is
1970-01-01.

Instances are only produced by the validating constructors [DateOf],
[OrdinalDate], [ISOWeekDate] and [DateFromDays], and by checked
arithmetic, so every Date lies within [[MinDate], [MaxDate]].
*/
type Date struct {
	days int32
}

/*
MinDate and MaxDate are the first and last representable dates,
[MinYear]-01-01 and [MaxYear]-12-31.
*/
var (
	MinDate = Date{days: int32(minDays)}
	MaxDate = Date{days: int32(maxDays)}
)

var daysInMonth = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

/*
IsLeapYear returns a Boolean value indicative of year being a leap year
under the proleptic Gregorian rule.
*/
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

/*
DaysIn returns the number of days in month of year, or zero if month
is not a valid [time.Month].
*/
func DaysIn(year int, month time.Month) int {
	if month < time.January || month > time.December {
		return 0
	}
	if month == time.February && IsLeapYear(year) {
		return 29
	}
	return daysInMonth[month-1]
}

/*
daysFromCivil returns the day-count of y-m-d relative to 1970-01-01.
Years are shifted to begin on March 1st so that the leap day falls at
the end of the shifted year, which reduces the month offset to a
closed-form expression.
*/
func daysFromCivil(y, m, d int64) int64 {
	if m <= 2 {
		y--
	}
	era, yoe := divFloor(y, 400)
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*daysPer400Year + doe - epochShift
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(z int64) (year int64, month time.Month, day int) {
	era, doe := divFloor(z+epochShift, daysPer400Year)
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day = int(doy - (153*mp+2)/5 + 1)
	if mp < 10 {
		month = time.Month(mp + 3)
	} else {
		month = time.Month(mp - 9)
	}
	year = yoe + era*400
	if month <= time.February {
		year++
	}
	return
}

func weekdayOf(days int64) time.Weekday {
	_, r := divFloor(days+4, 7) // 1970-01-01 was a Thursday
	return time.Weekday(r)
}

// isoDay maps Monday..Sunday onto 1..7.
func isoDay(wd time.Weekday) int64 { return int64(wd+6)%7 + 1 }

func isoWeeksIn(year int64) int {
	jan1 := weekdayOf(daysFromCivil(year, 1, 1))
	if jan1 == time.Thursday || (jan1 == time.Wednesday && IsLeapYear(int(year))) {
		return 53
	}
	return 52
}

/*
DateOf returns the [Date] for the calendar date year-month-day alongside
a Boolean value indicative of success. Invalid field combinations, such
as February 30th or month 13, and years outside [[MinYear], [MaxYear]]
are rejected rather than normalized.
*/
func DateOf(year int, month time.Month, day int) (Date, bool) {
	if year < MinYear || year > MaxYear || day < 1 || day > DaysIn(year, month) {
		debugCalendar(newLItem(year, "year"), newLItem(int(month), "month"),
			newLItem(day, "day"), "rejected")
		return Date{}, false
	}
	return Date{days: int32(daysFromCivil(int64(year), int64(month), int64(day)))}, true
}

/*
OrdinalDate returns the [Date] for day yday (1-based) of year alongside
a Boolean value indicative of success. Day 366 is only valid in leap
years.
*/
func OrdinalDate(year, yday int) (Date, bool) {
	limit := 365
	if IsLeapYear(year) {
		limit = 366
	}
	if year < MinYear || year > MaxYear || yday < 1 || yday > limit {
		debugCalendar(newLItem(year, "year"), newLItem(yday, "yday"), "rejected")
		return Date{}, false
	}
	return Date{days: int32(daysFromCivil(int64(year), 1, 1) + int64(yday) - 1)}, true
}

/*
ISOWeekDate returns the [Date] for the ISO 8601 week date year-Wweek-wd
alongside a Boolean value indicative of success.

Week 1 of an ISO year is the week holding its first Thursday, so the
resulting calendar date may fall within the preceding or following
calendar year. Week 53 is only accepted for ISO years which have one.
*/
func ISOWeekDate(year, week int, wd time.Weekday) (Date, bool) {
	if year < MinYear-1 || year > MaxYear+1 || wd < time.Sunday || wd > time.Saturday ||
		week < 1 || week > isoWeeksIn(int64(year)) {
		debugCalendar(newLItem(year, "isoyear"), newLItem(week, "week"), "rejected")
		return Date{}, false
	}
	jan4 := daysFromCivil(int64(year), 1, 4)
	monday := jan4 - (isoDay(weekdayOf(jan4)) - 1)
	return DateFromDays(monday + int64(week-1)*7 + isoDay(wd) - 1)
}

/*
DateFromDays returns the [Date] lying days after 1970-01-01 (before,
if negative) alongside a Boolean value indicative of the result being
within [[MinDate], [MaxDate]].
*/
func DateFromDays(days int64) (Date, bool) {
	if days < minDays || days > maxDays {
		debugCalendar(newLItem(days, "days"), "out of range")
		return Date{}, false
	}
	return Date{days: int32(days)}, true
}

/*
Days returns the number of days between 1970-01-01 and the receiver
instance, negative for earlier dates.
*/
func (r Date) Days() int64 { return int64(r.days) }

/*
Date returns the year, month and day of the receiver instance.
*/
func (r Date) Date() (year int, month time.Month, day int) {
	y, m, d := civilFromDays(int64(r.days))
	return int(y), m, d
}

/*
Year returns the calendar year of the receiver instance.
*/
func (r Date) Year() int {
	y, _, _ := r.Date()
	return y
}

/*
Month returns the calendar month of the receiver instance.
*/
func (r Date) Month() time.Month {
	_, m, _ := r.Date()
	return m
}

/*
Day returns the day of the month of the receiver instance.
*/
func (r Date) Day() int {
	_, _, d := r.Date()
	return d
}

/*
YearDay returns the ordinal day of the year of the receiver instance,
in the range [1, 366].
*/
func (r Date) YearDay() int {
	y := r.Year()
	return int(int64(r.days)-daysFromCivil(int64(y), 1, 1)) + 1
}

/*
Weekday returns the day of the week of the receiver instance.
*/
func (r Date) Weekday() time.Weekday { return weekdayOf(int64(r.days)) }

/*
ISOWeek returns the ISO 8601 year and week number of the receiver
instance. Weeks range from 1 to 53. Early January dates may belong to
week 52 or 53 of the previous ISO year, and late December dates to
week 1 of the next.
*/
func (r Date) ISOWeek() (year, week int) {
	d := int64(r.days)
	thu := d - (isoDay(weekdayOf(d)) - 1) + 3
	y, _, _ := civilFromDays(thu)
	week = int((thu-daysFromCivil(y, 1, 1))/7) + 1
	return int(y), week
}

/*
IsLeapYear returns a Boolean value indicative of the receiver instance
falling within a leap year.
*/
func (r Date) IsLeapYear() bool { return IsLeapYear(r.Year()) }

/*
DaysInMonth returns the length of the month holding the receiver instance.
*/
func (r Date) DaysInMonth() int {
	y, m, _ := r.Date()
	return DaysIn(y, m)
}

/*
Succ returns the following day alongside a Boolean value indicative of
it being representable.
*/
func (r Date) Succ() (Date, bool) { return DateFromDays(int64(r.days) + 1) }

/*
Pred returns the preceding day alongside a Boolean value indicative of
it being representable.
*/
func (r Date) Pred() (Date, bool) { return DateFromDays(int64(r.days) - 1) }

/*
AddDays returns the receiver instance shifted by n days alongside a
Boolean value indicative of the result being representable.
*/
func (r Date) AddDays(n int64) (Date, bool) {
	if n > maxDays-minDays || n < minDays-maxDays {
		return Date{}, false
	}
	return DateFromDays(int64(r.days) + n)
}

/*
AddMonths returns the receiver instance shifted by n calendar months
alongside a Boolean value indicative of the resulting year being within
range. The day of the month is clamped to the length of the target
month, e.g.: January 31st plus one month is the last day of February.
Clamping itself never fails.
*/
func (r Date) AddMonths(n int) (Date, bool) {
	const span = int64(MaxYear-MinYear+1) * 12
	if int64(n) > span || int64(n) < -span {
		return Date{}, false
	}

	y, m, d := r.Date()
	ny, nm := divFloor(int64(y)*12+int64(m-1)+int64(n), 12)
	if ny < MinYear || ny > MaxYear {
		debugCalendar(newLItem(ny, "year"), "month shift out of range")
		return Date{}, false
	}

	month := time.Month(nm + 1)
	if dim := DaysIn(int(ny), month); d > dim {
		d = dim
	}
	return DateOf(int(ny), month, d)
}

/*
DaysSince returns the signed number of days from u to the receiver
instance.
*/
func (r Date) DaysSince(u Date) int64 { return int64(r.days) - int64(u.days) }

/*
Compare returns -1, 0 or +1 if the receiver instance is before, equal
to or after u.
*/
func (r Date) Compare(u Date) int {
	switch {
	case r.days < u.days:
		return -1
	case r.days > u.days:
		return 1
	}
	return 0
}

/*
Before returns a Boolean value indicative of the receiver instance
preceding u.
*/
func (r Date) Before(u Date) bool { return r.days < u.days }

/*
After returns a Boolean value indicative of the receiver instance
following u.
*/
func (r Date) After(u Date) bool { return r.days > u.days }
