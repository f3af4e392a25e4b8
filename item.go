package civil

/*
item.go implements the formatting item model shared by every textual
form of this package, and the field accumulator used to resolve parsed
fields into values.
*/

import "time"

/*
ItemKind identifies the field or literal an [Item] stands for.
*/
type ItemKind uint8

const (
	ItemLiteral  ItemKind = iota // the fixed text in Item.Lit
	ItemSpace                    // a single space; any run of blanks when parsing
	ItemYear                     // [±]YYYY; a sign is mandatory outside 0000..9999
	ItemMonth                    // MM, 01..12
	ItemDay                      // DD, 01..31
	ItemOrdinal                  // DDD, 001..366
	ItemISOYear                  // ISO week-numbering year, as ItemYear
	ItemISOWeek                  // WW, 01..53
	ItemWeekday                  // D, 1 (Monday) .. 7 (Sunday)
	ItemHour                     // HH, 00..23
	ItemMinute                   // MM, 00..59
	ItemSecond                   // SS, 00..60
	ItemFraction                 // optional .fff[fff[fff]]
)

var itemKindNames = map[ItemKind]string{
	ItemLiteral:  "literal",
	ItemSpace:    "space",
	ItemYear:     "year",
	ItemMonth:    "month",
	ItemDay:      "day",
	ItemOrdinal:  "ordinal",
	ItemISOYear:  "isoyear",
	ItemISOWeek:  "isoweek",
	ItemWeekday:  "weekday",
	ItemHour:     "hour",
	ItemMinute:   "minute",
	ItemSecond:   "second",
	ItemFraction: "fraction",
}

/*
String returns the string representation of the receiver instance.
*/
func (r ItemKind) String() string {
	if s, ok := itemKindNames[r]; ok {
		return s
	}
	return "unknown"
}

/*
Item is one element of a format description: either a literal or a
numeric field. Item sequences are static descriptions that may be
shared freely between goroutines.
*/
type Item struct {
	Kind ItemKind
	Lit  string
}

// Lit returns a literal [Item] for s.
func Lit(s string) Item { return Item{Kind: ItemLiteral, Lit: s} }

// Num returns the field [Item] of kind k.
func Num(k ItemKind) Item { return Item{Kind: k} }

/*
Predefined item sequences.

ISODateTimeItems describes the canonical form, e.g.:
"2001-09-09T01:46:40.500". DisplayItems differs only by separating the
date and time with a space. ISOOrdinalItems ("2004-366") and
ISOWeekItems ("2004-W53-6") describe the alternate ISO 8601 date forms.
*/
var (
	ISODateItems     = []Item{Num(ItemYear), Lit("-"), Num(ItemMonth), Lit("-"), Num(ItemDay)}
	ISOTimeItems     = []Item{Num(ItemHour), Lit(":"), Num(ItemMinute), Lit(":"), Num(ItemSecond), Num(ItemFraction)}
	ISODateTimeItems = join3(ISODateItems, Lit("T"), ISOTimeItems)
	DisplayItems     = join3(ISODateItems, Lit(" "), ISOTimeItems)
	ISOOrdinalItems  = []Item{Num(ItemYear), Lit("-"), Num(ItemOrdinal)}
	ISOWeekItems     = []Item{Num(ItemISOYear), Lit("-W"), Num(ItemISOWeek), Lit("-"), Num(ItemWeekday)}
)

func join3(a []Item, sep Item, b []Item) []Item {
	out := make([]Item, 0, len(a)+len(b)+1)
	out = append(out, a...)
	out = append(out, sep)
	return append(out, b...)
}

/*
appendYear writes y as four digits within 0000..9999, and otherwise as
a sign followed by at least four digits.
*/
func appendYear(b []byte, y int64) []byte {
	if y < 0 || y > 9999 {
		if y >= 0 {
			b = append(b, '+')
		}
	}
	return appPadded(b, y, 4)
}

/*
AppendFormat appends the rendering of the receiver instance per items to
b and returns the extended buffer.

A leap second renders as second 60 when it extends second 59. For any
other second it renders as that second plus one, which cannot be told
apart from the following ordinary second.
*/
func (r DateTime) AppendFormat(b []byte, items ...Item) []byte {
	y, m, d := r.date.Date()
	for _, it := range items {
		switch it.Kind {
		case ItemLiteral:
			b = append(b, it.Lit...)
		case ItemSpace:
			b = append(b, ' ')
		case ItemYear:
			b = appendYear(b, int64(y))
		case ItemMonth:
			b = app2(b, int(m))
		case ItemDay:
			b = app2(b, d)
		case ItemOrdinal:
			b = appPadded(b, int64(r.date.YearDay()), 3)
		case ItemISOYear:
			iy, _ := r.date.ISOWeek()
			b = appendYear(b, int64(iy))
		case ItemISOWeek:
			_, w := r.date.ISOWeek()
			b = app2(b, w)
		case ItemWeekday:
			b = append(b, byte('0'+isoDay(r.date.Weekday())))
		case ItemHour:
			b = app2(b, r.time.Hour())
		case ItemMinute:
			b = app2(b, r.time.Minute())
		case ItemSecond:
			sec := r.time.Second()
			if r.time.IsLeapSecond() {
				sec++
			}
			b = app2(b, sec)
		case ItemFraction:
			b = appFrac(b, r.time.frac%nanosPerSec, '.')
		}
	}
	return b
}

/*
Format returns the rendering of the receiver instance per items.
*/
func (r DateTime) Format(items ...Item) string {
	var buf [64]byte
	return string(r.AppendFormat(buf[:0], items...))
}

/*
field bits of Parsed.set.
*/
const (
	pYear = 1 << iota
	pMonth
	pDay
	pOrdinal
	pISOYear
	pISOWeek
	pWeekday
	pHour
	pMinute
	pSecond
	pNano
)

/*
Parsed accumulates field values recovered from text, whether by [Parsed.Parse]
or by an external tokenizer through [Parsed.Set], and resolves them into
values. The zero value is ready for use.

Fields may be set more than once provided every setting agrees; a
conflicting value yields [ErrImpossible].
*/
type Parsed struct {
	set                              uint16
	year, month, day, ordinal        int64
	isoYear, isoWeek, weekday        int64
	hour, minute, second, nanosecond int64
}

var parsedBounds = map[ItemKind][2]int64{
	ItemYear:     {MinYear, MaxYear},
	ItemMonth:    {1, 12},
	ItemDay:      {1, 31},
	ItemOrdinal:  {1, 366},
	ItemISOYear:  {MinYear - 1, MaxYear + 1},
	ItemISOWeek:  {1, 53},
	ItemWeekday:  {1, 7},
	ItemHour:     {0, 23},
	ItemMinute:   {0, 59},
	ItemSecond:   {0, 60},
	ItemFraction: {0, nanosPerSec - 1},
}

func (r *Parsed) slot(k ItemKind) (*int64, uint16) {
	switch k {
	case ItemYear:
		return &r.year, pYear
	case ItemMonth:
		return &r.month, pMonth
	case ItemDay:
		return &r.day, pDay
	case ItemOrdinal:
		return &r.ordinal, pOrdinal
	case ItemISOYear:
		return &r.isoYear, pISOYear
	case ItemISOWeek:
		return &r.isoWeek, pISOWeek
	case ItemWeekday:
		return &r.weekday, pWeekday
	case ItemHour:
		return &r.hour, pHour
	case ItemMinute:
		return &r.minute, pMinute
	case ItemSecond:
		return &r.second, pSecond
	case ItemFraction:
		return &r.nanosecond, pNano
	}
	return nil, 0
}

/*
Set records v for the field of kind k. A v outside the field's range
yields [ErrOutOfRange]; a v differing from an earlier setting yields
[ErrImpossible]. Literal and space kinds yield [ErrBadFormat]. The
[ItemFraction] field is set in nanoseconds.
*/
func (r *Parsed) Set(k ItemKind, v int64) error {
	p, bit := r.slot(k)
	if p == nil {
		return ErrBadFormat
	}
	if lim := parsedBounds[k]; v < lim[0] || v > lim[1] {
		return ErrOutOfRange
	}
	if r.set&bit != 0 && *p != v {
		debugParse(newLItem(k, "field"), newLItem(*p, "was"), newLItem(v, "now"))
		return ErrImpossible
	}
	*p = v
	r.set |= bit
	return nil
}

func (r *Parsed) has(bits uint16) bool { return r.set&bits == bits }

/*
verify returns false if any field already set disagrees with date.
*/
func (r *Parsed) verify(date Date) bool {
	y, m, d := date.Date()
	iy, iw := date.ISOWeek()
	for _, c := range []struct {
		bit uint16
		got int64
		v   int64
	}{
		{pYear, r.year, int64(y)},
		{pMonth, r.month, int64(m)},
		{pDay, r.day, int64(d)},
		{pOrdinal, r.ordinal, int64(date.YearDay())},
		{pISOYear, r.isoYear, int64(iy)},
		{pISOWeek, r.isoWeek, int64(iw)},
		{pWeekday, r.weekday, isoDay(date.Weekday())},
	} {
		if r.set&c.bit != 0 && c.got != c.v {
			return false
		}
	}
	return true
}

/*
ToDate resolves the accumulated fields into a [Date], from the first
complete group among year-month-day, year-ordinal and ISO year-week-
weekday. Every other field set must agree with the result.

The error is [ErrNotEnough] when no group is complete, [ErrOutOfRange]
when the group names no valid date and [ErrImpossible] when another
field disagrees.
*/
func (r *Parsed) ToDate() (Date, error) {
	var (
		date Date
		ok   bool
	)

	switch {
	case r.has(pYear | pMonth | pDay):
		date, ok = DateOf(int(r.year), time.Month(r.month), int(r.day))
	case r.has(pYear | pOrdinal):
		date, ok = OrdinalDate(int(r.year), int(r.ordinal))
	case r.has(pISOYear | pISOWeek | pWeekday):
		wd := time.Weekday(r.weekday % 7)
		date, ok = ISOWeekDate(int(r.isoYear), int(r.isoWeek), wd)
	default:
		return Date{}, ErrNotEnough
	}

	if !ok {
		return Date{}, ErrOutOfRange
	}
	if !r.verify(date) {
		return Date{}, ErrImpossible
	}
	return date, nil
}

/*
ToTime resolves the accumulated fields into a [Time]. Hour and minute
are required; seconds and the fraction default to zero. Second 60 is
read as a leap second extending second 59.
*/
func (r *Parsed) ToTime() (Time, error) {
	if !r.has(pHour | pMinute) {
		return Time{}, ErrNotEnough
	}
	sec, nano := r.second, r.nanosecond
	if sec == 60 {
		sec = 59
		nano += nanosPerSec
	}
	t, ok := TimeOf(int(r.hour), int(r.minute), int(sec), int(nano))
	if !ok {
		return Time{}, ErrOutOfRange
	}
	return t, nil
}

/*
ToDateTime resolves the accumulated fields into a [DateTime] through
[Parsed.ToDate] and [Parsed.ToTime].
*/
func (r *Parsed) ToDateTime() (DateTime, error) {
	d, err := r.ToDate()
	if err != nil {
		return DateTime{}, err
	}
	t, err := r.ToTime()
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: d, time: t}, nil
}

/*
Parse consumes s per items, recording every field found within the
receiver instance. The whole of s must be consumed.

Errors are reported as [ErrInvalid] for unexpected characters,
[ErrTooShort] when s ends early, [ErrTooLong] for trailing input and,
as with [Parsed.Set], for out-of-range or conflicting fields.
*/
func (r *Parsed) Parse(s string, items ...Item) error {
	i := 0
	for _, it := range items {
		var err error
		switch it.Kind {
		case ItemLiteral:
			switch {
			case len(s)-i < len(it.Lit) && hasPfx(it.Lit, s[i:]):
				err = ErrTooShort
			case !hasPfx(s[i:], it.Lit):
				err = ErrInvalid
			default:
				i += len(it.Lit)
			}
		case ItemSpace:
			for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
				i++
			}
		case ItemYear, ItemISOYear:
			var v int64
			if v, i, err = scanYear(s, i); err == nil {
				err = r.Set(it.Kind, v)
			}
		case ItemOrdinal:
			err = r.scanFixed(s, &i, it.Kind, 3)
		case ItemWeekday:
			err = r.scanFixed(s, &i, it.Kind, 1)
		case ItemMonth, ItemDay, ItemISOWeek, ItemHour, ItemMinute, ItemSecond:
			err = r.scanFixed(s, &i, it.Kind, 2)
		case ItemFraction:
			if i < len(s) && s[i] == '.' {
				var v int64
				if v, i, err = scanFraction(s, i+1); err == nil {
					err = r.Set(ItemFraction, v)
				}
			}
		default:
			err = ErrBadFormat
		}
		if err != nil {
			return err
		}
	}
	if i < len(s) {
		return ErrTooLong
	}
	return nil
}

func (r *Parsed) scanFixed(s string, i *int, k ItemKind, width int) error {
	var v int64
	for n := 0; n < width; n++ {
		if *i >= len(s) {
			return ErrTooShort
		}
		if !isDigit(s[*i]) {
			return ErrInvalid
		}
		v = v*10 + int64(s[*i]-'0')
		*i++
	}
	return r.Set(k, v)
}

/*
scanYear reads an unsigned four-digit year, or a sign followed by four
to nine digits.
*/
func scanYear(s string, i int) (v int64, next int, err error) {
	if i >= len(s) {
		return 0, i, ErrTooShort
	}

	neg, signed := false, s[i] == '+' || s[i] == '-'
	if signed {
		neg = s[i] == '-'
		i++
	}

	start := i
	for i < len(s) && isDigit(s[i]) && (signed && i-start < 9 || !signed && i-start < 4) {
		v = v*10 + int64(s[i]-'0')
		i++
	}

	switch n := i - start; {
	case n < 4 && i == len(s):
		return 0, i, ErrTooShort
	case n < 4:
		return 0, i, ErrInvalid
	}
	if neg {
		v = -v
	}
	return v, i, nil
}

/*
scanFraction reads at least one digit at i, keeping the first nine as
nanoseconds and discarding the rest.
*/
func scanFraction(s string, i int) (nano int64, next int, err error) {
	start, scale := i, int64(nanosPerSec)
	for i < len(s) && isDigit(s[i]) {
		if scale /= 10; scale > 0 {
			nano += int64(s[i]-'0') * scale
		}
		i++
	}
	switch {
	case i == start && i == len(s):
		err = ErrTooShort
	case i == start:
		err = ErrInvalid
	}
	return nano, i, err
}

/*
ParseItems parses s per items into a [DateTime]. Both a date and a time
of day must be resolvable from the fields found.
*/
func ParseItems(s string, items ...Item) (dt DateTime, err error) {
	done := debugPath(s, newLItem(len(items), "items"))
	defer func() { done(dt, err) }()

	var p Parsed
	if err := p.Parse(s, items...); err != nil {
		return DateTime{}, withInput(err, s)
	}
	if dt, err = p.ToDateTime(); err != nil {
		return DateTime{}, withInput(err, s)
	}
	return dt, nil
}

// withInput attaches s to a sentinel ParseError.
func withInput(err error, s string) error {
	if pe, ok := err.(*ParseError); ok {
		debugParse(newLItem(s, "input"), newLItem(pe.Kind, "kind"))
		return parseError(pe.Kind, s)
	}
	return err
}
