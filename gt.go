package civil

/*
gt.go implements the compact, zone-less GeneralizedTime form of a
DateTime: YYYYMMDDHHMMSS[.fraction].
*/

var gtItems = []Item{
	Num(ItemYear), Num(ItemMonth), Num(ItemDay),
	Num(ItemHour), Num(ItemMinute), Num(ItemSecond), Num(ItemFraction),
}

/*
GeneralizedTime returns the receiver instance in the zone-less ("local")
GeneralizedTime form, e.g.: "20010909014640.5", alongside an error should
the year lie outside 0000..9999. Trailing zeros of the fraction are
omitted and a leap second renders as second 60.
*/
func (r DateTime) GeneralizedTime() (string, error) {
	if y := r.Year(); y < 0 || y > 9999 {
		return "", errorGTYearRange
	}

	var buf [32]byte
	b := r.AppendFormat(buf[:0], gtItems[:6]...)
	if frac := r.time.frac % nanosPerSec; frac != 0 {
		b = appPadded(append(b, '.'), int64(frac), 9)
		for b[len(b)-1] == '0' {
			b = b[:len(b)-1]
		}
	}
	return string(b), nil
}

/*
ParseGeneralizedTime returns an instance of [DateTime] alongside an error
following an attempt to parse s as a zone-less GeneralizedTime value,
"YYYYMMDDHHMMSS" optionally followed by a fraction introduced by a period
or a comma. A zone designator ("Z" or a numeric offset) is rejected, as
civil values bear no zone.
*/
func ParseGeneralizedTime(s string) (DateTime, error) {
	var p Parsed
	err := p.parseCoreGT(s)
	if err == nil {
		var next int
		if next, err = p.parseGTFraction(s, 14); err == nil {
			err = checkGTTail(s, next)
		}
	}
	if err != nil {
		if _, ok := err.(*ParseError); ok {
			err = withInput(err, s)
		}
		return DateTime{}, err
	}

	dt, err := p.ToDateTime()
	if err != nil {
		return DateTime{}, withInput(err, s)
	}
	return dt, nil
}

func (r *Parsed) parseCoreGT(s string) error {
	toInt := func(b0, b1 byte) int64 { return int64(b0-'0')*10 + int64(b1-'0') }

	if len(s) < 14 {
		return ErrTooShort
	}
	for k := 0; k < 14; k++ {
		if !isDigit(s[k]) {
			return ErrInvalid
		}
	}

	fields := [...]struct {
		k ItemKind
		v int64
	}{
		{ItemYear, toInt(s[0], s[1])*100 + toInt(s[2], s[3])},
		{ItemMonth, toInt(s[4], s[5])},
		{ItemDay, toInt(s[6], s[7])},
		{ItemHour, toInt(s[8], s[9])},
		{ItemMinute, toInt(s[10], s[11])},
		{ItemSecond, toInt(s[12], s[13])},
	}
	for _, f := range fields {
		if err := r.Set(f.k, f.v); err != nil {
			return err
		}
	}
	return nil
}

func (r *Parsed) parseGTFraction(s string, i int) (next int, err error) {
	if i >= len(s) || (s[i] != '.' && s[i] != ',') {
		return i, nil
	}
	var nano int64
	if nano, next, err = scanFraction(s, i+1); err == nil {
		err = r.Set(ItemFraction, nano)
	}
	return
}

func checkGTTail(s string, i int) error {
	switch {
	case i == len(s):
		return nil
	case s[i] == 'Z' || s[i] == '+' || s[i] == '-':
		debugCodec(newLItem(s, "generalized time"), "zone designator")
		return errorGTZoneForbidden
	}
	return ErrTooLong
}
