//go:build civil_debug

package civil

/*
loglevels is a 16-bit event mask with optional names for each bit.
The mask lives behind a pointer so that copies of a loglevels value
share state with the tracer that owns it.
*/
type loglevels struct {
	v *uint16
	m map[int]string
}

func newLoglevels() loglevels { return loglevels{v: new(uint16)} }

func (r loglevels) enabled() (names []string) {
	switch r.Int() {
	case 0:
		return []string{"none"}
	case r.Max():
		return []string{"all"}
	}

	for i := 0; i < 16; i++ {
		if bit := 1 << i; r.positive(bit) {
			if name, ok := r.m[bit]; ok {
				names = append(names, name)
			} else {
				names = append(names, itoa(bit))
			}
		}
	}
	return
}

func (r loglevels) NamesMap() map[int]string      { return r.m }
func (r *loglevels) SetNamesMap(m map[int]string) { r.m = m }

func (r loglevels) Int() (i int) {
	if r.v != nil {
		i = int(*r.v)
	}
	return
}

func (r loglevels) Max() int { return int(^uint16(0)) }
func (r loglevels) Min() int { return 0 }

func (r *loglevels) Shift(x ...any) loglevels {
	for _, xi := range x {
		if X, ok := r.verifyShiftValue(xi); ok {
			r.shift(X)
		}
	}
	return *r
}

func (r *loglevels) Unshift(x ...any) loglevels {
	for _, xi := range x {
		if X, ok := r.verifyShiftValue(xi); ok {
			r.unshift(X)
		}
	}
	return *r
}

func (r loglevels) Positive(x any) bool {
	if X, ok := r.verifyShiftValue(x); ok {
		return r.positive(X)
	}
	return false
}

func (r *loglevels) shift(x int) {
	if r.v != nil {
		*r.v |= uint16(x)
	}
}

func (r *loglevels) unshift(x int) {
	if r.v != nil {
		*r.v &^= uint16(x)
	}
}

func (r loglevels) positive(x int) bool {
	return r.v != nil && x != 0 && (*r.v)&uint16(x) != 0
}

func toLogInt(x any) (int, bool) {
	switch tv := x.(type) {
	case int:
		return tv, true
	case EventType:
		return int(tv), true
	case uint16:
		return int(tv), true
	}
	return 0, false
}

func (r loglevels) verifyShiftValue(x any) (int, bool) {
	if str, isStr := x.(string); isStr {
		x = r.strIndex(str)
	}
	if X, ok := toLogInt(x); ok && X >= r.Min() && X <= r.Max() {
		return X, true
	}
	return 0, false
}

func (r loglevels) strIndex(name string) int {
	for k, v := range r.m {
		if streqf(v, name) {
			return k
		}
	}
	return -1
}
