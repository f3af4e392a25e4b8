package civil

/*
cbor.go implements the CBOR (RFC 8949) encoding of the types of this
package. A Date is written as tag 100 (RFC 8943) enclosing its day
count relative to 1970-01-01; DateTime, Time and Duration values are
written as text strings holding their canonical forms.
*/

import "github.com/fxamacker/cbor/v2"

const (
	cborTagDays     = 100  // RFC 8943: integer days since 1970-01-01
	cborTagFullDate = 1004 // RFC 8943: RFC 3339 full-date text string
)

// cborEncMode applies Core Deterministic Encoding (RFC 8949 §4.2).
var (
	cborEncMode cbor.EncMode
	cborDecMode cbor.DecMode
)

func init() {
	var err error
	if cborEncMode, err = cbor.CoreDetEncOptions().EncMode(); err != nil {
		panic("civil: CBOR encoder initialization failed: " + err.Error())
	}
	if cborDecMode, err = (cbor.DecOptions{}).DecMode(); err != nil {
		panic("civil: CBOR decoder initialization failed: " + err.Error())
	}
}

/*
MarshalCBOR returns the receiver instance encoded as tag 100 enclosing
its day count.
*/
func (r Date) MarshalCBOR() ([]byte, error) {
	return cborEncMode.Marshal(cbor.Tag{Number: cborTagDays, Content: r.Days()})
}

/*
UnmarshalCBOR decodes either tag 100 (day count) or tag 1004 (full-date
text) into the receiver instance.
*/
func (r *Date) UnmarshalCBOR(b []byte) error {
	var raw cbor.RawTag
	if err := cborDecMode.Unmarshal(b, &raw); err != nil {
		return codecErrorf("DATE: ", err)
	}

	var (
		d   Date
		err error
	)
	switch raw.Number {
	case cborTagDays:
		var days int64
		if err = cborDecMode.Unmarshal(raw.Content, &days); err == nil {
			var ok bool
			if d, ok = DateFromDays(days); !ok {
				err = codecErrorf("DATE: day count ", days, " out of range")
			}
		}
	case cborTagFullDate:
		var s string
		if err = cborDecMode.Unmarshal(raw.Content, &s); err == nil {
			d, err = ParseDate(s)
		}
	default:
		err = errorCBORTag
	}

	if err != nil {
		debugCodec(newLItem(err, "cbor"))
		return err
	}
	*r = d
	return nil
}

func marshalCBORText(s string) ([]byte, error) { return cborEncMode.Marshal(s) }

func unmarshalCBORText(b []byte, typ string) (string, error) {
	var s string
	if err := cborDecMode.Unmarshal(b, &s); err != nil {
		return "", codecErrorf(typ, ": ", err)
	}
	return s, nil
}

// MarshalCBOR returns the canonical form of the receiver instance as a text string.
func (r DateTime) MarshalCBOR() ([]byte, error) { return marshalCBORText(r.String()) }

// UnmarshalCBOR decodes a text string per [ParseDateTime].
func (r *DateTime) UnmarshalCBOR(b []byte) error {
	s, err := unmarshalCBORText(b, "DATE-TIME")
	if err == nil {
		err = r.UnmarshalText([]byte(s))
	}
	return err
}

// MarshalCBOR returns the canonical form of the receiver instance as a text string.
func (r Time) MarshalCBOR() ([]byte, error) { return marshalCBORText(r.String()) }

// UnmarshalCBOR decodes a text string per [ParseTime].
func (r *Time) UnmarshalCBOR(b []byte) error {
	s, err := unmarshalCBORText(b, "TIME")
	if err == nil {
		err = r.UnmarshalText([]byte(s))
	}
	return err
}

// MarshalCBOR returns the ISO 8601 form of the receiver instance as a text string.
func (r Duration) MarshalCBOR() ([]byte, error) { return marshalCBORText(r.String()) }

// UnmarshalCBOR decodes a text string per [ParseDuration].
func (r *Duration) UnmarshalCBOR(b []byte) error {
	s, err := unmarshalCBORText(b, "DURATION")
	if err == nil {
		err = r.UnmarshalText([]byte(s))
	}
	return err
}
