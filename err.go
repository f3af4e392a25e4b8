package civil

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

import (
	"reflect"
	"sync"
)

/*
ParseErrorKind describes the category of a [ParseError]. See the
ParseErrorKind constants for possible values.
*/
type ParseErrorKind uint8

const (
	_               ParseErrorKind = iota
	ParseOutOfRange                // a field was decoded but lies outside its valid range
	ParseImpossible                // fields are individually valid but mutually inconsistent
	ParseNotEnough                 // input lacks a field required for a unique value
	ParseInvalid                   // input holds an unexpected character
	ParseTooShort                  // input ended prematurely
	ParseTooLong                   // trailing input remains after a complete value
	ParseBadFormat                 // the item sequence itself is unusable
)

var parseKindNames = map[ParseErrorKind]string{
	ParseOutOfRange: "input is out of range",
	ParseImpossible: "no possible date and time matching input",
	ParseNotEnough:  "input is not enough for unique date and time",
	ParseInvalid:    "input contains invalid characters",
	ParseTooShort:   "premature end of input",
	ParseTooLong:    "trailing input",
	ParseBadFormat:  "bad or unsupported format",
}

/*
String returns the string representation of the receiver instance.
*/
func (r ParseErrorKind) String() string {
	if s, ok := parseKindNames[r]; ok {
		return s
	}
	return "unknown parse error"
}

/*
ParseError is returned by every parsing function within this package.
The Kind field distinguishes malformed input ([ParseInvalid],
[ParseTooShort], [ParseTooLong]) from individually out-of-range fields
([ParseOutOfRange]) and from mutually inconsistent fields
([ParseImpossible]).

Instances match the corresponding Err* sentinel via [errors.Is],
regardless of the Input field.
*/
type ParseError struct {
	Kind  ParseErrorKind
	Input string
}

/*
Error returns the string representation of the receiver instance.
*/
func (r *ParseError) Error() string {
	msg := `PARSE ERROR: ` + r.Kind.String()
	if r.Input != "" {
		msg += ` (input: "` + r.Input + `")`
	}
	return msg
}

/*
Is returns a Boolean value indicative of target being a *[ParseError]
of the same kind as the receiver instance.
*/
func (r *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == r.Kind
}

/*
ParseError sentinels, for use with [errors.Is].
*/
var (
	ErrOutOfRange error = &ParseError{Kind: ParseOutOfRange}
	ErrImpossible error = &ParseError{Kind: ParseImpossible}
	ErrNotEnough  error = &ParseError{Kind: ParseNotEnough}
	ErrInvalid    error = &ParseError{Kind: ParseInvalid}
	ErrTooShort   error = &ParseError{Kind: ParseTooShort}
	ErrTooLong    error = &ParseError{Kind: ParseTooLong}
	ErrBadFormat  error = &ParseError{Kind: ParseBadFormat}
)

func parseError(kind ParseErrorKind, input string) error {
	return &ParseError{Kind: kind, Input: input}
}

/*
codec errors.
*/
var (
	errorGTYearRange     = codecErr{mkerr("year outside 0000..9999 has no GeneralizedTime form")}
	errorGTZoneForbidden = codecErr{mkerr("GeneralizedTime zone designator not permitted for civil values")}
	errorCBORTag         = codecErr{mkerr("unexpected CBOR tag for DATE")}
	errorStdDuration     = codecErr{mkerr("duration out of range for time.Duration")}
	errorTimeRange       = codecErr{mkerr("time.Time out of supported range")}
)

/*
types which implement the error interface.
*/
type (
	codecErr      struct{ e error }
	constraintErr struct{ e error }
	generalErr    struct{ e error }
)

func codecErrorf(m ...any) error          { return codecErr{mkerrf(m...)} }
func constraintViolationf(m ...any) error { return constraintErr{mkerrf(m...)} }
func generalErrorf(m ...any) error        { return generalErr{mkerrf(m...)} }

func (r codecErr) Error() string      { return `CODEC ERROR: ` + r.e.Error() }
func (r constraintErr) Error() string { return `CONSTRAINT VIOLATION: ` + r.e.Error() }
func (r generalErr) Error() string    { return `GENERAL ERROR: ` + r.e.Error() }

func (r codecErr) Unwrap() error      { return r.e }
func (r constraintErr) Unwrap() error { return r.e }
func (r generalErr) Unwrap() error    { return r.e }

func errorBadTypeForConstructor(typ string, input any) error {
	var inName string = "<nil>"
	if input != nil {
		inName = reflect.TypeOf(input).String()
	}
	return generalErrorf("Invalid input type for ", typ, " constructor: ", inName)
}

var errCache sync.Map

func mkerrf(parts ...any) error {
	if len(parts) == 0 {
		return nil
	}

	if len(parts) == 1 {
		if s, ok := parts[0].(string); ok {
			if v, hit := errCache.Load(s); hit {
				return v.(error)
			}
		} else if parts[0] == nil {
			return nil
		}
	}

	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case error:
			b.WriteString(v.Error())
		case string:
			b.WriteString(v)
		case interface{ String() string }:
			b.WriteString(v.String())
		case int:
			b.WriteString(itoa(v))
		case int64:
			b.WriteString(fmtInt(v, 10))
		default:
			b.WriteString("<not supported>")
		}
	}
	msg := b.String()

	if v, hit := errCache.Load(msg); hit {
		return v.(error)
	}
	e := mkerr(msg)
	errCache.Store(msg, e)
	return e
}
