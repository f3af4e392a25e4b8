package civil

/*
evt.go contains EventType constants which are (only) used
for debugging when this package was built or run with the
"-tags civil_debug" flag.
*/

/*
EventType describes a specific kind of [Tracer] event. see the
[EventType] constants for a full list and descriptions.

Note that this type and all of its constants are only meaningful
if/when this package was run or built with the "-tags civil_debug"
flag. Otherwise, they can be ignored entirely.
*/
type EventType int

const (
	EventNone EventType = 0     // NO events
	EventAll  EventType = 65535 // ALL events (use with extreme caution)
)

const (
	EventEnter      EventType = 1 << iota //     1: Called-function begin
	EventInfo                             //     2: Interim function event
	EventExit                             //     4: Called function exit
	EventIO                               //     8: Called function inputs/outputs
	EventCalendar                         //    16: Day-count <-> calendar conversion
	EventClock                            //    32: Clock-of-day conversion
	EventArith                            //    64: Checked arithmetic, carries and guards
	EventParse                            //   128: Text parsing and item resolution
	EventCodec                            //   256: CBOR/YAML/TOML/GeneralizedTime ops
	EventConstraint                       //   512: Constraint ops
	_                                     //  1024: unassigned
	_                                     //  2048: unassigned
	_                                     //  4096: unassigned
	_                                     //  8192: unassigned
	_                                     // 16384: unassigned
	_                                     // 32768: unassigned
)
