package civil

/*
var.go contains global variables and constants used throughout this package.
*/

/*
Supported proleptic Gregorian year range. The range is symmetric about
year zero and wide enough that every arithmetic step on day-counts and
timestamps (×86,400 seconds, ×10⁹ nanoseconds for the narrower unit
variants) can be bounded in advance.
*/
const (
	MinYear = -262143
	MaxYear = 262143
)

/*
Day-count bounds (days since 1970-01-01) of [MinYear]-01-01 and
[MaxYear]-12-31 respectively.
*/
const (
	minDays int64 = -96465292
	maxDays int64 = 95026601
)

const (
	nanosPerMicro  = 1_000
	nanosPerMilli  = 1_000_000
	nanosPerSec    = 1_000_000_000
	microsPerSec   = 1_000_000
	millisPerSec   = 1_000
	secsPerMinute  = 60
	secsPerHour    = 3_600
	secsPerDay     = 86_400
	secsPerWeek    = 604_800
	daysPer400Year = 146_097

	// leap-second band upper bound (exclusive) for the fractional field
	maxFrac = 2 * nanosPerSec

	// day offset between 0000-03-01 and 1970-01-01 used by the
	// closed-form calendar transforms
	epochShift = 719_468
)

const (
	maxInt64 = 1<<63 - 1
	minInt64 = -1 << 63
)

/*
maxSecsBits bounds the magnitude (in bits) of a day-scale carry, in
seconds, that [DateTime.CheckedAdd] will convert into a day delta. A
carry of 2^44 seconds is about 557,000 years, which already exceeds the
entire supported span; rejecting it up front keeps the seconds to days
conversion within int32 headroom without inspecting the result.
*/
const maxSecsBits = 44
