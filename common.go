package civil

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"errors"
	"math/bits"
	"strconv"
	"strings"
)

/*
official import aliases.
*/
var (
	mkerr   func(string) error                       = errors.New
	itoa    func(int) string                         = strconv.Itoa
	atoi    func(string) (int, error)                = strconv.Atoi
	fmtInt  func(int64, int) string                  = strconv.FormatInt
	fmtUint func(uint64, int) string                 = strconv.FormatUint
	appInt  func([]byte, int64, int) []byte          = strconv.AppendInt
	lc      func(string) string                      = strings.ToLower
	split   func(string, string) []string            = strings.Split
	join    func([]string, string) string            = strings.Join
	stridxb func(string, byte) int                   = strings.IndexByte
	lidx    func(string, string) int                 = strings.LastIndex
	replace func(string, string, string, int) string = strings.Replace
	hasPfx  func(string, string) bool                = strings.HasPrefix
	trimS   func(string) string                      = strings.TrimSpace
	cntns   func(string, string) bool                = strings.Contains
	streqf  func(string, string) bool                = strings.EqualFold
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

func bool2str(b bool) (s string) {
	if s = `false`; b {
		s = `true`
	}
	return
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

/*
divFloor returns the quotient and non-negative remainder of a/b for
a positive divisor b, rounding the quotient toward negative infinity.
*/
func divFloor(a, b int64) (q, r int64) {
	q, r = a/b, a%b
	if r < 0 {
		q--
		r += b
	}
	return
}

/*
mulInt64 returns a*b alongside a Boolean value indicative of the
product fitting within an int64. The product is computed on the
magnitudes so that no wrapped value is ever produced.
*/
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	neg := (a < 0) != (b < 0)
	hi, lo := bits.Mul64(absU64(a), absU64(b))
	if hi != 0 {
		return 0, false
	}
	if neg {
		if lo > 1<<63 {
			return 0, false
		}
		return int64(-lo), true
	}
	if lo > 1<<63-1 {
		return 0, false
	}
	return int64(lo), true
}

/*
addInt64 returns a+b alongside a Boolean value indicative of the sum
fitting within an int64.
*/
func addInt64(a, b int64) (int64, bool) {
	if (b > 0 && a > maxInt64-b) || (b < 0 && a < minInt64-b) {
		return 0, false
	}
	return a + b, true
}

func absU64(a int64) uint64 {
	if a < 0 {
		return uint64(-(a + 1)) + 1
	}
	return uint64(a)
}

func app2(b []byte, v int) []byte {
	return append(b, byte('0'+v/10), byte('0'+v%10))
}

/*
appPadded appends the decimal form of v zero-padded to width digits.
A leading sign is written when v is negative.
*/
func appPadded(b []byte, v int64, width int) []byte {
	if v < 0 {
		b = append(b, '-')
		v = -v
	}
	var tmp [20]byte
	n := len(tmp)
	for v > 0 || n == len(tmp) {
		n--
		tmp[n] = byte('0' + v%10)
		v /= 10
	}
	for pad := width - (len(tmp) - n); pad > 0; pad-- {
		b = append(b, '0')
	}
	return append(b, tmp[n:]...)
}

/*
appFrac appends the fractional part of a second (0..999,999,999) using
the shortest of three, six or nine digits which represents it exactly.
Nothing is written for zero.
*/
func appFrac(b []byte, nano uint32, sep byte) []byte {
	var width int
	switch {
	case nano == 0:
		return b
	case nano%1_000_000 == 0:
		nano /= 1_000_000
		width = 3
	case nano%1_000 == 0:
		nano /= 1_000
		width = 6
	default:
		width = 9
	}
	b = append(b, sep)
	return appPadded(b, int64(nano), width)
}
