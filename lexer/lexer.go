// Package lexer scans decimal floating point literals.
//
// The accepted grammar is:
//
//  literal  = sign? ( digits ( '.' digits? )? | '.' digits ) exponent?
//           | sign? ( "inf" | "infinity" | "nan" )
//  exponent = ( 'e' | 'E' ) sign? digits
//  sign     = '+' | '-'
//
// Keywords are matched ignoring case. The lexer only validates the grammar
// and slices the input; it does not interpret the digits.
package lexer

import (
	"github.com/zeebo/errs"
)

// Error classes.
var (
	// GrammarError is returned when the input is not a literal.
	GrammarError = errs.Class("grammar")

	// TrailingDataError is returned when a literal is followed by more
	// bytes and partial parsing was not requested.
	TrailingDataError = errs.Class("trailing data")
)

// MaxExponent bounds the magnitude of scanned exponents. Larger exponents
// saturate, which cannot change the converted value because the longest
// input is far shorter than MaxExponent digits.
const MaxExponent = 1 << 60

// Literal is a scanned decimal literal.
type Literal struct {
	Negative bool
	Special  Special

	// Integer and Fraction are the digit runs before and after the decimal
	// point. They alias the scanned input.
	Integer  []byte
	Fraction []byte

	// Exponent is the value of the exponent suffix (saturated to
	// ±MaxExponent), zero if there is none.
	Exponent int64

	// Consumed is the number of input bytes the literal spans.
	Consumed int
}

// scanner tracks the position within the input.
type scanner struct {
	data []byte
	pos  int
}

func (s *scanner) rest() []byte {
	return s.data[s.pos:]
}

func (s *scanner) accept(c byte) bool {
	if s.pos < len(s.data) && s.data[s.pos] == c {
		s.pos++

		return true
	}

	return false
}

func (s *scanner) digits() []byte {
	start := s.pos
	for s.pos < len(s.data) && IsDigit(s.data[s.pos]) {
		s.pos++
	}

	return s.data[start:s.pos]
}

// finish applies the partial parsing policy to a literal ending at pos.
func (s *scanner) finish(partial bool) (consumed int, err error) {
	if !partial && s.pos != len(s.data) {
		return s.pos, TrailingDataError.New(
			"%d bytes after literal at offset %d: %q",
			len(s.data)-s.pos,
			s.pos,
			s.rest(),
		)
	}

	return s.pos, nil
}

// Scan scans a decimal literal at the start of data. If partial is false
// the literal must span all of data.
//
// In partial mode an exponent marker that is not followed by digits is not
// part of the literal.
func Scan(data []byte, partial bool) (lit Literal, err error) {
	if len(data) == 0 {
		return lit, GrammarError.New("empty input")
	}

	s := &scanner{data: data}

	var n int
	lit.Negative, n = ScanSign(data)
	s.pos += n

	if special, n := ScanSpecial(s.rest()); special != None {
		lit.Special = special
		s.pos += n

		lit.Consumed, err = s.finish(partial)

		return lit, err
	}

	lit.Integer = s.digits()
	if s.accept('.') {
		lit.Fraction = s.digits()
	}

	if len(lit.Integer) == 0 && len(lit.Fraction) == 0 {
		if s.pos < len(data) && (lower(data[s.pos]) == 'i' || lower(data[s.pos]) == 'n') {
			return lit, GrammarError.New("malformed keyword: %q", s.rest())
		}

		return lit, GrammarError.New("no digits at offset %d", s.pos)
	}

	if s.pos < len(data) && lower(data[s.pos]) == 'e' {
		exp, n, ok := ScanExponent(data[s.pos+1:], false)
		switch {
		case ok:
			lit.Exponent = exp
			s.pos += 1 + n
		case !partial:
			return lit, GrammarError.New("dangling exponent marker at offset %d", s.pos)
		}
	}

	lit.Consumed, err = s.finish(partial)

	return lit, err
}

// ScanSign returns whether data starts with a minus sign and the length of
// the sign (0 or 1).
func ScanSign(data []byte) (negative bool, n int) {
	if len(data) == 0 {
		return false, 0
	}

	switch data[0] {
	case '+':
		return false, 1
	case '-':
		return true, 1
	}

	return false, 0
}

// ScanExponent scans an optionally signed run of decimal digits. The value
// saturates at ±MaxExponent. If underscores is true a single '_' may
// separate two digits. It returns false if no digit follows the sign.
func ScanExponent(data []byte, underscores bool) (exp int64, n int, ok bool) {
	negative, n := ScanSign(data)

	start := n
	for n < len(data) {
		c := data[n]

		if c == '_' && underscores &&
			n > start && IsDigit(data[n-1]) &&
			n+1 < len(data) && IsDigit(data[n+1]) {

			n++

			continue
		}

		if !IsDigit(c) {
			break
		}

		if exp <= MaxExponent/10 {
			exp = exp*10 + int64(c-'0')
		} else {
			exp = MaxExponent
		}

		n++
	}

	if n == start {
		return 0, 0, false
	}

	if exp > MaxExponent {
		exp = MaxExponent
	}

	if negative {
		exp = -exp
	}

	return exp, n, true
}

// AddExponent returns a+b saturated to ±MaxExponent. Both operands must
// already be within ±MaxExponent.
func AddExponent(a, b int64) int64 {
	sum := a + b

	switch {
	case sum > MaxExponent:
		return MaxExponent
	case sum < -MaxExponent:
		return -MaxExponent
	}

	return sum
}

// IsDigit returns true for '0' through '9'.
func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// IsHexDigit returns true for '0' through '9' and 'a' through 'f' in either
// case.
func IsHexDigit(c byte) bool {
	if IsDigit(c) {
		return true
	}

	c = lower(c)

	return 'a' <= c && c <= 'f'
}

// HexValue returns the value of a hex digit.
func HexValue(c byte) uint64 {
	if IsDigit(c) {
		return uint64(c - '0')
	}

	return uint64(lower(c)-'a') + 10
}
