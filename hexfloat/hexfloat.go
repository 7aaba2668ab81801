// Package hexfloat parses hexadecimal floating point literals.
//
// The accepted grammar is:
//
//  literal  = sign? '0' ( 'x' | 'X' ) mantissa exponent
//           | sign? ( "inf" | "infinity" | "nan" )
//  mantissa = hexdigits ( '.' hexdigits? )? | '.' hexdigits
//  exponent = ( 'p' | 'P' ) sign? digits
//
// The binary exponent is mandatory. Each hex digit contributes exactly four
// bits, so the only rounding needed is to the width of the target format.
package hexfloat

import (
	"github.com/calebcase/atof/ieee"
	"github.com/calebcase/atof/lexer"
)

// maxMantissaDigits is the number of significant hex digits that fit in 64
// bits.
const maxMantissaDigits = 16

// Options configures the accepted grammar.
type Options struct {
	// Partial allows the literal to be followed by other bytes.
	Partial bool

	// Underscores allows a single '_' between two digits of the mantissa
	// or the exponent.
	Underscores bool
}

// Literal is a scanned hexadecimal literal. Its value is
//
//  (-1)^Negative * (Mantissa + ε) * 2^Exponent
//
// where ε is zero unless Truncated, in which case it lies strictly between
// zero and one.
type Literal struct {
	Negative bool
	Special  lexer.Special

	Mantissa  uint64
	Exponent  int64
	Truncated bool

	// Consumed is the number of input bytes the literal spans.
	Consumed int
}

// mantissa accumulates hex digits, skipping leading zeros and keeping at
// most maxMantissaDigits significant ones.
type mantissa struct {
	value     uint64
	digits    int   // significant digits seen
	kept      int   // significant digits in value
	point     int   // significant digits before the point
	leading   int64 // zeros between the point and the first significant digit
	truncated bool
	any       bool
}

func (m *mantissa) add(v uint64, fraction bool) {
	m.any = true

	if v == 0 && m.digits == 0 {
		if fraction {
			m.leading++
		}

		return
	}

	m.digits++
	if !fraction {
		m.point++
	}

	if m.kept < maxMantissaDigits {
		m.value = m.value<<4 | v
		m.kept++
	} else if v != 0 {
		m.truncated = true
	}
}

// exponent returns the binary exponent of the last kept digit given the
// literal's exponent.
func (m *mantissa) exponent(exp int64) int64 {
	// Digits kept after the point, including leading fraction zeros.
	scale := 4 * (int64(m.point) - int64(m.kept))
	scale = lexer.AddExponent(scale, -4*m.leading)

	return lexer.AddExponent(exp, scale)
}

// Scan scans a hexadecimal literal at the start of data.
func Scan(data []byte, opts Options) (lit Literal, err error) {
	if len(data) == 0 {
		return lit, lexer.GrammarError.New("empty input")
	}

	negative, pos := lexer.ScanSign(data)
	lit.Negative = negative

	if special, n := lexer.ScanSpecial(data[pos:]); special != lexer.None {
		lit.Special = special
		pos += n

		lit.Consumed, err = finish(data, pos, opts)

		return lit, err
	}

	if pos+1 >= len(data) || data[pos] != '0' || (data[pos+1] != 'x' && data[pos+1] != 'X') {
		return lit, lexer.GrammarError.New("missing hex prefix at offset %d", pos)
	}
	pos += 2

	m := &mantissa{}

	pos = digits(data, pos, m, false, opts.Underscores)
	if pos < len(data) && data[pos] == '.' {
		pos = digits(data, pos+1, m, true, opts.Underscores)
	}

	if !m.any {
		return lit, lexer.GrammarError.New("no hex digits at offset %d", pos)
	}

	if pos >= len(data) || (data[pos] != 'p' && data[pos] != 'P') {
		return lit, lexer.GrammarError.New("missing binary exponent at offset %d", pos)
	}

	exp, n, ok := lexer.ScanExponent(data[pos+1:], opts.Underscores)
	if !ok {
		return lit, lexer.GrammarError.New("dangling exponent marker at offset %d", pos)
	}
	pos += 1 + n

	lit.Mantissa = m.value
	lit.Exponent = m.exponent(exp)
	lit.Truncated = m.truncated

	lit.Consumed, err = finish(data, pos, opts)

	return lit, err
}

// digits scans a run of hex digits starting at pos and returns the position
// after it.
func digits(data []byte, pos int, m *mantissa, fraction, underscores bool) int {
	start := pos

	for pos < len(data) {
		c := data[pos]

		if c == '_' && underscores &&
			pos > start && lexer.IsHexDigit(data[pos-1]) &&
			pos+1 < len(data) && lexer.IsHexDigit(data[pos+1]) {

			pos++

			continue
		}

		if !lexer.IsHexDigit(c) {
			break
		}

		m.add(lexer.HexValue(c), fraction)
		pos++
	}

	return pos
}

func finish(data []byte, pos int, opts Options) (int, error) {
	if !opts.Partial && pos != len(data) {
		return pos, lexer.TrailingDataError.New(
			"%d bytes after literal at offset %d: %q",
			len(data)-pos,
			pos,
			data[pos:],
		)
	}

	return pos, nil
}

// Parse parses a hexadecimal literal at the start of data and rounds it to
// the format. It returns the sign separately from the biased value.
func Parse(data []byte, opts Options, f *ieee.Format) (negative bool, v ieee.Float, consumed int, err error) {
	lit, err := Scan(data, opts)
	if err != nil {
		return false, v, 0, err
	}

	return lit.Negative, Convert(lit, f), lit.Consumed, nil
}

// Convert rounds the magnitude of a scanned literal to the format.
func Convert(lit Literal, f *ieee.Format) ieee.Float {
	switch lit.Special {
	case lexer.Infinity:
		return f.Infinity()
	case lexer.NaN:
		return f.NaN()
	}

	if lit.Mantissa == 0 {
		return ieee.Zero
	}

	// The mantissa has at most 64 bits, so exponents beyond these bounds
	// are infinite or zero in any format. Clamping keeps the exponent in
	// int range.
	exp := lit.Exponent
	switch {
	case exp > 1<<16:
		return f.Infinity()
	case exp < -(1 << 16):
		return ieee.Zero
	}

	return f.Round(lit.Mantissa, int(exp), lit.Truncated)
}
