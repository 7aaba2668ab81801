package decimal

import (
	"strconv"

	"github.com/calebcase/atof/lexer"
)

// MaxDigits is the number of significant digits retained.
const MaxDigits = 768

// Number is a decimal number. See the package documentation.
type Number struct {
	Negative bool

	// Digits holds digit values (0 through 9), most significant first,
	// without leading or trailing zeros.
	Digits []byte

	Exponent int64

	// Truncated is true if nonzero digits beyond Digits were dropped.
	Truncated bool
}

// New builds the number denoted by a scanned literal. Special values are not
// numbers; their literals produce a signed zero.
func New(lit lexer.Literal) Number {
	n := Number{
		Negative: lit.Negative,
	}

	if lit.Special != lexer.None {
		return n
	}

	size := len(lit.Integer) + len(lit.Fraction)
	if size > MaxDigits {
		size = MaxDigits
	}

	digits := make([]byte, 0, size)
	dropped := 0

	add := func(run []byte) {
		for _, c := range run {
			d := c - '0'

			switch {
			case d == 0 && len(digits) == 0:
				// Leading zero.
			case len(digits) < MaxDigits:
				digits = append(digits, d)
			default:
				dropped++
				if d != 0 {
					n.Truncated = true
				}
			}
		}
	}

	add(lit.Integer)
	add(lit.Fraction)

	if len(digits) == 0 {
		return n
	}

	trailing := 0
	for trailing < len(digits) && digits[len(digits)-1-trailing] == 0 {
		trailing++
	}
	digits = digits[:len(digits)-trailing]

	exp := lexer.AddExponent(lit.Exponent, -int64(len(lit.Fraction)))
	exp = lexer.AddExponent(exp, int64(dropped+trailing))

	n.Digits = digits
	n.Exponent = exp

	return n
}

// IsZero returns true if the number is zero.
func (n Number) IsZero() bool {
	return len(n.Digits) == 0
}

// Prefix returns the integer w formed by the leading k digits (k <= 19), the
// exponent that scales it and whether the number has further nonzero
// digits. When truncated is false the number is exactly w * 10^exp;
// otherwise it lies strictly between w * 10^exp and (w+1) * 10^exp.
func (n Number) Prefix(k int) (w uint64, exp int64, truncated bool) {
	if k > 19 {
		k = 19
	}

	if k > len(n.Digits) {
		k = len(n.Digits)
	}

	for _, d := range n.Digits[:k] {
		w = w*10 + uint64(d)
	}

	exp = lexer.AddExponent(n.Exponent, int64(len(n.Digits)-k))

	// Retained digits never end in zero, so any digit after the prefix
	// makes it inexact.
	truncated = n.Truncated || len(n.Digits) > k

	return w, exp, truncated
}

// Magnitude returns the decimal exponent of the leading digit: the number
// lies in [10^m, 10^(m+1)). It is only meaningful for nonzero numbers.
func (n Number) Magnitude() int64 {
	return lexer.AddExponent(n.Exponent, int64(len(n.Digits)-1))
}

// String returns the number in scientific notation for diagnostics. A
// trailing "..." marks a truncated number.
func (n Number) String() string {
	buf := make([]byte, 0, len(n.Digits)+24)

	if n.Negative {
		buf = append(buf, '-')
	}

	if n.IsZero() {
		return string(append(buf, '0'))
	}

	for _, d := range n.Digits {
		buf = append(buf, '0'+d)
	}

	if n.Truncated {
		buf = append(buf, "..."...)
	}

	buf = append(buf, 'e')
	buf = strconv.AppendInt(buf, n.Exponent, 10)

	return string(buf)
}
