package lexer

// Special is the special value a keyword denotes.
type Special uint8

// Special values.
const (
	None Special = iota
	Infinity
	NaN
)

// String returns the name of the special value.
func (s Special) String() string {
	switch s {
	case Infinity:
		return "inf"
	case NaN:
		return "nan"
	}

	return "none"
}

// Keyword is a case insensitive special value keyword.
type Keyword struct {
	Text    string
	Special Special
}

// Match returns true if data starts with the keyword, ignoring ASCII case.
func (k Keyword) Match(data []byte) bool {
	if len(data) < len(k.Text) {
		return false
	}

	for i := 0; i < len(k.Text); i++ {
		if lower(data[i]) != k.Text[i] {
			return false
		}
	}

	return true
}

type keywords []Keyword

// Match returns the first keyword that prefixes data. Keywords are ordered
// longest first so the first match is the longest.
func (ks keywords) Match(data []byte) (k Keyword, ok bool) {
	for _, k := range ks {
		if k.Match(data) {
			return k, true
		}
	}

	return k, false
}

// Keywords accepted in place of digits.
var Keywords = keywords{
	{"infinity", Infinity},
	{"inf", Infinity},
	{"nan", NaN},
}

// ScanSpecial matches a keyword at the start of data and returns the special
// value and the number of bytes it spans.
func ScanSpecial(data []byte) (s Special, n int) {
	k, ok := Keywords.Match(data)
	if !ok {
		return None, 0
	}

	return k.Special, len(k.Text)
}

func lower(c byte) byte {
	return c | ('x' - 'X')
}
