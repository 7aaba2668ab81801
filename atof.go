package atof

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/atof/decimal"
	"github.com/calebcase/atof/fallback"
	"github.com/calebcase/atof/fastpath"
	"github.com/calebcase/atof/hexfloat"
	"github.com/calebcase/atof/ieee"
	"github.com/calebcase/atof/lexer"
)

// Error is the class of configuration errors.
var Error = errs.Class("atof")

// Input errors. Use Has to test for them, e.g. GrammarError.Has(err).
var (
	GrammarError      = &lexer.GrammarError
	TrailingDataError = &lexer.TrailingDataError
)

// ParseFloat64 converts the decimal literal at the start of data to the
// nearest float64. It returns the number of bytes consumed.
func ParseFloat64(data []byte, partial bool) (v float64, n int, err error) {
	negative, f, n, err := parseDecimal(data, partial, ieee.Float64)
	if err != nil {
		return 0, 0, err
	}

	return ieee.Float64.Float64(negative, f), n, nil
}

// ParseFloat32 converts the decimal literal at the start of data to the
// nearest float32. It returns the number of bytes consumed.
func ParseFloat32(data []byte, partial bool) (v float32, n int, err error) {
	negative, f, n, err := parseDecimal(data, partial, ieee.Float32)
	if err != nil {
		return 0, 0, err
	}

	return ieee.Float32.Float32(negative, f), n, nil
}

// ParseHex64 converts the hexadecimal literal at the start of data to the
// nearest float64. It returns the number of bytes consumed.
func ParseHex64(data []byte, partial bool) (v float64, n int, err error) {
	negative, f, n, err := hexfloat.Parse(data, hexfloat.Options{Partial: partial}, ieee.Float64)
	if err != nil {
		return 0, 0, err
	}

	return ieee.Float64.Float64(negative, f), n, nil
}

// ParseHex32 converts the hexadecimal literal at the start of data to the
// nearest float32. It returns the number of bytes consumed.
func ParseHex32(data []byte, partial bool) (v float32, n int, err error) {
	negative, f, n, err := hexfloat.Parse(data, hexfloat.Options{Partial: partial}, ieee.Float32)
	if err != nil {
		return 0, 0, err
	}

	return ieee.Float32.Float32(negative, f), n, nil
}

// Parse64 is ParseHex64 for literals with a hex prefix and ParseFloat64
// otherwise.
func Parse64(data []byte, partial bool) (v float64, n int, err error) {
	if IsHex(data) {
		return ParseHex64(data, partial)
	}

	return ParseFloat64(data, partial)
}

// Parse32 is ParseHex32 for literals with a hex prefix and ParseFloat32
// otherwise.
func Parse32(data []byte, partial bool) (v float32, n int, err error) {
	if IsHex(data) {
		return ParseHex32(data, partial)
	}

	return ParseFloat32(data, partial)
}

// IsHex returns true if data starts with an optionally signed "0x" or "0X".
func IsHex(data []byte) bool {
	_, n := lexer.ScanSign(data)
	data = data[n:]

	return len(data) >= 2 && data[0] == '0' && (data[1] == 'x' || data[1] == 'X')
}

// parseDecimal runs the decimal pipeline for the format.
func parseDecimal(data []byte, partial bool, f *ieee.Format) (negative bool, v ieee.Float, n int, err error) {
	lit, err := lexer.Scan(data, partial)
	if err != nil {
		return false, v, 0, err
	}

	switch lit.Special {
	case lexer.Infinity:
		return lit.Negative, f.Infinity(), lit.Consumed, nil
	case lexer.NaN:
		return lit.Negative, f.NaN(), lit.Consumed, nil
	}

	return lit.Negative, convert(decimal.New(lit), f), lit.Consumed, nil
}

// convert returns the nearest value to the magnitude of num.
func convert(num decimal.Number, f *ieee.Format) ieee.Float {
	d := fastpath.Convert(num, f)
	if d.Exact {
		return d.Float
	}

	return fallback.Convert(num, f)
}
