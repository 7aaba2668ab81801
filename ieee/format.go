// Package ieee assembles IEEE-754 binary32 and binary64 values.
//
// A value is carried between the converters and the assembler in biased form:
//
//  value = 1.mantissa * 2^(exp - bias)   (0 < exp < InfiniteExp)
//  value = 0.mantissa * 2^(1 - bias)     (exp == 0)
//
// Where mantissa holds only the explicitly stored bits. An exponent of
// InfiniteExp with a zero mantissa is infinity.
package ieee

import (
	"math"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("ieee")

// Format describes a binary floating point format and the decimal exponent
// ranges the converters rely on for it.
type Format struct {
	Name string

	MantissaBits uint
	ExponentBits uint
	Bias         int
	InfiniteExp  int

	// MinExponent is the binary exponent of the smallest normal value
	// minus one, in the convention of the 128-bit product.
	MinExponent int

	// Decimal exponents outside of [SmallestPowerOfTen, LargestPowerOfTen]
	// always produce zero or infinity for a 19 digit significand.
	SmallestPowerOfTen int
	LargestPowerOfTen  int

	// Products can only be exactly halfway between two values for
	// decimal exponents in this range.
	MinExponentRoundToEven int
	MaxExponentRoundToEven int

	// Exact float arithmetic applies to significands up to
	// MaxMantissaFastPath scaled by 10^e with e in this range.
	MinExponentFastPath int
	MaxExponentFastPath int
	MaxMantissaFastPath uint64
}

// Float64 is the binary64 format.
var Float64 = &Format{
	Name: "binary64",

	MantissaBits: 52,
	ExponentBits: 11,
	Bias:         1023,
	InfiniteExp:  0x7FF,

	MinExponent: -1023,

	SmallestPowerOfTen: -342,
	LargestPowerOfTen:  308,

	MinExponentRoundToEven: -4,
	MaxExponentRoundToEven: 23,

	MinExponentFastPath: -22,
	MaxExponentFastPath: 22,
	MaxMantissaFastPath: 2 << 52,
}

// Float32 is the binary32 format.
var Float32 = &Format{
	Name: "binary32",

	MantissaBits: 23,
	ExponentBits: 8,
	Bias:         127,
	InfiniteExp:  0xFF,

	MinExponent: -127,

	SmallestPowerOfTen: -65,
	LargestPowerOfTen:  38,

	MinExponentRoundToEven: -17,
	MaxExponentRoundToEven: 10,

	MinExponentFastPath: -10,
	MaxExponentFastPath: 10,
	MaxMantissaFastPath: 2 << 23,
}

// ByBits returns the format for a bit size of 32 or 64.
func ByBits(bits int) (*Format, error) {
	switch bits {
	case 32:
		return Float32, nil
	case 64:
		return Float64, nil
	}

	return nil, Error.New("unsupported bit size: %d", bits)
}

// Float is a value in biased form. See the package documentation.
type Float struct {
	Mantissa uint64
	Exp      int
}

// Zero is positive or negative zero depending on the sign it is assembled
// with.
var Zero = Float{}

// Infinity returns the biased form of infinity.
func (f *Format) Infinity() Float {
	return Float{Exp: f.InfiniteExp}
}

// NaN returns the biased form of the quiet NaN.
func (f *Format) NaN() Float {
	return Float{
		Mantissa: 1 << (f.MantissaBits - 1),
		Exp:      f.InfiniteExp,
	}
}

// IsInf returns true if v is an infinity in this format.
func (f *Format) IsInf(v Float) bool {
	return v.Exp == f.InfiniteExp && v.Mantissa == 0
}

// Assemble returns the bit pattern of v with the given sign.
func (f *Format) Assemble(negative bool, v Float) uint64 {
	bits := v.Mantissa & (1<<f.MantissaBits - 1)
	bits |= uint64(v.Exp&(1<<f.ExponentBits-1)) << f.MantissaBits
	if negative {
		bits |= 1 << f.MantissaBits << f.ExponentBits
	}

	return bits
}

// Split is the inverse of Assemble.
func (f *Format) Split(bits uint64) (negative bool, v Float) {
	negative = bits>>f.MantissaBits>>f.ExponentBits&1 == 1
	v.Mantissa = bits & (1<<f.MantissaBits - 1)
	v.Exp = int(bits >> f.MantissaBits & (1<<f.ExponentBits - 1))

	return negative, v
}

// Float64 returns v with the given sign as a float64. The format must be
// Float64.
func (f *Format) Float64(negative bool, v Float) float64 {
	return math.Float64frombits(f.Assemble(negative, v))
}

// Float32 returns v with the given sign as a float32. The format must be
// Float32.
func (f *Format) Float32(negative bool, v Float) float32 {
	return math.Float32frombits(uint32(f.Assemble(negative, v)))
}

// Value returns v with the given sign as a float64 holding the exact value
// of the format's number (float32 values convert exactly).
func (f *Format) Value(negative bool, v Float) float64 {
	if f.MantissaBits == Float32.MantissaBits {
		return float64(f.Float32(negative, v))
	}

	return f.Float64(negative, v)
}
