// Package fastpath converts decimal numbers to binary floating point with
// fixed width arithmetic when the result can be proven correctly rounded.
//
// Two methods are tried in order:
//
//  1. Exact float arithmetic: a significand that is an exact float scaled by
//     an exact power of ten needs a single correctly rounded multiplication
//     or division.
//  2. Eisel-Lemire: the significand is multiplied by a 128-bit
//     approximation of the power of ten. The approximation error is bounded
//     so when the product is not too close to a rounding boundary the
//     leading bits are the correctly rounded result.
//
// When neither method can decide, the Decision is inconclusive and the
// caller must use an exact method.
package fastpath

//go:generate go run gen_table.go

import (
	"math"
	"math/bits"

	"github.com/calebcase/atof/decimal"
	"github.com/calebcase/atof/ieee"
)

// MaxDigits is the number of leading digits the fast path reads.
const MaxDigits = 19

// Decision is the outcome of a fast conversion. When Exact is false the
// conversion was inconclusive and Float is meaningless.
type Decision struct {
	Float ieee.Float
	Exact bool
}

func exact(v ieee.Float) Decision {
	return Decision{
		Float: v,
		Exact: true,
	}
}

// Inconclusive is the decision of a declined conversion.
var Inconclusive = Decision{}

// Convert converts the magnitude of n.
func Convert(n decimal.Number, f *ieee.Format) Decision {
	if n.IsZero() {
		return exact(ieee.Zero)
	}

	w, q, truncated := n.Prefix(MaxDigits)

	if !truncated {
		v, ok := Exact(w, q, f)
		if ok {
			return exact(v)
		}

		return EiselLemire(w, q, f)
	}

	// The number lies strictly between w*10^q and (w+1)*10^q. Rounding is
	// monotonic, so if both bounds round to the same value so does the
	// number.
	lower := EiselLemire(w, q, f)
	if !lower.Exact {
		return Inconclusive
	}

	upper := EiselLemire(w+1, q, f)
	if !upper.Exact || upper.Float != lower.Float {
		return Inconclusive
	}

	return lower
}

// Exact powers of ten.
var (
	float64pow10 = [...]float64{
		1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
		1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
		1e20, 1e21, 1e22,
	}
	float32pow10 = [...]float32{
		1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	}
	uint64pow10 = [...]uint64{
		1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
		1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
	}
)

// Exact computes w*10^q with a single float operation when w and 10^|q| are
// both exact in the format. Exponents above the exact range are accepted
// when the excess can be moved into the significand.
func Exact(w uint64, q int64, f *ieee.Format) (v ieee.Float, ok bool) {
	if w > f.MaxMantissaFastPath {
		return v, false
	}

	if q < int64(f.MinExponentFastPath) {
		return v, false
	}

	if q > int64(f.MaxExponentFastPath) {
		// Significand digits available beyond the exact power of ten.
		k := q - int64(f.MaxExponentFastPath)
		if k >= int64(len(uint64pow10)) {
			return v, false
		}

		hi, lo := bits.Mul64(w, uint64pow10[k])
		if hi != 0 || lo > f.MaxMantissaFastPath {
			return v, false
		}

		w = lo
		q = int64(f.MaxExponentFastPath)
	}

	if f.MantissaBits == ieee.Float32.MantissaBits {
		x := float32(w)
		if q < 0 {
			x /= float32pow10[-q]
		} else {
			x *= float32pow10[q]
		}

		_, v = f.Split(uint64(math.Float32bits(x)))

		return v, true
	}

	x := float64(w)
	if q < 0 {
		x /= float64pow10[-q]
	} else {
		x *= float64pow10[q]
	}

	_, v = f.Split(math.Float64bits(x))

	return v, true
}

// EiselLemire computes the value nearest to w*10^q. The decision is
// inconclusive when the product is too close to a rounding boundary for the
// 128-bit approximation of 10^q to decide.
func EiselLemire(w uint64, q int64, f *ieee.Format) Decision {
	if w == 0 || q < int64(f.SmallestPowerOfTen) {
		return exact(ieee.Zero)
	}

	if q > int64(f.LargestPowerOfTen) {
		return exact(f.Infinity())
	}

	e := int(q)

	lz := bits.LeadingZeros64(w)
	w <<= uint(lz)

	lo, hi := productApprox(e, w, f.MantissaBits+3)

	// The low bits are all ones: the truncated product may be just below a
	// boundary that the exact product reaches. Within this exponent range
	// products are exact enough that this cannot happen.
	if lo == math.MaxUint64 && (e < -27 || e > 55) {
		return Inconclusive
	}

	upper := int(hi >> 63)
	shift := uint(upper + 64 - int(f.MantissaBits) - 3)
	mantissa := hi >> shift
	exp := power(e) + upper - lz - f.MinExponent

	if exp <= 0 {
		// Subnormal.
		if -exp+1 >= 64 {
			return exact(ieee.Zero)
		}

		mantissa >>= uint(-exp + 1)
		mantissa += mantissa & 1
		mantissa >>= 1

		exp = 0
		if mantissa >= 1<<f.MantissaBits {
			exp = 1
		}

		return exact(ieee.Float{
			Mantissa: mantissa & (1<<f.MantissaBits - 1),
			Exp:      exp,
		})
	}

	// Exactly halfway between two values: round to even instead of up.
	// Only products in this exponent range can be exact.
	if lo <= 1 &&
		e >= f.MinExponentRoundToEven && e <= f.MaxExponentRoundToEven &&
		mantissa&3 == 1 &&
		mantissa<<shift == hi {

		mantissa &^= 1
	}

	mantissa += mantissa & 1
	mantissa >>= 1

	if mantissa >= 2<<f.MantissaBits {
		mantissa = 1 << f.MantissaBits
		exp++
	}

	mantissa &^= 1 << f.MantissaBits

	if exp >= f.InfiniteExp {
		return exact(f.Infinity())
	}

	return exact(ieee.Float{
		Mantissa: mantissa,
		Exp:      exp,
	})
}

// power returns floor(q * log2(10)) + 63.
func power(q int) int {
	return (((152170 + 65536) * q) >> 16) + 63
}

// productApprox returns the 128-bit product of w and the approximation of
// 5^q, computing the lower half only when the upper bits within precision
// could be affected by it.
func productApprox(q int, w uint64, precision uint) (lo, hi uint64) {
	mask := uint64(math.MaxUint64)
	if precision < 64 {
		mask >>= precision
	}

	p := &powersOfFive[q-smallestPowerOfFive]

	hi, lo = bits.Mul64(w, p[0])
	if hi&mask == mask {
		secondHi, _ := bits.Mul64(w, p[1])

		lo += secondHi
		if secondHi > lo {
			hi++
		}
	}

	return lo, hi
}
