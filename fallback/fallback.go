// Package fallback converts decimal numbers to binary floating point
// exactly, using arbitrary precision integers.
//
// For a number d * 10^e:
//
//  e >= 0: n = d * 10^e is formed exactly and its leading 64 bits are
//          rounded, the remaining bits acting as the sticky bit.
//  e < 0:  d * 10^e = (d / 5^-e) * 2^e. The quotient d / 5^-e is computed
//          to 64 bits by long division, a nonzero remainder acting as the
//          sticky bit.
//
// A truncated number always sets the sticky bit: its retained digits are
// long enough that no rounding boundary lies between them and the true
// value, only the direction of the excess matters.
package fallback

import (
	"github.com/calebcase/atof/decimal"
	"github.com/calebcase/atof/ieee"
	"github.com/calebcase/atof/integer"
)

// quotientBits is the number of bits the long division produces. The
// quotient lies in [2^62, 2^64).
const quotientBits = 64

// Convert converts the magnitude of n.
func Convert(n decimal.Number, f *ieee.Format) ieee.Float {
	if n.IsZero() {
		return ieee.Zero
	}

	// Below the smallest power of ten the fast path table covers the value
	// is less than half the smallest subnormal; above the largest one it
	// exceeds the largest finite value.
	if n.Magnitude() < int64(f.SmallestPowerOfTen)-1 {
		return ieee.Zero
	}

	if n.Magnitude() > int64(f.LargestPowerOfTen) {
		return f.Infinity()
	}

	d, err := integer.Nat(nil).SetDigits(n.Digits)
	if err != nil {
		// Digits of a Number are always digit values.
		panic(err)
	}

	if n.Exponent >= 0 {
		return scaleUp(d, uint(n.Exponent), n.Truncated, f)
	}

	return scaleDown(d, uint(-n.Exponent), n.Truncated, f)
}

// scaleUp rounds d * 10^k.
func scaleUp(d integer.Nat, k uint, truncated bool, f *ieee.Format) ieee.Float {
	d = d.MulPow10(k)

	hi, sticky := d.Hi64()
	exp := d.BitLen() - 64

	return f.Round(hi, exp, sticky || truncated)
}

// scaleDown rounds d / 10^k.
func scaleDown(d integer.Nat, k uint, truncated bool, f *ieee.Format) ieee.Float {
	p := integer.Nat(nil).SetUint64(1).MulPow5(k)

	// Align the operands so that the quotient has quotientBits or
	// quotientBits-1 bits: 2^(a-1) <= num < 2^a and 2^(b-1) <= den < 2^b
	// give num/den in (2^(a-b-1), 2^(a-b+1)).
	shift := quotientBits - 1 - (d.BitLen() - p.BitLen())

	num, den := d, p
	if shift >= 0 {
		num = num.Shl(uint(shift))
	} else {
		den = den.Shl(uint(-shift))
	}

	q, rem := divide(num, den)

	// value = (q + rem/den) * 2^-shift * 2^-k
	return f.Round(q, -shift-int(k), !rem.IsZero() || truncated)
}

// divide returns the quotient and remainder of num / den by restoring long
// division. The quotient must be less than 2^quotientBits. num is consumed.
func divide(num, den integer.Nat) (q uint64, rem integer.Nat) {
	rem = num

	step := den.Copy(1).Shl(quotientBits - 1)
	for i := quotientBits - 1; i >= 0; i-- {
		if rem.Cmp(step) >= 0 {
			var err error
			rem, err = rem.Sub(step)
			if err != nil {
				panic(err)
			}

			q |= 1 << uint(i)
		}

		step = step.Shr(1)
	}

	return q, rem
}
