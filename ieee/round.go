package ieee

import "math/bits"

// Round returns the format's value nearest to (mantissa + ε) * 2^exp where ε
// is zero when sticky is false and lies strictly between zero and one when it
// is true. Ties are broken towards the even mantissa. Values too large become
// infinity and values below half the smallest subnormal become zero.
//
// A zero mantissa is zero regardless of sticky.
func (f *Format) Round(mantissa uint64, exp int, sticky bool) Float {
	if mantissa == 0 {
		return Zero
	}

	// Move the leading bit to bit 63.
	lz := bits.LeadingZeros64(mantissa)
	mantissa <<= uint(lz)
	exp -= lz

	biased := exp + 63 + f.Bias
	shift := 63 - int(f.MantissaBits)

	subnormal := false
	if biased <= 0 {
		shift += 1 - biased
		biased = 0
		subnormal = true
	}

	var q, half, rem uint64
	switch {
	case shift < 64:
		q = mantissa >> uint(shift)
		half = 1 << uint(shift-1)
		rem = mantissa & (1<<uint(shift) - 1)
	case shift == 64:
		half = 1 << 63
		rem = mantissa
	default:
		return Zero
	}

	if rem > half || rem == half && (sticky || q&1 == 1) {
		q++
	}

	if subnormal {
		// Rounding may carry into the smallest normal.
		if q>>f.MantissaBits != 0 {
			biased = 1
		}
	} else if q == 2<<f.MantissaBits {
		q >>= 1
		biased++
	}

	if biased >= f.InfiniteExp {
		return f.Infinity()
	}

	return Float{
		Mantissa: q & (1<<f.MantissaBits - 1),
		Exp:      biased,
	}
}
