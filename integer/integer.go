// Package integer provides the unsigned arbitrary precision integer used by
// the exact decimal to binary conversion.
//
// Only the operations the conversion needs are provided: multiplication by
// small constants and powers of five and ten, shifts, subtraction of a
// smaller value and comparison.
package integer

import (
	"math/bits"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

// Nat is an unsigned integer x of the form
//
//  x = x[n-1]*2^(64*(n-1)) + ... + x[1]*2^64 + x[0]
//
// A Nat is normalized if the slice contains no leading (most significant)
// zero words. All operations leave their receiver normalized. The
// normalized representation of 0 is the empty slice.
type Nat []uint64

// Powers of five and ten that fit in a word.
const (
	maxPow5  = 27
	maxPow10 = 19
)

var pow5tab = [maxPow5 + 1]uint64{}
var pow10tab = [maxPow10 + 1]uint64{}

func init() {
	pow5tab[0] = 1
	for i := 1; i < len(pow5tab); i++ {
		pow5tab[i] = pow5tab[i-1] * 5
	}

	pow10tab[0] = 1
	for i := 1; i < len(pow10tab); i++ {
		pow10tab[i] = pow10tab[i-1] * 10
	}
}

func (z Nat) norm() Nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}

	return z[:i]
}

// SetUint64 sets z to v.
func (z Nat) SetUint64(v uint64) Nat {
	z = z[:0]
	if v == 0 {
		return z
	}

	return append(z, v)
}

// SetDigits sets z to the integer formed by the decimal digit values in
// digits (most significant first). Digit values must be in 0..9.
func (z Nat) SetDigits(digits []byte) (Nat, error) {
	z = z[:0]

	for len(digits) > 0 {
		n := len(digits)
		if n > maxPow10 {
			n = maxPow10
		}

		var chunk uint64
		for _, d := range digits[:n] {
			if d > 9 {
				return nil, Error.New("invalid digit value: %d", d)
			}

			chunk = chunk*10 + uint64(d)
		}

		z = z.mulAdd(pow10tab[n], chunk)
		digits = digits[n:]
	}

	return z, nil
}

// mulAdd sets z to z*m + a.
func (z Nat) mulAdd(m, a uint64) Nat {
	carry := a
	for i, w := range z {
		hi, lo := bits.Mul64(w, m)

		var c uint64
		lo, c = bits.Add64(lo, carry, 0)
		z[i] = lo
		carry = hi + c
	}

	if carry != 0 {
		z = append(z, carry)
	}

	return z.norm()
}

// MulSmall sets z to z*m.
func (z Nat) MulSmall(m uint64) Nat {
	return z.mulAdd(m, 0)
}

// MulPow5 sets z to z*5^n.
func (z Nat) MulPow5(n uint) Nat {
	for n > maxPow5 {
		z = z.MulSmall(pow5tab[maxPow5])
		n -= maxPow5
	}

	return z.MulSmall(pow5tab[n])
}

// MulPow10 sets z to z*10^n.
func (z Nat) MulPow10(n uint) Nat {
	for n > maxPow10 {
		z = z.MulSmall(pow10tab[maxPow10])
		n -= maxPow10
	}

	return z.MulSmall(pow10tab[n])
}

// Shl sets z to z<<s.
func (z Nat) Shl(s uint) Nat {
	if len(z) == 0 {
		return z
	}

	words, s := int(s/64), s%64

	n := len(z) + words
	if s != 0 {
		n++
	}

	if cap(z) >= n {
		z = z[:n]
	} else {
		grown := make(Nat, n)
		copy(grown, z)
		z = grown
	}

	old := len(z) - words
	if s != 0 {
		old--
	}

	if s == 0 {
		copy(z[words:], z[:old])
	} else {
		z[old+words] = z[old-1] >> (64 - s)
		for i := old - 1; i > 0; i-- {
			z[i+words] = z[i]<<s | z[i-1]>>(64-s)
		}
		z[words] = z[0] << s
	}

	for i := 0; i < words; i++ {
		z[i] = 0
	}

	return z.norm()
}

// Shr sets z to z>>s.
func (z Nat) Shr(s uint) Nat {
	words, s := int(s/64), s%64
	if words >= len(z) {
		return z[:0]
	}

	n := len(z) - words
	if s == 0 {
		copy(z, z[words:])
	} else {
		for i := 0; i < n-1; i++ {
			z[i] = z[i+words]>>s | z[i+words+1]<<(64-s)
		}
		z[n-1] = z[len(z)-1] >> s
	}

	return z[:n].norm()
}

// Sub sets z to z-x. It returns an error if x is greater than z.
func (z Nat) Sub(x Nat) (Nat, error) {
	if z.Cmp(x) < 0 {
		return z, Error.New("negative difference")
	}

	var borrow uint64
	for i := range z {
		var w uint64
		if i < len(x) {
			w = x[i]
		}

		z[i], borrow = bits.Sub64(z[i], w, borrow)
	}

	return z.norm(), nil
}

// Cmp compares z and x and returns -1, 0 or +1.
func (z Nat) Cmp(x Nat) int {
	z, x = z.norm(), x.norm()

	switch {
	case len(z) < len(x):
		return -1
	case len(z) > len(x):
		return 1
	}

	for i := len(z) - 1; i >= 0; i-- {
		switch {
		case z[i] < x[i]:
			return -1
		case z[i] > x[i]:
			return 1
		}
	}

	return 0
}

// IsZero returns true if z is zero.
func (z Nat) IsZero() bool {
	return len(z.norm()) == 0
}

// BitLen returns the length of z in bits. The bit length of 0 is 0.
func (z Nat) BitLen() int {
	z = z.norm()
	if len(z) == 0 {
		return 0
	}

	return (len(z)-1)*64 + bits.Len64(z[len(z)-1])
}

// Hi64 returns the 64 most significant bits of z with the leading bit in
// bit 63 and whether any of the remaining bits are set. Hi64 of 0 is 0.
func (z Nat) Hi64() (hi uint64, truncated bool) {
	z = z.norm()

	switch len(z) {
	case 0:
		return 0, false
	case 1:
		return z[0] << uint(bits.LeadingZeros64(z[0])), false
	}

	top := z[len(z)-1]
	next := z[len(z)-2]

	lz := uint(bits.LeadingZeros64(top))
	hi = top << lz
	if lz != 0 {
		hi |= next >> (64 - lz)
	}

	truncated = next<<lz != 0
	for _, w := range z[:len(z)-2] {
		if w != 0 {
			truncated = true
			break
		}
	}

	return hi, truncated
}

// Uint64 returns z as a uint64 and whether it fits.
func (z Nat) Uint64() (v uint64, ok bool) {
	z = z.norm()

	switch len(z) {
	case 0:
		return 0, true
	case 1:
		return z[0], true
	}

	return 0, false
}

// Copy returns a copy of z with room for extra words.
func (z Nat) Copy(extra int) Nat {
	c := make(Nat, len(z), len(z)+extra)
	copy(c, z)

	return c
}
