//go:build ignore
// +build ignore

// gen_table writes table.go, the 128-bit powers of five used by the
// Eisel-Lemire conversion.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"math/big"
	"os"
)

const (
	smallest = -342
	largest  = 308
)

func main() {
	one := big.NewInt(1)
	five := big.NewInt(5)
	limit := new(big.Int).Lsh(one, 128)
	low := new(big.Int).Lsh(one, 127)
	mask := new(big.Int).Sub(new(big.Int).Lsh(one, 64), one)

	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "// Code generated by gen_table.go; DO NOT EDIT.\n\n")
	fmt.Fprintf(buf, "package fastpath\n\n")
	fmt.Fprintf(buf, "const (\n\tsmallestPowerOfFive = %d\n\tlargestPowerOfFive = %d\n)\n\n", smallest, largest)
	fmt.Fprintf(buf, "// powersOfFive holds 128-bit approximations of 5^q for q in\n")
	fmt.Fprintf(buf, "// [smallestPowerOfFive, largestPowerOfFive] as {high, low} words. Each\n")
	fmt.Fprintf(buf, "// entry is normalized so bit 127 is set; negative powers are rounded up\n")
	fmt.Fprintf(buf, "// reciprocals, positive powers are truncated.\n")
	fmt.Fprintf(buf, "var powersOfFive = [largestPowerOfFive - smallestPowerOfFive + 1][2]uint64{\n")

	for q := smallest; q <= largest; q++ {
		c := new(big.Int)

		if q < 0 {
			p := new(big.Int).Exp(five, big.NewInt(int64(-q)), nil)

			z := p.BitLen()
			if new(big.Int).Lsh(one, uint(z-1)).Cmp(p) == 0 {
				z--
			}

			b := uint(z + 127)
			if q < -27 {
				b = uint(2*z + 2*64)
			}

			c.Lsh(one, b)
			c.Quo(c, p)
			c.Add(c, one)

			for c.Cmp(limit) >= 0 {
				c.Rsh(c, 1)
			}
		} else {
			c.Exp(five, big.NewInt(int64(q)), nil)

			for c.Cmp(low) < 0 {
				c.Lsh(c, 1)
			}
			for c.Cmp(limit) >= 0 {
				c.Rsh(c, 1)
			}
		}

		hi := new(big.Int).Rsh(c, 64)
		lo := new(big.Int).And(c, mask)
		fmt.Fprintf(buf, "\t{0x%016x, 0x%016x}, // 5^%d\n", hi.Uint64(), lo.Uint64(), q)
	}

	fmt.Fprintf(buf, "}\n")

	out, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}

	err = os.WriteFile("table.go", out, 0o644)
	if err != nil {
		log.Fatal(err)
	}
}
