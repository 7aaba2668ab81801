package atof

import (
	"github.com/calebcase/atof/hexfloat"
	"github.com/calebcase/atof/ieee"
)

// Schema represents a configured literal format.
type Schema struct {
	// Bits is the width of the result: 32 or 64. Zero means 64.
	Bits int

	// Hex selects hexadecimal literals. Auto selects them when the input
	// has a hex prefix.
	Hex  bool
	Auto bool

	Partial bool

	// Underscores allows digit separators in hexadecimal literals.
	Underscores bool
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema) *Decoder {
	return &Decoder{
		schema: schema,
	}
}

// Decode converts the literal at the start of data. A binary32 result is
// returned widened to float64, which is exact.
func (d *Decoder) Decode(data []byte) (v float64, n int, err error) {
	defer Error.WrapP(&err)

	bits := d.schema.Bits
	if bits == 0 {
		bits = 64
	}

	f, err := ieee.ByBits(bits)
	if err != nil {
		return 0, 0, err
	}

	hex := d.schema.Hex || (d.schema.Auto && IsHex(data))

	if !hex {
		negative, x, n, err := parseDecimal(data, d.schema.Partial, f)
		if err != nil {
			return 0, 0, err
		}

		return f.Value(negative, x), n, nil
	}

	opts := hexfloat.Options{
		Partial:     d.schema.Partial,
		Underscores: d.schema.Underscores,
	}

	negative, x, n, err := hexfloat.Parse(data, opts, f)
	if err != nil {
		return 0, 0, err
	}

	return f.Value(negative, x), n, nil
}
