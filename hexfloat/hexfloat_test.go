package hexfloat

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/errs"

	"github.com/calebcase/atof/ieee"
	"github.com/calebcase/atof/lexer"
)

func TestScan(t *testing.T) {
	mark := oops.New("unexpected")

	type TC struct {
		input    string
		opts     Options
		expected Literal
		err      *errs.Class
	}

	tcs := []TC{
		{
			input:    "0x1p0",
			expected: Literal{Mantissa: 1, Consumed: 5},
		},
		{
			input:    "-0X1.8P+1",
			expected: Literal{Negative: true, Mantissa: 0x18, Exponent: -3, Consumed: 9},
		},
		{
			input:    "0x.008p-2",
			expected: Literal{Mantissa: 0x8, Exponent: -14, Consumed: 9},
		},
		{
			input:    "0x00ff.f0p4",
			expected: Literal{Mantissa: 0xfff0, Exponent: -4, Consumed: 11},
		},
		{
			input:    "0x1.00000000000000001p0",
			expected: Literal{Mantissa: 0x1000000000000000, Exponent: -60, Truncated: true, Consumed: 23},
		},
		{
			input:    "0x10000000000000000000p0",
			expected: Literal{Mantissa: 0x1000000000000000, Exponent: 16, Consumed: 24},
		},
		{
			input:    "0x1.p1",
			expected: Literal{Mantissa: 1, Exponent: 1, Consumed: 6},
		},
		{
			input:    "0x1_0p1_0",
			opts:     Options{Underscores: true},
			expected: Literal{Mantissa: 0x10, Exponent: 10, Consumed: 9},
		},
		{
			input:    "-Infinity",
			expected: Literal{Negative: true, Special: lexer.Infinity, Consumed: 9},
		},
		{
			input:    "nan",
			expected: Literal{Special: lexer.NaN, Consumed: 3},
		},
		{
			input:    "0x1p4zz",
			opts:     Options{Partial: true},
			expected: Literal{Mantissa: 1, Exponent: 4, Consumed: 5},
		},
		{
			input: "0x1p4zz",
			err:   &lexer.TrailingDataError,
		},
		{
			input: "0x1_0p1",
			err:   &lexer.GrammarError,
		},
		{
			input: "0x1__0p1",
			opts:  Options{Underscores: true},
			err:   &lexer.GrammarError,
		},
		{
			input: "0x_1p1",
			opts:  Options{Underscores: true},
			err:   &lexer.GrammarError,
		},
		{
			input: "0x1.8",
			err:   &lexer.GrammarError,
		},
		{
			input: "0x1p",
			err:   &lexer.GrammarError,
		},
		{
			input: "0x1p-",
			opts:  Options{Partial: true},
			err:   &lexer.GrammarError,
		},
		{
			input: "0xp1",
			err:   &lexer.GrammarError,
		},
		{
			input: "0x.p1",
			err:   &lexer.GrammarError,
		},
		{
			input: "1p1",
			err:   &lexer.GrammarError,
		},
		{
			input: "",
			err:   &lexer.GrammarError,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.input), func(t *testing.T) {
			lit, err := Scan([]byte(tc.input), tc.opts)

			t.Logf("lit=%s err=%v", spew.Sdump(lit), err)

			if tc.err != nil {
				require.Error(t, err, mark)
				require.True(t, tc.err.Has(err), mark)

				return
			}

			require.NoError(t, err, mark)
			require.Equal(t, tc.expected, lit, mark)
		})
	}
}

func TestParse(t *testing.T) {
	mark := oops.New("unexpected")

	type TC struct {
		input    string
		format   *ieee.Format
		expected float64
		negative bool
	}

	tcs := []TC{
		{input: "0x1p0", expected: 1},
		{input: "0x1.921fb54442d18p+1", expected: math.Pi},
		{input: "-0x1p-1", expected: -0.5, negative: true},
		{input: "0x1.fffffffffffffp1023", expected: math.MaxFloat64},
		{input: "0x1.fffffffffffff8p1023", expected: math.Inf(1)},
		{input: "0x1p1024", expected: math.Inf(1)},
		{input: "0x1p-1074", expected: 5e-324},
		{input: "0x1p-1075", expected: 0},
		{input: "0x1.0000000000001p-1075", expected: 5e-324},
		{input: "0x3p-1076", expected: 5e-324},
		{input: "0x1.00000000000008p0", expected: 1},
		{input: "0x1.00000000000018p0", expected: 1 + 0x1p-51},
		{input: "0x1.000000000000080000001p0", expected: 1 + 0x1p-52},
		{input: "0x1p99999999999999999999", expected: math.Inf(1)},
		{input: "0x1p-99999999999999999999", expected: 0},
		{input: "-0x0p0", expected: math.Copysign(0, -1), negative: true},
		{input: "-inf", expected: math.Inf(-1), negative: true},
		{input: "0x1.fffffep127", format: ieee.Float32, expected: math.MaxFloat32},
		{input: "0x1.ffffffp127", format: ieee.Float32, expected: math.Inf(1)},
		{input: "0x1p-149", format: ieee.Float32, expected: 0x1p-149},
		{input: "0x1p-150", format: ieee.Float32, expected: 0},
		{input: "0x1.000001p0", format: ieee.Float32, expected: 1},
		{input: "0x1.000003p0", format: ieee.Float32, expected: 1 + 0x1p-22},
	}

	for i, tc := range tcs {
		if tc.format == nil {
			tc.format = ieee.Float64
		}

		t.Run(fmt.Sprintf("[%d]%s", i, tc.input), func(t *testing.T) {
			negative, v, consumed, err := Parse([]byte(tc.input), Options{}, tc.format)
			require.NoError(t, err, mark)
			require.Equal(t, len(tc.input), consumed, mark)
			require.Equal(t, tc.negative, negative, mark)

			actual := tc.format.Value(negative, v)

			t.Logf("v=%+v actual=%v", v, actual)

			require.Equal(t, math.Float64bits(tc.expected), math.Float64bits(actual), mark)
		})
	}

	t.Run("nan", func(t *testing.T) {
		negative, v, _, err := Parse([]byte("-NaN"), Options{}, ieee.Float64)
		require.NoError(t, err)
		require.True(t, negative)
		require.True(t, math.IsNaN(ieee.Float64.Value(negative, v)))
	})
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(3))

	for i := 0; i < 10000; i++ {
		f := math.Float64frombits(r.Uint64())
		if math.IsNaN(f) {
			continue
		}

		s := strconv.FormatFloat(f, 'x', -1, 64)

		negative, v, _, err := Parse([]byte(s), Options{}, ieee.Float64)
		require.NoError(t, err, s)
		require.Equal(t, math.Float64bits(f), ieee.Float64.Assemble(negative, v), s)
	}

	for i := 0; i < 10000; i++ {
		f := math.Float32frombits(r.Uint32())
		if math.IsNaN(float64(f)) {
			continue
		}

		s := strconv.FormatFloat(float64(f), 'x', -1, 32)

		negative, v, _, err := Parse([]byte(s), Options{}, ieee.Float32)
		require.NoError(t, err, s)
		require.Equal(t, uint64(math.Float32bits(f)), ieee.Float32.Assemble(negative, v), s)
	}
}
