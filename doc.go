// Package atof converts decimal and hexadecimal floating point literals to
// the nearest binary32 or binary64 value.
//
// The result is always the one exact conversion followed by rounding to
// nearest, ties to even, would produce. This holds for inputs of any length
// and exponents of any size: values beyond the largest finite number become
// infinity and values below half the smallest subnormal become zero. The sign
// of zero and infinity is kept.
//
// Decimal Conversion
//
// A decimal literal is scanned (package lexer) and normalized into a
// significand and a power of ten (package decimal). A fast conversion with
// fixed width arithmetic is tried first (package fastpath). It either decides
// the result or declines, in which case the exact conversion on arbitrary
// precision integers decides it (package fallback).
//
//  literal -> lexer.Literal -> decimal.Number -> fastpath ---> ieee.Float
//                                                   |             ^
//                                                   +-> fallback -+
//
// Hexadecimal Conversion
//
// Hexadecimal literals ("0x1.8p3") map directly to binary and only need
// rounding to the width of the format (package hexfloat).
//
// Partial Parsing
//
// Every parse function takes a partial flag. When it is false the literal
// must span the whole input, otherwise TrailingDataError is returned. When it
// is true the longest valid literal at the start of the input is converted
// and the number of bytes it spans is returned.
//
// Overflow and underflow are not errors. The only errors are GrammarError for
// input that is not a literal and TrailingDataError.
package atof
