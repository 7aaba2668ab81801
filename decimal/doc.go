// Package decimal provides the normalized decimal form of a scanned literal.
//
// The equation for a decimal number is:
//
//  number = (-1)^negative * digits * 10^exponent
//
// Where digits is the integer formed by the significant digits (most
// significant first) and exponent is the base 10 exponent. For example:
//
//  1.23    = 123 * 10^-2
//  0.00120 = 12 * 10^-4
//  1.2e5   = 12 * 10^4
//
// Leading and trailing zeros are never stored, so a number has exactly one
// representation and zero has no digits at all (whatever its exponent).
//
// Retention
//
// At most MaxDigits significant digits are kept. A binary64 value (and
// likewise binary32) is decided by at most 767 significant decimal digits:
// the halfway points between adjacent values have no more digits than that.
// Any further digits can only tell whether the true value lies above the
// retained prefix, which is recorded in the Truncated flag and treated as a
// sticky bit by the converters.
//
// Exponent arithmetic saturates at ±lexer.MaxExponent.
package decimal
