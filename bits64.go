// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatbits

import "math"

// Layout of an IEEE 754 binary64 value:
//   63  62        51                                                0
//   _____________|___________________________________________________
//   seeeeeeeeeeemmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmm
const (
	// SignificandBits64 is the width of the stored significand field.
	SignificandBits64 = 52
	// PrecisionBits64 counts the hidden bit as well.
	PrecisionBits64 = SignificandBits64 + 1
	// ExponentBits64 is the width of the biased exponent field.
	ExponentBits64 = 11

	// ExponentBias64 converts between stored and actual exponents.
	ExponentBias64 = 1<<(ExponentBits64-1) - 1 // 1023
	// MinExponent64 is the exponent of all subnormal values and zeros.
	MinExponent64 = 1 - ExponentBias64 // -1022
	// NonFiniteExponent64 marks infinities and NaNs.
	NonFiniteExponent64 = ExponentBias64 + 1 // 1024
)

const (
	// HiddenBit64 is the implicit leading significand bit of a normalized value.
	HiddenBit64 uint64 = 1 << SignificandBits64
	// MaxSignificand64 is the largest representable significand, hidden bit included.
	MaxSignificand64 uint64 = 1<<PrecisionBits64 - 1
)

const (
	// MaxExactInt64 and MinExactInt64 bound the contiguous integer range a
	// float64 represents without precision loss.
	MaxExactInt64 int64 = 1 << PrecisionBits64 // 2^53
	MinExactInt64 int64 = -MaxExactInt64

	// MaxExactFloat64 and MinExactFloat64 are the same bounds as float64 values.
	MaxExactFloat64 float64 = 1 << PrecisionBits64
	MinExactFloat64 float64 = -MaxExactFloat64

	// MinInt32Float64 and MaxInt32Float64 are the float64 images of the
	// int32 bounds. Both are exactly representable.
	MinInt32Float64 float64 = math.MinInt32
	MaxInt32Float64 float64 = math.MaxInt32

	// MaxFloat64BelowMaxInt64 is the largest float64 strictly less than 2^63.
	// math.MaxInt64 itself has no float64 representation.
	MaxFloat64BelowMaxInt64 float64 = 1<<63 - 1<<10 // 9223372036854774784
)

const (
	// Float64Size is the encoded width in bytes.
	Float64Size = 8
	// Float64HexDigits is the number of hex digits in the textual form.
	Float64HexDigits = 2 * Float64Size
)
