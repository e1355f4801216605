// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatbits

// binary32 mirror of the constants in bits64.go.
const (
	SignificandBits32 = 23
	PrecisionBits32   = SignificandBits32 + 1
	ExponentBits32    = 8

	ExponentBias32      = 1<<(ExponentBits32-1) - 1 // 127
	MinExponent32       = 1 - ExponentBias32        // -126
	NonFiniteExponent32 = ExponentBias32 + 1        // 128
)

const (
	HiddenBit32      uint32 = 1 << SignificandBits32
	MaxSignificand32 uint32 = 1<<PrecisionBits32 - 1
)

const (
	// MaxExactInt32 and MinExactInt32 bound the contiguous integer range a
	// float32 represents without precision loss.
	MaxExactInt32 int32 = 1 << PrecisionBits32 // 2^24
	MinExactInt32 int32 = -MaxExactInt32

	MaxExactFloat32 float32 = 1 << PrecisionBits32
	MinExactFloat32 float32 = -MaxExactFloat32

	// MinInt32Float32 is the float32 image of math.MinInt32, which is a
	// power of two and therefore exact. math.MaxInt32 is not representable;
	// MaxFloat32BelowMaxInt32 is the largest float32 strictly below it.
	MinInt32Float32         float32 = -(1 << 31)
	MaxFloat32BelowMaxInt32 float32 = 1<<31 - 1<<7 // 2147483520
)

const (
	Float32Size      = 4
	Float32HexDigits = 2 * Float32Size
)
