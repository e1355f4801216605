// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatbits

import (
	"math"

	"golang.org/x/exp/constraints"
)

// IntegralAndFractional holds the two halves of a split value;
// Integral + Fractional recovers the original.
type IntegralAndFractional[T constraints.Float] struct {
	Integral   T
	Fractional T
}

// IntegralPart returns the integer-valued part of v. The default policy
// truncates toward zero; towardsNegative switches to floor semantics, which
// makes the fractional part always non-negative. Infinities and NaN map to
// themselves.
func IntegralPart[T constraints.Float](v T, towardsNegative bool) T {
	// float32 survives the float64 round trip exactly: either |v| < 2^24 and
	// the result is a small integer, or v is already integral.
	if towardsNegative {
		return T(math.Floor(float64(v)))
	}
	return T(math.Trunc(float64(v)))
}

// Split returns both halves of v. For ±Inf the fractional half is NaN;
// for NaN both halves are NaN.
func Split[T constraints.Float](v T, towardsNegative bool) IntegralAndFractional[T] {
	integral := IntegralPart(v, towardsNegative)
	return IntegralAndFractional[T]{Integral: integral, Fractional: v - integral}
}

// FractionalPart returns v minus its integral part.
func FractionalPart[T constraints.Float](v T, towardsNegative bool) T {
	return Split(v, towardsNegative).Fractional
}

// HasNonZeroFraction reports whether v has a non-zero fractional part under
// the default truncation policy.
func HasNonZeroFraction[T constraints.Float](v T) bool {
	return FractionalPart(v, false) != 0
}
