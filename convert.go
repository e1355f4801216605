// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatbits

import (
	"math"

	"golang.org/x/xerrors"
)

// ConvertOptions control the float-to-integer conversion family.
type ConvertOptions struct {
	// PreventTruncation rejects inputs with a non-zero fractional part.
	PreventTruncation bool
	// ExtendedRange widens a widening conversion's domain beyond the float's
	// exact-integer range, up to the target type's representable bounds.
	// Inside the widened range, low-order integer precision may be lost:
	// the input has already been rounded to the nearest representable float.
	// Setting it on a narrowing conversion is an error, since the target
	// range is exact there to begin with.
	ExtendedRange bool
}

func checkFinite(f float64) error {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return xerrors.Errorf("%v: %w", f, ErrNotFinite)
	}
	return nil
}

func checkTruncation(f float64, opts ConvertOptions) error {
	if opts.PreventTruncation && HasNonZeroFraction(f) {
		return xerrors.Errorf("%v: %w", f, ErrTruncation)
	}
	return nil
}

// Float64ToInt32 converts f to an int32, truncating toward zero.
// It fails with ErrNotFinite for ±Inf and NaN, and with ErrRange unless f
// lies inside the open interval (MinInt32−1, MaxInt32+1); every int32 is
// exactly representable in a float64, so there is no extended range.
func Float64ToInt32(f float64, opts ConvertOptions) (int32, error) {
	return float64ToInt32(f, opts)
}

// Float64ToInt32OK is the comma-ok form of Float64ToInt32.
func Float64ToInt32OK(f float64, opts ConvertOptions) (int32, bool) {
	return discard(float64ToInt32(f, opts))
}

func float64ToInt32(f float64, opts ConvertOptions) (int32, error) {
	if opts.ExtendedRange {
		return 0, xerrors.Errorf("extended range does not apply to a narrowing conversion: %w", ErrConfig)
	}
	if err := checkFinite(f); err != nil {
		return 0, err
	}
	if f <= MinInt32Float64-1 || f >= MaxInt32Float64+1 {
		return 0, errRangef("%v outside (%v, %v)", f, MinInt32Float64-1, MaxInt32Float64+1)
	}
	if err := checkTruncation(f, opts); err != nil {
		return 0, err
	}
	return int32(f), nil
}

// Float64ToInt64 converts f to an int64, truncating toward zero.
// By default f must lie in [−2^53, +2^53], where the conversion is
// bit-exact. With opts.ExtendedRange the domain widens to
// [math.MinInt64, MaxFloat64BelowMaxInt64] at the documented cost of
// possible precision loss in the low-order integer digits.
func Float64ToInt64(f float64, opts ConvertOptions) (int64, error) {
	return float64ToInt64(f, opts)
}

// Float64ToInt64OK is the comma-ok form of Float64ToInt64.
func Float64ToInt64OK(f float64, opts ConvertOptions) (int64, bool) {
	return discard(float64ToInt64(f, opts))
}

func float64ToInt64(f float64, opts ConvertOptions) (int64, error) {
	if err := checkFinite(f); err != nil {
		return 0, err
	}
	lo, hi := MinExactFloat64, MaxExactFloat64
	if opts.ExtendedRange {
		lo, hi = math.MinInt64, MaxFloat64BelowMaxInt64
	}
	if f < lo || f > hi {
		return 0, errRangef("%v outside [%v, %v]", f, lo, hi)
	}
	if err := checkTruncation(f, opts); err != nil {
		return 0, err
	}
	return int64(f), nil
}

// Int64ToFloat64 converts i to a float64. It fails with ErrRange unless i
// lies within [−2^53, +2^53]; inside that range the conversion is exact.
func Int64ToFloat64(i int64) (float64, error) {
	return int64ToFloat64(i)
}

// Int64ToFloat64OK is the comma-ok form of Int64ToFloat64.
func Int64ToFloat64OK(i int64) (float64, bool) {
	return discard(int64ToFloat64(i))
}

func int64ToFloat64(i int64) (float64, error) {
	if i < MinExactInt64 || i > MaxExactInt64 {
		return 0, errRangef("%d outside [%d, %d]", i, MinExactInt64, MaxExactInt64)
	}
	return float64(i), nil
}
