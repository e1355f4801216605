// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatbits

// Float32ToInt32 converts f to an int32, truncating toward zero. This is a
// widening conversion: a float32 represents integers exactly only within
// ±2^24, which is the default domain. With opts.ExtendedRange the domain
// widens to [MinInt32Float32, MaxFloat32BelowMaxInt32] at the documented
// cost of possible low-order precision loss.
func Float32ToInt32(f float32, opts ConvertOptions) (int32, error) {
	return float32ToInt32(f, opts)
}

// Float32ToInt32OK is the comma-ok form of Float32ToInt32.
func Float32ToInt32OK(f float32, opts ConvertOptions) (int32, bool) {
	return discard(float32ToInt32(f, opts))
}

func float32ToInt32(f float32, opts ConvertOptions) (int32, error) {
	if err := checkFinite(float64(f)); err != nil {
		return 0, err
	}
	lo, hi := MinExactFloat32, MaxExactFloat32
	if opts.ExtendedRange {
		lo, hi = MinInt32Float32, MaxFloat32BelowMaxInt32
	}
	if f < lo || f > hi {
		return 0, errRangef("%v outside [%v, %v]", f, lo, hi)
	}
	if err := checkTruncation(float64(f), opts); err != nil {
		return 0, err
	}
	return int32(f), nil
}

// Int32ToFloat32 converts i to a float32. It fails with ErrRange unless i
// lies within [−2^24, +2^24]; inside that range the conversion is exact.
func Int32ToFloat32(i int32) (float32, error) {
	return int32ToFloat32(i)
}

// Int32ToFloat32OK is the comma-ok form of Int32ToFloat32.
func Int32ToFloat32OK(i int32) (float32, bool) {
	return discard(int32ToFloat32(i))
}

func int32ToFloat32(i int32) (float32, error) {
	if i < MinExactInt32 || i > MaxExactInt32 {
		return 0, errRangef("%d outside [%d, %d]", i, MinExactInt32, MaxExactInt32)
	}
	return float32(i), nil
}
