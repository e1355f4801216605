// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatbits

import (
	"errors"

	"golang.org/x/xerrors"
)

// Error kinds returned by the package. Every failure wraps exactly one of
// these sentinels, so callers can discriminate with errors.Is.
var (
	// ErrSize is returned when a byte buffer does not match the float width.
	ErrSize = errors.New("byte count does not match float width")
	// ErrFormat is returned for malformed hex text.
	ErrFormat = errors.New("malformed hex text")
	// ErrConfig is returned when a caller-supplied option violates its precondition.
	ErrConfig = errors.New("invalid option value")
	// ErrRange is returned when a value lies outside the interval required
	// for the requested conversion.
	ErrRange = errors.New("value out of range")
	// ErrNotFinite is returned for integer conversions of ±Inf or NaN.
	ErrNotFinite = errors.New("value is not finite")
	// ErrTruncation is returned when a non-zero fractional part is rejected.
	ErrTruncation = errors.New("non-zero fractional part")
	// ErrInvalidComponents is returned when a component triple violates the
	// IEEE 754 structural invariants during reconstruction.
	ErrInvalidComponents = errors.New("invalid floating-point components")
	// ErrInternal reports a defect in the bit-packing machinery itself,
	// never bad input. It is not converted by the comma-ok variants.
	ErrInternal = errors.New("internal error")
)

func errRangef(format string, args ...interface{}) error {
	return xerrors.Errorf(format+": %w", append(args, ErrRange)...)
}

// discard converts a strict result into the comma-ok shape.
// Internal errors are defects and must not be swallowed.
func discard[T any](v T, err error) (T, bool) {
	if err == nil {
		return v, true
	}
	if errors.Is(err, ErrInternal) {
		panic(err)
	}
	var zero T
	return zero, false
}
