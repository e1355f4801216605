// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package ieee splits and assembles the raw bit fields of IEEE 754 binary
// interchange formats. It knows nothing about special values; callers decide
// what a zero or all-ones exponent field means.
package ieee

import "golang.org/x/xerrors"

// Layout describes the field widths of a binary interchange format.
// The sign bit is always present and always the highest bit.
type Layout struct {
	SignificandBits uint
	ExponentBits    uint
}

var (
	Binary64 = Layout{SignificandBits: 52, ExponentBits: 11}
	Binary32 = Layout{SignificandBits: 23, ExponentBits: 8}
)

// Fields holds the three raw fields of an encoding.
type Fields struct {
	Negative  bool
	BiasedExp uint64
	Fraction  uint64
}

// Bias returns the exponent bias of the layout.
func (l Layout) Bias() int {
	return 1<<(l.ExponentBits-1) - 1
}

// MaxBiasedExp returns the all-ones value of the exponent field.
func (l Layout) MaxBiasedExp() uint64 {
	return 1<<l.ExponentBits - 1
}

// FractionMask covers the significand field.
func (l Layout) FractionMask() uint64 {
	return 1<<l.SignificandBits - 1
}

// Unpack splits a raw encoding into its fields.
func (l Layout) Unpack(bits uint64) Fields {
	return Fields{
		Negative:  bits>>(l.SignificandBits+l.ExponentBits) != 0,
		BiasedExp: bits >> l.SignificandBits & l.MaxBiasedExp(),
		Fraction:  bits & l.FractionMask(),
	}
}

// Pack assembles fields back into a raw encoding.
// A field that escapes its width indicates a defect in the caller.
func (l Layout) Pack(f Fields) (uint64, error) {
	if f.BiasedExp > l.MaxBiasedExp() {
		return 0, xerrors.Errorf("biased exponent %d exceeds %d-bit field", f.BiasedExp, l.ExponentBits)
	}
	if f.Fraction > l.FractionMask() {
		return 0, xerrors.Errorf("fraction %#x exceeds %d-bit field", f.Fraction, l.SignificandBits)
	}
	bits := f.BiasedExp<<l.SignificandBits | f.Fraction
	if f.Negative {
		bits |= 1 << (l.SignificandBits + l.ExponentBits)
	}
	return bits, nil
}
