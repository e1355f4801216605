// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package floatbits converts IEEE 754 binary32/binary64 values between raw
// bytes, hex text, (sign, significand, exponent) component triples, and
// fixed-width integers. Every lossy or out-of-range conversion is surfaced
// as an explicit failure; nothing is silently truncated or wrapped.
//
// Each fallible operation comes in two forms sharing one validation path:
// a strict form returning an error, and a comma-ok form (OK suffix) that
// reports failure as a bare false.
package floatbits

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/xerrors"

	"github.com/avdva/floatbits/internal/ieee"
)

// Components64 is a float64 decomposed into sign, significand and exponent.
// For finite values, sign × significand × 2^(exponent−52) recovers the number.
// A triple may also be filled in directly by the caller; it is validated by
// Float64 only, never on construction.
type Components64 struct {
	// Sign is +1 or -1, never 0.
	Sign int
	// Significand is the stored field with the hidden bit made explicit for
	// normalized values. Always below 2^53.
	Significand uint64
	// Exponent is the unbiased exponent in [MinExponent64, NonFiniteExponent64].
	Exponent int
}

// Decompose64 splits f into its components. Total: every bit pattern has a
// valid decomposition. Zeros and subnormals keep Exponent == MinExponent64
// and no hidden bit; infinities and NaNs get Exponent == NonFiniteExponent64
// with the raw fraction (the NaN payload) as the significand.
func Decompose64(f float64) Components64 {
	fields := ieee.Binary64.Unpack(math.Float64bits(f))
	c := Components64{Sign: 1, Significand: fields.Fraction}
	if fields.Negative {
		c.Sign = -1
	}
	switch fields.BiasedExp {
	case 0:
		c.Exponent = MinExponent64
	case ieee.Binary64.MaxBiasedExp():
		c.Exponent = NonFiniteExponent64
	default:
		c.Exponent = int(fields.BiasedExp) - ExponentBias64
		c.Significand |= HiddenBit64
	}
	return c
}

// Float64 reassembles the components into a float64, validating the IEEE 754
// structural invariants first. All violations are reported together under
// ErrInvalidComponents. Round trips are exact: the sign of zero survives and
// NaN payload bits come back verbatim, not canonicalized.
func (c Components64) Float64() (float64, error) {
	var merr *multierror.Error
	signOK := c.Sign == 1 || c.Sign == -1
	if !signOK {
		merr = multierror.Append(merr, xerrors.Errorf("sign must be +1 or -1, got %d: %w", c.Sign, ErrInvalidComponents))
	}
	expOK := c.Exponent >= MinExponent64 && c.Exponent <= NonFiniteExponent64
	if !expOK {
		merr = multierror.Append(merr, xerrors.Errorf("exponent %d outside [%d, %d]: %w",
			c.Exponent, MinExponent64, NonFiniteExponent64, ErrInvalidComponents))
	}
	sigOK := c.Significand <= MaxSignificand64
	if !sigOK {
		merr = multierror.Append(merr, xerrors.Errorf("significand %d exceeds %d: %w",
			c.Significand, MaxSignificand64, ErrInvalidComponents))
	}
	subnormal := c.Exponent == MinExponent64 && c.Significand < HiddenBit64
	nonFinite := c.Exponent == NonFiniteExponent64
	if expOK && sigOK && !subnormal && !nonFinite && c.Significand < HiddenBit64 {
		merr = multierror.Append(merr, xerrors.Errorf("normal significand %d lacks the hidden bit: %w",
			c.Significand, ErrInvalidComponents))
	}
	if err := merr.ErrorOrNil(); err != nil {
		return 0, err
	}
	var biased uint64
	switch {
	case nonFinite:
		biased = ieee.Binary64.MaxBiasedExp()
	case subnormal:
		// stays 0
	default:
		biased = uint64(c.Exponent + ExponentBias64)
	}
	bits, err := ieee.Binary64.Pack(ieee.Fields{
		Negative:  c.Sign < 0,
		BiasedExp: biased,
		Fraction:  c.Significand &^ HiddenBit64,
	})
	if err != nil {
		return 0, xerrors.Errorf("%v: %w", err, ErrInternal)
	}
	return math.Float64frombits(bits), nil
}

// Float64OK is the comma-ok form of Float64.
func (c Components64) Float64OK() (float64, bool) {
	return discard(c.Float64())
}

// GoString returns a debug representation with the raw triple.
func (c Components64) GoString() string {
	return fmt.Sprintf("{s:%+d m:%d e:%d}", c.Sign, c.Significand, c.Exponent)
}
