// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatbits

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/xerrors"

	"github.com/avdva/floatbits/internal/ieee"
)

// Components32 is the binary32 mirror of Components64.
// For finite values, sign × significand × 2^(exponent−23) recovers the number.
type Components32 struct {
	Sign        int
	Significand uint32
	Exponent    int
}

// Decompose32 splits f into its components. Total for every bit pattern.
func Decompose32(f float32) Components32 {
	fields := ieee.Binary32.Unpack(uint64(math.Float32bits(f)))
	c := Components32{Sign: 1, Significand: uint32(fields.Fraction)}
	if fields.Negative {
		c.Sign = -1
	}
	switch fields.BiasedExp {
	case 0:
		c.Exponent = MinExponent32
	case ieee.Binary32.MaxBiasedExp():
		c.Exponent = NonFiniteExponent32
	default:
		c.Exponent = int(fields.BiasedExp) - ExponentBias32
		c.Significand |= HiddenBit32
	}
	return c
}

// Float32 reassembles the components into a float32, validating the IEEE 754
// structural invariants first. See Components64.Float64 for the contract.
func (c Components32) Float32() (float32, error) {
	var merr *multierror.Error
	signOK := c.Sign == 1 || c.Sign == -1
	if !signOK {
		merr = multierror.Append(merr, xerrors.Errorf("sign must be +1 or -1, got %d: %w", c.Sign, ErrInvalidComponents))
	}
	expOK := c.Exponent >= MinExponent32 && c.Exponent <= NonFiniteExponent32
	if !expOK {
		merr = multierror.Append(merr, xerrors.Errorf("exponent %d outside [%d, %d]: %w",
			c.Exponent, MinExponent32, NonFiniteExponent32, ErrInvalidComponents))
	}
	sigOK := c.Significand <= MaxSignificand32
	if !sigOK {
		merr = multierror.Append(merr, xerrors.Errorf("significand %d exceeds %d: %w",
			c.Significand, MaxSignificand32, ErrInvalidComponents))
	}
	subnormal := c.Exponent == MinExponent32 && c.Significand < HiddenBit32
	nonFinite := c.Exponent == NonFiniteExponent32
	if expOK && sigOK && !subnormal && !nonFinite && c.Significand < HiddenBit32 {
		merr = multierror.Append(merr, xerrors.Errorf("normal significand %d lacks the hidden bit: %w",
			c.Significand, ErrInvalidComponents))
	}
	if err := merr.ErrorOrNil(); err != nil {
		return 0, err
	}
	var biased uint64
	switch {
	case nonFinite:
		biased = ieee.Binary32.MaxBiasedExp()
	case subnormal:
		// stays 0
	default:
		biased = uint64(c.Exponent + ExponentBias32)
	}
	bits, err := ieee.Binary32.Pack(ieee.Fields{
		Negative:  c.Sign < 0,
		BiasedExp: biased,
		Fraction:  uint64(c.Significand &^ HiddenBit32),
	})
	if err != nil {
		return 0, xerrors.Errorf("%v: %w", err, ErrInternal)
	}
	return math.Float32frombits(uint32(bits)), nil
}

// Float32OK is the comma-ok form of Float32.
func (c Components32) Float32OK() (float32, bool) {
	return discard(c.Float32())
}

// GoString returns a debug representation with the raw triple.
func (c Components32) GoString() string {
	return fmt.Sprintf("{s:%+d m:%d e:%d}", c.Sign, c.Significand, c.Exponent)
}
