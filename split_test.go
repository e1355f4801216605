// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatbits

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f               float64
		towardsNegative bool
		integral        float64
		fractional      float64
	}{
		{0, false, 0, 0},
		{2, false, 2, 0},
		{2.25, false, 2, 0.25},
		{-1.5, false, -1, -0.5},
		{-1.5, true, -2, 0.5},
		{1.5, true, 1, 0.5},
		{-0.75, false, 0, -0.75},
		{-0.75, true, -1, 0.25},
		{MaxExactFloat64, false, MaxExactFloat64, 0},
		{math.SmallestNonzeroFloat64, false, 0, math.SmallestNonzeroFloat64},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			r := Split(test.f, test.towardsNegative)
			a.Equal(test.integral, r.Integral)
			a.Equal(test.fractional, r.Fractional)
			a.Equal(test.f, r.Integral+r.Fractional)
			a.Equal(test.integral, IntegralPart(test.f, test.towardsNegative))
			a.Equal(test.fractional, FractionalPart(test.f, test.towardsNegative))
			if test.towardsNegative {
				a.GreaterOrEqual(r.Fractional, 0.0)
			}
		})
	}
}

func TestSplitNonFinite(t *testing.T) {
	a := assert.New(t)
	for _, towardsNegative := range []bool{false, true} {
		r := Split(math.Inf(1), towardsNegative)
		a.True(math.IsInf(r.Integral, 1))
		a.True(math.IsNaN(r.Fractional))

		r = Split(math.Inf(-1), towardsNegative)
		a.True(math.IsInf(r.Integral, -1))
		a.True(math.IsNaN(r.Fractional))

		r = Split(math.NaN(), towardsNegative)
		a.True(math.IsNaN(r.Integral))
		a.True(math.IsNaN(r.Fractional))
	}
}

func TestSplitFloat32(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f               float32
		towardsNegative bool
		integral        float32
		fractional      float32
	}{
		{2, false, 2, 0},
		{-1.5, false, -1, -0.5},
		{-1.5, true, -2, 0.5},
		{MaxExactFloat32, false, MaxExactFloat32, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			r := Split(test.f, test.towardsNegative)
			a.Equal(test.integral, r.Integral)
			a.Equal(test.fractional, r.Fractional)
		})
	}
}

func TestHasNonZeroFraction(t *testing.T) {
	a := assert.New(t)
	a.False(HasNonZeroFraction(0.0))
	a.False(HasNonZeroFraction(2.0))
	a.False(HasNonZeroFraction(-2.0))
	a.False(HasNonZeroFraction(MaxExactFloat64))
	a.True(HasNonZeroFraction(2.5))
	a.True(HasNonZeroFraction(-1.5))
	a.True(HasNonZeroFraction(math.SmallestNonzeroFloat64))
	a.True(HasNonZeroFraction(float32(0.25)))
	a.False(HasNonZeroFraction(float32(3)))
}
