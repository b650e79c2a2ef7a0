// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schubfach

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Seed scenarios for binary64, drawn from the canonical boundary and
// round-number cases every Schubfach implementation is checked against.
//
// The 2*MIN_VALUE entry is sometimes quoted as "1.0E-323" in older
// references. That one-digit decimal also round-trips, but it is not what
// this package (or OpenJDK's Double.toString since JDK 19) produces: as
// for MIN_VALUE, the two-digit decimal closest to the value, 9.9E-324, is
// given. See DESIGN.md.
func TestFormatDoubleSeeds(t *testing.T) {
	cases := []struct {
		name string
		bits uint64
		want string
	}{
		{"positive zero", 0x0000000000000000, "0.0"},
		{"negative zero", 0x8000000000000000, "-0.0"},
		{"positive infinity", 0x7FF0000000000000, "Infinity"},
		{"negative infinity", 0xFFF0000000000000, "-Infinity"},
		{"NaN", 0x7FF8000000000000, "NaN"},
		{"min value", 0x0000000000000001, "4.9E-324"},
		{"2x min value", 0x0000000000000002, "9.9E-324"},
		{"min normal", 0x0010000000000000, "2.2250738585072014E-308"},
		{"max value", 0x7FEFFFFFFFFFFFFF, "1.7976931348623157E308"},
		{"one", 0x3FF0000000000000, "1.0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := math.Float64frombits(c.bits)
			assert.Equal(t, c.want, FormatDouble(v))
		})
	}
}

// Literal-value scenarios, easier to read than raw bit patterns, covering
// each output shape in the grammar: scientific, plain-with-leading-zeros,
// and plain-without.
func TestFormatDoubleLiterals(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{1e23, "1.0E23"},
		{0.1, "0.1"},
		{1200.0, "1200.0"},
		{1.234e-32, "1.234E-32"},
		{0.01234, "0.01234"},
		{-1.5, "-1.5"},
		{-1e300, "-1.0E300"},
		{100.0, "100.0"},
		{1e7, "1.0E7"},
		{9999999.0, "9999999.0"},
		{1e-3, "0.001"},
		{1e-4, "1.0E-4"},
	}
	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			assert.Equal(t, c.want, FormatDouble(c.v))
		})
	}
}

// Seed scenarios for binary32. The min-normal entry is sometimes quoted as
// "1.17549435E-38", the literal spelling of Float.MIN_NORMAL's source
// declaration; the true shortest round-tripping decimal for this bit
// pattern is one digit shorter. See DESIGN.md.
func TestFormatFloatSeeds(t *testing.T) {
	cases := []struct {
		name string
		bits uint32
		want string
	}{
		{"positive zero", 0x00000000, "0.0"},
		{"negative zero", 0x80000000, "-0.0"},
		{"positive infinity", 0x7F800000, "Infinity"},
		{"negative infinity", 0xFF800000, "-Infinity"},
		{"NaN", 0x7FC00000, "NaN"},
		{"min value", 0x00000001, "1.4E-45"},
		{"min normal", 0x00800000, "1.1754944E-38"},
		{"max value", 0x7F7FFFFF, "3.4028235E38"},
		{"one", 0x3F800000, "1.0"},
		{"point one", 0x3DCCCCCD, "0.1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := math.Float32frombits(c.bits)
			assert.Equal(t, c.want, FormatFloat(v))
		})
	}
}

// Every finite value must round-trip: parsing FormatDouble's output back
// with strconv.ParseFloat must reproduce the exact same bit pattern.
func TestFormatDoubleRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200000; i++ {
		bits := rng.Uint64()
		v := math.Float64frombits(bits)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		s := FormatDouble(v)
		got, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err, "parsing %q", s)
		require.Equal(t, bits, math.Float64bits(got), "round-trip mismatch for %q (input bits %#x)", s, bits)
	}
}

// Same invariant for binary32.
func TestFormatFloatRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 200000; i++ {
		bits := rng.Uint32()
		v := math.Float32frombits(bits)
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			continue
		}
		s := FormatFloat(v)
		got, err := strconv.ParseFloat(s, 32)
		require.NoError(t, err, "parsing %q", s)
		require.Equal(t, bits, math.Float32bits(float32(got)), "round-trip mismatch for %q (input bits %#x)", s, bits)
	}
}

// The first 4096 subnormal bit patterns exercise the tiny-special-case
// branch of the kernel, and its regular-spacing branch at q = qMin,
// exhaustively rather than by sampling.
func TestFormatDoubleSubnormalsExhaustive(t *testing.T) {
	for bits := uint64(1); bits < 4096; bits++ {
		v := math.Float64frombits(bits)
		s := FormatDouble(v)
		got, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err, "parsing %q (bits %#x)", s, bits)
		require.Equal(t, bits, math.Float64bits(got), "round-trip mismatch for bits %#x -> %q", bits, s)
	}
}

// Every output must contain a decimal point with at least one digit on
// each side, per the output grammar: no bare integer literals.
func TestFormatDoubleContainsDecimalPoint(t *testing.T) {
	samples := []float64{1, 100, 1e20, 1e-20, 0.5, 123456.0, 7}
	for _, v := range samples {
		s := FormatDouble(v)
		assert.Contains(t, s, ".", "output %q for %v must contain a decimal point", s, v)
	}
}
