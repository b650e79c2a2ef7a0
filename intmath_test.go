// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schubfach

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// Independent high-precision reference for the three IntegerMath
// functions, computed with math/big rather than the fixed-point
// multiplies under test, so a mismatch points at intmath.go and not at
// the reference. 200 bits of precision leaves an error many orders of
// magnitude below anything that could flip a floor() result over the
// required e ranges.
var (
	refLog10_2  = mustBigFloat("0.30102999566398119521373889472449302676818988146211")
	refLog2_10  = mustBigFloat("3.3219280948873623478703194294893901758648313930246")
	refLog10_34 = mustBigFloat("-0.12493873660829995313244988619387074433625089873352")
)

func mustBigFloat(s string) *big.Float {
	f, _, err := big.ParseFloat(s, 10, 200, big.ToNearestEven)
	if err != nil {
		panic(err)
	}
	return f
}

// bigFloor truncates f toward zero and corrects for negative,
// non-integer values, where truncation-toward-zero rounds the wrong way
// for floor.
func bigFloor(f *big.Float) int64 {
	i, acc := f.Int(nil)
	n := i.Int64()
	if acc != big.Exact && f.Sign() < 0 {
		n--
	}
	return n
}

func refFlog10Pow2(e int) int64 {
	prod := new(big.Float).SetPrec(200).Mul(big.NewFloat(float64(e)), refLog10_2)
	return bigFloor(prod)
}

func refFlog2Pow10(e int) int64 {
	prod := new(big.Float).SetPrec(200).Mul(big.NewFloat(float64(e)), refLog2_10)
	return bigFloor(prod)
}

func refFlog10ThreeQuartersPow2(e int) int64 {
	prod := new(big.Float).SetPrec(200).Mul(big.NewFloat(float64(e)), refLog10_2)
	prod.Add(prod, refLog10_34)
	return bigFloor(prod)
}

// spec.md's own testable property: "For all e in [-300000, 300000]:
// flog10pow2(e) = floor(log10(2^e))". Exhaustive under a full test run;
// a representative stride under -short.
func TestFlog10Pow2FullRange(t *testing.T) {
	const lo, hi = -300000, 300000
	step := 1
	if testing.Short() {
		step = 997
	}
	for e := lo; e <= hi; e += step {
		want := refFlog10Pow2(e)
		require.Equal(t, want, int64(flog10Pow2(e)), "flog10Pow2(%d)", e)
	}
}

// spec.md's property for flog2pow10: "For all e in [-100000, 100000]:
// flog2pow10(e) = floor(log2(10^e))".
func TestFlog2Pow10FullRange(t *testing.T) {
	const lo, hi = -100000, 100000
	step := 1
	if testing.Short() {
		step = 337
	}
	for e := lo; e <= hi; e += step {
		want := refFlog2Pow10(e)
		require.Equal(t, want, int64(flog2Pow10(e)), "flog2Pow10(%d)", e)
	}
}

// flog10ThreeQuartersPow2 shares flog10Pow2's documented range.
func TestFlog10ThreeQuartersPow2FullRange(t *testing.T) {
	const lo, hi = -300000, 300000
	step := 1
	if testing.Short() {
		step = 997
	}
	for e := lo; e <= hi; e += step {
		want := refFlog10ThreeQuartersPow2(e)
		require.Equal(t, want, int64(flog10ThreeQuartersPow2(e)), "flog10ThreeQuartersPow2(%d)", e)
	}
}

// The boundary values spec.md calls out by name, plus the narrower range
// the kernel actually drives these functions with (q in [-1074, 971] for
// binary64, [-149, 104] for binary32).
func TestIntegerMathBoundariesAndKernelRange(t *testing.T) {
	boundaries := []int{-300000, -100000, -1074, -149, 0, 104, 971, 100000, 300000}
	for _, e := range boundaries {
		require.Equal(t, refFlog10Pow2(e), int64(flog10Pow2(e)), "flog10Pow2(%d)", e)
		require.Equal(t, refFlog10ThreeQuartersPow2(e), int64(flog10ThreeQuartersPow2(e)), "flog10ThreeQuartersPow2(%d)", e)
		if e >= -100000 && e <= 100000 {
			require.Equal(t, refFlog2Pow10(e), int64(flog2Pow10(e)), "flog2Pow10(%d)", e)
		}
	}
}
