// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schubfach

import "math/bits"

// This file turns a normalized H-digit integer into its ASCII digit
// string without ever dividing by a variable runtime value, following the
// digit-split and Bouvier-Zimmermann eight-digit emission described in
// section 10 of [1] (doc.go). Every divisor here is a compile-time
// constant, so each step compiles to a multiply and a shift.

const (
	// hmSplitMul/hmSplitShift extract the top 9 digits (as hm) of a
	// normalized 17-digit value, leaving the bottom 8 in l:
	// hm = floor(dp * hmSplitMul / 2^hmSplitShift).
	hmSplitMul   = 48357032784585167
	hmSplitShift = 82

	// topSplitMul/topSplitShift peel the single leading digit off a
	// 9-digit (or smaller) value: h = floor(a * topSplitMul / 2^topSplitShift).
	topSplitMul   = 1441151881
	topSplitShift = 57

	// emitMul/emitShift seed the eight-digit left-to-right emission loop:
	// y = floor((a+1) * 2^28 * emitMul / 2^emitShift) - 1.
	emitMul   = 193_428_131_138_340_668
	emitShift = 84

	tenPow8   = 100_000_000
	mask28bit = 1<<28 - 1
)

// mulShiftBy64Plus computes floor(a*mul / 2^(64+extra)) for extra in
// [0, 64), without materializing the full 128-bit product: shifting a
// 128-bit value right by 64 or more bits depends only on the high word,
// so the low word from bits.Mul64 can be discarded exactly.
func mulShiftBy64Plus(a, mul uint64, extra uint) uint64 {
	hi, _ := bits.Mul64(a, mul)
	return hi >> extra
}

// splitDigits17 splits a normalized value dp with 10^16 <= dp < 10^17
// into its leading digit h, middle eight digits m, and trailing eight
// digits l, so that dp = h*10^16 + m*10^8 + l.
func splitDigits17(dp uint64) (h, m, l uint64) {
	hm := mulShiftBy64Plus(dp, hmSplitMul, hmSplitShift-64)
	l = dp - tenPow8*hm
	h = (hm * topSplitMul) >> topSplitShift
	m = hm - tenPow8*h
	return h, m, l
}

// splitDigits9 splits a normalized value dp with 10^8 <= dp < 10^9 into
// its leading digit h and trailing eight digits l, so that
// dp = h*10^8 + l.
func splitDigits9(dp uint64) (h, l uint64) {
	h = (dp * topSplitMul) >> topSplitShift
	l = dp - tenPow8*h
	return h, l
}

// emit8 renders a, 0 <= a < 10^8, as exactly eight ASCII digits, most
// significant first, using Bouvier & Zimmermann's division-free
// algorithm 1 ([3]): each digit is peeled off the top of a 28-bit
// fixed-point fraction by a multiply-by-ten and a shift.
func emit8(a uint64) [8]byte {
	y := mulShiftBy64Plus((a+1)<<28, emitMul, emitShift-64) - 1
	var out [8]byte
	for i := range out {
		y *= 10
		out[i] = byte('0' + (y >> 28))
		y &= mask28bit
	}
	return out
}

// digitString renders the normalized H-digit value dp as its exact ASCII
// digit string, using splitDigits17/9 and emit8 rather than a general
// base-10 formatter.
func digitString(dp uint64, h int) []byte {
	if h == hDouble {
		top, mid, low := splitDigits17(dp)
		midDigits := emit8(mid)
		lowDigits := emit8(low)
		b := make([]byte, 0, 17)
		b = append(b, byte('0'+top))
		b = append(b, midDigits[:]...)
		b = append(b, lowDigits[:]...)
		return b
	}
	top, low := splitDigits9(dp)
	lowDigits := emit8(low)
	b := make([]byte, 0, 9)
	b = append(b, byte('0'+top))
	b = append(b, lowDigits[:]...)
	return b
}
