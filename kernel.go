// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schubfach

// This file is the digit-selection kernel: given the binary significand c
// and exponent q of a finite, non-zero value (|v| = c * 2^q), it picks the
// shortest decimal (d, k) such that d * 10^k round-trips
// back to v. The skeleton follows figure 4 of [1]; the 10-free arithmetic
// follows figure 7.
//
// Names below track the paper's notation:
//
//	cb   \bar{c}    "c-bar"
//	cbr  \bar{c}_r  "c-bar-r"
//	cbl  \bar{c}_l  "c-bar-l"
//	vb   \bar{v}    "v-bar"
//	vbr  \bar{v}_r  "v-bar-r"
//	vbl  \bar{v}_l  "v-bar-l"

// decimalResult is the (digits, k) pair the kernel selects: the value is
// digits * 10^k. digits may carry trailing zeros; the formatter strips
// them before emitting text.
type decimalResult struct {
	digits uint64
	k      int
}

// kernel implements the shared digit-selection core for both binary64 and
// binary32: v = c * 2^q, c a cMin-bit-normalized significand (or smaller,
// for subnormals), tiny holds the precomputed s < 10 special cases for the
// caller's format width. See the s < 10 branch below.
func kernel(q int, c uint64, cMin uint64, qMin int, tiny map[uint64]decimalResult) decimalResult {
	out := c & 1

	var cb, cbl, cbr uint64
	var k int
	var h int
	if c != cMin || q == qMin {
		// Regular spacing: the representable neighbours of v are
		// equally far away on both sides, so the rounding interval
		// is symmetric.
		cb = c << 1
		cbr = cb + 1
		cbl = cb - 1
		k = flog10Pow2(q)
		h = q + flog2Pow10(-k) + 3
	} else {
		// Irregular spacing: c is exactly cMin and v lies on a
		// power-of-two boundary, so the interval below v is only
		// half as wide as the interval above it.
		cb = c << 2
		cbr = cb + 2
		cbl = cb - 1
		k = flog10ThreeQuartersPow2(q)
		h = q + flog2Pow10(-k) + 2
	}

	g1v := g1(k)
	g0v := g0(k)

	vb := rop(g1v, g0v, cb<<h)
	vbl := rop(g1v, g0v, cbl<<h)
	vbr := rop(g1v, g0v, cbr<<h)

	s := vb >> 2
	if s >= 100 {
		// s spans at least three digits: check whether dropping its
		// last digit (rounding down or up to a multiple of ten)
		// lands in the rounding interval on exactly one side. See
		// section 9.4 of [1].
		sp10 := (s / 10) * 10
		tp10 := sp10 + 10
		upin := vbl+out <= sp10<<2
		wpin := (tp10<<2)+out <= vbr
		if upin != wpin {
			if upin {
				return decimalResult{sp10, k}
			}
			return decimalResult{tp10, k}
		}
	} else if s < 10 {
		if r, ok := tiny[s]; ok {
			return r
		}
	}

	// Neither the shortcut nor a tiny entry applied: fall back to the
	// candidates s and t = s+1.
	t := s + 1
	uin := vbl+out <= s<<2
	win := (t<<2)+out <= vbr
	if uin != win {
		if uin {
			return decimalResult{s, k}
		}
		return decimalResult{t, k}
	}

	// Both s and t lie in the rounding interval: pick whichever is
	// closer to v, breaking an exact tie toward the even digit.
	cmp := int64(vb) - 2*int64(s+t)
	if cmp < 0 || (cmp == 0 && s%2 == 0) {
		return decimalResult{s, k}
	}
	return decimalResult{t, k}
}
