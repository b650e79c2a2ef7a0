// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schubfach

import "strconv"

// hDouble and hFloat are H from the data model: the digit width the
// division-free split in digitsplit.go is built for, binary64's 17 and
// binary32's 9.
const (
	hDouble = 17
	hFloat  = 9
)

// formatDecimal renders the (d, k) pair chosen by the kernel as the
// canonical decimal string v = d * 10^k, choosing among the three shapes
// from the output grammar: plain-with-leading-zeros, plain-without, and
// scientific. h is H for the caller's format (hDouble or hFloat).
//
// d may carry trailing zeros baked in by the kernel's two-digit shortcut;
// those are stripped first, before the digit count or exponent is
// computed, which is what turns a kernel answer like
// d=10000000000000000, k=-17 into the three-character string "0.1". d is
// then re-padded to exactly h digits (reintroducing the zeros just
// stripped) so the division-free digit split in digitsplit.go, which
// assumes a normalized H-digit input, can run; only the first n of those
// h digits are ever read back out.
func formatDecimal(d uint64, k int, h int) string {
	for d >= 10 && d%10 == 0 {
		d /= 10
		k++
	}
	n := decimalDigitCount(d)
	e := k + n - 1

	dp := d
	for i := n; i < h; i++ {
		dp *= 10
	}
	digits := string(digitString(dp, h)[:n])

	switch {
	case 0 <= e && e < 7:
		return plainNoLeadingZeros(digits, n, e)
	case -3 <= e && e < 0:
		return plainLeadingZeros(digits, e)
	default:
		return scientific(digits, n, e)
	}
}

// plainNoLeadingZeros handles exponents in [0, 7): the decimal point falls
// somewhere inside or just after the digit string, never producing a
// leading "0.".
func plainNoLeadingZeros(digits string, n, e int) string {
	if n < e+2 {
		var b []byte
		b = append(b, digits...)
		for i := 0; i < e+2-n-1; i++ {
			b = append(b, '0')
		}
		b = append(b, '.', '0')
		return string(b)
	}
	return digits[:e+1] + "." + digits[e+1:]
}

// plainLeadingZeros handles exponents in [-3, 0): "0." followed by
// -e-1 zeros and then the digits.
func plainLeadingZeros(digits string, e int) string {
	var b []byte
	b = append(b, '0', '.')
	for i := 0; i < -e-1; i++ {
		b = append(b, '0')
	}
	b = append(b, digits...)
	return string(b)
}

// scientific handles every exponent outside [-3, 7): one leading digit, a
// decimal point, the remaining digits (or a single "0" if there were
// none), "E", and the exponent.
func scientific(digits string, n, e int) string {
	exp := strconv.Itoa(e)
	if n == 1 {
		return digits + ".0E" + exp
	}
	return digits[:1] + "." + digits[1:] + "E" + exp
}

// decimalDigitCount returns the number of digits in d's base-10
// representation, 1 for d == 0.
func decimalDigitCount(d uint64) int {
	n := 1
	for d >= 10 {
		d /= 10
		n++
	}
	return n
}
