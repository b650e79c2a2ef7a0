// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schubfach

import "math"

// Constants for binary64 (P = 53, W = 11) and binary32 (P = 24, W = 8), as
// in section 2 of [1]. qMin is the smallest unbiased binary exponent q in
// |v| = c * 2^q; cMin is the smallest normal significand, 2^(P-1).
const (
	p64      = 53
	w64      = 64 - 1 - (p64 - 1)
	qMin64   = -(1 << (w64 - 1)) - p64 + 3
	cMin64   = 1 << (p64 - 1)
	bqMask64 = 1<<w64 - 1
	tMask64  = 1<<(p64-1) - 1

	p32      = 24
	w32      = 32 - 1 - (p32 - 1)
	qMin32   = -(1 << (w32 - 1)) - p32 + 3
	cMin32   = 1 << (p32 - 1)
	bqMask32 = 1<<w32 - 1
	tMask32  = 1<<(p32-1) - 1
)

// tinyDouble holds the binary64 subnormals whose shortest decimal has
// fewer than three significant digits: MIN_VALUE (s=4) and 2*MIN_VALUE
// (s=9). The general three-digit candidate logic in kernel cannot produce
// these directly because s < 10 never reaches the s>=100 two-digit
// shortcut nor leaves room for a meaningful t = s+1 comparison.
//
// The seed value for 2*MIN_VALUE is sometimes quoted as "1.0E-323". That
// one-digit decimal also round-trips, but this table yields 9.9E-324
// instead: like MIN_VALUE's 4.9E-324, it is the two-digit decimal closest
// to the value (about 9.88E-324), while 1E-323 lies farther away (see
// DESIGN.md).
var tinyDouble = map[uint64]decimalResult{
	4: {49, -325},
	9: {99, -325},
}

// tinyFloat holds the analogous binary32 subnormal special cases.
var tinyFloat = map[uint64]decimalResult{
	1: {14, -46},
	2: {28, -46},
	4: {42, -46},
	5: {56, -46},
	7: {70, -46},
	8: {84, -46},
	9: {98, -46},
}

// FormatDouble renders v, a binary64 value, as the shortest decimal string
// that reads back to v under round-to-nearest: "NaN", "Infinity",
// "-Infinity", "0.0", "-0.0", or a plain or scientific decimal literal as
// built by formatDecimal, always carrying at least one digit after the
// point.
func FormatDouble(v float64) string {
	bits := math.Float64bits(v)
	sign := bits>>63 != 0
	t := bits & tMask64
	bq := (bits >> (p64 - 1)) & bqMask64

	switch {
	case bq == bqMask64:
		if t != 0 {
			return "NaN"
		}
		if sign {
			return "-Infinity"
		}
		return "Infinity"
	case bq == 0 && t == 0:
		if sign {
			return "-0.0"
		}
		return "0.0"
	}

	var d decimalResult
	if bq != 0 {
		mq := -qMin64 + 1 - int(bq)
		c := uint64(cMin64) | t
		if 0 < mq && mq < p64 {
			f := c >> mq
			if f<<mq == c {
				return signed(sign, formatDecimal(f, 0, hDouble))
			}
		}
		d = kernel(-mq, c, cMin64, qMin64, tinyDouble)
	} else {
		d = kernel(qMin64, t, cMin64, qMin64, tinyDouble)
	}
	return signed(sign, formatDecimal(d.digits, d.k, hDouble))
}

// FormatFloat renders v, a binary32 value, as the shortest decimal string
// that reads back to v under round-to-nearest, using the same grammar as
// FormatDouble.
func FormatFloat(v float32) string {
	bits := math.Float32bits(v)
	sign := bits>>31 != 0
	t := uint64(bits & tMask32)
	bq := (bits >> (p32 - 1)) & bqMask32

	switch {
	case bq == bqMask32:
		if t != 0 {
			return "NaN"
		}
		if sign {
			return "-Infinity"
		}
		return "Infinity"
	case bq == 0 && t == 0:
		if sign {
			return "-0.0"
		}
		return "0.0"
	}

	var d decimalResult
	if bq != 0 {
		mq := -qMin32 + 1 - int(bq)
		c := uint64(cMin32) | t
		if 0 < mq && mq < p32 {
			f := c >> mq
			if f<<mq == c {
				return signed(sign, formatDecimal(f, 0, hFloat))
			}
		}
		d = kernel(-mq, c, cMin32, qMin32, tinyFloat)
	} else {
		d = kernel(qMin32, t, cMin32, qMin32, tinyFloat)
	}
	return signed(sign, formatDecimal(d.digits, d.k, hFloat))
}

func signed(negative bool, s string) string {
	if negative {
		return "-" + s
	}
	return s
}
