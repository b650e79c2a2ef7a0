// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schubfach

import "math/bits"

// mask63 isolates the low 63 bits of a 64-bit word; rop uses it to fold a
// 189-bit product down to a 64-bit result with sticky rounding.
const mask63 = 1<<63 - 1

// rop computes round(cp * g * 2^-127), where g = g1*2^63 + g0 is the
// 126-bit approximation of a power of ten held in pow10Table. It never
// divides: the product is computed to full width with bits.Mul64 and the
// low bits folded into a sticky bit, per section 9.10 and figure 5 of [1].
func rop(g1, g0, cp uint64) uint64 {
	x1, _ := bits.Mul64(g0, cp)
	y0 := g1 * cp
	y1, _ := bits.Mul64(g1, cp)
	z := (y0 >> 1) + x1
	vbp := y1 + (z >> 63)
	sticky := ((z & mask63) + mask63) >> 63
	return vbp | sticky
}
