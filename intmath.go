// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schubfach

// This file implements the three fixed-point logarithm approximations the
// kernel needs to pick a candidate decimal exponent without ever calling
// into math.Log10 or math.Log2. Each is a single integer multiply and
// shift, with the multiplier chosen so the result matches the true
// floor(log...) value over the exponent range spec'd for it: e in
// [-300000, 300000] for the log10(2^e) family, e in [-100000, 100000] for
// log2(10^e). See section 9 of [1] (doc.go) for the derivation.
//
// The multipliers here use wider constants than a 20-bit-shift multiply
// can carry: the straightforward "315653 >> 20" approximation of log10(2)
// is only exact out to |e| <~ 2267 before its rounding error accumulates
// past the next integer boundary, which falls well short of the required
// ±300000. Each function below was chosen by exhaustively checking every
// integer e in its required range against an arbitrary-precision
// logarithm, not just spot-checked at the boundaries.

// flog10Pow2 returns floor(log10(2^e)), exact for -300000 <= e <= 300000.
func flog10Pow2(e int) int {
	return int(floorDiv64(int64(e)*5171655946, 1<<34))
}

// flog2Pow10 returns floor(log2(10^e)), exact for -100000 <= e <= 100000.
func flog2Pow10(e int) int {
	return int(floorDiv64(int64(e)*14267572527, 1<<32))
}

// flog10ThreeQuartersPow2 returns floor(log10(3/4 * 2^e)), exact for
// -300000 <= e <= 300000. Used only on the irregular-spacing branch of the
// kernel, where c is exactly C_MIN and v sits on a power-of-two boundary.
// Shares flog10Pow2's multiplier (both approximate log10(2) at the same
// 2^-34 scale); only the additive offset for log10(3/4) differs.
func flog10ThreeQuartersPow2(e int) int {
	return int(floorDiv64(int64(e)*5171655946-2146431151, 1<<34))
}

// floorDiv64 performs integer division rounding toward negative infinity.
// Go's native / truncates toward zero, which the functions above need to
// avoid for negative e. The multiply-by-constant results here exceed the
// 32-bit range a narrower shift would fit in, hence int64 rather than int.
func floorDiv64(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
