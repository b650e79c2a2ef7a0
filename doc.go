// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Translated and restructured from DoubleToDecimal.java and
// FloatToDecimal.java.

/*
 * Copyright 2018-2020 Raffaello Giulietti
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
 * THE SOFTWARE.
 */

/*
   For full details about the algorithm implemented here see the following
   references:

   [1] Giulietti, "The Schubfach way to render doubles",
       https://drive.google.com/open?id=1luHhyQF9zKlM8yJ1nebU0OgVYhfC6CBN

   [2] IEEE Computer Society, "IEEE Standard for Floating-Point Arithmetic"

   [3] Bouvier & Zimmermann, "Division-Free Binary-to-Decimal Conversion"

   Divisions are avoided throughout for the benefit of architectures that
   do not provide a fast integer divide; see section 10 of [1].
*/

// Package schubfach converts IEEE 754 binary64 and binary32 floating-point
// values to the shortest decimal string that reads back to the same value
// under round-to-nearest, ties-to-even.
//
// FormatDouble and FormatFloat are pure functions of their argument: they
// allocate no package-level mutable state, hold no locks, and are safe to
// call from any number of goroutines concurrently. All of the expensive
// state — the 649-entry table of power-of-ten approximations used by the
// digit-selection kernel — is built once, at init time, as read-only data.
//
// The implementation is the Schubfach algorithm, after Raffaello
// Giulietti's reference Java implementation in the OpenJDK source tree
// (java.lang.Double.toString / java.lang.Float.toString since JDK 19). It
// produces the same digit string Java's Double.toString and
// Float.toString would for the same bit pattern, with two corrections to
// the historical seed values documented in DESIGN.md.
package schubfach
