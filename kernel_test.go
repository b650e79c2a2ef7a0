// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schubfach

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// kernel is exercised directly here, bypassing entry.go's bit-decoding and
// integral fast path, using (q, c) pairs derived by hand from known float
// literals so a mismatch points at the digit-selection logic itself rather
// than at bit extraction.
func TestKernelDirect(t *testing.T) {
	cases := []struct {
		name string
		q    int
		c    uint64
		want decimalResult
	}{
		// 0.1 in binary64: c*2^q is the double nearest 0.1, so the
		// kernel's two-digit shortcut fires and bakes in trailing
		// zeros; formatDecimal strips them back down to "0.1".
		{"0.1 double", -56, 7205759403792794, decimalResult{10000000000000000, -17}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := kernel(c.q, c.c, cMin64, qMin64, tinyDouble)
			if diff := cmp.Diff(c.want, got, cmp.AllowUnexported(decimalResult{})); diff != "" {
				t.Errorf("kernel(%d, %d) mismatch (-want +got):\n%s", c.q, c.c, diff)
			}
		})
	}
}

// The tiny-case tables are exercised directly: every key must be below 10,
// the only s values the kernel looks up in them, and each entry is run
// through formatDecimal to name its subtest.
func TestTinyTables(t *testing.T) {
	for s, want := range tinyDouble {
		got := formatDecimal(want.digits, want.k, hDouble)
		t.Run(got, func(t *testing.T) {
			if s >= 10 {
				t.Fatalf("tinyDouble key %d must be < 10", s)
			}
		})
	}
	for s, want := range tinyFloat {
		got := formatDecimal(want.digits, want.k, hFloat)
		t.Run(got, func(t *testing.T) {
			if s >= 10 {
				t.Fatalf("tinyFloat key %d must be < 10", s)
			}
		})
	}
}
