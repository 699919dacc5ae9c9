// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"math"
	"testing"
)

func TestScale(t *testing.T) {
	var cls Class
	test := func(num float64, want, wantPred string) {
		t.Helper()

		got := Scale(num, cls)
		if got != want {
			t.Errorf("%s: for %v, got %s, want %s", cls, num, got, want)
		}

		// Check what happens when this number is exactly on
		// the crux between two scale factors.
		pred := math.Nextafter(num, 0)
		got = Scale(pred, cls)
		if got != wantPred {
			t.Errorf("%s: for %v-ε, got %s, want %s", cls, num, got, wantPred)
		}
	}

	cls = Decimal
	test(0, "0.000", "0.000")
	test(1, "1.000", "1.000")
	test(-1, "-1.000", "-1.000")
	test(99995000, "100.0M", "99.99M")
	test(9999500, "10.00M", "9.999M")
	test(999950, "1.000M", "999.9k")
	test(99995, "100.0k", "99.99k")
	test(999.95, "1.000k", "999.9")
	test(.99995, "1.000", "999.9m")
	test(.00099995, "1.000m", "999.9µ")

	cls = Binary
	test(0, "0.000", "0.000")
	test(99.995*(1<<20), "100.0Mi", "99.99Mi")
	test(.99995*(1<<20), "1.000Mi", "1023.9Ki")
	test(.99995*(1<<10), "1.000Ki", "1023.9")
	test(.99995, "1.000", "0.9999")

	cls = Plain
	test(0, "0.000", "0.000")
	test(12345678, "12345678.0", "12345678.0")
	test(99.995, "100.0", "99.99")
	test(9.9995, "10.00", "9.999")
	test(.99995, "1.000", "0.9999")
	test(.0099995, "0.01000", "0.009999")
}

func TestTrim(t *testing.T) {
	test := func(vals []float64, cls Class, want ...string) {
		t.Helper()
		s := CommonScale(vals, cls)
		for i, v := range vals {
			if got := s.Trim(v); got != want[i] {
				t.Errorf("%s %v: for %v, got %s, want %s", cls, vals, v, got, want[i])
			}
		}
	}

	// Query throughput axis.
	test([]float64{0, 500000, 1e6, 1.5e6}, Decimal, "0", "500k", "1000k", "1500k")
	test([]float64{2e6, 4e6}, Decimal, "2M", "4M")
	// MB/Sec axis.
	test([]float64{0, 100, 200, 250}, Plain, "0", "100", "200", "250")
	test([]float64{0.5, 1, 1.5}, Plain, "0.5", "1", "1.5")
	test([]float64{-0.0001, 0}, Plain, "-0.0001", "0")
}

func TestNoOpScaler(t *testing.T) {
	test := func(val float64, want string) {
		t.Helper()
		got := NoOpScaler.Format(val)
		if got != want {
			t.Errorf("for %v, got %s, want %s", val, got, want)
		}
	}

	test(1, "1")
	test(0.5, "0.5")
	test(123456789, "123456789")
	test(123.456789, "123.456789")
}
