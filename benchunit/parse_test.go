// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import "testing"

func TestClassOf(t *testing.T) {
	test := func(unit string, cls Class) {
		t.Helper()
		got := ClassOf(unit)
		if got != cls {
			t.Errorf("for %s, want %s, got %s", unit, cls, got)
		}
	}
	test("", Decimal)
	test("queries/sec", Decimal)
	test("ops/s", Decimal)
	test("sec/B", Decimal)
	test("sec/MB", Decimal)

	test("B/op", Binary)
	test("bytes/op", Binary)
	test("B/s", Binary)
	test("disk-B/sec", Binary)

	test("MB/Sec", Plain)
	test("MB/sec", Plain)
	test("MiB/s", Plain)
	test("KB per sec", Plain)
	test("ms/op", Plain)
	test("ns/op", Plain)
}
