// Copyright 2026 stackdump project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package log

import (
	"testing"
)

func TestCaching(t *testing.T) {
	prependTime = false
	EnableLogCaching(4, 20)

	if res := CachedLogOutput(); res != "" {
		t.Fatalf("unexpected initial output: %q", res)
	}

	Logf(0, "0")
	Logf(1, "1")
	Logf(2, "2") // not cached, verbosity too high
	Logf(1, "3")
	if res := CachedLogOutput(); res != "0\n1\n3\n" {
		t.Fatalf("unexpected output: %q", res)
	}

	// Oldest lines are evicted once maxLines is exceeded.
	Logf(0, "4")
	Logf(0, "5")
	if res := CachedLogOutput(); res != "1\n3\n4\n5\n" {
		t.Fatalf("unexpected output: %q", res)
	}

	// A line close to the memory limit evicts older entries.
	Logf(0, "0123456789012345678")
	if res := CachedLogOutput(); res != "5\n0123456789012345678\n" {
		t.Fatalf("unexpected output: %q", res)
	}

	Logf(0, "6")
	if res := CachedLogOutput(); res != "0123456789012345678\n6\n" {
		t.Fatalf("unexpected output: %q", res)
	}
}
