// Copyright 2026 stackdump project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package unwind

import (
	"testing"
)

func TestCaptureSkip(t *testing.T) {
	pcs0 := Capture(0, MaxFrames)
	pcs2 := Capture(2, MaxFrames)
	if len(pcs0) == 0 {
		t.Fatal("empty capture")
	}
	if want := len(pcs0) - 2; len(pcs2) != want {
		t.Fatalf("skip=2 returned %v frames, want %v", len(pcs2), want)
	}
	// Frames above the skipped prefix are the same stack.
	for i, pc := range pcs2 {
		if pc != pcs0[i+2] {
			t.Fatalf("frame %v: got %#x, want %#x", i, pc, pcs0[i+2])
		}
	}
}

func TestCaptureMax(t *testing.T) {
	pcs := deepStack(20, func() []uintptr {
		return Capture(0, 3)
	})
	if len(pcs) != 3 {
		t.Fatalf("max=3 returned %v frames", len(pcs))
	}
}

func TestCaptureDeep(t *testing.T) {
	pcs := deepStack(2*MaxFrames, func() []uintptr {
		return Capture(0, MaxFrames)
	})
	if len(pcs) != MaxFrames {
		t.Fatalf("deep stack returned %v frames, want %v", len(pcs), MaxFrames)
	}
}

func TestCaptureShallow(t *testing.T) {
	if pcs := Capture(1000, MaxFrames); len(pcs) != 0 {
		t.Fatalf("skipping past the stack bottom returned %v frames", len(pcs))
	}
}

func TestCaptureBounds(t *testing.T) {
	for skip := 0; skip <= 5; skip++ {
		for _, max := range []int{-1, 0, 1, 2, 10, MaxFrames, MaxFrames + 10} {
			pcs := Capture(skip, max)
			limit := max
			if max <= 0 || max > MaxFrames {
				limit = MaxFrames
			}
			if len(pcs) > limit {
				t.Fatalf("skip=%v max=%v returned %v frames", skip, max, len(pcs))
			}
		}
	}
}

//go:noinline
func deepStack(n int, f func() []uintptr) []uintptr {
	if n == 0 {
		return f()
	}
	return deepStack(n-1, f)
}
