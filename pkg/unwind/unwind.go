// Copyright 2026 stackdump project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package unwind captures raw return addresses from the calling goroutine's
// stack. It is the bottom tier of the stack dump pipeline: everything above
// it (symbolization, printing, the fault handler) consumes its output.
package unwind

import (
	"runtime"
)

// MaxFrames is the hard cap on the number of captured return addresses.
const MaxFrames = 100

// Capture returns the return addresses of the calling goroutine's stack,
// most recent call first, omitting the first skip caller frames and
// capturing at most max entries. Returns fewer (possibly zero) frames if
// the stack is shallower. Capture itself and its runtime helper are never
// included.
//
// Note that this allocates; it is called from the fault signal handler
// anyway, which is an accepted crash-path trade-off.
func Capture(skip, max int) []uintptr {
	if max <= 0 || max > MaxFrames {
		max = MaxFrames
	}
	if skip < 0 {
		skip = 0
	}
	pcs := make([]uintptr, max)
	// +2 skips runtime.Callers and Capture itself.
	n := runtime.Callers(skip+2, pcs)
	return pcs[:n]
}
