// Copyright 2026 stackdump project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

//go:build race

package stacktrace

import (
	"fmt"
)

// Capturing a stack from the signal path makes calls the race runtime
// considers signal-unsafe. Suppressing those warnings has not worked out,
// so we warn the user about them instead.
func printRaceNote() {
	fmt.Fprintf(out, "==> NOTE: any above warnings about \"signal-unsafe call\" are\n"+
		"==> ignorable, as they are expected when generating a stack\n"+
		"==> trace because of a signal under the race detector. Consider\n"+
		"==> why the signal was generated to begin with, and the stack\n"+
		"==> trace in the race report can be useful for that.\n")
}
