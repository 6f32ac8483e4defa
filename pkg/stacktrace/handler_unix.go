// Copyright 2026 stackdump project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

//go:build unix

package stacktrace

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/verditelabs/stackdump/pkg/debugger"
)

// The fixed fatal signal set: illegal instruction, segmentation violation,
// bus error, abort.
var faultSignals = []os.Signal{
	syscall.SIGILL,
	syscall.SIGSEGV,
	syscall.SIGBUS,
	syscall.SIGABRT,
}

// Number of leading frames to drop from the fault-path capture so that
// the handler's own frames do not show up in the dump.
const handlerSkip = 3

// Install registers the fault signal handler for SIGILL, SIGSEGV, SIGBUS
// and SIGABRT, and relaxes ptrace restrictions so that external tools can
// attach and dump stacks even absent an active fault (e.g. when a test
// hangs). Re-installing just re-registers the same handler. Registration
// failures are not surfaced: this is a best-effort diagnostic hook.
func Install() {
	// Note: the Go runtime turns synchronous faults in Go code into
	// panics before we ever see them; this handler covers signals
	// delivered from outside (kill, abort from cgo, hardware faults in
	// non-Go threads).
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, faultSignals...)
	go handle(ch)
	debugger.AllowTracing()
}

func handle(ch chan os.Signal) {
	sig := <-ch
	// Reset to the default disposition strictly before any diagnostic
	// work: a second fault of the same kind must terminate the process
	// immediately instead of recursing into us.
	signal.Reset(sig)
	num := int(sig.(syscall.Signal))
	fmt.Fprintf(out, "Received signal %d (%v)\n", num, sig)
	PrintStack(handlerSkip)
	// The signal landed on whatever thread the kernel picked, not
	// necessarily anywhere near the interesting code, so follow up with
	// all goroutine stacks the way the runtime would print them.
	dumpAllGoroutines()
	printRaceNote()
	// Re-raise so the default disposition still terminates/cores.
	unix.Kill(os.Getpid(), syscall.Signal(num))
}

func dumpAllGoroutines() {
	buf := make([]byte, 1<<20)
	n := runtime.Stack(buf, true)
	out.Write(buf[:n])
}
