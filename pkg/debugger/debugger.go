// Copyright 2026 stackdump project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package debugger attaches an external debugger (gdb) to the running
// process, either interactively or in batch mode to dump the stack of the
// calling thread. It is the preferred tier of the stack dump pipeline;
// callers fall back to the built-in unwinder when Attach fails.
package debugger

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Mode selects what the attached debugger is used for.
type Mode int

const (
	// ModeStackDump runs the debugger non-interactively and prints
	// a few dozen stack frames to the diagnostic sink.
	ModeStackDump Mode = iota
	// ModeInteractive hands the terminal to the debugger and blocks
	// until the user exits it.
	ModeInteractive
)

// Config controls how the debugger is attached.
type Config struct {
	// Tool is the debugger binary looked up in PATH. Empty means gdb.
	Tool string
	// UsePID attaches to the process id instead of the calling thread id.
	// Thread-id attach is the default: `gdb -p TID` attaches to that
	// particular thread, which is what we want on the crash path, but
	// that capability is not clearly documented, hence the escape hatch.
	UsePID bool
}

const (
	// EnvDebug requests interactive debugger attachment when set to
	// a non-empty value. Read at print time, never cached.
	EnvDebug = "STACKDUMP_DEBUG"
	// EnvUsePID switches attachment to the process id, see Config.UsePID.
	EnvUsePID = "STACKDUMP_DEBUG_USE_PID"
)

// ErrNotSupported is returned by Attach on systems without per-thread
// process attach.
var ErrNotSupported = errors.New("debugger attach is not supported on this OS")

// InteractiveRequested reports whether the user asked for an interactive
// debugger via the environment.
func InteractiveRequested() bool {
	return os.Getenv(EnvDebug) != ""
}

// Engaged reports whether stack printing should try the debugger first:
// the platform must support per-thread attach, and either the build was
// configured for out-of-process debugging or the user opted in via EnvDebug.
func Engaged() bool {
	return attachSupported && (buildDebugFirst || InteractiveRequested())
}

// Frames below firstBatchFrame belong to this facility and the signal
// machinery; everything up to lastBatchFrame is "several dozen" of the
// caller's own frames.
const (
	firstBatchFrame = 4
	lastBatchFrame  = 44
)

// batchCommand builds the gdb script for ModeStackDump: print each frame
// in the window with a one-line header and no pagination.
func batchCommand() string {
	buf := new(strings.Builder)
	buf.WriteString("frame apply level")
	for level := firstBatchFrame; level <= lastBatchFrame; level++ {
		fmt.Fprintf(buf, " %v", level)
	}
	buf.WriteString(" -q frame")
	return buf.String()
}
