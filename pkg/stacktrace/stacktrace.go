// Copyright 2026 stackdump project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package stacktrace is the host-facing facade of the stack dump facility.
// It composes the raw unwinder, the symbolizer and the external debugger
// attacher into four operations: install the fault signal handler, print
// the current stack, save a stack for later, and print-and-release a saved
// stack. Everything is best-effort: failures degrade tier by tier down to
// raw addresses and are never surfaced to the host as errors.
package stacktrace

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/verditelabs/stackdump/pkg/debugger"
	"github.com/verditelabs/stackdump/pkg/symbolize"
	"github.com/verditelabs/stackdump/pkg/unwind"
)

// All diagnostic output goes to stderr. Overridable for tests.
var out io.Writer = os.Stderr

// SetOutput redirects diagnostic output and returns the previous sink.
// Intended for tests.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

var attachConfig debugger.Config

// SetDebuggerConfig sets the debugger attach configuration used by
// PrintStack and the fault handler. The environment opt-ins
// (debugger.EnvDebug, debugger.EnvUsePID) still apply on top.
func SetDebuggerConfig(cfg debugger.Config) {
	attachConfig = cfg
}

var (
	symbOnce sync.Once
	symb     *symbolize.Symbolizer
)

func symbolizer() *symbolize.Symbolizer {
	symbOnce.Do(func() {
		symb = symbolize.New()
	})
	return symb
}

// PrintStack prints the current goroutine's stack to stderr, skipping the
// first skip frames of the capture. If the external debugger tier is
// engaged it is tried first; on failure a one-line notice is printed and
// the built-in unwinder takes over.
func PrintStack(skip int) {
	// +1 hides PrintStack itself.
	printStack(debugger.Engaged(), debugger.InteractiveRequested(), skip+1)
}

func printStack(engaged, interactive bool, skip int) {
	if engaged {
		if interactive {
			// Interactive mode has no fallback: the user asked for
			// a debugger, failure just returns control.
			debugger.Attach(out, debugger.ModeInteractive, attachConfig)
			return
		}
		if err := debugger.Attach(out, debugger.ModeStackDump, attachConfig); err == nil {
			return
		}
		fmt.Fprintf(out, "debugger attach failed; falling back on built-in unwinder...\n")
	}
	// +1 hides printStack itself.
	PrintFrames(unwind.Capture(skip+1, unwind.MaxFrames))
}

// PrintFrames symbolizes and prints an already-captured sequence of return
// addresses, numbered from zero, without performing a new capture.
func PrintFrames(pcs []uintptr) {
	s := symbolizer()
	for i, pc := range pcs {
		fmt.Fprintf(out, "#%-2d  ", i)
		s.WriteLine(out, pc, s.Symbol(pc))
	}
}

// Stack is a saved stack capture. It is exclusively owned by the holder
// of the pointer until PrintAndRelease consumes it.
type Stack struct {
	pcs      []uintptr
	released bool
}

// SaveStack captures up to unwind.MaxFrames return addresses of the
// calling goroutine, skipping the first skip frames, and returns an owned
// capture for later printing.
func SaveStack(skip int) *Stack {
	// +1 hides SaveStack itself.
	return &Stack{pcs: unwind.Capture(skip+1, unwind.MaxFrames)}
}

// Frames returns the captured return addresses.
func (s *Stack) Frames() []uintptr {
	s.check()
	return s.pcs
}

// PrintAndRelease prints the saved stack and releases it. The Stack must
// not be used afterwards; any reuse panics.
func (s *Stack) PrintAndRelease() {
	s.check()
	PrintFrames(s.pcs)
	s.released = true
	s.pcs = nil
}

func (s *Stack) check() {
	if s.released {
		panic("stacktrace: saved stack used after release")
	}
}
