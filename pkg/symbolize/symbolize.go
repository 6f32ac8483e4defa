// Copyright 2026 stackdump project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package symbolize translates raw return addresses into human-readable
// function/file/line strings. Addresses known to the Go runtime are resolved
// in-process; everything else goes through an external address-to-source
// tool (addr2line on ELF systems, atos on darwin) spawned per frame, with
// the executable's symbol table as an intermediate fallback. Failures at
// any tier degrade to the raw hex address.
package symbolize

import (
	"fmt"
	"io"
	"runtime"

	"github.com/verditelabs/stackdump/pkg/exepath"
)

// Frame is one structured symbolization result.
type Frame struct {
	PC     uintptr
	Func   string
	File   string
	Line   int
	Inline bool
}

// Symbolizer resolves return addresses of the current process.
// The zero value is not usable; construct with New.
type Symbolizer struct {
	exe    string // executable path, empty if unresolvable
	cache  cache
	symtab symtab
}

// New returns a Symbolizer bound to the currently running executable.
// If the executable path cannot be resolved, the returned Symbolizer
// still works, but only prints raw addresses for non-Go frames.
func New() *Symbolizer {
	exe, _ := exepath.Get()
	return &Symbolizer{exe: exe}
}

// Stack resolves a captured stack into structured frames. Addresses the
// runtime knows about get full function/file/line info (including frames
// inlined into their caller); the rest fall back to the symbol table or
// the raw address.
func (s *Symbolizer) Stack(pcs []uintptr) []Frame {
	if len(pcs) == 0 {
		return nil
	}
	var out []Frame
	frames := runtime.CallersFrames(pcs)
	for {
		fr, more := frames.Next()
		f := Frame{PC: fr.PC, Func: fr.Function, File: fr.File, Line: fr.Line}
		f.Inline = fr.Func == nil && fr.Function != ""
		if f.Func == "" {
			if name := s.symtab.find(s.exe, uint64(fr.PC)); name != "" {
				f.Func = name
			} else {
				f.Func = fmt.Sprintf("0x%x", fr.PC)
			}
		}
		out = append(out, f)
		if !more {
			break
		}
	}
	return out
}

// Symbol returns the compiled-in symbol name for pc, or "" if neither the
// runtime nor the executable's symbol table knows the address.
func (s *Symbolizer) Symbol(pc uintptr) string {
	frames := runtime.CallersFrames([]uintptr{pc})
	if fr, _ := frames.Next(); fr.Function != "" {
		return fr.Function
	}
	return s.symtab.find(s.exe, uint64(pc))
}

// WriteLine writes a best-effort one-line translation of pc to w:
// the compiled-in symbol if any, followed by the external tool's output
// (stdout lines echoed with the trailing newline stripped, tab-separated),
// or the raw address if the tool is unavailable or fails. Never returns
// an error: this runs on the crash path where there is no one to tell.
func (s *Symbolizer) WriteLine(w io.Writer, pc uintptr, symbol string) {
	if symbol != "" {
		fmt.Fprintf(w, "%s ", symbol)
	}
	if s.haveTool() {
		if lines, err := s.translate(pc); err == nil && len(lines) > 0 {
			for _, line := range lines {
				fmt.Fprintf(w, "%s\t", line)
			}
			fmt.Fprintf(w, "\n")
			return
		}
	}
	fmt.Fprintf(w, " 0x%x\n", pc)
}

// translate runs the external tool for pc and returns its stdout lines.
// Results (including failures) are memoized per address.
func (s *Symbolizer) translate(pc uintptr) ([]string, error) {
	return s.cache.get(pc, func() ([]string, error) {
		return s.runTool(pc)
	})
}
