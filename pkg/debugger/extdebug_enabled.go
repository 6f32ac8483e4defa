// Copyright 2026 stackdump project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

//go:build stackdump_extdebug

package debugger

// The stackdump_extdebug tag makes the debugger the preferred stack dump
// tier even without the environment opt-in. Useful for builds where the
// built-in unwinder produces mediocre results (e.g. heavy cgo).
const buildDebugFirst = true
