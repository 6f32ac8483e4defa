// Copyright 2026 stackdump project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package config

import (
	"fmt"

	"github.com/verditelabs/stackdump/pkg/debugger"
	"github.com/verditelabs/stackdump/pkg/unwind"
)

// Options are the runtime knobs of the stack dump facility. Everything
// here also has an environment/flag counterpart; the config file exists
// for hosts that prefer explicit configuration over ambient state.
type Options struct {
	// Debugger binary looked up in PATH, "gdb" if empty.
	Debugger string `json:"debugger,omitempty"`
	// AttachPID attaches the debugger to the process id instead of the
	// calling thread id.
	AttachPID bool `json:"attach_pid,omitempty"`
	// MaxFrames caps captured stack depth, [1, unwind.MaxFrames].
	MaxFrames int `json:"max_frames,omitempty"`
}

func (opts *Options) Validate() error {
	if opts.MaxFrames < 0 || opts.MaxFrames > unwind.MaxFrames {
		return fmt.Errorf("max_frames must be in [0, %v], got %v", unwind.MaxFrames, opts.MaxFrames)
	}
	return nil
}

// DebuggerConfig maps the options onto the debugger attach configuration.
func (opts *Options) DebuggerConfig() debugger.Config {
	return debugger.Config{
		Tool:   opts.Debugger,
		UsePID: opts.AttachPID,
	}
}
