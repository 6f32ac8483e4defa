// Copyright 2026 stackdump project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package debugger

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/verditelabs/stackdump/pkg/osutil"
)

const attachSupported = true

// AllowTracing relaxes Yama ptrace restrictions so that any process (in
// particular the debugger child we spawn, but also external tools poking
// at a hung test) may attach to us. Errors are ignored: either the
// security module is absent and nothing needs relaxing, or the dump will
// fail later with a notice anyway.
func AllowTracing() {
	unix.Prctl(unix.PR_SET_PTRACER, unix.PR_SET_PTRACER_ANY, 0, 0, 0)
}

// Attach spawns the debugger attached to us and waits for it to exit.
// There is deliberately no timeout: a debugger that sits there is either
// the user working (interactive mode) or an accepted crash-path risk.
func Attach(w io.Writer, mode Mode, cfg Config) error {
	AllowTracing()
	tool := cfg.Tool
	if tool == "" {
		tool = "gdb"
	}
	// Pin the goroutine so that the thread id we hand to gdb is the
	// thread that is actually making this call.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	id := attachID(cfg)

	if mode == ModeInteractive {
		fmt.Fprintf(w, "Invoking %v for debugging (%v=%v)...\n", tool, EnvDebug, os.Getenv(EnvDebug))
		// Plain exec.Command: the debugger must stay in our process
		// group to own the terminal.
		cmd := exec.Command(tool, "-p", id)
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("failed to run %q: %w", cmd.Args, err)
		}
		return nil
	}

	fmt.Fprintf(w, "Invoking %v for stack trace...\n", tool)
	// -n: don't load config files, they can break the options below.
	// -batch: non-interactive, suppress banners as much as possible.
	// Stdin stays closed so that gdb does not start a pager.
	cmd := osutil.Command(tool, "-n", "-batch", "-p", id, "-ex", batchCommand())
	cmd.Stdout = w
	cmd.Stderr = w
	return osutil.RunAttached(cmd)
}

func attachID(cfg Config) string {
	if cfg.UsePID || os.Getenv(EnvUsePID) != "" {
		return strconv.Itoa(os.Getpid())
	}
	return strconv.Itoa(unix.Gettid())
}
