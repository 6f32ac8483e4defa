// Copyright 2026 stackdump project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// stackdump is a demo/diagnostic tool for the stack dump facility.
// It installs the fault signal handler, prints its own stack through the
// full debugger/unwinder pipeline, and can deliver a fault signal to
// itself to exercise the crash path end to end:
//
//	stackdump                  # print own stack and exit
//	stackdump -save            # same, via save + print-and-release
//	stackdump -raise abrt      # crash through the fault handler
//	STACKDUMP_DEBUG=1 stackdump  # hand the terminal to gdb
package main

import (
	"flag"
	"os"
	"syscall"
	"time"

	"github.com/verditelabs/stackdump/pkg/config"
	"github.com/verditelabs/stackdump/pkg/log"
	"github.com/verditelabs/stackdump/pkg/stacktrace"
	"github.com/verditelabs/stackdump/pkg/tool"
	"github.com/verditelabs/stackdump/pkg/unwind"
)

var (
	flagConfig = flag.String("config", "", "JSON config file (see config.Options)")
	flagSkip   = flag.Int("skip", 0, "number of leading frames to skip")
	flagSave   = flag.Bool("save", false, "save the stack first, then print-and-release it")
	flagRaise  = flag.String("raise", "", "deliver a fault signal to self (ill, segv, bus, abrt)")
)

var signals = map[string]syscall.Signal{
	"ill":  syscall.SIGILL,
	"segv": syscall.SIGSEGV,
	"bus":  syscall.SIGBUS,
	"abrt": syscall.SIGABRT,
}

func main() {
	defer tool.Init()()
	opts := new(config.Options)
	if *flagConfig != "" {
		if err := config.LoadFile(*flagConfig, opts); err != nil {
			tool.Fail(err)
		}
		if err := opts.Validate(); err != nil {
			tool.Fail(err)
		}
	}
	stacktrace.SetDebuggerConfig(opts.DebuggerConfig())
	stacktrace.Install()

	if *flagRaise != "" {
		sig, ok := signals[*flagRaise]
		if !ok {
			tool.Failf("unknown signal %q (want ill, segv, bus or abrt)", *flagRaise)
		}
		log.Logf(0, "delivering %v to self", sig)
		proc, err := os.FindProcess(os.Getpid())
		if err != nil {
			tool.Fail(err)
		}
		if err := proc.Signal(sig); err != nil {
			tool.Fail(err)
		}
		// The handler prints diagnostics and re-raises; we never get
		// past this sleep.
		time.Sleep(time.Minute)
		tool.Failf("fault handler did not terminate the process")
	}

	switch {
	case *flagSave:
		st := stacktrace.SaveStack(*flagSkip)
		log.Logf(1, "saved %v frames", len(st.Frames()))
		st.PrintAndRelease()
	case opts.MaxFrames != 0:
		stacktrace.PrintFrames(unwind.Capture(*flagSkip, opts.MaxFrames))
	default:
		stacktrace.PrintStack(*flagSkip)
	}
}
