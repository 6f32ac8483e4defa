// Copyright 2026 stackdump project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package tool contains helpers for implementation of command line tools.
package tool

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
)

var flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to file")

// Init parses command line flags and sets up common tool plumbing
// (currently CPU profiling). Use as: defer tool.Init()().
func Init() func() {
	flag.Parse()
	shutdown := func() {}
	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			Failf("failed to create cpuprofile file: %v", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			Failf("failed to start cpu profiling: %v", err)
		}
		shutdown = func() {
			pprof.StopCPUProfile()
			f.Close()
		}
	}
	return shutdown
}

func Failf(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
	os.Exit(1)
}

func Fail(err error) {
	Failf("%v", err)
}
