// Copyright 2026 stackdump project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package exepath resolves the absolute path of the running executable image.
// The result is computed once and cached for the process lifetime, since the
// symbolizer re-queries it for every frame it translates.
package exepath

import (
	"os"
	"path/filepath"
	"sync"
)

var (
	once sync.Once
	path string
	err  error
)

// Get returns the absolute filesystem path of the currently running
// executable, or an error if the platform offers no way to find it.
// Both the path and the error are memoized; the answer does not change
// for the lifetime of the process.
func Get() (string, error) {
	once.Do(resolve)
	return path, err
}

func resolve() {
	// os.Executable picks the right mechanism per OS
	// (/proc/self/exe on linux, KERN_PROC_PATHNAME on freebsd, etc).
	path, err = os.Executable()
	if err != nil {
		path = ""
		return
	}
	// The /proc link may point through symlinks (e.g. deleted or
	// bind-mounted binaries); addr2line wants the real file.
	if resolved, rerr := filepath.EvalSymlinks(path); rerr == nil {
		path = resolved
	}
}
