// Copyright 2026 stackdump project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

//go:build !unix

package stacktrace

// No usable fault-signal backend on this OS, Install is a no-op.
// PrintStack/SaveStack still work through the built-in unwinder.
func Install() {
}
