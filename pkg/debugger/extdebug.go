// Copyright 2026 stackdump project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

//go:build !stackdump_extdebug

package debugger

// Builds without the stackdump_extdebug tag only engage the debugger
// when the user opts in via EnvDebug.
const buildDebugFirst = false
