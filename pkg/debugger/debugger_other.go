// Copyright 2026 stackdump project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

//go:build !linux

package debugger

import (
	"io"
)

const attachSupported = false

func AllowTracing() {
}

func Attach(w io.Writer, mode Mode, cfg Config) error {
	return ErrNotSupported
}
