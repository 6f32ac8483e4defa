// Copyright 2026 stackdump project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

//go:build !linux && !freebsd && !netbsd && !openbsd && !darwin

package symbolize

import (
	"fmt"
)

// No known address-to-source tool on this OS, degrade to raw addresses.

func (s *Symbolizer) haveTool() bool {
	return false
}

func (s *Symbolizer) runTool(pc uintptr) ([]string, error) {
	return nil, fmt.Errorf("no symbolization tool for this OS (pc 0x%x)", pc)
}
