// Copyright 2026 stackdump project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

//go:build linux || freebsd || netbsd || openbsd

package symbolize

import (
	"fmt"
	"strings"
	"time"

	"github.com/verditelabs/stackdump/pkg/osutil"
)

// translator is the external address-to-source tool. A var so that tests
// can point it at a nonexistent binary to exercise the fallback tier.
var translator = "addr2line"

const toolTimeout = time.Minute

func (s *Symbolizer) haveTool() bool {
	return s.exe != ""
}

// runTool asks addr2line to translate pc against the executable image.
// -f prints the function name, -i unwinds inlined frames, -C demangles.
func (s *Symbolizer) runTool(pc uintptr) ([]string, error) {
	cmd := osutil.Command(translator, fmt.Sprintf("0x%x", pc), "-e", s.exe, "-f", "-i", "-C")
	out, err := osutil.Run(toolTimeout, cmd)
	if err != nil {
		return nil, osutil.PrependContext("addr2line", err)
	}
	return splitLines(out), nil
}

func splitLines(out []byte) []string {
	text := strings.TrimRight(string(out), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
