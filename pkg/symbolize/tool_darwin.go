// Copyright 2026 stackdump project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package symbolize

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/verditelabs/stackdump/pkg/osutil"
)

// translator is the external address-to-source tool. A var so that tests
// can point it at a nonexistent binary to exercise the fallback tier.
var translator = "xcrun"

const toolTimeout = time.Minute

func (s *Symbolizer) haveTool() bool {
	// atos resolves via the process id and the OS symbol server,
	// it does not need the executable path.
	return true
}

func (s *Symbolizer) runTool(pc uintptr) ([]string, error) {
	cmd := osutil.Command(translator, "atos", fmt.Sprintf("0x%x", pc), "-p", strconv.Itoa(os.Getpid()))
	out, err := osutil.Run(toolTimeout, cmd)
	if err != nil {
		return nil, osutil.PrependContext("atos", err)
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
