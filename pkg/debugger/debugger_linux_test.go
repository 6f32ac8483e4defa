// Copyright 2026 stackdump project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package debugger

import (
	"bytes"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngaged(t *testing.T) {
	// Plain builds only engage the debugger on explicit opt-in.
	t.Setenv(EnvDebug, "")
	assert.Equal(t, buildDebugFirst, Engaged())
	t.Setenv(EnvDebug, "1")
	assert.True(t, Engaged())
}

func TestAttachID(t *testing.T) {
	t.Setenv(EnvUsePID, "")
	pid := strconv.Itoa(os.Getpid())
	assert.Equal(t, pid, attachID(Config{UsePID: true}))

	t.Setenv(EnvUsePID, "1")
	assert.Equal(t, pid, attachID(Config{}))

	t.Setenv(EnvUsePID, "")
	id, err := strconv.Atoi(attachID(Config{}))
	require.NoError(t, err)
	assert.Greater(t, id, 0)
}

func TestAttachMissingTool(t *testing.T) {
	buf := new(bytes.Buffer)
	err := Attach(buf, ModeStackDump, Config{Tool: "/nonexistent/gdb-for-test"})
	require.Error(t, err)
	assert.Contains(t, buf.String(), "Invoking /nonexistent/gdb-for-test for stack trace...")
}
