// Copyright 2026 stackdump project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

//go:build unix

package stacktrace

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The test re-executes itself: the child installs the handler and delivers
// SIGABRT to itself, the parent checks the diagnostic output and that the
// child died through the default disposition of the re-raised signal.
func TestFaultHandler(t *testing.T) {
	if os.Getenv("STACKTRACE_TEST_CRASH") == "1" {
		Install()
		syscall.Kill(os.Getpid(), syscall.SIGABRT)
		time.Sleep(10 * time.Second)
		t.Fatal("fault handler did not terminate the process")
	}

	exe, err := os.Executable()
	require.NoError(t, err)
	cmd := exec.Command(exe, "-test.run", "^TestFaultHandler$")
	cmd.Env = append(os.Environ(), "STACKTRACE_TEST_CRASH=1")
	out, err := cmd.CombinedOutput()
	require.Error(t, err, "child must die on the re-raised signal, output:\n%s", out)

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	status, ok := exitErr.Sys().(syscall.WaitStatus)
	require.True(t, ok)
	require.True(t, status.Signaled(), "child exited with %v instead of a signal, output:\n%s", exitErr, out)
	assert.Equal(t, syscall.SIGABRT, status.Signal())

	text := string(out)
	assert.Contains(t, text, fmt.Sprintf("Received signal %d", int(syscall.SIGABRT)))
	assert.Equal(t, 1, strings.Count(text, "Received signal"), "handler must not recurse:\n%s", text)
	// The handler follows up with stacks of all goroutines.
	assert.Contains(t, text, "goroutine ")
}

func TestInstallIdempotent(t *testing.T) {
	// Re-installing just re-registers the same handler set.
	Install()
	Install()
}
