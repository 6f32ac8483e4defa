// Copyright 2026 stackdump project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verditelabs/stackdump/pkg/unwind"
)

func TestLoadData(t *testing.T) {
	type Test struct {
		data string
		ok   bool
		opts Options
	}
	tests := []Test{
		{
			data: `{"debugger": "lldb", "attach_pid": true, "max_frames": 10}`,
			ok:   true,
			opts: Options{Debugger: "lldb", AttachPID: true, MaxFrames: 10},
		},
		{
			// Comment lines are stripped before parsing.
			data: `
				# full-line comment
				{
					# another one
					"debugger": "gdb"
				}
			`,
			ok:   true,
			opts: Options{Debugger: "gdb"},
		},
		{
			data: `{"unknown_field": 1}`,
			ok:   false,
		},
		{
			data: `garbage`,
			ok:   false,
		},
		{
			data: ``,
			ok:   false,
		},
	}
	for i, test := range tests {
		var opts Options
		err := LoadData([]byte(test.data), &opts)
		if test.ok {
			require.NoError(t, err, "test #%v", i)
			assert.Equal(t, test.opts, opts, "test #%v", i)
		} else {
			assert.Error(t, err, "test #%v", i)
		}
	}
}

func TestLoadFile(t *testing.T) {
	var opts Options
	assert.Error(t, LoadFile("", &opts))
	assert.Error(t, LoadFile(filepath.Join(t.TempDir(), "nonexistent"), &opts))

	file := filepath.Join(t.TempDir(), "stackdump.cfg")
	saved := Options{Debugger: "gdb", MaxFrames: 50}
	require.NoError(t, SaveFile(file, &saved))
	require.NoError(t, LoadFile(file, &opts))
	assert.Equal(t, saved, opts)
}

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, (&Options{}).Validate())
	assert.NoError(t, (&Options{MaxFrames: unwind.MaxFrames}).Validate())
	assert.Error(t, (&Options{MaxFrames: -1}).Validate())
	assert.Error(t, (&Options{MaxFrames: unwind.MaxFrames + 1}).Validate())
}

func TestDebuggerConfig(t *testing.T) {
	opts := Options{Debugger: "lldb", AttachPID: true}
	cfg := opts.DebuggerConfig()
	assert.Equal(t, "lldb", cfg.Tool)
	assert.True(t, cfg.UsePID)
}
