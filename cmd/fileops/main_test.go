// Copyright 2025 winshell
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/winshell/fileops/pkg/shell"
	"github.com/winshell/fileops/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// newTestApp wires an app against mocks and buffers so every byte of
// output can be inspected.
func newTestApp(svc shell.Service, dialog shell.Dialog) (*app, *bytes.Buffer, *bytes.Buffer, context.Context) {
	out := &bytes.Buffer{}
	errs := &bytes.Buffer{}
	ctx := zerolog.New(errs).WithContext(context.Background())
	a := &app{
		service: svc,
		dialog:  dialog,
		stdout:  out,
		stderr:  errs,
		users:   status.NewUserLogger(ctx, errs),
	}
	return a, out, errs, ctx
}

// capturingService records the operation handed to the shell and
// replies with the given result.
func capturingService(result shell.Result) (*shell.MockService, *shell.FileOp) {
	svc := &shell.MockService{}
	got := &shell.FileOp{}
	svc.On("Run", mock.Anything, mock.AnythingOfType("shell.FileOp")).
		Run(func(args mock.Arguments) { *got = args.Get(1).(shell.FileOp) }).
		Return(result, nil)
	return svc, got
}

func TestRunTokensProtocolLine(t *testing.T) {
	tests := []struct {
		name     string
		result   shell.Result
		wantLine string
		wantCode int
	}{
		{
			name:     "completed_prints_ok",
			result:   shell.Result{Status: 0},
			wantLine: "ok\n",
			wantCode: 0,
		},
		{
			name:     "cancelled_sentinel_prints_cancelled",
			result:   shell.Result{Status: 0x4C7},
			wantLine: "cancelled\n",
			wantCode: 0x4C7,
		},
		{
			name:     "aborted_prints_cancelled_and_keeps_the_status",
			result:   shell.Result{Status: 0, Aborted: true},
			wantLine: "cancelled\n",
			wantCode: 0,
		},
		{
			name:     "failure_prints_the_error_line",
			result:   shell.Result{Status: 0x71},
			wantLine: "error 0x71: The source and destination files are the same file.\n",
			wantCode: 0x71,
		},
		{
			name:     "high_status_prints_its_fixed_message",
			result:   shell.Result{Status: 0x10000},
			wantLine: "error 0x10000: An unspecified error occurred on the destination.\n",
			wantCode: 0x10000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := capturingService(tt.result)
			dialog := &shell.MockDialog{}
			a, out, _, ctx := newTestApp(svc, dialog)

			err := a.runTokens(ctx, "copy", []string{"--from", `C:\a.txt`, "--to", `D:\backup`})
			require.NoError(t, err, "runTokens should not error")
			assert.Equal(t, tt.wantLine, out.String(), "stdout should carry exactly the protocol line")
			assert.Equal(t, tt.wantCode, a.code, "exit code should be the raw status")
			dialog.AssertNotCalled(t, "Warn", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestRunTokensShowErrorsDialog(t *testing.T) {
	svc, _ := capturingService(shell.Result{Status: 0x71})
	dialog := &shell.MockDialog{}
	dialog.On("Warn", mock.Anything,
		"Unable to copy files (ERR 0x71)",
		"The source and destination files are the same file.",
	).Return(nil)

	a, out, _, ctx := newTestApp(svc, dialog)
	err := a.runTokens(ctx, "copy", []string{"--show-errors", "--from", `C:\a`, "--to", `C:\a`})
	require.NoError(t, err, "runTokens should not error")
	assert.Equal(t, "error 0x71: The source and destination files are the same file.\n", out.String(), "stdout line should still be printed")
	dialog.AssertExpectations(t)
}

func TestRunTokensValidationFailure(t *testing.T) {
	tests := []struct {
		name          string
		defaultAction string
		args          []string
		wantLine      string
	}{
		{
			name:     "no_action",
			args:     []string{"--from", `C:\a`},
			wantLine: "error: action is required",
		},
		{
			name:     "unknown_action",
			args:     []string{"rename", "--from", `C:\a`},
			wantLine: "error: action must be one of: copy, move, delete",
		},
		{
			name:          "no_sources",
			defaultAction: "copy",
			args:          []string{},
			wantLine:      "at least one source path is required",
		},
		{
			name:          "copy_without_destination",
			defaultAction: "copy",
			args:          []string{"--from", `C:\a`},
			wantLine:      "error: at least one destination path is required when action is not delete",
		},
		{
			name:          "delete_with_destination",
			defaultAction: "delete",
			args:          []string{"--from", `C:\a`, "--to", `D:\`},
			wantLine:      "error: cannot specify destination path when action is delete",
		},
		{
			name:          "more_destinations_than_sources",
			defaultAction: "copy",
			args:          []string{"--from", `C:\a`, "--to", `D:\a`, `D:\b`},
			wantLine:      "error: number of destination paths cannot be more than number of source paths",
		},
		{
			name:          "unpaired_destinations",
			defaultAction: "copy",
			args:          []string{"--from", `C:\a`, `C:\b`, `C:\c`, "--to", `D:\a`, `D:\b`},
			wantLine:      "error: number of source and destination paths must match when more than one destination path is specified",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &shell.MockService{}
			a, out, _, ctx := newTestApp(svc, &shell.MockDialog{})

			err := a.runTokens(ctx, tt.defaultAction, tt.args)
			require.NoError(t, err, "runTokens should not error")
			assert.Equal(t, 1, a.code, "validation failures exit 1")

			lines := strings.SplitN(out.String(), "\n", 2)
			assert.Equal(t, tt.wantLine, lines[0], "first stdout line should be the validation message")
			assert.Contains(t, out.String(), "usage:", "usage text should follow")
			svc.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
		})
	}
}

func TestRunTokensBareTokenOverridesSubcommand(t *testing.T) {
	svc, got := capturingService(shell.Result{})
	a, out, _, ctx := newTestApp(svc, &shell.MockDialog{})

	err := a.runTokens(ctx, "copy", []string{"delete", "--from", `C:\old`})
	require.NoError(t, err, "runTokens should not error")
	assert.Equal(t, "ok\n", out.String(), "operation should complete")
	assert.Equal(t, shell.OpDelete, got.Op, "the bare action token should win over the subcommand name")
	assert.Equal(t, shell.MultiString{0}, got.To, "delete should send an empty destination list")
}

func TestRunTokensConfigDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "fileops.yaml")
	configContent := `
show_errors: true
messages:
  "0x71": "Those are the same file."
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644), "writing config file")

	svc, _ := capturingService(shell.Result{Status: 0x71})
	dialog := &shell.MockDialog{}
	dialog.On("Warn", mock.Anything,
		"Unable to copy files (ERR 0x71)",
		"Those are the same file.",
	).Return(nil)

	a, out, _, ctx := newTestApp(svc, dialog)
	err := a.runTokens(ctx, "copy", []string{"--config=" + configPath, "--from", `C:\a`, "--to", `C:\a`})
	require.NoError(t, err, "runTokens should not error")
	assert.Equal(t, "error 0x71: Those are the same file.\n", out.String(), "the configured message should replace the builtin text")
	dialog.AssertExpectations(t)
}

func TestRunTokensDebugTrace(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	svc, _ := capturingService(shell.Result{})
	a, out, errs, ctx := newTestApp(svc, &shell.MockDialog{})

	err := a.runTokens(ctx, "move", []string{"--debug", "--from", `C:\a.txt`, `C:\b.txt`, "--to", `D:\a.txt`, `D:\b.txt`})
	require.NoError(t, err, "runTokens should not error")
	assert.Equal(t, "ok\n", out.String(), "the protocol line must stay alone on stdout")
	assert.Contains(t, errs.String(), "[launching move]", "stderr should carry the launch header")
	assert.Contains(t, errs.String(), "2 sources → 2 destinations", "stderr should carry the counts")
	assert.Contains(t, errs.String(), `C:\a.txt`, "stderr should trace each source path")
	assert.Contains(t, errs.String(), "paired", "one-to-one destinations should be labeled")
}

func TestRunTokensConfigFailure(t *testing.T) {
	svc := &shell.MockService{}
	a, out, errs, ctx := newTestApp(svc, &shell.MockDialog{})

	err := a.runTokens(ctx, "copy", []string{"--config=/nonexistent/fileops.yaml", "--from", `C:\a`, "--to", `D:\`})
	require.NoError(t, err, "runTokens should not error")
	assert.Equal(t, 1, a.code, "config failures exit 1")
	assert.Empty(t, out.String(), "nothing goes to stdout")
	assert.Contains(t, errs.String(), "Loading configuration", "stderr should explain the failure")
	svc.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestRunTokensMachineryFailure(t *testing.T) {
	svc := &shell.MockService{}
	svc.On("Run", mock.Anything, mock.Anything).Return(shell.Result{}, errors.New("shell32 unavailable"))

	a, out, errs, ctx := newTestApp(svc, &shell.MockDialog{})
	err := a.runTokens(ctx, "copy", []string{"--from", `C:\a`, "--to", `D:\`})
	require.NoError(t, err, "runTokens should not error")
	assert.Equal(t, 1, a.code, "machinery failures exit 1")
	assert.Empty(t, out.String(), "no status means no protocol line")
	assert.Contains(t, errs.String(), "Executing file operation", "stderr should explain the failure")
}

func TestRootCommandRouting(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantOp   shell.Op
		wantCode int
	}{
		{
			name:   "subcommand_dispatch",
			args:   []string{"copy", "--from", `C:\a`, "--to", `D:\`},
			wantOp: shell.OpCopy,
		},
		{
			name:   "flag_before_the_action_token",
			args:   []string{"--show-errors", "move", "--from", `C:\a`, "--to", `D:\a`},
			wantOp: shell.OpMove,
		},
		{
			name:   "delete_without_destinations",
			args:   []string{"delete", "--from", `C:\old`},
			wantOp: shell.OpDelete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, got := capturingService(shell.Result{})
			a, out, _, ctx := newTestApp(svc, &shell.MockDialog{})

			root := newRootCmd(a)
			root.SetArgs(tt.args)
			require.NoError(t, root.ExecuteContext(ctx), "command should execute")
			assert.Equal(t, "ok\n", out.String(), "operation should complete")
			assert.Equal(t, tt.wantOp, got.Op, "tokens should select the operation")
			assert.Equal(t, tt.wantCode, a.code, "exit code should be stored on the app")
		})
	}
}

func TestVersionCommand(t *testing.T) {
	svc := &shell.MockService{}
	a, out, _, ctx := newTestApp(svc, &shell.MockDialog{})

	root := newRootCmd(a)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.ExecuteContext(ctx), "command should execute")
	assert.Equal(t, 0, a.code, "version exits zero")
	assert.Contains(t, out.String(), "fileops version info", "build information should be printed")
	svc.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestVersionAsLaterTokenStaysAnAction(t *testing.T) {
	svc := &shell.MockService{}
	a, out, _, ctx := newTestApp(svc, &shell.MockDialog{})

	root := newRootCmd(a)
	root.SetArgs([]string{"--show-errors", "version", "--from", `C:\a`})
	require.NoError(t, root.ExecuteContext(ctx), "command should execute")
	assert.Equal(t, 1, a.code, "an unknown action is a validation failure")
	assert.Contains(t, out.String(), "error: action must be one of: copy, move, delete", "the token should be judged as an action")
	svc.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestRootCommandWithoutArguments(t *testing.T) {
	svc := &shell.MockService{}
	a, out, _, ctx := newTestApp(svc, &shell.MockDialog{})

	root := newRootCmd(a)
	root.SetArgs([]string{})
	require.NoError(t, root.ExecuteContext(ctx), "command should execute")
	assert.Equal(t, 1, a.code, "a bare invocation is a validation failure")
	assert.Contains(t, out.String(), "error: action is required", "the missing action should be reported")
	assert.Contains(t, out.String(), "usage:", "usage text should follow")
	svc.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}
