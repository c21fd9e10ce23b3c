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

// Package launcher spawns the file-operation executable hidden and
// relays its exit code. Inputs are validated with the same rules the
// executable itself applies, so a bad invocation never reaches the
// process boundary.
package launcher

import (
	"context"
	"io"
	"os/exec"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/winshell/fileops/pkg/request"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/semaphore"
)

// 🎯 Launcher is the interface for running interactive file operations
// out of process.
type Launcher interface {
	// 🚀 Launch validates the inputs, spawns the executable hidden, and
	// returns the child's exit code. The returned code is the raw
	// operation status (0 for success, 0x4C7 for cancellation) or 1
	// when validation already failed here.
	Launch(ctx context.Context, action string, sources []string, dests []string) (int, error)
}

// RunFunc executes a prepared command and reports its exit code.
// Machinery failures (binary missing, not executable) are returned as
// errors; a started child that exits nonzero is a code, not an error.
type RunFunc func(cmd *exec.Cmd) (int, error)

// 🔧 Options configures the launcher
type Options struct {
	// Binary is the path to the file-operation executable.
	Binary string
	// ShowErrors forwards --show-errors to every invocation.
	ShowErrors bool
	// Stdout and Stderr receive the child's streams. Nil discards.
	Stdout io.Writer
	Stderr io.Writer
	// Run overrides process execution. Nil means run for real.
	Run RunFunc
}

// 🏭 New creates a new launcher
func New(opts Options) (Launcher, error) {
	if opts.Binary == "" {
		return nil, errors.New("binary path is required")
	}
	run := opts.Run
	if run == nil {
		run = runCmd
	}
	return &launcher{
		binary:     opts.Binary,
		showErrors: opts.ShowErrors,
		stdout:     opts.Stdout,
		stderr:     opts.Stderr,
		run:        run,
		slot:       semaphore.NewWeighted(1),
	}, nil
}

// 🎮 launcher implements the Launcher interface
type launcher struct {
	binary     string
	showErrors bool
	stdout     io.Writer
	stderr     io.Writer
	run        RunFunc

	// slot serializes invocations; the progress dialogs are modal per
	// operation and overlapping spawns interleave them confusingly.
	slot *semaphore.Weighted
}

func (l *launcher) Launch(ctx context.Context, action string, sources []string, dests []string) (int, error) {
	logger := zerolog.Ctx(ctx).With().
		Str("launch_id", uuid.NewString()).
		Str("action", action).
		Logger()

	req, err := request.New(action, Normalize(sources), Normalize(dests), l.showErrors)
	if err != nil {
		return 1, errors.Errorf("validating launch request: %w", err)
	}

	if err := l.slot.Acquire(ctx, 1); err != nil {
		return 0, errors.Errorf("waiting for operation slot: %w", err)
	}
	defer l.slot.Release(1)

	cmd := exec.CommandContext(ctx, l.binary, argv(req)...)
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr
	hideWindow(cmd)

	logger.Debug().
		Int("sources", len(req.Sources)).
		Int("dests", len(req.Dests)).
		Msg("spawning file operation")

	code, err := l.run(cmd)
	if err != nil {
		return 0, errors.Errorf("launching %s: %w", l.binary, err)
	}

	logger.Debug().Int("exit_code", code).Msg("file operation finished")
	return code, nil
}

// 📦 argv rebuilds the command line for a validated request.
func argv(req *request.Request) []string {
	args := make([]string, 0, len(req.Sources)+len(req.Dests)+4)
	args = append(args, req.Action.String())
	if req.ShowErrors {
		args = append(args, "--show-errors")
	}
	args = append(args, "--from")
	args = append(args, req.Sources...)
	if len(req.Dests) > 0 {
		args = append(args, "--to")
		args = append(args, req.Dests...)
	}
	return args
}

// 🧹 Normalize trims surrounding whitespace and drops empty entries,
// so blank and absent inputs mean the same thing.
func Normalize(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func runCmd(cmd *exec.Cmd) (int, error) {
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, err
	}
	return 0, nil
}
