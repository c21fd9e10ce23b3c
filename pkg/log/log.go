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

// Package log renders the per-path launch trace shown in debug mode.
// Every line goes to the trace writer (stderr in the binary); stdout
// is reserved for the outcome protocol.
package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	pathIndent = 4  // spaces to indent path entries
	nameWidth  = 35 // Base width for the source path
	routeWidth = 8  // Width for the routing kind
)

// 🎯 PathOperation represents one source path as it will be submitted
// to the shell.
type PathOperation struct {
	Source string // Source path
	Dest   string // Destination path, empty for deletes
	Paired bool   // Dest maps one-to-one instead of into a shared directory
}

// 📦 LaunchOperation represents one shell launch for tracing.
type LaunchOperation struct {
	Action     string // Operation name (copy/move/delete)
	Sources    int    // Number of source paths
	Dests      int    // Number of destination paths
	ShowErrors bool   // Whether the warning dialog is armed
}

// 🎯 Logger handles the launch trace with console output
type Logger struct {
	zlog      zerolog.Logger
	console   io.Writer
	mu        sync.Mutex
	currentOp *LaunchOperation
	paths     []PathOperation
}

// 🏭 New creates a new trace logger. The structured channel shares the
// console writer so the trace never touches stdout.
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = console
	})).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 📝 formatPathOperation formats a path entry for display
func (l *Logger) formatPathOperation(op PathOperation) string {
	// Determine symbol and color
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case op.Dest == "":
		symbol = '✗'
		symbolColor = color.FgRed
	case op.Paired:
		symbol = '⟳'
		symbolColor = color.FgBlue
	default:
		symbol = '•'
		symbolColor = color.FgCyan
	}

	// Format routing kind with color
	route := op.route()
	var routeColor color.Attribute
	switch route {
	case "paired":
		routeColor = color.FgCyan
	case "shared":
		routeColor = color.FgYellow
	default:
		routeColor = color.FgRed
	}

	// Build the line
	line := fmt.Sprintf("%s%s %s %s",
		fmt.Sprintf("%*s", pathIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, op.Source),
		color.New(routeColor).Sprint(fmt.Sprintf("%-*s", routeWidth, route)))
	if op.Dest != "" {
		line += " " + op.Dest
	}
	return line
}

func (op PathOperation) route() string {
	switch {
	case op.Dest == "":
		return "delete"
	case op.Paired:
		return "paired"
	default:
		return "shared"
	}
}

// 📝 LogPathOperation logs one path entry
func (l *Logger) LogPathOperation(ctx context.Context, op PathOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Add to the trace list
	l.paths = append(l.paths, op)

	// Format and print
	fmt.Fprintln(l.console, l.formatPathOperation(op))

	// Log to zerolog
	l.zlog.Debug().
		Str("source", op.Source).
		Str("dest", op.Dest).
		Str("route", op.route()).
		Msg("path submitted")
}

// 📝 StartLaunch starts tracing a new shell launch
func (l *Logger) StartLaunch(ctx context.Context, op LaunchOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentOp = &op
	l.paths = nil

	// Print launch header
	fmt.Fprintf(l.console, "[launching %s]\n",
		color.New(color.FgCyan).Sprint(op.Action))

	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(op.Action),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprint(op.counts()))

	// Log to zerolog
	l.zlog.Debug().
		Str("action", op.Action).
		Int("sources", op.Sources).
		Int("dests", op.Dests).
		Bool("show_errors", op.ShowErrors).
		Msg("starting launch")
}

// 📝 EndLaunch ends the current launch trace
func (l *Logger) EndLaunch(ctx context.Context, status uint32, aborted bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentOp == nil {
		return
	}

	// Log summary
	l.zlog.Debug().
		Str("action", l.currentOp.Action).
		Uint32("status", status).
		Bool("aborted", aborted).
		Int("paths", len(l.paths)).
		Msg("launch complete")

	l.currentOp = nil
	l.paths = nil
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

func (op LaunchOperation) counts() string {
	src := fmt.Sprintf("%d source", op.Sources)
	if op.Sources != 1 {
		src += "s"
	}
	if op.Dests == 0 {
		return src + " → recycle bin"
	}
	dst := fmt.Sprintf("%d destination", op.Dests)
	if op.Dests != 1 {
		dst += "s"
	}
	return src + " → " + dst
}
