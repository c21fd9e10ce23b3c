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
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/winshell/fileops/pkg/log"
	"github.com/winshell/fileops/pkg/operation"
	"github.com/winshell/fileops/pkg/request"
	"github.com/winshell/fileops/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// newActionCmd builds one of the copy/move/delete subcommands. The
// subcommand name only supplies the default action; a bare token in
// the walked arguments still overrides it, so the classic single-line
// surface behaves identically with and without subcommand dispatch.
func newActionCmd(a *app, action string, short string) *cobra.Command {
	return &cobra.Command{
		Use:                action + " --from <sourcePath>... [--to <destPath>...]",
		Short:              short,
		SilenceErrors:      true,
		SilenceUsage:       true,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTokens(cmd.Context(), action, args)
		},
	}
}

// 🚀 runTokens is the single execution path for every invocation
// shape: walk the tokens, load the optional config, validate, execute,
// report. Protocol output goes to stdout; everything else to stderr.
func (a *app) runTokens(ctx context.Context, defaultAction string, args []string) error {
	toks := request.ParseTokens(args)

	cfg, err := a.loadConfig(ctx, toks.ConfigPath)
	if err != nil {
		a.users.LogValidation(false, "Loading configuration", err)
		a.code = 1
		return nil
	}

	debug := toks.Debug || cfg.Debug
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	action := toks.Action
	if action == "" {
		action = defaultAction
	}

	sources := toks.Sources
	if toks.ExpandGlobs || cfg.ExpandGlobs {
		if sources, err = request.ExpandGlobs(sources); err != nil {
			return a.failInput(err)
		}
	}

	req, err := request.New(action, sources, toks.Dests, toks.ShowErrors || cfg.ShowErrors)
	if err != nil {
		return a.failInput(err)
	}

	oper, err := operation.New(operation.Options{Service: a.service})
	if err != nil {
		return a.failMachinery("Creating operator", err)
	}

	var trace *log.Logger
	if debug {
		trace = log.New(a.stderr, zerolog.DebugLevel)
		trace.StartLaunch(ctx, log.LaunchOperation{
			Action:     req.Action.String(),
			Sources:    len(req.Sources),
			Dests:      len(req.Dests),
			ShowErrors: req.ShowErrors,
		})
		for _, p := range traceEntries(req) {
			trace.LogPathOperation(ctx, p)
		}
		trace.LogNewline()
	}

	out, err := oper.Execute(ctx, req)
	if err != nil {
		// The OS call never happened, so there is no status to print.
		return a.failMachinery("Executing file operation", err)
	}
	if trace != nil {
		trace.EndLaunch(ctx, out.Status, out.Aborted)
	}

	reporter, err := status.NewReporter(status.ReporterOptions{
		Out:    a.stdout,
		Table:  status.NewTable().WithOverrides(cfg.Overrides()),
		Dialog: a.dialog,
	})
	if err != nil {
		return a.failMachinery("Creating reporter", err)
	}
	if err := reporter.Report(ctx, req.Action, out, req.ShowErrors); err != nil {
		return a.failMachinery("Reporting outcome", err)
	}

	if debug {
		a.users.LogOutcome(req.Action, out)
	}

	a.code = out.ExitCode()
	return nil
}

// traceEntries maps the request's path lists onto per-path trace rows,
// mirroring how the shell will route them: no destinations, one shared
// destination, or one destination per source.
func traceEntries(req *request.Request) []log.PathOperation {
	ops := make([]log.PathOperation, 0, len(req.Sources))
	for i, src := range req.Sources {
		op := log.PathOperation{Source: src}
		switch {
		case len(req.Dests) == 0:
		case len(req.Dests) == 1:
			op.Dest = req.Dests[0]
		default:
			op.Dest = req.Dests[i]
			op.Paired = true
		}
		ops = append(ops, op)
	}
	return ops
}

// failInput prints a validation failure the way the invocation
// contract demands: the error line followed by the usage block, both
// on stdout, exit code 1.
func (a *app) failInput(err error) error {
	var verr *request.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	a.users.LogValidation(false, "Checking invocation", verr)
	fmt.Fprintln(a.stdout, verr.Message)
	request.FprintUsage(a.stdout)
	a.code = 1
	return nil
}

// failMachinery reports a failure that happened before any OS status
// existed. Nothing is printed to stdout.
func (a *app) failMachinery(doing string, err error) error {
	a.users.LogValidation(false, doing, err)
	a.code = 1
	return nil
}
