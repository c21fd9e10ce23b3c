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

package operation

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/winshell/fileops/pkg/request"
	"github.com/winshell/fileops/pkg/shell"
	"gitlab.com/tozd/go/errors"
)

// 🎮 executor implements Operator over the shell service.
type executor struct {
	service shell.Service
}

// opFor maps an action to its shell function code. The one dispatch
// point for the three actions.
func opFor(a request.Action) (shell.Op, error) {
	switch a {
	case request.ActionCopy:
		return shell.OpCopy, nil
	case request.ActionMove:
		return shell.OpMove, nil
	case request.ActionDelete:
		return shell.OpDelete, nil
	default:
		return 0, errors.Errorf("no shell function for action %q", a)
	}
}

// flagsFor computes the flag set: the base flags always, plus the
// multi-destination flag when more than one destination is supplied.
func flagsFor(req *request.Request) shell.Flags {
	flags := shell.BaseFlags
	if len(req.Dests) > 1 {
		flags |= shell.FlagMultiDestFiles
	}
	return flags
}

// 🚀 Execute encodes the path lists, hands the operation to the shell,
// and captures its outcome. The request is re-checked so an invalid
// one can never reach the OS call, whoever the caller is.
func (e *executor) Execute(ctx context.Context, req *request.Request) (Outcome, error) {
	if req == nil {
		return Outcome{}, errors.Errorf("request is required")
	}
	if err := req.Validate(); err != nil {
		return Outcome{}, errors.Errorf("validating request: %w", err)
	}

	op, err := opFor(req.Action)
	if err != nil {
		return Outcome{}, err
	}

	from, err := shell.EncodePaths(req.Sources)
	if err != nil {
		return Outcome{}, errors.Errorf("encoding source paths: %w", err)
	}
	to, err := shell.EncodePaths(req.Dests)
	if err != nil {
		return Outcome{}, errors.Errorf("encoding destination paths: %w", err)
	}

	logger := zerolog.Ctx(ctx).With().
		Str("op_id", uuid.NewString()).
		Stringer("action", req.Action).
		Int("sources", len(req.Sources)).
		Int("dests", len(req.Dests)).
		Logger()
	ctx = logger.WithContext(ctx)

	logger.Debug().Msg("handing operation to the shell")

	res, err := e.service.Run(ctx, shell.FileOp{
		Op:    op,
		Flags: flagsFor(req),
		From:  from,
		To:    to,
	})
	if err != nil {
		return Outcome{}, errors.Errorf("invoking shell file operation: %w", err)
	}

	out := Outcome{Status: res.Status, Aborted: res.Aborted}
	logger.Debug().
		Uint32("status", out.Status).
		Bool("aborted", out.Aborted).
		Msg("shell finished")
	return out, nil
}
