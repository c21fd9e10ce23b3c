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

package status

import (
	"context"
	"io"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/winshell/fileops/pkg/operation"
	"github.com/winshell/fileops/pkg/request"
)

// 📝 UserLogger renders human-facing events with pterm printers,
// echoing each one to zerolog. It writes to its own writer (stderr in
// the binary) so stdout stays reserved for the outcome protocol.
type UserLogger struct {
	log     *zerolog.Logger
	success *pterm.PrefixPrinter
	warning *pterm.PrefixPrinter
	failure *pterm.PrefixPrinter
}

// 🏭 NewUserLogger creates a user logger that prints to w and echoes
// to the context logger.
func NewUserLogger(ctx context.Context, w io.Writer) *UserLogger {
	return &UserLogger{
		log:     zerolog.Ctx(ctx),
		success: pterm.Success.WithWriter(w).WithPrefix(pterm.Prefix{Text: "✅", Style: pterm.Success.Prefix.Style}),
		warning: pterm.Warning.WithWriter(w).WithPrefix(pterm.Prefix{Text: "🚫", Style: pterm.Warning.Prefix.Style}),
		failure: pterm.Error.WithWriter(w).WithPrefix(pterm.Prefix{Text: "❌", Style: pterm.Error.Prefix.Style}),
	}
}

// ✅ LogValidation reports a validation verdict to the user.
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		u.success.Println(description)
		u.log.Debug().Msg(description)
		return
	}
	u.failure.Println(description)
	u.log.Error().Err(err).Msg(description)
}

// 📋 LogOutcome reports how an operation ended.
func (u *UserLogger) LogOutcome(action request.Action, out operation.Outcome) {
	switch {
	case out.Cancelled():
		u.warning.Printfln("%s cancelled by the user", action)
		u.log.Warn().Stringer("action", action).Uint32("status", out.Status).Msg("operation cancelled")
	case out.Completed():
		u.success.Printfln("%s finished", action)
		u.log.Info().Stringer("action", action).Msg("operation completed")
	default:
		u.failure.Printfln("%s failed with status 0x%x", action, out.Status)
		u.log.Error().Stringer("action", action).Uint32("status", out.Status).Msg("operation failed")
	}
}
