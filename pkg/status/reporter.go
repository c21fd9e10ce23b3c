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
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/winshell/fileops/pkg/operation"
	"github.com/winshell/fileops/pkg/request"
	"github.com/winshell/fileops/pkg/shell"
	"gitlab.com/tozd/go/errors"
)

// 🔧 ReporterOptions configures a Reporter.
type ReporterOptions struct {
	// Out receives the one-line outcome protocol.
	Out io.Writer
	// Table translates status codes to messages.
	Table *Table
	// Dialog shows the modal warning; needed only when callers ask
	// for dialogs.
	Dialog shell.Dialog
}

// 📝 Reporter turns outcomes into the console protocol line (ok,
// cancelled, or error <hex>: <message>) and, on request, the modal
// warning dialog.
type Reporter struct {
	out    io.Writer
	table  *Table
	dialog shell.Dialog
}

// 🏭 NewReporter creates a reporter with the given options.
func NewReporter(opts ReporterOptions) (*Reporter, error) {
	if opts.Out == nil {
		return nil, errors.Errorf("out writer is required")
	}
	if opts.Table == nil {
		return nil, errors.Errorf("table is required")
	}
	return &Reporter{out: opts.Out, table: opts.Table, dialog: opts.Dialog}, nil
}

// Report writes the protocol line for out. For failures with
// showDialog set it first blocks on the modal warning, titled with the
// action and the hex code. The returned error covers reporting
// problems only; the operation's own status lives in the outcome.
func (r *Reporter) Report(ctx context.Context, action request.Action, out operation.Outcome, showDialog bool) error {
	switch {
	case out.Cancelled():
		if _, err := fmt.Fprintln(r.out, "cancelled"); err != nil {
			return errors.Errorf("writing outcome: %w", err)
		}
	case out.Completed():
		if _, err := fmt.Fprintln(r.out, "ok"); err != nil {
			return errors.Errorf("writing outcome: %w", err)
		}
	default:
		hex := fmt.Sprintf("0x%x", out.Status)
		message := r.table.Message(out.Status)
		if showDialog {
			if r.dialog == nil {
				return errors.Errorf("dialog requested but none configured")
			}
			title := fmt.Sprintf("Unable to %s files (ERR %s)", action, hex)
			if err := r.dialog.Warn(ctx, title, message); err != nil {
				// The console line still has to land.
				zerolog.Ctx(ctx).Warn().Err(err).Msg("warning dialog failed")
			}
		}
		if _, err := fmt.Fprintf(r.out, "error %s: %s\n", hex, message); err != nil {
			return errors.Errorf("writing outcome: %w", err)
		}
	}
	return nil
}
