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

// Package shell is the boundary to the OS shell's interactive
// file-operation capability: the wire types the call takes, the
// double-null multi-string path encoding, and small interfaces over
// the call itself and the modal warning dialog so everything above
// this package stays platform neutral.
package shell

import (
	"context"

	"gitlab.com/tozd/go/errors"
)

// 🎯 Op selects the shell file-operation function (wFunc).
type Op uint32

const (
	OpMove   Op = 0x0001 // FO_MOVE
	OpCopy   Op = 0x0002 // FO_COPY
	OpDelete Op = 0x0003 // FO_DELETE
)

// 📝 String returns the wFunc constant name.
func (o Op) String() string {
	switch o {
	case OpMove:
		return "FO_MOVE"
	case OpCopy:
		return "FO_COPY"
	case OpDelete:
		return "FO_DELETE"
	default:
		return "FO_UNKNOWN"
	}
}

// Flags adjust how the shell performs an operation (fFlags).
type Flags uint16

const (
	FlagMultiDestFiles  Flags = 0x0001 // FOF_MULTIDESTFILES
	FlagAllowUndo       Flags = 0x0040 // FOF_ALLOWUNDO
	FlagNoConfirmMkDir  Flags = 0x0200 // FOF_NOCONFIRMMKDIR
	FlagWantNukeWarning Flags = 0x4000 // FOF_WANTNUKEWARNING
)

// BaseFlags are set on every operation: undo support (Recycle Bin for
// delete), silent destination-directory creation, and a warning before
// any permanent delete when the Recycle Bin cannot hold the item.
const BaseFlags = FlagAllowUndo | FlagNoConfirmMkDir | FlagWantNukeWarning

// StatusCancelled is the status the call reports when the user cancels
// the operation (ERROR_CANCELLED).
const StatusCancelled uint32 = 0x4C7

// ErrUnsupported is returned by the stub implementations on platforms
// without the shell capability.
var ErrUnsupported = errors.New("shell file operations are only available on windows")

// 🔧 FileOp describes one interactive shell file operation.
type FileOp struct {
	// Op is the operation function code.
	Op Op
	// Flags control confirmation, undo, and multi-destination behavior.
	Flags Flags
	// From is the encoded source path list. Never empty in practice.
	From MultiString
	// To is the encoded destination path list. A lone terminator for
	// delete; the shell ignores it then.
	To MultiString
}

// Result carries the raw outputs of the shell call: the numeric status
// and the aborted flag the shell sets when the user backs out.
type Result struct {
	Status  uint32
	Aborted bool
}

// 🎯 Service is the OS interactive file-operation capability. Run
// blocks for the whole user-facing operation, pause/cancel/elevation
// prompts included; the shell owns that interaction and exposes no
// cancellation handle, so the context carries the logger rather than a
// deadline.
type Service interface {
	Run(ctx context.Context, op FileOp) (Result, error)
}

// 🎯 Dialog presents modal message boxes to the interactive user.
// Warn blocks until the dialog is dismissed.
type Dialog interface {
	Warn(ctx context.Context, title, message string) error
}
