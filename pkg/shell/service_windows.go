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

//go:build windows

package shell

import (
	"context"
	"runtime"
	"unsafe"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sys/windows"
)

var (
	shell32              = windows.NewLazySystemDLL("shell32.dll")
	procSHFileOperationW = shell32.NewProc("SHFileOperationW")
)

// shFileOpStruct mirrors SHFILEOPSTRUCTW. Field order and natural
// alignment match the 64-bit layout the shell expects; hwnd stays zero
// so the progress dialog has no owner window.
type shFileOpStruct struct {
	hwnd                  uintptr
	wFunc                 uint32
	pFrom                 *uint16
	pTo                   *uint16
	fFlags                uint16
	fAnyOperationsAborted int32
	hNameMappings         uintptr
	lpszProgressTitle     *uint16
}

type winService struct{}

// 🏭 NewService returns the Windows shell file-operation service.
func NewService() Service {
	return &winService{}
}

func (s *winService) Run(ctx context.Context, op FileOp) (Result, error) {
	if err := procSHFileOperationW.Find(); err != nil {
		return Result{}, errors.Errorf("locating SHFileOperationW: %w", err)
	}

	st := shFileOpStruct{
		wFunc:  uint32(op.Op),
		pFrom:  op.From.Pointer(),
		pTo:    op.To.Pointer(),
		fFlags: uint16(op.Flags),
	}

	zerolog.Ctx(ctx).Debug().
		Stringer("op", op.Op).
		Uint16("flags", uint16(op.Flags)).
		Int("from_chars", len(op.From)).
		Int("to_chars", len(op.To)).
		Msg("invoking shell file operation")

	ret, _, _ := procSHFileOperationW.Call(uintptr(unsafe.Pointer(&st)))

	// The encoded buffers must stay reachable until the shell is done
	// with them, on every exit path.
	runtime.KeepAlive(op.From)
	runtime.KeepAlive(op.To)

	return Result{Status: uint32(ret), Aborted: st.fAnyOperationsAborted != 0}, nil
}
