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

	"gitlab.com/tozd/go/errors"
	"golang.org/x/sys/windows"
)

type winDialog struct{}

// 🏭 NewDialog returns the Windows modal message-box dialog.
func NewDialog() Dialog {
	return &winDialog{}
}

func (d *winDialog) Warn(ctx context.Context, title, message string) error {
	caption, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return errors.Errorf("encoding dialog title: %w", err)
	}
	body, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return errors.Errorf("encoding dialog text: %w", err)
	}
	if _, err := windows.MessageBox(0, body, caption, windows.MB_ICONWARNING); err != nil {
		return errors.Errorf("showing warning dialog: %w", err)
	}
	return nil
}
