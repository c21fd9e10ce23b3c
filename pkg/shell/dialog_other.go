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

//go:build !windows

package shell

import (
	"context"

	"gitlab.com/tozd/go/errors"
)

type stubDialog struct{}

// 🏭 NewDialog returns a stub; Warn always fails with ErrUnsupported.
func NewDialog() Dialog {
	return &stubDialog{}
}

func (d *stubDialog) Warn(ctx context.Context, title, message string) error {
	return errors.Errorf("showing dialog %q: %w", title, ErrUnsupported)
}
