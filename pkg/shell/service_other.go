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

type stubService struct{}

// 🏭 NewService returns a stub on platforms without the shell
// capability; Run always fails with ErrUnsupported.
func NewService() Service {
	return &stubService{}
}

func (s *stubService) Run(ctx context.Context, op FileOp) (Result, error) {
	return Result{}, errors.Errorf("running %s operation: %w", op.Op, ErrUnsupported)
}
