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

package shell

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// 🎭 MockService is a mock implementation of Service for tests.
type MockService struct {
	mock.Mock
}

func (m *MockService) Run(ctx context.Context, op FileOp) (Result, error) {
	args := m.Called(ctx, op)
	return args.Get(0).(Result), args.Error(1)
}

// 🎭 MockDialog is a mock implementation of Dialog for tests.
type MockDialog struct {
	mock.Mock
}

func (m *MockDialog) Warn(ctx context.Context, title string, message string) error {
	args := m.Called(ctx, title, message)
	return args.Error(0)
}
