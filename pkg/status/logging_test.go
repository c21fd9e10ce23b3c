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

package status_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/winshell/fileops/pkg/operation"
	"github.com/winshell/fileops/pkg/request"
	"github.com/winshell/fileops/pkg/shell"
	"github.com/winshell/fileops/pkg/status"
	"gitlab.com/tozd/go/errors"
)

func newUserLogger(t *testing.T) (*status.UserLogger, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var user, log bytes.Buffer
	logger := zerolog.New(&log)
	ctx := logger.WithContext(context.Background())
	return status.NewUserLogger(ctx, &user), &user, &log
}

func TestLogValidation(t *testing.T) {
	t.Run("failure_prints_and_echoes_the_cause", func(t *testing.T) {
		u, user, log := newUserLogger(t)

		u.LogValidation(false, "invalid invocation", errors.New("at least one source path is required"))

		assert.Contains(t, user.String(), "invalid invocation", "user channel should carry the description")
		assert.Contains(t, log.String(), `"level":"error"`, "echo should be an error event")
		assert.Contains(t, log.String(), "at least one source path is required", "echo should carry the cause")
	})

	t.Run("success_stays_at_debug_in_the_log", func(t *testing.T) {
		u, user, log := newUserLogger(t)

		u.LogValidation(true, "invocation accepted", nil)

		assert.Contains(t, user.String(), "invocation accepted", "user channel should carry the description")
		assert.Contains(t, log.String(), `"level":"debug"`, "echo should stay at debug")
	})
}

func TestLogOutcome(t *testing.T) {
	tests := []struct {
		name      string
		outcome   operation.Outcome
		wantUser  string
		wantMsg   string
		wantLevel string
	}{
		{
			name:      "completed",
			outcome:   operation.Outcome{},
			wantUser:  "copy finished",
			wantMsg:   "operation completed",
			wantLevel: `"level":"info"`,
		},
		{
			name:      "cancelled",
			outcome:   operation.Outcome{Status: shell.StatusCancelled},
			wantUser:  "copy cancelled by the user",
			wantMsg:   "operation cancelled",
			wantLevel: `"level":"warn"`,
		},
		{
			name:      "failed",
			outcome:   operation.Outcome{Status: 0x71},
			wantUser:  "copy failed with status 0x71",
			wantMsg:   "operation failed",
			wantLevel: `"level":"error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, user, log := newUserLogger(t)

			u.LogOutcome(request.ActionCopy, tt.outcome)

			assert.Contains(t, user.String(), tt.wantUser, "user channel should describe the ending")
			assert.Contains(t, log.String(), tt.wantMsg, "echo should carry the event message")
			assert.Contains(t, log.String(), tt.wantLevel, "echo should use the right level")
		})
	}
}
