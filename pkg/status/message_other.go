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

package status

import (
	"fmt"
	"strings"
	"syscall"
)

// systemMessage approximates the system formatter off windows by going
// through the platform errno table, so code translation still yields a
// non-empty line in cross-platform tests.
func systemMessage(code uint32) string {
	msg := strings.TrimSpace(syscall.Errno(code).Error())
	if msg == "" {
		return fmt.Sprintf("Unknown error 0x%x.", code)
	}
	return msg
}
