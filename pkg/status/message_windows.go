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

package status

import (
	"fmt"
	"strings"

	"golang.org/x/sys/windows"
)

// langNeutral is MAKELANGID(LANG_NEUTRAL, SUBLANG_DEFAULT): the user's
// default language, the same one the shell speaks in its own dialogs.
const langNeutral = 0x0400

// systemMessage renders code through the system error formatter,
// trimming the trailing newline the formatter appends so the result
// fits the one-line protocol. Codes the system does not know either
// get a fixed fallback line; the result is never empty.
func systemMessage(code uint32) string {
	var buf [512]uint16
	n, err := windows.FormatMessage(
		windows.FORMAT_MESSAGE_FROM_SYSTEM|windows.FORMAT_MESSAGE_IGNORE_INSERTS,
		0, code, langNeutral, buf[:], nil)
	if err != nil || n == 0 {
		return fmt.Sprintf("Unknown error 0x%x.", code)
	}
	return strings.TrimSpace(windows.UTF16ToString(buf[:n]))
}
