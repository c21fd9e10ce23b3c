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
	"strings"
	"unicode/utf16"

	"gitlab.com/tozd/go/errors"
)

// 📦 MultiString is the wide-character path-list layout the shell call
// takes: each entry UTF-16 encoded and null terminated, with a final
// extra null closing the list. An empty list encodes to a lone
// terminator.
type MultiString []uint16

// EncodePaths packs paths into a MultiString. A path carrying an
// embedded NUL cannot be represented in the layout and is rejected.
func EncodePaths(paths []string) (MultiString, error) {
	size := 1
	for _, p := range paths {
		size += len(p) + 1
	}
	buf := make([]uint16, 0, size)
	for _, p := range paths {
		if strings.ContainsRune(p, 0) {
			return nil, errors.Errorf("encoding path list: %q contains a NUL", p)
		}
		buf = append(buf, utf16.Encode([]rune(p))...)
		buf = append(buf, 0)
	}
	buf = append(buf, 0)
	return MultiString(buf), nil
}

// Split decodes the list back into its entries, discarding the
// trailing empty entry left by the final terminator.
func (m MultiString) Split() []string {
	var out []string
	start := 0
	for i, c := range m {
		if c != 0 {
			continue
		}
		if i == start {
			break
		}
		out = append(out, string(utf16.Decode(m[start:i])))
		start = i + 1
	}
	return out
}

// Pointer returns the address of the first character for the OS call,
// or nil for a zero-length buffer. The caller keeps the MultiString
// reachable until the call returns.
func (m MultiString) Pointer() *uint16 {
	if len(m) == 0 {
		return nil
	}
	return &m[0]
}
