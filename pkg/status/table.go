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

package status

// builtinMessages covers the operation-specific codes the shell file
// operation defines on top of the generic system errors. These codes
// predate the system formatter and are not translated by it.
var builtinMessages = map[uint32]string{
	0x71: "The source and destination files are the same file.",
	0x72: "Multiple file paths were specified in the source buffer, but only one destination file path.",
	0x73: "Rename operation was specified but the destination path is a different directory. Use the move operation instead.",
	0x74: "The source is a root directory, which cannot be moved or renamed.",
	0x75: "The operation was canceled by the user, or silently canceled if the appropriate flags were supplied to SHFileOperation.",
	0x76: "The destination is a subtree of the source.",
	0x78: "Security settings denied access to the source.",
	0x79: "The source or destination path exceeded or would exceed MAX_PATH.",
	0x7A: "The operation involved multiple destination paths, which can fail in the case of a move operation.",
	0x7C: "The path in the source or destination or both was invalid.",
	0x7D: "The source and destination have the same parent folder.",
	0x7E: "The destination path is an existing file.",
	0x80: "The destination path is an existing folder.",
	0x81: "The name of the file exceeds MAX_PATH.",
	0x82: "The destination is a read-only CD-ROM, possibly unformatted.",
	0x83: "The destination is a read-only DVD, possibly unformatted.",
	0x84: "The destination is a writable CD-ROM, possibly unformatted.",
	0x85: "The file involved in the operation is too large for the destination media or file system.",
	0x86: "The source is a read-only CD-ROM, possibly unformatted.",
	0x87: "The source is a read-only DVD, possibly unformatted.",
	0x88: "The source is a writable CD-ROM, possibly unformatted.",
	0xB7: "MAX_PATH was exceeded during the operation.",
	0x402: "An unknown error occurred. This is typically due to an invalid path in the source or destination. This error does not occur on Windows Vista and later.",
	0x10000: "An unspecified error occurred on the destination.",
	0x10074: "Destination is a root directory and cannot be renamed.",
}

// 🎯 Table is the read-only mapping from known operation status codes
// to fixed messages. Built once, shared freely; lookups never mutate.
type Table struct {
	messages map[uint32]string
}

// 🏭 NewTable returns the built-in code table.
func NewTable() *Table {
	return &Table{messages: builtinMessages}
}

// WithOverrides layers replacement or additional messages over t and
// returns the combined table; t itself is left untouched.
func (t *Table) WithOverrides(overrides map[uint32]string) *Table {
	if len(overrides) == 0 {
		return t
	}
	merged := make(map[uint32]string, len(t.messages)+len(overrides))
	for code, msg := range t.messages {
		merged[code] = msg
	}
	for code, msg := range overrides {
		merged[code] = msg
	}
	return &Table{messages: merged}
}

// Known returns the fixed message for code when the table carries one.
func (t *Table) Known(code uint32) (string, bool) {
	msg, ok := t.messages[code]
	return msg, ok
}

// 🔍 Message translates code: the fixed table first, then the system
// formatter. The result is never empty.
func (t *Table) Message(code uint32) string {
	if msg, ok := t.messages[code]; ok {
		return msg
	}
	return systemMessage(code)
}
