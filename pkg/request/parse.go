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

package request

import "strings"

// 🔧 Tokens holds the raw pieces of an invocation before validation.
type Tokens struct {
	// Action is the last bare token seen before any list flag; empty
	// when the caller supplies the action out of band.
	Action string
	// Sources collects bare tokens after --from.
	Sources []string
	// Dests collects bare tokens after --to.
	Dests []string
	// ShowErrors is set by --show-errors.
	ShowErrors bool
	// Debug is set by --debug.
	Debug bool
	// ExpandGlobs is set by --expand-globs.
	ExpandGlobs bool
	// ConfigPath is set by --config=<path>.
	ConfigPath string
}

type listState int

const (
	stateAction listState = iota
	stateFrom
	stateTo
)

// 📋 ParseTokens walks raw command-line tokens with a three-state
// machine: --from and --to switch the collecting list, the option
// flags toggle their setting, any other token starting with -- is
// ignored, and bare tokens land in the active list. Bare tokens seen
// before the first list flag set the action token, last one winning.
// ParseTokens never fails; Validate decides what the tokens mean.
func ParseTokens(args []string) Tokens {
	var t Tokens
	state := stateAction
	for _, arg := range args {
		switch {
		case arg == "--from":
			state = stateFrom
		case arg == "--to":
			state = stateTo
		case arg == "--show-errors":
			t.ShowErrors = true
		case arg == "--debug":
			t.Debug = true
		case arg == "--expand-globs":
			t.ExpandGlobs = true
		case strings.HasPrefix(arg, "--config="):
			t.ConfigPath = strings.TrimPrefix(arg, "--config=")
		case strings.HasPrefix(arg, "--"):
			// unknown flag, ignored
		case state == stateFrom:
			t.Sources = append(t.Sources, arg)
		case state == stateTo:
			t.Dests = append(t.Dests, arg)
		default:
			t.Action = arg
		}
	}
	return t
}
