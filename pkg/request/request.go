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

// Package request models and validates interactive file-operation
// invocations before anything touches the OS shell.
package request

// 🎯 Action identifies the interactive file operation to perform.
type Action int

const (
	// ActionUnknown is the zero value; it never validates.
	ActionUnknown Action = iota
	// ActionCopy duplicates each source into the destination.
	ActionCopy
	// ActionMove relocates each source into the destination.
	ActionMove
	// ActionDelete removes each source, Recycle Bin permitting.
	ActionDelete
)

// 📝 String returns the action token as it appears on the command line.
func (a Action) String() string {
	switch a {
	case ActionCopy:
		return "copy"
	case ActionMove:
		return "move"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Valid reports whether a names one of the three supported operations.
func (a Action) Valid() bool {
	return a == ActionCopy || a == ActionMove || a == ActionDelete
}

// NeedsDest reports whether the action takes destination paths.
func (a Action) NeedsDest() bool {
	return a == ActionCopy || a == ActionMove
}

// 🏭 ParseAction maps a raw action token to its Action. The error is a
// *ValidationError carrying the console line for the failure.
func ParseAction(token string) (Action, error) {
	switch token {
	case "copy":
		return ActionCopy, nil
	case "move":
		return ActionMove, nil
	case "delete":
		return ActionDelete, nil
	case "":
		return ActionUnknown, &ValidationError{Rule: RuleAction, Message: "error: action is required"}
	default:
		return ActionUnknown, &ValidationError{Rule: RuleAction, Message: "error: action must be one of: copy, move, delete"}
	}
}

// Rule identifies which invocation rule a request failed.
type Rule string

const (
	RuleAction    Rule = "action"
	RuleSources   Rule = "sources"
	RuleDeleteTo  Rule = "delete_to"
	RuleMissingTo Rule = "missing_to"
	RuleToCount   Rule = "to_count"
	RuleToPairing Rule = "to_pairing"
	RuleGlob      Rule = "glob"
)

// ValidationError reports an invocation that failed one of the input
// rules. Message holds the console line exactly as it is printed ahead
// of the usage text.
type ValidationError struct {
	Rule    Rule
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// 🔧 Request is a file-operation invocation. Build one with New (or
// validate a hand-assembled value with Validate) before handing it to
// an executor; a validated Request is treated as immutable.
type Request struct {
	// Action is the operation to perform.
	Action Action
	// Sources are the paths to operate on, in order.
	Sources []string
	// Dests are the destination paths: empty for delete, one shared
	// target directory (or rename target for a single source), or one
	// destination per source.
	Dests []string
	// ShowErrors enables the modal warning dialog on failure.
	ShowErrors bool
}

// 🏭 New builds a Request from a raw action token and path lists,
// applying the invocation rules in order. Failures are returned as
// *ValidationError; no partial recovery is attempted.
func New(action string, sources, dests []string, showErrors bool) (*Request, error) {
	act, err := ParseAction(action)
	if err != nil {
		return nil, err
	}
	r := &Request{
		Action:     act,
		Sources:    sources,
		Dests:      dests,
		ShowErrors: showErrors,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// ✅ Validate applies the invocation rules in order, returning the
// first failure as a *ValidationError:
//
//  1. the action must be one of copy, move, delete
//  2. at least one source path
//  3. delete takes no destinations; copy and move need at least one
//  4. never more destinations than sources
//  5. with several destinations, sources and destinations pair one to one
func (r *Request) Validate() error {
	if !r.Action.Valid() {
		return &ValidationError{Rule: RuleAction, Message: "error: action must be one of: copy, move, delete"}
	}
	if len(r.Sources) == 0 {
		return &ValidationError{Rule: RuleSources, Message: "at least one source path is required"}
	}
	if r.Action == ActionDelete {
		if len(r.Dests) > 0 {
			return &ValidationError{Rule: RuleDeleteTo, Message: "error: cannot specify destination path when action is delete"}
		}
	} else if len(r.Dests) == 0 {
		return &ValidationError{Rule: RuleMissingTo, Message: "error: at least one destination path is required when action is not delete"}
	}
	if len(r.Dests) > len(r.Sources) {
		return &ValidationError{Rule: RuleToCount, Message: "error: number of destination paths cannot be more than number of source paths"}
	}
	if len(r.Sources) > 1 && len(r.Dests) > 1 && len(r.Sources) != len(r.Dests) {
		return &ValidationError{Rule: RuleToPairing, Message: "error: number of source and destination paths must match when more than one destination path is specified"}
	}
	return nil
}
