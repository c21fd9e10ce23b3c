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

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 🔍 ExpandGlobs replaces glob patterns in paths with their filesystem
// matches, ** included. Literal paths pass through untouched whether
// or not they exist (the shell reports missing paths itself). A
// pattern that matches nothing fails as an input error so the shell
// never sees an empty source list.
func ExpandGlobs(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if !strings.ContainsAny(p, "*?[{") {
			out = append(out, p)
			continue
		}
		matches, err := doublestar.FilepathGlob(p)
		if err != nil {
			return nil, errors.Errorf("expanding pattern %q: %w", p, err)
		}
		if len(matches) == 0 {
			return nil, &ValidationError{
				Rule:    RuleGlob,
				Message: fmt.Sprintf("error: pattern %q matched no files", p),
			}
		}
		out = append(out, matches...)
	}
	return out, nil
}
