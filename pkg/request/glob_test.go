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

package request_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/winshell/fileops/pkg/request"
	"gitlab.com/tozd/go/errors"
)

func TestExpandGlobs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt", "c.log"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644), "writing fixture")
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested", "deep"), 0o755), "creating nested dirs")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "deep", "d.txt"), []byte("x"), 0o644), "writing nested fixture")

	t.Run("literal_paths_pass_through_even_when_missing", func(t *testing.T) {
		missing := filepath.Join(dir, "does-not-exist.txt")
		got, err := request.ExpandGlobs([]string{missing})
		require.NoError(t, err, "literal paths should not be checked")
		assert.Equal(t, []string{missing}, got, "literal path should be untouched")
	})

	t.Run("star_pattern_expands", func(t *testing.T) {
		got, err := request.ExpandGlobs([]string{filepath.Join(dir, "*.txt")})
		require.NoError(t, err, "expansion should succeed")
		assert.ElementsMatch(t, []string{
			filepath.Join(dir, "a.txt"),
			filepath.Join(dir, "b.txt"),
		}, got, "pattern should match both text files")
	})

	t.Run("doublestar_pattern_walks_subdirectories", func(t *testing.T) {
		got, err := request.ExpandGlobs([]string{filepath.Join(dir, "**", "*.txt")})
		require.NoError(t, err, "expansion should succeed")
		assert.Contains(t, got, filepath.Join(dir, "nested", "deep", "d.txt"), "nested file should match")
	})

	t.Run("mixed_literals_keep_their_place", func(t *testing.T) {
		lit := filepath.Join(dir, "c.log")
		got, err := request.ExpandGlobs([]string{lit, filepath.Join(dir, "a.*")})
		require.NoError(t, err, "expansion should succeed")
		require.Len(t, got, 2, "one literal plus one match")
		assert.Equal(t, lit, got[0], "literal should stay first")
	})

	t.Run("pattern_matching_nothing_is_an_input_error", func(t *testing.T) {
		_, err := request.ExpandGlobs([]string{filepath.Join(dir, "*.nope")})
		require.Error(t, err, "empty expansion should fail")
		var verr *request.ValidationError
		require.True(t, errors.As(err, &verr), "error should be a ValidationError")
		assert.Equal(t, request.RuleGlob, verr.Rule, "failure should be attributed to the glob rule")
		assert.Contains(t, err.Error(), "matched no files", "message should say nothing matched")
	})
}
