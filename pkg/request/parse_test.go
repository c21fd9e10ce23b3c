package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/winshell/fileops/pkg/request"
)

func TestParseTokens(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want request.Tokens
	}{
		{
			name: "empty",
			args: nil,
			want: request.Tokens{},
		},
		{
			name: "full_invocation",
			args: []string{"copy", "--show-errors", "--from", `C:\a.txt`, `C:\b.txt`, "--to", `D:\dir`},
			want: request.Tokens{
				Action:     "copy",
				Sources:    []string{`C:\a.txt`, `C:\b.txt`},
				Dests:      []string{`D:\dir`},
				ShowErrors: true,
			},
		},
		{
			name: "delete_has_no_to_group",
			args: []string{"delete", "--from", `C:\old`},
			want: request.Tokens{
				Action:  "delete",
				Sources: []string{`C:\old`},
			},
		},
		{
			name: "unknown_flags_are_ignored",
			args: []string{"copy", "--verbose", "--from", `C:\a`, "--dry-run", "--to", `D:\b`},
			want: request.Tokens{
				Action:  "copy",
				Sources: []string{`C:\a`},
				Dests:   []string{`D:\b`},
			},
		},
		{
			name: "last_bare_token_before_lists_wins_as_action",
			args: []string{"copy", "move", "--from", `C:\a`, "--to", `D:\b`},
			want: request.Tokens{
				Action:  "move",
				Sources: []string{`C:\a`},
				Dests:   []string{`D:\b`},
			},
		},
		{
			name: "bare_tokens_after_lists_stay_in_the_active_list",
			args: []string{"move", "--from", `C:\a`, "--to", `D:\b`, "stray"},
			want: request.Tokens{
				Action:  "move",
				Sources: []string{`C:\a`},
				Dests:   []string{`D:\b`, "stray"},
			},
		},
		{
			name: "show_errors_position_does_not_matter",
			args: []string{"copy", "--from", `C:\a`, "--to", `D:\b`, "--show-errors"},
			want: request.Tokens{
				Action:     "copy",
				Sources:    []string{`C:\a`},
				Dests:      []string{`D:\b`},
				ShowErrors: true,
			},
		},
		{
			name: "list_flags_can_repeat_and_append",
			args: []string{"copy", "--from", `C:\a`, "--to", `D:\x`, "--from", `C:\b`},
			want: request.Tokens{
				Action:  "copy",
				Sources: []string{`C:\a`, `C:\b`},
				Dests:   []string{`D:\x`},
			},
		},
		{
			name: "option_flags",
			args: []string{"copy", "--debug", "--expand-globs", "--config=ops.yaml", "--from", `C:\*.txt`, "--to", `D:\dir`},
			want: request.Tokens{
				Action:      "copy",
				Sources:     []string{`C:\*.txt`},
				Dests:       []string{`D:\dir`},
				Debug:       true,
				ExpandGlobs: true,
				ConfigPath:  "ops.yaml",
			},
		},
		{
			name: "config_without_value_is_ignored_like_any_unknown_flag",
			args: []string{"copy", "--config", "--from", `C:\a`, "--to", `D:\b`},
			want: request.Tokens{
				Action:  "copy",
				Sources: []string{`C:\a`},
				Dests:   []string{`D:\b`},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := request.ParseTokens(tt.args)
			assert.Equal(t, tt.want, got, "parsed tokens should match")
		})
	}
}
