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

package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/winshell/fileops/pkg/config"
	"github.com/winshell/fileops/pkg/shell"
	"github.com/winshell/fileops/pkg/status"
)

// 🎮 app carries the wired collaborators and the exit code the process
// will report. Commands store the code here instead of returning
// errors; the invocation contract owns every byte of output.
type app struct {
	service shell.Service
	dialog  shell.Dialog
	stdout  io.Writer
	stderr  io.Writer
	users   *status.UserLogger
	code    int
}

func newApp(ctx context.Context) *app {
	return &app{
		service: shell.NewService(),
		dialog:  shell.NewDialog(),
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		users:   status.NewUserLogger(ctx, os.Stderr),
	}
}

// newRootCmd creates the root command. Flag parsing stays disabled on
// every command: the raw token walk owns the argument surface, and
// unknown flags are ignored rather than rejected.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "fileops",
		Short: "Run interactive file operations through the OS shell",
		Long: `fileops copies, moves, and deletes files through the operating
system's interactive file-manager experience: progress dialogs,
cancellation, undo, and the Recycle Bin behave exactly as if the user
had done it in the file manager.

The action may also be given as a bare token ahead of --from, so both
of these are equivalent:

  fileops copy --from C:\a.txt --to D:\backup
  fileops --show-errors copy --from C:\a.txt --to D:\backup`,
		SilenceErrors:      true,
		SilenceUsage:       true,
		DisableFlagParsing: true,
		// Unmatched bare tokens fall through to the walk instead of
		// becoming an unknown-command error.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTokens(cmd.Context(), "", args)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	// Add commands
	root.AddCommand(
		newActionCmd(a, "copy", "Copy files or folders to a destination"),
		newActionCmd(a, "move", "Move files or folders to a destination"),
		newActionCmd(a, "delete", "Send files or folders to the Recycle Bin"),
		newVersionCmd(a),
	)

	return root
}

// loadConfig resolves and loads the optional settings file. No file
// configured means zero-value settings, not an error.
func (a *app) loadConfig(ctx context.Context, flagPath string) (*config.Config, error) {
	path := config.Resolve(flagPath)
	if path == "" {
		return &config.Config{}, nil
	}
	return config.Load(ctx, path)
}
