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
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

// run executes one invocation and returns the process exit code: 0 for
// success, the raw operation status on failure or cancellation, 1 when
// the input never validated.
func run(ctx context.Context, args []string) int {
	// Setup logging
	setupLogging()
	ctx = log.Logger.WithContext(ctx)

	app := newApp(ctx)

	// Create root command
	root := newRootCmd(app)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		app.users.LogValidation(false, "Running command", err)
		return 1
	}
	return app.code
}

// setupLogging configures zerolog: console lines on stderr, warnings
// and up until --debug raises the level.
func setupLogging() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log.Logger
}
