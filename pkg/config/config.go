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

package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// EnvVar names the environment variable consulted when no --config
// flag is given.
const EnvVar = "FILEOPS_CONFIG"

// 🔍 Resolve returns the config path to use: the explicit flag value
// first, the environment variable otherwise. Empty means no config.
func Resolve(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv(EnvVar)
}

// 📚 Config represents the complete launcher configuration. Every
// setting defaults to off; the file only ever adds behavior the flags
// could also ask for.
type Config struct {
	// ShowErrors enables the warning dialog by default.
	ShowErrors bool `json:"show_errors,omitempty" yaml:"show_errors,omitempty"`
	// Debug raises the log level by default.
	Debug bool `json:"debug,omitempty" yaml:"debug,omitempty"`
	// ExpandGlobs expands source patterns by default.
	ExpandGlobs bool `json:"expand_globs,omitempty" yaml:"expand_globs,omitempty"`
	// Messages overrides status-code messages, keyed by hex code
	// (with or without the 0x prefix). Useful where the system
	// formatter's language does not match the audience.
	Messages map[string]string `json:"messages,omitempty" yaml:"messages,omitempty"`

	overrides map[uint32]string
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// ParseCode parses a status-code key: hex digits with an optional 0x
// prefix.
func ParseCode(key string) (uint32, error) {
	s := strings.TrimSpace(key)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return 0, errors.Errorf("empty status code")
	}
	code, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, errors.Errorf("parsing status code: %w", err)
	}
	return uint32(code), nil
}

// 🔍 Validate checks the configuration and normalizes the message
// override keys into their numeric codes.
func (cfg *Config) Validate() error {
	overrides := make(map[uint32]string, len(cfg.Messages))
	for key, msg := range cfg.Messages {
		code, err := ParseCode(key)
		if err != nil {
			return errors.Errorf("message override %q: %w", key, err)
		}
		if strings.TrimSpace(msg) == "" {
			return errors.Errorf("message override %q: replacement text is empty", key)
		}
		overrides[code] = msg
	}
	cfg.overrides = overrides
	return nil
}

// Overrides returns the message overrides keyed by numeric code.
// Validate must have run first; Load takes care of that.
func (cfg *Config) Overrides() map[uint32]string {
	return cfg.overrides
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("show_errors=%t debug=%t expand_globs=%t messages=%d",
		cfg.ShowErrors, cfg.Debug, cfg.ExpandGlobs, len(cfg.Messages))
}
