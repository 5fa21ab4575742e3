// SPDX-License-Identifier: MIT
// Package: metisconv/cmd/metisconv/config

// Package config loads the metisconv run configuration from YAML.
//
// Example file:
//
//	mode: pairs          # pairs | rows
//	comment_prefix: "#"
//	verify: true
//	log_level: info      # debug | info | warn | error
//	log_format: text     # text | json
//
// Keys missing from the file keep their Default() value.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metisconv/convert"
	"github.com/katalvlaran/metisconv/edgelist"
)

// ErrInvalid indicates a configuration value that cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Config is the complete set of knobs the CLI understands.
type Config struct {
	Mode          string `yaml:"mode"`
	CommentPrefix string `yaml:"comment_prefix"`
	Verify        bool   `yaml:"verify"`
	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Mode:          edgelist.ModePairs.String(),
		CommentPrefix: "#",
		Verify:        true,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// Load reads path over Default() and validates the result. An empty path
// returns the validated defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := edgelist.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("mode %q: %w", c.Mode, ErrInvalid)
	}
	if c.CommentPrefix == "" {
		return fmt.Errorf("comment_prefix is empty: %w", ErrInvalid)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log_format %q: %w", c.LogFormat, ErrInvalid)
	}

	return nil
}

// ConvertOptions maps the configuration onto convert options. The config
// must have passed Validate.
func (c Config) ConvertOptions(logger *slog.Logger) []convert.Option {
	mode, _ := edgelist.ParseMode(c.Mode)

	return []convert.Option{
		convert.WithMode(mode),
		convert.WithCommentPrefix(c.CommentPrefix),
		convert.WithVerify(c.Verify),
		convert.WithLogger(logger),
	}
}

// Logger builds the slog logger described by LogLevel and LogFormat,
// writing to w. Invalid values fall back to info/text.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", s, ErrInvalid)
	}

	return level, nil
}
