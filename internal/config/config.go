// Package config loads plotdoc settings from TOML.
//
// A missing file is not an error: every field has a default, and values
// present in the file override only the keys they name.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config is the full set of settings.
type Config struct {
	Log      LogConfig      `toml:"log"`
	History  HistoryConfig  `toml:"history"`
	Commands CommandsConfig `toml:"commands"`
	Project  ProjectConfig  `toml:"project"`
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// HistoryConfig controls the undo/redo stacks.
type HistoryConfig struct {
	// MaxEntries bounds the undo stack; the oldest entry is dropped first.
	MaxEntries int `toml:"max_entries"`
}

// CommandsConfig controls command behavior.
type CommandsConfig struct {
	// ConfirmDelete asks the user before a delete command mutates anything.
	ConfirmDelete bool `toml:"confirm_delete"`
}

// ProjectConfig holds project defaults.
type ProjectConfig struct {
	DefaultName string `toml:"default_name"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		History: HistoryConfig{
			MaxEntries: 10,
		},
		Commands: CommandsConfig{
			ConfirmDelete: true,
		},
		Project: ProjectConfig{
			DefaultName: "Untitled Project",
		},
	}
}

// Load reads configuration from path. A missing file yields Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return parse(path, data)
}

// LoadFromReader reads configuration from r.
func LoadFromReader(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return parse("<reader>", data)
}

// Parse decodes TOML data on top of the defaults.
func Parse(data []byte) (Config, error) {
	return parse("<data>", data)
}

func parse(path string, data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			line, col := decodeErr.Position()
			return Config{}, &ParseError{
				Path:    path,
				Line:    line,
				Column:  col,
				Message: decodeErr.Error(),
				Err:     err,
			}
		}
		return Config{}, &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	if c.History.MaxEntries <= 0 {
		return fmt.Errorf("%w: history.max_entries must be positive, got %d", ErrInvalidConfig, c.History.MaxEntries)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error", "trace":
	default:
		return fmt.Errorf("%w: unknown log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	if strings.TrimSpace(c.Project.DefaultName) == "" {
		return fmt.Errorf("%w: project.default_name must not be empty", ErrInvalidConfig)
	}
	return nil
}
