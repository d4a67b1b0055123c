package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PLOTDOC_"

// envMapping maps environment variables to TOML key paths.
var envMapping = map[string]string{
	EnvPrefix + "LOG_LEVEL":               "log.level",
	EnvPrefix + "LOG_FORMAT":              "log.format",
	EnvPrefix + "HISTORY_MAX_ENTRIES":     "history.max_entries",
	EnvPrefix + "COMMANDS_CONFIRM_DELETE": "commands.confirm_delete",
	EnvPrefix + "PROJECT_DEFAULT_NAME":    "project.default_name",
}

// LookupFunc reports the value of an environment variable.
type LookupFunc func(key string) (string, bool)

// FromEnv applies overrides from the process environment to cfg.
func FromEnv(cfg Config) (Config, error) {
	return ApplyEnv(cfg, os.LookupEnv)
}

// ApplyEnv applies the PLOTDOC_* overrides found through lookup. Empty
// values count as set. The result is validated.
func ApplyEnv(cfg Config, lookup LookupFunc) (Config, error) {
	values := make(map[string]any)
	for env, path := range envMapping {
		if val, ok := lookup(env); ok {
			setByPath(values, path, val)
		}
	}
	if len(values) == 0 {
		return cfg, nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "toml",
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(values); err != nil {
		return Config{}, fmt.Errorf("%w: environment: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}
