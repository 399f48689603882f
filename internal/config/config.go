// Package config holds textnav settings and loads them from files and the
// environment.
//
// Sources are applied in order, later ones winning:
//
//  1. Default()
//  2. a TOML or YAML file (optional; a missing file is ignored)
//  3. TEXTNAV_* environment variables
//
// Unknown keys in a file are errors. Environment variables that do not name
// a setting are ignored, since the prefix may be shared with other tools.
//
// Command-line flags are applied by the caller on top of the result.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/textnav/internal/config/loader"
	"github.com/dshills/textnav/internal/engine/buffer"
	"github.com/dshills/textnav/internal/logging"
	"github.com/dshills/textnav/internal/nav"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "TEXTNAV_"

// Config holds all textnav settings.
type Config struct {
	Logging LoggingConfig
	Words   WordsConfig
	Markers MarkersConfig
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	// Level is one of debug, info, warn or error.
	Level string
}

// WordsConfig configures which characters form words.
type WordsConfig struct {
	// Unicode extends word characters to letters and digits of any script.
	Unicode bool
}

// MarkersConfig configures the enclosed-word locator.
type MarkersConfig struct {
	// MultiChar permits markers longer than one character.
	MultiChar bool
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load builds a configuration from defaults, the file at path (if any) and
// the environment.
func Load(path string) (Config, error) {
	return LoadWithFS(loader.DefaultFS(), path, loader.NewEnvLoader(EnvPrefix))
}

// LoadWithFS is Load with an explicit file system and environment loader.
// An empty path skips the file source; a nil env skips the environment.
func LoadWithFS(fsys loader.FileSystem, path string, env loader.Loader) (Config, error) {
	cfg := Default()

	if path != "" {
		values, err := loader.ForPath(fsys, path).Load()
		if err != nil {
			return Config{}, err
		}
		if err := cfg.Apply(values); err != nil {
			return Config{}, err
		}
	}

	if env != nil {
		values, err := env.Load()
		if err != nil {
			return Config{}, err
		}
		if err := cfg.apply(values, false); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Apply overlays values loaded from a source onto c.
// Unknown keys are rejected with ErrUnknownSetting.
func (c *Config) Apply(values map[string]any) error {
	return c.apply(values, true)
}

// apply overlays values onto c. Unknown keys are skipped unless strict.
func (c *Config) apply(values map[string]any, strict bool) error {
	flat := make(map[string]any)
	flatten("", values, flat)

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := flat[key]
		var err error
		switch key {
		case "logging.level":
			c.Logging.Level, err = asString(key, value)
		case "words.unicode":
			c.Words.Unicode, err = asBool(key, value)
		case "markers.multi_char":
			c.Markers.MultiChar, err = asBool(key, value)
		default:
			if strict {
				err = fmt.Errorf("%w: %s", ErrUnknownSetting, key)
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Validate checks that every setting holds an allowed value.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return &ValidationError{
			Path:    "logging.level",
			Message: "must be debug, info, warn or error",
			Value:   c.Logging.Level,
		}
	}
	return nil
}

// LogLevel returns the parsed logging level, defaulting to info.
func (c Config) LogLevel() logging.Level {
	level, err := logging.ParseLevel(c.Logging.Level)
	if err != nil {
		return logging.LevelInfo
	}
	return level
}

// DocumentOptions returns the buffer options implied by c.
func (c Config) DocumentOptions() []buffer.Option {
	var opts []buffer.Option
	if c.Words.Unicode {
		opts = append(opts, buffer.WithUnicodeWords())
	}
	return opts
}

// NavigatorOptions returns the navigator options implied by c.
func (c Config) NavigatorOptions(logger *logging.Logger) []nav.Option {
	return []nav.Option{
		nav.WithLogger(logger),
		nav.WithMultiCharMarkers(c.Markers.MultiChar),
	}
}

// flatten turns nested maps into dotted keys.
func flatten(prefix string, in map[string]any, out map[string]any) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(key, nested, out)
			continue
		}
		out[key] = v
	}
}

func asString(path string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: fmt.Sprintf("%T", v)}
	}
	return s, nil
}

func asBool(path string, v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case int64:
		return b != 0, nil
	case int:
		return b != 0, nil
	case string:
		switch strings.ToLower(b) {
		case "true", "yes", "on", "1":
			return true, nil
		case "false", "no", "off", "0":
			return false, nil
		}
	}
	return false, &TypeError{Path: path, Expected: "bool", Actual: fmt.Sprintf("%T", v)}
}
