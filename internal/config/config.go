// Package config loads settings for the hexstr tool.
//
// Values are resolved in increasing precedence: defaults, TOML file,
// environment, command-line flags. Flags are applied by the caller.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hupe1980/hexstr/codec"
	"github.com/hupe1980/hexstr/internal/logging"
)

const (
	EnvFormat    = "HEXSTR_FORMAT"
	EnvLogLevel  = "HEXSTR_LOG_LEVEL"
	EnvLogFormat = "HEXSTR_LOG_FORMAT"
	EnvJobs      = "HEXSTR_JOBS"
)

// Config holds the tool settings.
type Config struct {
	// Format is the codec name used for output of encode and input of decode.
	Format string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// LogFormat is text or json.
	LogFormat string
	// Jobs bounds the number of inputs converted concurrently.
	Jobs int
	// Newline terminates each encoded value with a line feed.
	Newline bool
}

type fileConfig struct {
	Format    string `toml:"format"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	Jobs      int    `toml:"jobs"`
	Newline   bool   `toml:"newline"`
}

// Default returns the built-in defaults. Output defaults to the unframed
// text codec rather than codec.Default, so encode prints bare hex lines.
func Default() Config {
	return Config{
		Format:    codec.Text{}.Name(),
		LogLevel:  "info",
		LogFormat: "text",
		Jobs:      runtime.NumCPU(),
		Newline:   true,
	}
}

// Load reads a TOML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("format") {
		cfg.Format = strings.TrimSpace(raw.Format)
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	if meta.IsDefined("log_format") {
		cfg.LogFormat = strings.TrimSpace(raw.LogFormat)
	}

	if meta.IsDefined("jobs") {
		cfg.Jobs = raw.Jobs
	}

	if meta.IsDefined("newline") {
		cfg.Newline = raw.Newline
	}

	return cfg, nil
}

// ApplyEnv overrides cfg with non-empty environment variables read via getenv.
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	if v := strings.TrimSpace(getenv(EnvFormat)); v != "" {
		cfg.Format = v
	}

	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}

	if v := strings.TrimSpace(getenv(EnvLogFormat)); v != "" {
		cfg.LogFormat = v
	}

	if v := strings.TrimSpace(getenv(EnvJobs)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvJobs, err)
		}
		cfg.Jobs = n
	}

	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, ok := codec.ByName(c.Format); !ok {
		return fmt.Errorf("unknown format %q (want one of %s)", c.Format, strings.Join(codec.Names(), ", "))
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log_format %q", c.LogFormat)
	}

	if c.Jobs < 1 {
		return errors.New("jobs must be positive")
	}

	return nil
}
