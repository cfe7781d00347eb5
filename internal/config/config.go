// Package config loads dacviz defaults from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrInvalid indicates a malformed or out-of-range setting.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds defaults the CLI falls back to when a flag is not given.
type Config struct {
	// Logging.
	LogLevel  string // "debug", "info", "warn" or "error".
	LogFormat string // "text" or "json".

	// Output.
	OutputFormat string // Trace writer name, e.g. "text" or "jsonl".
	ZstdLevel    int    // zstd level (1..22) used when compression is on.
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:     "warn",
		LogFormat:    "text",
		OutputFormat: "text",
		ZstdLevel:    3,
	}
}

// Load reads DACVIZ_* variables over Default and validates the result.
func Load() (Config, error) {
	def := Default()
	var errs []error

	zstdLevel, err := envInt("DACVIZ_ZSTD_LEVEL", def.ZstdLevel)
	errs = append(errs, err)

	cfg := Config{
		LogLevel:     strings.ToLower(envStr("DACVIZ_LOG_LEVEL", def.LogLevel)),
		LogFormat:    strings.ToLower(envStr("DACVIZ_LOG_FORMAT", def.LogFormat)),
		OutputFormat: strings.ToLower(envStr("DACVIZ_OUTPUT_FORMAT", def.OutputFormat)),
		ZstdLevel:    zstdLevel,
	}
	errs = append(errs, cfg.Validate())

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the values that can be checked without the writer registry.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.LogFormat)
	}
	if c.OutputFormat == "" {
		return fmt.Errorf("%w: empty output format", ErrInvalid)
	}
	if c.ZstdLevel < 1 || c.ZstdLevel > 22 {
		return fmt.Errorf("%w: zstd level %d not in 1..22", ErrInvalid, c.ZstdLevel)
	}

	return nil
}

func envStr(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return defaultVal
}

func envInt(key string, defaultVal int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal, fmt.Errorf("%w: %s=%q is not a valid integer", ErrInvalid, key, v)
	}

	return n, nil
}
