// Package config loads tool settings from the environment and an optional
// .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvLogLevel  = "APETAG_LOG_LEVEL"
	EnvLogFormat = "APETAG_LOG_FORMAT"
	EnvSync      = "APETAG_SYNC"
	EnvVerify    = "APETAG_VERIFY"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

// Config holds settings that may also be given as command-line flags.
type Config struct {
	LogLevel  string // debug, info, warn, error
	LogFormat string // text, json
	Sync      bool   // fsync the file after appending
	Verify    bool   // re-read the appended block
}

// Load reads the given .env files (".env" when none are named) and then the
// environment. Missing .env files are ignored; variables already set in the
// environment win over .env entries.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{
		LogLevel:  strings.ToLower(os.Getenv(EnvLogLevel)),
		LogFormat: strings.ToLower(os.Getenv(EnvLogFormat)),
	}

	var err error
	if cfg.Sync, err = parseBoolOrDefault(EnvSync, false); err != nil {
		return nil, err
	}
	if cfg.Verify, err = parseBoolOrDefault(EnvVerify, false); err != nil {
		return nil, err
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = defaultLogFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the log level and format.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be 'text' or 'json'", c.LogFormat)
	}
	return nil
}

func parseBoolOrDefault(name string, defaultValue bool) (bool, error) {
	s := os.Getenv(name)
	if s == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return v, nil
}
