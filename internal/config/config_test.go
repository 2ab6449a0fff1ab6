package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{EnvLogLevel, EnvLogFormat, EnvSync, EnvVerify} {
		t.Setenv(name, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, &Config{LogLevel: "info", LogFormat: "text"}, cfg)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvSync, "true")
	t.Setenv(EnvVerify, "1")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, &Config{LogLevel: "debug", LogFormat: "json", Sync: true, Verify: true}, cfg)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	// An explicitly set variable wins over the file.
	t.Setenv(EnvLogFormat, "text")

	path := filepath.Join(t.TempDir(), "apetag.env")
	content := "APETAG_LOG_LEVEL=warn\nAPETAG_LOG_FORMAT=json\nAPETAG_VERIFY=true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// godotenv only fills unset variables; t.Setenv("") counts as set, so
	// unset the ones the file should provide.
	require.NoError(t, os.Unsetenv(EnvLogLevel))
	require.NoError(t, os.Unsetenv(EnvVerify))
	t.Cleanup(func() {
		os.Unsetenv(EnvLogLevel)
		os.Unsetenv(EnvVerify)
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.True(t, cfg.Verify)
	assert.False(t, cfg.Sync)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "log level", key: EnvLogLevel, value: "verbose"},
		{name: "log format", key: EnvLogFormat, value: "xml"},
		{name: "sync", key: EnvSync, value: "maybe"},
		{name: "verify", key: EnvVerify, value: "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}
