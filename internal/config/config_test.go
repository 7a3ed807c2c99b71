package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Tests Load with defaults, file values, and env overrides. Env-dependent
// cases use t.Setenv, so no t.Parallel here.
func TestLoad(t *testing.T) {
	t.Run("defaults_when_no_file", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, "http://localhost:8080", cfg.Server.BaseURL)
		require.Equal(t, "info", cfg.LogLevel)
		require.False(t, cfg.DemoSeed)
		require.NoError(t, cfg.Validate())
	})

	t.Run("missing_file_is_skipped", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.NoError(t, err)
		require.Equal(t, 8080, cfg.Server.Port)
	})

	t.Run("file_values_override_defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
log_level = "debug"
demo_seed = true

[server]
port = 9090
base_url = "https://calcutta.example.com"
token_secret = "file-secret"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 9090, cfg.Server.Port)
		require.Equal(t, "https://calcutta.example.com", cfg.Server.BaseURL)
		require.Equal(t, "file-secret", cfg.Server.TokenSecret)
		require.Equal(t, "debug", cfg.LogLevel)
		require.True(t, cfg.DemoSeed)
		require.Equal(t, ":9090", cfg.Addr())
	})

	t.Run("env_overrides_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("[server]\nport = 9090\n"), 0o600))

		t.Setenv("CALCUTTA_SERVER_PORT", "7000")
		t.Setenv("CALCUTTA_TOKEN_SECRET", "env-secret")
		t.Setenv("CALCUTTA_LOG_LEVEL", "warn")
		t.Setenv("CALCUTTA_DEMO_SEED", "true")

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 7000, cfg.Server.Port)
		require.Equal(t, "env-secret", cfg.Server.TokenSecret)
		require.Equal(t, "warn", cfg.LogLevel)
		require.True(t, cfg.DemoSeed)
	})

	t.Run("port_alias", func(t *testing.T) {
		t.Setenv("PORT", "3000")
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, 3000, cfg.Server.Port)
	})

	t.Run("malformed_file_fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("[server\nport ="), 0o600))

		_, err := Load(path)
		require.Error(t, err)
	})
}

// Tests Validate
func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		mutate      func(cfg *Config)
		expectError bool
	}{
		{name: "defaults_valid", mutate: func(cfg *Config) {}, expectError: false},
		{name: "zero_port", mutate: func(cfg *Config) { cfg.Server.Port = 0 }, expectError: true},
		{name: "port_out_of_range", mutate: func(cfg *Config) { cfg.Server.Port = 70000 }, expectError: true},
		{name: "empty_token_secret", mutate: func(cfg *Config) { cfg.Server.TokenSecret = "" }, expectError: true},
		{name: "unknown_log_level", mutate: func(cfg *Config) { cfg.LogLevel = "verbose" }, expectError: true},
		{name: "error_level_valid", mutate: func(cfg *Config) { cfg.LogLevel = "error" }, expectError: false},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := Defaults()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
