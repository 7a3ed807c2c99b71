// Package config defines the server configuration for the auction service
// and provides validation helpers.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config is the root configuration structure. Fields are populated from a
// TOML file and then optionally overridden by CALCUTTA_* environment
// variables.
type Config struct {
	Server   ServerConfig `toml:"server"`
	LogLevel string       `toml:"log_level"`
	DemoSeed bool         `toml:"demo_seed"`
}

// ServerConfig holds the HTTP listener and link-signing settings.
type ServerConfig struct {
	Port        int    `toml:"port"`
	BaseURL     string `toml:"base_url"`
	TokenSecret string `toml:"token_secret"`
}

// Defaults returns the built-in configuration used when no file or override
// supplies a value.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:        8080,
			BaseURL:     "http://localhost:8080",
			TokenSecret: "dev-player-token-secret",
		},
		LogLevel: "info",
		DemoSeed: false,
	}
}

// Load reads a TOML configuration file at path (skipped when path is empty
// or missing), merges it on top of the built-in defaults, applies CALCUTTA_*
// environment variable overrides, and returns the final Config. The caller
// should invoke Config.Validate() after Load.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return nil, fmt.Errorf("config: decode %s: %w", path, err)
			}
		}
	}

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides reads well-known CALCUTTA_* environment variables and
// overwrites the corresponding Config fields when a variable is set. This
// lets operators inject the token secret at deploy time without touching the
// TOML file.
func applyEnvOverrides(cfg *Config) {
	setInt(&cfg.Server.Port, "CALCUTTA_SERVER_PORT")
	setInt(&cfg.Server.Port, "PORT") // compatibility alias
	setStr(&cfg.Server.BaseURL, "CALCUTTA_BASE_URL")
	setStr(&cfg.Server.TokenSecret, "CALCUTTA_TOKEN_SECRET")
	setStr(&cfg.LogLevel, "CALCUTTA_LOG_LEVEL")
	setBool(&cfg.DemoSeed, "CALCUTTA_DEMO_SEED")
}

// Validate checks the loaded configuration for obviously broken values.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: invalid server port %d", c.Server.Port)
	}
	if c.Server.TokenSecret == "" {
		return fmt.Errorf("config: token secret must not be empty")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	return nil
}

// Addr returns the listen address in ":port" form.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
