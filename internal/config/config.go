// Package config loads the server configuration.
//
// Precedence is defaults < YAML file < environment. The file is
// optional: an explicit SKYCOORD_CONFIG path is used when set,
// otherwise ./skycoord.yaml is picked up when present. Invalid
// environment values are logged as warnings and the previous value is
// kept, so a typo never takes the server down.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sky/skycoord/internal/auth"
)

// Config holds all server settings.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `yaml:"addr"`

	// TrustProxy enables client-IP extraction from X-Forwarded-For /
	// X-Real-IP. Only set behind a trusted reverse proxy.
	TrustProxy bool `yaml:"trust_proxy"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// ShutdownGrace bounds graceful shutdown on SIGINT/SIGTERM.
	ShutdownGrace time.Duration `yaml:"shutdown_grace"`

	Auth auth.Config `yaml:"auth"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:          ":8080",
		LogLevel:      "info",
		ShutdownGrace: 5 * time.Second,
	}
}

// Load builds the configuration from defaults, an optional YAML file
// and SKYCOORD_* environment overrides. It returns an error only for
// an unreadable/invalid config file or an enabled-auth setup without a
// token; soft problems are logged and defaulted.
func Load(logger *slog.Logger) (Config, error) {
	cfg := Default()

	path := os.Getenv("SKYCOORD_CONFIG")
	if path == "" {
		if _, err := os.Stat("skycoord.yaml"); err == nil {
			path = "skycoord.yaml"
		}
	}
	if path != "" {
		if err := loadFile(&cfg, path); err != nil {
			return cfg, fmt.Errorf("loading config from %s: %w", path, err)
		}
		logger.Info("loaded config file", "path", path)
	}

	applyEnv(&cfg, logger)

	if cfg.Auth.Enabled && cfg.Auth.Token == "" {
		return cfg, errors.New("auth is enabled but no token is set (SKYCOORD_AUTH_TOKEN)")
	}

	return cfg, nil
}

// Level parses LogLevel; unknown values fall back to info.
func (c Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func applyEnv(cfg *Config, logger *slog.Logger) {
	if v := os.Getenv("SKYCOORD_HTTP_ADDR"); v != "" {
		cfg.Addr = v
	}

	if v := os.Getenv("SKYCOORD_LOG_LEVEL"); v != "" {
		switch v {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = v
		default:
			logger.Warn("invalid SKYCOORD_LOG_LEVEL value, keeping previous", "value", v, "previous", cfg.LogLevel)
		}
	}

	if v := os.Getenv("SKYCOORD_TRUST_PROXY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			logger.Warn("invalid SKYCOORD_TRUST_PROXY value, keeping previous", "value", v)
		} else {
			cfg.TrustProxy = b
		}
	}

	if v := os.Getenv("SKYCOORD_SHUTDOWN_GRACE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			logger.Warn("invalid SKYCOORD_SHUTDOWN_GRACE value, keeping previous", "value", v)
		} else {
			cfg.ShutdownGrace = time.Duration(n) * time.Second
		}
	}

	if v := os.Getenv("SKYCOORD_AUTH_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			logger.Warn("invalid SKYCOORD_AUTH_ENABLED value, keeping previous", "value", v)
		} else {
			cfg.Auth.Enabled = b
		}
	}

	if v := os.Getenv("SKYCOORD_AUTH_TOKEN"); v != "" {
		cfg.Auth.Token = v
	}
}
