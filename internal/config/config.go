package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the process settings read from the environment.
type Config struct {
	LogLevel string `env:"LOG_LEVEL"`
	Debug    bool   `env:"DEBUG"`
	LogFile  string `env:"LOG_FILE"`
	// Version overrides the version announced in the ready event.
	Version string `env:"MCP_HELLO_VERSION"`
}

// Load reads an optional .env file from the working directory and then
// decodes the environment. Values already set in the environment win.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse decodes the environment without touching .env files.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFile = expandHome(strings.TrimSpace(cfg.LogFile))
	cfg.Version = strings.TrimSpace(cfg.Version)
	return cfg, nil
}

// Level maps LogLevel to a logrus level. DEBUG=1 implies debug when no
// explicit level is set; unknown names fall back to info.
func (c Config) Level() logrus.Level {
	level := c.LogLevel
	if level == "" && c.Debug {
		level = "debug"
	}
	switch level {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
