// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Environment variables read by Load.
const (
	EnvLogLevel  = "GUESSIT_LOG_LEVEL"
	EnvLogFormat = "GUESSIT_LOG_FORMAT"
	EnvSeed      = "GUESSIT_SEED"
	EnvNoColor   = "GUESSIT_NO_COLOR"
)

// Config holds settings shared by the guessit binaries.
type Config struct {
	LogLevel  string // debug, info, warn, error
	LogFormat string // text or json
	Seed      uint64 // 0 selects a time-based seed
	NoColor   bool
}

// Load reads .env (when present) and the GUESSIT_* environment variables.
func Load() (Config, error) {
	// A missing .env file is fine; the environment alone is enough.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		LogLevel:  getenvDef(EnvLogLevel, "info"),
		LogFormat: strings.ToLower(getenvDef(EnvLogFormat, "text")),
		NoColor:   asBool(os.Getenv(EnvNoColor)) || os.Getenv("NO_COLOR") != "",
	}
	if v := strings.TrimSpace(os.Getenv(EnvSeed)); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("parse %s=%q: %w", EnvSeed, v, err)
		}
		cfg.Seed = seed
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return cfg, fmt.Errorf("%s must be text or json, got %q", EnvLogFormat, cfg.LogFormat)
	}
	return cfg, nil
}

// ResolveSeed returns Seed, or a time-based seed when Seed is 0.
func (c Config) ResolveSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

// NewLogger builds the process logger. An unknown level falls back to info.
func NewLogger(cfg Config) *logrus.Logger {
	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: cfg.NoColor})
	}
	return log
}

func getenvDef(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func asBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
