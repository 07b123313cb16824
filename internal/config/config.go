// Package config reads process settings from the environment, after loading
// the nearest .env file if one exists.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel = "SESOLVER_LOG_LEVEL"
	EnvWorkers  = "SESOLVER_WORKERS"
	EnvManifest = "SESOLVER_MANIFEST"
)

type Config struct {
	LogLevel zerolog.Level
	// Workers is the solver goroutine count; 0 lets the solver decide
	Workers int
	// ManifestPath is the run manifest database; empty disables recording.
	ManifestPath string
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Workers, validation.Min(0)),
	)
}

// Load reads the configuration. A malformed value is an error, not a silent default.
func Load() (Config, error) {
	if err := maybeLoadDotEnv(); err != nil {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	level, err := logLevel(os.Getenv(EnvLogLevel))
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		LogLevel:     level,
		ManifestPath: os.Getenv(EnvManifest),
	}

	if s := os.Getenv(EnvWorkers); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", EnvWorkers, err)
		}
		cfg.Workers = n
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SetupLogging points the global zerolog logger at a console writer on stderr.
func SetupLogging(level zerolog.Level) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
}

// maybeLoadDotEnv walks from the working directory to the root and loads the first .env found.
// Variables already set in the environment win.
func maybeLoadDotEnv() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	for {
		candidate := filepath.Join(dir, ".env")
		fi, err := os.Stat(candidate)
		switch {
		case err == nil && !fi.IsDir():
			return godotenv.Load(candidate)
		case err != nil && !errors.Is(err, os.ErrNotExist):
			return err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil
		}
		dir = parent
	}
}

// logLevel parses a zerolog level name; empty means info.
func logLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("failed to parse %s: %w", EnvLogLevel, err)
	}
	return level, nil
}
