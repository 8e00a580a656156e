// Package config provides shared configuration utilities.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads KEY=value pairs from the given .env files (default ".env") into
// the environment. Variables already set are left alone and missing files
// are ignored.
func Load(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt returns the integer value of the variable, or fallback if it is
// unset or not a valid integer.
func GetEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		log.Warn("Ignoring invalid integer", "key", key, "value", value)
		return fallback
	}
	return n
}

// GetEnvDuration returns the duration value of the variable (e.g. "120ms"),
// or fallback if it is unset or invalid.
func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		log.Warn("Ignoring invalid duration", "key", key, "value", value)
		return fallback
	}
	return d
}

// NewLogger returns a logger writing to stderr at the level named by
// LOG_LEVEL (debug, info, warn, error). The default is info.
func NewLogger(prefix string) *log.Logger {
	level, err := log.ParseLevel(GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportTimestamp: true,
	})
}

// LogFile returns a copy of l writing to the file at path, appending to it.
// An empty path discards output. Call the returned func to close the file.
func LogFile(l *log.Logger, path string) (*log.Logger, func() error, error) {
	fl := l.With()
	if path == "" {
		fl.SetOutput(io.Discard)
		return fl, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	fl.SetOutput(f)
	return fl, f.Close, nil
}
