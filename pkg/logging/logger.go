// Package logging builds the hclog loggers used across emfsrc.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/emfsrc/pkg/utils/permissions"
)

// Environment variables read by the logging setup.
const (
	EnvLogLevel = "EMFSRC_LOG_LEVEL"
	EnvJSONLog  = "EMFSRC_JSON_LOG"
	EnvLogPath  = "EMFSRC_LOG_PATH"

	// DefaultLevel keeps decoding quiet unless something is off.
	DefaultLevel = "warn"

	jsonLevelPrefix = "json:"
	linePrefix      = "🖌  "
)

// NewLogger creates a new hclog logger with standard settings. level may
// carry a "json:" prefix to force JSON output.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	level, jsonFormat := ParseLevel(level)
	if os.Getenv(EnvJSONLog) == "1" {
		jsonFormat = true
	}

	// Add prefix for non-JSON output
	if !jsonFormat {
		output = NewPrefixWriter(linePrefix, output)
	}

	opts := &hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}

	return hclog.New(opts)
}

// ParseLevel splits the "json:<level>" form. An empty level is the default.
func ParseLevel(level string) (string, bool) {
	level = strings.TrimSpace(strings.ToLower(level))
	jsonFormat := false
	if strings.HasPrefix(level, jsonLevelPrefix) {
		jsonFormat = true
		level = strings.TrimPrefix(level, jsonLevelPrefix)
	}
	if level == "" {
		level = DefaultLevel
	}
	return level, jsonFormat
}

// GetLogLevel returns the configured log level from environment
func GetLogLevel() string {
	level := os.Getenv(EnvLogLevel)
	if level == "" {
		level = DefaultLevel
	}
	return level
}

// OpenOutput returns the log destination: the file named by EMFSRC_LOG_PATH
// opened for appending, or stderr. The returned close function is never nil.
func OpenOutput() (io.Writer, func() error, error) {
	path := os.Getenv(EnvLogPath)
	if path == "" {
		return os.Stderr, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, permissions.DefaultFilePerms)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, f.Close, nil
}
