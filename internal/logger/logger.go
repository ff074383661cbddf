// Package logger provides verbose logging for the sercha-complete CLI.
// When verbose mode is enabled via the --verbose flag, diagnostics are
// written to stderr to help users understand the completion pipeline.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	config            = Config{Level: LevelDebug, Format: FormatConsole}
	base              = build()
)

// build creates the logger for the current settings. Callers must hold mu.
func build() zerolog.Logger {
	level, err := parseLevel(config.Level)
	if err != nil {
		level = zerolog.DebugLevel
	}
	if !verbose {
		level = zerolog.Disabled
	}

	w := output
	if config.Format == FormatConsole {
		w = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Configure applies level and format settings.
func Configure(cfg *Config) error {
	if _, err := parseLevel(cfg.Level); err != nil {
		return err
	}
	if cfg.Format != FormatJSON && cfg.Format != FormatConsole {
		return fmt.Errorf("invalid log format: %s", cfg.Format)
	}

	mu.Lock()
	defer mu.Unlock()
	config = *cfg
	base = build()
	return nil
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	base = build()
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	base = build()
}

// Get returns the current logger for structured events.
func Get() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := base
	return &l
}

// Debug logs a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	Get().Debug().Msgf(format, args...)
}

// Section logs a section header if verbose mode is enabled.
func Section(name string) {
	Get().Info().Msgf("=== %s ===", name)
}

// Info logs an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	Get().Info().Msgf(format, args...)
}

// Warn logs a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	Get().Warn().Msgf(format, args...)
}
