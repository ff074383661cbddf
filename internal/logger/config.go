package logger

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/joeshaw/envdecode"
	"github.com/rs/zerolog"
)

// Level is a log level name.
type Level string

const (
	LevelTrace Level = "trace"
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Format is a log output format.
type Format string

const (
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

// Config controls verbose log output.
type Config struct {
	Level  Level  `env:"SERCHA_LOG_LEVEL,default=debug" validate:"required,oneof=trace debug info warn error"`
	Format Format `env:"SERCHA_LOG_FORMAT,default=console" validate:"required,oneof=json console"`
}

var configValidator = validator.New()

// LoadConfig reads the log configuration from the environment.
func LoadConfig() (*Config, error) {
	var cfg Config

	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode log config: %w", err)
	}
	if cfg.Level == "" {
		cfg.Level = LevelDebug
	}
	if cfg.Format == "" {
		cfg.Format = FormatConsole
	}

	if err := configValidator.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate log config: %w", err)
	}

	return &cfg, nil
}

func parseLevel(level Level) (zerolog.Level, error) {
	switch level {
	case LevelTrace:
		return zerolog.TraceLevel, nil
	case LevelDebug:
		return zerolog.DebugLevel, nil
	case LevelInfo:
		return zerolog.InfoLevel, nil
	case LevelWarn:
		return zerolog.WarnLevel, nil
	case LevelError:
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("invalid log level: %s", level)
	}
}
