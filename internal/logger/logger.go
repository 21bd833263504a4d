package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type Config struct {
	Level              string         `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	Format             string         `mapstructure:"format" validate:"oneof=json console"`
	OutputTarget       string         `mapstructure:"output_target" validate:"oneof=stdout stderr"`
	TimeField          string         `mapstructure:"time_field"`
	TimeFormat         string         `mapstructure:"time_format" validate:"oneof=rfc3339 rfc3339nano unix unix_ms"`
	ServiceName        string         `mapstructure:"service_name"`
	ServiceVersion     string         `mapstructure:"service_version"`
	Env                string         `mapstructure:"env" validate:"oneof=dev test staging prod"`
	WithCaller         bool           `mapstructure:"with_caller"`
	Stacktrace         bool           `mapstructure:"stacktrace"`
	StacktraceMinLevel string         `mapstructure:"stacktrace_min_level" validate:"oneof=debug info warn error fatal panic"`
	DebugFile          string         `mapstructure:"debug_file"`
	Fields             map[string]any `mapstructure:"fields"`
}

// New builds the process logger. In dev with debug level, console output is teed
// into DebugFile so a full history survives the terminal.
func New(cfg *Config) (zerolog.Logger, error) {
	cfg.setDefaults()

	if err := validator.New().Struct(cfg); err != nil {
		return zerolog.Nop(), fmt.Errorf("logger config validation error: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	zerolog.TimestampFieldName = cfg.TimeField
	zerolog.TimeFieldFormat = timeLayout(cfg.TimeFormat)

	ctx := zerolog.New(writer(cfg)).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("version", cfg.ServiceVersion).
		Str("env", cfg.Env)

	if cfg.WithCaller {
		ctx = ctx.Caller()
	}
	if cfg.Stacktrace {
		ctx = ctx.Stack()
	}
	if len(cfg.Fields) > 0 {
		ctx = ctx.Fields(cfg.Fields)
	}

	// set log level globally too, so package-level zerolog/log callers agree
	zerolog.SetGlobalLevel(level)

	return ctx.Logger(), nil
}

func writer(cfg *Config) io.Writer {
	var out io.Writer = os.Stdout
	if cfg.OutputTarget == "stderr" {
		out = os.Stderr
	}
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	if cfg.Env != "dev" || cfg.Level != "debug" || cfg.DebugFile == "" {
		return out
	}
	// don't crash if the debug file can't be opened; console alone is fine
	if err := os.MkdirAll(filepath.Dir(cfg.DebugFile), 0o755); err != nil {
		return out
	}
	file, err := os.OpenFile(cfg.DebugFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return out
	}
	return zerolog.MultiLevelWriter(out, file)
}

func timeLayout(format string) string {
	switch format {
	case "rfc3339":
		return time.RFC3339
	case "unix":
		return zerolog.TimeFormatUnix
	case "unix_ms":
		return zerolog.TimeFormatUnixMs
	default:
		return time.RFC3339Nano
	}
}

func (c *Config) setDefaults() {
	if c.Env == "" {
		c.Env = "prod"
	}

	if c.Level == "" {
		if c.Env == "dev" {
			c.Level = "debug"
		} else {
			c.Level = "info"
		}
	}

	if c.Format == "" {
		if c.Env == "dev" {
			c.Format = "console"
		} else {
			c.Format = "json"
		}
	}

	if c.OutputTarget == "" {
		c.OutputTarget = "stdout"
	}

	if c.TimeField == "" {
		c.TimeField = "ts"
	}
	if c.TimeFormat == "" {
		c.TimeFormat = "rfc3339nano"
	}

	if !c.WithCaller && c.Env == "dev" {
		c.WithCaller = true
	}
	if c.StacktraceMinLevel == "" {
		c.StacktraceMinLevel = "error"
	}
	if c.DebugFile == "" && c.Env == "dev" {
		c.DebugFile = "logs/debug.log"
	}

	if c.ServiceName == "" {
		c.ServiceName = "studio-backoffice"
	}
	if c.ServiceVersion == "" {
		c.ServiceVersion = "0.0.1"
	}
}
