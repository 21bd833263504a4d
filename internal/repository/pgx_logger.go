package repository

import (
	"context"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// pgxLogger adapts zerolog.Logger to pgx's tracelog interface.
type pgxLogger struct {
	logger zerolog.Logger
}

func newPgxLogger(logger zerolog.Logger) *pgxLogger {
	return &pgxLogger{logger: logger.With().Str("component", "pgx").Logger()}
}

var pgxLevels = map[tracelog.LogLevel]zerolog.Level{
	tracelog.LogLevelTrace: zerolog.TraceLevel,
	tracelog.LogLevelDebug: zerolog.DebugLevel,
	tracelog.LogLevelInfo:  zerolog.InfoLevel,
	tracelog.LogLevelWarn:  zerolog.WarnLevel,
	tracelog.LogLevelError: zerolog.ErrorLevel,
}

// Log implements tracelog.Logger. SQL text and arguments get their own keys so
// list queries stay greppable by table name.
func (l *pgxLogger) Log(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	if level == tracelog.LogLevelNone {
		return
	}

	zl, ok := pgxLevels[level]
	if !ok {
		zl = zerolog.InfoLevel
	}
	event := l.logger.WithLevel(zl)
	if !ok {
		event = event.Str("pgx_log_level", level.String())
	}

	if s, ok := data["sql"].(string); ok {
		event = event.Str("sql", s)
		delete(data, "sql")
	}
	if args, ok := data["args"]; ok && zl <= zerolog.DebugLevel {
		event = event.Interface("args", args)
	}
	delete(data, "args")

	if len(data) > 0 {
		event = event.Fields(data)
	}
	event.Msg(msg)
}

// tracelogLevel picks the most verbose pgx level the logger will still print.
func tracelogLevel(logger zerolog.Logger) tracelog.LogLevel {
	switch lvl := logger.GetLevel(); {
	case lvl <= zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case lvl <= zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case lvl <= zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case lvl <= zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	default:
		return tracelog.LogLevelError
	}
}
