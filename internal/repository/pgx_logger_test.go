package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgxLogger_Log(t *testing.T) {
	var buf bytes.Buffer
	l := newPgxLogger(zerolog.New(&buf).Level(zerolog.TraceLevel))

	l.Log(context.Background(), tracelog.LogLevelInfo, "Query", map[string]any{
		"sql":  "SELECT 1",
		"args": []any{1},
		"time": "1ms",
	})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "pgx", line["component"])
	assert.Equal(t, "SELECT 1", line["sql"])
	assert.Equal(t, "1ms", line["time"])
	assert.NotContains(t, line, "args", "args only surface at debug and below")
}

func TestPgxLogger_NoneIsSilent(t *testing.T) {
	var buf bytes.Buffer
	newPgxLogger(zerolog.New(&buf)).Log(context.Background(), tracelog.LogLevelNone, "x", nil)
	assert.Zero(t, buf.Len())
}

func TestTracelogLevel(t *testing.T) {
	assert.Equal(t, tracelog.LogLevelTrace, tracelogLevel(zerolog.Nop().Level(zerolog.TraceLevel)))
	assert.Equal(t, tracelog.LogLevelDebug, tracelogLevel(zerolog.Nop().Level(zerolog.DebugLevel)))
	assert.Equal(t, tracelog.LogLevelWarn, tracelogLevel(zerolog.Nop().Level(zerolog.WarnLevel)))
	assert.Equal(t, tracelog.LogLevelError, tracelogLevel(zerolog.Nop().Level(zerolog.ErrorLevel)))
}
