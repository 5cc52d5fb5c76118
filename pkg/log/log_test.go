package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestLoggerLevels(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelInfo)

	testLogger.Debug("hidden")
	testLogger.Info("info message", OperationKey, OperationTrain)
	testLogger.Warn("warning message")
	testLogger.Error("error message", fmt.Errorf("boom"), "code", 7)

	assert.NotEmpty(t, buffer.String())
	assert.False(t, testLogger.ContainsMessage("hidden"))
	assert.True(t, testLogger.ContainsMessage("info message"))
	assert.True(t, testLogger.ContainsMessage("warning message"))
	assert.True(t, testLogger.ContainsField(OperationKey, OperationTrain))
	assert.True(t, testLogger.ContainsField(ErrAttrKey, "boom"))
	assert.True(t, testLogger.ContainsField("code", 7.0))

	assert.True(t, testLogger.Enabled(context.Background(), LevelWarn))
	assert.False(t, testLogger.Enabled(context.Background(), LevelDebug))
}

func TestTestLoggerWith(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelDebug)

	child := testLogger.With(ModelNameKey, "Ridge", ComponentKey, "linear")
	child.Debug("training finished", IterationKey, 1)

	entries, err := testLogger.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Ridge", entries[0][ModelNameKey])
	assert.Equal(t, "linear", entries[0][ComponentKey])
	assert.Equal(t, 1.0, entries[0][IterationKey])

	testLogger.Clear()
	entries, err = testLogger.GetLogEntries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestErrFmtHandlerAddsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(slog.New(WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil))))

	logger.Error("train failed", errors.New("singular"), ModelNameKey, "LinearRegression")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "singular", entry[ErrAttrKey])
	assert.Equal(t, "LinearRegression", entry[ModelNameKey])
	st, ok := entry[StacktraceAttrKey].(string)
	require.True(t, ok, "stacktrace attribute missing")
	assert.True(t, strings.Contains(st, "log_test.go"))
	assert.NotEmpty(t, entry[ErrorTypeKey])
}

func TestSetupLoggerTo(t *testing.T) {
	defer SetLogger(nil)
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	require.NoError(t, SetupLoggerTo(&buf, "debug"))
	GetLogger().Debug("hello", SamplesKey, 3)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "DEBUG", entry["severity"])
	assert.Equal(t, 3.0, entry[SamplesKey])

	assert.Error(t, SetupLoggerTo(&buf, "loud"))
}
