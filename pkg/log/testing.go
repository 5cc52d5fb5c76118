package log

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
)

// TestLogger records everything logged through it as JSON lines, using the
// same handler chain as SetupLogger without touching the process default.
type TestLogger struct {
	Logger
	out *syncBuffer
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// NewTestLogger returns a TestLogger emitting records at level and above,
// along with the buffer the records are written to.
//
//	logger, buf := log.NewTestLogger(log.LevelDebug)
//	model := linear.NewRidge(linear.WithLogger(logger))
//	_ = model.Train(X, y)
//	t.Log(buf.String())
func NewTestLogger(level Level) (*TestLogger, *bytes.Buffer) {
	out := &syncBuffer{}
	return &TestLogger{
		Logger: NewSlogLogger(NewJSONLogger(out, slog.Level(level), false)),
		out:    out,
	}, &out.buf
}

// With keeps the returned logger attached to the same buffer.
func (t *TestLogger) With(fields ...any) Logger {
	return &TestLogger{Logger: t.Logger.With(fields...), out: t.out}
}

// GetLogEntries decodes every captured record.
func (t *TestLogger) GetLogEntries() ([]map[string]interface{}, error) {
	var entries []map[string]interface{}
	sc := bufio.NewScanner(strings.NewReader(t.out.String()))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		if len(bytes.TrimSpace(sc.Bytes())) == 0 {
			continue
		}
		entry := map[string]interface{}{}
		if err := json.Unmarshal(sc.Bytes(), &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, sc.Err()
}

// ContainsMessage reports whether some record has exactly this message.
func (t *TestLogger) ContainsMessage(message string) bool {
	entries, err := t.GetLogEntries()
	if err != nil {
		return false
	}
	for _, e := range entries {
		if e["message"] == message {
			return true
		}
	}
	return false
}

// ContainsField reports whether some record has key set to value. JSON
// numbers decode as float64.
func (t *TestLogger) ContainsField(key string, value interface{}) bool {
	entries, err := t.GetLogEntries()
	if err != nil {
		return false
	}
	for _, e := range entries {
		if v, ok := e[key]; ok && v == value {
			return true
		}
	}
	return false
}

// Clear drops everything captured so far.
func (t *TestLogger) Clear() {
	t.out.mu.Lock()
	defer t.out.mu.Unlock()
	t.out.buf.Reset()
}
