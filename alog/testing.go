package alog

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test returns a logger for unit tests, logging at LevelDebug.
// Its assertions follow stretchr/testify and return whether they passed.
func Test(t *testing.T) *TestLogger {
	if t == nil {
		panic("t is nil")
	}

	buf := &testBuffer{
		mu:    sync.Mutex{},
		lines: []*bytes.Buffer{},
	}

	handler := newFakedataHandler(
		WithLevel(LevelDebug),
		WithHandler(slog.NewTextHandler(buf, getDebugHandlerOptions())),
	)

	return &TestLogger{
		Logger:  slog.New(handler),
		t:       t,
		buf:     buf,
		handler: handler,
	}
}

// TestLogger is a special logger for unit testing.
// It exposes all methods of slog and alog and can be injected as a logger dependency.
//
// Additionally, TestLogger exposes a set of assertions on all the lines
// logged with this logger.
type TestLogger struct {
	*slog.Logger

	t       *testing.T
	buf     *testBuffer
	handler *fakedataHandler
}

var (
	_ Logger      = (*TestLogger)(nil)
	_ LevelLogger = (*TestLogger)(nil)
)

func (l *TestLogger) SetLevel(level slog.Level) {
	l.handler.SetLevel(level)
}

func (l *TestLogger) Level() slog.Level {
	return l.handler.Level()
}

// Lines returns all lines logged so far.
func (l *TestLogger) Lines() []string {
	l.buf.mu.Lock()
	defer l.buf.mu.Unlock()

	lines := []string{}

	for _, line := range l.buf.lines {
		lines = append(lines, line.String())
	}

	return lines
}

// Contains asserts that at least one line contains the given substring contains.
func (l *TestLogger) Contains(contains string, msgAndArgs ...any) bool {
	l.t.Helper()

	for _, line := range l.Lines() {
		if strings.Contains(line, contains) {
			return true
		}
	}

	return assert.Fail(l.t, "log output does not have a line which contains: "+contains, msgAndArgs...)
}

// NotContains asserts that no line of the log output contains the given substring notContains.
func (l *TestLogger) NotContains(notContains string, msgAndArgs ...any) bool {
	l.t.Helper()

	for _, line := range l.Lines() {
		if strings.Contains(line, notContains) {
			return assert.Fail(l.t, "log output contains: "+notContains+", should not be", msgAndArgs...)
		}
	}

	return true
}

// testBuffer keeps every call to Write as its own line.
// slog handlers call Write exactly once per record.
type testBuffer struct {
	mu    sync.Mutex
	lines []*bytes.Buffer
}

func (a *testBuffer) Write(p []byte) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	buf := &bytes.Buffer{}
	n, err := buf.Write(p)

	a.lines = append(a.lines, buf)

	return n, err //nolint:wrapcheck // bytes.Buffer never returns an error
}
