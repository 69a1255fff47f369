package alog

import (
	"context"
	"log/slog"
)

// NewNoop returns a logger that discards every record.
// Use it as the logger dependency when the log output is of no interest, e.g. in tests.
func NewNoop() *slog.Logger {
	return slog.New(noopHandler{})
}

type noopHandler struct{}

var _ slog.Handler = (*noopHandler)(nil)

func (noopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (noopHandler) Handle(context.Context, slog.Record) error { return nil }
func (n noopHandler) WithAttrs([]slog.Attr) slog.Handler      { return n }
func (n noopHandler) WithGroup(string) slog.Handler           { return n }
