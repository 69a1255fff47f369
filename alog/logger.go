// Package alog provides the structured logger used throughout fakedata.
// It is a thin layer over log/slog.
package alog

import (
	"context"
	"log/slog"

	ctx2 "github.com/go-arrower/fakedata/ctx"
)

// Logger interface is a subset of slog.Logger, with the aim to:
//  1. encourage the use of the methods offering context.Context, so that
//     attributes added via AddAttrs end up in every line logged for a run.
//  2. encourage the use of the levels `DEBUG` and `INFO` over others, but without preventing them, see:
//     https://dave.cheney.net/2015/11/05/lets-talk-about-logging
type Logger interface {
	Log(ctx context.Context, level slog.Level, msg string, args ...any)
	LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr)
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	With(args ...any) *slog.Logger
	WithGroup(name string) *slog.Logger
}

var _ Logger = (*slog.Logger)(nil)

const (
	// LevelInfo is used to see what is going on inside fakedata.
	LevelInfo = slog.Level(-8)

	// LevelDebug is used by fakedata developers, if you really want to know what is going on.
	LevelDebug = slog.Level(-12)
)

// MapLogLevelsToName replaces the default name of a custom log level with a speaking name for the fakedata levels.
func MapLogLevelsToName(_ []string, attr slog.Attr) slog.Attr {
	if attr.Key == slog.LevelKey {
		level, _ := attr.Value.Any().(slog.Level)

		levelLabel, exists := getLevelNames()[level]
		if !exists {
			levelLabel = level.String()
		}

		attr.Value = slog.StringValue(levelLabel)
	}

	return attr
}

// getLevelNames maps the fakedata log levels to human-readable names.
func getLevelNames() map[slog.Leveler]string {
	return map[slog.Leveler]string{
		LevelInfo:  "FAKEDATA:INFO",
		LevelDebug: "FAKEDATA:DEBUG",
	}
}

// Error returns an attribute for an error, so all errors are logged under the same key.
func Error(err error) slog.Attr {
	return slog.String("err", err.Error())
}

// AddAttrs adds attributes to ctx.
// All loggers created with New add the attributes of the context to each record.
// The attributes already present stay in place.
func AddAttrs(ctx context.Context, newAttrs ...slog.Attr) context.Context {
	attrs := FromContext(ctx)

	all := make([]slog.Attr, 0, len(attrs)+len(newAttrs))
	all = append(all, attrs...)
	all = append(all, newAttrs...)

	return context.WithValue(ctx, ctx2.CtxLogAttrs, all)
}

// FromContext returns the attributes stored in ctx.
// It never returns nil.
func FromContext(ctx context.Context) []slog.Attr {
	if attrs, ok := ctx.Value(ctx2.CtxLogAttrs).([]slog.Attr); ok {
		return attrs
	}

	return []slog.Attr{}
}
