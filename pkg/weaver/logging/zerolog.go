package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// NewZerolog returns a Logger writing through zl. Arguments are slog-style
// key/value pairs; a trailing key without a value is dropped.
func NewZerolog(zl zerolog.Logger) Logger {
	return &zeroLogger{logger: zl}
}

type zeroLogger struct {
	logger zerolog.Logger
}

func (l *zeroLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, l.logger.Debug(), msg, args)
}

func (l *zeroLogger) Info(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, l.logger.Info(), msg, args)
}

func (l *zeroLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, l.logger.Warn(), msg, args)
}

func (l *zeroLogger) Error(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, l.logger.Error(), msg, args)
}

func (l *zeroLogger) With(args ...any) Logger {
	return &zeroLogger{logger: l.logger.With().Fields(args).Logger()}
}

func (l *zeroLogger) emit(ctx context.Context, ev *zerolog.Event, msg string, args []any) {
	if ev == nil {
		return
	}
	ev.Ctx(ctx).Fields(args).Msg(msg)
}
