package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines the interface for structured logging.
// Implementations are safe for concurrent use.
type Logger interface {
	Debug(ctx context.Context, arg ...any)
	Debugf(ctx context.Context, template string, arg ...any)
	Info(ctx context.Context, arg ...any)
	Infof(ctx context.Context, template string, arg ...any)
	Warn(ctx context.Context, arg ...any)
	Warnf(ctx context.Context, template string, arg ...any)
	Error(ctx context.Context, arg ...any)
	Errorf(ctx context.Context, template string, arg ...any)
	Fatal(ctx context.Context, arg ...any)
	Fatalf(ctx context.Context, template string, arg ...any)

	// With returns a context carrying a child logger annotated with the
	// given key/value pairs. Calls made with that context include them.
	With(ctx context.Context, keysAndValues ...any) context.Context
	Sync() error
}

// Init initializes and returns a new Logger with the provided Zap configuration.
func Init(cfg ZapConfig) Logger {
	logger := &zapLogger{cfg: &cfg}
	logger.init()
	return logger
}

// NewFromCore wraps an existing zapcore.Core. Used by tests with zaptest/observer.
func NewFromCore(core zapcore.Core) Logger {
	return &zapLogger{
		cfg:         &ZapConfig{},
		sugarLogger: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar(),
	}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return NewFromCore(zapcore.NewNopCore())
}
