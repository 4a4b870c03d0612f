package logging

import (
	"context"
	"os"
	"sync/atomic"
	"time"

	"github.com/samber/lo"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type (
	Field  = zapcore.Field
	Option = zap.Option
)

type ctxKey struct{}

// Logger is the zap logger handed around in a context.Context.
type Logger struct {
	z *zap.Logger
}

var process atomic.Pointer[Logger]

// Config returns the zap configuration for the process logger. It writes
// JSON when GO_ENVIRONMENT is "production" and coloured console lines
// otherwise.
func Config(debug bool) zap.Config {
	cfg := zap.NewDevelopmentConfig()
	if os.Getenv("GO_ENVIRONMENT") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		cfg.Level.SetLevel(zapcore.DebugLevel)
	}
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	return cfg
}

// Build creates a Logger from Config. Callers are reported past the
// Logger methods.
func Build(debug bool, opts ...Option) (*Logger, error) {
	opts = append([]Option{zap.AddCallerSkip(1)}, opts...)

	z, err := Config(debug).Build(opts...)
	if err != nil {
		return nil, errs.Wrap(err)
	}

	return FromZap(z), nil
}

// SetGlobal installs l as the logger returned by Global and by FromContext
// when the context has none.
func SetGlobal(l *Logger) {
	if l != nil {
		process.Store(l)
	}
}

// Global returns the process logger, building a debug one on first use if
// SetGlobal was never called.
func Global() *Logger {
	if l := process.Load(); l != nil {
		return l
	}

	l, err := Build(true)
	if err != nil {
		l = FromZap(zap.NewNop())
	}
	process.CompareAndSwap(nil, l)

	return process.Load()
}

func FromZap(z *zap.Logger) *Logger {
	return &Logger{z: z}
}

// FromCore builds a Logger writing only to core.
func FromCore(core zapcore.Core) *Logger {
	return FromZap(zap.New(core))
}

func FromContext(ctx context.Context) *Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
			return l
		}
	}

	return Global()
}

// Capture returns a context whose logger records entries instead of writing
// them, and a function that hands back the recorded messages in the order
// they were logged. Each call of the function returns only what was logged
// since the previous one.
func Capture(ctx context.Context) (context.Context, func() []string) {
	if ctx == nil {
		ctx = context.Background()
	}

	core, logs := observer.New(zapcore.DebugLevel)

	return FromCore(core).GetContext(ctx), func() []string {
		return lo.Map(logs.TakeAll(), func(e observer.LoggedEntry, _ int) string {
			return e.Message
		})
	}
}

func (l *Logger) GetContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

func (l *Logger) With(fields ...Field) *Logger {
	return FromZap(l.z.With(fields...))
}

func (l *Logger) Debug(msg string, fields ...Field) {
	l.z.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...Field) {
	l.z.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...Field) {
	l.z.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...Field) {
	l.z.Error(msg, fields...)
}

// Fatal logs at fatal level and exits the process.
func (l *Logger) Fatal(msg string, fields ...Field) {
	l.z.Fatal(msg, fields...)
}

func (l *Logger) Sync() error {
	return l.z.Sync()
}
