package logging

import (
	"context"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a zap logger to the Logger interface, producing one JSON
// object per record
type ZapLogger struct {
	base  *zap.Logger
	level zap.AtomicLevel
}

// NewZapLogger creates a JSON logger on out (stderr when nil)
func NewZapLogger(out io.Writer) (*ZapLogger, error) {
	if out == nil {
		out = os.Stderr
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(out), level)

	return &ZapLogger{base: zap.New(core), level: level}, nil
}

// NewZapLoggerFromCore wraps an existing core; the level filter is applied
// in front of it
func NewZapLoggerFromCore(core zapcore.Core) *ZapLogger {
	return &ZapLogger{
		base:  zap.New(core),
		level: zap.NewAtomicLevelAt(zapcore.InfoLevel),
	}
}

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	case FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func toZapFields(err error, fields []Fields) []zap.Field {
	var out []zap.Field
	if err != nil {
		out = append(out, zap.Error(err))
	}
	for _, f := range fields {
		for k, v := range f {
			out = append(out, zap.Any(k, v))
		}
	}
	return out
}

func (z *ZapLogger) Debug(msg string, fields ...Fields) {
	if z.level.Enabled(zapcore.DebugLevel) {
		z.base.Debug(msg, toZapFields(nil, fields)...)
	}
}

func (z *ZapLogger) Info(msg string, fields ...Fields) {
	if z.level.Enabled(zapcore.InfoLevel) {
		z.base.Info(msg, toZapFields(nil, fields)...)
	}
}

func (z *ZapLogger) Warn(msg string, fields ...Fields) {
	if z.level.Enabled(zapcore.WarnLevel) {
		z.base.Warn(msg, toZapFields(nil, fields)...)
	}
}

func (z *ZapLogger) Error(err error, msg string, fields ...Fields) {
	if z.level.Enabled(zapcore.ErrorLevel) {
		z.base.Error(msg, toZapFields(err, fields)...)
	}
}

func (z *ZapLogger) Fatal(err error, msg string, fields ...Fields) {
	z.base.Fatal(msg, toZapFields(err, fields)...)
}

func (z *ZapLogger) WithFields(fields Fields) Logger {
	return &ZapLogger{
		base:  z.base.With(toZapFields(nil, []Fields{fields})...),
		level: z.level,
	}
}

func (z *ZapLogger) WithContext(ctx context.Context) Logger {
	if fields, ok := fieldsFromContext(ctx); ok {
		return z.WithFields(fields)
	}
	return z
}

func (z *ZapLogger) SetLevel(level Level) {
	z.level.SetLevel(toZapLevel(level))
}

// Sync flushes buffered records
func (z *ZapLogger) Sync() error {
	return z.base.Sync()
}
