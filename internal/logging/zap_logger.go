package logging

import (
	"context"
	"fmt"

	"github.com/vysogota0399/bank_simulator/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxFieldsKey struct{}

// ZapLogger writes zap entries enriched with the fields carried by the context.
type ZapLogger struct {
	logger *zap.Logger
}

func NewZapLogger(cfg *config.Config) (*ZapLogger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.Level(cfg.LogLevel))
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	output := cfg.LogOutput
	if output == "" {
		output = "stderr"
	}
	zcfg.OutputPaths = []string{output}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	lg, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build zap logger error %w", err)
	}

	return &ZapLogger{logger: lg}, nil
}

// New wraps an already built zap logger, tests pass zaptest loggers here.
func New(lg *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: lg}
}

func NewNop() *ZapLogger {
	return &ZapLogger{logger: zap.NewNop()}
}

func (l *ZapLogger) Desugar() *zap.Logger {
	return l.logger
}

func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}

// WithContextFields returns a context whose log entries carry fields in addition
// to the ones already attached to ctx.
func (l *ZapLogger) WithContextFields(ctx context.Context, fields ...zap.Field) context.Context {
	current := contextFields(ctx)
	merged := make([]zap.Field, 0, len(current)+len(fields))
	merged = append(merged, current...)
	merged = append(merged, fields...)

	return context.WithValue(ctx, ctxFieldsKey{}, merged)
}

func (l *ZapLogger) DebugCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.log(ctx, zapcore.DebugLevel, msg, fields)
}

func (l *ZapLogger) InfoCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.log(ctx, zapcore.InfoLevel, msg, fields)
}

func (l *ZapLogger) WarnCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.log(ctx, zapcore.WarnLevel, msg, fields)
}

func (l *ZapLogger) ErrorCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.log(ctx, zapcore.ErrorLevel, msg, fields)
}

func (l *ZapLogger) log(ctx context.Context, lvl zapcore.Level, msg string, fields []zap.Field) {
	ce := l.logger.Check(lvl, msg)
	if ce == nil {
		return
	}

	ce.Write(append(contextFields(ctx), fields...)...)
}

func contextFields(ctx context.Context) []zap.Field {
	if ctx == nil {
		return nil
	}

	fields, _ := ctx.Value(ctxFieldsKey{}).([]zap.Field)
	return fields
}
