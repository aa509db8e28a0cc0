package logging

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/vysogota0399/bank_simulator/internal/config"
)

// KafkaLogger is handed to kafka-go readers and writers as their Logger. It has
// its own level (KAFKA_LOG_LEVEL) because the client is chatty at debug.
type KafkaLogger struct {
	ZapLogger
}

func NewKafkaLogger(cfg *config.Config) (*KafkaLogger, error) {
	lg, err := NewZapLogger(&config.Config{LogLevel: cfg.KafkaLogLevel, LogOutput: cfg.LogOutput})
	if err != nil {
		return nil, fmt.Errorf("logging: build kafka logger error %w", err)
	}

	return &KafkaLogger{ZapLogger: *lg}, nil
}

func (l *KafkaLogger) Printf(format string, a ...any) {
	l.DebugCtx(l.kafkaContext(), kafkaMessage(format, a))
}

// KafkaErrorLogger receives kafka-go ErrorLogger output at the main log level.
type KafkaErrorLogger struct {
	ZapLogger
}

func NewKafkaErrorLogger(cfg *config.Config) (*KafkaErrorLogger, error) {
	lg, err := NewZapLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("logging: build kafka error logger error %w", err)
	}

	return &KafkaErrorLogger{ZapLogger: *lg}, nil
}

func (l *KafkaErrorLogger) Printf(format string, a ...any) {
	l.ErrorCtx(l.kafkaContext(), kafkaMessage(format, a))
}

func (l *ZapLogger) kafkaContext() context.Context {
	return l.WithContextFields(context.Background(), zap.String("name", "kafka"))
}

// kafka-go formats some messages with a trailing newline.
func kafkaMessage(format string, a []any) string {
	return strings.TrimRight(fmt.Sprintf(format, a...), "\n")
}
