package transaction_audit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/vysogota0399/bank_simulator/internal/config"
	"github.com/vysogota0399/bank_simulator/internal/logging"
	"github.com/vysogota0399/bank_simulator/internal/models"
)

var ErrKafkaNotConfigured = errors.New("transaction_audit/consumer: KAFKA_BROKERS is not configured")

type Consumer struct {
	lg        *logging.ZapLogger
	reader    MessageReader
	cancaller context.CancelFunc
	done      chan struct{}
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func NewConsumer(
	lc fx.Lifecycle,
	lg *logging.ZapLogger,
	cfg *Config,
	globalCFG *config.Config,
	errLogger *logging.KafkaErrorLogger,
	logger *logging.KafkaLogger,
) (*Consumer, error) {
	if !globalCFG.KafkaEnabled() {
		return nil, ErrKafkaNotConfigured
	}

	lg.DebugCtx(context.Background(), "start transaction recorded events consumer", zap.String("consumer_group", cfg.KafkaTransactionRecordedGroupID), zap.Any("config", cfg))

	r := kafka.NewReader(kafka.ReaderConfig{
		GroupID:                cfg.KafkaTransactionRecordedGroupID,
		PartitionWatchInterval: time.Duration(cfg.KafkaTransactionRecordedPartitionWatchInterval) * time.Millisecond,
		Brokers:                globalCFG.KafkaBrokers,
		Topic:                  cfg.KafkaTransactionRecordedTopic,
		MinBytes:               10e2, // 1KB
		MaxBytes:               10e6, // 10MB
		ErrorLogger:            errLogger,
		MaxWait:                time.Duration(cfg.KafkaTransactionRecordedMaxWaitInterval) * time.Millisecond,
		Logger:                 logger,
	})

	cns := newConsumer(r, lg)

	lc.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				cns.Start()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				return cns.Stop()
			},
		},
	)

	return cns, nil
}

func newConsumer(r MessageReader, lg *logging.ZapLogger) *Consumer {
	return &Consumer{lg: lg, reader: r}
}

func (cns *Consumer) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	cns.cancaller = cancel
	cns.done = make(chan struct{})

	go cns.consume(cns.lg.WithContextFields(ctx, zap.String("name", "transaction_recorded_consumer")))
}

func (cns *Consumer) Stop() error {
	if cns.cancaller != nil {
		cns.cancaller()
		<-cns.done
	}

	return cns.reader.Close()
}

func (cns *Consumer) consume(ctx context.Context) {
	defer close(cns.done)

	for {
		select {
		case <-ctx.Done():
			cns.lg.DebugCtx(ctx, "consumer graceful shutdown")
			return
		default:
			if err := cns.processMessage(ctx); err != nil && !errors.Is(err, context.Canceled) {
				cns.lg.ErrorCtx(ctx, "process message error", zap.Error(err))
			}
		}
	}
}

// processMessage logs one recorded transaction and commits it. Messages that
// cannot be decoded are logged and committed too, so they do not block the
// partition.
func (cns *Consumer) processMessage(ctx context.Context) error {
	m, err := cns.reader.FetchMessage(ctx)
	if err != nil {
		return fmt.Errorf("transaction_audit/consumer: fetch message error %w", err)
	}

	ctx = cns.lg.WithContextFields(ctx,
		zap.Int("partition", m.Partition),
		zap.Int64("offset", m.Offset),
	)

	payload := models.TransactionEventMeta{}
	if err := payload.UnmarshalProto(m.Value); err != nil {
		cns.lg.ErrorCtx(ctx, "skip undecodable message", zap.Error(err))
	} else {
		cns.lg.InfoCtx(ctx, "transaction recorded",
			zap.Int64("transaction_id", payload.TransactionID),
			zap.String("account_number", payload.AccountNumber),
			zap.String("operation", payload.Operation),
			zap.String("amount", payload.Amount.String()),
			zap.String("balance", payload.Balance.String()),
			zap.Time("processed_at", payload.ProcessedAt),
			zap.String("event_uuid", header(m, "event_uuid")),
		)
	}

	if err := cns.reader.CommitMessages(ctx, m); err != nil {
		return fmt.Errorf("transaction_audit/consumer: failed to commit messages %w", err)
	}

	return nil
}

func header(m kafka.Message, key string) string {
	for _, h := range m.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
