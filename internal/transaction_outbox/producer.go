package transaction_outbox

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"

	"github.com/vysogota0399/bank_simulator/internal/config"
	"github.com/vysogota0399/bank_simulator/internal/logging"
	"github.com/vysogota0399/bank_simulator/internal/models"
)

// Producer writes transaction_recorded events keyed by account number, so the
// events of one account keep their order inside a partition.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(
	lc fx.Lifecycle,
	cfg *Config,
	globalCFG *config.Config,
	logger *logging.KafkaLogger,
	errLogger *logging.KafkaErrorLogger,
) *Producer {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(globalCFG.KafkaBrokers...),
		Topic:                  cfg.KafkaTransactionRecordedTopic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		WriteTimeout:           time.Duration(cfg.KafkaWriteTimeout) * time.Millisecond,
		AllowAutoTopicCreation: true,
		Logger:                 logger,
		ErrorLogger:            errLogger,
	}

	p := &Producer{writer: w}

	lc.Append(
		fx.Hook{
			OnStop: func(ctx context.Context) error {
				return p.writer.Close()
			},
		},
	)

	return p
}

func (p *Producer) Publish(ctx context.Context, e *models.TransactionEvent) error {
	value, err := e.Meta.MarshalProto()
	if err != nil {
		return fmt.Errorf("transaction_outbox/producer: marshal event error %w", err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.Meta.AccountNumber),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_uuid", Value: []byte(e.UUID)},
			{Key: "event_name", Value: []byte(e.Name)},
		},
	}); err != nil {
		return fmt.Errorf("transaction_outbox/producer: write message error %w", err)
	}

	return nil
}
