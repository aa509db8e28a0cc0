package transaction_outbox

import (
	"fmt"

	"github.com/caarlos0/env"
)

type Config struct {
	PollInterval int   `json:"poll_interval" env:"DAEMON_TRANSACTION_RECORDED_EVENT_POLL_INTERVAL" envDefault:"250"`
	WorkersCount int64 `json:"workers_count" env:"DAEMON_WORKERS_COUNT" envDefault:"5"`
	MaxAttempts  int   `json:"max_attempts" env:"DAEMON_TRANSACTION_RECORDED_MAX_ATTEMPTS" envDefault:"5"`

	KafkaTransactionRecordedTopic string `json:"kafka_transaction_recorded_topic" env:"TRANSACTION_RECORDED_TOPIC" envDefault:"transaction_recorded"`
	KafkaWriteTimeout             int    `json:"kafka_write_timeout" env:"KAFKA_WRITE_TIMEOUT" envDefault:"10000"`
}

func NewConfig() (*Config, error) {
	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("transaction_outbox/config: parse env error %w", err)
	}

	return c, nil
}

func MustNewConfig() *Config {
	c, err := NewConfig()
	if err != nil {
		panic(err)
	}

	return c
}
