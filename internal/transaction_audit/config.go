package transaction_audit

import (
	"fmt"

	"github.com/caarlos0/env"
)

type Config struct {
	KafkaTransactionRecordedTopic                  string `json:"kafka_transaction_recorded_topic" env:"TRANSACTION_RECORDED_TOPIC" envDefault:"transaction_recorded"`
	KafkaTransactionRecordedGroupID                string `json:"kafka_transaction_recorded_group_id" env:"KAFKA_TRANSACTION_RECORDED_GROUP_ID" envDefault:"bank_transaction_audit_consumer_group"`
	KafkaTransactionRecordedPartitionWatchInterval int    `json:"kafka_transaction_recorded_partition_watch_interval" env:"KAFKA_TRANSACTION_RECORDED_PARTITION_WATCH_INTERVAL" envDefault:"50000"`
	KafkaTransactionRecordedMaxWaitInterval        int    `json:"kafka_transaction_recorded_max_wait_interval" env:"KAFKA_TRANSACTION_RECORDED_MAX_WAIT_INTERVAL" envDefault:"250"`
}

func NewConfig() (*Config, error) {
	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("transaction_audit/config: parse env error %w", err)
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
