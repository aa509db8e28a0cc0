package config

import (
	"fmt"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

type Config struct {
	AccountsServerAddress   string `json:"accounts_server_address" env:"ACCOUNTS_SERVER_ADDRESS" envDefault:"127.0.0.1:8030"`
	AccountingServerAddress string `json:"accounting_server_address" env:"ACCOUNTING_SERVER_ADDRESS" envDefault:"127.0.0.1:8040"`
	LogLevel                int    `json:"log_level" env:"LOG_LEVEL" envDefault:"-1"`
	LogOutput               string `json:"log_output" env:"LOG_OUTPUT" envDefault:"stderr"`
	ConsoleLogLevel         int    `json:"console_log_level" env:"CONSOLE_LOG_LEVEL" envDefault:"1"`

	CredentialHashCost    int `json:"credential_hash_cost" env:"CREDENTIAL_HASH_COST" envDefault:"10"`
	AccountNumberAttempts int `json:"account_number_attempts" env:"ACCOUNT_NUMBER_ATTEMPTS" envDefault:"16"`

	SessionSecret string `json:"-" env:"SESSION_SECRET" envDefault:"bank-simulator-development-secret"`
	SessionIssuer string `json:"session_issuer" env:"SESSION_ISSUER" envDefault:"bank_simulator"`
	SessionTTL    int    `json:"session_ttl" env:"SESSION_TTL" envDefault:"900"`

	KafkaBrokers  []string `json:"kafka_brokers" env:"KAFKA_BROKERS" envSeparator:","`
	KafkaLogLevel int      `json:"kafka_log_level" env:"KAFKA_LOG_LEVEL" envDefault:"0"`
}

// KafkaEnabled reports whether transaction events leave the process.
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func NewConfig() (*Config, error) {
	// .env is optional, real environment wins over it
	_ = godotenv.Load()

	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("config: parse environment error %w", err)
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
