package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8030", cfg.AccountsServerAddress)
	assert.Equal(t, "127.0.0.1:8040", cfg.AccountingServerAddress)
	assert.Equal(t, 10, cfg.CredentialHashCost)
	assert.Equal(t, 16, cfg.AccountNumberAttempts)
	assert.Equal(t, 900, cfg.SessionTTL)
	assert.False(t, cfg.KafkaEnabled())
}

func TestNewConfig_Environment(t *testing.T) {
	t.Setenv("ACCOUNTING_SERVER_ADDRESS", "0.0.0.0:9999")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("CREDENTIAL_HASH_COST", "4")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9999", cfg.AccountingServerAddress)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 4, cfg.CredentialHashCost)
	assert.True(t, cfg.KafkaEnabled())
}

func TestNewConfig_InvalidValue(t *testing.T) {
	t.Setenv("SESSION_TTL", "fifteen minutes")

	_, err := NewConfig()
	assert.Error(t, err)
}
