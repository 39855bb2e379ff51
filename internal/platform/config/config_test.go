package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://localhost/remit")
	t.Setenv("SETTLEMENT_DELAY", "")
	t.Setenv("KAFKA_BROKERS", "")

	cfg, err := LoadConfig()

	assert.NoError(t, err)
	assert.Equal(t, "postgres://localhost/remit", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.SettlementDelay)
	assert.Equal(t, 0.8, cfg.SettlementSuccessRate)
	assert.Equal(t, uint64(0), cfg.SettlementSeed)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "remittance.transactions.resolved", cfg.KafkaTopic)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("PORT", "9000")
	v.Set("SETTLEMENT_DELAY", "250ms")
	v.Set("SETTLEMENT_SUCCESS_RATE", 0.5)
	v.Set("SETTLEMENT_SEED", 42)
	v.Set("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	v.Set("JWT_EXPIRY_DURATION", "not-a-duration")

	cfg := fromViper(v)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.SettlementDelay)
	assert.Equal(t, 0.5, cfg.SettlementSuccessRate)
	assert.Equal(t, uint64(42), cfg.SettlementSeed)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
}

func TestFromViper_SuccessRateOutOfRange(t *testing.T) {
	v := viper.New()
	v.Set("SETTLEMENT_SUCCESS_RATE", 1.5)

	cfg := fromViper(v)

	assert.Equal(t, 0.8, cfg.SettlementSuccessRate)
}
