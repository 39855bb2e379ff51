package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	FrontendBaseURL string
	RateLimit       string

	// Settlement simulation
	SettlementDelay       time.Duration
	SettlementSuccessRate float64
	SettlementSeed        uint64

	// Optional integrations; empty disables them.
	KafkaBrokers  []string
	KafkaTopic    string
	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "parachain-remit")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:5173")
	v.SetDefault("RATE_LIMIT", "120-M")
	v.SetDefault("SETTLEMENT_DELAY", "5s")
	v.SetDefault("SETTLEMENT_SUCCESS_RATE", 0.8)
	v.SetDefault("SETTLEMENT_SEED", 0)
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_TOPIC", "remittance.transactions.resolved")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTExpiryDuration = parseDuration(v, "JWT_EXPIRY_DURATION", time.Hour)
	cfg.JWTIssuer = v.GetString("JWT_ISSUER")

	cfg.FrontendBaseURL = v.GetString("FRONTEND_BASE_URL")
	cfg.RateLimit = v.GetString("RATE_LIMIT")

	cfg.SettlementDelay = parseDuration(v, "SETTLEMENT_DELAY", 5*time.Second)
	cfg.SettlementSuccessRate = v.GetFloat64("SETTLEMENT_SUCCESS_RATE")
	if cfg.SettlementSuccessRate < 0 || cfg.SettlementSuccessRate > 1 {
		log.Printf("Warning: SETTLEMENT_SUCCESS_RATE (%v) outside [0,1]. Defaulting to 0.8.\n", cfg.SettlementSuccessRate)
		cfg.SettlementSuccessRate = 0.8
	}
	cfg.SettlementSeed = v.GetUint64("SETTLEMENT_SEED")

	cfg.KafkaBrokers = splitList(v.GetString("KAFKA_BROKERS"))
	cfg.KafkaTopic = v.GetString("KAFKA_TOPIC")
	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")

	return cfg
}

func parseDuration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
