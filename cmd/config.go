package cmd

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds the process settings read from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	LogLevel   string

	FlatShippingCost decimal.Decimal

	KafkaBrokers     []string
	KafkaEventsTopic string

	OpportunityDigestSchedule string
	OtelEnabled               bool
}

// LoadConfig reads the process configuration. Values from an optional .env file are
// loaded into the environment first; real environment variables take precedence.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	// A missing .env is normal outside local development.
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "fulfillment")
	v.SetDefault("DB_PASSWORD", "fulfillment")
	v.SetDefault("DB_NAME", "fulfillment")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("FLAT_SHIPPING_COST", "60")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_EVENTS_TOPIC", "fulfillment.events")
	v.SetDefault("OPPORTUNITY_DIGEST_SCHEDULE", "")
	v.SetDefault("OTEL_ENABLED", false)

	flatShippingCost, err := decimal.NewFromString(v.GetString("FLAT_SHIPPING_COST"))
	if err != nil {
		return Config{}, fmt.Errorf("FLAT_SHIPPING_COST: %w", err)
	}
	if flatShippingCost.IsNegative() {
		return Config{}, fmt.Errorf("FLAT_SHIPPING_COST: %s is negative", flatShippingCost)
	}

	return Config{
		HTTPPort:                  v.GetString("HTTP_PORT"),
		DBHost:                    v.GetString("DB_HOST"),
		DBPort:                    v.GetString("DB_PORT"),
		DBUser:                    v.GetString("DB_USER"),
		DBPassword:                v.GetString("DB_PASSWORD"),
		DBName:                    v.GetString("DB_NAME"),
		DBSslMode:                 v.GetString("DB_SSLMODE"),
		LogLevel:                  v.GetString("LOG_LEVEL"),
		FlatShippingCost:          flatShippingCost,
		KafkaBrokers:              splitList(v.GetString("KAFKA_BROKERS")),
		KafkaEventsTopic:          v.GetString("KAFKA_EVENTS_TOPIC"),
		OpportunityDigestSchedule: strings.TrimSpace(v.GetString("OPPORTUNITY_DIGEST_SCHEDULE")),
		OtelEnabled:               v.GetBool("OTEL_ENABLED"),
	}, nil
}

// DSN renders the PostgreSQL connection string understood by both pgx and lib/pq.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
