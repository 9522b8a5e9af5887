package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime configuration, loaded once at process start.
type Config struct {
	ServerPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// PaymentProvider selects the authorization strategy (mock or stripe).
	PaymentProvider string
	StripeAPIKey    string

	// AuthorizeTotalAmount controls whether the authorized amount is the unit
	// price multiplied by quantity. The default authorizes the unit price
	// as given.
	AuthorizeTotalAmount bool
}

// Load reads configuration from environment variables, applying defaults
// suitable for local development.
func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "microtx"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		PaymentProvider: getEnv("PAYMENT_PROVIDER", "mock"),
		StripeAPIKey:    getEnv("STRIPE_API_KEY", ""),

		AuthorizeTotalAmount: getEnvBool("AUTHORIZE_TOTAL_AMOUNT", false),
	}
}

// Validate checks provider selection and its credentials before the server
// starts taking traffic.
func (c *Config) Validate() error {
	switch c.PaymentProvider {
	case "mock":
	case "stripe":
		if c.StripeAPIKey == "" {
			return fmt.Errorf("STRIPE_API_KEY is required when PAYMENT_PROVIDER=stripe")
		}
	default:
		return fmt.Errorf("unsupported PAYMENT_PROVIDER: %s", c.PaymentProvider)
	}
	return nil
}

// GetDBConnectionString builds the lib/pq connection string.
func (c *Config) GetDBConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
