package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.temporal.io/sdk/client"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port              string
	PostgresDSN       string
	TemporalAddress   string
	TemporalNamespace string
	TemporalDisabled  bool
	SeedData          bool
	OrderTTLHours     int
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
// A .env file in the working directory is loaded first when present.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	cfg := Config{
		Port:              envDefault("PORT", "8080"),
		PostgresDSN:       strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		TemporalAddress:   envDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		TemporalNamespace: envDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		TemporalDisabled:  isTruthy(os.Getenv("TEMPORAL_DISABLED")),
		SeedData:          isTruthy(os.Getenv("SEED_DATA")),
	}
	if raw := strings.TrimSpace(os.Getenv("ORDER_TTL_HOURS")); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			return Config{}, fmt.Errorf("ORDER_TTL_HOURS must be a positive integer")
		}
		cfg.OrderTTLHours = hours
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
