package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	BaseCurrencyCode  string
	BaseCurrencyScale int
	RateLimit         string
}

const insecureJWTSecret = "insecure-dev-secret-change-me"

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", insecureJWTSecret)
	viper.SetDefault("BASE_CURRENCY_CODE", "KWD")
	viper.SetDefault("BASE_CURRENCY_SCALE", 3)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:       viper.GetString("PGSQL_URL"),
		Port:              viper.GetString("PORT"),
		IsProduction:      viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:     viper.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:         viper.GetString("JWT_SECRET"),
		BaseCurrencyCode:  viper.GetString("BASE_CURRENCY_CODE"),
		BaseCurrencyScale: viper.GetInt("BASE_CURRENCY_SCALE"),
		RateLimit:         viper.GetString("RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set")
	}
	if cfg.JWTSecret == insecureJWTSecret {
		slog.Warn("JWT_SECRET not set, using insecure default")
	}

	return cfg, nil
}
