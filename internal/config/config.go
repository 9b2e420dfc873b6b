package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis (catalog cache)
	RedisURL        string `mapstructure:"REDIS_URL"`
	CatalogCacheTTL int    `mapstructure:"CATALOG_CACHE_TTL_MINUTES"`

	// Auth
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`

	// CORS — comma-separated list of allowed origins; "*" allows any
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`
}

// Origins splits ALLOWED_ORIGINS into a trimmed slice.
func (c *Config) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATABASE_URL", "produccion:produccion@tcp(localhost:3306)/roble?charset=utf8mb4&parseTime=True&loc=Local")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("CATALOG_CACHE_TTL_MINUTES", 15)
	viper.SetDefault("JWT_EXPIRATION_HOURS", 12)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
