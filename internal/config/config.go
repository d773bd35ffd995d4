package config

import (
	"fmt"
	"os"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
)

var portPattern = regexp.MustCompile(`^[0-9]{1,5}$`)

type Config struct {
	Host          string
	Port          string
	DBPath        string
	DataDir       string
	SessionSecret string
	GinMode       string
}

// Load reads configuration from the environment. A .env file in the working
// directory is honored when present. The session secret has no default: a
// missing value is a startup failure, not a weak fallback.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Host:          getEnv("HOST", "127.0.0.1"),
		Port:          getEnv("PORT", "8080"),
		DBPath:        getEnv("DB_PATH", "home_helper.db"),
		DataDir:       getEnv("DATA_DIR", "data"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		GinMode:       getEnv("GIN_MODE", "debug"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Host, validation.Required),
		validation.Field(&c.Port, validation.Required, validation.Match(portPattern)),
		validation.Field(&c.DBPath, validation.Required),
		validation.Field(&c.DataDir, validation.Required),
		validation.Field(&c.SessionSecret, validation.Required.Error("SESSION_SECRET must be set")),
		validation.Field(&c.GinMode, validation.In("debug", "release", "test")),
	)
}

// Address returns the bind address for the HTTP server.
func (c *Config) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
