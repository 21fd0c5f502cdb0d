package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config holds application configuration
type Config struct {
	Port     string
	LogLevel string

	Storage string
	DBConn  string

	JWTSecret     string
	TokenTTL      time.Duration
	EncryptionKey []byte
	HMACSecret    string

	SnapshotTTL       time.Duration
	RetentionSchedule string

	RateFeedURL   string
	RateFeedPath  string
	LendingMargin float64

	// DeterministicSimulation seeds the simulators from the UPI id
	DeterministicSimulation bool

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string
}

// NewConfig loads configuration from an optional .env file and environment variables
func NewConfig() (*Config, error) {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		Storage:           getEnv("STORAGE", StorageMemory),
		DBConn:            getEnv("DB_CONN", "host=localhost port=5436 user=test password=test dbname=gigscore sslmode=disable"),
		JWTSecret:         getEnv("JWT_SECRET", "secret"),
		HMACSecret:        getEnv("HMAC_SECRET", "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6"),
		RetentionSchedule: getEnv("RETENTION_SCHEDULE", "@hourly"),
		RateFeedURL:       getEnv("RATE_FEED_URL", ""),
		RateFeedPath:      getEnv("RATE_FEED_PATH", "//RepoRate/Rate"),
		SMTPHost:          getEnv("SMTP_HOST", ""),
		SMTPPort:          getEnv("SMTP_PORT", "587"),
		SMTPUsername:      getEnv("SMTP_USERNAME", ""),
		SMTPPassword:      getEnv("SMTP_PASSWORD", ""),
		SenderEmail:       getEnv("SENDER_EMAIL", "no-reply@gigscore.local"),
	}

	var err error
	if cfg.TokenTTL, err = getDuration("TOKEN_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.SnapshotTTL, err = getDuration("SNAPSHOT_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.LendingMargin, err = getFloat("LENDING_MARGIN", 4.0); err != nil {
		return nil, err
	}
	if cfg.DeterministicSimulation, err = getBool("SIMULATION_DETERMINISTIC", false); err != nil {
		return nil, err
	}

	key, err := hex.DecodeString(getEnv("ENCRYPTION_KEY", "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6"))
	if err != nil {
		return nil, fmt.Errorf("ENCRYPTION_KEY must be hex: %w", err)
	}
	if len(key) != 16 && len(key) != 24 && len(key) != 32 {
		return nil, fmt.Errorf("ENCRYPTION_KEY must decode to 16, 24 or 32 bytes, got %d", len(key))
	}
	cfg.EncryptionKey = key

	switch cfg.Storage {
	case StorageMemory:
	case StoragePostgres:
		if cfg.DBConn == "" {
			return nil, fmt.Errorf("DB_CONN is required")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE %q", cfg.Storage)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.HMACSecret == "" {
		return nil, fmt.Errorf("HMAC_SECRET is required")
	}

	return cfg, nil
}

// MailEnabled reports whether SMTP settings are present
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != ""
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getFloat(key string, defaultVal float64) (float64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getBool(key string, defaultVal bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
