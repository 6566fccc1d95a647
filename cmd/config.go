package cmd

import (
	"os"
	"strconv"
	"time"

	"fulfillment/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort string
	LogLevel string

	// BusinessLocation decides which calendar day an order belongs to.
	BusinessLocation *time.Location

	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	PendingOrderTTL        time.Duration
	PendingOrderSchedule   string
	PendingOrderBatchSize  int
	PendingOrderRunTimeout time.Duration
}

// LoadConfig reads the environment, after loading envFile when it exists.
// Unset or malformed values fall back to defaults suitable for local runs.
func LoadConfig(envFile string, log logrus.FieldLogger) Config {
	if err := godotenv.Load(envFile); err != nil {
		log.WithField("file", envFile).Debug("env file not loaded, using process environment")
	}

	return Config{
		HTTPPort: getEnv("HTTP_PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		BusinessLocation: getEnvLocation("BUSINESS_TIMEZONE", log),

		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBName:            getEnv("DB_NAME", "fulfillment"),
		DBSslMode:         getEnv("DB_SSLMODE", "disable"),
		DBMaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 20, log),
		DBMaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5, log),
		DBConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute, log),

		PendingOrderTTL:        getEnvDuration("PENDING_ORDER_TTL", 30*time.Minute, log),
		PendingOrderSchedule:   getEnv("PENDING_ORDER_EXPIRY_SCHEDULE", "@every 1m"),
		PendingOrderBatchSize:  getEnvInt("PENDING_ORDER_EXPIRY_BATCH", 100, log),
		PendingOrderRunTimeout: getEnvDuration("PENDING_ORDER_EXPIRY_TIMEOUT", 50*time.Second, log),
	}
}

func (c Config) Database() postgres.ConnectionConfig {
	return postgres.ConnectionConfig{
		Host:            c.DBHost,
		Port:            c.DBPort,
		User:            c.DBUser,
		Password:        c.DBPassword,
		Name:            c.DBName,
		SslMode:         c.DBSslMode,
		MaxOpenConns:    c.DBMaxOpenConns,
		MaxIdleConns:    c.DBMaxIdleConns,
		ConnMaxLifetime: c.DBConnMaxLifetime,
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvLocation(key string, log logrus.FieldLogger) *time.Location {
	raw := getEnv(key, "")
	if raw == "" {
		return time.UTC
	}

	location, err := time.LoadLocation(raw)
	if err != nil {
		log.WithError(err).WithField("key", key).Warn("unknown time zone, using UTC")
		return time.UTC
	}
	return location
}

func getEnvInt(key string, fallback int, log logrus.FieldLogger) int {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.WithError(err).WithField("key", key).Warn("invalid integer, using default")
		return fallback
	}
	return value
}

func getEnvDuration(key string, fallback time.Duration, log logrus.FieldLogger) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		log.WithError(err).WithField("key", key).Warn("invalid duration, using default")
		return fallback
	}
	return value
}
