package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	logger, _ := test.NewNullLogger()
	t.Setenv("DB_HOST", "")

	cfg := LoadConfig(filepath.Join(t.TempDir(), "missing.env"), logger)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, 30*time.Minute, cfg.PendingOrderTTL)
	assert.Equal(t, "@every 1m", cfg.PendingOrderSchedule)
	assert.Equal(t, 100, cfg.PendingOrderBatchSize)
	assert.Equal(t, time.UTC, cfg.BusinessLocation)
}

func TestLoadConfig_BusinessTimeZone(t *testing.T) {
	logger, hook := test.NewNullLogger()
	missing := filepath.Join(t.TempDir(), "missing.env")

	t.Setenv("BUSINESS_TIMEZONE", "Australia/Sydney")
	cfg := LoadConfig(missing, logger)
	require.NotNil(t, cfg.BusinessLocation)
	assert.Equal(t, "Australia/Sydney", cfg.BusinessLocation.String())

	t.Setenv("BUSINESS_TIMEZONE", "Mars/Olympus_Mons")
	cfg = LoadConfig(missing, logger)
	assert.Equal(t, time.UTC, cfg.BusinessLocation)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "BUSINESS_TIMEZONE", hook.LastEntry().Data["key"])
}

func TestLoadConfig_EnvFile(t *testing.T) {
	logger, _ := test.NewNullLogger()
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("HTTP_PORT=9090\nPENDING_ORDER_TTL=5m\n"), 0o600))
	t.Setenv("HTTP_PORT", "")
	t.Setenv("PENDING_ORDER_TTL", "")
	// godotenv never overrides variables that are already set
	require.NoError(t, os.Unsetenv("HTTP_PORT"))
	require.NoError(t, os.Unsetenv("PENDING_ORDER_TTL"))

	cfg := LoadConfig(envFile, logger)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 5*time.Minute, cfg.PendingOrderTTL)
}

func TestLoadConfig_MalformedValuesFallBack(t *testing.T) {
	logger, hook := test.NewNullLogger()
	t.Setenv("BUSINESS_TIMEZONE", "")
	t.Setenv("DB_MAX_OPEN_CONNS", "many")
	t.Setenv("PENDING_ORDER_TTL", "soon")

	cfg := LoadConfig(filepath.Join(t.TempDir(), "missing.env"), logger)

	assert.Equal(t, 20, cfg.DBMaxOpenConns)
	assert.Equal(t, 30*time.Minute, cfg.PendingOrderTTL)
	assert.Len(t, hook.AllEntries(), 2)
}

func TestConfig_Database(t *testing.T) {
	cfg := Config{
		DBHost:     "db",
		DBPort:     "5433",
		DBUser:     "u",
		DBPassword: "p",
		DBName:     "n",
		DBSslMode:  "disable",
	}

	assert.Equal(t, "host=db port=5433 user=u password=p dbname=n sslmode=disable", cfg.Database().DSN())
}
