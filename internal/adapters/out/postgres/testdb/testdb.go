// Package testdb opens throwaway SQLite databases with the production schema
// for repository and query tests that do not need a Postgres container.
package testdb

import (
	"path/filepath"
	"testing"

	"fulfillment/internal/adapters/out/postgres"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New returns a migrated database backed by a file in t.TempDir(). A file is
// used instead of :memory: so every pooled connection sees the same data.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	dsn := filepath.Join(t.TempDir(), "fulfillment.db") + "?_foreign_keys=on&_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), postgres.NewGormConfig(log))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, postgres.Migrate(db))
	return db
}
