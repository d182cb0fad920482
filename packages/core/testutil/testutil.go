// Package testutil provides a migrated in-memory database for tests.
package testutil

import (
	"testing"

	"footy-api/migrations"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a fresh in-memory SQLite database with foreign keys
// enforced and every migration applied. It is closed when t ends.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	migrator, err := migrations.NewMigrator(db)
	require.NoError(t, err)
	migrator.AddMigrations(migrations.GetAllMigrations())
	require.NoError(t, migrator.Migrate())

	return db
}
