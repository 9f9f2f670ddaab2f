package db

import (
	"path/filepath"
	"testing"

	"github.com/PayRam/go-jobly/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDatabaseConfig(t *testing.T) config.DatabaseConfig {
	return config.DatabaseConfig{
		Driver:   "sqlite",
		URL:      filepath.Join(t.TempDir(), "schema.db"),
		LogLevel: "silent",
	}
}

func closeOnCleanup(t *testing.T, database *gorm.DB) {
	sqlDB, err := database.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
}

// referencedTables lists the tables that table's foreign keys point at
func referencedTables(t *testing.T, database *gorm.DB, table string) []string {
	t.Helper()
	tables := []string{}
	err := database.Raw(`SELECT DISTINCT "table" FROM pragma_foreign_key_list(?) ORDER BY "table"`, table).
		Scan(&tables).Error
	require.NoError(t, err)
	return tables
}

func TestInitDB_ForeignKeysPointAtParents(t *testing.T) {
	database, err := InitDB(testDatabaseConfig(t))
	require.NoError(t, err)
	closeOnCleanup(t, database)

	assert.Equal(t, []string{"jobs", "users"}, referencedTables(t, database, "applications"))
	assert.Equal(t, []string{"companies"}, referencedTables(t, database, "jobs"))
	assert.Empty(t, referencedTables(t, database, "users"))
	assert.Empty(t, referencedTables(t, database, "companies"))

	var violations []map[string]interface{}
	require.NoError(t, database.Raw("PRAGMA foreign_key_check").Scan(&violations).Error)
	assert.Empty(t, violations)
}

func TestOpen_DoesNotMigrate(t *testing.T) {
	cfg := testDatabaseConfig(t)

	database, err := Open(cfg)
	require.NoError(t, err)
	closeOnCleanup(t, database)
	assert.False(t, database.Migrator().HasTable("companies"))

	migrated, err := InitDB(cfg)
	require.NoError(t, err)
	closeOnCleanup(t, migrated)
	assert.True(t, migrated.Migrator().HasTable("companies"))
	assert.True(t, migrated.Migrator().HasTable("applications"))
}
