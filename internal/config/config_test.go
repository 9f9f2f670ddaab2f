package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "jobly.db", cfg.Database.URL)
	assert.Equal(t, "warn", cfg.Database.LogLevel)
	assert.Equal(t, bcrypt.DefaultCost, cfg.Auth.BcryptCost)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	yaml := "database:\n  driver: postgres\n  url: postgres://localhost/jobly\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".jobly.yaml"), []byte(yaml), 0o600))
	t.Setenv("JOBLY_DATABASE_LOG_LEVEL", "info")
	t.Setenv("JOBLY_AUTH_BCRYPT_COST", "4")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost/jobly", cfg.Database.URL)
	assert.Equal(t, "info", cfg.Database.LogLevel)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
}
