package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaultsInDevMode(t *testing.T) {
	t.Setenv("MESFLOW_DEV_MODE", "true")

	config, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", config.Address)
	assert.Equal(t, "data/mesflow.db", config.DBPath)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, 10*time.Second, config.ShutdownTimeout)
	assert.True(t, config.DevMode)
}

func TestLoadRejectsDefaultSecretOutsideDevMode(t *testing.T) {
	t.Setenv("MESFLOW_DEV_MODE", "false")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MESFLOW_SECRET_KEY")
}

func TestLoadRejectsShortSecretOutsideDevMode(t *testing.T) {
	t.Setenv("MESFLOW_DEV_MODE", "false")
	t.Setenv("MESFLOW_SECRET_KEY", "too-short-secret")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 32")
}

func TestLoadReadsEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	content := "MESFLOW_SECRET_KEY=0123456789abcdef0123456789abcdef\nMESFLOW_DB_PATH=/tmp/mesflow-test.db\nMESFLOW_TZ=Europe/Berlin\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("MESFLOW_SECRET_KEY")
		_ = os.Unsetenv("MESFLOW_DB_PATH")
		_ = os.Unsetenv("MESFLOW_TZ")
	})

	config, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "0123456789abcdef0123456789abcdef", config.SecretKey)
	assert.Equal(t, "/tmp/mesflow-test.db", config.DBPath)

	location, ok := config.Location()
	assert.True(t, ok)
	assert.Equal(t, "Europe/Berlin", location.String())
}

func TestLocationFallsBackToUTC(t *testing.T) {
	config := &Config{TZ: "Mars/Olympus_Mons"}
	location, ok := config.Location()
	assert.False(t, ok)
	assert.Equal(t, time.UTC, location)
}
