package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseEnv_AllFields проверяет, что все переменные окружения попадают в конфиг.
func TestParseEnv_AllFields(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{
		"APP_SEED_DEMO_USERS":        "false",
		"APP_LOG_FILE":               "/tmp/messenger.log",
		"STORAGE_DB_DSN":             "postgres://u:p@localhost:5432/chat",
		"STORAGE_NAMESPACE":          "demo_",
		"WORKERS_POLL_INTERVAL":      "5s",
		"WORKERS_READ_RECEIPT_DELAY": "500ms",
		"CONFIG":                     "/etc/messenger.json",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	require.NotNil(t, cfg.App.SeedDemoUsers)
	assert.False(t, *cfg.App.SeedDemoUsers)
	assert.Equal(t, "/tmp/messenger.log", cfg.App.LogFile)
	assert.Equal(t, "postgres://u:p@localhost:5432/chat", cfg.Storage.DB.DSN)
	assert.Equal(t, "demo_", cfg.Storage.Namespace)
	assert.Equal(t, 5*time.Second, cfg.Workers.PollInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.Workers.ReadReceiptDelay)
	assert.Equal(t, "/etc/messenger.json", cfg.JSONFilePath)
}

// TestParseEnv_EmptyEnv проверяет, что при пустом окружении конфиг остаётся нулевым.
func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
	assert.Nil(t, cfg.App.SeedDemoUsers)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("WORKERS_READ_RECEIPT_DELAY", "one second")

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}

func TestParseEnv_InvalidBool(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("APP_SEED_DEMO_USERS", "maybe")

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars unsets every variable the config reads, restoring them after
// the test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_SEED_DEMO_USERS",
		"APP_LOG_FILE",
		"STORAGE_DB_DSN",
		"STORAGE_NAMESPACE",
		"WORKERS_POLL_INTERVAL",
		"WORKERS_READ_RECEIPT_DELAY",
		"CONFIG",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
