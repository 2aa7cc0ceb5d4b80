package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRawJSON(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseJSON_Success(t *testing.T) {
	path := writeRawJSON(t, `{
		"app": {"seed_demo_users": false, "log_file": "client.log"},
		"storage": {"db": {"dsn": "state.json"}, "namespace": "demo_"},
		"workers": {"poll_interval": "3s", "read_receipt_delay": 1000000000}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.App.SeedDemoUsers)
	assert.False(t, *cfg.App.SeedDemoUsers)
	assert.Equal(t, "client.log", cfg.App.LogFile)
	assert.Equal(t, "state.json", cfg.Storage.DB.DSN)
	assert.Equal(t, "demo_", cfg.Storage.Namespace)
	assert.Equal(t, 3*time.Second, cfg.Workers.PollInterval)
	assert.Equal(t, time.Second, cfg.Workers.ReadReceiptDelay)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	_, err := parseJSON(writeRawJSON(t, `{"storage":`))
	assert.Error(t, err)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	_, err := parseJSON(writeRawJSON(t, `{"workers": {"poll_interval": "often"}}`))
	assert.Error(t, err)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	cfg, err := parseJSON(writeRawJSON(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := Duration(1500 * time.Millisecond).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1.5s"`, string(data))
}
