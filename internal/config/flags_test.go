package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	yes := true
	no := false

	tests := []struct {
		name     string
		args     []string
		expected *StructuredConfig
	}{
		{
			name:     "no flags",
			args:     nil,
			expected: &StructuredConfig{},
		},
		{
			name: "all flags",
			args: []string{
				"-d", "chat.db",
				"-namespace", "demo_",
				"-poll-interval", "4s",
				"-read-receipt-delay", "2s",
				"-seed",
				"-log-file", "client.log",
				"-c", "cfg.json",
			},
			expected: &StructuredConfig{
				App:          App{SeedDemoUsers: &yes, LogFile: "client.log"},
				Storage:      Storage{DB: DB{DSN: "chat.db"}, Namespace: "demo_"},
				Workers:      Workers{PollInterval: 4 * time.Second, ReadReceiptDelay: 2 * time.Second},
				JSONFilePath: "cfg.json",
			},
		},
		{
			name: "seed explicitly disabled",
			args: []string{"-seed=false"},
			expected: &StructuredConfig{
				App: App{SeedDemoUsers: &no},
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "other.json"},
			expected: &StructuredConfig{
				JSONFilePath: "other.json",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "bad duration", args: []string{"-poll-interval", "fast"}},
		{name: "bad bool", args: []string{"-seed=perhaps"}},
		{name: "unknown flag", args: []string{"-x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestOptionalBool_String(t *testing.T) {
	var b optionalBool
	assert.Equal(t, "", b.String())

	require.NoError(t, b.Set("yes"))
	assert.Equal(t, "true", b.String())

	require.NoError(t, b.Set("0"))
	assert.Equal(t, "false", b.String())
}
