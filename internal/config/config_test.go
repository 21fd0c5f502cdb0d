package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("STORAGE", StorageMemory)

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, 24*time.Hour, cfg.SnapshotTTL)
	assert.Len(t, cfg.EncryptionKey, 32)
	assert.Equal(t, "//RepoRate/Rate", cfg.RateFeedPath)
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("STORAGE", StorageMemory)
	t.Setenv("SNAPSHOT_TTL", "90m")
	t.Setenv("LENDING_MARGIN", "2.5")
	t.Setenv("SIMULATION_DETERMINISTIC", "true")
	t.Setenv("SMTP_HOST", "smtp.example.com")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, cfg.SnapshotTTL)
	assert.Equal(t, 2.5, cfg.LendingMargin)
	assert.True(t, cfg.DeterministicSimulation)
	assert.True(t, cfg.MailEnabled())
}

func TestNewConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad storage", "STORAGE", "redis"},
		{"bad ttl", "SNAPSHOT_TTL", "soon"},
		{"bad key hex", "ENCRYPTION_KEY", "zz"},
		{"short key", "ENCRYPTION_KEY", "abcd"},
		{"bad bool", "SIMULATION_DETERMINISTIC", "maybe"},
		{"empty jwt secret", "JWT_SECRET", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("STORAGE", StorageMemory)
			t.Setenv(tt.key, tt.val)
			_, err := NewConfig()
			assert.Error(t, err)
		})
	}
}
