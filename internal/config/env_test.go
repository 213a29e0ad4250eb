package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesNestedFields(t *testing.T) {
	t.Setenv("STORAGE_DB_DSN", "/tmp/daybook.db")
	t.Setenv("REMOTE_BACKEND", "http")
	t.Setenv("REMOTE_BASE_URL", "https://api.example.com")
	t.Setenv("REMOTE_REQUEST_TIMEOUT", "30s")
	t.Setenv("SYNC_INTERVAL", "10m")
	t.Setenv("SYNC_CHUNK_SIZE", "25")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/tmp/daybook.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "http", cfg.Remote.Backend)
	assert.Equal(t, "https://api.example.com", cfg.Remote.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Remote.RequestTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Sync.Interval)
	assert.Equal(t, 25, cfg.Sync.ChunkSize)
}

func TestParseEnv_EmptyEnvironmentLeavesZeroValues(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Sync.ChunkSize)
}
