package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"version": "1.2.3"},
		"storage": {"db": {"dsn": "/data/daybook.db"}},
		"remote": {
			"backend": "postgres",
			"dsn": "postgres://sync:pw@db:5432/daybook",
			"user_id": "u-1",
			"request_timeout": "20s"
		},
		"sync": {"interval": "3m", "debounce": "1500ms", "chunk_size": 10}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "/data/daybook.db", cfg.Storage.DB.DSN)
	assert.Equal(t, BackendPostgres, cfg.Remote.Backend)
	assert.Equal(t, "u-1", cfg.Remote.UserID)
	assert.Equal(t, 20*time.Second, cfg.Remote.RequestTimeout)
	assert.Equal(t, 3*time.Minute, cfg.Sync.Interval)
	assert.Equal(t, 1500*time.Millisecond, cfg.Sync.Debounce)
	assert.Equal(t, 10, cfg.Sync.ChunkSize)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	path := writeTempJSON(t, `{"sync": {"interval": "soon"}}`)

	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
