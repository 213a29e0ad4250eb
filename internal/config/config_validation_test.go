package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_DefaultsApplied(t *testing.T) {
	cfg := &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "/tmp/daybook.db"}},
		Remote:  Remote{BaseURL: "https://api.example.com"},
	}

	require.NoError(t, cfg.validate())

	assert.Equal(t, BackendHTTP, cfg.Remote.Backend)
	assert.Equal(t, defaultChunkSize, cfg.Sync.ChunkSize)
	assert.Equal(t, 5*time.Minute, cfg.Sync.Interval)
	assert.Equal(t, 2*time.Second, cfg.Sync.Debounce)
	assert.Equal(t, 15*time.Second, cfg.Remote.RequestTimeout)
}

func TestValidate_MissingLocalDSN(t *testing.T) {
	cfg := &StructuredConfig{
		Remote: Remote{BaseURL: "https://api.example.com"},
	}

	err := cfg.validate()
	require.ErrorIs(t, err, ErrNoLocalDSN)
}

func TestValidate_PostgresBackendRequiresDSN(t *testing.T) {
	cfg := &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "/tmp/daybook.db"}},
		Remote:  Remote{Backend: BackendPostgres},
	}

	err := cfg.validate()
	require.ErrorIs(t, err, ErrNoRemoteDSN)
}

func TestValidate_UnknownBackend(t *testing.T) {
	cfg := &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "/tmp/daybook.db"}},
		Remote:  Remote{Backend: "carrier-pigeon"},
	}

	err := cfg.validate()
	require.ErrorIs(t, err, ErrUnknownBackend)
}
