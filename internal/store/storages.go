package store

import (
	"context"
	"fmt"

	"github.com/daybook-app/daybook/internal/config"
	"github.com/daybook-app/daybook/internal/logger"
)

// Storages groups all client-side storage components into a single value
// that can be passed around the service layer.
type Storages struct {
	// Replica is the SQLite-backed local replica holding all synchronizable
	// records and the engine's persisted sync state.
	Replica Replica
}

// NewStorages initialises the local storage layer:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the database file
//     if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs a [Storages] value wired to a fresh [Replica].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Replica: NewReplica(db, logger),
	}, nil
}
