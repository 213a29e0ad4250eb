package adapter

import (
	"github.com/daybook-app/daybook/internal/config"
	"github.com/daybook-app/daybook/internal/logger"
)

// NewRemoteStore selects the RemoteStore implementation for the configured
// backend.
func NewRemoteStore(cfg config.Remote, log *logger.Logger) (RemoteStore, error) {
	if cfg.Backend == config.BackendPostgres {
		return NewPostgresRemoteStore(cfg, log)
	}

	return NewHTTPRemoteStore(cfg, log), nil
}
