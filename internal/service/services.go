package service

import (
	"github.com/daybook-app/daybook/internal/adapter"
	"github.com/daybook-app/daybook/internal/config"
	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/internal/store"
)

// Services bundles the engine's moving parts for the client entrypoint.
type Services struct {
	Records      Records
	Orchestrator Orchestrator
	SyncJob      Job
}

func NewServices(storages *store.Storages, remote adapter.RemoteStore, cfg config.Sync, log *logger.Logger) *Services {
	orchestrator := NewOrchestrator(storages.Replica, remote, cfg.ChunkSize, cfg.Debounce, log)

	return &Services{
		Records:      NewRecordsService(storages.Replica, log),
		Orchestrator: orchestrator,
		SyncJob:      NewSyncJob(orchestrator),
	}
}
