package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/daybook-app/daybook/internal/adapter"
	"github.com/daybook-app/daybook/internal/config"
	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/internal/service"
	"github.com/daybook-app/daybook/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("daybook-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	remote, err := adapter.NewRemoteStore(cfg.Remote, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote store")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local replica")
	}

	services := service.NewServices(storages, remote, cfg.Sync, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = services.Orchestrator.Start(ctx); err != nil {
		// The periodic job still converges without the change feed.
		log.Warn().Err(err).Msg("change subscription unavailable, relying on periodic sync only")
	}
	services.SyncJob.Start(ctx, cfg.Sync.Interval)

	// One eager cycle at startup so a freshly opened client converges
	// without waiting for the first tick.
	go func() { _ = services.Orchestrator.Sync(ctx) }()

	log.Info().Msg("sync engine running")
	<-ctx.Done()

	log.Info().Msg("shutting down")
	services.SyncJob.Stop()
	services.Orchestrator.Stop()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
