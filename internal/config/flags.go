package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d local replica database path (SQLite file)
//	-remote-backend remote store kind: http or postgres
//	-remote-url backend API base URL (http backend)
//	-remote-dsn backend PostgreSQL DSN (postgres backend)
//	-remote-token bearer access token (http backend)
//	-remote-user remote identity id (postgres backend)
//	-request-timeout remote request timeout (e.g., "30s", "1m")
//	-sync-interval background sync period (e.g., "5m")
//	-sync-debounce change-notification quiet period (e.g., "2s")
//	-sync-chunk maximum records per upsert call
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var localDSN string
	var remoteBackend string
	var remoteURL string
	var remoteDSN string
	var remoteToken string
	var remoteUser string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var syncDebounce time.Duration
	var syncChunk int
	var jsonConfigPath string

	flag.StringVar(&localDSN, "d", "", "Local replica database path")
	flag.StringVar(&remoteBackend, "remote-backend", "", "Remote backend: http or postgres")
	flag.StringVar(&remoteURL, "remote-url", "", "Remote API base URL")
	flag.StringVar(&remoteDSN, "remote-dsn", "", "Remote PostgreSQL DSN")
	flag.StringVar(&remoteToken, "remote-token", "", "Remote access token")
	flag.StringVar(&remoteUser, "remote-user", "", "Remote identity id")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync period (e.g., 5m)")
	flag.DurationVar(&syncDebounce, "sync-debounce", 0, "Change-notification quiet period (e.g., 2s)")
	flag.IntVar(&syncChunk, "sync-chunk", 0, "Maximum records per upsert call")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: localDSN,
			},
		},
		Remote: Remote{
			Backend:        remoteBackend,
			BaseURL:        remoteURL,
			DSN:            remoteDSN,
			AccessToken:    remoteToken,
			UserID:         remoteUser,
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			Interval:  syncInterval,
			Debounce:  syncDebounce,
			ChunkSize: syncChunk,
		},
		JSONFilePath: jsonConfigPath,
	}
}
