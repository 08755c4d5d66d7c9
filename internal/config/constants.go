package config

import "time"

// Defaults for the local daemon. The listen host is loopback so the API
// is only reachable by frontends on the same machine.
const (
	DefaultHost = "127.0.0.1"
	DefaultPort = 8390

	DefaultDataDir = "data"

	DefaultAPIBaseURL = "https://api.playquinfall.com/v1"
	DefaultAPITimeout = 30 * time.Second

	DefaultAutoSyncInterval = 300 * time.Second

	DefaultMarketCacheTTL  = 60 * time.Second
	DefaultMarketCacheSize = 256
)
