package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Host        string
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	Version     string

	// DataDir is the root for local state; SavesDir holds player and
	// storage save files.
	DataDir  string
	SavesDir string

	// Game API client settings.
	APIBaseURL string
	APITimeout time.Duration

	// Auto-sync scheduling.
	AutoSyncEnabled  bool
	AutoSyncInterval time.Duration
	SyncOnStartup    bool
	SyncOnShutdown   bool

	// Market price cache.
	MarketCacheTTL  time.Duration
	MarketCacheSize int

	// Ledger SQLite database file.
	LedgerPath string

	// Discord webhook for notifications. Empty ID disables the notifier.
	DiscordWebhookID    string
	DiscordWebhookToken string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Host:        getEnv("HOST", DefaultHost),
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		LogDir:      getEnv("LOG_DIR", "logs"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		Version:     getEnv("VERSION", "dev"),

		DataDir:  getEnv("DATA_DIR", DefaultDataDir),
		SavesDir: getEnv("SAVES_DIR", ""),

		APIBaseURL: getEnv("API_BASE_URL", DefaultAPIBaseURL),
		APITimeout: getEnvAsDuration("API_TIMEOUT", DefaultAPITimeout),

		AutoSyncEnabled:  getEnvAsBool("AUTO_SYNC_ENABLED", true),
		AutoSyncInterval: getEnvAsDuration("AUTO_SYNC_INTERVAL", DefaultAutoSyncInterval),
		SyncOnStartup:    getEnvAsBool("SYNC_ON_STARTUP", true),
		SyncOnShutdown:   getEnvAsBool("SYNC_ON_SHUTDOWN", true),

		MarketCacheTTL:  getEnvAsDuration("MARKET_CACHE_TTL", DefaultMarketCacheTTL),
		MarketCacheSize: getEnvAsInt("MARKET_CACHE_SIZE", DefaultMarketCacheSize),

		LedgerPath: getEnv("LEDGER_PATH", ""),

		DiscordWebhookID:    getEnv("DISCORD_WEBHOOK_ID", ""),
		DiscordWebhookToken: getEnv("DISCORD_WEBHOOK_TOKEN", ""),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Derived paths default under the data dir.
	if cfg.SavesDir == "" {
		cfg.SavesDir = cfg.DataDir + "/saves"
	}
	if cfg.LedgerPath == "" {
		cfg.LedgerPath = cfg.DataDir + "/ledger.db"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate fails fast on values the daemon cannot run with.
func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be positive, got %s", c.APITimeout)
	}
	if c.AutoSyncEnabled && c.AutoSyncInterval < time.Second {
		return fmt.Errorf("AUTO_SYNC_INTERVAL must be at least 1s, got %s", c.AutoSyncInterval)
	}
	if c.MarketCacheTTL <= 0 {
		return fmt.Errorf("MARKET_CACHE_TTL must be positive, got %s", c.MarketCacheTTL)
	}
	if c.MarketCacheSize < 1 {
		return fmt.Errorf("MARKET_CACHE_SIZE must be at least 1, got %d", c.MarketCacheSize)
	}
	// Webhook credentials come as a pair.
	if (c.DiscordWebhookID == "") != (c.DiscordWebhookToken == "") {
		return fmt.Errorf("DISCORD_WEBHOOK_ID and DISCORD_WEBHOOK_TOKEN must be set together")
	}
	return nil
}

// ListenAddr returns the host:port the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// NotificationsEnabled reports whether a Discord webhook is configured.
func (c *Config) NotificationsEnabled() bool {
	return c.DiscordWebhookID != "" && c.DiscordWebhookToken != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an int environment variable, falling back to the
// default on parse failure.
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves a bool environment variable, falling back to the
// default on parse failure.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvAsDuration retrieves a duration environment variable, falling back
// to the default on parse failure.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
