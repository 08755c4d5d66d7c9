package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/quinfall/companion/internal/bootstrap"
	"github.com/quinfall/companion/internal/catalog"
	"github.com/quinfall/companion/internal/concurrency"
	"github.com/quinfall/companion/internal/config"
	"github.com/quinfall/companion/internal/crafting"
	"github.com/quinfall/companion/internal/domain"
	"github.com/quinfall/companion/internal/event"
	"github.com/quinfall/companion/internal/gamesync"
	"github.com/quinfall/companion/internal/ledger"
	"github.com/quinfall/companion/internal/logger"
	"github.com/quinfall/companion/internal/market"
	"github.com/quinfall/companion/internal/player"
	"github.com/quinfall/companion/internal/recipe"
	"github.com/quinfall/companion/internal/scheduler"
	"github.com/quinfall/companion/internal/server"
	"github.com/quinfall/companion/internal/storage"
	"github.com/quinfall/companion/internal/worker"
)

// Background job tuning. Sync and refresh jobs are light, so a small
// pool with a short queue is plenty; a full queue skips a run instead
// of stacking them up.
const (
	WorkerCount     = 2
	WorkerQueueSize = 8
	ShutdownTimeout = 15 * time.Second
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	// Setup logging (stdout + session log file)
	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	ctx := context.Background()

	// Load embedded game data
	cat, err := catalog.Load()
	if err != nil {
		logger.Error("Catalog load failed", "error", err)
		os.Exit(1)
	}
	book, err := recipe.Load(cat)
	if err != nil {
		logger.Error("Recipe load failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Game data loaded", "materials", cat.Len(), "recipes", book.Len())

	// Event system
	eventBus, resilientPublisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		logger.Error("Event system setup failed", "error", err)
		os.Exit(1)
	}

	// Activity ledger
	if err := os.MkdirAll(filepath.Dir(cfg.LedgerPath), bootstrap.DirPermission); err != nil {
		logger.Error("Data directory setup failed", "error", err)
		os.Exit(1)
	}
	ledgerStore, err := ledger.Open(ctx, cfg.LedgerPath)
	if err != nil {
		logger.Error("Ledger open failed", "error", err)
		os.Exit(1)
	}

	// Event subscribers: ledger recorder, metrics collector, notifier
	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:    eventBus,
		LedgerStore: ledgerStore,
		Config:      cfg,
	}); err != nil {
		logger.Error("Event handler registration failed", "error", err)
		os.Exit(1)
	}

	// Player state from save files (fresh start when none exist)
	p, err := player.LoadOrCreate(ctx, cfg.SavesDir, domain.DefaultPlayerID, cat)
	if err != nil {
		logger.Error("Save load failed", "error", err)
		os.Exit(1)
	}

	// Services share one lock manager so per-player mutations
	// serialize, and publish through the resilient publisher so
	// events retry before landing in the dead-letter file.
	lockManager := concurrency.NewLockManager()
	storageService := storage.NewService(p.Storage(), resilientPublisher, lockManager)
	playerService := player.NewService(cfg.SavesDir, lockManager)
	craftingService := crafting.NewService(book, resilientPublisher, lockManager)

	creds := gamesync.NewCredentialsStore(cfg.SavesDir)
	if err := creds.Load(ctx); err != nil {
		logger.Error("Credentials load failed", "error", err)
		os.Exit(1)
	}
	apiClient := gamesync.NewHTTPClient(cfg.APIBaseURL, cfg.APITimeout, creds)
	syncService := gamesync.NewService(apiClient, creds, p.Storage(), storage.NewStore(cfg.SavesDir), resilientPublisher, lockManager)
	marketService := market.NewService(apiClient, ledgerStore, resilientPublisher, cfg.MarketCacheSize, cfg.MarketCacheTTL)

	// Announce recipe changes shipped since the last run
	announceRecipeChanges(ctx, cfg, book, resilientPublisher)

	// Optional catch-up sync before serving
	if cfg.SyncOnStartup && syncService.Status().Configured {
		if _, err := syncService.Sync(ctx, gamesync.TriggerStartup); err != nil {
			logger.Warn("Startup sync failed, continuing with local state", "error", err)
		}
	}

	// Background auto-sync on the worker pool
	pool := worker.NewPool(WorkerCount, WorkerQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	if cfg.AutoSyncEnabled {
		sched.Schedule(cfg.AutoSyncInterval, syncJob{service: syncService})
		logger.Info("Auto-sync scheduled", "interval", cfg.AutoSyncInterval)
	}

	// HTTP server
	srv := server.NewServer(cfg.ListenAddr(), ledgerStore, storageService, playerService, craftingService, syncService, marketService, cat, book, p)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Block until shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		WorkerPool:         pool,
		SyncService:        syncService,
		PlayerService:      playerService,
		Player:             p,
		ResilientPublisher: resilientPublisher,
		LedgerStore:        ledgerStore,
		Config:             cfg,
	})
}

// announceRecipeChanges diffs the book against the last run's snapshot
// and publishes one recipe.updated event when recipes changed.
func announceRecipeChanges(ctx context.Context, cfg *config.Config, book *recipe.Book, bus event.Bus) {
	snapshotPath := filepath.Join(cfg.SavesDir, recipe.SnapshotFileName)
	diffs, err := recipe.DetectChanges(snapshotPath, book)
	if err != nil {
		logger.Warn("Recipe change detection failed", "error", err)
		return
	}
	if len(diffs) == 0 {
		return
	}

	logger.Info("Recipe changes detected", "count", len(diffs))
	if err := bus.Publish(ctx, event.NewRecipeUpdatedEvent(diffs)); err != nil {
		logger.Warn("Recipe change event publish failed", "error", err)
	}
}

// syncJob adapts the sync service to the worker pool. Unconfigured
// credentials skip the run quietly so an offline install stays silent.
type syncJob struct {
	service gamesync.Service
}

func (j syncJob) Name() string { return "auto-sync" }

func (j syncJob) Process(ctx context.Context) error {
	if !j.service.Status().Configured {
		return nil
	}
	_, err := j.service.Sync(ctx, gamesync.TriggerScheduled)
	return err
}
