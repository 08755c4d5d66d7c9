package bootstrap

import (
	"context"

	"github.com/quinfall/companion/internal/config"
	"github.com/quinfall/companion/internal/event"
	"github.com/quinfall/companion/internal/gamesync"
	"github.com/quinfall/companion/internal/ledger"
	"github.com/quinfall/companion/internal/logger"
	"github.com/quinfall/companion/internal/player"
	"github.com/quinfall/companion/internal/scheduler"
	"github.com/quinfall/companion/internal/server"
	"github.com/quinfall/companion/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	SyncService        gamesync.Service
	PlayerService      player.Service
	Player             *player.Player
	ResilientPublisher *event.ResilientPublisher
	LedgerStore        *ledger.Store
	Config             *config.Config
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in the order local state depends on:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler and worker pool (no new background jobs, drain running ones)
// 3. Final sync push to the game API, when configured for it
// 4. Final save of profile and storage
// 5. Event publisher (flush pending events into the ledger)
// 6. Ledger store (close SQLite after the last write)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	logger.Info(LogMsgShuttingDownServer)

	// Shutdown server first (stop accepting new requests)
	if err := components.Server.Stop(ctx); err != nil {
		logger.Error(LogMsgServerForcedShutdown, "error", err)
	}

	// Stop scheduled jobs before draining the pool so nothing re-enqueues
	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	// Push local state to the game API before the final save
	if components.Config.SyncOnShutdown && components.SyncService.Status().Configured {
		if _, err := components.SyncService.Sync(ctx, gamesync.TriggerShutdown); err != nil {
			logger.Error(LogMsgShutdownSyncFailed, "error", err)
		}
	}

	// Final save of profile and storage
	if err := components.PlayerService.Save(ctx, components.Player); err != nil {
		logger.Error(LogMsgShutdownSaveFailed, "error", err)
	}

	// Shutdown resilient publisher to flush pending events
	logger.Info(LogMsgShuttingDownEventPublisher)
	if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
		logger.Error(LogMsgResilientPublisherFailed, "error", err)
	}

	// Close the ledger after the last event has been journaled
	if err := components.LedgerStore.Close(); err != nil {
		logger.Error(LogMsgLedgerCloseFailed, "error", err)
	}

	logger.Info(LogMsgServerStopped)
}
