package gamesync

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/quinfall/companion/internal/concurrency"
	"github.com/quinfall/companion/internal/domain"
	"github.com/quinfall/companion/internal/event"
	"github.com/quinfall/companion/internal/logger"
	"github.com/quinfall/companion/internal/metrics"
	"github.com/quinfall/companion/internal/storage"
)

// Status is the companion's view of the sync machinery, served by the
// sync status endpoint.
type Status struct {
	Configured bool               `json:"configured"`
	LastReport *domain.SyncReport `json:"last_report,omitempty"`
	LastError  string             `json:"last_error,omitempty"`
}

// Service orchestrates storage synchronization with the game API.
type Service interface {
	Sync(ctx context.Context, trigger string) (domain.SyncReport, error)
	Status() Status
}

type service struct {
	client      Client
	creds       *CredentialsStore
	system      *storage.System
	store       *storage.Store
	eventBus    event.Bus
	lockManager *concurrency.LockManager

	mu         sync.Mutex
	lastReport *domain.SyncReport
	lastErr    error
}

// NewService creates a sync service around one player's storage
// system and its on-disk store.
func NewService(client Client, creds *CredentialsStore, system *storage.System, store *storage.Store, eventBus event.Bus, lockManager *concurrency.LockManager) Service {
	return &service{
		client:      client,
		creds:       creds,
		system:      system,
		store:       store,
		eventBus:    eventBus,
		lockManager: lockManager,
	}
}

// Sync runs one full synchronization pass: fetch the API's snapshot,
// merge it into local state (the API wins each per-material conflict,
// materials the API does not mention keep their local counts), push
// the merged state back, mark containers synced and persist. The
// player lock is held throughout so crafts and moves cannot
// interleave with the merge.
func (s *service) Sync(ctx context.Context, trigger string) (domain.SyncReport, error) {
	log := logger.FromContext(ctx)
	playerID := s.system.PlayerID()
	log.Info(LogMsgSyncStarted, "player", playerID, "trigger", trigger)

	if !s.creds.Current().Configured() {
		err := fmt.Errorf("%w: %s", domain.ErrNotConfigured, ErrMsgNoCredentials)
		s.record(domain.SyncReport{}, err)
		return domain.SyncReport{}, err
	}

	lock := s.lockManager.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	started := time.Now()

	remote, err := s.client.FetchStorage(ctx, playerID)
	if err != nil {
		wrapped := fmt.Errorf(ErrFmtFetchFailed, err)
		metrics.SyncRuns.WithLabelValues(trigger, metrics.OutcomeFailure).Inc()
		log.Error(LogMsgSyncFailed, "player", playerID, "stage", "fetch", "error", err)
		s.record(domain.SyncReport{}, wrapped)
		return domain.SyncReport{}, wrapped
	}

	merge := s.system.MergeAPIItems(remote)

	if err := s.client.PushStorage(ctx, s.system.ToAPIFormat()); err != nil {
		wrapped := fmt.Errorf(ErrFmtPushFailed, err)
		metrics.SyncRuns.WithLabelValues(trigger, metrics.OutcomeFailure).Inc()
		log.Error(LogMsgSyncFailed, "player", playerID, "stage", "push", "error", err)
		s.record(domain.SyncReport{}, wrapped)
		return domain.SyncReport{}, wrapped
	}

	finished := time.Now()
	s.system.MarkAllSynced(finished)

	if err := s.store.Save(ctx, s.system); err != nil {
		wrapped := fmt.Errorf(ErrFmtSaveAfterSync, err)
		metrics.SyncRuns.WithLabelValues(trigger, metrics.OutcomeFailure).Inc()
		log.Error(LogMsgSyncFailed, "player", playerID, "stage", "save", "error", err)
		s.record(domain.SyncReport{}, wrapped)
		return domain.SyncReport{}, wrapped
	}

	report := domain.SyncReport{
		PlayerID:          playerID,
		ItemsUpdated:      merge.ItemsUpdated,
		ConflictsResolved: merge.ConflictsResolved,
		SkippedLocations:  merge.Skipped,
		Locations:         merge.Locations,
		StartedAt:         started.Unix(),
		FinishedAt:        finished.Unix(),
	}
	s.record(report, nil)
	s.publishCompleted(ctx, report, trigger)

	log.Info(LogMsgSyncCompleted, "player", playerID, "trigger", trigger, "summary", merge.Summary())
	return report, nil
}

// Status reports credential state and the outcome of the last sync.
func (s *service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{
		Configured: s.creds.Current().Configured(),
		LastReport: s.lastReport,
	}
	if s.lastErr != nil {
		st.LastError = s.lastErr.Error()
	}
	return st
}

func (s *service) record(report domain.SyncReport, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err == nil {
		r := report
		s.lastReport = &r
	}
	s.lastErr = err
}

func (s *service) publishCompleted(ctx context.Context, report domain.SyncReport, trigger string) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, event.NewSyncCompletedEvent(report, trigger)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "error", err)
	}
}
