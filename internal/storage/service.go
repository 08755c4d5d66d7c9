package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/quinfall/companion/internal/concurrency"
	"github.com/quinfall/companion/internal/domain"
	"github.com/quinfall/companion/internal/event"
	"github.com/quinfall/companion/internal/logger"
	"github.com/quinfall/companion/internal/metrics"
)

// Service exposes the storage operations the HTTP surface needs,
// serializing mutations per player and announcing committed changes on
// the event bus. Reads go straight to the system.
type Service interface {
	Summary(ctx context.Context) []domain.LocationSummary
	Location(ctx context.Context, loc domain.Location) (domain.LocationDetail, error)
	Move(ctx context.Context, materialID string, quantity int, from, to domain.Location) error
	UnlockSlots(ctx context.Context, loc domain.Location, slots int) (domain.SlotInfo, error)
	Reset(ctx context.Context, inventoryValue, storageValue int) error
	FindMaterial(ctx context.Context, materialID string) ([]domain.MaterialLocation, error)
}

type service struct {
	system      *System
	eventBus    event.Bus
	lockManager *concurrency.LockManager
}

// NewService creates a storage service over one player's system.
func NewService(system *System, eventBus event.Bus, lockManager *concurrency.LockManager) Service {
	return &service{
		system:      system,
		eventBus:    eventBus,
		lockManager: lockManager,
	}
}

// Summary returns the per-container overview in stable location order.
func (s *service) Summary(ctx context.Context) []domain.LocationSummary {
	lock := s.lockManager.GetLock(s.system.PlayerID())
	lock.Lock()
	defer lock.Unlock()

	return s.system.Summary()
}

// Location returns the full view of one container.
func (s *service) Location(ctx context.Context, loc domain.Location) (domain.LocationDetail, error) {
	lock := s.lockManager.GetLock(s.system.PlayerID())
	lock.Lock()
	defer lock.Unlock()

	c, ok := s.system.Container(loc)
	if !ok {
		return domain.LocationDetail{}, fmt.Errorf(ErrFmtUnknownLocation, domain.ErrUnknownLocation, loc)
	}
	return domain.LocationDetail{
		Summary:  c.Summary(),
		Slots:    c.SlotInfo(),
		Items:    c.Items(),
		LastSync: c.LastSync(),
	}, nil
}

// Move transfers material between two containers as one transaction
// and publishes a storage.moved event on success.
func (s *service) Move(ctx context.Context, materialID string, quantity int, from, to domain.Location) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgMoveCalled, "material", materialID, "quantity", quantity, "from", from, "to", to)

	if !s.system.Catalog().Contains(materialID) {
		metrics.StorageMoves.WithLabelValues(metrics.OutcomeFailure).Inc()
		return fmt.Errorf(ErrFmtUnknownMaterial, domain.ErrUnknownMaterial, materialID)
	}

	lock := s.lockManager.GetLock(s.system.PlayerID())
	lock.Lock()
	defer lock.Unlock()

	if err := s.system.Move(materialID, quantity, from, to); err != nil {
		metrics.StorageMoves.WithLabelValues(metrics.OutcomeFailure).Inc()
		log.Info(LogMsgMoveRejected, "material", materialID, "error", err)
		return err
	}

	s.publishMoved(ctx, materialID, quantity, from, to)
	log.Info(LogMsgMoveCommitted, "material", materialID, "quantity", quantity, "from", from, "to", to)
	return nil
}

// UnlockSlots raises a container's unlocked slot count and returns the
// new slot state.
func (s *service) UnlockSlots(ctx context.Context, loc domain.Location, slots int) (domain.SlotInfo, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgUnlockCalled, "location", loc, "slots", slots)

	if slots <= 0 {
		return domain.SlotInfo{}, fmt.Errorf(ErrFmtBadSlotCount, domain.ErrInvalidInput, slots)
	}

	lock := s.lockManager.GetLock(s.system.PlayerID())
	lock.Lock()
	defer lock.Unlock()

	c, ok := s.system.Container(loc)
	if !ok {
		return domain.SlotInfo{}, fmt.Errorf(ErrFmtUnknownLocation, domain.ErrUnknownLocation, loc)
	}
	if !c.UnlockSlots(slots) {
		return domain.SlotInfo{}, fmt.Errorf(ErrFmtSlotsExceeded, domain.ErrInvalidInput,
			slots, loc, c.UnlockedSlots(), c.MaxSlots())
	}

	log.Info(LogMsgUnlockCommitted, "location", loc, "slots", slots, "unlocked", c.UnlockedSlots())
	return c.SlotInfo(), nil
}

// Reset overwrites every container with the given seed values and
// publishes a storage.reset event.
func (s *service) Reset(ctx context.Context, inventoryValue, storageValue int) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgResetCalled, "inventory_value", inventoryValue, "storage_value", storageValue)

	if inventoryValue < 0 {
		return fmt.Errorf(ErrFmtBadResetValue, domain.ErrInvalidInput, inventoryValue)
	}
	if storageValue < 0 {
		return fmt.Errorf(ErrFmtBadResetValue, domain.ErrInvalidInput, storageValue)
	}

	lock := s.lockManager.GetLock(s.system.PlayerID())
	lock.Lock()
	defer lock.Unlock()

	s.system.ResetAll(inventoryValue, storageValue)

	s.publishReset(ctx, inventoryValue, storageValue)
	log.Info(LogMsgResetDone, "inventory_value", inventoryValue, "storage_value", storageValue)
	return nil
}

// FindMaterial lists every container holding the material.
func (s *service) FindMaterial(ctx context.Context, materialID string) ([]domain.MaterialLocation, error) {
	if !s.system.Catalog().Contains(materialID) {
		return nil, fmt.Errorf(ErrFmtUnknownMaterial, domain.ErrUnknownMaterial, materialID)
	}

	lock := s.lockManager.GetLock(s.system.PlayerID())
	lock.Lock()
	defer lock.Unlock()

	return s.system.FindMaterial(materialID), nil
}

func (s *service) publishMoved(ctx context.Context, materialID string, quantity int, from, to domain.Location) {
	if s.eventBus == nil {
		return
	}
	evt := event.NewStorageMovedEvent(domain.StorageMovedPayload{
		PlayerID:  s.system.PlayerID(),
		Material:  materialID,
		Quantity:  quantity,
		From:      from,
		To:        to,
		Timestamp: time.Now().Unix(),
	})
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "error", err)
	}
}

func (s *service) publishReset(ctx context.Context, inventoryValue, storageValue int) {
	if s.eventBus == nil {
		return
	}
	evt := event.NewStorageResetEvent(domain.StorageResetPayload{
		PlayerID:       s.system.PlayerID(),
		InventoryValue: inventoryValue,
		StorageValue:   storageValue,
		Timestamp:      time.Now().Unix(),
	})
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "error", err)
	}
}
