package storage

import (
	"fmt"
	"time"

	"github.com/quinfall/companion/internal/catalog"
	"github.com/quinfall/companion/internal/domain"
)

// Container is a bounded store of material quantities at one named
// location. Slot and weight invariants hold after every operation:
// total items never exceed unlocked slots, total weight never exceeds
// the weight limit, and stored quantities are strictly positive.
//
// Containers are not safe for concurrent use; the owning service
// serializes access per player.
type Container struct {
	location    domain.Location
	kind        domain.StorageKind
	capacity    int
	maxSlots    int
	unlocked    int
	weightLimit float64
	items       map[string]int
	cat         *catalog.Catalog

	apiContainerID  string
	gameContainerID string
	lastSync        string // RFC3339, empty when never synced
	lastAPISync     string
	syncHash        string
}

// NewContainer creates an empty container. The catalog reference is
// used for weight arithmetic; materials missing from the catalog weigh
// nothing, matching the game's lenient capacity rules.
func NewContainer(loc domain.Location, kind domain.StorageKind, capacity, maxSlots, unlocked int, weightLimit float64, cat *catalog.Catalog) *Container {
	if unlocked > maxSlots {
		unlocked = maxSlots
	}
	return &Container{
		location:    loc,
		kind:        kind,
		capacity:    capacity,
		maxSlots:    maxSlots,
		unlocked:    unlocked,
		weightLimit: weightLimit,
		items:       make(map[string]int),
		cat:         cat,
	}
}

// Location returns the container's location
func (c *Container) Location() domain.Location { return c.location }

// Kind returns the container's storage kind
func (c *Container) Kind() domain.StorageKind { return c.kind }

// Capacity returns the base slot capacity
func (c *Container) Capacity() int { return c.capacity }

// MaxSlots returns the unlock ceiling
func (c *Container) MaxSlots() int { return c.maxSlots }

// UnlockedSlots returns the currently unlocked slot count
func (c *Container) UnlockedSlots() int { return c.unlocked }

// WeightLimit returns the container's weight limit
func (c *Container) WeightLimit() float64 { return c.weightLimit }

// ItemCount returns the stored quantity of a material, zero when absent
func (c *Container) ItemCount(materialID string) int {
	return c.items[materialID]
}

// SetItemCount sets the stored quantity of a material directly.
// Zero and negative values remove the entry. No capacity checks are
// applied; this is the primitive behind resets and restores.
func (c *Container) SetItemCount(materialID string, qty int) {
	if qty <= 0 {
		delete(c.items, materialID)
		return
	}
	c.items[materialID] = qty
}

// CheckAdd reports whether qty units of a material would fit,
// returning nil or the violated constraint. The slot check runs
// first; the weight check is skipped for materials missing from the
// catalog.
func (c *Container) CheckAdd(materialID string, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: add quantity must be positive, got %d", domain.ErrInvalidInput, qty)
	}
	if c.TotalItems()+qty > c.unlocked {
		return fmt.Errorf("%w: %s needs %d slots, %d free at %s",
			domain.ErrInsufficientSpace, materialID, qty, c.FreeSpace(), c.location)
	}
	if weight, ok := c.cat.Weight(materialID); ok {
		if c.TotalWeight()+weight*float64(qty) > c.weightLimit {
			return fmt.Errorf("%w: %s at %s", domain.ErrWeightExceeded, materialID, c.location)
		}
	}
	return nil
}

// CanAdd reports whether qty units of a material would fit
func (c *Container) CanAdd(materialID string, qty int) bool {
	return c.CheckAdd(materialID, qty) == nil
}

// Add stores qty units of a material, reporting success. State is
// unchanged on failure.
func (c *Container) Add(materialID string, qty int) bool {
	if err := c.CheckAdd(materialID, qty); err != nil {
		return false
	}
	c.items[materialID] += qty
	return true
}

// CheckRemove reports whether qty units of a material can be removed
func (c *Container) CheckRemove(materialID string, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: remove quantity must be positive, got %d", domain.ErrInvalidInput, qty)
	}
	if have := c.items[materialID]; have < qty {
		return fmt.Errorf("%w: %s at %s (need %d, have %d)",
			domain.ErrInsufficientItems, materialID, c.location, qty, have)
	}
	return nil
}

// Remove takes qty units of a material out, reporting success. State
// is unchanged on failure; entries reaching zero are deleted.
func (c *Container) Remove(materialID string, qty int) bool {
	if err := c.CheckRemove(materialID, qty); err != nil {
		return false
	}
	c.items[materialID] -= qty
	if c.items[materialID] <= 0 {
		delete(c.items, materialID)
	}
	return true
}

// TotalItems returns the summed quantity across all materials
func (c *Container) TotalItems() int {
	total := 0
	for _, qty := range c.items {
		total += qty
	}
	return total
}

// TotalWeight returns the summed weight of the contents. Materials
// missing from the catalog contribute nothing.
func (c *Container) TotalWeight() float64 {
	total := 0.0
	for id, qty := range c.items {
		if weight, ok := c.cat.Weight(id); ok {
			total += weight * float64(qty)
		}
	}
	return total
}

// UniqueMaterials returns the number of distinct materials stored
func (c *Container) UniqueMaterials() int {
	return len(c.items)
}

// FreeSpace returns the unused slot count
func (c *Container) FreeSpace() int {
	free := c.unlocked - c.TotalItems()
	if free < 0 {
		return 0
	}
	return free
}

// IsFull reports whether every unlocked slot is occupied
func (c *Container) IsFull() bool {
	return c.TotalItems() >= c.unlocked
}

// CanUnlockSlots reports whether n more slots can be unlocked
func (c *Container) CanUnlockSlots(n int) bool {
	return n > 0 && c.unlocked+n <= c.maxSlots
}

// UnlockSlots unlocks n more slots up to the container's ceiling,
// reporting success.
func (c *Container) UnlockSlots(n int) bool {
	if !c.CanUnlockSlots(n) {
		return false
	}
	c.unlocked += n
	return true
}

// SetUnlockedSlots sets the unlocked slot count, clamped to
// [0, MaxSlots]. Returns false when the requested value was clamped.
func (c *Container) SetUnlockedSlots(n int) bool {
	switch {
	case n < 0:
		c.unlocked = 0
		return false
	case n > c.maxSlots:
		c.unlocked = c.maxSlots
		return false
	}
	c.unlocked = n
	return true
}

// SlotInfo returns the container's slot accounting in one view
func (c *Container) SlotInfo() domain.SlotInfo {
	return domain.SlotInfo{
		Unlocked:   c.unlocked,
		Max:        c.maxSlots,
		Used:       c.TotalItems(),
		Free:       c.FreeSpace(),
		Unlockable: c.maxSlots - c.unlocked,
	}
}

// Items returns a copy of the stored material quantities
func (c *Container) Items() map[string]int {
	out := make(map[string]int, len(c.items))
	for id, qty := range c.items {
		out[id] = qty
	}
	return out
}

// Summary returns the container's per-location summary view
func (c *Container) Summary() domain.LocationSummary {
	return domain.LocationSummary{
		Location:        c.location,
		Kind:            c.kind,
		TotalItems:      c.TotalItems(),
		Capacity:        c.unlocked,
		TotalWeight:     c.TotalWeight(),
		WeightLimit:     c.weightLimit,
		FreeSpace:       c.FreeSpace(),
		UniqueMaterials: c.UniqueMaterials(),
	}
}

// MarkSynced records a successful sync with the game API
func (c *Container) MarkSynced(ts time.Time) {
	stamp := ts.UTC().Format(time.RFC3339)
	c.lastSync = stamp
	c.lastAPISync = stamp
}

// LastSync returns the RFC3339 timestamp of the last sync, empty when
// the container has never synced.
func (c *Container) LastSync() string { return c.lastSync }
