package storage

import (
	"fmt"
	"time"

	"github.com/quinfall/companion/internal/catalog"
	"github.com/quinfall/companion/internal/domain"
)

// System owns the fixed location-to-container registry for one player.
// Containers are created once at construction from the defaults table;
// a player owns exactly one System.
//
// Multi-step mutations (moves, craft deductions) go through ApplyDeltas,
// which validates every constraint against current state before
// touching anything. No partially applied state is ever observable.
type System struct {
	playerID   string
	cat        *catalog.Catalog
	containers map[domain.Location]*Container
	order      []domain.Location
}

// NewSystem creates a storage system with the default container set.
func NewSystem(playerID string, cat *catalog.Catalog) *System {
	if playerID == "" {
		playerID = domain.DefaultPlayerID
	}
	specs := defaultContainerSpecs()
	s := &System{
		playerID:   playerID,
		cat:        cat,
		containers: make(map[domain.Location]*Container, len(specs)),
	}
	for _, loc := range domain.Locations() {
		spec, ok := specs[loc]
		if !ok {
			continue
		}
		s.containers[loc] = NewContainer(loc, spec.kind, spec.capacity, spec.maxSlots, spec.unlocked, spec.weightLimit, cat)
		s.order = append(s.order, loc)
	}
	return s
}

// PlayerID returns the owning player's id
func (s *System) PlayerID() string { return s.playerID }

// Catalog returns the injected material catalog
func (s *System) Catalog() *catalog.Catalog { return s.cat }

// Container returns the container at a location
func (s *System) Container(loc domain.Location) (*Container, bool) {
	c, ok := s.containers[loc]
	return c, ok
}

// Locations returns the provisioned locations in stable order.
func (s *System) Locations() []domain.Location {
	out := make([]domain.Location, len(s.order))
	copy(out, s.order)
	return out
}

// ItemCount returns the total quantity of a material across every
// container.
func (s *System) ItemCount(materialID string) int {
	total := 0
	for _, c := range s.containers {
		total += c.ItemCount(materialID)
	}
	return total
}

// ItemCountAt returns the quantity at one location, zero when the
// location has no container.
func (s *System) ItemCountAt(loc domain.Location, materialID string) int {
	c, ok := s.containers[loc]
	if !ok {
		return 0
	}
	return c.ItemCount(materialID)
}

// SetItemCount sets a material quantity at a location directly,
// reporting whether the location exists. Resets and restores use this;
// gameplay paths go through Move and ApplyDeltas.
func (s *System) SetItemCount(loc domain.Location, materialID string, qty int) bool {
	c, ok := s.containers[loc]
	if !ok {
		return false
	}
	c.SetItemCount(materialID, qty)
	return true
}

// Delta is one planned quantity change at a location. Positive Change
// adds, negative removes.
type Delta struct {
	Location domain.Location
	Material string
	Change   int
}

// ApplyDeltas applies a set of quantity changes as a single
// transaction: every delta is validated against current state first
// (resulting quantities non-negative, slot and weight limits
// respected per container), then all deltas are applied. On error
// nothing is changed.
func (s *System) ApplyDeltas(deltas []Delta) error {
	// Net change per container and material
	perLoc := make(map[domain.Location]map[string]int)
	for _, d := range deltas {
		if d.Change == 0 {
			continue
		}
		if _, ok := s.containers[d.Location]; !ok {
			return fmt.Errorf("%w: %s", domain.ErrUnknownLocation, d.Location)
		}
		changes, ok := perLoc[d.Location]
		if !ok {
			changes = make(map[string]int)
			perLoc[d.Location] = changes
		}
		changes[d.Material] += d.Change
	}

	// Validate all containers before touching any
	for loc, changes := range perLoc {
		c := s.containers[loc]
		newTotal := c.TotalItems()
		newWeight := c.TotalWeight()
		for materialID, change := range changes {
			newQty := c.ItemCount(materialID) + change
			if newQty < 0 {
				return fmt.Errorf("%w: %s at %s (need %d, have %d)",
					domain.ErrInsufficientItems, materialID, loc, -change, c.ItemCount(materialID))
			}
			newTotal += change
			if weight, ok := s.cat.Weight(materialID); ok {
				newWeight += weight * float64(change)
			}
		}
		if newTotal > c.UnlockedSlots() {
			return fmt.Errorf("%w: %d slots needed, %d unlocked at %s",
				domain.ErrInsufficientSpace, newTotal, c.UnlockedSlots(), loc)
		}
		if newWeight > c.WeightLimit() {
			return fmt.Errorf("%w: at %s", domain.ErrWeightExceeded, loc)
		}
	}

	// Commit
	for loc, changes := range perLoc {
		c := s.containers[loc]
		for materialID, change := range changes {
			newQty := c.items[materialID] + change
			if newQty <= 0 {
				delete(c.items, materialID)
				continue
			}
			c.items[materialID] = newQty
		}
	}
	return nil
}

// Move transfers qty units of a material between two locations as one
// transaction. The system-wide total of the material is unchanged by
// a successful move; a failed move changes nothing.
func (s *System) Move(materialID string, qty int, from, to domain.Location) error {
	if qty <= 0 {
		return fmt.Errorf("%w: move quantity must be positive, got %d", domain.ErrInvalidInput, qty)
	}
	if from == to {
		return fmt.Errorf("%w: %s", domain.ErrSameLocation, from)
	}
	if _, ok := s.containers[from]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownLocation, from)
	}
	if _, ok := s.containers[to]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownLocation, to)
	}
	return s.ApplyDeltas([]Delta{
		{Location: from, Material: materialID, Change: -qty},
		{Location: to, Material: materialID, Change: qty},
	})
}

// ResetLocation overwrites one container's contents: value 0 clears
// it, any other value sets every catalog material to that quantity.
// Capacity is deliberately ignored; this is a debug and fresh-start
// tool, not a gameplay path.
func (s *System) ResetLocation(loc domain.Location, value int) bool {
	c, ok := s.containers[loc]
	if !ok {
		return false
	}
	c.items = make(map[string]int)
	if value <= 0 {
		return true
	}
	for _, id := range s.cat.Names() {
		c.items[id] = value
	}
	return true
}

// ResetAll resets every container: the player inventory to
// inventoryValue per material, everything else to storageValue.
func (s *System) ResetAll(inventoryValue, storageValue int) {
	for _, loc := range s.order {
		if loc == domain.LocPlayerInventory {
			s.ResetLocation(loc, inventoryValue)
			continue
		}
		s.ResetLocation(loc, storageValue)
	}
}

// Summary returns the per-location summaries in stable order.
func (s *System) Summary() []domain.LocationSummary {
	out := make([]domain.LocationSummary, 0, len(s.order))
	for _, loc := range s.order {
		out = append(out, s.containers[loc].Summary())
	}
	return out
}

// FindMaterial returns every location holding a material, with
// quantities, in stable order.
func (s *System) FindMaterial(materialID string) []domain.MaterialLocation {
	var out []domain.MaterialLocation
	for _, loc := range s.order {
		if qty := s.containers[loc].ItemCount(materialID); qty > 0 {
			out = append(out, domain.MaterialLocation{Location: loc, Quantity: qty})
		}
	}
	return out
}

// MarkAllSynced stamps every container with a sync time
func (s *System) MarkAllSynced(ts time.Time) {
	for _, c := range s.containers {
		c.MarkSynced(ts)
	}
}
