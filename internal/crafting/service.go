package crafting

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/quinfall/companion/internal/concurrency"
	"github.com/quinfall/companion/internal/domain"
	"github.com/quinfall/companion/internal/event"
	"github.com/quinfall/companion/internal/logger"
	"github.com/quinfall/companion/internal/metrics"
	"github.com/quinfall/companion/internal/player"
	"github.com/quinfall/companion/internal/recipe"
	"github.com/quinfall/companion/internal/storage"
)

// CraftResult reports one committed craft transaction.
type CraftResult struct {
	RecipeName string                    `json:"recipe_name"`
	Profession domain.Profession         `json:"profession"`
	Quantity   int                       `json:"quantity"`
	Consumed   []domain.ConsumedMaterial `json:"consumed"`
}

// Service defines the interface for crafting operations
type Service interface {
	CanCraft(ctx context.Context, p *player.Player, recipeName string, quantity int) error
	Craft(ctx context.Context, p *player.Player, recipeName string, quantity int) (*CraftResult, error)
}

type service struct {
	book        *recipe.Book
	eventBus    event.Bus
	lockManager *concurrency.LockManager
}

// NewService creates a new crafting service
func NewService(book *recipe.Book, eventBus event.Bus, lockManager *concurrency.LockManager) Service {
	return &service{
		book:        book,
		eventBus:    eventBus,
		lockManager: lockManager,
	}
}

// CanCraft reports whether the player could craft quantity batches of
// the named recipe right now. Material availability is summed across
// the inventory and every storage location; the first shortfall found
// is returned as a domain.ErrInsufficientItems wrap naming the
// material and the need/have counts. Skill and tool requirements are
// checked before materials.
func (s *service) CanCraft(ctx context.Context, p *player.Player, recipeName string, quantity int) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgCanCraftCalled, "player", p.ID(), "recipe", recipeName, "quantity", quantity)

	rec, err := s.resolveRecipe(recipeName, quantity)
	if err != nil {
		return err
	}
	return s.checkRequirements(p, rec, quantity)
}

// Craft executes one craft transaction: deduct the required materials
// from the player's inventory first, then from the crafting storage
// locations in their fixed priority order, and deposit the crafted
// output into the inventory. All mutations go through a single
// storage transaction; on any error nothing is changed.
func (s *service) Craft(ctx context.Context, p *player.Player, recipeName string, quantity int) (*CraftResult, error) {
	result, err := s.craft(ctx, p, recipeName, quantity)
	if err != nil {
		metrics.Crafts.WithLabelValues(metrics.OutcomeFailure).Inc()
	}
	return result, err
}

func (s *service) craft(ctx context.Context, p *player.Player, recipeName string, quantity int) (*CraftResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCraftCalled, "player", p.ID(), "recipe", recipeName, "quantity", quantity)

	rec, err := s.resolveRecipe(recipeName, quantity)
	if err != nil {
		return nil, err
	}

	// Serialize mutations per player so concurrent craft requests
	// cannot interleave between planning and commit.
	lock := s.lockManager.GetLock(p.ID())
	lock.Lock()
	defer lock.Unlock()

	if err := s.checkRequirements(p, rec, quantity); err != nil {
		log.Warn(LogMsgCraftRejected, "player", p.ID(), "recipe", recipeName, "error", err)
		return nil, err
	}

	consumed, err := planDeductions(p.Storage(), rec, quantity)
	if err != nil {
		log.Warn(LogMsgCraftRejected, "player", p.ID(), "recipe", recipeName, "error", err)
		return nil, err
	}

	deltas := make([]storage.Delta, 0, len(consumed)+1)
	for _, c := range consumed {
		deltas = append(deltas, storage.Delta{Location: c.Location, Material: c.Material, Change: -c.Quantity})
	}
	// Crafted output lands in the inventory under the recipe name.
	deltas = append(deltas, storage.Delta{Location: domain.LocPlayerInventory, Material: rec.Name, Change: quantity})

	if err := p.Storage().ApplyDeltas(deltas); err != nil {
		log.Warn(LogMsgCraftRejected, "player", p.ID(), "recipe", recipeName, "error", err)
		return nil, err
	}

	result := &CraftResult{
		RecipeName: rec.Name,
		Profession: rec.Profession,
		Quantity:   quantity,
		Consumed:   consumed,
	}

	s.publishCrafted(ctx, p.ID(), result)

	log.Info(LogMsgCraftCommitted, "player", p.ID(), "recipe", rec.Name, "quantity", quantity, "deductions", len(consumed))
	return result, nil
}

func (s *service) resolveRecipe(recipeName string, quantity int) (domain.Recipe, error) {
	if quantity <= 0 {
		return domain.Recipe{}, fmt.Errorf(ErrFmtBadQuantity, domain.ErrInvalidInput, quantity)
	}
	rec, ok := s.book.ByName(recipeName)
	if !ok {
		return domain.Recipe{}, fmt.Errorf(ErrFmtUnknownRecipe, domain.ErrUnknownRecipe, recipeName)
	}
	return rec, nil
}

func (s *service) checkRequirements(p *player.Player, rec domain.Recipe, quantity int) error {
	if have := p.SkillLevel(rec.Profession); have < rec.SkillLevel {
		return fmt.Errorf(ErrFmtSkillTooLow, domain.ErrSkillTooLow, rec.Name, rec.Profession, rec.SkillLevel, have)
	}
	if have := p.ProfessionToolLevel(rec.Profession); have < rec.ToolLevel {
		return fmt.Errorf(ErrFmtToolTooLow, domain.ErrToolTooLow, rec.Name, rec.ToolLevel, rec.Tool, have)
	}
	for _, material := range sortedMaterials(rec) {
		need := rec.Materials[material] * quantity
		have := p.ItemCount(material, domain.SourceBoth)
		if have < need {
			return fmt.Errorf(ErrFmtMissingMaterial, domain.ErrInsufficientItems, material, need, have)
		}
	}
	return nil
}

// planDeductions allocates every required material against the
// deduction sources in priority order: inventory first, then the
// crafting storage locations. Each stop contributes
// min(available, remaining). Materials held anywhere else do not
// cover a craft even though CanCraft counts them.
func planDeductions(sys *storage.System, rec domain.Recipe, quantity int) ([]domain.ConsumedMaterial, error) {
	sources := make([]domain.Location, 0, len(storage.CraftingStorageOrder)+1)
	sources = append(sources, domain.LocPlayerInventory)
	sources = append(sources, storage.CraftingStorageOrder...)

	var consumed []domain.ConsumedMaterial
	for _, material := range sortedMaterials(rec) {
		remaining := rec.Materials[material] * quantity
		for _, loc := range sources {
			if remaining == 0 {
				break
			}
			take := sys.ItemCountAt(loc, material)
			if take > remaining {
				take = remaining
			}
			if take == 0 {
				continue
			}
			consumed = append(consumed, domain.ConsumedMaterial{Material: material, Location: loc, Quantity: take})
			remaining -= take
		}
		if remaining > 0 {
			return nil, fmt.Errorf(ErrFmtUncoveredDeficit, domain.ErrInsufficientItems, material, remaining)
		}
	}
	return consumed, nil
}

func (s *service) publishCrafted(ctx context.Context, playerID string, result *CraftResult) {
	if s.eventBus == nil {
		return
	}
	evt := event.NewItemCraftedEvent(domain.ItemCraftedPayload{
		PlayerID:   playerID,
		RecipeName: result.RecipeName,
		Profession: result.Profession,
		Quantity:   result.Quantity,
		Consumed:   result.Consumed,
		Timestamp:  time.Now().Unix(),
	})
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "error", err)
	}
}

// sortedMaterials returns the recipe's material ids in stable order so
// shortfall reporting and deduction planning are deterministic.
func sortedMaterials(rec domain.Recipe) []string {
	names := make([]string, 0, len(rec.Materials))
	for name := range rec.Materials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
