package player

import (
	"context"
	"fmt"

	"github.com/quinfall/companion/internal/concurrency"
	"github.com/quinfall/companion/internal/domain"
	"github.com/quinfall/companion/internal/logger"
)

// View is the HTTP-facing snapshot of the player profile.
type View struct {
	PlayerID             string            `json:"player_id"`
	Skills               map[string]int    `json:"skills"`
	SkillTiers           map[string]string `json:"skill_tiers"`
	Tools                map[string]int    `json:"tools"`
	ToolTiers            map[string]string `json:"tool_tiers"`
	ProfessionToolLevels map[string]int    `json:"profession_tool_levels"`
}

// Service wraps profile reads, profile mutations and the explicit
// save/reload operations, serializing them per player alongside
// crafts, moves and syncs.
type Service interface {
	View(ctx context.Context, p *Player) View
	SetSkillLevel(ctx context.Context, p *Player, prof domain.Profession, level int) (int, error)
	SetToolLevel(ctx context.Context, p *Player, tool domain.Tool, level int) (int, error)
	SetToolTier(ctx context.Context, p *Player, prof domain.Profession, tier string) (string, error)
	SetProfessionToolLevel(ctx context.Context, p *Player, prof domain.Profession, level int) (int, error)
	Save(ctx context.Context, p *Player) error
	Reload(ctx context.Context, p *Player) error
}

type service struct {
	savesDir    string
	lockManager *concurrency.LockManager
}

// NewService creates a player service persisting under savesDir.
func NewService(savesDir string, lockManager *concurrency.LockManager) Service {
	return &service{
		savesDir:    savesDir,
		lockManager: lockManager,
	}
}

// View returns the player's current skills, tools and tiers.
func (s *service) View(ctx context.Context, p *Player) View {
	lock := s.lockManager.GetLock(p.ID())
	lock.Lock()
	defer lock.Unlock()

	view := View{
		PlayerID:             p.ID(),
		Skills:               make(map[string]int),
		SkillTiers:           make(map[string]string),
		Tools:                make(map[string]int),
		ToolTiers:            make(map[string]string),
		ProfessionToolLevels: make(map[string]int),
	}
	for prof, lvl := range p.Skills() {
		view.Skills[string(prof)] = lvl
		view.SkillTiers[string(prof)] = string(p.SkillTier(prof))
	}
	for tool, lvl := range p.Tools() {
		view.Tools[string(tool)] = lvl
	}
	for prof, tier := range p.ToolTiers() {
		view.ToolTiers[string(prof)] = tier
	}
	for prof, lvl := range p.ProfessionToolLevels() {
		view.ProfessionToolLevels[string(prof)] = lvl
	}
	return view
}

// SetSkillLevel updates one profession skill and returns the stored
// level after clamping.
func (s *service) SetSkillLevel(ctx context.Context, p *Player, prof domain.Profession, level int) (int, error) {
	if level <= 0 {
		return 0, fmt.Errorf(ErrFmtBadLevel, domain.ErrInvalidInput, level)
	}

	lock := s.lockManager.GetLock(p.ID())
	lock.Lock()
	defer lock.Unlock()

	p.SetSkillLevel(prof, level)
	stored := p.SkillLevel(prof)
	logger.FromContext(ctx).Info(LogMsgSkillUpdated, "player", p.ID(), "profession", prof, "level", stored)
	return stored, nil
}

// SetToolLevel updates one tool's level and returns the stored level.
func (s *service) SetToolLevel(ctx context.Context, p *Player, tool domain.Tool, level int) (int, error) {
	if level <= 0 {
		return 0, fmt.Errorf(ErrFmtBadLevel, domain.ErrInvalidInput, level)
	}

	lock := s.lockManager.GetLock(p.ID())
	lock.Lock()
	defer lock.Unlock()

	p.SetToolLevel(tool, level)
	stored := p.ToolLevel(tool)
	logger.FromContext(ctx).Info(LogMsgToolUpdated, "player", p.ID(), "tool", tool, "level", stored)
	return stored, nil
}

// SetToolTier records which tier of tool the player carries for a
// profession.
func (s *service) SetToolTier(ctx context.Context, p *Player, prof domain.Profession, tier string) (string, error) {
	if tier == "" {
		return "", fmt.Errorf(ErrFmtEmptyTier, domain.ErrInvalidInput)
	}

	lock := s.lockManager.GetLock(p.ID())
	lock.Lock()
	defer lock.Unlock()

	p.SetToolTier(prof, tier)
	stored := p.ToolTier(prof)
	logger.FromContext(ctx).Info(LogMsgToolTierUpdated, "player", p.ID(), "profession", prof, "tier", stored)
	return stored, nil
}

// SetProfessionToolLevel updates the tool level tracked per profession.
func (s *service) SetProfessionToolLevel(ctx context.Context, p *Player, prof domain.Profession, level int) (int, error) {
	if level <= 0 {
		return 0, fmt.Errorf(ErrFmtBadLevel, domain.ErrInvalidInput, level)
	}

	lock := s.lockManager.GetLock(p.ID())
	lock.Lock()
	defer lock.Unlock()

	p.SetProfessionToolLevel(prof, level)
	stored := p.ProfessionToolLevel(prof)
	logger.FromContext(ctx).Info(LogMsgProfToolUpdated, "player", p.ID(), "profession", prof, "level", stored)
	return stored, nil
}

// Save persists the profile and storage save files.
func (s *service) Save(ctx context.Context, p *Player) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgSaveCalled, "player", p.ID())

	lock := s.lockManager.GetLock(p.ID())
	lock.Lock()
	defer lock.Unlock()

	if err := SaveAll(ctx, s.savesDir, p); err != nil {
		return err
	}
	log.Info(LogMsgSaved, "player", p.ID(), "dir", s.savesDir)
	return nil
}

// Reload replaces in-memory state from the save files.
func (s *service) Reload(ctx context.Context, p *Player) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgReloadCalled, "player", p.ID())

	lock := s.lockManager.GetLock(p.ID())
	lock.Lock()
	defer lock.Unlock()

	if err := Reload(ctx, s.savesDir, p); err != nil {
		return err
	}
	log.Info(LogMsgReloaded, "player", p.ID(), "dir", s.savesDir)
	return nil
}
