package player

import (
	"github.com/quinfall/companion/internal/catalog"
	"github.com/quinfall/companion/internal/domain"
	"github.com/quinfall/companion/internal/storage"
)

// Player aggregates one local player's profession skills, tool levels
// and storage system. Levels never drop below 1; setters clamp rather
// than error because the game client does the same.
type Player struct {
	id                   string
	skills               map[domain.Profession]int
	tools                map[domain.Tool]int
	toolTiers            map[domain.Profession]string
	professionToolLevels map[domain.Profession]int
	storage              *storage.System
}

// New creates a fresh player: every profession at skill 1 with a
// "Basic" tier tool at level 1, and the default container set.
func New(id string, cat *catalog.Catalog) *Player {
	if id == "" {
		id = domain.DefaultPlayerID
	}
	p := &Player{
		id:                   id,
		skills:               make(map[domain.Profession]int),
		tools:                make(map[domain.Tool]int),
		toolTiers:            make(map[domain.Profession]string),
		professionToolLevels: make(map[domain.Profession]int),
		storage:              storage.NewSystem(id, cat),
	}
	p.fillDefaults()
	return p
}

// fillDefaults ensures every current profession and tool has an entry.
// Called after construction and after applying a profile so saves from
// older game versions never leave gaps.
func (p *Player) fillDefaults() {
	for _, prof := range domain.Professions() {
		if _, ok := p.skills[prof]; !ok {
			p.skills[prof] = domain.DefaultSkillLevel
		}
		if _, ok := p.toolTiers[prof]; !ok {
			p.toolTiers[prof] = domain.DefaultToolTier
		}
		if _, ok := p.professionToolLevels[prof]; !ok {
			p.professionToolLevels[prof] = domain.DefaultToolLevel
		}
	}
	for _, tool := range domain.Tools() {
		if _, ok := p.tools[tool]; !ok {
			p.tools[tool] = domain.DefaultToolLevel
		}
	}
}

// ID returns the player's id
func (p *Player) ID() string { return p.id }

// Storage returns the player's storage system
func (p *Player) Storage() *storage.System { return p.storage }

// SkillLevel returns the skill level for a profession, 1 for unknown
// professions.
func (p *Player) SkillLevel(prof domain.Profession) int {
	if lvl, ok := p.skills[prof]; ok {
		return lvl
	}
	return domain.DefaultSkillLevel
}

// SetSkillLevel sets a profession's skill level, clamped to at least 1.
// Unknown professions are ignored.
func (p *Player) SetSkillLevel(prof domain.Profession, level int) {
	if !prof.IsValid() {
		return
	}
	p.skills[prof] = clampLevel(level)
}

// SkillTier returns the mastery band the player's skill level puts
// them in for a profession.
func (p *Player) SkillTier(prof domain.Profession) domain.ProfessionTier {
	return domain.TierForSkillLevel(p.SkillLevel(prof))
}

// ToolLevel returns the level of a tool, 1 for unknown tools.
func (p *Player) ToolLevel(tool domain.Tool) int {
	if lvl, ok := p.tools[tool]; ok {
		return lvl
	}
	return domain.DefaultToolLevel
}

// SetToolLevel sets a tool's level, clamped to at least 1. Unknown
// tools are ignored.
func (p *Player) SetToolLevel(tool domain.Tool, level int) {
	if !tool.IsValid() {
		return
	}
	p.tools[tool] = clampLevel(level)
}

// ToolTier returns the selected tool tier for a profession.
func (p *Player) ToolTier(prof domain.Profession) string {
	if tier, ok := p.toolTiers[prof]; ok {
		return tier
	}
	return domain.DefaultToolTier
}

// SetToolTier records the tool tier for a profession. An empty tier
// resets to "Basic"; unknown professions are ignored.
func (p *Player) SetToolTier(prof domain.Profession, tier string) {
	if !prof.IsValid() {
		return
	}
	if tier == "" {
		tier = domain.DefaultToolTier
	}
	p.toolTiers[prof] = tier
}

// ProfessionToolLevel returns the tool level used when crafting with a
// profession.
func (p *Player) ProfessionToolLevel(prof domain.Profession) int {
	if lvl, ok := p.professionToolLevels[prof]; ok {
		return lvl
	}
	return domain.DefaultToolLevel
}

// SetProfessionToolLevel sets a profession's tool level, clamped to at
// least 1. Unknown professions are ignored.
func (p *Player) SetProfessionToolLevel(prof domain.Profession, level int) {
	if !prof.IsValid() {
		return
	}
	p.professionToolLevels[prof] = clampLevel(level)
}

// ItemCount returns how much of a material the player holds in the
// given source: the inventory alone, the crafting storage locations,
// or every container. Unknown sources count everything, matching the
// original save tooling.
func (p *Player) ItemCount(materialID string, source domain.ItemSource) int {
	switch source {
	case domain.SourceInventory:
		return p.storage.ItemCountAt(domain.LocPlayerInventory, materialID)
	case domain.SourceStorage:
		total := 0
		for _, loc := range storage.CraftingStorageOrder {
			total += p.storage.ItemCountAt(loc, materialID)
		}
		return total
	default:
		return p.storage.ItemCount(materialID)
	}
}

// Skills returns a copy of the skill map for listing.
func (p *Player) Skills() map[domain.Profession]int {
	out := make(map[domain.Profession]int, len(p.skills))
	for prof, lvl := range p.skills {
		out[prof] = lvl
	}
	return out
}

// Tools returns a copy of the tool level map for listing.
func (p *Player) Tools() map[domain.Tool]int {
	out := make(map[domain.Tool]int, len(p.tools))
	for tool, lvl := range p.tools {
		out[tool] = lvl
	}
	return out
}

// ToolTiers returns a copy of the per-profession tool tier map.
func (p *Player) ToolTiers() map[domain.Profession]string {
	out := make(map[domain.Profession]string, len(p.toolTiers))
	for prof, tier := range p.toolTiers {
		out[prof] = tier
	}
	return out
}

// ProfessionToolLevels returns a copy of the per-profession tool level map.
func (p *Player) ProfessionToolLevels() map[domain.Profession]int {
	out := make(map[domain.Profession]int, len(p.professionToolLevels))
	for prof, lvl := range p.professionToolLevels {
		out[prof] = lvl
	}
	return out
}

func clampLevel(level int) int {
	if level < domain.DefaultSkillLevel {
		return domain.DefaultSkillLevel
	}
	return level
}
