package player

import (
	"context"
	"fmt"

	"github.com/quinfall/companion/internal/domain"
	"github.com/quinfall/companion/internal/logger"
)

// CurrentProfileVersion is the profile save format written by Save.
// Version 1 is the legacy format from before the blacksmithing
// profession split; loading migrates it forward.
const CurrentProfileVersion = 2

// LegacyProfessionBlacksmithing is the retired profession key split by
// the version 1 migration.
const LegacyProfessionBlacksmithing = "BLACKSMITHING"

// Profile is the serialized player profile. Keys are raw enum names so
// files survive enum changes; ApplyProfile resolves them and skips
// anything unknown.
type Profile struct {
	Version              int               `json:"version"`
	Skills               map[string]int    `json:"skills"`
	Tools                map[string]int    `json:"tools"`
	ToolTiers            map[string]string `json:"tool_types"`
	ProfessionToolLevels map[string]int    `json:"profession_tool_levels"`
}

// Profile captures the player's current state in the current save format.
func (p *Player) Profile() Profile {
	prof := Profile{
		Version:              CurrentProfileVersion,
		Skills:               make(map[string]int, len(p.skills)),
		Tools:                make(map[string]int, len(p.tools)),
		ToolTiers:            make(map[string]string, len(p.toolTiers)),
		ProfessionToolLevels: make(map[string]int, len(p.professionToolLevels)),
	}
	for profession, lvl := range p.skills {
		prof.Skills[string(profession)] = lvl
	}
	for tool, lvl := range p.tools {
		prof.Tools[string(tool)] = lvl
	}
	for profession, tier := range p.toolTiers {
		prof.ToolTiers[string(profession)] = tier
	}
	for profession, lvl := range p.professionToolLevels {
		prof.ProfessionToolLevels[string(profession)] = lvl
	}
	return prof
}

// profileMigrations maps a profile version to the function that lifts
// it one version forward. Loading applies the chain until the profile
// reaches CurrentProfileVersion.
var profileMigrations = map[int]func(*Profile){
	1: migrateProfileV1,
}

// migrateProfileV1 splits the retired BLACKSMITHING key into both
// WEAPONSMITH and ARMORSMITH with the same value, across skills, tool
// tiers and profession tool levels. Tool keys are tool names and never
// carried the profession, so they pass through untouched.
func migrateProfileV1(prof *Profile) {
	if lvl, ok := prof.Skills[LegacyProfessionBlacksmithing]; ok {
		delete(prof.Skills, LegacyProfessionBlacksmithing)
		prof.Skills[string(domain.ProfessionWeaponsmith)] = lvl
		prof.Skills[string(domain.ProfessionArmorsmith)] = lvl
	}
	if tier, ok := prof.ToolTiers[LegacyProfessionBlacksmithing]; ok {
		delete(prof.ToolTiers, LegacyProfessionBlacksmithing)
		prof.ToolTiers[string(domain.ProfessionWeaponsmith)] = tier
		prof.ToolTiers[string(domain.ProfessionArmorsmith)] = tier
	}
	if lvl, ok := prof.ProfessionToolLevels[LegacyProfessionBlacksmithing]; ok {
		delete(prof.ProfessionToolLevels, LegacyProfessionBlacksmithing)
		prof.ProfessionToolLevels[string(domain.ProfessionWeaponsmith)] = lvl
		prof.ProfessionToolLevels[string(domain.ProfessionArmorsmith)] = lvl
	}
}

// migrateProfile lifts a profile to the current version. A missing
// version field means version 1.
func migrateProfile(prof *Profile) error {
	if prof.Version == 0 {
		prof.Version = 1
	}
	if prof.Version > CurrentProfileVersion {
		return fmt.Errorf("%w: profile version %d, supported up to %d",
			domain.ErrUnsupportedVersion, prof.Version, CurrentProfileVersion)
	}
	for prof.Version < CurrentProfileVersion {
		migrate, ok := profileMigrations[prof.Version]
		if !ok {
			return fmt.Errorf("%w: no migration from profile version %d",
				domain.ErrUnsupportedVersion, prof.Version)
		}
		migrate(prof)
		prof.Version++
	}
	return nil
}

// ApplyProfile replaces the player's skills and tool state with a
// profile's contents. Older save formats are migrated first; unknown
// enum names are skipped with a warning; missing entries are filled
// with defaults. Storage is untouched, it has its own save file.
func (p *Player) ApplyProfile(ctx context.Context, prof Profile) error {
	if err := migrateProfile(&prof); err != nil {
		return err
	}

	log := logger.FromContext(ctx)

	p.skills = make(map[domain.Profession]int, len(prof.Skills))
	for key, lvl := range prof.Skills {
		profession, ok := domain.ParseProfession(key)
		if !ok {
			log.Warn("Unknown profession in profile, skipping", "key", key, "field", "skills")
			continue
		}
		p.skills[profession] = clampLevel(lvl)
	}

	p.tools = make(map[domain.Tool]int, len(prof.Tools))
	for key, lvl := range prof.Tools {
		tool, ok := domain.ParseTool(key)
		if !ok {
			log.Warn("Unknown tool in profile, skipping", "key", key, "field", "tools")
			continue
		}
		p.tools[tool] = clampLevel(lvl)
	}

	p.toolTiers = make(map[domain.Profession]string, len(prof.ToolTiers))
	for key, tier := range prof.ToolTiers {
		profession, ok := domain.ParseProfession(key)
		if !ok {
			log.Warn("Unknown profession in profile, skipping", "key", key, "field", "tool_types")
			continue
		}
		if tier == "" {
			tier = domain.DefaultToolTier
		}
		p.toolTiers[profession] = tier
	}

	p.professionToolLevels = make(map[domain.Profession]int, len(prof.ProfessionToolLevels))
	for key, lvl := range prof.ProfessionToolLevels {
		profession, ok := domain.ParseProfession(key)
		if !ok {
			log.Warn("Unknown profession in profile, skipping", "key", key, "field", "profession_tool_levels")
			continue
		}
		p.professionToolLevels[profession] = clampLevel(lvl)
	}

	p.fillDefaults()
	return nil
}
