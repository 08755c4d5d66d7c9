package recipe

import (
	"strconv"

	"github.com/quinfall/companion/internal/domain"
)

// Diff compares two recipe sets by name and reports every difference.
// Recipes present in only one set appear with all materials marked
// added or removed; recipes present in both get per-material changes
// plus requirement changes (profession, skill level, tool, tool
// level). An empty result means the sets are equivalent.
func Diff(old, updated []domain.Recipe) []domain.RecipeDiff {
	oldByName := make(map[string]domain.Recipe, len(old))
	for _, r := range old {
		oldByName[r.Name] = r
	}

	var diffs []domain.RecipeDiff
	seen := make(map[string]bool, len(updated))

	for _, newer := range updated {
		seen[newer.Name] = true
		older, existed := oldByName[newer.Name]
		if !existed {
			diffs = appendDiff(diffs, domain.RecipeDiff{
				Name:      newer.Name,
				Materials: compareMaterials(nil, newer.Materials),
			})
			continue
		}
		diffs = appendDiff(diffs, domain.RecipeDiff{
			Name:         newer.Name,
			Materials:    compareMaterials(older.Materials, newer.Materials),
			Requirements: compareRequirements(older, newer),
		})
	}

	for _, older := range old {
		if seen[older.Name] {
			continue
		}
		diffs = appendDiff(diffs, domain.RecipeDiff{
			Name:      older.Name,
			Materials: compareMaterials(older.Materials, nil),
		})
	}

	return diffs
}

func appendDiff(diffs []domain.RecipeDiff, d domain.RecipeDiff) []domain.RecipeDiff {
	if !d.HasChanges() {
		return diffs
	}
	return append(diffs, d)
}

// compareMaterials diffs two material maps. Nil maps compare as empty.
func compareMaterials(old, updated map[string]int) map[string]domain.MaterialChange {
	changes := make(map[string]domain.MaterialChange)

	for id, qty := range updated {
		oldQty, existed := old[id]
		switch {
		case !existed:
			changes[id] = domain.MaterialChange{Action: domain.ChangeAdded, New: qty}
		case oldQty != qty:
			changes[id] = domain.MaterialChange{Action: domain.ChangeUpdated, Old: oldQty, New: qty}
		}
	}

	for id, qty := range old {
		if _, still := updated[id]; !still {
			changes[id] = domain.MaterialChange{Action: domain.ChangeRemoved, Old: qty}
		}
	}

	if len(changes) == 0 {
		return nil
	}
	return changes
}

// compareRequirements diffs the requirement fields of two versions of
// the same recipe.
func compareRequirements(old, updated domain.Recipe) map[string]domain.RequirementChange {
	changes := make(map[string]domain.RequirementChange)

	if old.Profession != updated.Profession {
		changes[ReqKeyProfession] = requirementChange(string(old.Profession), string(updated.Profession))
	}
	if old.SkillLevel != updated.SkillLevel {
		changes[ReqKeySkillLevel] = requirementChange(strconv.Itoa(old.SkillLevel), strconv.Itoa(updated.SkillLevel))
	}
	if old.Tool != updated.Tool {
		changes[ReqKeyTool] = requirementChange(string(old.Tool), string(updated.Tool))
	}
	if old.ToolLevel != updated.ToolLevel {
		changes[ReqKeyToolLevel] = requirementChange(strconv.Itoa(old.ToolLevel), strconv.Itoa(updated.ToolLevel))
	}

	if len(changes) == 0 {
		return nil
	}
	return changes
}

func requirementChange(old, updated string) domain.RequirementChange {
	return domain.RequirementChange{Action: domain.ChangeModified, Old: old, New: updated}
}
