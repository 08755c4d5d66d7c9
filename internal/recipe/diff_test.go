package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quinfall/companion/internal/domain"
)

func baseRecipe() domain.Recipe {
	return domain.Recipe{
		Name:       "Steel Longsword",
		Profession: domain.ProfessionWeaponsmith,
		Tier:       domain.TierJourneyman,
		SkillLevel: 12,
		Tool:       domain.ToolForge,
		ToolLevel:  2,
		Materials:  map[string]int{"steel_ingot": 3, "cured_leather": 1},
	}
}

func TestDiff(t *testing.T) {
	t.Run("identical sets report nothing", func(t *testing.T) {
		old := []domain.Recipe{baseRecipe()}
		updated := []domain.Recipe{baseRecipe()}

		assert.Empty(t, Diff(old, updated))
	})

	t.Run("quantity change", func(t *testing.T) {
		old := []domain.Recipe{baseRecipe()}
		changed := baseRecipe()
		changed.Materials = map[string]int{"steel_ingot": 5, "cured_leather": 1}

		diffs := Diff(old, []domain.Recipe{changed})
		require.Len(t, diffs, 1)
		assert.Equal(t, "Steel Longsword", diffs[0].Name)

		change, ok := diffs[0].Materials["steel_ingot"]
		require.True(t, ok)
		assert.Equal(t, domain.ChangeUpdated, change.Action)
		assert.Equal(t, 3, change.Old)
		assert.Equal(t, 5, change.New)
		assert.Empty(t, diffs[0].Requirements)
	})

	t.Run("material added and removed", func(t *testing.T) {
		old := []domain.Recipe{baseRecipe()}
		changed := baseRecipe()
		changed.Materials = map[string]int{"steel_ingot": 3, "oak_plank": 2}

		diffs := Diff(old, []domain.Recipe{changed})
		require.Len(t, diffs, 1)

		added, ok := diffs[0].Materials["oak_plank"]
		require.True(t, ok)
		assert.Equal(t, domain.ChangeAdded, added.Action)
		assert.Equal(t, 2, added.New)

		removed, ok := diffs[0].Materials["cured_leather"]
		require.True(t, ok)
		assert.Equal(t, domain.ChangeRemoved, removed.Action)
		assert.Equal(t, 1, removed.Old)
	})

	t.Run("requirement changes", func(t *testing.T) {
		old := []domain.Recipe{baseRecipe()}
		changed := baseRecipe()
		changed.SkillLevel = 15
		changed.ToolLevel = 3
		changed.Tool = domain.ToolAnvil
		changed.Profession = domain.ProfessionArmorsmith

		diffs := Diff(old, []domain.Recipe{changed})
		require.Len(t, diffs, 1)
		require.Len(t, diffs[0].Requirements, 4)

		skill := diffs[0].Requirements[ReqKeySkillLevel]
		assert.Equal(t, domain.ChangeModified, skill.Action)
		assert.Equal(t, "12", skill.Old)
		assert.Equal(t, "15", skill.New)

		tool := diffs[0].Requirements[ReqKeyTool]
		assert.Equal(t, string(domain.ToolForge), tool.Old)
		assert.Equal(t, string(domain.ToolAnvil), tool.New)

		profession := diffs[0].Requirements[ReqKeyProfession]
		assert.Equal(t, string(domain.ProfessionWeaponsmith), profession.Old)
		assert.Equal(t, string(domain.ProfessionArmorsmith), profession.New)
	})

	t.Run("recipe added wholesale", func(t *testing.T) {
		newcomer := domain.Recipe{
			Name:       "Iron Dagger",
			Profession: domain.ProfessionWeaponsmith,
			SkillLevel: 1,
			Materials:  map[string]int{"iron_ingot": 1, "raw_leather": 1},
		}

		diffs := Diff([]domain.Recipe{baseRecipe()}, []domain.Recipe{baseRecipe(), newcomer})
		require.Len(t, diffs, 1)
		assert.Equal(t, "Iron Dagger", diffs[0].Name)
		assert.Len(t, diffs[0].Materials, 2)
		for id, change := range diffs[0].Materials {
			assert.Equal(t, domain.ChangeAdded, change.Action, id)
		}
		assert.Empty(t, diffs[0].Requirements)
	})

	t.Run("recipe removed wholesale", func(t *testing.T) {
		diffs := Diff([]domain.Recipe{baseRecipe()}, nil)
		require.Len(t, diffs, 1)
		assert.Equal(t, "Steel Longsword", diffs[0].Name)
		for id, change := range diffs[0].Materials {
			assert.Equal(t, domain.ChangeRemoved, change.Action, id)
		}
	})

	t.Run("tier change alone is not reported", func(t *testing.T) {
		// Tier derives from skill level, so diffing it would double
		// count every skill change.
		changed := baseRecipe()
		changed.Tier = domain.TierMaster

		assert.Empty(t, Diff([]domain.Recipe{baseRecipe()}, []domain.Recipe{changed}))
	})
}
