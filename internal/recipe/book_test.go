package recipe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quinfall/companion/internal/domain"
)

func testRecipes() []domain.Recipe {
	return []domain.Recipe{
		{
			Name:       "Iron Dagger",
			Profession: domain.ProfessionWeaponsmith,
			Tier:       domain.TierApprentice,
			SkillLevel: 1,
			Tool:       domain.ToolForge,
			ToolLevel:  1,
			Materials:  map[string]int{"iron_ingot": 1},
		},
		{
			Name:       "Steel Longsword",
			Profession: domain.ProfessionWeaponsmith,
			Tier:       domain.TierJourneyman,
			SkillLevel: 12,
			Tool:       domain.ToolForge,
			ToolLevel:  2,
			Materials:  map[string]int{"steel_ingot": 3},
		},
		{
			Name:       "Mithril Greatsword",
			Profession: domain.ProfessionWeaponsmith,
			Tier:       domain.TierMaster,
			SkillLevel: 23,
			Tool:       domain.ToolForge,
			ToolLevel:  3,
			Materials:  map[string]int{"mithril_ingot": 4},
		},
		{
			Name:       "Bread",
			Profession: domain.ProfessionCooking,
			Tier:       domain.TierApprentice,
			SkillLevel: 1,
			Tool:       domain.ToolCookingStation,
			ToolLevel:  1,
			Materials:  map[string]int{"flour": 2},
		},
	}
}

func TestNew(t *testing.T) {
	t.Run("builds book from records", func(t *testing.T) {
		book, err := New(testRecipes())
		require.NoError(t, err)
		assert.Equal(t, 4, book.Len())
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		recipes := testRecipes()
		recipes = append(recipes, recipes[0])

		_, err := New(recipes)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDuplicateRecipe))
		assert.Contains(t, err.Error(), "Iron Dagger")
	})

	t.Run("empty book is allowed", func(t *testing.T) {
		book, err := New(nil)
		require.NoError(t, err)
		assert.Zero(t, book.Len())
		assert.Empty(t, book.All())
	})
}

func TestBook_Lookups(t *testing.T) {
	book, err := New(testRecipes())
	require.NoError(t, err)

	t.Run("ByName finds across professions", func(t *testing.T) {
		r, ok := book.ByName("Bread")
		require.True(t, ok)
		assert.Equal(t, domain.ProfessionCooking, r.Profession)

		_, ok = book.ByName("Nonexistent Recipe")
		assert.False(t, ok)
	})

	t.Run("ByProfession keeps load order", func(t *testing.T) {
		weapons := book.ByProfession(domain.ProfessionWeaponsmith)
		require.Len(t, weapons, 3)
		assert.Equal(t, "Iron Dagger", weapons[0].Name)
		assert.Equal(t, "Steel Longsword", weapons[1].Name)
		assert.Equal(t, "Mithril Greatsword", weapons[2].Name)
	})

	t.Run("ByProfession empty for recipe-less professions", func(t *testing.T) {
		assert.Empty(t, book.ByProfession(domain.ProfessionMining))
	})

	t.Run("All returns every recipe in load order", func(t *testing.T) {
		all := book.All()
		require.Len(t, all, 4)
		assert.Equal(t, "Iron Dagger", all[0].Name)
		assert.Equal(t, "Bread", all[3].Name)
	})

	t.Run("Professions sorted", func(t *testing.T) {
		professions := book.Professions()
		assert.Equal(t, []domain.Profession{domain.ProfessionCooking, domain.ProfessionWeaponsmith}, professions)
	})
}

func TestBook_Filters(t *testing.T) {
	book, err := New(testRecipes())
	require.NoError(t, err)

	t.Run("FilterBySkill includes the boundary", func(t *testing.T) {
		craftable := book.FilterBySkill(domain.ProfessionWeaponsmith, 12)
		require.Len(t, craftable, 2)
		assert.Equal(t, "Iron Dagger", craftable[0].Name)
		assert.Equal(t, "Steel Longsword", craftable[1].Name)
	})

	t.Run("FilterBySkill below every recipe", func(t *testing.T) {
		assert.Empty(t, book.FilterBySkill(domain.ProfessionWeaponsmith, 0))
	})

	t.Run("FilterByToolLevel includes the boundary", func(t *testing.T) {
		craftable := book.FilterByToolLevel(domain.ProfessionWeaponsmith, 2)
		require.Len(t, craftable, 2)
		assert.Equal(t, "Steel Longsword", craftable[1].Name)
	})

	t.Run("FilterByToolLevel above every recipe", func(t *testing.T) {
		craftable := book.FilterByToolLevel(domain.ProfessionWeaponsmith, 99)
		assert.Len(t, craftable, 3)
	})
}
