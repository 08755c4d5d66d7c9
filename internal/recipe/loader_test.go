package recipe

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quinfall/companion/internal/catalog"
	"github.com/quinfall/companion/internal/domain"
)

func mustCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return cat
}

func TestLoad_EmbeddedResources(t *testing.T) {
	cat := mustCatalog(t)

	book, err := Load(cat)
	require.NoError(t, err)
	require.NotZero(t, book.Len())

	t.Run("loads every crafting profession", func(t *testing.T) {
		expected := []domain.Profession{
			domain.ProfessionAlchemy,
			domain.ProfessionCooking,
			domain.ProfessionWeaponsmith,
			domain.ProfessionArmorsmith,
			domain.ProfessionWoodworking,
			domain.ProfessionTailoring,
			domain.ProfessionShipbuilding,
		}
		for _, p := range expected {
			assert.NotEmpty(t, book.ByProfession(p), "no recipes for %s", p)
		}
	})

	t.Run("maps record fields explicitly", func(t *testing.T) {
		r, ok := book.ByName("Iron Sword")
		require.True(t, ok)

		assert.Equal(t, domain.ProfessionWeaponsmith, r.Profession)
		assert.Equal(t, domain.TierApprentice, r.Tier)
		assert.Equal(t, 3, r.SkillLevel)
		assert.Equal(t, domain.ToolForge, r.Tool)
		assert.Equal(t, 1, r.ToolLevel)
		assert.Equal(t, 2, r.MaterialQuantity("iron_ingot"))
		assert.Equal(t, 1, r.MaterialQuantity("oak_plank"))
	})

	t.Run("derives tier from skill level", func(t *testing.T) {
		galley, ok := book.ByName("War Galley")
		require.True(t, ok)
		assert.Equal(t, domain.TierMaster, galley.Tier)
		assert.Equal(t, domain.ToolShipyard, galley.Tool)

		longsword, ok := book.ByName("Steel Longsword")
		require.True(t, ok)
		assert.Equal(t, domain.TierJourneyman, longsword.Tier)
	})

	t.Run("defaults tool from profession", func(t *testing.T) {
		robe, ok := book.ByName("Silk Robe")
		require.True(t, ok)
		assert.Equal(t, domain.ToolLoom, robe.Tool)

		stew, ok := book.ByName("Meat Stew")
		require.True(t, ok)
		assert.Equal(t, domain.ToolCookingStation, stew.Tool)
	})

	t.Run("every material is in the catalog", func(t *testing.T) {
		for _, r := range book.All() {
			for id := range r.Materials {
				assert.True(t, cat.Contains(id), "recipe %q uses unknown material %q", r.Name, id)
			}
		}
	})
}

func TestLoadFS_LegacyBlacksmithing(t *testing.T) {
	cat := mustCatalog(t)

	fsys := fstest.MapFS{
		"data/recipes_blacksmithing.json": &fstest.MapFile{Data: []byte(`{
			"version": "0.9.0",
			"description": "Pre-rework smithing recipes",
			"recipes": [
				{"recipe_name": "Rusty Sword", "skill_level": 1, "materials": {"iron_ingot": 1}},
				{"recipe_name": "Miner's Pickaxe", "skill_level": 4, "materials": {"iron_ingot": 2, "oak_plank": 1}},
				{"recipe_name": "Hunting Dagger", "materials": {"bronze_ingot": 1}},
				{"recipe_name": "Iron Cuirass", "skill_level": 6, "materials": {"iron_ingot": 4}},
				{"name": "Chainmail Coif", "skill_level": 12, "materials": {"iron_ingot": 3}}
			]
		}`)},
	}

	book, err := LoadFS(fsys, cat)
	require.NoError(t, err)
	require.Equal(t, 5, book.Len())

	t.Run("weapon keywords route to weaponsmith", func(t *testing.T) {
		for _, name := range []string{"Rusty Sword", "Miner's Pickaxe", "Hunting Dagger"} {
			r, ok := book.ByName(name)
			require.True(t, ok, name)
			assert.Equal(t, domain.ProfessionWeaponsmith, r.Profession, name)
			assert.Equal(t, domain.ToolForge, r.Tool, name)
		}
	})

	t.Run("everything else routes to armorsmith", func(t *testing.T) {
		for _, name := range []string{"Iron Cuirass", "Chainmail Coif"} {
			r, ok := book.ByName(name)
			require.True(t, ok, name)
			assert.Equal(t, domain.ProfessionArmorsmith, r.Profession, name)
			assert.Equal(t, domain.ToolAnvil, r.Tool, name)
		}
	})

	t.Run("name key works like recipe_name", func(t *testing.T) {
		_, ok := book.ByName("Chainmail Coif")
		assert.True(t, ok)
	})

	t.Run("omitted levels default to one", func(t *testing.T) {
		r, ok := book.ByName("Hunting Dagger")
		require.True(t, ok)
		assert.Equal(t, 1, r.SkillLevel)
		assert.Equal(t, 1, r.ToolLevel)
		assert.Equal(t, domain.TierApprentice, r.Tier)
	})
}

func TestLoadFS_RecordOverrides(t *testing.T) {
	cat := mustCatalog(t)

	fsys := fstest.MapFS{
		"data/recipes_alchemy.json": &fstest.MapFile{Data: []byte(`{
			"version": "1.0.0",
			"recipes": [
				{
					"recipe_name": "Field Salve",
					"tier": "JOURNEYMAN",
					"skill_level": 3,
					"required_tool": "COOKING_STATION",
					"tool_level": 2,
					"materials": {"white_herb": 2, "distilled_water": 1}
				}
			]
		}`)},
	}

	book, err := LoadFS(fsys, cat)
	require.NoError(t, err)

	r, ok := book.ByName("Field Salve")
	require.True(t, ok)

	// Explicit tier and tool win over the derived defaults; legacy
	// uppercase forms are accepted.
	assert.Equal(t, domain.TierJourneyman, r.Tier)
	assert.Equal(t, domain.ToolCookingStation, r.Tool)
	assert.Equal(t, 2, r.ToolLevel)
}

func TestLoadFS_Validation(t *testing.T) {
	cat := mustCatalog(t)

	t.Run("unknown material rejected", func(t *testing.T) {
		fsys := fstest.MapFS{
			"data/recipes_cooking.json": &fstest.MapFile{Data: []byte(`{
				"version": "1.0.0",
				"recipes": [
					{"recipe_name": "Mystery Soup", "materials": {"dream_dust": 1}}
				]
			}`)},
		}

		_, err := LoadFS(fsys, cat)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnknownMaterial))
		assert.Contains(t, err.Error(), "dream_dust")
	})

	t.Run("non-positive quantity rejected by schema", func(t *testing.T) {
		fsys := fstest.MapFS{
			"data/recipes_cooking.json": &fstest.MapFile{Data: []byte(`{
				"version": "1.0.0",
				"recipes": [
					{"recipe_name": "Free Lunch", "materials": {"flour": 0}}
				]
			}`)},
		}

		_, err := LoadFS(fsys, cat)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})

	t.Run("unknown tier rejected", func(t *testing.T) {
		fsys := fstest.MapFS{
			"data/recipes_cooking.json": &fstest.MapFile{Data: []byte(`{
				"version": "1.0.0",
				"recipes": [
					{"recipe_name": "Burnt Toast", "tier": "grandmaster", "materials": {"flour": 1}}
				]
			}`)},
		}

		_, err := LoadFS(fsys, cat)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfig))
		assert.Contains(t, err.Error(), "grandmaster")
	})

	t.Run("unknown tool rejected", func(t *testing.T) {
		fsys := fstest.MapFS{
			"data/recipes_cooking.json": &fstest.MapFile{Data: []byte(`{
				"version": "1.0.0",
				"recipes": [
					{"recipe_name": "Odd Dish", "required_tool": "Microwave", "materials": {"flour": 1}}
				]
			}`)},
		}

		_, err := LoadFS(fsys, cat)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfig))
		assert.Contains(t, err.Error(), "Microwave")
	})

	t.Run("duplicate recipe name rejected", func(t *testing.T) {
		fsys := fstest.MapFS{
			"data/recipes_cooking.json": &fstest.MapFile{Data: []byte(`{
				"version": "1.0.0",
				"recipes": [
					{"recipe_name": "Bread", "materials": {"flour": 2}},
					{"recipe_name": "Bread", "materials": {"flour": 3}}
				]
			}`)},
		}

		_, err := LoadFS(fsys, cat)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDuplicateRecipe))
	})

	t.Run("malformed JSON rejected", func(t *testing.T) {
		fsys := fstest.MapFS{
			"data/recipes_cooking.json": &fstest.MapFile{Data: []byte(`{not json`)},
		}

		_, err := LoadFS(fsys, cat)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})

	t.Run("empty filesystem yields no recipes", func(t *testing.T) {
		_, err := LoadFS(fstest.MapFS{}, cat)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfig))
		assert.Contains(t, err.Error(), ErrMsgNoRecipesDefined)
	})
}

func TestBuildRecipe_SemanticChecks(t *testing.T) {
	cat := mustCatalog(t)

	t.Run("missing name", func(t *testing.T) {
		_, err := buildRecipe(Record{Materials: map[string]int{"flour": 1}}, string(domain.ProfessionCooking), cat)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgMissingName)
	})

	t.Run("unknown profession key", func(t *testing.T) {
		_, err := buildRecipe(Record{RecipeName: "Thing", Materials: map[string]int{"flour": 1}}, "GOLDSMITHING", cat)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfig))
		assert.Contains(t, err.Error(), "GOLDSMITHING")
	})

	t.Run("negative skill level", func(t *testing.T) {
		rec := Record{RecipeName: "Thing", SkillLevel: -1, Materials: map[string]int{"flour": 1}}
		_, err := buildRecipe(rec, string(domain.ProfessionCooking), cat)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "skill_level")
	})

	t.Run("negative tool level", func(t *testing.T) {
		rec := Record{RecipeName: "Thing", ToolLevel: -2, Materials: map[string]int{"flour": 1}}
		_, err := buildRecipe(rec, string(domain.ProfessionCooking), cat)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tool_level")
	})

	t.Run("no materials", func(t *testing.T) {
		_, err := buildRecipe(Record{RecipeName: "Thing"}, string(domain.ProfessionCooking), cat)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no materials")
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		rec := Record{RecipeName: "Thing", Materials: map[string]int{"flour": -3}}
		_, err := buildRecipe(rec, string(domain.ProfessionCooking), cat)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "non-positive quantity")
	})
}
