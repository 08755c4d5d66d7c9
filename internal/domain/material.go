package domain

// MaterialCategory groups catalog materials by what they are used for
type MaterialCategory string

const (
	CategoryOres             MaterialCategory = "ores"
	CategoryGems             MaterialCategory = "gems"
	CategoryHerbs            MaterialCategory = "herbs"
	CategoryWood             MaterialCategory = "wood"
	CategoryStone            MaterialCategory = "stone"
	CategoryCloth            MaterialCategory = "cloth"
	CategoryLeather          MaterialCategory = "leather"
	CategoryFoodIngredients  MaterialCategory = "food_ingredients"
	CategoryIngots           MaterialCategory = "ingots"
	CategoryRefinedGems      MaterialCategory = "refined_gems"
	CategoryProcessedHerbs   MaterialCategory = "processed_herbs"
	CategoryLumber           MaterialCategory = "lumber"
	CategoryRefinedStone     MaterialCategory = "refined_stone"
	CategoryFabric           MaterialCategory = "fabric"
	CategoryProcessedLeather MaterialCategory = "processed_leather"
	CategoryWeapons          MaterialCategory = "weapons"
	CategoryArmor            MaterialCategory = "armor"
	CategoryTools            MaterialCategory = "tools"
	CategoryConsumables      MaterialCategory = "consumables"
	CategoryAccessories      MaterialCategory = "accessories"
	CategoryQuestItems       MaterialCategory = "quest_items"
	CategoryRareMaterials    MaterialCategory = "rare_materials"
	CategoryMagicComponents  MaterialCategory = "magical_components"
)

// MaterialCategories lists every valid category in declaration order.
func MaterialCategories() []MaterialCategory {
	return []MaterialCategory{
		CategoryOres, CategoryGems, CategoryHerbs, CategoryWood,
		CategoryStone, CategoryCloth, CategoryLeather, CategoryFoodIngredients,
		CategoryIngots, CategoryRefinedGems, CategoryProcessedHerbs, CategoryLumber,
		CategoryRefinedStone, CategoryFabric, CategoryProcessedLeather, CategoryWeapons,
		CategoryArmor, CategoryTools, CategoryConsumables, CategoryAccessories,
		CategoryQuestItems, CategoryRareMaterials, CategoryMagicComponents,
	}
}

// IsValid reports whether the category is a known catalog category
func (c MaterialCategory) IsValid() bool {
	for _, known := range MaterialCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// MaterialRarity represents how hard a material is to obtain
type MaterialRarity string

const (
	RarityCommon    MaterialRarity = "common"
	RarityUncommon  MaterialRarity = "uncommon"
	RarityRare      MaterialRarity = "rare"
	RarityEpic      MaterialRarity = "epic"
	RarityLegendary MaterialRarity = "legendary"
	RarityMythic    MaterialRarity = "mythic"
)

// MaterialRarities lists every rarity from most to least common.
func MaterialRarities() []MaterialRarity {
	return []MaterialRarity{
		RarityCommon, RarityUncommon, RarityRare,
		RarityEpic, RarityLegendary, RarityMythic,
	}
}

// IsValid reports whether the rarity is a known rarity level
func (r MaterialRarity) IsValid() bool {
	for _, known := range MaterialRarities() {
		if r == known {
			return true
		}
	}
	return false
}

// Material is one entry of the static material catalog. Materials are
// immutable once loaded; identifiers are stable snake_case strings
// (e.g. "iron_ore") used as keys in container item maps and recipes.
type Material struct {
	ID          string           `json:"id"`
	DisplayName string           `json:"display_name,omitempty"`
	Category    MaterialCategory `json:"category"`
	Rarity      MaterialRarity   `json:"rarity"`
	Stackable   bool             `json:"stackable"`
	MaxStack    int              `json:"max_stack"`
	Weight      float64          `json:"weight"`
	BaseValue   int              `json:"base_value"`
	APIID       string           `json:"api_id,omitempty"`
	GameID      string           `json:"game_id,omitempty"`
}
