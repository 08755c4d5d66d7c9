package domain

import "strings"

// ProfessionCategory splits professions into the game's three tracks
type ProfessionCategory string

const (
	ProfessionCrafting       ProfessionCategory = "crafting"
	ProfessionGathering      ProfessionCategory = "gathering"
	ProfessionSpecialization ProfessionCategory = "specialization"
)

// Profession is one trainable skill line. Names are stable uppercase
// identifiers used as keys in profile save files.
type Profession string

const (
	// Crafting professions
	ProfessionAlchemy       Profession = "ALCHEMY"
	ProfessionCooking       Profession = "COOKING"
	ProfessionWeaponsmith   Profession = "WEAPONSMITH"
	ProfessionArmorsmith    Profession = "ARMORSMITH"
	ProfessionWoodworking   Profession = "WOODWORKING"
	ProfessionTailoring     Profession = "TAILORING"
	ProfessionJewelcrafting Profession = "JEWELCRAFTING"
	ProfessionEnchanting    Profession = "ENCHANTING"
	ProfessionInscription   Profession = "INSCRIPTION"

	// Gathering professions
	ProfessionMining       Profession = "MINING"
	ProfessionLumberjack   Profession = "LUMBERJACK"
	ProfessionHarvester    Profession = "HARVESTER"
	ProfessionFishing      Profession = "FISHING"
	ProfessionHunter       Profession = "HUNTER"
	ProfessionAnimalKeeper Profession = "ANIMAL_KEEPER"
	ProfessionBeekeeper    Profession = "BEEKEEPER"

	// Specializations
	ProfessionTrading        Profession = "TRADING"
	ProfessionShipbuilding   Profession = "SHIPBUILDING"
	ProfessionTreasureHunter Profession = "TREASURE_HUNTER"
	ProfessionWorker         Profession = "WORKER"
	ProfessionTraveler       Profession = "TRAVELER"
)

// Professions lists every profession grouped by category.
func Professions() []Profession {
	return []Profession{
		ProfessionAlchemy, ProfessionCooking, ProfessionWeaponsmith,
		ProfessionArmorsmith, ProfessionWoodworking, ProfessionTailoring,
		ProfessionJewelcrafting, ProfessionEnchanting, ProfessionInscription,
		ProfessionMining, ProfessionLumberjack, ProfessionHarvester,
		ProfessionFishing, ProfessionHunter, ProfessionAnimalKeeper,
		ProfessionBeekeeper,
		ProfessionTrading, ProfessionShipbuilding, ProfessionTreasureHunter,
		ProfessionWorker, ProfessionTraveler,
	}
}

// IsValid reports whether the profession is a known profession
func (p Profession) IsValid() bool {
	_, ok := professionCategories[p]
	return ok
}

// Category returns the profession's track (crafting, gathering,
// specialization). Unknown professions report crafting.
func (p Profession) Category() ProfessionCategory {
	if cat, ok := professionCategories[p]; ok {
		return cat
	}
	return ProfessionCrafting
}

var professionCategories = map[Profession]ProfessionCategory{
	ProfessionAlchemy:       ProfessionCrafting,
	ProfessionCooking:       ProfessionCrafting,
	ProfessionWeaponsmith:   ProfessionCrafting,
	ProfessionArmorsmith:    ProfessionCrafting,
	ProfessionWoodworking:   ProfessionCrafting,
	ProfessionTailoring:     ProfessionCrafting,
	ProfessionJewelcrafting: ProfessionCrafting,
	ProfessionEnchanting:    ProfessionCrafting,
	ProfessionInscription:   ProfessionCrafting,

	ProfessionMining:       ProfessionGathering,
	ProfessionLumberjack:   ProfessionGathering,
	ProfessionHarvester:    ProfessionGathering,
	ProfessionFishing:      ProfessionGathering,
	ProfessionHunter:       ProfessionGathering,
	ProfessionAnimalKeeper: ProfessionGathering,
	ProfessionBeekeeper:    ProfessionGathering,

	ProfessionTrading:        ProfessionSpecialization,
	ProfessionShipbuilding:   ProfessionSpecialization,
	ProfessionTreasureHunter: ProfessionSpecialization,
	ProfessionWorker:         ProfessionSpecialization,
	ProfessionTraveler:       ProfessionSpecialization,
}

// ParseProfession converts a raw save-file key into a Profession,
// reporting whether it named a known profession.
func ParseProfession(s string) (Profession, bool) {
	p := Profession(s)
	return p, p.IsValid()
}

// ProfessionTier is the mastery band a skill level falls into
type ProfessionTier string

const (
	TierApprentice ProfessionTier = "apprentice"
	TierJourneyman ProfessionTier = "journeyman"
	TierMaster     ProfessionTier = "master"
)

// Tier band boundaries: apprentice 1-10, journeyman 11-20, master 21+
const (
	TierJourneymanMinLevel = 11
	TierMasterMinLevel     = 21
)

// TierForSkillLevel maps a skill level onto its mastery band.
func TierForSkillLevel(level int) ProfessionTier {
	switch {
	case level >= TierMasterMinLevel:
		return TierMaster
	case level >= TierJourneymanMinLevel:
		return TierJourneyman
	default:
		return TierApprentice
	}
}

// ParseProfessionTier converts a raw tier string into a ProfessionTier.
// Accepts the lowercase form and the uppercase form used by older
// resource files ("APPRENTICE").
func ParseProfessionTier(s string) (ProfessionTier, bool) {
	switch ProfessionTier(strings.ToLower(s)) {
	case TierApprentice:
		return TierApprentice, true
	case TierJourneyman:
		return TierJourneyman, true
	case TierMaster:
		return TierMaster, true
	}
	return "", false
}

// Tool is a crafting or gathering implement. Values are the game's
// display names, matching the original save format.
type Tool string

const (
	ToolForge           Tool = "Forge"
	ToolAnvil           Tool = "Anvil"
	ToolAlchemyTable    Tool = "Alchemy Table"
	ToolCookingStation  Tool = "Cooking Station"
	ToolWorkbench       Tool = "Workbench"
	ToolJewelingTable   Tool = "Jeweling Table"
	ToolEnchantingTable Tool = "Enchanting Table"
	ToolShipyard        Tool = "Shipyard"
	ToolDock            Tool = "Dock"
	ToolLoom            Tool = "Loom"
	ToolPickaxe         Tool = "Pickaxe"
	ToolAxe             Tool = "Axe"
	ToolSickle          Tool = "Sickle"
	ToolFishingRod      Tool = "Fishing Rod"
	ToolHuntingBow      Tool = "Hunting Bow"
	ToolAnimalTools     Tool = "Animal Tools"
	ToolBeekeepingTools Tool = "Beekeeping Tools"
	ToolTradingCart     Tool = "Trading Cart"
	ToolTreasureMap     Tool = "Treasure Map"
	ToolWorkTools       Tool = "Work Tools"
	ToolTravelGear      Tool = "Travel Gear"
)

// Tools lists every tool in the same order as Professions.
func Tools() []Tool {
	return []Tool{
		ToolAlchemyTable, ToolCookingStation, ToolForge, ToolAnvil,
		ToolWorkbench, ToolLoom, ToolJewelingTable, ToolEnchantingTable, ToolDock,
		ToolPickaxe, ToolAxe, ToolSickle, ToolFishingRod, ToolHuntingBow,
		ToolAnimalTools, ToolBeekeepingTools,
		ToolTradingCart, ToolShipyard, ToolTreasureMap, ToolWorkTools, ToolTravelGear,
	}
}

// IsValid reports whether the tool is a known tool
func (t Tool) IsValid() bool {
	for _, known := range Tools() {
		if t == known {
			return true
		}
	}
	return false
}

var professionTools = map[Profession]Tool{
	ProfessionAlchemy:       ToolAlchemyTable,
	ProfessionCooking:       ToolCookingStation,
	ProfessionWeaponsmith:   ToolForge,
	ProfessionArmorsmith:    ToolAnvil,
	ProfessionWoodworking:   ToolWorkbench,
	ProfessionTailoring:     ToolLoom,
	ProfessionJewelcrafting: ToolJewelingTable,
	ProfessionEnchanting:    ToolEnchantingTable,
	ProfessionInscription:   ToolWorkbench,

	ProfessionMining:       ToolPickaxe,
	ProfessionLumberjack:   ToolAxe,
	ProfessionHarvester:    ToolSickle,
	ProfessionFishing:      ToolFishingRod,
	ProfessionHunter:       ToolHuntingBow,
	ProfessionAnimalKeeper: ToolAnimalTools,
	ProfessionBeekeeper:    ToolBeekeepingTools,

	ProfessionTrading:        ToolTradingCart,
	ProfessionShipbuilding:   ToolShipyard,
	ProfessionTreasureHunter: ToolTreasureMap,
	ProfessionWorker:         ToolWorkTools,
	ProfessionTraveler:       ToolTravelGear,
}

// PrimaryTool returns the tool a profession crafts or gathers with.
// Professions without a dedicated station fall back to the workbench.
func (p Profession) PrimaryTool() Tool {
	if tool, ok := professionTools[p]; ok {
		return tool
	}
	return ToolWorkbench
}

// ParseTool converts a raw save-file key into a Tool. Keys may be the
// display value ("Fishing Rod") or the uppercase underscore form used
// by older save files ("FISHING_ROD").
func ParseTool(s string) (Tool, bool) {
	if t := Tool(s); t.IsValid() {
		return t, true
	}
	if t, ok := legacyToolNames[s]; ok {
		return t, true
	}
	return "", false
}

var legacyToolNames = map[string]Tool{
	"FORGE":            ToolForge,
	"ANVIL":            ToolAnvil,
	"ALCHEMY_TABLE":    ToolAlchemyTable,
	"COOKING_STATION":  ToolCookingStation,
	"WORKBENCH":        ToolWorkbench,
	"JEWELING_TABLE":   ToolJewelingTable,
	"ENCHANTING_TABLE": ToolEnchantingTable,
	"SHIPYARD":         ToolShipyard,
	"DOCK":             ToolDock,
	"LOOM":             ToolLoom,
	"PICKAXE":          ToolPickaxe,
	"AXE":              ToolAxe,
	"SICKLE":           ToolSickle,
	"FISHING_ROD":      ToolFishingRod,
	"HUNTING_BOW":      ToolHuntingBow,
	"ANIMAL_TOOLS":     ToolAnimalTools,
	"BEEKEEPING_TOOLS": ToolBeekeepingTools,
	"TRADING_CART":     ToolTradingCart,
	"TREASURE_MAP":     ToolTreasureMap,
	"WORK_TOOLS":       ToolWorkTools,
	"TRAVEL_GEAR":      ToolTravelGear,
}
