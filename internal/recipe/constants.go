package recipe

// ==================== Resource Names ====================

// Embedded recipe resource names. Each crafting profession ships its
// own file; legacy names are looked up but not shipped.
const (
	SchemaResource = "data/recipes.schema.json"

	AlchemyResource      = "data/recipes_alchemy.json"
	CookingResource      = "data/recipes_cooking.json"
	WeaponsmithResource  = "data/recipes_weaponsmith.json"
	ArmorsmithResource   = "data/recipes_armorsmith.json"
	WoodworkingResource  = "data/recipes_woodworking.json"
	TailoringResource    = "data/recipes_tailoring.json"
	ShipbuildingResource = "data/recipes_shipbuilding.json"

	// LegacyBlacksmithingResource predates the profession rework that
	// split blacksmithing into weaponsmith and armorsmith. Not shipped,
	// but still honored when present so older data dirs keep loading.
	LegacyBlacksmithingResource = "data/recipes_blacksmithing.json"
)

// Legacy profession keys accepted by the loader. Tailoring kept its
// name through the rework, so only blacksmithing needs remapping.
const (
	LegacyProfessionBlacksmithing = "BLACKSMITHING"
)

// ==================== Defaults ====================

// Requirement defaults applied when a record omits the field
const (
	DefaultSkillLevel = 1
	DefaultToolLevel  = 1
)

// ==================== Snapshot ====================

const (
	// SnapshotVersion is the current recipe snapshot file format version
	SnapshotVersion = 1

	// SnapshotFileName is the default snapshot file name under the saves dir
	SnapshotFileName = "recipes_snapshot.json"
)

// ==================== Error Messages ====================

// Validation error fragments used with error wrapping
const (
	ErrMsgNoRecipesDefined = "no recipes defined"
	ErrMsgMissingName      = "record has neither recipe_name nor name"
)

// Format strings used with fmt.Errorf for detailed error messages
const (
	ErrFmtUnknownProfession  = "%w: recipe '%s' has unknown profession '%s'"
	ErrFmtUnknownTier        = "%w: recipe '%s' has unknown tier '%s'"
	ErrFmtUnknownTool        = "%w: recipe '%s' has unknown required_tool '%s'"
	ErrFmtUnknownMaterial    = "%w: recipe '%s' uses unknown material '%s'"
	ErrFmtBadQuantity        = "%w: recipe '%s' has non-positive quantity for '%s'"
	ErrFmtBadSkillLevel      = "%w: recipe '%s' has negative skill_level"
	ErrFmtBadToolLevel       = "%w: recipe '%s' has negative tool_level"
	ErrFmtNoMaterials        = "%w: recipe '%s' has no materials"
	ErrFmtDuplicateName      = "%w: '%s'"
	ErrFmtSnapshotVersion    = "%w: recipe snapshot version %d"
	ErrFmtReadResourceFailed = "failed to read recipe resource %s: %w"
)

// ==================== Diff Requirement Keys ====================

// Keys used in RecipeDiff requirement maps
const (
	ReqKeyProfession = "profession"
	ReqKeySkillLevel = "skill_level"
	ReqKeyToolLevel  = "tool_level"
	ReqKeyTool       = "required_tool"
)
