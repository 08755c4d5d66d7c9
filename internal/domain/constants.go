package domain

// DefaultPlayerID is the profile used when no player id is configured.
// The companion tracks a single local player; the id exists so save
// files and API payloads stay compatible with multi-profile tooling.
const DefaultPlayerID = "default"

// Save file names under the saves directory
const (
	PlayerSaveFile      = "player.json"
	CredentialsSaveFile = "api_credentials.json"
)

// StorageSaveFile returns the storage save file name for a player.
func StorageSaveFile(playerID string) string {
	return "storage_" + playerID + ".json"
}

// Well-known material identifiers referenced by code and tests.
// The full catalog lives in the embedded materials resource.
const (
	MaterialIronOre   = "iron_ore"
	MaterialIronIngot = "iron_ingot"
	MaterialCopperOre = "copper_ore"
	MaterialOakLog    = "oak_log"
	MaterialStone     = "stone"
)

// Default levels for a fresh profile
const (
	DefaultSkillLevel = 1
	DefaultToolLevel  = 1
	DefaultToolTier   = "Basic"
)

// Fresh-start storage seeding values (used when no save exists)
const (
	FreshStartInventoryValue = 0
	FreshStartStorageValue   = 1000
)
