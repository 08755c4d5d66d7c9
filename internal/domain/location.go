package domain

// StorageKind classifies a storage location by its role in the game
type StorageKind string

const (
	KindInventory    StorageKind = "inventory"
	KindBank         StorageKind = "bank"
	KindCityStorage  StorageKind = "city_storage"
	KindHouseStorage StorageKind = "house_storage"
	KindGuildStorage StorageKind = "guild_storage"
	KindTempStorage  StorageKind = "temp_storage"
)

// StorageKinds lists every valid storage kind.
func StorageKinds() []StorageKind {
	return []StorageKind{
		KindInventory, KindBank, KindCityStorage,
		KindHouseStorage, KindGuildStorage, KindTempStorage,
	}
}

// IsValid reports whether the kind is a known storage kind
func (k StorageKind) IsValid() bool {
	for _, known := range StorageKinds() {
		if k == known {
			return true
		}
	}
	return false
}

// Location identifies one storage site in the game world. Values are
// stable strings used as keys in save files and API payloads.
type Location string

const (
	LocPlayerInventory Location = "player_inventory"

	// City banks
	LocMeadowBank      Location = "meadow_bank"
	LocKineallenBank   Location = "kineallen_bank"
	LocMreafallBank    Location = "mreafall_bank"
	LocReasyaBank      Location = "reasya_bank"
	LocHorusBank       Location = "horus_bank"
	LocCalmnarockBank  Location = "calmnarock_bank"
	LocLarcbostBank    Location = "larcbost_bank"
	LocNearonBank      Location = "nearon_bank"
	LocPabasBank       Location = "pabas_bank"
	LocRuneMoundBank   Location = "rune_mound_bank"
	LocShadowAtollBank Location = "shadow_atoll_bank"

	// City storages
	LocMeadowStorage      Location = "meadow_storage"
	LocKineallenStorage   Location = "kineallen_storage"
	LocMreafallStorage    Location = "mreafall_storage"
	LocReasyaStorage      Location = "reasya_storage"
	LocHorusStorage       Location = "horus_storage"
	LocCalmnarockStorage  Location = "calmnarock_storage"
	LocLarcbostStorage    Location = "larcbost_storage"
	LocNearonStorage      Location = "nearon_storage"
	LocPabasStorage       Location = "pabas_storage"
	LocRuneMoundStorage   Location = "rune_mound_storage"
	LocShadowAtollStorage Location = "shadow_atoll_storage"

	// Houses
	LocStarterCottageStorage Location = "starter_cottage_storage"
	LocMediumHouseStorage    Location = "medium_house_storage"
	LocLargeManorStorage     Location = "large_manor_storage"
	LocEstateStorage         Location = "estate_storage"

	// Guild
	LocGuildHallStorage Location = "guild_hall_storage"
	LocGuildWarehouse   Location = "guild_warehouse"

	// Declared in the game but not provisioned with a default container
	LocCaravanStorage      Location = "caravan_storage"
	LocShipStorage         Location = "ship_storage"
	LocTemporaryCamp       Location = "temporary_camp_storage"
	LocGuildTreasury       Location = "guild_treasury"
	LocCraftingStationTemp Location = "crafting_station_temp"
	LocMarketTemp          Location = "market_temp_storage"
	LocAuctionHouse        Location = "auction_house_storage"
)

// Locations lists every known location, provisioned or not, in a
// stable order suitable for deterministic iteration.
func Locations() []Location {
	return []Location{
		LocPlayerInventory,
		LocMeadowBank, LocKineallenBank, LocMreafallBank, LocReasyaBank,
		LocHorusBank, LocCalmnarockBank, LocLarcbostBank, LocNearonBank,
		LocPabasBank, LocRuneMoundBank, LocShadowAtollBank,
		LocMeadowStorage, LocKineallenStorage, LocMreafallStorage, LocReasyaStorage,
		LocHorusStorage, LocCalmnarockStorage, LocLarcbostStorage, LocNearonStorage,
		LocPabasStorage, LocRuneMoundStorage, LocShadowAtollStorage,
		LocStarterCottageStorage, LocMediumHouseStorage, LocLargeManorStorage, LocEstateStorage,
		LocGuildHallStorage, LocGuildWarehouse,
		LocCaravanStorage, LocShipStorage, LocTemporaryCamp, LocGuildTreasury,
		LocCraftingStationTemp, LocMarketTemp, LocAuctionHouse,
	}
}

// IsValid reports whether the location is a known game location
func (l Location) IsValid() bool {
	for _, known := range Locations() {
		if l == known {
			return true
		}
	}
	return false
}

// ParseLocation converts a raw string (save file, API payload) into a
// Location, reporting whether it named a known location.
func ParseLocation(s string) (Location, bool) {
	loc := Location(s)
	return loc, loc.IsValid()
}

// ParseStorageKind converts a raw string into a StorageKind, reporting
// whether it named a known kind.
func ParseStorageKind(s string) (StorageKind, bool) {
	kind := StorageKind(s)
	return kind, kind.IsValid()
}
