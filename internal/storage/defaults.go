package storage

import "github.com/quinfall/companion/internal/domain"

// containerSpec is one row of the hand-authored container defaults
// table. Values mirror the game client's storage sizes.
type containerSpec struct {
	kind        domain.StorageKind
	capacity    int
	maxSlots    int
	unlocked    int
	weightLimit float64
}

// defaultContainerSpecs returns the provisioning table for a fresh
// storage system. Locations absent from the table (caravan, ship,
// market temp and the like) exist in the game but get no container
// until the game API reports one.
func defaultContainerSpecs() map[domain.Location]containerSpec {
	specs := map[domain.Location]containerSpec{
		domain.LocPlayerInventory: {domain.KindInventory, 200, 500, 200, 5000},

		// Major cities
		domain.LocMeadowBank:       {domain.KindBank, 200, 1000, 200, 50000},
		domain.LocKineallenBank:    {domain.KindBank, 200, 1000, 200, 50000},
		domain.LocMreafallBank:     {domain.KindBank, 200, 1000, 200, 50000},
		domain.LocMeadowStorage:    {domain.KindCityStorage, 200, 800, 200, 40000},
		domain.LocKineallenStorage: {domain.KindCityStorage, 200, 800, 200, 40000},
		domain.LocMreafallStorage:  {domain.KindCityStorage, 200, 800, 200, 40000},

		// Mid-tier cities
		domain.LocReasyaBank:    {domain.KindBank, 200, 900, 200, 45000},
		domain.LocHorusBank:     {domain.KindBank, 200, 900, 200, 45000},
		domain.LocReasyaStorage: {domain.KindCityStorage, 200, 700, 200, 35000},
		domain.LocHorusStorage:  {domain.KindCityStorage, 200, 700, 200, 35000},

		domain.LocCalmnarockBank:    {domain.KindBank, 200, 800, 200, 40000},
		domain.LocLarcbostBank:      {domain.KindBank, 200, 800, 200, 40000},
		domain.LocCalmnarockStorage: {domain.KindCityStorage, 200, 600, 200, 30000},
		domain.LocLarcbostStorage:   {domain.KindCityStorage, 200, 600, 200, 30000},

		// Smaller cities
		domain.LocNearonBank:    {domain.KindBank, 200, 700, 200, 35000},
		domain.LocPabasBank:     {domain.KindBank, 200, 700, 200, 35000},
		domain.LocNearonStorage: {domain.KindCityStorage, 200, 500, 200, 25000},
		domain.LocPabasStorage:  {domain.KindCityStorage, 200, 500, 200, 25000},

		domain.LocRuneMoundBank:      {domain.KindBank, 200, 600, 200, 30000},
		domain.LocShadowAtollBank:    {domain.KindBank, 200, 600, 200, 30000},
		domain.LocRuneMoundStorage:   {domain.KindCityStorage, 200, 400, 200, 20000},
		domain.LocShadowAtollStorage: {domain.KindCityStorage, 200, 400, 200, 20000},

		// Houses
		domain.LocStarterCottageStorage: {domain.KindHouseStorage, 200, 400, 200, 15000},
		domain.LocMediumHouseStorage:    {domain.KindHouseStorage, 200, 600, 200, 25000},
		domain.LocLargeManorStorage:     {domain.KindHouseStorage, 200, 800, 200, 35000},
		domain.LocEstateStorage:         {domain.KindHouseStorage, 200, 1000, 200, 45000},

		// Guild
		domain.LocGuildHallStorage: {domain.KindGuildStorage, 200, 1200, 200, 60000},
		domain.LocGuildWarehouse:   {domain.KindGuildStorage, 200, 1500, 200, 75000},
	}
	return specs
}

// CraftingStorageOrder is the fixed deduction priority crafting uses
// after the player inventory is exhausted.
var CraftingStorageOrder = []domain.Location{
	domain.LocMeadowBank,
	domain.LocMeadowStorage,
	domain.LocStarterCottageStorage,
}
