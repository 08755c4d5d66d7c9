package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/quinfall/companion/internal/catalog"
	"github.com/quinfall/companion/internal/config"
	"github.com/quinfall/companion/internal/domain"
	"github.com/quinfall/companion/internal/ledger"
	"github.com/quinfall/companion/internal/player"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default/environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	cat, err := catalog.Load()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	// Dump Profile
	fmt.Println("--- Profile ---")
	p, err := player.LoadOrCreate(ctx, cfg.SavesDir, domain.DefaultPlayerID, cat)
	if err != nil {
		log.Fatalf("Failed to load saves: %v", err)
	}
	fmt.Printf("Player: %s\n", p.ID())
	for _, prof := range domain.Professions() {
		fmt.Printf("  %s: skill %d (%s), tool level %d, tool tier %s\n",
			prof, p.SkillLevel(prof), p.SkillTier(prof), p.ProfessionToolLevel(prof), p.ToolTier(prof))
	}

	// Dump Storage
	fmt.Println("\n--- Storage ---")
	for _, sum := range p.Storage().Summary() {
		fmt.Printf("%s (%s): %d items across %d materials, weight %.1f/%.1f, free space %d\n",
			sum.Location, sum.Kind, sum.TotalItems, sum.UniqueMaterials, sum.TotalWeight, sum.WeightLimit, sum.FreeSpace)
	}

	// Dump Ledger
	fmt.Println("\n--- Ledger ---")
	store, err := ledger.Open(ctx, cfg.LedgerPath)
	if err != nil {
		log.Printf("Failed to open ledger: %v", err)
		return
	}
	defer store.Close()

	counts, err := store.CountsByKind(ctx)
	if err != nil {
		log.Printf("Failed to count operations: %v", err)
	} else {
		for kind, count := range counts {
			fmt.Printf("%s: %d\n", kind, count)
		}
	}

	fmt.Println("\n--- Recent Operations ---")
	ops, err := store.RecentOperations(ctx, 20, 0)
	if err != nil {
		log.Printf("Failed to query operations: %v", err)
	} else {
		for _, op := range ops {
			fmt.Printf("#%d [%s] %s material=%s qty=%d from=%s to=%s %s\n",
				op.ID, op.Kind, op.PlayerID, op.Material, op.Quantity, op.FromLocation, op.ToLocation, op.Detail)
		}
	}
}
