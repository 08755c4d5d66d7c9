package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/quinfall/companion/internal/catalog"
	"github.com/quinfall/companion/internal/concurrency"
	"github.com/quinfall/companion/internal/config"
	"github.com/quinfall/companion/internal/domain"
	"github.com/quinfall/companion/internal/player"
	"github.com/quinfall/companion/internal/storage"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	skills := flag.Int("skills", domain.DefaultSkillLevel, "seed every profession skill at this level")
	tools := flag.Int("tools", domain.DefaultToolLevel, "seed every tool and profession tool level at this level")
	inventory := flag.Int("inventory", domain.FreshStartInventoryValue, "per-material quantity for the player inventory")
	storageValue := flag.Int("storage", domain.FreshStartStorageValue, "per-material quantity for each storage container")
	keepLedger := flag.Bool("keep-ledger", false, "keep the activity ledger instead of deleting it")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Remove existing save files
	log.Printf("Removing save files under %s...\n", cfg.SavesDir)
	if err := os.RemoveAll(cfg.SavesDir); err != nil {
		log.Fatalf("Failed to remove saves: %v", err)
	}

	// Remove the activity ledger and its WAL side files
	if !*keepLedger {
		log.Printf("Removing activity ledger %s...\n", cfg.LedgerPath)
		for _, path := range []string{cfg.LedgerPath, cfg.LedgerPath + "-wal", cfg.LedgerPath + "-shm"} {
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				log.Fatalf("Failed to remove %s: %v", path, err)
			}
		}
	}

	// Seed a fresh player through the same services the daemon uses
	log.Println("Seeding fresh save files...")
	cat, err := catalog.Load()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	p, err := player.LoadOrCreate(ctx, cfg.SavesDir, domain.DefaultPlayerID, cat)
	if err != nil {
		log.Fatalf("Failed to create player: %v", err)
	}

	lockManager := concurrency.NewLockManager()
	playerService := player.NewService(cfg.SavesDir, lockManager)
	storageService := storage.NewService(p.Storage(), nil, lockManager)

	for _, prof := range domain.Professions() {
		if _, err := playerService.SetSkillLevel(ctx, p, prof, *skills); err != nil {
			log.Fatalf("Failed to seed skill for %s: %v", prof, err)
		}
		if _, err := playerService.SetProfessionToolLevel(ctx, p, prof, *tools); err != nil {
			log.Fatalf("Failed to seed tool level for %s: %v", prof, err)
		}
	}
	for _, tool := range domain.Tools() {
		if _, err := playerService.SetToolLevel(ctx, p, tool, *tools); err != nil {
			log.Fatalf("Failed to seed level for tool %s: %v", tool, err)
		}
	}

	if err := storageService.Reset(ctx, *inventory, *storageValue); err != nil {
		log.Fatalf("Failed to seed storage: %v", err)
	}

	if err := playerService.Save(ctx, p); err != nil {
		log.Fatalf("Failed to write save files: %v", err)
	}

	log.Println("\n✅ Save data reset complete!")
	log.Printf("Skills at %d, tools at %d, storage containers at %d per material. Restart the companion to pick it up.\n",
		*skills, *tools, *storageValue)
}
