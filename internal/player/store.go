package player

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quinfall/companion/internal/catalog"
	"github.com/quinfall/companion/internal/domain"
	"github.com/quinfall/companion/internal/logger"
	"github.com/quinfall/companion/internal/storage"
	"github.com/quinfall/companion/internal/utils"
)

// Store persists player profiles as JSON save files under a directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created on
// first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the profile save file path
func (st *Store) Path() string {
	return filepath.Join(st.dir, domain.PlayerSaveFile)
}

// Save writes the player's profile to the save file.
func (st *Store) Save(ctx context.Context, p *Player) error {
	if err := os.MkdirAll(st.dir, 0755); err != nil {
		return fmt.Errorf("failed to create save directory: %w", err)
	}
	if err := utils.SaveJSON(st.Path(), p.Profile()); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	logger.FromContext(ctx).Info("Profile saved", "player_id", p.ID())
	return nil
}

// Load reads the profile save file into the player. A missing file
// returns domain.ErrSaveNotFound so callers can fall back to defaults.
func (st *Store) Load(ctx context.Context, p *Player) error {
	path := st.Path()

	var prof Profile
	if err := utils.LoadJSON(path, &prof); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", domain.ErrSaveNotFound, path)
		}
		return fmt.Errorf("failed to load profile: %w", err)
	}

	if err := p.ApplyProfile(ctx, prof); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("Profile loaded", "player_id", p.ID())
	return nil
}

// LoadOrCreate builds the player from the save files under savesDir. A
// missing profile yields a default player; a missing storage save
// additionally seeds the fresh-start quantities (empty inventory,
// every provisioned storage container at the fresh-start value).
func LoadOrCreate(ctx context.Context, savesDir, id string, cat *catalog.Catalog) (*Player, error) {
	log := logger.FromContext(ctx)
	p := New(id, cat)

	if err := NewStore(savesDir).Load(ctx, p); err != nil {
		if !errors.Is(err, domain.ErrSaveNotFound) {
			return nil, err
		}
		log.Info("No profile save found, starting with defaults", "player_id", p.ID())
	}

	if err := storage.NewStore(savesDir).Load(ctx, p.Storage()); err != nil {
		if !errors.Is(err, domain.ErrSaveNotFound) {
			return nil, err
		}
		p.Storage().ResetAll(domain.FreshStartInventoryValue, domain.FreshStartStorageValue)
		log.Info("No storage save found, seeding fresh start",
			"player_id", p.ID(),
			"storage_value", domain.FreshStartStorageValue)
	}

	return p, nil
}

// SaveAll persists the profile and the storage save together.
func SaveAll(ctx context.Context, savesDir string, p *Player) error {
	if err := NewStore(savesDir).Save(ctx, p); err != nil {
		return err
	}
	return storage.NewStore(savesDir).Save(ctx, p.Storage())
}

// Reload re-reads both save files into the player in place, replacing
// in-memory state. Missing files surface as domain.ErrSaveNotFound.
func Reload(ctx context.Context, savesDir string, p *Player) error {
	if err := NewStore(savesDir).Load(ctx, p); err != nil {
		return err
	}
	return storage.NewStore(savesDir).Load(ctx, p.Storage())
}
