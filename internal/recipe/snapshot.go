package recipe

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/quinfall/companion/internal/domain"
	"github.com/quinfall/companion/internal/utils"
)

// Snapshot is the persisted last-seen recipe set. The daemon saves one
// after loading the book and diffs against it on the next start to
// detect recipe changes shipped in an update.
type Snapshot struct {
	Version int             `json:"version"`
	SavedAt time.Time       `json:"saved_at"`
	Recipes []domain.Recipe `json:"recipes"`
}

// LoadSnapshot reads a recipe snapshot from disk. A missing file is
// not an error; it returns nil recipes so the first run diffs against
// nothing.
func LoadSnapshot(path string) ([]domain.Recipe, error) {
	var snap Snapshot
	if err := utils.LoadJSON(path, &snap); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	if snap.Version != SnapshotVersion {
		return nil, fmt.Errorf(ErrFmtSnapshotVersion, domain.ErrUnsupportedVersion, snap.Version)
	}

	return snap.Recipes, nil
}

// SaveSnapshot writes the current recipe set to disk for the next
// start's change detection.
func SaveSnapshot(path string, recipes []domain.Recipe) error {
	snap := Snapshot{
		Version: SnapshotVersion,
		SavedAt: time.Now().UTC(),
		Recipes: recipes,
	}
	return utils.SaveJSON(path, snap)
}

// DetectChanges diffs the book against the snapshot at path, then
// rewrites the snapshot to match the current book. Returns the diffs
// found; an empty slice (including the first run) means nothing to
// announce.
func DetectChanges(path string, book *Book) ([]domain.RecipeDiff, error) {
	previous, err := LoadSnapshot(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe snapshot: %w", err)
	}

	current := book.All()

	// First run: persist the baseline without reporting every recipe
	// as newly added.
	if previous == nil {
		if err := SaveSnapshot(path, current); err != nil {
			return nil, fmt.Errorf("failed to save recipe snapshot: %w", err)
		}
		return nil, nil
	}

	diffs := Diff(previous, current)
	if len(diffs) > 0 {
		if err := SaveSnapshot(path, current); err != nil {
			return nil, fmt.Errorf("failed to save recipe snapshot: %w", err)
		}
	}

	return diffs, nil
}
