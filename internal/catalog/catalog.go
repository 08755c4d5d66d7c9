package catalog

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/quinfall/companion/internal/domain"
)

// Sentinel errors for catalog construction
var (
	ErrDuplicateMaterial = errors.New("duplicate material id")
	ErrInvalidCatalog    = errors.New("invalid catalog")
)

// Catalog is the read-only material catalog. It is built once at
// startup and passed by reference to every consumer; nothing in the
// codebase holds it as a package-level global.
type Catalog struct {
	byID     map[string]domain.Material
	byAPIID  map[string]string
	byGameID map[string]string
	ordered  []string
	titler   cases.Caser
}

// New builds a catalog from material records, rejecting duplicates and
// semantically invalid entries. The slice is copied; callers may reuse it.
func New(materials []domain.Material) (*Catalog, error) {
	if len(materials) == 0 {
		return nil, fmt.Errorf("%w: no materials defined", ErrInvalidCatalog)
	}

	c := &Catalog{
		byID:     make(map[string]domain.Material, len(materials)),
		byAPIID:  make(map[string]string),
		byGameID: make(map[string]string),
		ordered:  make([]string, 0, len(materials)),
		titler:   cases.Title(language.English),
	}

	for i, mat := range materials {
		if err := validateMaterial(i, mat); err != nil {
			return nil, err
		}
		if _, exists := c.byID[mat.ID]; exists {
			return nil, fmt.Errorf("%w: '%s'", ErrDuplicateMaterial, mat.ID)
		}
		c.byID[mat.ID] = mat
		c.ordered = append(c.ordered, mat.ID)
		if mat.APIID != "" {
			c.byAPIID[mat.APIID] = mat.ID
		}
		if mat.GameID != "" {
			c.byGameID[mat.GameID] = mat.ID
		}
	}

	return c, nil
}

func validateMaterial(index int, mat domain.Material) error {
	if mat.ID == "" {
		return fmt.Errorf("%w: material at index %d has empty id", ErrInvalidCatalog, index)
	}
	if !mat.Category.IsValid() {
		return fmt.Errorf("%w: material '%s' has unknown category '%s'", ErrInvalidCatalog, mat.ID, mat.Category)
	}
	if !mat.Rarity.IsValid() {
		return fmt.Errorf("%w: material '%s' has unknown rarity '%s'", ErrInvalidCatalog, mat.ID, mat.Rarity)
	}
	if mat.MaxStack <= 0 {
		return fmt.Errorf("%w: material '%s' has non-positive max stack", ErrInvalidCatalog, mat.ID)
	}
	if mat.Weight < 0 {
		return fmt.Errorf("%w: material '%s' has negative weight", ErrInvalidCatalog, mat.ID)
	}
	if mat.BaseValue < 0 {
		return fmt.Errorf("%w: material '%s' has negative base value", ErrInvalidCatalog, mat.ID)
	}
	return nil
}

// Get returns the material for an id
func (c *Catalog) Get(id string) (domain.Material, bool) {
	mat, ok := c.byID[id]
	return mat, ok
}

// MustGet returns the material for a known-good id, panicking when it
// is absent. Intended for tests and static wiring, not request paths.
func (c *Catalog) MustGet(id string) domain.Material {
	mat, ok := c.byID[id]
	if !ok {
		panic(fmt.Sprintf("catalog: unknown material %q", id))
	}
	return mat
}

// Contains reports whether the id names a catalog material
func (c *Catalog) Contains(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Weight returns a material's unit weight. Unknown materials report
// zero weight so lenient capacity checks can skip them.
func (c *Catalog) Weight(id string) (float64, bool) {
	mat, ok := c.byID[id]
	if !ok {
		return 0, false
	}
	return mat.Weight, true
}

// Len returns the number of materials in the catalog
func (c *Catalog) Len() int {
	return len(c.ordered)
}

// Names returns every material id in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// All returns every material in catalog order.
func (c *Catalog) All() []domain.Material {
	out := make([]domain.Material, 0, len(c.ordered))
	for _, id := range c.ordered {
		out = append(out, c.byID[id])
	}
	return out
}

// ByCategory returns the materials of one category in catalog order.
func (c *Catalog) ByCategory(cat domain.MaterialCategory) []domain.Material {
	var out []domain.Material
	for _, id := range c.ordered {
		if mat := c.byID[id]; mat.Category == cat {
			out = append(out, mat)
		}
	}
	return out
}

// ByRarity returns the materials of one rarity in catalog order.
func (c *Catalog) ByRarity(r domain.MaterialRarity) []domain.Material {
	var out []domain.Material
	for _, id := range c.ordered {
		if mat := c.byID[id]; mat.Rarity == r {
			out = append(out, mat)
		}
	}
	return out
}

// ByAPIID resolves a game API identifier to a material
func (c *Catalog) ByAPIID(apiID string) (domain.Material, bool) {
	id, ok := c.byAPIID[apiID]
	if !ok {
		return domain.Material{}, false
	}
	return c.byID[id], true
}

// ByGameID resolves a game-internal identifier to a material
func (c *Catalog) ByGameID(gameID string) (domain.Material, bool) {
	id, ok := c.byGameID[gameID]
	if !ok {
		return domain.Material{}, false
	}
	return c.byID[id], true
}

// DisplayName returns the material's display name. Materials without
// an explicit one, and unknown ids, fall back to title-casing the id
// ("iron_ore" becomes "Iron Ore").
func (c *Catalog) DisplayName(id string) string {
	if mat, ok := c.byID[id]; ok && mat.DisplayName != "" {
		return mat.DisplayName
	}
	return c.titler.String(strings.ReplaceAll(id, "_", " "))
}
