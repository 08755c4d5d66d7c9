package recipe

import (
	"errors"
	"fmt"
	"sort"

	"github.com/quinfall/companion/internal/domain"
)

// Sentinel errors for book construction
var (
	ErrDuplicateRecipe = errors.New("duplicate recipe name")
	ErrInvalidConfig   = errors.New("invalid recipe configuration")
)

// Book is the read-only recipe collection. It is built once at startup
// from the embedded resources and passed by reference to every
// consumer; recipes never change while the daemon runs.
type Book struct {
	byName       map[string]domain.Recipe
	byProfession map[domain.Profession][]string
	ordered      []string
}

// New builds a book from recipe records, rejecting duplicate names.
// Records are assumed to be individually valid; the loader enforces
// that before calling New.
func New(recipes []domain.Recipe) (*Book, error) {
	b := &Book{
		byName:       make(map[string]domain.Recipe, len(recipes)),
		byProfession: make(map[domain.Profession][]string),
		ordered:      make([]string, 0, len(recipes)),
	}

	for _, r := range recipes {
		if _, exists := b.byName[r.Name]; exists {
			return nil, fmt.Errorf(ErrFmtDuplicateName, ErrDuplicateRecipe, r.Name)
		}
		b.byName[r.Name] = r
		b.byProfession[r.Profession] = append(b.byProfession[r.Profession], r.Name)
		b.ordered = append(b.ordered, r.Name)
	}

	return b, nil
}

// Len returns the number of recipes in the book
func (b *Book) Len() int {
	return len(b.ordered)
}

// All returns every recipe in load order.
func (b *Book) All() []domain.Recipe {
	out := make([]domain.Recipe, 0, len(b.ordered))
	for _, name := range b.ordered {
		out = append(out, b.byName[name])
	}
	return out
}

// ByName finds a recipe by its exact name across all professions.
func (b *Book) ByName(name string) (domain.Recipe, bool) {
	r, ok := b.byName[name]
	return r, ok
}

// ByProfession returns the recipes of one profession in load order.
func (b *Book) ByProfession(p domain.Profession) []domain.Recipe {
	names := b.byProfession[p]
	out := make([]domain.Recipe, 0, len(names))
	for _, name := range names {
		out = append(out, b.byName[name])
	}
	return out
}

// FilterBySkill returns a profession's recipes craftable at or below
// the given skill level.
func (b *Book) FilterBySkill(p domain.Profession, maxSkill int) []domain.Recipe {
	var out []domain.Recipe
	for _, name := range b.byProfession[p] {
		if r := b.byName[name]; r.SkillLevel <= maxSkill {
			out = append(out, r)
		}
	}
	return out
}

// FilterByToolLevel returns a profession's recipes craftable at or
// below the given tool level.
func (b *Book) FilterByToolLevel(p domain.Profession, maxToolLevel int) []domain.Recipe {
	var out []domain.Recipe
	for _, name := range b.byProfession[p] {
		if r := b.byName[name]; r.ToolLevel <= maxToolLevel {
			out = append(out, r)
		}
	}
	return out
}

// Professions returns the professions that have at least one recipe,
// sorted by name for stable listing.
func (b *Book) Professions() []domain.Profession {
	out := make([]domain.Profession, 0, len(b.byProfession))
	for p := range b.byProfession {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
