package domain

// Recipe is a fixed crafting rule loaded from the static recipe
// resources. Fields are populated by explicit mapping at load time;
// records with unknown professions, unknown materials, or non-positive
// quantities are rejected by the loader. Immutable once loaded.
type Recipe struct {
	Name       string         `json:"name"`
	Profession Profession     `json:"profession"`
	Tier       ProfessionTier `json:"tier"`
	SkillLevel int            `json:"skill_level"`
	Tool       Tool           `json:"required_tool"`
	ToolLevel  int            `json:"tool_level"`
	Materials  map[string]int `json:"materials"`
}

// MaterialQuantity returns the required quantity of one material,
// zero when the recipe does not use it.
func (r Recipe) MaterialQuantity(materialID string) int {
	return r.Materials[materialID]
}

// ChangeAction describes how one field of a recipe differed between
// two versions of the recipe resources
type ChangeAction string

const (
	ChangeAdded    ChangeAction = "added"
	ChangeRemoved  ChangeAction = "removed"
	ChangeUpdated  ChangeAction = "quantity_changed"
	ChangeModified ChangeAction = "changed"
)

// MaterialChange records one material-requirement difference between
// two versions of a recipe.
type MaterialChange struct {
	Action ChangeAction `json:"action"`
	Old    int          `json:"old,omitempty"`
	New    int          `json:"new,omitempty"`
}

// RequirementChange records a skill or tool requirement difference.
type RequirementChange struct {
	Action ChangeAction `json:"action"`
	Old    string       `json:"old,omitempty"`
	New    string       `json:"new,omitempty"`
}

// RecipeDiff summarizes what changed between two versions of a recipe.
// Empty maps mean the versions are equivalent.
type RecipeDiff struct {
	Name         string                       `json:"name"`
	Materials    map[string]MaterialChange    `json:"materials,omitempty"`
	Requirements map[string]RequirementChange `json:"requirements,omitempty"`
}

// HasChanges reports whether the diff contains any difference.
func (d RecipeDiff) HasChanges() bool {
	return len(d.Materials) > 0 || len(d.Requirements) > 0
}
