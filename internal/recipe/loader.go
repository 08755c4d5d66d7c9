package recipe

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/quinfall/companion/internal/catalog"
	"github.com/quinfall/companion/internal/domain"
	"github.com/quinfall/companion/internal/validation"
)

//go:embed data
var resources embed.FS

// Config represents the JSON structure of one recipe resource file
type Config struct {
	Version     string   `json:"version"`
	Description string   `json:"description,omitempty"`
	Recipes     []Record `json:"recipes"`
}

// Record is a single recipe entry as it appears in the resource files.
// Older files use recipe_name where newer ones use name; both are
// accepted. Tier, required_tool and the level fields are optional and
// fall back to derived values.
type Record struct {
	RecipeName string         `json:"recipe_name,omitempty"`
	Name       string         `json:"name,omitempty"`
	Tier       string         `json:"tier,omitempty"`
	SkillLevel int            `json:"skill_level,omitempty"`
	Tool       string         `json:"required_tool,omitempty"`
	ToolLevel  int            `json:"tool_level,omitempty"`
	Materials  map[string]int `json:"materials"`
}

// source binds a resource file to the profession key its records carry.
// The key may be a legacy profession resolved per record at load time.
type source struct {
	professionKey string
	path          string
}

// sources lists every resource the loader looks for, in load order.
// Missing files are skipped so legacy-only or trimmed data sets load.
var sources = []source{
	{professionKey: string(domain.ProfessionAlchemy), path: AlchemyResource},
	{professionKey: string(domain.ProfessionCooking), path: CookingResource},
	{professionKey: string(domain.ProfessionWeaponsmith), path: WeaponsmithResource},
	{professionKey: string(domain.ProfessionArmorsmith), path: ArmorsmithResource},
	{professionKey: string(domain.ProfessionWoodworking), path: WoodworkingResource},
	{professionKey: string(domain.ProfessionTailoring), path: TailoringResource},
	{professionKey: string(domain.ProfessionShipbuilding), path: ShipbuildingResource},
	{professionKey: LegacyProfessionBlacksmithing, path: LegacyBlacksmithingResource},
}

// Load builds the recipe book from the embedded recipe resources,
// validating every material against the catalog.
func Load(cat *catalog.Catalog) (*Book, error) {
	return LoadFS(resources, cat)
}

// LoadFS builds the recipe book from an arbitrary resource filesystem.
// Each per-profession file is validated against the embedded schema
// before unmarshalling; records are then mapped onto fixed Recipe
// values with every field checked. Files absent from the filesystem
// are skipped.
func LoadFS(fsys fs.FS, cat *catalog.Catalog) (*Book, error) {
	sv := validation.NewSchemaValidator(resources)

	var all []domain.Recipe
	for _, src := range sources {
		data, err := fs.ReadFile(fsys, src.path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf(ErrFmtReadResourceFailed, src.path, err)
		}

		recipes, err := parseSource(sv, data, src, cat)
		if err != nil {
			return nil, fmt.Errorf("recipe resource %s invalid: %w", src.path, err)
		}
		all = append(all, recipes...)
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoRecipesDefined)
	}

	return New(all)
}

// parseSource validates and maps one resource file into Recipe values
func parseSource(sv validation.SchemaValidator, data []byte, src source, cat *catalog.Catalog) ([]domain.Recipe, error) {
	if err := sv.ValidateBytes(data, SchemaResource); err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse recipe resource: %w", err)
	}

	recipes := make([]domain.Recipe, 0, len(config.Recipes))
	for _, rec := range config.Recipes {
		r, err := buildRecipe(rec, src.professionKey, cat)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, r)
	}

	return recipes, nil
}

// buildRecipe maps one raw record onto a Recipe by explicit field
// mapping, rejecting anything the catalog or the profession enums do
// not know about.
func buildRecipe(rec Record, professionKey string, cat *catalog.Catalog) (domain.Recipe, error) {
	name := rec.RecipeName
	if name == "" {
		name = rec.Name
	}
	if name == "" {
		return domain.Recipe{}, fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgMissingName)
	}

	profession, ok := resolveProfession(professionKey, name)
	if !ok {
		return domain.Recipe{}, fmt.Errorf(ErrFmtUnknownProfession, ErrInvalidConfig, name, professionKey)
	}

	if rec.SkillLevel < 0 {
		return domain.Recipe{}, fmt.Errorf(ErrFmtBadSkillLevel, ErrInvalidConfig, name)
	}
	skillLevel := rec.SkillLevel
	if skillLevel == 0 {
		skillLevel = DefaultSkillLevel
	}

	if rec.ToolLevel < 0 {
		return domain.Recipe{}, fmt.Errorf(ErrFmtBadToolLevel, ErrInvalidConfig, name)
	}
	toolLevel := rec.ToolLevel
	if toolLevel == 0 {
		toolLevel = DefaultToolLevel
	}

	tier := domain.TierForSkillLevel(skillLevel)
	if rec.Tier != "" {
		parsed, ok := domain.ParseProfessionTier(rec.Tier)
		if !ok {
			return domain.Recipe{}, fmt.Errorf(ErrFmtUnknownTier, ErrInvalidConfig, name, rec.Tier)
		}
		tier = parsed
	}

	tool := profession.PrimaryTool()
	if rec.Tool != "" {
		parsed, ok := domain.ParseTool(rec.Tool)
		if !ok {
			return domain.Recipe{}, fmt.Errorf(ErrFmtUnknownTool, ErrInvalidConfig, name, rec.Tool)
		}
		tool = parsed
	}

	if len(rec.Materials) == 0 {
		return domain.Recipe{}, fmt.Errorf(ErrFmtNoMaterials, ErrInvalidConfig, name)
	}
	materials := make(map[string]int, len(rec.Materials))
	for id, qty := range rec.Materials {
		if !cat.Contains(id) {
			return domain.Recipe{}, fmt.Errorf(ErrFmtUnknownMaterial, domain.ErrUnknownMaterial, name, id)
		}
		if qty <= 0 {
			return domain.Recipe{}, fmt.Errorf(ErrFmtBadQuantity, ErrInvalidConfig, name, id)
		}
		materials[id] = qty
	}

	return domain.Recipe{
		Name:       name,
		Profession: profession,
		Tier:       tier,
		SkillLevel: skillLevel,
		Tool:       tool,
		ToolLevel:  toolLevel,
		Materials:  materials,
	}, nil
}

// resolveProfession maps a resource profession key onto a Profession.
// Legacy blacksmithing records are routed per recipe by output keyword;
// every other key must name a current profession. The legacy tailoring
// resource needs no remapping because the profession kept its name.
func resolveProfession(professionKey, recipeName string) (domain.Profession, bool) {
	if professionKey == LegacyProfessionBlacksmithing {
		return splitLegacySmithing(recipeName), true
	}
	return domain.ParseProfession(professionKey)
}

// weaponKeywords route a legacy smithing recipe to the weaponsmith
// book when its output name contains one. Everything else is armor.
var weaponKeywords = []string{"sword", "dagger", "axe", "bow", "staff", "pickaxe"}

func splitLegacySmithing(recipeName string) domain.Profession {
	lower := strings.ToLower(recipeName)
	for _, kw := range weaponKeywords {
		if strings.Contains(lower, kw) {
			return domain.ProfessionWeaponsmith
		}
	}
	return domain.ProfessionArmorsmith
}
