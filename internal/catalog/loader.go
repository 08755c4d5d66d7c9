package catalog

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/quinfall/companion/internal/domain"
	"github.com/quinfall/companion/internal/validation"
)

//go:embed data/materials.json data/materials.schema.json
var resources embed.FS

// Resource names inside the embedded filesystem
const (
	materialsResource = "data/materials.json"
	materialsSchema   = "data/materials.schema.json"
)

// Config represents the JSON structure of the materials resource
type Config struct {
	Version     string            `json:"version"`
	Description string            `json:"description,omitempty"`
	Materials   []domain.Material `json:"materials"`
}

// Load builds the catalog from the embedded materials resource. The
// raw JSON is validated against the embedded schema before unmarshal;
// semantic rules (duplicates, numeric sanity) are checked by New.
func Load() (*Catalog, error) {
	data, err := resources.ReadFile(materialsResource)
	if err != nil {
		return nil, fmt.Errorf("failed to read materials resource: %w", err)
	}

	sv := validation.NewSchemaValidator(resources)
	if err := sv.ValidateBytes(data, materialsSchema); err != nil {
		return nil, fmt.Errorf("materials resource invalid: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse materials resource: %w", err)
	}

	return New(config.Materials)
}
