package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quinfall/companion/internal/domain"
)

// Test boundaries
const (
	MinQuantity = 1
	MaxQuantity = 10000
)

type TestStruct struct {
	Location   string `validate:"location"`
	Profession string `validate:"profession"`
	Tool       string `validate:"tool"`
	Quantity   int    `validate:"min=1,max=10000"`
}

// =============================================================================
// Validator Tests - Demonstrating 5-Case Testing Model
// =============================================================================

func TestValidator_LocationValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name     string
		location string
		wantErr  bool
	}{
		// CASE 1: Best Case
		{"player inventory", string(domain.LocPlayerInventory), false},
		{"meadow bank", string(domain.LocMeadowBank), false},
		{"guild warehouse", string(domain.LocGuildWarehouse), false},

		// CASE 2: Boundary - empty allowed (not required)
		{"empty location allowed", "", false},

		// CASE 4: Invalid Case
		{"unknown location", "moon_base", true},
		{"typo", "medow_bank", true},
		{"wrong case", "MEADOW_BANK", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := TestStruct{
				Location:   tt.location,
				Profession: string(domain.ProfessionMining),
				Tool:       string(domain.ToolPickaxe),
				Quantity:   10,
			}

			err := v.ValidateStruct(input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_ProfessionValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name       string
		profession string
		wantErr    bool
	}{
		// CASE 1: Best Case
		{"mining", string(domain.ProfessionMining), false},
		{"weaponsmith", string(domain.ProfessionWeaponsmith), false},

		// CASE 2: Boundary - empty allowed (not required)
		{"empty profession allowed", "", false},

		// CASE 4: Invalid Case
		{"unknown profession", "BASKETRY", true},
		{"lowercase", "mining", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := TestStruct{
				Location:   string(domain.LocPlayerInventory),
				Profession: tt.profession,
				Tool:       string(domain.ToolPickaxe),
				Quantity:   10,
			}

			err := v.ValidateStruct(input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_ToolValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		tool    string
		wantErr bool
	}{
		// CASE 1: Best Case
		{"pickaxe", string(domain.ToolPickaxe), false},
		{"fishing rod", string(domain.ToolFishingRod), false},

		// CASE 3: Edge - legacy uppercase names still resolve
		{"legacy uppercase", "PICKAXE", false},

		// CASE 2: Boundary - empty allowed (not required)
		{"empty tool allowed", "", false},

		// CASE 4: Invalid Case
		{"unknown tool", "Wand", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := TestStruct{
				Location:   string(domain.LocPlayerInventory),
				Profession: string(domain.ProfessionMining),
				Tool:       tt.tool,
				Quantity:   10,
			}

			err := v.ValidateStruct(input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_QuantityValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name     string
		quantity int
		wantErr  bool
	}{
		// CASE 1: Best Case
		{"valid quantity", 10, false},
		{"mid range", 5000, false},

		// CASE 2: Boundary Case
		{"negative (beyond lower)", -1, true},
		{"zero (on lower boundary)", 0, true},
		{"one (at min)", MinQuantity, false},
		{"max allowed", MaxQuantity, false},
		{"over max (beyond upper)", MaxQuantity + 1, true},

		// CASE 2: Worst Case - extremes
		{"very negative", -999999, true},
		{"very large", 999999, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := TestStruct{
				Location:   string(domain.LocPlayerInventory),
				Profession: string(domain.ProfessionMining),
				Tool:       string(domain.ToolPickaxe),
				Quantity:   tt.quantity,
			}

			err := v.ValidateStruct(input)

			if tt.wantErr {
				assert.Error(t, err, "Expected validation error for quantity=%d", tt.quantity)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_MultipleFieldErrors(t *testing.T) {
	InitValidator()
	v := GetValidator()

	t.Run("all fields invalid", func(t *testing.T) {
		input := TestStruct{
			Location:   "moon_base",
			Profession: "BASKETRY",
			Tool:       "Wand",
			Quantity:   0, // Below minimum
		}

		err := v.ValidateStruct(input)

		require.Error(t, err)
		// Should have errors for all four fields
		assert.Contains(t, err.Error(), "Location")
		assert.Contains(t, err.Error(), "Profession")
		assert.Contains(t, err.Error(), "Tool")
		assert.Contains(t, err.Error(), "Quantity")
	})
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()
	v := GetValidator()

	t.Run("maps tags to field messages", func(t *testing.T) {
		input := MoveRequest{Material: "", Quantity: 0, From: "moon_base", To: string(domain.LocMeadowBank)}

		err := v.ValidateStruct(input)
		require.Error(t, err)

		fields := FormatValidationError(err)
		assert.Equal(t, "This field is required", fields["material"])
		assert.Equal(t, "This field is required", fields["quantity"])
		assert.Equal(t, "Unknown storage location", fields["from"])
		assert.NotContains(t, fields, "to")
	})

	t.Run("non-validator error collapses to generic message", func(t *testing.T) {
		fields := FormatValidationError(assert.AnError)
		assert.Equal(t, "Invalid request format", fields["error"])
	})
}
