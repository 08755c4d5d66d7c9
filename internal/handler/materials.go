package handler

import (
	"fmt"
	"net/http"

	"github.com/quinfall/companion/internal/catalog"
	"github.com/quinfall/companion/internal/domain"
	"github.com/quinfall/companion/internal/logger"
)

// HandleGetMaterials handles catalog queries
// @Summary List materials
// @Description List catalog materials, optionally filtered by category and rarity
// @Tags materials
// @Produce json
// @Param category query string false "Material category filter"
// @Param rarity query string false "Material rarity filter"
// @Success 200 {array} domain.Material
// @Failure 400 {object} ErrorResponse
// @Router /materials [get]
func HandleGetMaterials(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		categoryRaw := r.URL.Query().Get("category")
		rarityRaw := r.URL.Query().Get("rarity")

		category := domain.MaterialCategory(categoryRaw)
		if categoryRaw != "" && !category.IsValid() {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidCategory, categoryRaw))
			return
		}
		rarity := domain.MaterialRarity(rarityRaw)
		if rarityRaw != "" && !rarity.IsValid() {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidRarity, rarityRaw))
			return
		}

		var materials []domain.Material
		switch {
		case categoryRaw != "" && rarityRaw != "":
			for _, m := range cat.ByCategory(category) {
				if m.Rarity == rarity {
					materials = append(materials, m)
				}
			}
		case categoryRaw != "":
			materials = cat.ByCategory(category)
		case rarityRaw != "":
			materials = cat.ByRarity(rarity)
		default:
			materials = cat.All()
		}

		log.Info("Materials retrieved", "count", len(materials))

		respondJSON(w, http.StatusOK, materials)
	}
}
