package handler

import (
	"net/http"

	"github.com/quinfall/companion/internal/crafting"
	"github.com/quinfall/companion/internal/logger"
	"github.com/quinfall/companion/internal/player"
)

// CraftRequest is the body of a craft or craft-check call
type CraftRequest struct {
	Recipe   string `json:"recipe" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// CraftCheckResponse reports the outcome of a dry-run craft check
type CraftCheckResponse struct {
	Craftable bool   `json:"craftable"`
	Reason    string `json:"reason,omitempty"`
}

// HandleCraftItem handles executing a craft transaction
// @Summary Craft an item
// @Description Craft quantity batches of a recipe, deducting materials from the inventory and crafting storage
// @Tags crafting
// @Accept json
// @Produce json
// @Param request body CraftRequest true "Craft request"
// @Success 200 {object} crafting.CraftResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /craft [post]
func HandleCraftItem(svc crafting.Service, p *player.Player) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CraftRequest
		if err := decodeRequest(w, r, &req, "Craft item"); err != nil {
			return
		}

		result, err := svc.Craft(r.Context(), p, req.Recipe, req.Quantity)
		if err != nil {
			respondServiceError(w, r, ErrMsgCraftFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Item crafted",
			"recipe", result.RecipeName, "quantity", result.Quantity, "deductions", len(result.Consumed))

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleCraftCheck handles a dry-run craftability check
// @Summary Check craftability
// @Description Report whether the recipe could be crafted right now, without changing any state
// @Tags crafting
// @Accept json
// @Produce json
// @Param request body CraftRequest true "Craft check request"
// @Success 200 {object} CraftCheckResponse
// @Failure 400 {object} ErrorResponse
// @Router /craft/check [post]
func HandleCraftCheck(svc crafting.Service, p *player.Player) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CraftRequest
		if err := decodeRequest(w, r, &req, "Craft check"); err != nil {
			return
		}

		if err := svc.CanCraft(r.Context(), p, req.Recipe, req.Quantity); err != nil {
			// A failed requirement is a normal answer here, not an error
			_, reason := mapServiceErrorToUserMessage(err)
			respondJSON(w, http.StatusOK, CraftCheckResponse{Craftable: false, Reason: reason})
			return
		}

		respondJSON(w, http.StatusOK, CraftCheckResponse{Craftable: true})
	}
}
