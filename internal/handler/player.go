package handler

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/quinfall/companion/internal/domain"
	"github.com/quinfall/companion/internal/logger"
	"github.com/quinfall/companion/internal/player"
)

// HandleGetPlayer handles getting the player profile
// @Summary Get player profile
// @Description Get the mirrored skill levels, tiers and tool state
// @Tags player
// @Produce json
// @Success 200 {object} player.View
// @Router /player [get]
func HandleGetPlayer(svc player.Service, p *player.Player) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.View(r.Context(), p))
	}
}

// SetLevelRequest is the body of a skill or tool level update
type SetLevelRequest struct {
	Level int `json:"level" validate:"required,gt=0"`
}

// HandleSetSkillLevel handles updating one profession's skill level
// @Summary Set skill level
// @Description Mirror an in-game skill level change for one profession
// @Tags player
// @Accept json
// @Produce json
// @Param profession path string true "Profession"
// @Param request body SetLevelRequest true "New level"
// @Success 200 {object} player.View
// @Failure 400 {object} ErrorResponse
// @Router /player/skills/{profession} [put]
func HandleSetSkillLevel(svc player.Service, p *player.Player) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "profession")
		prof, ok := domain.ParseProfession(raw)
		if !ok {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidProfession, raw))
			return
		}

		var req SetLevelRequest
		if err := decodeRequest(w, r, &req, "Set skill level"); err != nil {
			return
		}

		level, err := svc.SetSkillLevel(r.Context(), p, prof, req.Level)
		if err != nil {
			respondServiceError(w, r, ErrMsgUpdateSkillFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Skill level updated", "profession", prof, "level", level)

		respondJSON(w, http.StatusOK, svc.View(r.Context(), p))
	}
}

// HandleSetToolLevel handles updating one tool's upgrade level
// @Summary Set tool level
// @Description Mirror an in-game tool upgrade for one tool type
// @Tags player
// @Accept json
// @Produce json
// @Param tool path string true "Tool"
// @Param request body SetLevelRequest true "New level"
// @Success 200 {object} player.View
// @Failure 400 {object} ErrorResponse
// @Router /player/tools/{tool} [put]
func HandleSetToolLevel(svc player.Service, p *player.Player) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "tool")
		if decoded, err := url.PathUnescape(raw); err == nil {
			raw = decoded
		}
		tool, ok := domain.ParseTool(raw)
		if !ok {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidTool, raw))
			return
		}

		var req SetLevelRequest
		if err := decodeRequest(w, r, &req, "Set tool level"); err != nil {
			return
		}

		level, err := svc.SetToolLevel(r.Context(), p, tool, req.Level)
		if err != nil {
			respondServiceError(w, r, ErrMsgUpdateToolFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Tool level updated", "tool", tool, "level", level)

		respondJSON(w, http.StatusOK, svc.View(r.Context(), p))
	}
}

// SetToolTierRequest is the body of a tool tier update
type SetToolTierRequest struct {
	Tier string `json:"tier" validate:"required"`
}

// HandleSetToolTier handles updating the tool tier for a profession
// @Summary Set tool tier
// @Description Mirror an in-game tool tier change (Basic, Copper, Iron, ...) for one profession
// @Tags player
// @Accept json
// @Produce json
// @Param profession path string true "Profession"
// @Param request body SetToolTierRequest true "New tier"
// @Success 200 {object} player.View
// @Failure 400 {object} ErrorResponse
// @Router /player/tool-tiers/{profession} [put]
func HandleSetToolTier(svc player.Service, p *player.Player) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "profession")
		prof, ok := domain.ParseProfession(raw)
		if !ok {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidProfession, raw))
			return
		}

		var req SetToolTierRequest
		if err := decodeRequest(w, r, &req, "Set tool tier"); err != nil {
			return
		}

		tier, err := svc.SetToolTier(r.Context(), p, prof, req.Tier)
		if err != nil {
			respondServiceError(w, r, ErrMsgUpdateToolFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Tool tier updated", "profession", prof, "tier", tier)

		respondJSON(w, http.StatusOK, svc.View(r.Context(), p))
	}
}
