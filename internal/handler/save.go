package handler

import (
	"net/http"

	"github.com/quinfall/companion/internal/logger"
	"github.com/quinfall/companion/internal/player"
)

// HandleSave handles an explicit save of the full in-memory state
// @Summary Save state
// @Description Write the player profile and storage contents to the saves directory
// @Tags persistence
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /save [post]
func HandleSave(svc player.Service, p *player.Player) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Save(r.Context(), p); err != nil {
			respondServiceError(w, r, ErrMsgSaveFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("State saved", "player", p.ID())

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSaveSuccess})
	}
}

// HandleLoad handles an explicit reload from disk, discarding in-memory state
// @Summary Reload state
// @Description Replace the in-memory profile and storage contents with the on-disk saves
// @Tags persistence
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /load [post]
func HandleLoad(svc player.Service, p *player.Player) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Reload(r.Context(), p); err != nil {
			respondServiceError(w, r, ErrMsgLoadFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("State reloaded", "player", p.ID())

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLoadSuccess})
	}
}
