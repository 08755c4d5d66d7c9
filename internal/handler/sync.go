package handler

import (
	"net/http"

	"github.com/quinfall/companion/internal/gamesync"
	"github.com/quinfall/companion/internal/logger"
)

// HandleSyncNow handles a manual storage sync
// @Summary Sync storage now
// @Description Run one full storage synchronization against the game API
// @Tags sync
// @Produce json
// @Success 200 {object} domain.SyncReport
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /sync [post]
func HandleSyncNow(svc gamesync.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.Sync(r.Context(), gamesync.TriggerManual)
		if err != nil {
			respondServiceError(w, r, ErrMsgSyncFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Manual sync completed",
			"items_updated", report.ItemsUpdated, "conflicts_resolved", report.ConflictsResolved)

		respondJSON(w, http.StatusOK, report)
	}
}

// HandleSyncStatus handles reporting the sync machinery's state
// @Summary Get sync status
// @Description Get whether sync is configured, the last report and the last error
// @Tags sync
// @Produce json
// @Success 200 {object} gamesync.Status
// @Router /sync/status [get]
func HandleSyncStatus(svc gamesync.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Status())
	}
}
