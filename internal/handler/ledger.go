package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/quinfall/companion/internal/ledger"
	"github.com/quinfall/companion/internal/logger"
)

// Default paging for the operations endpoint
const (
	DefaultOperationsLimit = "50"
	MaxOperationsLimit     = 500
)

// OperationLog is the journal-reading slice of the activity ledger.
type OperationLog interface {
	RecentOperations(ctx context.Context, limit, offset int) ([]ledger.Operation, error)
}

// HandleGetOperations handles reading recent journal entries
// @Summary List ledger operations
// @Description List recent activity journal entries, newest first
// @Tags ledger
// @Produce json
// @Param limit query int false "Page size (default 50, max 500)"
// @Param offset query int false "Entries to skip"
// @Success 200 {array} ledger.Operation
// @Failure 400 {object} ErrorResponse
// @Router /ledger/operations [get]
func HandleGetOperations(log OperationLog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limitRaw := queryParam(r, "limit", DefaultOperationsLimit)
		limit, err := strconv.Atoi(limitRaw)
		if err != nil || limit <= 0 || limit > MaxOperationsLimit {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
			return
		}

		offsetRaw := queryParam(r, "offset", "0")
		offset, err := strconv.Atoi(offsetRaw)
		if err != nil || offset < 0 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidOffset)
			return
		}

		ops, err := log.RecentOperations(r.Context(), limit, offset)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetOperationsFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Ledger operations retrieved", "count", len(ops), "offset", offset)

		respondJSON(w, http.StatusOK, ops)
	}
}
