package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/quinfall/companion/internal/logger"
	"github.com/quinfall/companion/internal/market"
)

// HandleGetPrices handles getting current market prices
// @Summary Get market prices
// @Description Get current per-material market prices, served through the price cache
// @Tags market
// @Produce json
// @Param materials query string false "Comma-separated material ids; omit for everything the API tracks"
// @Success 200 {array} domain.MaterialPrice
// @Failure 502 {object} ErrorResponse
// @Router /market/prices [get]
func HandleGetPrices(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var materials []string
		if raw := r.URL.Query().Get("materials"); raw != "" {
			for _, m := range strings.Split(raw, ",") {
				if m = strings.TrimSpace(m); m != "" {
					materials = append(materials, m)
				}
			}
		}

		prices, err := svc.Prices(r.Context(), materials)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetPricesFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Market prices retrieved", "count", len(prices))

		respondJSON(w, http.StatusOK, prices)
	}
}

// HandleGetPriceHistory handles reading recorded price points for one material
// @Summary Get price history
// @Description Get recorded price points for a material since a timestamp (unix seconds or RFC3339)
// @Tags market
// @Produce json
// @Param material path string true "Material id"
// @Param since query string false "Lower bound timestamp; omit for all recorded points"
// @Success 200 {array} domain.PricePoint
// @Failure 400 {object} ErrorResponse
// @Router /market/history/{material} [get]
func HandleGetPriceHistory(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		materialID := chi.URLParam(r, "material")

		var since time.Time
		if raw := r.URL.Query().Get("since"); raw != "" {
			parsed, err := parseSince(raw)
			if err != nil {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidSince)
				return
			}
			since = parsed
		}

		points, err := svc.History(r.Context(), materialID, since)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetHistoryFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, points)
	}
}

// parseSince accepts a unix-seconds integer or an RFC3339 timestamp.
func parseSince(raw string) (time.Time, error) {
	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.Unix(secs, 0), nil
	}
	return time.Parse(time.RFC3339, raw)
}
