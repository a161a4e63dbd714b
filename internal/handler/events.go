package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/LootTally_Go/internal/logger"
	"github.com/osse101/LootTally_Go/internal/tracker"
)

// HandleGetEvents returns the recent-events snapshot, newest first.
// @Summary List recent loot events
// @Tags events
// @Produce json
// @Param limit query int false "Maximum events to return"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/events [get]
func HandleGetEvents(svc tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		events := svc.RecentEvents()

		if raw := r.URL.Query().Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil || limit < 0 {
				log.Warn("Invalid limit parameter", "limit", raw)
				respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
				return
			}
			if limit < len(events) {
				events = events[:limit]
			}
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: events})
	}
}

// HandleClearEvents empties the recent-events list.
// @Summary Clear loot event history
// @Tags events
// @Produce json
// @Success 200 {object} CountResponse
// @Router /api/v1/events [delete]
func HandleClearEvents(svc tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		removed := svc.ClearHistory(r.Context())
		respondJSON(w, http.StatusOK, CountResponse{Message: MsgHistoryCleared, Count: removed})
	}
}
