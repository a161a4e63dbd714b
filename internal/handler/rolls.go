package handler

import (
	"net/http"
	"time"

	"github.com/osse101/LootTally_Go/internal/domain"
	"github.com/osse101/LootTally_Go/internal/tracker"
)

// RollSessionView is the presentation form of a roll session, with rolls
// ordered Need before Greed, then by value descending.
type RollSessionView struct {
	ItemID    uint32              `json:"item_id"`
	IconID    uint32              `json:"icon_id"`
	Rarity    int                 `json:"rarity"`
	ItemName  string              `json:"item_name"`
	Rolls     []domain.PlayerRoll `json:"rolls"`
	Winner    string              `json:"winner,omitempty"`
	Open      bool                `json:"open"`
	CreatedAt time.Time           `json:"created_at"`
}

// HandleGetRolls returns all roll sessions in creation order.
// @Summary List roll sessions
// @Tags rolls
// @Produce json
// @Success 200 {object} DataResponse
// @Router /api/v1/rolls [get]
func HandleGetRolls(svc tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions := svc.RollSessions()

		views := make([]RollSessionView, 0, len(sessions))
		for i := range sessions {
			s := &sessions[i]
			views = append(views, RollSessionView{
				ItemID:    s.ItemID,
				IconID:    s.IconID,
				Rarity:    s.Rarity,
				ItemName:  s.ItemName,
				Rolls:     s.SortedRolls(),
				Winner:    s.Winner,
				Open:      s.Open(),
				CreatedAt: s.CreatedAt,
			})
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: views})
	}
}

// HandleClearCompletedRolls removes every session that has a winner.
// @Summary Clear completed roll sessions
// @Tags rolls
// @Produce json
// @Success 200 {object} CountResponse
// @Router /api/v1/rolls/completed [delete]
func HandleClearCompletedRolls(svc tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		removed := svc.ClearCompletedRolls(r.Context())
		respondJSON(w, http.StatusOK, CountResponse{Message: MsgCompletedRollsClear, Count: removed})
	}
}

// HandleClearAllRolls removes every roll session.
// @Summary Clear all roll sessions
// @Tags rolls
// @Produce json
// @Success 200 {object} CountResponse
// @Router /api/v1/rolls [delete]
func HandleClearAllRolls(svc tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		removed := svc.ClearAllRolls(r.Context())
		respondJSON(w, http.StatusOK, CountResponse{Message: MsgAllRollsCleared, Count: removed})
	}
}
