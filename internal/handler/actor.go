package handler

import (
	"encoding/json"
	"net/http"

	"github.com/osse101/LootTally_Go/internal/actor"
	"github.com/osse101/LootTally_Go/internal/logger"
)

// SetActorRequest carries the local player's identity and zone.
type SetActorRequest struct {
	Name      string `json:"name" validate:"required,max=64"`
	ContentID uint64 `json:"content_id"`
	ZoneID    uint32 `json:"zone_id"`
	ZoneName  string `json:"zone_name" validate:"max=128"`
}

// ActorResponse reports the currently active player, if any.
type ActorResponse struct {
	Active    bool   `json:"active"`
	Name      string `json:"name,omitempty"`
	ContentID uint64 `json:"content_id,omitempty"`
	ZoneID    uint32 `json:"zone_id,omitempty"`
	ZoneName  string `json:"zone_name,omitempty"`
}

// HandleSetActor sets the local-actor identity lines are attributed to.
// @Summary Set the active player
// @Tags actor
// @Accept json
// @Produce json
// @Param request body SetActorRequest true "Player identity"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/actor [post]
func HandleSetActor(state *actor.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SetActorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode actor request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Actor request failed validation", "errors", FormatValidationError(err))
			respondError(w, http.StatusBadRequest, ErrMsgActorNameRequired)
			return
		}

		state.Set(actor.Info{
			Name:      req.Name,
			ContentID: req.ContentID,
			ZoneID:    req.ZoneID,
			ZoneName:  req.ZoneName,
		})

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgActorSet})
	}
}

// HandleGetActor returns the current local-actor identity.
// @Summary Get the active player
// @Tags actor
// @Produce json
// @Success 200 {object} ActorResponse
// @Router /api/v1/actor [get]
func HandleGetActor(state *actor.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, ok := state.Info()
		if !ok {
			respondJSON(w, http.StatusOK, ActorResponse{Active: false})
			return
		}

		respondJSON(w, http.StatusOK, ActorResponse{
			Active:    true,
			Name:      info.Name,
			ContentID: info.ContentID,
			ZoneID:    info.ZoneID,
			ZoneName:  info.ZoneName,
		})
	}
}

// HandleClearActor clears the local-actor identity. Lines needing it are
// skipped until a new identity is set.
// @Summary Clear the active player
// @Tags actor
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/actor [delete]
func HandleClearActor(state *actor.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state.Clear()
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgActorCleared})
	}
}
