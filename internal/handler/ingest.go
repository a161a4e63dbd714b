package handler

import (
	"encoding/json"
	"net/http"

	"github.com/osse101/LootTally_Go/internal/classify"
	"github.com/osse101/LootTally_Go/internal/logger"
	"github.com/osse101/LootTally_Go/internal/tracker"
)

// IngestLineRequest is one inbound game-client text line, optionally carrying
// the structured item reference attached when the line held an item link.
type IngestLineRequest struct {
	Line     string `json:"line" validate:"required,max=1024"`
	ItemID   uint32 `json:"item_id,omitempty"`
	ItemName string `json:"item_name,omitempty" validate:"max=256"`
}

// HandleIngestLine feeds one raw text line into the tracking core.
// @Summary Ingest a game-client text line
// @Description Classifies the line and applies loot and roll effects. Unclassifiable lines are accepted and dropped.
// @Tags lines
// @Accept json
// @Produce json
// @Param request body IngestLineRequest true "Line to ingest"
// @Success 202 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/lines [post]
func HandleIngestLine(svc tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req IngestLineRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode ingest request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Ingest request failed validation", "errors", FormatValidationError(err))
			respondError(w, http.StatusBadRequest, ErrMsgLineRequired)
			return
		}

		var ref *classify.ItemRef
		if req.ItemID > 0 {
			ref = &classify.ItemRef{ID: req.ItemID, Name: req.ItemName}
		}

		svc.ProcessLine(r.Context(), req.Line, ref)

		respondJSON(w, http.StatusAccepted, SuccessResponse{Message: MsgLineAccepted})
	}
}
