package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/LootTally_Go/internal/catalog"
	"github.com/osse101/LootTally_Go/internal/domain"
	"github.com/osse101/LootTally_Go/internal/logger"
)

// ResolvedItemResponse is a catalog record plus the decoded quality flag.
type ResolvedItemResponse struct {
	Item        domain.CatalogRecord `json:"item"`
	HighQuality bool                 `json:"high_quality,omitempty"`
}

// HandleResolveItem resolves an item by encoded ID or free-text name.
// @Summary Resolve an item against the catalog
// @Description Resolves either an encoded numeric ID (id param) or a free-text name (name param) to a catalog record.
// @Tags items
// @Produce json
// @Param id query int false "Encoded item ID"
// @Param name query string false "Free-text item name"
// @Success 200 {object} ResolvedItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/resolve [get]
func HandleResolveItem(resolver *catalog.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if raw := r.URL.Query().Get("id"); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
				return
			}

			rec, hq, err := resolver.ResolveID(uint32(id))
			if err != nil {
				log.Debug("Item ID did not resolve", "id", id, "error", err)
				status, msg := mapServiceErrorToUserMessage(err)
				respondError(w, status, msg)
				return
			}

			respondJSON(w, http.StatusOK, ResolvedItemResponse{Item: *rec, HighQuality: hq})
			return
		}

		name := r.URL.Query().Get("name")
		if name == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		rec, err := resolver.ResolveName(name)
		if err != nil {
			log.Debug("Item name did not resolve", "name", name, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, ResolvedItemResponse{Item: *rec})
	}
}
