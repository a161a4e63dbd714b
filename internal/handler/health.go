package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/LootTally_Go/internal/catalog"
	"github.com/osse101/LootTally_Go/internal/domain"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz provides a readiness check that validates the item catalog is loaded
// @Summary Readiness check
// @Description Returns OK if the service is ready to accept traffic (catalog loaded)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(resolver *catalog.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Any lookup answers once the catalog capability is wired; only an
		// unavailable catalog fails readiness.
		_, _, err := resolver.ResolveID(catalog.GilItemID)
		if errors.Is(err, domain.ErrCatalogUnavailable) {
			slog.Error("Readiness check failed", "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  "unavailable",
				Message: "item catalog not loaded",
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
