package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/schedax/schedax/internal/api/respond"
	"github.com/schedax/schedax/internal/services"
)

// AnalyticsHandler serves the derived analytics snapshot.
type AnalyticsHandler struct {
	svc *services.AnalyticsService
}

func NewAnalyticsHandler(svc *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// GetAnalytics GET /api/users/{userId}/analytics
func (h *AnalyticsHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	snap, err := h.svc.Snapshot(r.Context(), userID)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, snap)
}
