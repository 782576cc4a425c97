package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/schedax/schedax/internal/api/respond"
	"github.com/schedax/schedax/internal/model"
	"github.com/schedax/schedax/internal/services"
)

// StatsHandler exposes the academic statistics singleton.
type StatsHandler struct {
	svc *services.StatsService
}

func NewStatsHandler(svc *services.StatsService) *StatsHandler { return &StatsHandler{svc: svc} }

// GetStats GET /api/users/{userId}/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	out, err := h.svc.GetStats(r.Context(), userID)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// PutStats PUT /api/users/{userId}/stats
func (h *StatsHandler) PutStats(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	var stats model.AcademicStats
	if err := json.NewDecoder(r.Body).Decode(&stats); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	out, err := h.svc.SaveStats(r.Context(), userID, stats)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}
