package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/schedax/schedax/internal/api/respond"
	"github.com/schedax/schedax/internal/model"
	"github.com/schedax/schedax/internal/services"
)

// ProfileHandler exposes the display-context profile record.
type ProfileHandler struct {
	svc *services.ProfileService
}

func NewProfileHandler(svc *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// GetProfile GET /api/users/{userId}/profile
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	out, err := h.svc.GetProfile(r.Context(), userID)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// PutProfile PUT /api/users/{userId}/profile
func (h *ProfileHandler) PutProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	var p model.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	out, err := h.svc.PutProfile(r.Context(), userID, p)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}
