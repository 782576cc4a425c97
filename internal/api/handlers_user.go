package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/schedax/schedax/internal/api/respond"
	"github.com/schedax/schedax/internal/services"
)

// UserHandler exposes account-level operations.
type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler { return &UserHandler{svc: svc} }

// ClearData DELETE /api/users/{userId}/data
func (h *UserHandler) ClearData(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if err := h.svc.ClearData(r.Context(), userID); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
