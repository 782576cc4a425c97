package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/schedax/schedax/internal/api/respond"
	"github.com/schedax/schedax/internal/model"
	"github.com/schedax/schedax/internal/services"
)

// EventHandler is a thin HTTP transport over EventService.
type EventHandler struct {
	svc *services.EventService
}

func NewEventHandler(svc *services.EventService) *EventHandler { return &EventHandler{svc: svc} }

// CreateEvent POST /api/users/{userId}/events
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	var e model.Event
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	e.UserID = userID
	out, err := h.svc.CreateEvent(r.Context(), e)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListEvents GET /api/users/{userId}/events[?date=YYYY-MM-DD]
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	date := r.URL.Query().Get("date")
	out, err := h.svc.ListEvents(r.Context(), userID, date)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"events": out, "count": len(out)})
}

// DeleteEvent DELETE /api/users/{userId}/events/{eventId}
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.svc.DeleteEvent(r.Context(), vars["userId"], vars["eventId"]); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
