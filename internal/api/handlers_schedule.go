package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/schedax/schedax/internal/api/respond"
	"github.com/schedax/schedax/internal/model"
	"github.com/schedax/schedax/internal/services"
)

// ScheduleHandler is a thin HTTP transport over ScheduleService.
type ScheduleHandler struct {
	svc *services.ScheduleService
}

func NewScheduleHandler(svc *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

// CreateSchedule POST /api/users/{userId}/schedules
func (h *ScheduleHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	var sc model.Schedule
	if err := json.NewDecoder(r.Body).Decode(&sc); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	sc.UserID = userID
	out, err := h.svc.CreateSchedule(r.Context(), sc)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListSchedules GET /api/users/{userId}/schedules
func (h *ScheduleHandler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	out, err := h.svc.ListSchedules(r.Context(), userID)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"schedules": out, "count": len(out)})
}

// GetSchedule GET /api/users/{userId}/schedules/{scheduleId}
func (h *ScheduleHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	out, err := h.svc.GetSchedule(r.Context(), vars["userId"], vars["scheduleId"])
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// SetCompleted PATCH /api/users/{userId}/schedules/{scheduleId}/completed
func (h *ScheduleHandler) SetCompleted(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req struct {
		Completed bool `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	out, err := h.svc.SetCompleted(r.Context(), vars["userId"], vars["scheduleId"], req.Completed)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// DeleteSchedule DELETE /api/users/{userId}/schedules/{scheduleId}
func (h *ScheduleHandler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.svc.DeleteSchedule(r.Context(), vars["userId"], vars["scheduleId"]); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
