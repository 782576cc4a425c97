// Package api wires the REST surface over the service layer.
package api

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/schedax/schedax/internal/analytics"
	"github.com/schedax/schedax/internal/api/recovery"
	"github.com/schedax/schedax/internal/services"
	"github.com/schedax/schedax/internal/store"
)

// NewRouter builds the full route table over the record store.
func NewRouter(st *store.Store, capacityHours float64) *mux.Router {
	if capacityHours <= 0 {
		capacityHours = analytics.DefaultWeeklyCapacityHours
	}

	root := mux.NewRouter()
	root.Use(recovery.Middleware)
	root.Use(MetricsMiddleware)

	// Schedules
	scheduleSvc := services.NewScheduleService(st)
	schedules := NewScheduleHandler(scheduleSvc)
	root.HandleFunc("/api/users/{userId}/schedules", schedules.CreateSchedule).Methods("POST")
	root.HandleFunc("/api/users/{userId}/schedules", schedules.ListSchedules).Methods("GET")
	root.HandleFunc("/api/users/{userId}/schedules/{scheduleId}", schedules.GetSchedule).Methods("GET")
	root.HandleFunc("/api/users/{userId}/schedules/{scheduleId}", schedules.DeleteSchedule).Methods("DELETE")
	root.HandleFunc("/api/users/{userId}/schedules/{scheduleId}/completed", schedules.SetCompleted).Methods("PATCH")

	// Institutional events
	eventSvc := services.NewEventService(st)
	events := NewEventHandler(eventSvc)
	root.HandleFunc("/api/users/{userId}/events", events.CreateEvent).Methods("POST")
	root.HandleFunc("/api/users/{userId}/events", events.ListEvents).Methods("GET")
	root.HandleFunc("/api/users/{userId}/events/{eventId}", events.DeleteEvent).Methods("DELETE")

	// Academic statistics
	statsSvc := services.NewStatsService(st)
	stats := NewStatsHandler(statsSvc)
	root.HandleFunc("/api/users/{userId}/stats", stats.GetStats).Methods("GET")
	root.HandleFunc("/api/users/{userId}/stats", stats.PutStats).Methods("PUT")

	// Analytics
	analyticsSvc := services.NewAnalyticsService(st, capacityHours)
	analyticsHandler := NewAnalyticsHandler(analyticsSvc)
	root.HandleFunc("/api/users/{userId}/analytics", analyticsHandler.GetAnalytics).Methods("GET")

	// Profile
	profileSvc := services.NewProfileService(st)
	profile := NewProfileHandler(profileSvc)
	root.HandleFunc("/api/users/{userId}/profile", profile.GetProfile).Methods("GET")
	root.HandleFunc("/api/users/{userId}/profile", profile.PutProfile).Methods("PUT")

	// Account reset
	userSvc := services.NewUserService(st)
	users := NewUserHandler(userSvc)
	root.HandleFunc("/api/users/{userId}/data", users.ClearData).Methods("DELETE")

	// Health & metrics
	healthHandler := NewHealthHandler()
	root.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")
	root.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return root
}
