package services

import (
	"context"
	"errors"

	"github.com/schedax/schedax/internal/analytics"
	"github.com/schedax/schedax/internal/model"
	"github.com/schedax/schedax/internal/store"
)

// AnalyticsService assembles the analytics snapshot: it fetches the user's
// records and delegates to the pure builders in internal/analytics. Each
// call works on an independently fetched snapshot of the data, so
// concurrent recomputations need no coordination.
type AnalyticsService struct {
	store         *store.Store
	capacityHours float64
}

func NewAnalyticsService(s *store.Store, capacityHours float64) *AnalyticsService {
	if capacityHours <= 0 {
		capacityHours = analytics.DefaultWeeklyCapacityHours
	}
	return &AnalyticsService{store: s, capacityHours: capacityHours}
}

// Snapshot recomputes the user's analytics from stored records. A missing
// statistics record degrades to zero-value progress; it is not an error.
func (s *AnalyticsService) Snapshot(ctx context.Context, userID string) (*analytics.Snapshot, error) {
	schedules, err := s.store.ListSchedules(ctx, userID)
	if err != nil {
		return nil, err
	}
	events, err := s.store.ListEvents(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	stats, err := s.store.GetAcademicStats(ctx, userID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	snap := analytics.BuildSnapshot(schedules, events, stats, s.capacityHours)
	return &snap, nil
}
