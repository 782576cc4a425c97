package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/schedax/schedax/internal/model"
	"github.com/schedax/schedax/internal/schedule"
	"github.com/schedax/schedax/internal/store"
)

// ScheduleService handles schedule CRUD. Schedules are created whole and
// afterwards mutate only via the completed toggle or a full delete.
type ScheduleService struct {
	store *store.Store
}

func NewScheduleService(s *store.Store) *ScheduleService { return &ScheduleService{store: s} }

// CreateSchedule validates, normalizes each subject's week and persists the
// schedule. IDs and creation stamps are assigned here.
func (s *ScheduleService) CreateSchedule(ctx context.Context, sc model.Schedule) (*model.Schedule, error) {
	if err := checkValid(sc); err != nil {
		return nil, err
	}

	now := time.Now()
	sc.ID = uuid.New().String()
	sc.CreatedDate = now.Format("2006-01-02")
	sc.CreatedTime = now.Format("15:04")
	sc.Completed = false

	for i := range sc.Subjects {
		if sc.Subjects[i].ID == "" {
			sc.Subjects[i].ID = uuid.New().String()
		}
		sc.Subjects[i].WeeklySchedule = schedule.NormalizeWeek(sc.Subjects[i].WeeklySchedule)
	}

	if err := s.store.AppendSchedule(ctx, sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (s *ScheduleService) ListSchedules(ctx context.Context, userID string) ([]model.Schedule, error) {
	return s.store.ListSchedules(ctx, userID)
}

// GetSchedule returns the schedule with each day's slots sorted by start
// time for presentation.
func (s *ScheduleService) GetSchedule(ctx context.Context, userID, scheduleID string) (*model.Schedule, error) {
	sc, err := s.store.GetSchedule(ctx, userID, scheduleID)
	if err != nil {
		return nil, err
	}
	for i := range sc.Subjects {
		for _, slots := range sc.Subjects[i].WeeklySchedule {
			schedule.SortSlots(slots)
		}
	}
	return sc, nil
}

func (s *ScheduleService) SetCompleted(ctx context.Context, userID, scheduleID string, completed bool) (*model.Schedule, error) {
	return s.store.SetScheduleCompleted(ctx, userID, scheduleID, completed)
}

func (s *ScheduleService) DeleteSchedule(ctx context.Context, userID, scheduleID string) error {
	return s.store.DeleteSchedule(ctx, userID, scheduleID)
}
