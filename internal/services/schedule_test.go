package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedax/schedax/internal/kv/memkv"
	"github.com/schedax/schedax/internal/model"
	"github.com/schedax/schedax/internal/store"
)

func newFixture(t *testing.T) (*ScheduleService, *store.Store) {
	t.Helper()
	st := store.New(memkv.New())
	return NewScheduleService(st), st
}

func TestCreateScheduleRequiresTitle(t *testing.T) {
	svc, st := newFixture(t)
	ctx := context.Background()

	_, err := svc.CreateSchedule(ctx, model.Schedule{UserID: "ana"})
	assert.ErrorIs(t, err, model.ErrValidation)

	got, err := st.ListSchedules(ctx, "ana")
	require.NoError(t, err)
	assert.Empty(t, got, "no partial writes on validation failure")
}

func TestCreateScheduleRequiresSubjectFields(t *testing.T) {
	svc, _ := newFixture(t)
	_, err := svc.CreateSchedule(context.Background(), model.Schedule{
		UserID:   "ana",
		Title:    "2026-1",
		Subjects: []model.Subject{{Name: "Cálculo"}}, // missing professor
	})
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestCreateScheduleNormalizesWeeks(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	created, err := svc.CreateSchedule(ctx, model.Schedule{
		UserID: "ana",
		Title:  "2026-1",
		Subjects: []model.Subject{{
			Name:      "Cálculo",
			Professor: "Dr. Ruiz",
			Credits:   4,
			WeeklySchedule: map[string][]model.TimeSlot{
				"Miércoles": {{TimeRange: "08:00 - 10:00", Room: "A101"}},
			},
		}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.CreatedDate)
	assert.NotEmpty(t, created.Subjects[0].ID)

	week := created.Subjects[0].WeeklySchedule
	require.Len(t, week, 7)
	assert.Len(t, week["miercoles"], 1)
	assert.Empty(t, week["domingo"])

	// Persisted copy matches.
	got, err := svc.GetSchedule(ctx, "ana", created.ID)
	require.NoError(t, err)
	assert.Len(t, got.Subjects[0].WeeklySchedule["miercoles"], 1)
}

func TestGetScheduleSortsSlots(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	created, err := svc.CreateSchedule(ctx, model.Schedule{
		UserID: "ana",
		Title:  "2026-1",
		Subjects: []model.Subject{{
			Name:      "Física",
			Professor: "Dra. León",
			WeeklySchedule: map[string][]model.TimeSlot{
				"lunes": {
					{TimeRange: "14:00 - 16:00"},
					{TimeRange: "08:00 - 10:00"},
				},
			},
		}},
	})
	require.NoError(t, err)

	got, err := svc.GetSchedule(ctx, "ana", created.ID)
	require.NoError(t, err)
	slots := got.Subjects[0].WeeklySchedule["lunes"]
	require.Len(t, slots, 2)
	assert.Equal(t, "08:00 - 10:00", slots[0].TimeRange)
}

func TestToggleAndDelete(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	created, err := svc.CreateSchedule(ctx, model.Schedule{UserID: "ana", Title: "2026-1"})
	require.NoError(t, err)
	assert.False(t, created.Completed)

	toggled, err := svc.SetCompleted(ctx, "ana", created.ID, true)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	require.NoError(t, svc.DeleteSchedule(ctx, "ana", created.ID))
	_, err = svc.GetSchedule(ctx, "ana", created.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
