package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/schedax/schedax/internal/model"
	"github.com/schedax/schedax/internal/store"
)

// EventService handles institutional event CRUD.
type EventService struct {
	store *store.Store
}

func NewEventService(s *store.Store) *EventService { return &EventService{store: s} }

// CreateEvent validates and persists an event. Unknown types are folded to
// "other" before the write so stored data stays within the enum.
func (s *EventService) CreateEvent(ctx context.Context, e model.Event) (*model.Event, error) {
	if err := checkValid(e); err != nil {
		return nil, err
	}
	e.ID = uuid.New().String()
	e.Type = e.Type.Normalize()
	if err := s.store.AppendEvent(ctx, e); err != nil {
		return nil, err
	}
	return &e, nil
}

// ListEvents returns the user's events; date, when non-empty, narrows the
// result to one calendar day.
func (s *EventService) ListEvents(ctx context.Context, userID, date string) ([]model.Event, error) {
	return s.store.ListEvents(ctx, userID, date)
}

func (s *EventService) DeleteEvent(ctx context.Context, userID, eventID string) error {
	return s.store.DeleteEvent(ctx, userID, eventID)
}
