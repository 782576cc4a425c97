package services

import (
	"context"

	"github.com/schedax/schedax/internal/model"
	"github.com/schedax/schedax/internal/store"
)

// ProfileService stores display-context profile fields untransformed.
type ProfileService struct {
	store *store.Store
}

func NewProfileService(s *store.Store) *ProfileService { return &ProfileService{store: s} }

func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	return s.store.GetProfile(ctx, userID)
}

func (s *ProfileService) PutProfile(ctx context.Context, userID string, p model.UserProfile) (*model.UserProfile, error) {
	p.UserID = userID
	if err := s.store.PutProfile(ctx, p); err != nil {
		return nil, err
	}
	return &p, nil
}
