package services

import (
	"context"

	"github.com/schedax/schedax/internal/store"
)

// UserService handles account-level operations that span every record type.
type UserService struct {
	store *store.Store
}

func NewUserService(s *store.Store) *UserService { return &UserService{store: s} }

// ClearData removes everything the user owns: schedules, events, statistics
// and profile. Backing for the account reset flow.
func (s *UserService) ClearData(ctx context.Context, userID string) error {
	return s.store.PurgeUser(ctx, userID)
}
