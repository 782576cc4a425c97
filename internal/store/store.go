// Package store is the typed record layer over the key-value collaborator.
// Each entity type lives under one fixed key as a whole JSON document; the
// store performs read-modify-write on updates and filters by userId on
// reads. The key strings are load-bearing: existing persisted data is
// addressed by them.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/schedax/schedax/internal/kv"
	"github.com/schedax/schedax/internal/model"
)

// Fixed storage keys. Must not change: they address persisted data.
const (
	KeySchedules           = "@schedax_schedules"
	KeyInstitutionalEvents = "@schedax_institutional_events"
	KeyAcademicStatistics  = "@schedax_academic_statistics"
	KeyUserProfile         = "@schedax_user_profile"
)

// Store reads and writes domain records through the kv collaborator.
type Store struct {
	kv kv.Store
}

func New(k kv.Store) *Store { return &Store{kv: k} }

// KV exposes the underlying collaborator for health probes.
func (s *Store) KV() kv.Store { return s.kv }

func (s *Store) readList(ctx context.Context, key string, out any) error {
	raw, err := s.kv.Get(ctx, key)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("store: decode %s: %w", key, err)
	}
	return nil
}

func (s *Store) writeList(ctx context.Context, key string, in any) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	return s.kv.Set(ctx, key, raw)
}

// --- Schedules ---

// ListSchedules returns the user's schedules in stored order.
func (s *Store) ListSchedules(ctx context.Context, userID string) ([]model.Schedule, error) {
	var all []model.Schedule
	if err := s.readList(ctx, KeySchedules, &all); err != nil {
		return nil, err
	}
	var out []model.Schedule
	for _, sc := range all {
		if sc.UserID == userID {
			out = append(out, sc)
		}
	}
	return out, nil
}

// GetSchedule returns one schedule owned by the user.
func (s *Store) GetSchedule(ctx context.Context, userID, scheduleID string) (*model.Schedule, error) {
	all, err := s.ListSchedules(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == scheduleID {
			return &all[i], nil
		}
	}
	return nil, model.ErrNotFound
}

// AppendSchedule adds a schedule to the global list.
func (s *Store) AppendSchedule(ctx context.Context, sc model.Schedule) error {
	var all []model.Schedule
	if err := s.readList(ctx, KeySchedules, &all); err != nil {
		return err
	}
	all = append(all, sc)
	return s.writeList(ctx, KeySchedules, all)
}

// SetScheduleCompleted toggles the completed flag on one schedule.
func (s *Store) SetScheduleCompleted(ctx context.Context, userID, scheduleID string, completed bool) (*model.Schedule, error) {
	var all []model.Schedule
	if err := s.readList(ctx, KeySchedules, &all); err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == scheduleID && all[i].UserID == userID {
			all[i].Completed = completed
			if err := s.writeList(ctx, KeySchedules, all); err != nil {
				return nil, err
			}
			return &all[i], nil
		}
	}
	return nil, model.ErrNotFound
}

// DeleteSchedule removes one schedule owned by the user.
func (s *Store) DeleteSchedule(ctx context.Context, userID, scheduleID string) error {
	var all []model.Schedule
	if err := s.readList(ctx, KeySchedules, &all); err != nil {
		return err
	}
	kept := all[:0]
	found := false
	for _, sc := range all {
		if sc.ID == scheduleID && sc.UserID == userID {
			found = true
			continue
		}
		kept = append(kept, sc)
	}
	if !found {
		return model.ErrNotFound
	}
	return s.writeList(ctx, KeySchedules, kept)
}

// --- Institutional events ---

// ListEvents returns the user's events, optionally filtered to one ISO date.
func (s *Store) ListEvents(ctx context.Context, userID, date string) ([]model.Event, error) {
	var all []model.Event
	if err := s.readList(ctx, KeyInstitutionalEvents, &all); err != nil {
		return nil, err
	}
	var out []model.Event
	for _, e := range all {
		if e.UserID != userID {
			continue
		}
		if date != "" && e.Date != date {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// AppendEvent adds an event to the global list.
func (s *Store) AppendEvent(ctx context.Context, e model.Event) error {
	var all []model.Event
	if err := s.readList(ctx, KeyInstitutionalEvents, &all); err != nil {
		return err
	}
	all = append(all, e)
	return s.writeList(ctx, KeyInstitutionalEvents, all)
}

// DeleteEvent removes one event owned by the user.
func (s *Store) DeleteEvent(ctx context.Context, userID, eventID string) error {
	var all []model.Event
	if err := s.readList(ctx, KeyInstitutionalEvents, &all); err != nil {
		return err
	}
	kept := all[:0]
	found := false
	for _, e := range all {
		if e.ID == eventID && e.UserID == userID {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return model.ErrNotFound
	}
	return s.writeList(ctx, KeyInstitutionalEvents, kept)
}

// --- Academic statistics ---

// statsKey returns the per-user statistics key. The original system stored a
// single global record; reads fall back to that legacy key so existing data
// keeps working (see DESIGN.md).
func statsKey(userID string) string {
	return KeyAcademicStatistics + ":" + userID
}

// GetAcademicStats returns the user's statistics record, or ErrNotFound.
func (s *Store) GetAcademicStats(ctx context.Context, userID string) (*model.AcademicStats, error) {
	raw, err := s.kv.Get(ctx, statsKey(userID))
	if errors.Is(err, kv.ErrKeyNotFound) {
		raw, err = s.kv.Get(ctx, KeyAcademicStatistics)
		if errors.Is(err, kv.ErrKeyNotFound) {
			return nil, model.ErrNotFound
		}
	}
	if err != nil {
		return nil, err
	}
	var stats model.AcademicStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", KeyAcademicStatistics, err)
	}
	stats.UserID = userID
	return &stats, nil
}

// PutAcademicStats writes the user's statistics record (last write wins).
func (s *Store) PutAcademicStats(ctx context.Context, stats model.AcademicStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", KeyAcademicStatistics, err)
	}
	return s.kv.Set(ctx, statsKey(stats.UserID), raw)
}

// --- User profile ---

func profileKey(userID string) string {
	return KeyUserProfile + ":" + userID
}

// GetProfile returns the user's profile record, or ErrNotFound.
func (s *Store) GetProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	raw, err := s.kv.Get(ctx, profileKey(userID))
	if errors.Is(err, kv.ErrKeyNotFound) {
		raw, err = s.kv.Get(ctx, KeyUserProfile)
		if errors.Is(err, kv.ErrKeyNotFound) {
			return nil, model.ErrNotFound
		}
	}
	if err != nil {
		return nil, err
	}
	var p model.UserProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", KeyUserProfile, err)
	}
	p.UserID = userID
	return &p, nil
}

// PutProfile writes the user's profile record.
func (s *Store) PutProfile(ctx context.Context, p model.UserProfile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", KeyUserProfile, err)
	}
	return s.kv.Set(ctx, profileKey(p.UserID), raw)
}

// PurgeUser removes every record owned by the user. Schedules and events
// live inside shared arrays and are filtered out; singleton records are
// removed by key.
func (s *Store) PurgeUser(ctx context.Context, userID string) error {
	var schedules []model.Schedule
	if err := s.readList(ctx, KeySchedules, &schedules); err != nil {
		return err
	}
	keptS := schedules[:0]
	for _, sc := range schedules {
		if sc.UserID != userID {
			keptS = append(keptS, sc)
		}
	}
	if err := s.writeList(ctx, KeySchedules, keptS); err != nil {
		return err
	}

	var events []model.Event
	if err := s.readList(ctx, KeyInstitutionalEvents, &events); err != nil {
		return err
	}
	keptE := events[:0]
	for _, e := range events {
		if e.UserID != userID {
			keptE = append(keptE, e)
		}
	}
	if err := s.writeList(ctx, KeyInstitutionalEvents, keptE); err != nil {
		return err
	}

	return s.kv.RemoveMany(ctx, []string{statsKey(userID), profileKey(userID)})
}
