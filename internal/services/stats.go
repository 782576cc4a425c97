package services

import (
	"context"
	"errors"

	"github.com/schedax/schedax/internal/analytics"
	"github.com/schedax/schedax/internal/model"
	"github.com/schedax/schedax/internal/store"
)

// StatsService owns the academic statistics singleton and its write-path
// derivations: the career cost auto-calculation and the period value
// suggestion.
type StatsService struct {
	store *store.Store
}

func NewStatsService(s *store.Store) *StatsService { return &StatsService{store: s} }

// GetStats returns the user's statistics record, or model.ErrNotFound.
func (s *StatsService) GetStats(ctx context.Context, userID string) (*model.AcademicStats, error) {
	return s.store.GetAcademicStats(ctx, userID)
}

// SaveStats validates and persists the statistics record, applying the
// economic derivation rules against the previously stored record.
func (s *StatsService) SaveStats(ctx context.Context, userID string, stats model.AcademicStats) (*model.AcademicStats, error) {
	stats.UserID = userID
	if err := checkValid(stats); err != nil {
		return nil, err
	}

	prev, err := s.store.GetAcademicStats(ctx, userID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	applyCareerCost(&stats, prev)
	applyPeriodValue(&stats)

	if err := s.store.PutAcademicStats(ctx, stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// derivedCareerCost returns costPerCredit×totalCredits (credits system) or
// costPerPeriod×totalPeriods (periods system), and whether both factors are
// present.
func derivedCareerCost(stats model.AcademicStats) (float64, bool) {
	switch stats.SystemType {
	case model.SystemPeriods:
		if stats.CostPerPeriod != nil && stats.TotalPeriods != nil {
			return *stats.CostPerPeriod * float64(*stats.TotalPeriods), true
		}
	case model.SystemCredits:
		if stats.CostPerCredit != nil && stats.TotalCredits != nil {
			return *stats.CostPerCredit * float64(*stats.TotalCredits), true
		}
	}
	return 0, false
}

// applyCareerCost decides whether TotalCareerCost is derived or user-owned.
//
// The value is derived while it is unset or still auto-owned from the last
// save. A submitted value that differs from the previous one is a manual
// edit: it flips IsAutoCalculated off and the value is never overwritten
// while set. Clearing TotalCareerCost re-enables derivation.
func applyCareerCost(stats *model.AcademicStats, prev *model.AcademicStats) {
	derived, ok := derivedCareerCost(*stats)

	if stats.TotalCareerCost == nil {
		stats.IsAutoCalculated = false
		if ok {
			stats.TotalCareerCost = &derived
			stats.IsAutoCalculated = true
		}
		return
	}

	autoOwned := prev != nil && prev.IsAutoCalculated &&
		prev.TotalCareerCost != nil && *prev.TotalCareerCost == *stats.TotalCareerCost
	if autoOwned && ok {
		stats.TotalCareerCost = &derived
		stats.IsAutoCalculated = true
		return
	}
	stats.IsAutoCalculated = false
}

// applyPeriodValue fills the percent-per-period suggestion only when the
// user has not set one.
func applyPeriodValue(stats *model.AcademicStats) {
	if stats.SystemType != model.SystemPeriods || stats.PeriodValue != nil {
		return
	}
	if v := analytics.SuggestedPeriodValue(*stats); v > 0 {
		stats.PeriodValue = &v
	}
}
