package analytics

import "github.com/schedax/schedax/internal/model"

// Snapshot is the analytics record consumed by the presentation layer.
// It is a pure projection over already-fetched records: recomputed on
// demand, never persisted.
type Snapshot struct {
	Week         WeekAggregate           `json:"week"`
	EventsByType map[model.EventType]int `json:"eventsByType"`
	TotalEvents  int                     `json:"totalEvents"`
	Progress     Progress                `json:"progress"`
}

// BuildSnapshot composes the week aggregate, event histogram and progress
// for one user's records. Inputs are expected to be pre-filtered to the
// user. A nil stats record yields zero-value progress. Calling twice with
// the same inputs yields identical output.
func BuildSnapshot(schedules []model.Schedule, events []model.Event, stats *model.AcademicStats, capacityHours float64) Snapshot {
	var subjects []model.Subject
	for _, s := range schedules {
		subjects = append(subjects, s.Subjects...)
	}

	snap := Snapshot{
		Week:         AggregateSubjects(subjects, capacityHours),
		EventsByType: CountEventsByType(events),
		TotalEvents:  len(events),
	}
	if stats != nil {
		snap.Progress = ComputeProgress(*stats)
	}
	return snap
}
