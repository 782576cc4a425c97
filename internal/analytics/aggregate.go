// Package analytics derives schedule, event and progress summaries from
// stored records. Everything here is a pure function over in-memory data.
package analytics

import (
	"math"
	"sort"

	"github.com/schedax/schedax/internal/model"
	"github.com/schedax/schedax/internal/schedule"
	"github.com/schedax/schedax/internal/timerange"
)

// DefaultWeeklyCapacityHours is the assumed usable study capacity of a week
// (7 days of 12 hours) used to derive free hours.
const DefaultWeeklyCapacityHours = 84.0

// DayAggregate summarizes one weekday.
type DayAggregate struct {
	Day        string  `json:"day"`
	ClassCount int     `json:"classCount"`
	TotalHours float64 `json:"totalHours"`
}

// WeekAggregate is the full weekly summary over a set of subjects.
type WeekAggregate struct {
	Days          []DayAggregate `json:"days"`
	TotalHours    float64        `json:"totalHours"`
	TotalSubjects int            `json:"totalSubjects"`
	TotalCredits  int            `json:"totalCredits"`

	BusyDays []string `json:"busyDays"`
	FreeDays []string `json:"freeDays"`

	MostBusyDay  string `json:"mostBusyDay"`
	LeastBusyDay string `json:"leastBusyDay"`

	AverageClassHours float64 `json:"averageClassHours"`
	FreeHours         float64 `json:"freeHours"`
}

// AggregateSubjects folds subjects into per-day and week-level totals.
//
// Every slot increments its day's class count; hours accrue only for slots
// whose range parses, with reversed ranges clamped to zero. Most/least busy
// day ties break in canonical day order, so an all-free week reports lunes
// as most busy and domingo as least.
func AggregateSubjects(subjects []model.Subject, capacityHours float64) WeekAggregate {
	agg := WeekAggregate{
		Days:          make([]DayAggregate, len(schedule.Days)),
		TotalSubjects: len(subjects),
	}
	for i, d := range schedule.Days {
		agg.Days[i] = DayAggregate{Day: d}
	}

	for _, sub := range subjects {
		agg.TotalCredits += sub.Credits
		week := schedule.NormalizeWeek(sub.WeeklySchedule)
		for day, slots := range week {
			i := schedule.DayIndex[day]
			for _, slot := range slots {
				agg.Days[i].ClassCount++
				r, err := timerange.Parse(slot.TimeRange)
				if err != nil {
					continue
				}
				agg.Days[i].TotalHours += r.Hours()
			}
		}
	}

	for _, d := range agg.Days {
		agg.TotalHours += d.TotalHours
		if d.TotalHours > 0 {
			agg.BusyDays = append(agg.BusyDays, d.Day)
		} else {
			agg.FreeDays = append(agg.FreeDays, d.Day)
		}
	}

	// Stable sort over a canonical-order copy keeps ties deterministic.
	ranked := make([]DayAggregate, len(agg.Days))
	copy(ranked, agg.Days)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalHours > ranked[j].TotalHours
	})
	agg.MostBusyDay = ranked[0].Day
	agg.LeastBusyDay = ranked[len(ranked)-1].Day

	if agg.TotalSubjects > 0 {
		agg.AverageClassHours = round2(agg.TotalHours / float64(agg.TotalSubjects))
	}
	agg.FreeHours = capacityHours - agg.TotalHours
	return agg
}

// round2 rounds half-up to two decimal places.
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
