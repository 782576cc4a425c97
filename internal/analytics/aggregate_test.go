package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedax/schedax/internal/model"
	"github.com/schedax/schedax/internal/schedule"
)

func subjectWith(name string, credits int, week map[string][]model.TimeSlot) model.Subject {
	return model.Subject{ID: name, Name: name, Professor: "prof", Credits: credits, WeeklySchedule: week}
}

func TestAggregateAlwaysReturnsSevenDays(t *testing.T) {
	inputs := [][]model.Subject{
		nil,
		{},
		{subjectWith("a", 3, nil)},
		{subjectWith("b", 3, map[string][]model.TimeSlot{"viernes": {{TimeRange: "14:00 - 16:00"}}})},
	}
	for _, subs := range inputs {
		agg := AggregateSubjects(subs, DefaultWeeklyCapacityHours)
		require.Len(t, agg.Days, 7)
		for i, d := range agg.Days {
			assert.Equal(t, schedule.Days[i], d.Day)
		}
	}
}

func TestBusyFreeDaysPartitionWeek(t *testing.T) {
	agg := AggregateSubjects([]model.Subject{
		subjectWith("a", 4, map[string][]model.TimeSlot{
			"lunes":  {{TimeRange: "08:00 - 10:00"}},
			"jueves": {{TimeRange: "10:00 - 13:00"}},
		}),
	}, DefaultWeeklyCapacityHours)

	seen := map[string]bool{}
	for _, d := range append(append([]string{}, agg.BusyDays...), agg.FreeDays...) {
		require.False(t, seen[d], "day %q in both partitions", d)
		seen[d] = true
	}
	assert.Len(t, seen, 7)
	assert.Equal(t, []string{"lunes", "jueves"}, agg.BusyDays)
}

func TestAggregateSingleSubject(t *testing.T) {
	// "Matemáticas I": two two-hour blocks, four credits.
	agg := AggregateSubjects([]model.Subject{
		subjectWith("Matemáticas I", 4, map[string][]model.TimeSlot{
			"lunes":  {{TimeRange: "08:00 - 10:00", Room: "A101"}},
			"martes": {{TimeRange: "10:00 - 12:00", Room: "A101"}},
		}),
	}, DefaultWeeklyCapacityHours)

	assert.Equal(t, 2.0, agg.Days[0].TotalHours)
	assert.Equal(t, 2.0, agg.Days[1].TotalHours)
	assert.Equal(t, 4, agg.TotalCredits)
	assert.Equal(t, 1, agg.TotalSubjects)
	assert.Equal(t, 4.0, agg.TotalHours)
	// Tie between lunes and martes breaks in canonical day order.
	assert.Equal(t, "lunes", agg.MostBusyDay)
	assert.Equal(t, 4.0, agg.AverageClassHours)
	assert.Equal(t, DefaultWeeklyCapacityHours-4, agg.FreeHours)
}

func TestAggregateOverlappingSubjects(t *testing.T) {
	week := map[string][]model.TimeSlot{"viernes": {{TimeRange: "14:00 - 16:00"}}}
	agg := AggregateSubjects([]model.Subject{
		subjectWith("a", 3, week),
		subjectWith("b", 3, week),
	}, DefaultWeeklyCapacityHours)

	viernes := agg.Days[schedule.DayIndex["viernes"]]
	assert.Equal(t, 2, viernes.ClassCount)
	assert.Equal(t, 4.0, viernes.TotalHours)
}

func TestMalformedSlotCountsButAddsNoHours(t *testing.T) {
	agg := AggregateSubjects([]model.Subject{
		subjectWith("a", 3, map[string][]model.TimeSlot{
			"lunes": {{TimeRange: "8am-10am"}, {TimeRange: "10:00 - 12:00"}},
		}),
	}, DefaultWeeklyCapacityHours)

	lunes := agg.Days[0]
	assert.Equal(t, 2, lunes.ClassCount)
	assert.Equal(t, 2.0, lunes.TotalHours)
}

func TestReversedSlotCountsButAddsNoHours(t *testing.T) {
	agg := AggregateSubjects([]model.Subject{
		subjectWith("a", 3, map[string][]model.TimeSlot{
			"martes": {{TimeRange: "16:00 - 14:00"}},
		}),
	}, DefaultWeeklyCapacityHours)

	martes := agg.Days[1]
	assert.Equal(t, 1, martes.ClassCount)
	assert.Equal(t, 0.0, martes.TotalHours)
	assert.Empty(t, agg.BusyDays)
}

func TestEmptyWeekTieBreak(t *testing.T) {
	agg := AggregateSubjects(nil, DefaultWeeklyCapacityHours)
	assert.Equal(t, "lunes", agg.MostBusyDay)
	assert.Equal(t, "domingo", agg.LeastBusyDay)
	assert.Equal(t, 0.0, agg.AverageClassHours)
	assert.Len(t, agg.FreeDays, 7)
}

func TestAverageRoundsToTwoDecimals(t *testing.T) {
	// 5h over 3 subjects = 1.666... -> 1.67
	agg := AggregateSubjects([]model.Subject{
		subjectWith("a", 1, map[string][]model.TimeSlot{"lunes": {{TimeRange: "08:00 - 13:00"}}}),
		subjectWith("b", 1, nil),
		subjectWith("c", 1, nil),
	}, DefaultWeeklyCapacityHours)
	assert.Equal(t, 1.67, agg.AverageClassHours)
}

func TestAccentedDayNamesFold(t *testing.T) {
	agg := AggregateSubjects([]model.Subject{
		subjectWith("a", 2, map[string][]model.TimeSlot{
			"Miércoles": {{TimeRange: "09:00 - 11:00"}},
			"sábado":    {{TimeRange: "10:00 - 11:00"}},
		}),
	}, DefaultWeeklyCapacityHours)
	assert.Equal(t, 2.0, agg.Days[schedule.DayIndex["miercoles"]].TotalHours)
	assert.Equal(t, 1.0, agg.Days[schedule.DayIndex["sabado"]].TotalHours)
}

func TestCountEventsByType(t *testing.T) {
	counts := CountEventsByType([]model.Event{
		{Type: model.EventExam},
		{Type: model.EventExam},
		{Type: "fiesta"},
		{Type: ""},
	})
	assert.Equal(t, 2, counts[model.EventExam])
	assert.Equal(t, 2, counts[model.EventOther])
}
