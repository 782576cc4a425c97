// Package schedule holds the normalized weekly schedule model.
package schedule

import (
	"sort"
	"strings"

	"github.com/schedax/schedax/internal/model"
)

// Days are the canonical day keys in week order (lowercase, no accents).
var Days = [7]string{"lunes", "martes", "miercoles", "jueves", "viernes", "sabado", "domingo"}

// DayIndex maps a canonical day to its position in Days.
var DayIndex = func() map[string]int {
	m := make(map[string]int, len(Days))
	for i, d := range Days {
		m[d] = i
	}
	return m
}()

var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ü", "u",
)

// NormalizeDay lower-cases name, strips accents and reports whether the
// result is one of the seven canonical day keys.
func NormalizeDay(name string) (string, bool) {
	d := strings.ToLower(accentReplacer.Replace(strings.TrimSpace(name)))
	_, ok := DayIndex[d]
	return d, ok
}

// NormalizeWeek builds a weekly schedule with all seven canonical keys
// present, defaulting missing days to an empty slot list. Day names are
// normalized on the way in; entries under unrecognized names are dropped.
func NormalizeWeek(in map[string][]model.TimeSlot) map[string][]model.TimeSlot {
	out := make(map[string][]model.TimeSlot, len(Days))
	for _, d := range Days {
		out[d] = []model.TimeSlot{}
	}
	for name, slots := range in {
		d, ok := NormalizeDay(name)
		if !ok {
			continue
		}
		out[d] = append(out[d], slots...)
	}
	return out
}

// SortSlots orders slots by start time. Lexicographic order on the raw
// range string is sufficient because the format is zero-padded.
func SortSlots(slots []model.TimeSlot) {
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].TimeRange < slots[j].TimeRange
	})
}
