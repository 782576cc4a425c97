package analytics

import "github.com/schedax/schedax/internal/model"

// CountEventsByType builds the event-type histogram. Unknown or missing
// types bucket under "other".
func CountEventsByType(events []model.Event) map[model.EventType]int {
	counts := make(map[model.EventType]int)
	for _, e := range events {
		counts[e.Type.Normalize()]++
	}
	return counts
}
