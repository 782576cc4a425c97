package model

// TimeSlot is one recurring weekly class occurrence within a day.
// TimeRange uses the "HH:MM - HH:MM" 24h format; Room may be a placeholder
// such as "TBD".
type TimeSlot struct {
	TimeRange string `json:"timeRange"`
	Room      string `json:"room"`
}

// Subject is a course with a professor, credit count and weekly time slots.
// WeeklySchedule maps canonical day names (lunes..domingo, lowercase, no
// accents) to the slots taught that day. All seven keys are present after
// normalization; slots within a day carry no ordering guarantee.
type Subject struct {
	ID             string                `json:"id"`
	Name           string                `json:"name" validate:"required"`
	Professor      string                `json:"professor" validate:"required"`
	Credits        int                   `json:"credits" validate:"min=0"`
	WeeklySchedule map[string][]TimeSlot `json:"weeklySchedule"`
}

// Schedule is a named collection of subjects belonging to one user for one
// term. After creation it mutates only by toggling Completed or full delete.
type Schedule struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	CreatedDate string    `json:"createdDate"`
	CreatedTime string    `json:"createdTime"`
	Institution string    `json:"institution"`
	Subjects    []Subject `json:"subjects" validate:"dive"`
	Completed   bool      `json:"completed"`
}

// EventType classifies an institutional event.
type EventType string

const (
	EventExposition   EventType = "exposition"
	EventProject      EventType = "project"
	EventExam         EventType = "exam"
	EventPresentation EventType = "presentation"
	EventWorkshop     EventType = "workshop"
	EventConference   EventType = "conference"
	EventDeadline     EventType = "deadline"
	EventMeeting      EventType = "meeting"
	EventOther        EventType = "other"
)

// EventTypes lists all known event types.
var EventTypes = []EventType{
	EventExposition, EventProject, EventExam, EventPresentation,
	EventWorkshop, EventConference, EventDeadline, EventMeeting, EventOther,
}

// Normalize maps unknown or empty types to EventOther.
func (t EventType) Normalize() EventType {
	for _, known := range EventTypes {
		if t == known {
			return known
		}
	}
	return EventOther
}

// Event is an institutional event keyed by date for calendar lookup.
// Independent of schedules and subjects.
type Event struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Date        string    `json:"date" validate:"required"`
	Time        string    `json:"time" validate:"required"`
	Type        EventType `json:"type"`
	Location    string    `json:"location"`
}

// Academic measurement systems.
const (
	SystemCredits = "credits"
	SystemPeriods = "periods"
)

// Academic period division types.
const (
	DivisionSemestres     = "semestres"
	DivisionCuatrimestres = "cuatrimestres"
	DivisionTrimestres    = "trimestres"
	DivisionAnuales       = "anuales"
)

// AcademicStats is the per-user configuration of how the program is measured
// plus completion counts. One record per user, last write wins. When
// SystemType is credits the credit fields are authoritative for progress;
// when periods, the period fields are. Subject counts are tracked regardless.
type AcademicStats struct {
	UserID            string `json:"userId"`
	SystemType        string `json:"systemType" validate:"required,oneof=credits periods"`
	DivisionType      string `json:"divisionType" validate:"omitempty,oneof=semestres cuatrimestres trimestres anuales"`
	TotalSubjects     int    `json:"totalSubjects"`
	CompletedSubjects int    `json:"completedSubjects"`

	TotalCredits     *int `json:"totalCredits,omitempty"`
	CompletedCredits *int `json:"completedCredits,omitempty"`

	TotalPeriods     *int     `json:"totalPeriods,omitempty"`
	CompletedPeriods *int     `json:"completedPeriods,omitempty"`
	PeriodValue      *float64 `json:"periodValue,omitempty"`
	CurrentPeriod    *int     `json:"currentPeriod,omitempty"`

	// Economic fields, all optional. TotalCareerCost auto-derives from the
	// cost factors while IsAutoCalculated is true; a manual edit flips the
	// flag and freezes the value.
	CostPerCredit    *float64 `json:"costPerCredit,omitempty"`
	CostPerPeriod    *float64 `json:"costPerPeriod,omitempty"`
	TotalCareerCost  *float64 `json:"totalCareerCost,omitempty"`
	PaidAmount       *float64 `json:"paidAmount,omitempty"`
	IsAutoCalculated bool     `json:"isAutoCalculated"`
}

// UserProfile holds display-context fields consumed by the presentation
// layer. The core stores and returns it untransformed.
type UserProfile struct {
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Institution string `json:"institution"`
	Career      string `json:"career"`
}
