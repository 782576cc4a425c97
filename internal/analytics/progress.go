package analytics

import "github.com/schedax/schedax/internal/model"

// Progress is the derived completion state of an academic program.
type Progress struct {
	SystemType        string  `json:"systemType"`
	CompletionPercent float64 `json:"completionPercent"`
	RemainingSubjects int     `json:"remainingSubjects"`

	RemainingCredits *int `json:"remainingCredits,omitempty"`
	RemainingPeriods *int `json:"remainingPeriods,omitempty"`

	Economic *EconomicProgress `json:"economic,omitempty"`
}

// EconomicProgress is the optional cost sub-calculation, present only when
// the stats record carries a career cost.
type EconomicProgress struct {
	TotalCareerCost  float64 `json:"totalCareerCost"`
	PaidAmount       float64 `json:"paidAmount"`
	RemainingCost    float64 `json:"remainingCost"`
	PaymentPercent   float64 `json:"paymentPercent"`
	IsAutoCalculated bool    `json:"isAutoCalculated"`
}

// ComputeProgress derives completion percentage and remaining work from an
// AcademicStats record. Zero or absent totals yield 0%, never an error.
func ComputeProgress(stats model.AcademicStats) Progress {
	p := Progress{
		SystemType:        stats.SystemType,
		RemainingSubjects: clampRemaining(stats.TotalSubjects, stats.CompletedSubjects),
	}

	switch stats.SystemType {
	case model.SystemPeriods:
		total, done := deref(stats.TotalPeriods), deref(stats.CompletedPeriods)
		p.CompletionPercent = percent(done, total)
		remaining := clampRemaining(total, done)
		p.RemainingPeriods = &remaining
	default: // credits
		total, done := deref(stats.TotalCredits), deref(stats.CompletedCredits)
		p.CompletionPercent = percent(done, total)
		remaining := clampRemaining(total, done)
		p.RemainingCredits = &remaining
	}

	if stats.TotalCareerCost != nil {
		cost := *stats.TotalCareerCost
		paid := 0.0
		if stats.PaidAmount != nil {
			paid = *stats.PaidAmount
		}
		econ := &EconomicProgress{
			TotalCareerCost:  cost,
			PaidAmount:       paid,
			RemainingCost:    cost - paid,
			IsAutoCalculated: stats.IsAutoCalculated,
		}
		if cost > 0 {
			econ.PaymentPercent = round2(100 * paid / cost)
		}
		p.Economic = econ
	}
	return p
}

// SuggestedPeriodValue proposes percent-per-period for a periods-system
// record; 0 when the total is unset or zero.
func SuggestedPeriodValue(stats model.AcademicStats) float64 {
	total := deref(stats.TotalPeriods)
	if total <= 0 {
		return 0
	}
	return round2(100 / float64(total))
}

func percent(done, total int) float64 {
	if total <= 0 {
		return 0
	}
	return round2(100 * float64(done) / float64(total))
}

func clampRemaining(total, done int) int {
	if r := total - done; r > 0 {
		return r
	}
	return 0
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
