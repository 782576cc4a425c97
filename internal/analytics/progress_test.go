package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedax/schedax/internal/model"
)

func intPtr(v int) *int             { return &v }
func floatPtr(v float64) *float64   { return &v }

func TestComputeProgressCredits(t *testing.T) {
	p := ComputeProgress(model.AcademicStats{
		SystemType:        model.SystemCredits,
		TotalSubjects:     40,
		CompletedSubjects: 15,
		TotalCredits:      intPtr(200),
		CompletedCredits:  intPtr(50),
	})
	assert.Equal(t, 25.0, p.CompletionPercent)
	require.NotNil(t, p.RemainingCredits)
	assert.Equal(t, 150, *p.RemainingCredits)
	assert.Equal(t, 25, p.RemainingSubjects)
	assert.Nil(t, p.RemainingPeriods)
}

func TestComputeProgressPeriods(t *testing.T) {
	p := ComputeProgress(model.AcademicStats{
		SystemType:       model.SystemPeriods,
		TotalPeriods:     intPtr(10),
		CompletedPeriods: intPtr(4),
	})
	assert.Equal(t, 40.0, p.CompletionPercent)
	require.NotNil(t, p.RemainingPeriods)
	assert.Equal(t, 6, *p.RemainingPeriods)
	assert.Nil(t, p.RemainingCredits)
}

func TestComputeProgressZeroGuard(t *testing.T) {
	p := ComputeProgress(model.AcademicStats{
		SystemType:       model.SystemCredits,
		TotalCredits:     intPtr(0),
		CompletedCredits: intPtr(0),
	})
	assert.Equal(t, 0.0, p.CompletionPercent)

	// Absent totals behave the same as zero.
	p = ComputeProgress(model.AcademicStats{SystemType: model.SystemPeriods})
	assert.Equal(t, 0.0, p.CompletionPercent)
}

func TestComputeProgressClampsOvershoot(t *testing.T) {
	p := ComputeProgress(model.AcademicStats{
		SystemType:        model.SystemCredits,
		TotalSubjects:     10,
		CompletedSubjects: 12,
		TotalCredits:      intPtr(100),
		CompletedCredits:  intPtr(120),
	})
	assert.Equal(t, 0, p.RemainingSubjects)
	assert.Equal(t, 0, *p.RemainingCredits)
}

func TestComputeProgressEconomic(t *testing.T) {
	p := ComputeProgress(model.AcademicStats{
		SystemType:       model.SystemCredits,
		TotalCareerCost:  floatPtr(400000),
		PaidAmount:       floatPtr(100000),
		IsAutoCalculated: true,
	})
	require.NotNil(t, p.Economic)
	assert.Equal(t, 300000.0, p.Economic.RemainingCost)
	assert.Equal(t, 25.0, p.Economic.PaymentPercent)
	assert.True(t, p.Economic.IsAutoCalculated)
}

func TestComputeProgressEconomicZeroCost(t *testing.T) {
	p := ComputeProgress(model.AcademicStats{
		SystemType:      model.SystemCredits,
		TotalCareerCost: floatPtr(0),
		PaidAmount:      floatPtr(100),
	})
	require.NotNil(t, p.Economic)
	assert.Equal(t, 0.0, p.Economic.PaymentPercent)
}

func TestComputeProgressNoEconomicWithoutCost(t *testing.T) {
	p := ComputeProgress(model.AcademicStats{SystemType: model.SystemCredits})
	assert.Nil(t, p.Economic)
}

func TestSuggestedPeriodValue(t *testing.T) {
	assert.Equal(t, 12.5, SuggestedPeriodValue(model.AcademicStats{TotalPeriods: intPtr(8)}))
	assert.Equal(t, 33.33, SuggestedPeriodValue(model.AcademicStats{TotalPeriods: intPtr(3)}))
	assert.Equal(t, 0.0, SuggestedPeriodValue(model.AcademicStats{}))
	assert.Equal(t, 0.0, SuggestedPeriodValue(model.AcademicStats{TotalPeriods: intPtr(0)}))
}
