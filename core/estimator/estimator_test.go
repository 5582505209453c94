package estimator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devcost/core/cocomo"
	"devcost/core/methodology"
	"devcost/core/pert"
	"devcost/core/tables"
	"devcost/core/validate"
)

func newService() *Service {
	return NewDefault(validate.DefaultBounds())
}

func TestStandardEstimate(t *testing.T) {
	svc := newService()

	result, err := svc.Standard(StandardInput{
		Modern: cocomo.DefaultModernInput(10000),
		Region: "eu",
	})
	require.NoError(t, err)

	assert.Equal(t, standardMethod, result.StandardMethod)
	assert.Equal(t, "small", result.Complexity)
	assert.Equal(t, 1.0, result.TechDebtMultiplier)
	require.NotNil(t, result.Estimate.Validation)
	assert.True(t, result.Estimate.Validation.Valid)

	// Breakdown covers every activity and re-sums to the typical hours
	// within per-activity rounding.
	hours := result.Estimate.Hours.Typical
	sum := 0.0
	for activity := range tables.ActivityRatios() {
		part, ok := result.HoursBreakdown[activity]
		require.True(t, ok, "missing activity %s", activity)
		sum += part
	}
	assert.InDelta(t, hours, sum, float64(len(result.HoursBreakdown)))

	assert.Len(t, result.CostByRegion, len(tables.RegionIDs()))
}

func TestFullEstimate(t *testing.T) {
	svc := newService()

	result, err := svc.Full(FullInput{
		LOC:            10000,
		TechDebtScore:  10,
		TeamExperience: tables.ExperienceNominal,
		Region:         "ua",
	})
	require.NoError(t, err)

	// 10 KLOC at nominal multipliers: 3.54 PM, 538 typical hours.
	assert.Equal(t, 538.0, result.Estimate.Hours.Typical)
	assert.Equal(t, "ua", result.Region)

	// Local cost at UA middle rate $25/hr, normalized at US $75/hr.
	assert.Equal(t, "13450", result.DevCostLocal.Typical.String())
	assert.Equal(t, "40350", result.DevCostUSD.String())

	// IP value is 3x the normalized cost; maintenance is 20%/yr monthly.
	assert.Equal(t, "121050", result.IPValueUSD.String())
	assert.Equal(t, "672.5", result.MaintenanceCostMonthly.String())

	// 4.0 schedule months at 4.3 weeks each.
	assert.Equal(t, 17.2, result.TimelineWeeks)
	assert.NotEmpty(t, result.Assumptions)
}

func TestFullEstimateClampsScore(t *testing.T) {
	svc := newService()

	clamped, err := svc.Full(FullInput{LOC: 10000, TechDebtScore: 99, Region: "us"})
	require.NoError(t, err)
	top, err := svc.Full(FullInput{LOC: 10000, TechDebtScore: 15, Region: "us"})
	require.NoError(t, err)

	assert.Equal(t, top.Estimate.Hours.Typical, clamped.Estimate.Hours.Typical)
}

func TestFullEstimateDefaultRegion(t *testing.T) {
	svc := newService()

	result, err := svc.Full(FullInput{LOC: 10000, TechDebtScore: 10})
	require.NoError(t, err)
	assert.Equal(t, tables.DefaultRegion, result.Region)
}

func TestCompareCostVerdicts(t *testing.T) {
	svc := newService()

	// 10 KLOC at default inputs is 538 typical hours; US middle rate
	// $75/hr prices that at 40350.
	cases := []struct {
		name    string
		actual  float64
		verdict CompareVerdict
	}{
		{"exact match", 40350, VerdictWithinRange},
		{"at plus twenty percent", 48420, VerdictWithinRange},
		{"overpaid", 60000, VerdictOverpaid},
		{"underpaid", 30000, VerdictUnderpaid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := svc.CompareCost(CompareInput{
				ActualCost: tc.actual,
				LOC:        10000,
				Region:     "us",
			})
			require.NoError(t, err)
			assert.Equal(t, "40350", result.EstimatedCost.String())
			assert.Equal(t, 538.0, result.EstimatedHours)
			assert.Equal(t, tc.verdict, result.Verdict)
			assert.NotEmpty(t, result.Advice)
		})
	}
}

func TestCompareCostDeviation(t *testing.T) {
	svc := newService()

	result, err := svc.CompareCost(CompareInput{ActualCost: 60000, LOC: 10000, Region: "us"})
	require.NoError(t, err)
	// (60000 - 40350) / 40350 × 100 = 48.7%.
	assert.Equal(t, 48.7, result.DeviationPercent)
}

func TestCompareCostActualRate(t *testing.T) {
	svc := newService()

	result, err := svc.CompareCost(CompareInput{
		ActualCost:  45000,
		LOC:         10000,
		Region:      "us",
		ActualHours: 600,
	})
	require.NoError(t, err)
	assert.Equal(t, "75", result.ActualRatePerHour.String())
}

func TestPertThroughGate(t *testing.T) {
	svc := newService()

	payload, err := svc.Pert(pert.Input{Optimistic: 80, MostLikely: 120, Pessimistic: 200}, 35)
	require.NoError(t, err)

	assert.Equal(t, "pert", payload.Methodology)
	assert.Equal(t, 126.67, payload.Hours.Expected)
	require.NotNil(t, payload.PERT)
	require.NotNil(t, payload.Cost)
	assert.Equal(t, "4433.45", payload.Cost.Expected.String())
	require.NotNil(t, payload.Validation)
	assert.True(t, payload.Validation.Valid)
}

func TestPertWithoutRateSkipsCost(t *testing.T) {
	svc := newService()

	payload, err := svc.Pert(pert.Input{Optimistic: 80, MostLikely: 120, Pessimistic: 200}, 0)
	require.NoError(t, err)
	assert.Nil(t, payload.Cost)
}

func TestMethodologyDocOnlyPassesStrictGate(t *testing.T) {
	svc := newService()

	// No code size: the hours/KLOC check must be skipped, not run against
	// the tiny-LOC floor.
	payload, err := svc.Methodology("ieee", methodology.Input{
		DocPages:   100,
		Complexity: 1,
		HourlyRate: 35,
	})
	require.NoError(t, err)
	assert.Equal(t, 400.0, payload.Hours.Typical)
	require.NotNil(t, payload.Validation)
	assert.True(t, payload.Validation.Valid)
	assert.Equal(t, 0.0, payload.Validation.HoursPerKLOC)
}

func TestComprehensiveAttachesValidationPerResult(t *testing.T) {
	svc := newService()

	batch, err := svc.Comprehensive(methodology.DefaultInput(10000), "software")
	require.NoError(t, err)
	require.NotEmpty(t, batch.Results)

	for _, payload := range batch.Results {
		assert.NotNil(t, payload.Validation, "methodology %s", payload.Methodology)
	}
}

func TestComprehensiveNeverStrictReplaces(t *testing.T) {
	bounds := validate.DefaultBounds()
	bounds.Strict = true
	svc := NewDefault(bounds)

	// Strict mode replaces single estimates, never batch members: callers
	// always get the full spread to inspect.
	batch, err := svc.Comprehensive(methodology.DefaultInput(200), "software")
	require.NoError(t, err)
	assert.NotEmpty(t, batch.Results)
}

func TestModernStrictGateRejectsImplausible(t *testing.T) {
	bounds := validate.DefaultBounds()
	bounds.HoursPerKLOCMin = 100
	bounds.HoursPerKLOCMax = 101
	svc := NewDefault(bounds)

	_, err := svc.Modern(cocomo.DefaultModernInput(10000))
	require.Error(t, err)
}

func TestMethodologiesListsAllDefinitions(t *testing.T) {
	svc := newService()
	assert.Len(t, svc.Methodologies(), len(tables.MethodologyIDs()))
}
