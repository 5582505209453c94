// Package estimator - Composite reporting operations
//
// These operations combine the core estimators into the richer payloads a
// host application or report renderer consumes: the standard production
// estimate, the full project estimate, and actual-vs-estimate comparison.
package estimator

import (
	"math"

	"github.com/shopspring/decimal"

	"devcost/core/cocomo"
	"devcost/core/regional"
	"devcost/core/tables"
	"devcost/core/types"
)

// StandardInput parameterizes the standard production estimate.
type StandardInput struct {
	// Modern is the underlying COCOMO input.
	Modern cocomo.ModernInput

	// Region selects the local rate profile for display.
	Region string
}

// StandardResult is the standard production estimate: Modern COCOMO plus
// activity breakdown, regional costs and reporting context.
type StandardResult struct {
	// StandardMethod names the fixed methodology behind this estimate.
	StandardMethod string `json:"standard_method"`

	// Estimate is the validated COCOMO payload.
	Estimate *types.Payload `json:"estimate"`

	// HoursBreakdown splits typical hours across delivery activities.
	HoursBreakdown map[string]float64 `json:"hours_breakdown"`

	// CostByRegion prices the typical hours in every region.
	CostByRegion map[string]regional.RegionCost `json:"cost_by_region"`

	// Complexity is the qualitative size tier.
	Complexity string `json:"complexity"`

	// TechDebtMultiplier echoes the effort multiplier applied.
	TechDebtMultiplier float64 `json:"tech_debt_multiplier"`
}

// standardMethod names the fixed production methodology.
const standardMethod = "COCOMO II (Modern) with tech-debt and experience EAF"

// Standard computes the production estimate: Modern COCOMO with activity
// breakdown and all-region costs.
func (s *Service) Standard(in StandardInput) (*StandardResult, error) {
	payload, err := s.Modern(in.Modern)
	if err != nil {
		return nil, err
	}

	hours := payload.Hours.Typical
	regions, err := s.converter.AllRegions(hours)
	if err != nil {
		return nil, err
	}

	breakdown := make(map[string]float64)
	for activity, ratio := range tables.ActivityRatios() {
		breakdown[activity] = math.Round(hours * ratio.Typical)
	}

	return &StandardResult{
		StandardMethod:     standardMethod,
		Estimate:           payload,
		HoursBreakdown:     breakdown,
		CostByRegion:       regions.Regions,
		Complexity:         tables.ComplexityFor(in.Modern.LOC),
		TechDebtMultiplier: tables.TechDebtMultiplier(in.Modern.TechDebtScore),
	}, nil
}

// FullInput parameterizes the full project estimate, fed by external scan
// and quality analyzers.
type FullInput struct {
	// LOC comes from the repository scan.
	LOC int

	// TechDebtScore comes from the quality engine (0-15; clamped).
	TechDebtScore int

	// TeamExperience is the assumed team level.
	TeamExperience tables.TeamExperience

	// Region selects the local cost profile.
	Region string
}

// FullResult is the complete project valuation: local and normalized
// costs, IP value, maintenance and timeline.
type FullResult struct {
	// StandardMethod names the fixed methodology behind this estimate.
	StandardMethod string `json:"standard_method"`

	// Estimate is the validated COCOMO payload.
	Estimate *types.Payload `json:"estimate"`

	// DevCostLocal prices the build in the requested region.
	DevCostLocal regional.RegionCost `json:"dev_cost_local"`

	// Region echoes the requested region.
	Region string `json:"region"`

	// DevCostUSD normalizes the build cost at US mid-level rates.
	DevCostUSD decimal.Decimal `json:"dev_cost_usd"`

	// IPValueUSD values the codebase as intellectual property.
	IPValueUSD decimal.Decimal `json:"ip_value_usd"`

	// MaintenanceCostMonthly is the assumed monthly upkeep cost.
	MaintenanceCostMonthly decimal.Decimal `json:"maintenance_cost_monthly"`

	// TimelineWeeks converts the schedule to calendar weeks.
	TimelineWeeks float64 `json:"timeline_weeks"`

	// TeamSize is the recommended team size.
	TeamSize float64 `json:"team_size"`

	// Assumptions documents the normalization choices.
	Assumptions []string `json:"assumptions"`
}

// Full computes the complete project valuation from scan and quality
// signals.
func (s *Service) Full(in FullInput) (*FullResult, error) {
	modern := cocomo.ModernInput{
		LOC:            in.LOC,
		TechDebtScore:  clampScore(in.TechDebtScore),
		TeamExperience: in.TeamExperience,
	}
	payload, err := s.Modern(modern)
	if err != nil {
		return nil, err
	}

	hours := payload.Hours.Typical
	local, err := s.converter.ForRegion(in.Region, hours)
	if err != nil {
		return nil, err
	}
	usCost, err := s.converter.ForRegion("us", hours)
	if err != nil {
		return nil, err
	}

	devCostUSD := usCost.Typical
	maintenanceMonthly := devCostUSD.
		Mul(decimal.NewFromFloat(tables.MaintenanceRate)).
		Div(decimal.NewFromInt(12)).
		Round(2)
	ipValue := devCostUSD.Mul(decimal.NewFromFloat(tables.IPMultiplier)).Round(0)

	return &FullResult{
		StandardMethod:         standardMethod,
		Estimate:               payload,
		DevCostLocal:           local,
		Region:                 regionOrDefault(in.Region),
		DevCostUSD:             devCostUSD,
		IPValueUSD:             ipValue,
		MaintenanceCostMonthly: maintenanceMonthly,
		TimelineWeeks:          round1(payload.ScheduleMonths * tables.WeeksPerMonth),
		TeamSize:               payload.TeamSize,
		Assumptions: []string{
			"USD cost uses US regional rates for normalization.",
			"Maintenance cost assumes 20% annual rate of typical dev cost.",
			"IP value uses 3x multiplier on normalized dev cost.",
		},
	}, nil
}

// CompareVerdict classifies an actual cost against the estimate.
type CompareVerdict string

const (
	VerdictOverpaid    CompareVerdict = "overpaid"
	VerdictUnderpaid   CompareVerdict = "underpaid"
	VerdictWithinRange CompareVerdict = "within_range"
)

// CompareInput parameterizes an actual-vs-estimate comparison.
type CompareInput struct {
	// ActualCost is the cost being evaluated.
	ActualCost float64

	// LOC is the delivered size the estimate is derived from.
	LOC int

	// Region selects the rate profile pricing the estimate.
	Region string

	// ActualHours, when known, adds the effective actual rate to the
	// comparison. Optional.
	ActualHours float64
}

// CompareResult is the actual-vs-estimate analysis.
type CompareResult struct {
	// ActualCost is the cost being evaluated.
	ActualCost decimal.Decimal `json:"actual_cost"`

	// EstimatedCost is the COCOMO estimate at the region's typical rate.
	EstimatedCost decimal.Decimal `json:"estimated_cost"`

	// EstimatedHours is the typical-hours figure behind the estimate.
	EstimatedHours float64 `json:"estimated_hours"`

	// ActualRatePerHour is actual cost over actual hours, when hours were
	// supplied.
	ActualRatePerHour decimal.Decimal `json:"actual_rate_per_hour,omitempty"`

	// DeviationPercent is (actual − estimated) / estimated × 100.
	DeviationPercent float64 `json:"deviation_percent"`

	// Verdict classifies the deviation at the ±20% threshold.
	Verdict CompareVerdict `json:"verdict"`

	// Advice is the recommended follow-up.
	Advice string `json:"advice"`
}

// CompareCost evaluates an actual cost against the COCOMO estimate at a
// region's typical rate, with a ±20% acceptance band.
func (s *Service) CompareCost(in CompareInput) (*CompareResult, error) {
	payload, err := s.engine.Modern(cocomo.DefaultModernInput(in.LOC))
	if err != nil {
		return nil, err
	}

	hours := payload.Hours.Typical
	rates := tables.RatesFor(in.Region)
	estimated := decimal.NewFromFloat(hours).
		Mul(decimal.NewFromFloat(rates.Rates.Middle)).
		Round(0)

	result := &CompareResult{
		ActualCost:     decimal.NewFromFloat(in.ActualCost).Round(2),
		EstimatedCost:  estimated,
		EstimatedHours: hours,
	}
	if in.ActualHours > 0 {
		result.ActualRatePerHour = decimal.NewFromFloat(in.ActualCost).
			Div(decimal.NewFromFloat(in.ActualHours)).
			Round(2)
	}

	if estimated.IsPositive() {
		deviation := decimal.NewFromFloat(in.ActualCost).
			Sub(estimated).
			Div(estimated).
			Mul(decimal.NewFromInt(100)).
			InexactFloat64()
		result.DeviationPercent = round1(deviation)
	}

	switch {
	case result.DeviationPercent > 20:
		result.Verdict = VerdictOverpaid
		result.Advice = "Cost significantly exceeds estimate. Review scope or negotiate."
	case result.DeviationPercent < -20:
		result.Verdict = VerdictUnderpaid
		result.Advice = "Cost below estimate. Verify quality and completeness."
	default:
		result.Verdict = VerdictWithinRange
		result.Advice = "Cost is within acceptable ±20% range."
	}
	return result, nil
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 15 {
		return 15
	}
	return score
}

func regionOrDefault(region string) string {
	if region == "" {
		return tables.DefaultRegion
	}
	return tables.RatesFor(region).Region
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
