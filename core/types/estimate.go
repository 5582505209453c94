// Package types - Estimate payload shapes shared by every methodology
package types

import "github.com/shopspring/decimal"

// Inputs echoes the project signals an estimate was computed from.
type Inputs struct {
	// LOC is the line count the estimate was based on.
	LOC int `json:"loc,omitempty"`

	// KLOC is the normalized size in thousands of lines.
	KLOC float64 `json:"kloc,omitempty"`

	// Complexity is the complexity factor applied to the formula.
	Complexity float64 `json:"complexity,omitempty"`

	// HourlyRate is the blended hourly rate used for the cost block.
	HourlyRate float64 `json:"hourly_rate,omitempty"`

	// DocWords is the documentation volume in words.
	DocWords int `json:"doc_words,omitempty"`

	// DocPages is the documentation volume in pages.
	DocPages float64 `json:"doc_pages,omitempty"`

	// TechDebtScore is the 0-15 codebase health score.
	TechDebtScore int `json:"tech_debt_score,omitempty"`

	// TeamExperience is the team experience level.
	TeamExperience string `json:"team_experience,omitempty"`
}

// HoursBlock is the effort estimate in hours. A banded estimate fills
// Min/Typical/Max; a statistical one fills Expected.
type HoursBlock struct {
	Min      float64 `json:"min,omitempty"`
	Typical  float64 `json:"typical,omitempty"`
	Max      float64 `json:"max,omitempty"`
	Expected float64 `json:"expected,omitempty"`
}

// Total returns the headline hours figure, preferring the typical value
// over the statistical expectation.
func (h *HoursBlock) Total() float64 {
	if h == nil {
		return 0
	}
	if h.Typical > 0 {
		return h.Typical
	}
	return h.Expected
}

// Range is a min/max currency pair.
type Range struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// CostBlock is the currency view of an estimate.
type CostBlock struct {
	// Currency is the ISO currency code.
	Currency string `json:"currency"`

	// Expected is the headline cost figure.
	Expected decimal.Decimal `json:"expected"`

	// Range68 is the cost range at the 68% confidence band, when the
	// estimate carries one.
	Range68 *Range `json:"range_68,omitempty"`

	// Range95 is the cost range at the 95% confidence band.
	Range95 *Range `json:"range_95,omitempty"`
}

// Total returns the headline cost figure.
func (c *CostBlock) Total() (decimal.Decimal, bool) {
	if c == nil {
		return decimal.Decimal{}, false
	}
	return c.Expected, true
}

// Band is a min/max hours pair for a confidence interval.
type Band struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// PertResult is a three-point statistical estimate over hours.
type PertResult struct {
	// Expected is the PERT weighted mean (O + 4M + P) / 6.
	Expected float64 `json:"expected"`

	// StdDev is (P - O) / 6.
	StdDev float64 `json:"std_dev"`

	// Confidence68/95/99 are the ±1σ/2σ/3σ bands, floored at zero.
	Confidence68 Band `json:"confidence_68"`
	Confidence95 Band `json:"confidence_95"`
	Confidence99 Band `json:"confidence_99"`
}

// Payload is the uniform estimate shape produced by every methodology and
// consumed by the validation gate regardless of producer.
type Payload struct {
	// Methodology is the producing methodology id.
	Methodology string `json:"methodology"`

	// Name is the methodology display name.
	Name string `json:"name,omitempty"`

	// Formula describes the calculation in human terms.
	Formula string `json:"formula,omitempty"`

	// Inputs echoes the signals the estimate came from.
	Inputs Inputs `json:"inputs"`

	// EffortPM is effort in person-months (COCOMO variants).
	EffortPM float64 `json:"effort_pm,omitempty"`

	// ScheduleMonths is calendar duration (COCOMO variants).
	ScheduleMonths float64 `json:"schedule_months,omitempty"`

	// TeamSize is the implied team size (COCOMO variants).
	TeamSize float64 `json:"team_size,omitempty"`

	// ProjectType is the Classic COCOMO project type actually used.
	ProjectType string `json:"project_type,omitempty"`

	// Fallback notes a documented lenient fallback that was applied,
	// e.g. an unrecognized project type resolving to semi-detached.
	Fallback string `json:"fallback,omitempty"`

	// Hours is the effort estimate.
	Hours *HoursBlock `json:"hours,omitempty"`

	// Cost is the currency view of the estimate.
	Cost *CostBlock `json:"cost,omitempty"`

	// PERT carries the statistical detail when the payload came from a
	// three-point analysis.
	PERT *PertResult `json:"pert,omitempty"`

	// Error carries a per-methodology failure inside a batch result.
	Error string `json:"error,omitempty"`

	// Validation is attached by the validation gate.
	Validation *ValidationResult `json:"validation,omitempty"`
}
