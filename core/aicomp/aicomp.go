// Package aicomp compares pure-human, AI-assisted and hybrid development
// productivity for the same body of code.
package aicomp

import (
	"math"

	"github.com/shopspring/decimal"

	"devcost/core/tables"
	"devcost/internal/errors"
)

// Input parameterizes an efficiency comparison.
type Input struct {
	// LOC is the project size in lines of code. Must be positive.
	LOC int

	// HourlyRate converts hours to cost.
	HourlyRate float64

	// Complexity scales the productivity constants.
	Complexity float64
}

// DefaultInput returns an input with the documented defaults:
// hourly rate 35, complexity 1.0.
func DefaultInput(loc int) Input {
	return Input{LOC: loc, HourlyRate: 35, Complexity: 1.0}
}

// Branch is one productivity profile's hours and cost.
type Branch struct {
	// HoursPerKLOC is the productivity constant for the profile.
	HoursPerKLOC float64 `json:"hours_per_kloc"`

	// Hours is the total effort under this profile.
	Hours float64 `json:"hours"`

	// Cost is Hours × hourly rate.
	Cost decimal.Decimal `json:"cost"`
}

// Savings reports a branch's advantage over pure-human development.
type Savings struct {
	// Hours is the absolute hours saved.
	Hours float64 `json:"hours"`

	// HoursPercent is the relative hours saved.
	HoursPercent float64 `json:"hours_percent"`

	// Cost is the absolute cost saved.
	Cost decimal.Decimal `json:"cost"`

	// CostPercent is the relative cost saved.
	CostPercent float64 `json:"cost_percent"`
}

// Comparison is the three-way productivity comparison.
type Comparison struct {
	PureHuman  Branch `json:"pure_human"`
	AIAssisted Branch `json:"ai_assisted"`
	Hybrid     Branch `json:"hybrid"`

	// AIAssistedSavings and HybridSavings are relative to PureHuman.
	AIAssistedSavings Savings `json:"ai_assisted_savings"`
	HybridSavings     Savings `json:"hybrid_savings"`
}

// Comparator computes efficiency comparisons from the productivity tables.
type Comparator struct{}

// NewComparator creates a comparator.
func NewComparator() *Comparator {
	return &Comparator{}
}

// Compare computes hours and cost for each profile:
// hours = LOC/1000 × hrsPerKLOC × complexity.
func (c *Comparator) Compare(in Input) (*Comparison, error) {
	if in.LOC <= 0 {
		return nil, errors.Inputf("loc must be positive, got %d", in.LOC)
	}
	if in.Complexity <= 0 {
		return nil, errors.Inputf("complexity must be positive, got %g", in.Complexity)
	}

	human := c.branch(in, tables.ProfilePureHuman)
	assisted := c.branch(in, tables.ProfileAIAssisted)
	hybrid := c.branch(in, tables.ProfileHybrid)

	return &Comparison{
		PureHuman:         human,
		AIAssisted:        assisted,
		Hybrid:            hybrid,
		AIAssistedSavings: savings(human, assisted),
		HybridSavings:     savings(human, hybrid),
	}, nil
}

func (c *Comparator) branch(in Input, profile tables.AIProfile) Branch {
	perKLOC := tables.AIHoursPerKLOC(profile)
	hours := float64(in.LOC) / 1000.0 * perKLOC * in.Complexity
	cost := decimal.NewFromFloat(hours).
		Mul(decimal.NewFromFloat(in.HourlyRate)).
		Round(2)
	return Branch{
		HoursPerKLOC: perKLOC,
		Hours:        round1(hours),
		Cost:         cost,
	}
}

// savings derives the absolute and percentage deltas versus baseline.
func savings(baseline, branch Branch) Savings {
	s := Savings{
		Hours: round1(baseline.Hours - branch.Hours),
		Cost:  baseline.Cost.Sub(branch.Cost),
	}
	if baseline.Hours > 0 {
		s.HoursPercent = round1((baseline.Hours - branch.Hours) / baseline.Hours * 100)
	}
	if baseline.Cost.IsPositive() {
		s.CostPercent = round1(
			baseline.Cost.Sub(branch.Cost).
				Div(baseline.Cost).
				Mul(decimal.NewFromInt(100)).
				InexactFloat64())
	}
	return s
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
