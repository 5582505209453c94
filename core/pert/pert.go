// Package pert implements PERT three-point statistical estimation with
// confidence intervals, composable with any hours estimate.
package pert

import (
	"math"

	"github.com/shopspring/decimal"

	"devcost/core/types"
	"devcost/internal/errors"
)

// Input is a three-point hours estimate. The ordering invariant
// Optimistic <= MostLikely <= Pessimistic is enforced, never repaired.
type Input struct {
	Optimistic  float64
	MostLikely  float64
	Pessimistic float64
}

// Analyzer computes three-point estimates.
type Analyzer struct{}

// NewAnalyzer creates a PERT analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze computes the PERT weighted mean and ±1σ/2σ/3σ confidence bands,
// each clamped at a non-negative lower bound.
func (a *Analyzer) Analyze(in Input) (*types.PertResult, error) {
	if in.Optimistic < 0 {
		return nil, errors.Inputf("optimistic hours must be non-negative, got %g", in.Optimistic)
	}
	if in.Optimistic > in.MostLikely || in.MostLikely > in.Pessimistic {
		return nil, errors.Inputf(
			"three-point ordering violated: optimistic (%g) <= most likely (%g) <= pessimistic (%g) required",
			in.Optimistic, in.MostLikely, in.Pessimistic)
	}

	expected := (in.Optimistic + 4*in.MostLikely + in.Pessimistic) / 6
	stdDev := (in.Pessimistic - in.Optimistic) / 6

	return &types.PertResult{
		Expected:     round2(expected),
		StdDev:       round2(stdDev),
		Confidence68: band(expected, stdDev, 1),
		Confidence95: band(expected, stdDev, 2),
		Confidence99: band(expected, stdDev, 3),
	}, nil
}

// AttachCost converts a PERT hours result to currency at an hourly rate,
// rounded to 2 decimal places.
func AttachCost(result *types.PertResult, hourlyRate float64, currency string) *types.CostBlock {
	rate := decimal.NewFromFloat(hourlyRate)
	toCost := func(hours float64) decimal.Decimal {
		return decimal.NewFromFloat(hours).Mul(rate).Round(2)
	}
	return &types.CostBlock{
		Currency: currency,
		Expected: toCost(result.Expected),
		Range68: &types.Range{
			Min: toCost(result.Confidence68.Min),
			Max: toCost(result.Confidence68.Max),
		},
		Range95: &types.Range{
			Min: toCost(result.Confidence95.Min),
			Max: toCost(result.Confidence95.Max),
		},
	}
}

// band derives the expected ± k·σ interval, floored at zero.
func band(expected, stdDev float64, k float64) types.Band {
	return types.Band{
		Min: round2(math.Max(expected-k*stdDev, 0)),
		Max: round2(expected + k*stdDev),
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
