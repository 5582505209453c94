// Package types - Validation verdict shapes
package types

import "github.com/shopspring/decimal"

// ValidationBounds echoes the configured plausibility ranges a result was
// checked against.
type ValidationBounds struct {
	// RateRange is the accepted hourly rate range, for display.
	RateRange string `json:"rate_range"`

	// HoursPerKLOCRange is the accepted hours-per-KLOC range, for display.
	HoursPerKLOCRange string `json:"hours_per_kloc_range"`
}

// ValidationResult is the plausibility verdict on an estimate payload.
// Derived per call, never persisted.
type ValidationResult struct {
	// Valid is true when no errors were found; warnings do not fail an
	// estimate.
	Valid bool `json:"valid"`

	// TotalHours is the headline hours figure extracted from the payload.
	TotalHours float64 `json:"total_hours"`

	// TotalCost is the headline cost figure extracted from the payload.
	TotalCost decimal.Decimal `json:"total_cost"`

	// KLOC is the size the estimate was checked against.
	KLOC float64 `json:"kloc"`

	// HourlyRate is the effective hourly rate (supplied or derived).
	HourlyRate float64 `json:"hourly_rate"`

	// HoursPerKLOC is the derived productivity figure.
	HoursPerKLOC float64 `json:"hours_per_kloc"`

	// Warnings are plausible-but-unusual findings (rate out of range).
	Warnings []string `json:"warnings"`

	// Errors are implausibility findings (hours/KLOC out of range).
	Errors []string `json:"errors"`

	// Bounds echoes the configured ranges.
	Bounds ValidationBounds `json:"bounds"`
}
