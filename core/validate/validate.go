// Package validate is the plausibility gate every estimate passes through
// before it is trusted. It derives hours/KLOC and the effective hourly rate
// from a payload and checks them against configured bounds.
package validate

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"devcost/core/types"
	"devcost/internal/errors"
)

// Bounds configures the gate. Constructed once at startup and passed in;
// nothing reads the environment inside the calculation path.
type Bounds struct {
	// Strict replaces a failing estimate with an error response instead
	// of returning the estimate with findings attached.
	Strict bool `json:"strict" yaml:"strict"`

	// RateMin and RateMax bound the effective hourly rate. Breaches are
	// warnings: plausible but unusual.
	RateMin float64 `json:"rate_min" yaml:"rate_min"`
	RateMax float64 `json:"rate_max" yaml:"rate_max"`

	// HoursPerKLOCMin and HoursPerKLOCMax bound the derived productivity.
	// Breaches are errors: the estimate is implausible.
	HoursPerKLOCMin float64 `json:"hours_per_kloc_min" yaml:"hours_per_kloc_min"`
	HoursPerKLOCMax float64 `json:"hours_per_kloc_max" yaml:"hours_per_kloc_max"`
}

// DefaultBounds returns the documented defaults: strict on, rate $5-$300/hr,
// 2-200 hours per KLOC.
func DefaultBounds() Bounds {
	return Bounds{
		Strict:          true,
		RateMin:         5,
		RateMax:         300,
		HoursPerKLOCMin: 2,
		HoursPerKLOCMax: 200,
	}
}

// BoundsFromEnv overlays environment overrides on a base configuration.
// Recognized variables: STRICT_ESTIMATION, RATE_MIN, RATE_MAX,
// HOURS_PER_KLOC_MIN, HOURS_PER_KLOC_MAX.
func BoundsFromEnv(base Bounds) Bounds {
	if v, ok := os.LookupEnv("STRICT_ESTIMATION"); ok {
		switch strings.ToLower(v) {
		case "1", "true", "yes":
			base.Strict = true
		default:
			base.Strict = false
		}
	}
	overlay := func(name string, dst *float64) {
		if v, ok := os.LookupEnv(name); ok {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = f
			}
		}
	}
	overlay("RATE_MIN", &base.RateMin)
	overlay("RATE_MAX", &base.RateMax)
	overlay("HOURS_PER_KLOC_MIN", &base.HoursPerKLOCMin)
	overlay("HOURS_PER_KLOC_MAX", &base.HoursPerKLOCMax)
	return base
}

// display echoes the configured ranges the way reports show them.
func (b Bounds) display() types.ValidationBounds {
	return types.ValidationBounds{
		RateRange:         fmt.Sprintf("$%g-$%g/hr", b.RateMin, b.RateMax),
		HoursPerKLOCRange: fmt.Sprintf("%g-%g", b.HoursPerKLOCMin, b.HoursPerKLOCMax),
	}
}

// Gate bounds-checks estimate payloads.
type Gate struct {
	bounds Bounds
}

// NewGate creates a gate with explicit bounds.
func NewGate(bounds Bounds) *Gate {
	return &Gate{bounds: bounds}
}

// Bounds returns the gate's configuration.
func (g *Gate) Bounds() Bounds {
	return g.bounds
}

// Check derives the validation result for a payload. hourlyRate may be
// zero, in which case the effective rate is derived from cost over hours.
func (g *Gate) Check(payload *types.Payload, klocSize, hourlyRate float64) *types.ValidationResult {
	result := &types.ValidationResult{
		Valid:    true,
		KLOC:     klocSize,
		Warnings: []string{},
		Errors:   []string{},
		Bounds:   g.bounds.display(),
	}

	result.TotalHours = payload.Hours.Total()
	if cost, ok := payload.Cost.Total(); ok {
		result.TotalCost = cost
	}

	result.HourlyRate = hourlyRate
	if result.HourlyRate == 0 && result.TotalHours > 0 {
		result.HourlyRate = result.TotalCost.InexactFloat64() / result.TotalHours
	}

	if klocSize > 0 && result.TotalHours > 0 {
		result.HoursPerKLOC = result.TotalHours / klocSize
		if result.HoursPerKLOC < g.bounds.HoursPerKLOCMin {
			result.Errors = append(result.Errors, fmt.Sprintf(
				"hours/KLOC (%.1f) below minimum (%g)", result.HoursPerKLOC, g.bounds.HoursPerKLOCMin))
		} else if result.HoursPerKLOC > g.bounds.HoursPerKLOCMax {
			result.Errors = append(result.Errors, fmt.Sprintf(
				"hours/KLOC (%.1f) above maximum (%g)", result.HoursPerKLOC, g.bounds.HoursPerKLOCMax))
		}
	}

	if result.HourlyRate > 0 {
		if result.HourlyRate < g.bounds.RateMin {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"rate $%.2f/hr below minimum $%g", result.HourlyRate, g.bounds.RateMin))
		} else if result.HourlyRate > g.bounds.RateMax {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"rate $%.2f/hr above maximum $%g", result.HourlyRate, g.bounds.RateMax))
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}

// Apply attaches the validation result to the payload. In strict mode a
// failing payload is replaced by a validation error carrying the result;
// otherwise the payload is always returned for the caller to inspect.
func (g *Gate) Apply(payload *types.Payload, klocSize, hourlyRate float64) (*types.Payload, error) {
	result := g.Check(payload, klocSize, hourlyRate)
	payload.Validation = result

	if g.bounds.Strict && !result.Valid {
		return nil, errors.Validation("estimate failed validation").
			WithContext("validation", result)
	}
	return payload, nil
}
