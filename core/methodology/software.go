// Package methodology - Software estimation formulas
//
// Coefficients here are defined explicitly per methodology; see DESIGN.md
// for the sourcing decision.
package methodology

import (
	"math"

	"devcost/core/tables"
)

// kloc applies the same size normalization the COCOMO engine uses.
func kloc(loc int) float64 {
	return math.Max(float64(loc)/1000.0, tables.MinKLOC)
}

// cocomoEstimator is Modern COCOMO with complexity applied as the EAF.
type cocomoEstimator struct{}

func (e *cocomoEstimator) Definition() tables.Methodology {
	m, _ := tables.MethodologyByID("cocomo")
	return m
}

func (e *cocomoEstimator) Hours(in Input) float64 {
	effortPM := tables.ModernA * math.Pow(kloc(in.LOC), tables.ModernB) * in.Complexity
	return effortPM * tables.HoursPerPersonMonth
}

// gartnerEstimator applies the industry benchmark of 15 hours per KLOC.
type gartnerEstimator struct{}

func (e *gartnerEstimator) Definition() tables.Methodology {
	m, _ := tables.MethodologyByID("gartner")
	return m
}

func (e *gartnerEstimator) Hours(in Input) float64 {
	return kloc(in.LOC) * 15.0 * in.Complexity
}

// slimEstimator is a simplified Putnam SLIM power law.
type slimEstimator struct{}

func (e *slimEstimator) Definition() tables.Methodology {
	m, _ := tables.MethodologyByID("sei_slim")
	return m
}

func (e *slimEstimator) Hours(in Input) float64 {
	return 12.0 * math.Pow(kloc(in.LOC), 1.2) * in.Complexity
}

// functionPointsEstimator backfires LOC to function points at 53 LOC/FP
// (mixed-language average) and applies 8 hours per FP.
type functionPointsEstimator struct{}

func (e *functionPointsEstimator) Definition() tables.Methodology {
	m, _ := tables.MethodologyByID("function_points")
	return m
}

func (e *functionPointsEstimator) Hours(in Input) float64 {
	fp := float64(in.LOC) / 53.0
	return fp * 8.0 * in.Complexity
}

// pmiEstimator is a PMBOK-style analogous estimate. It spans both domains:
// 18 hours per KLOC for code, 2.5 hours per page for documentation when no
// code size is available.
type pmiEstimator struct{}

func (e *pmiEstimator) Definition() tables.Methodology {
	m, _ := tables.MethodologyByID("pmi")
	return m
}

func (e *pmiEstimator) Hours(in Input) float64 {
	if in.LOC > 0 {
		return kloc(in.LOC) * 18.0 * in.Complexity
	}
	return in.pages() * 2.5 * in.Complexity
}
