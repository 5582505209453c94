// Package cocomo implements the COCOMO II effort, schedule and team-size
// estimators (Modern and Classic variants).
package cocomo

import (
	"fmt"
	"math"

	"devcost/core/tables"
	"devcost/core/types"
	"devcost/internal/errors"
)

// Engine computes COCOMO estimates from the static coefficient tables.
type Engine struct{}

// NewEngine creates a COCOMO engine.
func NewEngine() *Engine {
	return &Engine{}
}

// ModernInput parameterizes a Modern COCOMO estimate.
type ModernInput struct {
	// LOC is the project size in lines of code. Must be positive.
	LOC int

	// TechDebtScore is the 0-15 codebase health score (higher is
	// healthier). Out-of-range scores are clamped.
	TechDebtScore int

	// TeamExperience is low, nominal or high. Unrecognized values fall
	// back to nominal.
	TeamExperience tables.TeamExperience
}

// DefaultModernInput returns a Modern input with the documented defaults:
// tech-debt score 10, nominal team experience.
func DefaultModernInput(loc int) ModernInput {
	return ModernInput{
		LOC:            loc,
		TechDebtScore:  10,
		TeamExperience: tables.ExperienceNominal,
	}
}

// ClassicInput parameterizes a Classic COCOMO estimate.
type ClassicInput struct {
	// LOC is the project size in lines of code. Must be positive.
	LOC int

	// ProjectType is organic, semi or embedded. Unrecognized types fall
	// back to semi-detached; the fallback is reported, not silent.
	ProjectType tables.ProjectType
}

// DefaultClassicInput returns a Classic input with the semi-detached default.
func DefaultClassicInput(loc int) ClassicInput {
	return ClassicInput{LOC: loc, ProjectType: tables.DefaultProjectType}
}

// KLOC normalizes a line count to thousands of lines, flooring tiny
// positive inputs at 0.1 so the power formulas stay well-behaved.
func KLOC(loc int) float64 {
	return math.Max(float64(loc)/1000.0, tables.MinKLOC)
}

// Modern computes the Modern COCOMO II estimate:
// Effort = 0.5 × KLOC^0.85 × EAF.
func (e *Engine) Modern(in ModernInput) (*types.Payload, error) {
	if in.LOC <= 0 {
		return nil, errors.Inputf("loc must be positive, got %d", in.LOC)
	}

	kloc := KLOC(in.LOC)
	eaf := tables.TechDebtMultiplier(in.TechDebtScore) * tables.ExperienceMultiplier(in.TeamExperience)
	effortPM := tables.ModernA * math.Pow(kloc, tables.ModernB) * eaf
	schedule := tables.ModernC * math.Pow(effortPM, tables.ModernD)
	teamSize := effortPM / math.Max(schedule, tables.MinScheduleMonths)
	hours := effortPM * tables.HoursPerPersonMonth

	return &types.Payload{
		Methodology: "cocomo_modern",
		Name:        "COCOMO II (Modern)",
		Formula: fmt.Sprintf("Effort = %.1f × (%.2f)^%.2f × %.2f = %.2f PM",
			tables.ModernA, kloc, tables.ModernB, eaf, effortPM),
		Inputs: types.Inputs{
			LOC:            in.LOC,
			KLOC:           round2(kloc),
			TechDebtScore:  in.TechDebtScore,
			TeamExperience: string(in.TeamExperience),
		},
		EffortPM:       round2(effortPM),
		ScheduleMonths: round1(schedule),
		TeamSize:       round1(teamSize),
		Hours:          hoursBand(hours),
	}, nil
}

// Classic computes the Classic COCOMO II estimate:
// Effort = A × KLOC^B, Duration = C × Effort^D.
func (e *Engine) Classic(in ClassicInput) (*types.Payload, error) {
	if in.LOC <= 0 {
		return nil, errors.Inputf("loc must be positive, got %d", in.LOC)
	}

	coef, fellBack := tables.ClassicFor(in.ProjectType)
	projectType := in.ProjectType
	if fellBack {
		projectType = tables.DefaultProjectType
	}

	kloc := KLOC(in.LOC)
	effortPM := coef.A * math.Pow(kloc, coef.B)
	duration := coef.C * math.Pow(effortPM, coef.D)
	teamSize := effortPM / math.Max(duration, tables.MinScheduleMonths)
	hours := effortPM * tables.HoursPerPersonMonth

	payload := &types.Payload{
		Methodology: "cocomo_classic",
		Name:        "COCOMO II (Classic)",
		Formula: fmt.Sprintf("Effort = %.1f × (%.2f)^%.2f = %.2f PM",
			coef.A, kloc, coef.B, effortPM),
		Inputs: types.Inputs{
			LOC:  in.LOC,
			KLOC: round2(kloc),
		},
		ProjectType:    string(projectType),
		EffortPM:       round2(effortPM),
		ScheduleMonths: round1(duration),
		TeamSize:       round1(teamSize),
		Hours:          hoursBand(hours),
	}
	if fellBack {
		payload.Fallback = fmt.Sprintf("unrecognized project type %q, used %s",
			in.ProjectType, tables.DefaultProjectType)
	}
	return payload, nil
}

// hoursBand wraps a typical-hours figure in the fixed -30%/+30% band.
func hoursBand(hours float64) *types.HoursBlock {
	return &types.HoursBlock{
		Min:     math.Round(hours * tables.HoursBandMin),
		Typical: math.Round(hours),
		Max:     math.Round(hours * tables.HoursBandMax),
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
