// Package tables - COCOMO coefficient tables
package tables

// ProjectType selects a Classic COCOMO coefficient set.
type ProjectType string

const (
	ProjectOrganic  ProjectType = "organic"
	ProjectSemi     ProjectType = "semi"
	ProjectEmbedded ProjectType = "embedded"
)

// DefaultProjectType is the lenient fallback for unrecognized types.
const DefaultProjectType = ProjectSemi

// ClassicCoefficients parameterizes the Classic COCOMO model:
// effort = A × KLOC^B, duration = C × effort^D.
type ClassicCoefficients struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
	D float64 `json:"d"`
}

// classicCoefficients are the published Boehm coefficient sets.
var classicCoefficients = map[ProjectType]ClassicCoefficients{
	ProjectOrganic:  {A: 2.4, B: 1.05, C: 2.5, D: 0.38},
	ProjectSemi:     {A: 3.0, B: 1.12, C: 2.5, D: 0.35},
	ProjectEmbedded: {A: 3.6, B: 1.20, C: 2.5, D: 0.32},
}

// Modern COCOMO constants: effort = ModernA × KLOC^ModernB × EAF,
// schedule = ModernC × effort^ModernD.
const (
	ModernA = 0.5
	ModernB = 0.85
	ModernC = 2.5
	ModernD = 0.38
)

// MinScheduleMonths floors the schedule before deriving team size, so a
// short schedule never produces an absurd team.
const MinScheduleMonths = 0.5

// ClassicFor returns the coefficient set for a project type. Unrecognized
// types fall back to semi-detached; the second return reports whether the
// fallback was applied so callers can surface it.
func ClassicFor(projectType ProjectType) (ClassicCoefficients, bool) {
	if c, ok := classicCoefficients[projectType]; ok {
		return c, false
	}
	return classicCoefficients[DefaultProjectType], true
}

// ClassicProjectTypes returns the recognized project types.
func ClassicProjectTypes() []ProjectType {
	return []ProjectType{ProjectOrganic, ProjectSemi, ProjectEmbedded}
}
