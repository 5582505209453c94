// Package tables holds the static constant tables every estimator is built on:
// methodology definitions, regional rate profiles, COCOMO coefficients, effort
// multipliers, complexity tiers, activity ratios and AI productivity profiles.
// Everything here is process-lifetime, read-only data.
package tables

// Effort and schedule constants shared across estimators.
const (
	// HoursPerPersonMonth converts person-months to hours
	// (standard industry figure: 1 PM = 152 hours).
	HoursPerPersonMonth = 152.0

	// HoursBandMin and HoursBandMax bound the typical-hours estimate
	// (-30% / +30%).
	HoursBandMin = 0.7
	HoursBandMax = 1.3

	// MinKLOC is the floor applied to tiny positive inputs so the power
	// formulas stay out of the degenerate near-zero regime.
	MinKLOC = 0.1

	// WeeksPerMonth converts schedule months to calendar weeks.
	WeeksPerMonth = 4.3

	// DiscountRate is the annual discount rate used for NPV.
	DiscountRate = 0.10

	// MaintenanceRate is the assumed annual maintenance cost as a share
	// of the build cost.
	MaintenanceRate = 0.20

	// IPMultiplier converts a normalized build cost to an IP valuation.
	IPMultiplier = 3.0
)

// TeamExperience levels recognized by the Modern COCOMO estimator.
type TeamExperience string

const (
	ExperienceLow     TeamExperience = "low"
	ExperienceNominal TeamExperience = "nominal"
	ExperienceHigh    TeamExperience = "high"
)

// experienceMultipliers maps team experience to an effort multiplier.
var experienceMultipliers = map[TeamExperience]float64{
	ExperienceLow:     1.3,
	ExperienceNominal: 1.0,
	ExperienceHigh:    0.8,
}

// ExperienceMultiplier returns the effort multiplier for a team experience
// level. Unrecognized levels fall back to nominal.
func ExperienceMultiplier(exp TeamExperience) float64 {
	if m, ok := experienceMultipliers[exp]; ok {
		return m
	}
	return experienceMultipliers[ExperienceNominal]
}

// techDebtBand maps a tech-debt score range to an effort multiplier.
// Scores run 0-15; higher scores mean a healthier codebase.
type techDebtBand struct {
	MinScore   int
	Multiplier float64
}

// techDebtBands is ordered from healthiest to worst. A clean codebase
// slightly reduces effort; heavy debt inflates it.
var techDebtBands = []techDebtBand{
	{MinScore: 13, Multiplier: 0.9},
	{MinScore: 10, Multiplier: 1.0},
	{MinScore: 7, Multiplier: 1.1},
	{MinScore: 4, Multiplier: 1.25},
	{MinScore: 0, Multiplier: 1.4},
}

// TechDebtMultiplier returns the effort multiplier for a tech-debt score.
// Scores outside 0-15 are clamped.
func TechDebtMultiplier(score int) float64 {
	if score < 0 {
		score = 0
	}
	if score > 15 {
		score = 15
	}
	for _, band := range techDebtBands {
		if score >= band.MinScore {
			return band.Multiplier
		}
	}
	return techDebtBands[len(techDebtBands)-1].Multiplier
}

// ComplexityTier labels a project size bracket. Reporting only; tier never
// selects a formula.
type ComplexityTier struct {
	// Label is the qualitative size label.
	Label string `json:"label"`

	// MaxLOC is the inclusive upper bound for this tier.
	MaxLOC int `json:"max_loc"`
}

// complexityTiers is ordered by ascending size.
var complexityTiers = []ComplexityTier{
	{Label: "trivial", MaxLOC: 1000},
	{Label: "small", MaxLOC: 10000},
	{Label: "medium", MaxLOC: 50000},
	{Label: "large", MaxLOC: 250000},
	{Label: "very_large", MaxLOC: 0}, // open-ended
}

// ComplexityFor returns the size tier label for a line count.
func ComplexityFor(loc int) string {
	for _, tier := range complexityTiers {
		if tier.MaxLOC > 0 && loc <= tier.MaxLOC {
			return tier.Label
		}
	}
	return complexityTiers[len(complexityTiers)-1].Label
}

// ComplexityTiers returns the full tier table for introspection.
func ComplexityTiers() []ComplexityTier {
	out := make([]ComplexityTier, len(complexityTiers))
	copy(out, complexityTiers)
	return out
}

// ActivityRatio describes how total effort splits across delivery activities.
type ActivityRatio struct {
	// Typical is the share of total hours spent on the activity.
	Typical float64 `json:"typical"`
}

// activityRatios sums to 1.0 across all activities.
var activityRatios = map[string]ActivityRatio{
	"development":        {Typical: 0.45},
	"testing":            {Typical: 0.25},
	"code_review":        {Typical: 0.10},
	"documentation":      {Typical: 0.10},
	"project_management": {Typical: 0.10},
}

// ActivityRatios returns the activity breakdown table.
func ActivityRatios() map[string]ActivityRatio {
	out := make(map[string]ActivityRatio, len(activityRatios))
	for k, v := range activityRatios {
		out[k] = v
	}
	return out
}

// AIProfile identifies a development productivity profile.
type AIProfile string

const (
	ProfilePureHuman  AIProfile = "pure_human"
	ProfileAIAssisted AIProfile = "ai_assisted"
	ProfileHybrid     AIProfile = "hybrid"
)

// aiProductivity maps a profile to hours per KLOC.
var aiProductivity = map[AIProfile]float64{
	ProfilePureHuman:  25.0,
	ProfileAIAssisted: 8.0,
	ProfileHybrid:     6.5,
}

// AIHoursPerKLOC returns the productivity constant for a profile.
func AIHoursPerKLOC(profile AIProfile) float64 {
	return aiProductivity[profile]
}
