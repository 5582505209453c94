// Package estimator - Formula and constant introspection
package estimator

import (
	"strconv"

	"devcost/core/tables"
)

// FormulaDoc documents one formula for report rendering.
type FormulaDoc struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Domain  string `json:"domain"`
	Formula string `json:"formula"`
}

// Formulas returns the documented formula set: the 8 methodologies plus
// the Classic COCOMO variants.
func (s *Service) Formulas() []FormulaDoc {
	docs := make([]FormulaDoc, 0, len(tables.MethodologyIDs())+len(tables.ClassicProjectTypes()))
	for _, m := range tables.AllMethodologies() {
		docs = append(docs, FormulaDoc{
			ID:      m.ID,
			Name:    m.Name,
			Domain:  string(m.Domain),
			Formula: m.Formula,
		})
	}
	for _, pt := range tables.ClassicProjectTypes() {
		coef, _ := tables.ClassicFor(pt)
		docs = append(docs, FormulaDoc{
			ID:      "cocomo_classic_" + string(pt),
			Name:    "COCOMO II Classic (" + string(pt) + ")",
			Domain:  string(tables.DomainSoftware),
			Formula: formatClassic(coef),
		})
	}
	return docs
}

func formatClassic(c tables.ClassicCoefficients) string {
	return "Effort = " + ftoa(c.A) + " × KLOC^" + ftoa(c.B) +
		", Duration = " + ftoa(c.C) + " × Effort^" + ftoa(c.D)
}

// Constants is the full constant-table snapshot for introspection.
type Constants struct {
	HoursPerPersonMonth float64                         `json:"hours_per_person_month"`
	HoursBandMin        float64                         `json:"hours_band_min"`
	HoursBandMax        float64                         `json:"hours_band_max"`
	MinKLOC             float64                         `json:"min_kloc"`
	DiscountRate        float64                         `json:"discount_rate"`
	MaintenanceRate     float64                         `json:"maintenance_rate"`
	IPMultiplier        float64                         `json:"ip_multiplier"`
	AIProductivity      map[string]float64              `json:"ai_productivity_hrs_per_kloc"`
	ActivityRatios      map[string]tables.ActivityRatio `json:"activity_ratios"`
	ComplexityTiers     []tables.ComplexityTier         `json:"complexity_tiers"`
	RegionalRates       []tables.RegionalRates          `json:"regional_rates"`
}

// ConstantsSnapshot returns every constant table the estimators use.
func (s *Service) ConstantsSnapshot() Constants {
	return Constants{
		HoursPerPersonMonth: tables.HoursPerPersonMonth,
		HoursBandMin:        tables.HoursBandMin,
		HoursBandMax:        tables.HoursBandMax,
		MinKLOC:             tables.MinKLOC,
		DiscountRate:        tables.DiscountRate,
		MaintenanceRate:     tables.MaintenanceRate,
		IPMultiplier:        tables.IPMultiplier,
		AIProductivity: map[string]float64{
			string(tables.ProfilePureHuman):  tables.AIHoursPerKLOC(tables.ProfilePureHuman),
			string(tables.ProfileAIAssisted): tables.AIHoursPerKLOC(tables.ProfileAIAssisted),
			string(tables.ProfileHybrid):     tables.AIHoursPerKLOC(tables.ProfileHybrid),
		},
		ActivityRatios:  tables.ActivityRatios(),
		ComplexityTiers: tables.ComplexityTiers(),
		RegionalRates:   tables.AllRegionalRates(),
	}
}

// ftoa formats a coefficient without trailing zeros.
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
