package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodologySetIsFixed(t *testing.T) {
	all := AllMethodologies()
	require.Len(t, all, 8)

	ids := MethodologyIDs()
	require.Len(t, ids, 8)
	for i, m := range all {
		assert.Equal(t, ids[i], m.ID)
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.Formula)
	}

	_, ok := MethodologyByID("cocomo")
	assert.True(t, ok)
	_, ok = MethodologyByID("agile_poker")
	assert.False(t, ok)
}

func TestDomainMatching(t *testing.T) {
	assert.True(t, DomainSoftware.Matches("software"))
	assert.False(t, DomainSoftware.Matches("documentation"))
	assert.True(t, DomainSoftware.Matches("all"))

	assert.True(t, DomainDocumentation.Matches("documentation"))
	assert.False(t, DomainDocumentation.Matches("software"))

	assert.True(t, DomainBoth.Matches("software"))
	assert.True(t, DomainBoth.Matches("documentation"))
	assert.True(t, DomainBoth.Matches("all"))

	assert.False(t, DomainSoftware.Matches("hardware"))
}

func TestRegionalRatesMonotonicWithinProfile(t *testing.T) {
	profiles := AllRegionalRates()
	require.Len(t, profiles, 8)
	for _, p := range profiles {
		assert.LessOrEqual(t, p.Rates.Junior, p.Rates.Middle, "region %s", p.Region)
		assert.LessOrEqual(t, p.Rates.Middle, p.Rates.Senior, "region %s", p.Region)
		assert.NotEmpty(t, p.Currency)
		assert.NotEmpty(t, p.Symbol)
	}
}

func TestRatesForUnknownRegionFallsBack(t *testing.T) {
	fallback := RatesFor("atlantis")
	assert.Equal(t, DefaultRegion, fallback.Region)
}

func TestTechDebtMultiplier(t *testing.T) {
	// Nominal health gives a neutral multiplier.
	assert.Equal(t, 1.0, TechDebtMultiplier(10))
	// Healthier codebases cost less, indebted ones more.
	assert.Less(t, TechDebtMultiplier(15), TechDebtMultiplier(0))
	// Out-of-range scores clamp instead of failing.
	assert.Equal(t, TechDebtMultiplier(15), TechDebtMultiplier(99))
	assert.Equal(t, TechDebtMultiplier(0), TechDebtMultiplier(-5))
}

func TestExperienceMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, ExperienceMultiplier(ExperienceNominal))
	assert.Greater(t, ExperienceMultiplier(ExperienceLow), 1.0)
	assert.Less(t, ExperienceMultiplier(ExperienceHigh), 1.0)
	// Unrecognized levels fall back to nominal.
	assert.Equal(t, 1.0, ExperienceMultiplier("wizard"))
}

func TestComplexityTiers(t *testing.T) {
	assert.Equal(t, "trivial", ComplexityFor(500))
	assert.Equal(t, "small", ComplexityFor(10000))
	assert.Equal(t, "medium", ComplexityFor(30000))
	assert.Equal(t, "large", ComplexityFor(100000))
	assert.Equal(t, "very_large", ComplexityFor(1000000))
}

func TestActivityRatiosSumToOne(t *testing.T) {
	sum := 0.0
	for _, ratio := range ActivityRatios() {
		sum += ratio.Typical
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestClassicForFallback(t *testing.T) {
	_, fellBack := ClassicFor(ProjectOrganic)
	assert.False(t, fellBack)

	coef, fellBack := ClassicFor("quantum")
	assert.True(t, fellBack)
	semi, _ := ClassicFor(ProjectSemi)
	assert.Equal(t, semi, coef)
}

func TestAIProductivityOrdering(t *testing.T) {
	human := AIHoursPerKLOC(ProfilePureHuman)
	assisted := AIHoursPerKLOC(ProfileAIAssisted)
	hybrid := AIHoursPerKLOC(ProfileHybrid)
	assert.Greater(t, human, assisted)
	assert.Greater(t, assisted, hybrid)
}
