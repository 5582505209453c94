package aicomp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devcost/internal/errors"
)

func TestCompareReferenceValues(t *testing.T) {
	c := NewComparator()
	comparison, err := c.Compare(DefaultInput(10000))
	require.NoError(t, err)

	// 10 KLOC at 25 / 8 / 6.5 hrs per KLOC.
	assert.Equal(t, 250.0, comparison.PureHuman.Hours)
	assert.Equal(t, 80.0, comparison.AIAssisted.Hours)
	assert.Equal(t, 65.0, comparison.Hybrid.Hours)

	// Costs at $35/hr.
	assert.Equal(t, "8750", comparison.PureHuman.Cost.String())
	assert.Equal(t, "2800", comparison.AIAssisted.Cost.String())
	assert.Equal(t, "2275", comparison.Hybrid.Cost.String())
}

func TestSavingsVersusPureHuman(t *testing.T) {
	c := NewComparator()
	comparison, err := c.Compare(DefaultInput(10000))
	require.NoError(t, err)

	assert.Equal(t, 170.0, comparison.AIAssistedSavings.Hours)
	assert.Equal(t, 68.0, comparison.AIAssistedSavings.HoursPercent)
	assert.Equal(t, "5950", comparison.AIAssistedSavings.Cost.String())
	assert.Equal(t, 68.0, comparison.AIAssistedSavings.CostPercent)

	assert.Equal(t, 185.0, comparison.HybridSavings.Hours)
	assert.Equal(t, 74.0, comparison.HybridSavings.HoursPercent)
	assert.Equal(t, "6475", comparison.HybridSavings.Cost.String())

	// Hybrid always beats AI-assisted which beats pure human.
	assert.Less(t, comparison.Hybrid.Hours, comparison.AIAssisted.Hours)
	assert.Less(t, comparison.AIAssisted.Hours, comparison.PureHuman.Hours)
}

func TestComplexityScalesAllBranches(t *testing.T) {
	c := NewComparator()
	baseline, err := c.Compare(DefaultInput(10000))
	require.NoError(t, err)

	in := DefaultInput(10000)
	in.Complexity = 2.0
	doubled, err := c.Compare(in)
	require.NoError(t, err)

	assert.Equal(t, baseline.PureHuman.Hours*2, doubled.PureHuman.Hours)
	assert.Equal(t, baseline.Hybrid.Hours*2, doubled.Hybrid.Hours)
}

func TestInvalidInputs(t *testing.T) {
	c := NewComparator()

	for _, loc := range []int{0, -100} {
		_, err := c.Compare(DefaultInput(loc))
		require.Error(t, err, "loc=%d", loc)
		assert.True(t, errors.IsType(err, errors.TypeInput))
	}

	in := DefaultInput(1000)
	in.Complexity = 0
	_, err := c.Compare(in)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))
}
