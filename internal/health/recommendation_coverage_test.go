package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendationCoverageTrigger_Interface(t *testing.T) {
	trigger := NewRecommendationCoverageTrigger(newParser())

	assert.Equal(t, "recommendation_coverage", trigger.Name())
	assert.True(t, trigger.AppliesTo(DepthWorking))
	assert.False(t, trigger.AppliesTo(""))
}

func TestRecommendationCoverageTrigger_MostlyUncited(t *testing.T) {
	findings := checkDoc(t, NewRecommendationCoverageTrigger(newParser()),
		workingFrontmatter()+guidance("Key Guidance", 4, 1))

	require.Len(t, findings, 1)
	f := findings[0]
	assert.Equal(t, "3/4 recommendations lack inline citations", f.Reason)
	assert.Equal(t, 4, f.Context["total_recommendations"])
	assert.Equal(t, 1, f.Context["cited_recommendations"])
	assert.Equal(t, 3, f.Context["uncited_recommendations"])
	assert.Equal(t, 0.75, f.Context["uncited_ratio"])
}

func TestRecommendationCoverageTrigger_HalfCited(t *testing.T) {
	findings := checkDoc(t, NewRecommendationCoverageTrigger(newParser()),
		workingFrontmatter()+guidance("Key Guidance", 4, 2))
	assert.Empty(t, findings)
}

func TestRecommendationCoverageTrigger_CountsAcrossSections(t *testing.T) {
	body := guidance("Key Guidance", 2, 2) + guidance("Watch Out For", 3, 0)

	findings := checkDoc(t, NewRecommendationCoverageTrigger(newParser()), workingFrontmatter()+body)

	require.Len(t, findings, 1)
	assert.Equal(t, "3/5 recommendations lack inline citations", findings[0].Reason)
}

func TestRecommendationCoverageTrigger_NoRecommendations(t *testing.T) {
	trigger := NewRecommendationCoverageTrigger(newParser())

	assert.Empty(t, checkDoc(t, trigger, workingFrontmatter()+"## Key Guidance\n\n"+words(40)+"\n"))
	assert.Empty(t, checkDoc(t, trigger, workingFrontmatter()+words(40)+"\n"))
}

func TestRecommendationCoverageTrigger_LinkOnContinuationLine(t *testing.T) {
	body := "## Key Guidance\n\n" +
		"- Prefer table tests\n  [source](https://go.dev/wiki/TableDrivenTests)\n" +
		"- Keep fixtures small\n"

	findings := checkDoc(t, NewRecommendationCoverageTrigger(newParser()), workingFrontmatter()+body)

	require.Len(t, findings, 1)
	assert.Equal(t, 0, findings[0].Context["cited_recommendations"])
}
