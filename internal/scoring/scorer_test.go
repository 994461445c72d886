package scoring

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/rolemark/rolemark/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keywordCriterion(weight int, keywords ...string) types.Criterion {
	cfg, _ := json.Marshal(map[string]any{"requiredKeywords": keywords})
	return types.Criterion{
		ID:     uuid.New(),
		Name:   "Core skills",
		Weight: weight,
		Type:   types.CriterionKeywordSkill,
		Config: cfg,
	}
}

func experienceCriterion(weight int, requiredYears float64) types.Criterion {
	cfg, _ := json.Marshal(map[string]any{"requiredYears": requiredYears})
	return types.Criterion{
		ID:     uuid.New(),
		Name:   "Years of experience",
		Weight: weight,
		Type:   types.CriterionExperienceYears,
		Config: cfg,
	}
}

func educationCriterion(weight int, minimum types.EducationLevel) types.Criterion {
	cfg, _ := json.Marshal(map[string]any{"minimumLevel": minimum})
	return types.Criterion{
		ID:     uuid.New(),
		Name:   "Education",
		Weight: weight,
		Type:   types.CriterionEducationLevel,
		Config: cfg,
	}
}

func TestScoreCriterion_KeywordPartialCoverage(t *testing.T) {
	c := keywordCriterion(50, "Java", "Spring", "Hibernate")
	text := "I have extensive Java experience with Spring framework"

	result, err := ScoreCriterion(&c, text, nil)
	require.NoError(t, err)

	assert.InDelta(t, 2.0/3.0, result.Score, 0.001)
	require.Len(t, result.Evidence, 2)
	assert.Contains(t, result.Evidence[0], "Matched keyword 'Java'")
	assert.Contains(t, result.Evidence[1], "Matched keyword 'Spring'")
}

func TestScoreCriterion_KeywordBounds(t *testing.T) {
	all := keywordCriterion(100, "go", "sql")
	result, err := ScoreCriterion(&all, "Go and SQL every day", nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, result.Score, "full coverage scores exactly 1.0")

	none := keywordCriterion(100, "rust", "haskell")
	result, err = ScoreCriterion(&none, "Go and SQL every day", nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Score, "zero coverage scores exactly 0.0")
	assert.Empty(t, result.Evidence)
}

func TestScoreCriterion_KeywordEvidenceCappedAtThree(t *testing.T) {
	c := keywordCriterion(100, "go", "sql", "http", "json")
	result, err := ScoreCriterion(&c, "go sql http json", nil)
	require.NoError(t, err)

	assert.Equal(t, 1.0, result.Score)
	assert.Len(t, result.Evidence, 3)
}

func TestScoreCriterion_CustomKeywordsMatchModeAllStillFractional(t *testing.T) {
	// ALL is accepted but scores the same fractional coverage as ANY.
	cfg, _ := json.Marshal(map[string]any{"keywords": []string{"go", "rust"}, "matchMode": "ALL"})
	c := types.Criterion{
		ID:     uuid.New(),
		Name:   "Custom",
		Weight: 100,
		Type:   types.CriterionCustomKeywords,
		Config: cfg,
	}

	result, err := ScoreCriterion(&c, "only go here", nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, result.Score, 0.001)
}

func TestScoreCriterion_ExperienceMeetsRequirement(t *testing.T) {
	c := experienceCriterion(100, 3)
	signals := []types.Signal{
		{Type: types.SignalExperienceYearsEstimate, Value: "5.25", Confidence: types.ConfidenceMedium},
		{Type: types.SignalDateRange, Value: "2018-01-01 to 2023-04-01", EvidenceSnippet: "Jan 2018 - Apr 2023", Confidence: types.ConfidenceHigh},
	}

	result, err := ScoreCriterion(&c, "", signals)
	require.NoError(t, err)
	assert.Equal(t, 1.0, result.Score)
	assert.Equal(t, []string{"Jan 2018 - Apr 2023"}, result.Evidence)
}

func TestScoreCriterion_ExperiencePartialCredit(t *testing.T) {
	c := experienceCriterion(100, 10)
	signals := []types.Signal{
		{Type: types.SignalExperienceYearsEstimate, Value: "4", Confidence: types.ConfidenceMedium},
	}

	result, err := ScoreCriterion(&c, "", signals)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, result.Score, 0.001)
	assert.Equal(t, []string{"No date ranges detected in resume"}, result.Evidence)
}

func TestScoreCriterion_ExperienceZeroRequiredTriviallySatisfied(t *testing.T) {
	c := experienceCriterion(100, 0)

	result, err := ScoreCriterion(&c, "", nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, result.Score)
}

func TestScoreCriterion_ExperienceMissingSignalScoresZero(t *testing.T) {
	c := experienceCriterion(100, 5)

	result, err := ScoreCriterion(&c, "", nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, []string{"No date ranges detected in resume"}, result.Evidence)
}

func TestScoreCriterion_ExperienceUnparseableSignalScoresZero(t *testing.T) {
	c := experienceCriterion(100, 5)
	signals := []types.Signal{
		{Type: types.SignalExperienceYearsEstimate, Value: "many", Confidence: types.ConfidenceLow},
	}

	result, err := ScoreCriterion(&c, "", signals)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Score)
}

func TestScoreCriterion_EducationMonotonicity(t *testing.T) {
	signals := []types.Signal{
		{Type: types.SignalEducationLevelEstimate, Value: "BACHELOR", EvidenceSnippet: "B.S. Computer Science", Confidence: types.ConfidenceHigh},
	}

	expected := map[types.EducationLevel]float64{
		types.EducationHS:        1.0,
		types.EducationAssociate: 1.0,
		types.EducationBachelor:  1.0,
		types.EducationMaster:    0.65 / 0.85,
	}

	var prev float64 = 1.0
	for _, level := range []types.EducationLevel{types.EducationHS, types.EducationAssociate, types.EducationBachelor, types.EducationMaster} {
		c := educationCriterion(100, level)
		result, err := ScoreCriterion(&c, "", signals)
		require.NoError(t, err)
		assert.InDelta(t, expected[level], result.Score, 0.001, "required level %s", level)
		assert.LessOrEqual(t, result.Score, prev, "score must not increase as the bar rises")
		prev = result.Score
	}
}

func TestScoreCriterion_EducationMissingSignal(t *testing.T) {
	c := educationCriterion(100, types.EducationBachelor)

	result, err := ScoreCriterion(&c, "", nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Score, "UNKNOWN candidate level scores zero")
	assert.Equal(t, []string{"No education token detected"}, result.Evidence)
}

func TestScoreCriterion_EducationUsesSignalSnippet(t *testing.T) {
	c := educationCriterion(100, types.EducationHS)
	signals := []types.Signal{
		{Type: types.SignalEducationLevelEstimate, Value: "PHD", EvidenceSnippet: "PhD in Physics", Confidence: types.ConfidenceHigh},
	}

	result, err := ScoreCriterion(&c, "", signals)
	require.NoError(t, err)
	assert.Equal(t, 1.0, result.Score)
	assert.Equal(t, []string{"PhD in Physics"}, result.Evidence)
}

func TestScoreCriterion_UnknownTypeFailsFast(t *testing.T) {
	c := types.Criterion{
		ID:     uuid.New(),
		Name:   "Mystery",
		Weight: 100,
		Type:   types.CriterionType("GUT_FEELING"),
		Config: json.RawMessage(`{}`),
	}

	_, err := ScoreCriterion(&c, "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown criterion type")
}
