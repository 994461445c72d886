package evaluation

import (
	"context"
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
		Name:   "Skills",
		Weight: weight,
		Type:   types.CriterionKeywordSkill,
		Config: cfg,
	}
}

func TestEvaluate_EnforceWeightSum(t *testing.T) {
	criteria := []types.Criterion{keywordCriterion(60, "go")}

	_, err := Evaluate("go services", nil, criteria, Options{EnforceWeightSum: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 100")

	b, err := Evaluate("go services", nil, criteria, Options{})
	require.NoError(t, err)
	assert.InDelta(t, 0.6, b.TotalScore, 0.001)
}

func TestEvaluate_NoCriteriaSucceeds(t *testing.T) {
	b, err := Evaluate("any text", nil, nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, b.TotalScore)
	assert.Empty(t, b.CriterionScores)
}

func TestEvaluateBatch_CandidateBounds(t *testing.T) {
	criteria := []types.Criterion{keywordCriterion(100, "go")}

	_, err := EvaluateBatch(context.Background(), criteria, []Candidate{{ResumeID: uuid.New()}}, Options{})
	assert.Error(t, err, "a single candidate is below the minimum")

	eleven := make([]Candidate, 11)
	for i := range eleven {
		eleven[i].ResumeID = uuid.New()
	}
	_, err = EvaluateBatch(context.Background(), criteria, eleven, Options{})
	assert.Error(t, err, "eleven candidates exceed the maximum")
}

func TestEvaluateBatch_PreservesCandidateOrder(t *testing.T) {
	criteria := []types.Criterion{keywordCriterion(100, "go", "sql")}
	candidates := []Candidate{
		{ResumeID: uuid.New(), Text: "go and sql"},
		{ResumeID: uuid.New(), Text: "only go"},
		{ResumeID: uuid.New(), Text: "nothing relevant"},
	}

	results, err := EvaluateBatch(context.Background(), criteria, candidates, Options{})
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, r := range results {
		assert.Equal(t, candidates[i].ResumeID, r.ResumeID)
	}
	assert.Equal(t, 1.0, results[0].Breakdown.TotalScore)
	assert.InDelta(t, 0.5, results[1].Breakdown.TotalScore, 0.001)
	assert.Equal(t, 0.0, results[2].Breakdown.TotalScore)
}

func TestEvaluateBatch_PropagatesScoringError(t *testing.T) {
	bad := types.Criterion{ID: uuid.New(), Name: "bad", Weight: 100, Type: types.CriterionType("NOPE")}
	candidates := []Candidate{
		{ResumeID: uuid.New(), Text: "a"},
		{ResumeID: uuid.New(), Text: "b"},
	}

	_, err := EvaluateBatch(context.Background(), []types.Criterion{bad}, candidates, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown criterion type")
}

func TestEvaluateBatch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	criteria := []types.Criterion{keywordCriterion(100, "go")}
	candidates := []Candidate{
		{ResumeID: uuid.New(), Text: "a"},
		{ResumeID: uuid.New(), Text: "b"},
	}

	_, err := EvaluateBatch(ctx, criteria, candidates, Options{})
	assert.Error(t, err)
}

func TestEvaluateBatch_Deterministic(t *testing.T) {
	criteria := []types.Criterion{keywordCriterion(100, "go", "sql", "aws")}
	candidates := []Candidate{
		{ResumeID: uuid.New(), Text: "go sql"},
		{ResumeID: uuid.New(), Text: "aws"},
	}

	first, err := EvaluateBatch(context.Background(), criteria, candidates, Options{})
	require.NoError(t, err)
	second, err := EvaluateBatch(context.Background(), criteria, candidates, Options{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRank_DescendingStable(t *testing.T) {
	low := CandidateResult{ResumeID: uuid.New(), Breakdown: &types.ScoreBreakdown{TotalScore: 0.2}}
	highA := CandidateResult{ResumeID: uuid.New(), Breakdown: &types.ScoreBreakdown{TotalScore: 0.9}}
	highB := CandidateResult{ResumeID: uuid.New(), Breakdown: &types.ScoreBreakdown{TotalScore: 0.9}}

	ranked := Rank([]CandidateResult{low, highA, highB})
	require.Len(t, ranked, 3)
	assert.Equal(t, highA.ResumeID, ranked[0].ResumeID)
	assert.Equal(t, highB.ResumeID, ranked[1].ResumeID, "ties keep incoming order")
	assert.Equal(t, low.ResumeID, ranked[2].ResumeID)
}

func TestWeightSum(t *testing.T) {
	criteria := []types.Criterion{
		keywordCriterion(40, "a"),
		keywordCriterion(60, "b"),
	}
	assert.Equal(t, 100, WeightSum(criteria))
	assert.Equal(t, 0, WeightSum(nil))
}
