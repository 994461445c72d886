package scoring

import (
	"math"

	"github.com/rolemark/rolemark/internal/types"
)

// ScoreResume scores every criterion for one resume and aggregates the
// results into a breakdown. An empty criteria list yields a zero breakdown;
// evaluation always succeeds when no criteria are configured.
func ScoreResume(resumeText string, signals []types.Signal, criteria []types.Criterion) (*types.ScoreBreakdown, error) {
	results := make([]types.CriterionScoreResult, 0, len(criteria))
	for i := range criteria {
		result, err := ScoreCriterion(&criteria[i], resumeText, signals)
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
	}
	return Aggregate(results), nil
}

// Aggregate weights and sums per-criterion scores into a total clamped to
// [0, 1], with the percentage rounded to one decimal.
func Aggregate(results []types.CriterionScoreResult) *types.ScoreBreakdown {
	weighted := 0.0
	for _, r := range results {
		weighted += r.Score * (float64(r.Weight) / 100.0)
	}

	total := clamp01(weighted)
	return &types.ScoreBreakdown{
		CriterionScores: results,
		TotalScore:      total,
		TotalScorePct:   math.Round(total*1000) / 10,
	}
}
