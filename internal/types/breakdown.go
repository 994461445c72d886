package types

import (
	"github.com/google/uuid"
)

// CriterionScoreResult is the outcome of scoring one criterion against one
// resume. It is ephemeral: only the containing breakdown is persisted.
type CriterionScoreResult struct {
	CriterionID uuid.UUID     `json:"criterion_id"`
	Name        string        `json:"criterion_name"`
	Type        CriterionType `json:"type"`
	Weight      int           `json:"weight"`
	Score       float64       `json:"score"`
	Evidence    []string      `json:"evidence"`
}

// ScoreBreakdown is the full per-criterion and aggregate scoring result for
// one (role, resume) pair. Re-evaluation overwrites the previous breakdown.
type ScoreBreakdown struct {
	CriterionScores []CriterionScoreResult `json:"criterion_scores"`
	TotalScore      float64                `json:"total_score"`
	TotalScorePct   float64                `json:"total_score_pct"`
}
