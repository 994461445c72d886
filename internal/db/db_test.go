package db

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rolemark/rolemark/internal/types"
)

func TestConnect_InvalidURL(t *testing.T) {
	_, err := Connect(context.Background(), "not-a-valid-dsn://///")
	if err == nil {
		t.Fatal("expected error for invalid database URL")
	}
}

func TestBreakdown_DecodeCriterionScores(t *testing.T) {
	raw, err := json.Marshal([]types.CriterionScoreResult{
		{Name: "Core skills", Type: types.CriterionKeywordSkill, Weight: 60, Score: 0.5},
		{Name: "Experience", Type: types.CriterionExperienceYears, Weight: 40, Score: 1.0},
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	b := Breakdown{CriterionScores: raw}
	scores, err := b.DecodeCriterionScores()
	if err != nil {
		t.Fatalf("DecodeCriterionScores failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected 2 scores, got %d", len(scores))
	}
	if scores[0].Name != "Core skills" || scores[0].Score != 0.5 {
		t.Errorf("unexpected first score: %+v", scores[0])
	}
}

func TestBreakdown_DecodeCriterionScores_Empty(t *testing.T) {
	b := Breakdown{}
	scores, err := b.DecodeCriterionScores()
	if err != nil {
		t.Fatalf("DecodeCriterionScores failed: %v", err)
	}
	if len(scores) != 0 {
		t.Fatalf("expected no scores, got %d", len(scores))
	}
}

func TestBreakdown_DecodeCriterionScores_Malformed(t *testing.T) {
	b := Breakdown{CriterionScores: json.RawMessage(`{not json`)}
	if _, err := b.DecodeCriterionScores(); err == nil {
		t.Fatal("expected error for malformed criterion scores")
	}
}
