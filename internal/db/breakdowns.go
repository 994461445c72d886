package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rolemark/rolemark/internal/types"
)

// UpsertBreakdown stores a scoring result for a resume against a role,
// replacing any previous evaluation of the same pair.
func (db *DB) UpsertBreakdown(ctx context.Context, roleID, resumeID uuid.UUID, breakdown *types.ScoreBreakdown) error {
	scores, err := json.Marshal(breakdown.CriterionScores)
	if err != nil {
		return fmt.Errorf("failed to marshal criterion scores: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO score_breakdowns (role_id, resume_id, criterion_scores, total_score, total_score_pct)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (role_id, resume_id) DO UPDATE SET
		     criterion_scores = $3,
		     total_score = $4,
		     total_score_pct = $5,
		     updated_at = NOW()`,
		roleID, resumeID, scores, breakdown.TotalScore, breakdown.TotalScorePct,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert breakdown: %w", err)
	}
	return nil
}

// GetBreakdown retrieves the stored breakdown for a role/resume pair.
// Returns nil when the pair has not been evaluated.
func (db *DB) GetBreakdown(ctx context.Context, roleID, resumeID uuid.UUID) (*Breakdown, error) {
	var b Breakdown
	err := db.pool.QueryRow(ctx,
		`SELECT id, role_id, resume_id, criterion_scores, total_score, total_score_pct, created_at, updated_at
		 FROM score_breakdowns WHERE role_id = $1 AND resume_id = $2`,
		roleID, resumeID,
	).Scan(&b.ID, &b.RoleID, &b.ResumeID, &b.CriterionScores, &b.TotalScore, &b.TotalScorePct, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get breakdown: %w", err)
	}
	return &b, nil
}

// ListBreakdownsByRole retrieves all stored breakdowns for a role ordered
// by total score descending. Ties keep insertion order so rankings stay
// stable across reads.
func (db *DB) ListBreakdownsByRole(ctx context.Context, roleID uuid.UUID) ([]Breakdown, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, role_id, resume_id, criterion_scores, total_score, total_score_pct, created_at, updated_at
		 FROM score_breakdowns WHERE role_id = $1
		 ORDER BY total_score DESC, created_at ASC`,
		roleID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list breakdowns: %w", err)
	}
	defer rows.Close()

	var breakdowns []Breakdown
	for rows.Next() {
		var b Breakdown
		if err := rows.Scan(&b.ID, &b.RoleID, &b.ResumeID, &b.CriterionScores, &b.TotalScore, &b.TotalScorePct, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan breakdown: %w", err)
		}
		breakdowns = append(breakdowns, b)
	}
	return breakdowns, nil
}

// DecodeCriterionScores unpacks the stored JSONB per-criterion detail
func (b *Breakdown) DecodeCriterionScores() ([]types.CriterionScoreResult, error) {
	var scores []types.CriterionScoreResult
	if len(b.CriterionScores) == 0 {
		return scores, nil
	}
	if err := json.Unmarshal(b.CriterionScores, &scores); err != nil {
		return nil, fmt.Errorf("failed to decode criterion scores: %w", err)
	}
	return scores, nil
}
