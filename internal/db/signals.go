package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rolemark/rolemark/internal/types"
)

// ReplaceSignals swaps the stored extraction results for a resume inside a
// transaction. Re-extraction always replaces the full set so stale signals
// never mix with fresh ones.
func (db *DB) ReplaceSignals(ctx context.Context, resumeID uuid.UUID, signals []types.Signal) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM extracted_signals WHERE resume_id = $1`, resumeID); err != nil {
		return fmt.Errorf("failed to clear signals: %w", err)
	}

	for _, s := range signals {
		_, err := tx.Exec(ctx,
			`INSERT INTO extracted_signals (resume_id, type, value, evidence_snippet, confidence)
			 VALUES ($1, $2, $3, $4, $5)`,
			resumeID, string(s.Type), s.Value, s.EvidenceSnippet, string(s.Confidence),
		)
		if err != nil {
			return fmt.Errorf("failed to insert signal: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit signals: %w", err)
	}
	return nil
}

// ListSignalsByResume retrieves the stored signals for a resume in
// insertion order
func (db *DB) ListSignalsByResume(ctx context.Context, resumeID uuid.UUID) ([]Signal, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, resume_id, type, value, evidence_snippet, confidence, created_at
		 FROM extracted_signals WHERE resume_id = $1 ORDER BY created_at ASC, id ASC`,
		resumeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list signals: %w", err)
	}
	defer rows.Close()

	var signals []Signal
	for rows.Next() {
		var s Signal
		if err := rows.Scan(&s.ID, &s.ResumeID, &s.Type, &s.Value, &s.EvidenceSnippet, &s.Confidence, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan signal: %w", err)
		}
		signals = append(signals, s)
	}
	return signals, nil
}
