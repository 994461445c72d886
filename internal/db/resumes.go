package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateResume stores a resume body for a user and returns the record
func (db *DB) CreateResume(ctx context.Context, userID uuid.UUID, candidateName, rawText string) (*Resume, error) {
	var r Resume
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, candidate_name, raw_text)
		 VALUES ($1, $2, $3)
		 RETURNING id, user_id, candidate_name, raw_text, created_at`,
		userID, candidateName, rawText,
	).Scan(&r.ID, &r.UserID, &r.CandidateName, &r.RawText, &r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return &r, nil
}

// GetResume retrieves a resume by ID. Returns nil when no resume exists.
func (db *DB) GetResume(ctx context.Context, resumeID uuid.UUID) (*Resume, error) {
	var r Resume
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, candidate_name, raw_text, created_at
		 FROM resumes WHERE id = $1`,
		resumeID,
	).Scan(&r.ID, &r.UserID, &r.CandidateName, &r.RawText, &r.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return &r, nil
}

// ListResumesByUser retrieves a user's resumes without bodies, newest first.
// Raw text is omitted because resume bodies are large and listings only
// need the metadata.
func (db *DB) ListResumesByUser(ctx context.Context, userID uuid.UUID) ([]Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, candidate_name, created_at
		 FROM resumes WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []Resume
	for rows.Next() {
		var r Resume
		if err := rows.Scan(&r.ID, &r.UserID, &r.CandidateName, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, r)
	}
	return resumes, nil
}

// DeleteResume deletes a resume and its signals and breakdowns (via cascade)
func (db *DB) DeleteResume(ctx context.Context, resumeID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, resumeID)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", resumeID)
	}
	return nil
}
