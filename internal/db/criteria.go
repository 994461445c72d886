package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateCriterion inserts a scoring criterion for a role. Config must
// already be validated against the schema for its type.
func (db *DB) CreateCriterion(ctx context.Context, roleID uuid.UUID, name string, weight int, criterionType string, config json.RawMessage) (*Criterion, error) {
	var c Criterion
	err := db.pool.QueryRow(ctx,
		`INSERT INTO criteria (role_id, name, weight, type, config)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, role_id, name, weight, type, config, created_at`,
		roleID, name, weight, criterionType, config,
	).Scan(&c.ID, &c.RoleID, &c.Name, &c.Weight, &c.Type, &c.Config, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create criterion: %w", err)
	}
	return &c, nil
}

// GetCriterion retrieves a criterion by ID. Returns nil when no criterion exists.
func (db *DB) GetCriterion(ctx context.Context, criterionID uuid.UUID) (*Criterion, error) {
	var c Criterion
	err := db.pool.QueryRow(ctx,
		`SELECT id, role_id, name, weight, type, config, created_at
		 FROM criteria WHERE id = $1`,
		criterionID,
	).Scan(&c.ID, &c.RoleID, &c.Name, &c.Weight, &c.Type, &c.Config, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get criterion: %w", err)
	}
	return &c, nil
}

// ListCriteriaByRole retrieves the criteria for a role in insertion order
func (db *DB) ListCriteriaByRole(ctx context.Context, roleID uuid.UUID) ([]Criterion, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, role_id, name, weight, type, config, created_at
		 FROM criteria WHERE role_id = $1 ORDER BY created_at ASC`,
		roleID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list criteria: %w", err)
	}
	defer rows.Close()

	var criteria []Criterion
	for rows.Next() {
		var c Criterion
		if err := rows.Scan(&c.ID, &c.RoleID, &c.Name, &c.Weight, &c.Type, &c.Config, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan criterion: %w", err)
		}
		criteria = append(criteria, c)
	}
	return criteria, nil
}

// DeleteCriterion deletes a criterion by ID
func (db *DB) DeleteCriterion(ctx context.Context, criterionID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM criteria WHERE id = $1`, criterionID)
	if err != nil {
		return fmt.Errorf("failed to delete criterion: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("criterion not found: %s", criterionID)
	}
	return nil
}
