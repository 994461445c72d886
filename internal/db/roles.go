package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateRole inserts a new role for a user and returns the stored record
func (db *DB) CreateRole(ctx context.Context, userID uuid.UUID, title, description string) (*Role, error) {
	var r Role
	err := db.pool.QueryRow(ctx,
		`INSERT INTO roles (user_id, title, description)
		 VALUES ($1, $2, $3)
		 RETURNING id, user_id, title, COALESCE(description, ''), created_at, updated_at`,
		userID, title, description,
	).Scan(&r.ID, &r.UserID, &r.Title, &r.Description, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}
	return &r, nil
}

// GetRole retrieves a role by ID. Returns nil when no role exists.
func (db *DB) GetRole(ctx context.Context, roleID uuid.UUID) (*Role, error) {
	var r Role
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, title, COALESCE(description, ''), created_at, updated_at
		 FROM roles WHERE id = $1`,
		roleID,
	).Scan(&r.ID, &r.UserID, &r.Title, &r.Description, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	return &r, nil
}

// ListRolesByUser retrieves a user's roles, newest first
func (db *DB) ListRolesByUser(ctx context.Context, userID uuid.UUID) ([]Role, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, title, COALESCE(description, ''), created_at, updated_at
		 FROM roles WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()

	var roles []Role
	for rows.Next() {
		var r Role
		if err := rows.Scan(&r.ID, &r.UserID, &r.Title, &r.Description, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, r)
	}
	return roles, nil
}

// DeleteRole deletes a role and its criteria and breakdowns (via cascade)
func (db *DB) DeleteRole(ctx context.Context, roleID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM roles WHERE id = $1`, roleID)
	if err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("role not found: %s", roleID)
	}
	return nil
}
