package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User represents a stored account
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet  bool      `json:"password_set" db:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Role represents a job opening that resumes are screened against
type Role struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Criterion is a stored scoring rule attached to a role. Config holds the
// type-specific JSON document validated before insert.
type Criterion struct {
	ID        uuid.UUID       `json:"id"`
	RoleID    uuid.UUID       `json:"role_id"`
	Name      string          `json:"name"`
	Weight    int             `json:"weight"`
	Type      string          `json:"type"`
	Config    json.RawMessage `json:"config"`
	CreatedAt time.Time       `json:"created_at"`
}

// Resume represents an uploaded resume body
type Resume struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	CandidateName string    `json:"candidate_name"`
	RawText       string    `json:"raw_text"`
	CreatedAt     time.Time `json:"created_at"`
}

// Signal is a stored extraction result for a resume
type Signal struct {
	ID              uuid.UUID `json:"id"`
	ResumeID        uuid.UUID `json:"resume_id"`
	Type            string    `json:"type"`
	Value           string    `json:"value"`
	EvidenceSnippet string    `json:"evidence_snippet"`
	Confidence      string    `json:"confidence"`
	CreatedAt       time.Time `json:"created_at"`
}

// Breakdown is a stored scoring result for a resume against a role.
// CriterionScores holds the per-criterion detail as JSONB.
type Breakdown struct {
	ID              uuid.UUID       `json:"id"`
	RoleID          uuid.UUID       `json:"role_id"`
	ResumeID        uuid.UUID       `json:"resume_id"`
	CriterionScores json.RawMessage `json:"criterion_scores"`
	TotalScore      float64         `json:"total_score"`
	TotalScorePct   float64         `json:"total_score_pct"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
