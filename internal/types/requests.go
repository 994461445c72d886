package types

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateRoleRequest represents the request to create a hiring role.
type CreateRoleRequest struct {
	Title          string `json:"title" validate:"required,min=1,max=120"`
	JobDescription string `json:"job_description,omitempty" validate:"max=10000"`
}

// CreateCriterionRequest represents the request to add a criterion to a role.
// The config payload is validated against the per-type schema before persistence.
type CreateCriterionRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=80"`
	Description string          `json:"description,omitempty" validate:"max=500"`
	Weight      int             `json:"weight" validate:"min=0,max=100"`
	Type        CriterionType   `json:"type" validate:"required,oneof=KEYWORD_SKILL CUSTOM_KEYWORDS EXPERIENCE_YEARS EDUCATION_LEVEL"`
	Config      json.RawMessage `json:"config" validate:"required"`
}

// CreateResumeRequest represents the request to ingest a resume. The text is
// expected to already be plain UTF-8; document extraction happens upstream.
type CreateResumeRequest struct {
	CandidateName string `json:"candidate_name" validate:"required,min=1,max=120"`
	Text          string `json:"text" validate:"required,min=1"`
}

// EvaluationRequest represents the request to score a set of resumes against a role.
type EvaluationRequest struct {
	ResumeIDs []uuid.UUID `json:"resume_ids" validate:"required,min=2,max=10"`
}

// CompareRequest represents the request to explain the score difference
// between two already-evaluated resumes.
type CompareRequest struct {
	RoleID    uuid.UUID `json:"role_id" validate:"required"`
	ResumeAID uuid.UUID `json:"resume_a_id" validate:"required"`
	ResumeBID uuid.UUID `json:"resume_b_id" validate:"required"`
}

// Validate validates the CreateRoleRequest using the validator.
func (r *CreateRoleRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateCriterionRequest using the validator.
func (r *CreateCriterionRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateResumeRequest using the validator.
func (r *CreateResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the EvaluationRequest using the validator.
func (r *EvaluationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CompareRequest using the validator.
func (r *CompareRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
