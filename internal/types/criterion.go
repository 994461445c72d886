package types

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// CriterionType identifies the scoring rule a criterion applies.
type CriterionType string

const (
	CriterionKeywordSkill    CriterionType = "KEYWORD_SKILL"
	CriterionCustomKeywords  CriterionType = "CUSTOM_KEYWORDS"
	CriterionExperienceYears CriterionType = "EXPERIENCE_YEARS"
	CriterionEducationLevel  CriterionType = "EDUCATION_LEVEL"
)

// MatchMode controls how a keyword list is evaluated. Both modes currently
// score fractional coverage; the distinction is kept for config fidelity.
type MatchMode string

const (
	MatchAny MatchMode = "ANY"
	MatchAll MatchMode = "ALL"
)

// Criterion is a weighted, typed rule a resume is scored against.
// Criteria are scoped to a single role.
type Criterion struct {
	ID          uuid.UUID       `json:"id"`
	RoleID      uuid.UUID       `json:"role_id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Weight      int             `json:"weight"`
	Type        CriterionType   `json:"type"`
	Config      json.RawMessage `json:"config"`
}

// KeywordSkillConfig is the config payload for KEYWORD_SKILL criteria.
type KeywordSkillConfig struct {
	RequiredKeywords []string  `json:"requiredKeywords" validate:"required,min=1,max=50,dive,required"`
	MatchMode        MatchMode `json:"matchMode,omitempty" validate:"omitempty,oneof=ANY ALL"`
}

// CustomKeywordsConfig is the config payload for CUSTOM_KEYWORDS criteria.
type CustomKeywordsConfig struct {
	Keywords  []string  `json:"keywords" validate:"required,min=1,max=50,dive,required"`
	MatchMode MatchMode `json:"matchMode,omitempty" validate:"omitempty,oneof=ANY ALL"`
}

// ExperienceYearsConfig is the config payload for EXPERIENCE_YEARS criteria.
// TargetTitles is informational only and does not affect scoring.
type ExperienceYearsConfig struct {
	RequiredYears float64  `json:"requiredYears" validate:"min=0,max=50"`
	TargetTitles  []string `json:"targetTitles,omitempty"`
}

// EducationLevelConfig is the config payload for EDUCATION_LEVEL criteria.
type EducationLevelConfig struct {
	MinimumLevel EducationLevel `json:"minimumLevel" validate:"required,oneof=HS ASSOCIATE BACHELOR MASTER PHD"`
}

// Keywords returns the configured keyword list with the match mode applied
// to its default.
func (c *KeywordSkillConfig) Keywords() []string { return c.RequiredKeywords }

// Mode returns the effective match mode, defaulting to ANY.
func (c *KeywordSkillConfig) Mode() MatchMode {
	if c.MatchMode == "" {
		return MatchAny
	}
	return c.MatchMode
}

// Mode returns the effective match mode, defaulting to ANY.
func (c *CustomKeywordsConfig) Mode() MatchMode {
	if c.MatchMode == "" {
		return MatchAny
	}
	return c.MatchMode
}

// DecodeKeywordConfig decodes the criterion's config into its keyword list
// for either keyword-based criterion type.
func (c *Criterion) DecodeKeywordConfig() ([]string, MatchMode, error) {
	switch c.Type {
	case CriterionKeywordSkill:
		var cfg KeywordSkillConfig
		if err := json.Unmarshal(c.Config, &cfg); err != nil {
			return nil, "", fmt.Errorf("failed to decode %s config: %w", c.Type, err)
		}
		return cfg.RequiredKeywords, cfg.Mode(), nil
	case CriterionCustomKeywords:
		var cfg CustomKeywordsConfig
		if err := json.Unmarshal(c.Config, &cfg); err != nil {
			return nil, "", fmt.Errorf("failed to decode %s config: %w", c.Type, err)
		}
		return cfg.Keywords, cfg.Mode(), nil
	default:
		return nil, "", fmt.Errorf("criterion type %s has no keyword config", c.Type)
	}
}

// DecodeExperienceConfig decodes the criterion's config as an experience-years payload.
func (c *Criterion) DecodeExperienceConfig() (*ExperienceYearsConfig, error) {
	var cfg ExperienceYearsConfig
	if err := json.Unmarshal(c.Config, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s config: %w", c.Type, err)
	}
	return &cfg, nil
}

// DecodeEducationConfig decodes the criterion's config as an education-level payload.
func (c *Criterion) DecodeEducationConfig() (*EducationLevelConfig, error) {
	var cfg EducationLevelConfig
	if err := json.Unmarshal(c.Config, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s config: %w", c.Type, err)
	}
	return &cfg, nil
}
