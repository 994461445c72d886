// Package validation checks criterion configuration payloads against their
// per-type schemas before they are persisted. Validation is structural only;
// it never re-derives correctness from resume content, and it runs at
// creation/update time, never at scoring time.
package validation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/rolemark/rolemark/internal/types"
)

// Per-type JSON Schemas. Each criterion kind has a closed required-field
// shape; unknown keys are tolerated, wrong shapes are not.
const (
	keywordSkillSchema = `{
		"type": "object",
		"required": ["requiredKeywords"],
		"properties": {
			"requiredKeywords": {
				"type": "array",
				"minItems": 1,
				"maxItems": 50,
				"items": {"type": "string", "pattern": "\\S"}
			},
			"matchMode": {"enum": ["ANY", "ALL"]}
		}
	}`

	customKeywordsSchema = `{
		"type": "object",
		"required": ["keywords"],
		"properties": {
			"keywords": {
				"type": "array",
				"minItems": 1,
				"maxItems": 50,
				"items": {"type": "string", "pattern": "\\S"}
			},
			"matchMode": {"enum": ["ANY", "ALL"]}
		}
	}`

	experienceYearsSchema = `{
		"type": "object",
		"required": ["requiredYears"],
		"properties": {
			"requiredYears": {"type": "number", "minimum": 0, "maximum": 50},
			"targetTitles": {
				"type": "array",
				"items": {"type": "string"}
			}
		}
	}`

	educationLevelSchema = `{
		"type": "object",
		"required": ["minimumLevel"],
		"properties": {
			"minimumLevel": {"enum": ["HS", "ASSOCIATE", "BACHELOR", "MASTER", "PHD"]}
		}
	}`
)

// configSchemas maps each criterion type to its compiled schema. Compiled
// once at startup; read-only afterwards.
var configSchemas = map[types.CriterionType]*gojsonschema.Schema{}

func init() {
	for criterionType, raw := range map[types.CriterionType]string{
		types.CriterionKeywordSkill:    keywordSkillSchema,
		types.CriterionCustomKeywords:  customKeywordsSchema,
		types.CriterionExperienceYears: experienceYearsSchema,
		types.CriterionEducationLevel:  educationLevelSchema,
	} {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
		if err != nil {
			panic(fmt.Sprintf("invalid builtin schema for %s: %v", criterionType, err))
		}
		configSchemas[criterionType] = schema
	}
}

// ConfigError reports why a criterion config failed validation.
type ConfigError struct {
	Type     types.CriterionType
	Problems []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s config: %s", e.Type, strings.Join(e.Problems, "; "))
}

// ValidateConfig validates a raw criterion config payload against the schema
// for its declared type. An unknown type is rejected outright.
func ValidateConfig(criterionType types.CriterionType, config json.RawMessage) error {
	schema, ok := configSchemas[criterionType]
	if !ok {
		return fmt.Errorf("unknown criterion type: %s", criterionType)
	}

	if len(config) == 0 {
		return &ConfigError{Type: criterionType, Problems: []string{"config payload is empty"}}
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(config))
	if err != nil {
		return &ConfigError{Type: criterionType, Problems: []string{err.Error()}}
	}

	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, resultErr := range result.Errors() {
			problems = append(problems, resultErr.String())
		}
		return &ConfigError{Type: criterionType, Problems: problems}
	}

	return nil
}

// ValidateCriterion validates a full criterion record: weight range, known
// type, and config shape.
func ValidateCriterion(c *types.Criterion) error {
	if c.Weight < 0 || c.Weight > 100 {
		return fmt.Errorf("criterion weight must be in [0, 100], got %d", c.Weight)
	}
	return ValidateConfig(c.Type, c.Config)
}
