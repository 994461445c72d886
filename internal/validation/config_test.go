package validation

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/rolemark/rolemark/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_KeywordSkill_Valid(t *testing.T) {
	cfg := json.RawMessage(`{"requiredKeywords":["Go","Postgres"],"matchMode":"ANY"}`)
	assert.NoError(t, ValidateConfig(types.CriterionKeywordSkill, cfg))
}

func TestValidateConfig_KeywordSkill_MissingKeywords(t *testing.T) {
	cfg := json.RawMessage(`{"matchMode":"ANY"}`)
	err := ValidateConfig(types.CriterionKeywordSkill, cfg)
	require.Error(t, err)

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, types.CriterionKeywordSkill, configErr.Type)
}

func TestValidateConfig_KeywordSkill_EmptyList(t *testing.T) {
	cfg := json.RawMessage(`{"requiredKeywords":[]}`)
	assert.Error(t, ValidateConfig(types.CriterionKeywordSkill, cfg))
}

func TestValidateConfig_KeywordSkill_BlankKeyword(t *testing.T) {
	cfg := json.RawMessage(`{"requiredKeywords":["Go","   "]}`)
	assert.Error(t, ValidateConfig(types.CriterionKeywordSkill, cfg))
}

func TestValidateConfig_KeywordSkill_TooManyKeywords(t *testing.T) {
	keywords := make([]string, 51)
	for i := range keywords {
		keywords[i] = fmt.Sprintf("kw%d", i)
	}
	raw, err := json.Marshal(map[string]any{"requiredKeywords": keywords})
	require.NoError(t, err)

	assert.Error(t, ValidateConfig(types.CriterionKeywordSkill, raw))
}

func TestValidateConfig_KeywordSkill_BadMatchMode(t *testing.T) {
	cfg := json.RawMessage(`{"requiredKeywords":["Go"],"matchMode":"SOME"}`)
	assert.Error(t, ValidateConfig(types.CriterionKeywordSkill, cfg))
}

func TestValidateConfig_CustomKeywords_UsesKeywordsField(t *testing.T) {
	valid := json.RawMessage(`{"keywords":["Kafka"]}`)
	assert.NoError(t, ValidateConfig(types.CriterionCustomKeywords, valid))

	// The KEYWORD_SKILL field name is not accepted for CUSTOM_KEYWORDS.
	wrongField := json.RawMessage(`{"requiredKeywords":["Kafka"]}`)
	assert.Error(t, ValidateConfig(types.CriterionCustomKeywords, wrongField))
}

func TestValidateConfig_ExperienceYears(t *testing.T) {
	assert.NoError(t, ValidateConfig(types.CriterionExperienceYears, json.RawMessage(`{"requiredYears":5}`)))
	assert.NoError(t, ValidateConfig(types.CriterionExperienceYears, json.RawMessage(`{"requiredYears":0}`)))
	assert.NoError(t, ValidateConfig(types.CriterionExperienceYears,
		json.RawMessage(`{"requiredYears":3,"targetTitles":["Backend Engineer"]}`)))

	assert.Error(t, ValidateConfig(types.CriterionExperienceYears, json.RawMessage(`{"requiredYears":-1}`)))
	assert.Error(t, ValidateConfig(types.CriterionExperienceYears, json.RawMessage(`{"requiredYears":51}`)))
	assert.Error(t, ValidateConfig(types.CriterionExperienceYears, json.RawMessage(`{"requiredYears":"five"}`)))
	assert.Error(t, ValidateConfig(types.CriterionExperienceYears, json.RawMessage(`{}`)))
	assert.Error(t, ValidateConfig(types.CriterionExperienceYears,
		json.RawMessage(`{"requiredYears":3,"targetTitles":[42]}`)))
}

func TestValidateConfig_EducationLevel(t *testing.T) {
	for _, level := range []string{"HS", "ASSOCIATE", "BACHELOR", "MASTER", "PHD"} {
		cfg := json.RawMessage(`{"minimumLevel":"` + level + `"}`)
		assert.NoError(t, ValidateConfig(types.CriterionEducationLevel, cfg), "level %s", level)
	}

	assert.Error(t, ValidateConfig(types.CriterionEducationLevel, json.RawMessage(`{"minimumLevel":"KINDERGARTEN"}`)))
	assert.Error(t, ValidateConfig(types.CriterionEducationLevel, json.RawMessage(`{}`)))
}

func TestValidateConfig_UnknownType(t *testing.T) {
	err := ValidateConfig(types.CriterionType("GUT_FEELING"), json.RawMessage(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown criterion type")
}

func TestValidateConfig_MalformedJSON(t *testing.T) {
	assert.Error(t, ValidateConfig(types.CriterionKeywordSkill, json.RawMessage(`{"requiredKeywords":`)))
	assert.Error(t, ValidateConfig(types.CriterionKeywordSkill, nil))
}

func TestValidateCriterion(t *testing.T) {
	c := &types.Criterion{
		Name:   "Skills",
		Weight: 50,
		Type:   types.CriterionKeywordSkill,
		Config: json.RawMessage(`{"requiredKeywords":["Go"]}`),
	}
	assert.NoError(t, ValidateCriterion(c))

	c.Weight = 101
	err := ValidateCriterion(c)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "weight"))
}
