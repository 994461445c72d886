package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolemark/rolemark/internal/types"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCriteriaFile(t *testing.T) {
	path := writeTempFile(t, "criteria.json", `[
		{
			"name": "Go experience",
			"weight": 60,
			"type": "KEYWORD_SKILL",
			"config": {"requiredKeywords": ["go", "kubernetes"]}
		},
		{
			"name": "Education",
			"weight": 40,
			"type": "EDUCATION_LEVEL",
			"config": {"minimumLevel": "BACHELOR"}
		}
	]`)

	criteria, err := loadCriteriaFile(path)
	require.NoError(t, err)
	require.Len(t, criteria, 2)
	assert.Equal(t, "Go experience", criteria[0].Name)
	assert.Equal(t, types.CriterionKeywordSkill, criteria[0].Type)
	assert.Equal(t, 40, criteria[1].Weight)
}

func TestLoadCriteriaFile_Missing(t *testing.T) {
	_, err := loadCriteriaFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadCriteriaFile_InvalidJSON(t *testing.T) {
	path := writeTempFile(t, "criteria.json", "{not json")
	_, err := loadCriteriaFile(path)
	assert.Error(t, err)
}

func TestLoadCriteriaFile_Empty(t *testing.T) {
	path := writeTempFile(t, "criteria.json", "[]")
	_, err := loadCriteriaFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no criteria")
}

func TestLoadCriteriaFile_BadConfig(t *testing.T) {
	path := writeTempFile(t, "criteria.json", `[
		{
			"name": "Broken",
			"weight": 100,
			"type": "EXPERIENCE_YEARS",
			"config": {"requiredYears": -3}
		}
	]`)

	_, err := loadCriteriaFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken")
}

func TestReadTextInput_File(t *testing.T) {
	path := writeTempFile(t, "resume.txt", "Go developer since 2018")

	text, err := readTextInput(path)
	require.NoError(t, err)
	assert.Equal(t, "Go developer since 2018", text)
}

func TestReadTextInput_MissingFile(t *testing.T) {
	_, err := readTextInput(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}
