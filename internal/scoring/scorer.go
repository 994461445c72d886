// Package scoring computes per-criterion scores, weighted aggregates, and
// comparative explanations for scored resumes.
package scoring

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rolemark/rolemark/internal/parsing"
	"github.com/rolemark/rolemark/internal/types"
)

// maxEvidenceSnippets caps how many evidence strings a criterion carries.
const maxEvidenceSnippets = 3

// ScoreCriterion scores a single criterion against a resume. Keyword
// criteria scan the resume text directly; experience and education criteria
// read previously extracted signals. An unknown criterion type is a
// configuration error and fails loudly rather than being skipped.
func ScoreCriterion(c *types.Criterion, resumeText string, signals []types.Signal) (*types.CriterionScoreResult, error) {
	result := &types.CriterionScoreResult{
		CriterionID: c.ID,
		Name:        c.Name,
		Type:        c.Type,
		Weight:      c.Weight,
	}

	var (
		score    float64
		evidence []string
		err      error
	)

	switch c.Type {
	case types.CriterionKeywordSkill, types.CriterionCustomKeywords:
		score, evidence, err = scoreKeywords(c, resumeText)
	case types.CriterionExperienceYears:
		score, evidence, err = scoreExperienceYears(c, signals)
	case types.CriterionEducationLevel:
		score, evidence, err = scoreEducationLevel(c, signals)
	default:
		return nil, fmt.Errorf("unknown criterion type: %s", c.Type)
	}
	if err != nil {
		return nil, err
	}

	result.Score = clamp01(score)
	result.Evidence = evidence
	return result, nil
}

// scoreKeywords computes fractional keyword coverage. Both ANY and ALL match
// modes score matchedCount/totalKeywords; the mode is accepted for config
// fidelity but does not change the curve.
func scoreKeywords(c *types.Criterion, resumeText string) (float64, []string, error) {
	keywords, _, err := c.DecodeKeywordConfig()
	if err != nil {
		return 0, nil, err
	}
	if len(keywords) == 0 {
		return 0, nil, fmt.Errorf("criterion %s has no keywords configured", c.Name)
	}

	normalizedText := parsing.Normalize(resumeText)

	matched := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		normalizedKeyword := parsing.Normalize(keyword)
		if normalizedKeyword == "" {
			continue
		}
		if strings.Contains(normalizedText, normalizedKeyword) {
			matched = append(matched, keyword)
		}
	}

	score := float64(len(matched)) / float64(len(keywords))

	var evidence []string
	for i := 0; i < len(matched) && i < maxEvidenceSnippets; i++ {
		snippet := parsing.KeywordSnippet(resumeText, matched[i])
		evidence = append(evidence, fmt.Sprintf("Matched keyword '%s': %s", matched[i], snippet))
	}

	return score, evidence, nil
}

// scoreExperienceYears scores min(candidateYears/requiredYears, 1.0) from
// the resume's persisted experience estimate. A missing or unparseable
// signal counts as zero years, never as an error.
func scoreExperienceYears(c *types.Criterion, signals []types.Signal) (float64, []string, error) {
	cfg, err := c.DecodeExperienceConfig()
	if err != nil {
		return 0, nil, err
	}

	if cfg.RequiredYears == 0 {
		return 1.0, []string{"No minimum experience required"}, nil
	}

	candidateYears := 0.0
	if estimate := firstSignal(signals, types.SignalExperienceYearsEstimate); estimate != nil {
		if parsed, err := strconv.ParseFloat(estimate.Value, 64); err == nil {
			candidateYears = parsed
		}
	}

	var evidence []string
	for _, s := range signals {
		if s.Type != types.SignalDateRange {
			continue
		}
		evidence = append(evidence, s.EvidenceSnippet)
		if len(evidence) == maxEvidenceSnippets {
			break
		}
	}
	if len(evidence) == 0 {
		evidence = []string{"No date ranges detected in resume"}
	}

	score := candidateYears / cfg.RequiredYears
	if score > 1.0 {
		score = 1.0
	}
	return score, evidence, nil
}

// scoreEducationLevel compares the candidate's extracted level against the
// required minimum on a fixed ordinal scale. Meeting the bar scores 1.0;
// below the bar earns partial credit candidateValue/requiredValue.
func scoreEducationLevel(c *types.Criterion, signals []types.Signal) (float64, []string, error) {
	cfg, err := c.DecodeEducationConfig()
	if err != nil {
		return 0, nil, err
	}

	requiredValue, ok := types.EducationLevelValues[cfg.MinimumLevel]
	if !ok || requiredValue == 0 {
		return 0, nil, fmt.Errorf("invalid minimum education level: %s", cfg.MinimumLevel)
	}

	candidateLevel := types.EducationUnknown
	var evidence []string
	if signal := firstSignal(signals, types.SignalEducationLevelEstimate); signal != nil {
		candidateLevel = types.EducationLevel(signal.Value)
		if signal.EvidenceSnippet != "" {
			evidence = append(evidence, signal.EvidenceSnippet)
		}
	}
	if len(evidence) == 0 {
		evidence = []string{"No education token detected"}
	}

	candidateValue := types.EducationLevelValues[candidateLevel]
	if candidateValue >= requiredValue {
		return 1.0, evidence, nil
	}
	return candidateValue / requiredValue, evidence, nil
}

// firstSignal returns the first signal of the given type, or nil.
func firstSignal(signals []types.Signal, st types.SignalType) *types.Signal {
	for i := range signals {
		if signals[i].Type == st {
			return &signals[i]
		}
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
