package parsing

import (
	"strings"

	"github.com/rolemark/rolemark/internal/types"
)

// ExtractKeywordMatches tests each keyword for normalized substring
// containment in the resume text and emits one KEYWORD_MATCH signal per hit
// with a context snippet around the first occurrence.
func ExtractKeywordMatches(text string, keywords []string) []types.Signal {
	normalizedText := Normalize(text)

	var signals []types.Signal
	for _, keyword := range keywords {
		normalizedKeyword := Normalize(keyword)
		if normalizedKeyword == "" || !strings.Contains(normalizedText, normalizedKeyword) {
			continue
		}
		signals = append(signals, types.Signal{
			Type:            types.SignalKeywordMatch,
			Value:           keyword,
			EvidenceSnippet: KeywordSnippet(text, keyword),
			Confidence:      types.ConfidenceHigh,
		})
	}
	return signals
}

// KeywordSnippet builds an evidence snippet around the first occurrence of
// keyword in the original text. When the keyword only matches after
// normalization, the snippet is cut from the normalized text instead.
func KeywordSnippet(text, keyword string) string {
	if idx := strings.Index(strings.ToLower(text), strings.ToLower(keyword)); idx >= 0 {
		return extractSnippet(text, idx, len(keyword))
	}

	normalizedText := Normalize(text)
	normalizedKeyword := Normalize(keyword)
	if idx := strings.Index(normalizedText, normalizedKeyword); idx >= 0 {
		return extractSnippet(normalizedText, idx, len(normalizedKeyword))
	}
	return ""
}
