package parsing

import (
	"testing"

	"github.com/rolemark/rolemark/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractKeywordMatches_Basic(t *testing.T) {
	text := "I have extensive Java experience with Spring framework"
	signals := ExtractKeywordMatches(text, []string{"Java", "Spring", "Hibernate"})

	require.Len(t, signals, 2)
	assert.Equal(t, "Java", signals[0].Value)
	assert.Equal(t, "Spring", signals[1].Value)
	for _, s := range signals {
		assert.Equal(t, types.SignalKeywordMatch, s.Type)
		assert.Equal(t, types.ConfidenceHigh, s.Confidence)
		assert.NotEmpty(t, s.EvidenceSnippet)
	}
}

func TestExtractKeywordMatches_NormalizedContainment(t *testing.T) {
	// "Node.js" normalizes to "node js" and must match "node-js" in text.
	signals := ExtractKeywordMatches("built services in node-js and GO", []string{"Node.js", "go"})
	require.Len(t, signals, 2)
}

func TestExtractKeywordMatches_NoMatches(t *testing.T) {
	signals := ExtractKeywordMatches("pure frontend work", []string{"Terraform", "Ansible"})
	assert.Empty(t, signals)
}

func TestKeywordSnippet_ContextWindow(t *testing.T) {
	long := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa Java bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	snippet := KeywordSnippet(long, "Java")

	assert.Contains(t, snippet, "Java")
	// 40 chars of context each side plus the match itself.
	assert.LessOrEqual(t, len(snippet), len("Java")+2*snippetContext)
}

func TestKeywordSnippet_MatchNearStart(t *testing.T) {
	snippet := KeywordSnippet("Java developer with ten years of experience", "Java")
	assert.Contains(t, snippet, "Java developer")
}
