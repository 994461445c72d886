package parsing

import "strings"

// snippetContext is the number of characters of original text kept on each
// side of a match when building an evidence snippet.
const snippetContext = 40

// extractSnippet returns the trimmed window of text around a match, with
// snippetContext characters of context on each side.
func extractSnippet(text string, startIndex, matchLen int) string {
	start := startIndex - snippetContext
	if start < 0 {
		start = 0
	}
	end := startIndex + matchLen + snippetContext
	if end > len(text) {
		end = len(text)
	}
	return strings.TrimSpace(text[start:end])
}
