// Package parsing extracts structured signals from raw resume text.
package parsing

import "strings"

// Normalize lowercases text and collapses every non-alphanumeric run into a
// single space for substring matching. The operation is idempotent:
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	lower := strings.ToLower(text)

	var sb strings.Builder
	sb.Grow(len(lower))
	lastWasSpace := true // leading separators are trimmed
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
			lastWasSpace = false
			continue
		}
		if !lastWasSpace {
			sb.WriteByte(' ')
			lastWasSpace = true
		}
	}

	return strings.TrimRight(sb.String(), " ")
}
