package parsing

import (
	"regexp"

	"github.com/rolemark/rolemark/internal/types"
)

// educationPattern pairs a level with the token pattern that detects it.
type educationPattern struct {
	level   types.EducationLevel
	pattern *regexp.Regexp
}

// educationPatterns is ordered from highest degree to lowest. Resumes list
// their highest degree, so the first match wins and short-circuits the scan;
// this keeps a bachelor's mention inside a master's-program description from
// being mistaken for the candidate's level.
var educationPatterns = []educationPattern{
	{types.EducationPHD, regexp.MustCompile(`(?i)\b(PhD|Ph\.D\.|Doctor|Doctorate)\b`)},
	{types.EducationMaster, regexp.MustCompile(`(?i)\b(Master|M\.S\.|M\.A\.|MS|MA)\b`)},
	{types.EducationBachelor, regexp.MustCompile(`(?i)\b(Bachelor|B\.S\.|B\.A\.|BS|BA|B\.Sc\.)\b`)},
	{types.EducationAssociate, regexp.MustCompile(`(?i)\b(Associate|A\.S\.|AA|A\.A\.)\b`)},
	{types.EducationHS, regexp.MustCompile(`(?i)\b(High School|HS|H\.S\.)\b`)},
}

// extractEducationLevel tests the education pattern ladder against the
// original text and emits one estimate signal for the highest level found,
// or an UNKNOWN estimate at low confidence when nothing matches.
func (e *Extractor) extractEducationLevel(text string) []types.Signal {
	for _, ep := range educationPatterns {
		loc := ep.pattern.FindStringIndex(text)
		if loc == nil {
			continue
		}
		return []types.Signal{{
			Type:            types.SignalEducationLevelEstimate,
			Value:           string(ep.level),
			EvidenceSnippet: extractSnippet(text, loc[0], loc[1]-loc[0]),
			Confidence:      types.ConfidenceHigh,
		}}
	}

	return []types.Signal{{
		Type:            types.SignalEducationLevelEstimate,
		Value:           string(types.EducationUnknown),
		EvidenceSnippet: "No education token detected",
		Confidence:      types.ConfidenceLow,
	}}
}
