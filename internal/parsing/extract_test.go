package parsing

import (
	"testing"

	"github.com/rolemark/rolemark/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSignals_FullResume(t *testing.T) {
	text := `Jane Smith
Master of Science in Computer Science, 2016

Senior Engineer, Acme Corp
Jan 2019 - Present
Built Go services on Kubernetes.

Engineer, Widgets Inc
06/2016 - 12/2018`

	signals := fixedExtractor().ExtractSignals(text)

	estimates := findSignals(signals, types.SignalExperienceYearsEstimate)
	require.Len(t, estimates, 1)
	assert.Equal(t, types.ConfidenceMedium, estimates[0].Confidence)

	education := findSignals(signals, types.SignalEducationLevelEstimate)
	require.Len(t, education, 1)
	assert.Equal(t, "MASTER", education[0].Value)

	assert.NotEmpty(t, findSignals(signals, types.SignalDateRange))
}

func TestExtractSignals_EmptyTextStillProducesPlaceholders(t *testing.T) {
	signals := fixedExtractor().ExtractSignals("")

	require.Len(t, signals, 2)
	assert.Equal(t, "0", findSignals(signals, types.SignalExperienceYearsEstimate)[0].Value)
	assert.Equal(t, "UNKNOWN", findSignals(signals, types.SignalEducationLevelEstimate)[0].Value)
}

func TestExtractSignals_Deterministic(t *testing.T) {
	text := "BS 2012. Jan 2013 - Dec 2015, then 2017 - 2019."

	first := fixedExtractor().ExtractSignals(text)
	second := fixedExtractor().ExtractSignals(text)
	assert.Equal(t, first, second)
}
