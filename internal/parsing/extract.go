package parsing

import (
	"time"

	"github.com/rolemark/rolemark/internal/types"
)

// Extractor scans raw resume text for typed, confidence-scored signals.
// The zero-cost clock indirection exists so tests can pin what "Present"
// resolves to.
type Extractor struct {
	now func() time.Time
}

// NewExtractor returns an extractor that resolves "Present" to the wall clock.
func NewExtractor() *Extractor {
	return &Extractor{now: time.Now}
}

// NewExtractorAt returns an extractor with a fixed notion of the current
// date. Used by tests and by replays that must reproduce a past extraction.
func NewExtractorAt(now func() time.Time) *Extractor {
	return &Extractor{now: now}
}

// ExtractSignals runs all signal extractors over the resume text. It always
// returns at least an experience estimate and an education estimate; absent
// evidence yields low-confidence placeholders rather than an error.
func (e *Extractor) ExtractSignals(text string) []types.Signal {
	signals := e.extractDateRanges(text)
	signals = append(signals, e.extractEducationLevel(text)...)
	return signals
}
