package parsing

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rolemark/rolemark/internal/types"
)

// Three pattern families are tried independently against the original,
// case-preserving text so that snippets can be cut at match offsets.
var (
	// "Jan 2019 - Dec 2020", "January 2019 - Present"
	textualRangePattern = regexp.MustCompile(`(?i)([A-Za-z]{3,9})\s+(\d{4})\s*[-–—]\s*(?:([A-Za-z]{3,9})\s*)?(\d{4}|Present|Current)`)
	// "01/2019 - 12/2020", "01/2019 - Present"
	numericRangePattern = regexp.MustCompile(`(?i)(\d{1,2})/(\d{4})\s*[-–—]\s*(?:(\d{1,2})/)?\s*(\d{4}|Present|Current)`)
	// "2019 - 2020", "2019 - Present"
	yearRangePattern = regexp.MustCompile(`(?i)(\d{4})\s*[-–—]\s*(\d{4}|Present|Current)`)
)

// monthTable maps three-letter month prefixes to calendar months.
var monthTable = map[string]time.Month{
	"jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"apr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"aug": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dec": time.December,
}

// dateRange is a candidate employment span. Transient: only the merged
// total-duration estimate and audit signals leave this package.
type dateRange struct {
	start   time.Time
	end     time.Time
	snippet string
}

// parseMonth resolves a textual month token, abbreviated or full, to a
// calendar month. Tokens that merely share a prefix with a month name
// ("janitor") are rejected.
func parseMonth(name string) (time.Month, bool) {
	lower := strings.ToLower(name)
	if len(lower) < 3 {
		return 0, false
	}
	m, ok := monthTable[lower[:3]]
	if !ok {
		return 0, false
	}
	full := strings.ToLower(m.String())
	if !strings.HasPrefix(full, lower) && lower != "sept" {
		return 0, false
	}
	return m, true
}

// isPresentToken reports whether an end token means "still ongoing".
func isPresentToken(token string) bool {
	return strings.EqualFold(token, "Present") || strings.EqualFold(token, "Current")
}

// lastDayOfMonth returns the final calendar day of the given month.
func lastDayOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)
}

// extractDateRanges scans the original text with all three pattern families,
// pools the candidate ranges, merges overlaps, and emits experience signals.
// Malformed fragments are discarded per match; partial extraction is
// preferred over failing the whole resume.
func (e *Extractor) extractDateRanges(text string) []types.Signal {
	var ranges []dateRange
	ranges = append(ranges, e.collectTextualRanges(text)...)
	ranges = append(ranges, e.collectNumericRanges(text)...)
	ranges = append(ranges, e.collectYearRanges(text)...)

	if len(ranges) == 0 {
		return []types.Signal{{
			Type:            types.SignalExperienceYearsEstimate,
			Value:           "0",
			EvidenceSnippet: "No date ranges detected in resume",
			Confidence:      types.ConfidenceLow,
		}}
	}

	merged := mergeDateRanges(ranges)
	years := float64(totalMonths(merged)) / 12.0

	signals := []types.Signal{{
		Type:            types.SignalExperienceYearsEstimate,
		Value:           strconv.FormatFloat(years, 'f', 2, 64),
		EvidenceSnippet: merged[0].snippet,
		Confidence:      types.ConfidenceMedium,
	}}

	for _, r := range merged {
		signals = append(signals, types.Signal{
			Type:            types.SignalDateRange,
			Value:           fmt.Sprintf("%s to %s", r.start.Format("2006-01-02"), r.end.Format("2006-01-02")),
			EvidenceSnippet: r.snippet,
			Confidence:      types.ConfidenceHigh,
		})
	}

	return signals
}

// collectTextualRanges handles "<Month> <Year> - [<Month>] <Year|Present>".
func (e *Extractor) collectTextualRanges(text string) []dateRange {
	var ranges []dateRange
	for _, m := range textualRangePattern.FindAllStringSubmatchIndex(text, -1) {
		startMonthTok := submatch(text, m, 1)
		startYearTok := submatch(text, m, 2)
		endMonthTok := submatch(text, m, 3)
		endTok := submatch(text, m, 4)

		startMonth, ok := parseMonth(startMonthTok)
		if !ok {
			continue
		}
		startYear, err := strconv.Atoi(startYearTok)
		if err != nil {
			continue
		}
		start := time.Date(startYear, startMonth, 1, 0, 0, 0, 0, time.UTC)

		var end time.Time
		switch {
		case isPresentToken(endTok):
			end = e.now()
		case endMonthTok != "":
			endMonth, ok := parseMonth(endMonthTok)
			if !ok {
				continue
			}
			endYear, err := strconv.Atoi(endTok)
			if err != nil {
				continue
			}
			end = time.Date(endYear, endMonth, 1, 0, 0, 0, 0, time.UTC)
		default:
			endYear, err := strconv.Atoi(endTok)
			if err != nil {
				continue
			}
			end = lastDayOfMonth(endYear, time.December)
		}

		if end.Before(start) {
			continue
		}
		ranges = append(ranges, dateRange{start: start, end: end, snippet: extractSnippet(text, m[0], m[1]-m[0])})
	}
	return ranges
}

// collectNumericRanges handles "<MM>/<YYYY> - [<MM>/]<YYYY|Present>".
func (e *Extractor) collectNumericRanges(text string) []dateRange {
	var ranges []dateRange
	for _, m := range numericRangePattern.FindAllStringSubmatchIndex(text, -1) {
		startMonthNum, err := strconv.Atoi(submatch(text, m, 1))
		if err != nil || startMonthNum < 1 || startMonthNum > 12 {
			continue
		}
		startYear, err := strconv.Atoi(submatch(text, m, 2))
		if err != nil {
			continue
		}
		start := time.Date(startYear, time.Month(startMonthNum), 1, 0, 0, 0, 0, time.UTC)

		endMonthTok := submatch(text, m, 3)
		endTok := submatch(text, m, 4)

		var end time.Time
		if isPresentToken(endTok) {
			end = e.now()
		} else {
			endYear, err := strconv.Atoi(endTok)
			if err != nil {
				continue
			}
			endMonthNum := 12
			if endMonthTok != "" {
				endMonthNum, err = strconv.Atoi(endMonthTok)
				if err != nil || endMonthNum < 1 || endMonthNum > 12 {
					continue
				}
			}
			end = lastDayOfMonth(endYear, time.Month(endMonthNum))
		}

		if end.Before(start) {
			continue
		}
		ranges = append(ranges, dateRange{start: start, end: end, snippet: extractSnippet(text, m[0], m[1]-m[0])})
	}
	return ranges
}

// collectYearRanges handles "<YYYY> - <YYYY|Present>".
func (e *Extractor) collectYearRanges(text string) []dateRange {
	var ranges []dateRange
	for _, m := range yearRangePattern.FindAllStringSubmatchIndex(text, -1) {
		startYear, err := strconv.Atoi(submatch(text, m, 1))
		if err != nil {
			continue
		}
		start := time.Date(startYear, time.January, 1, 0, 0, 0, 0, time.UTC)

		endTok := submatch(text, m, 2)
		var end time.Time
		if isPresentToken(endTok) {
			end = e.now()
		} else {
			endYear, err := strconv.Atoi(endTok)
			if err != nil {
				continue
			}
			end = lastDayOfMonth(endYear, time.December)
		}

		if end.Before(start) {
			continue
		}
		ranges = append(ranges, dateRange{start: start, end: end, snippet: extractSnippet(text, m[0], m[1]-m[0])})
	}
	return ranges
}

// mergeDateRanges sorts candidates by start date and coalesces adjacent or
// overlapping spans (end >= next start), keeping the earliest start and the
// snippet of the first range in each merge chain.
func mergeDateRanges(ranges []dateRange) []dateRange {
	if len(ranges) == 0 {
		return ranges
	}

	sorted := make([]dateRange, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].start.Before(sorted[j].start) })

	merged := make([]dateRange, 0, len(sorted))
	current := sorted[0]
	for _, next := range sorted[1:] {
		if !current.end.Before(next.start) {
			if next.end.After(current.end) {
				current.end = next.end
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	merged = append(merged, current)

	return merged
}

// totalMonths sums calendar months across merged ranges, inclusive of both
// the start and end months of each span.
func totalMonths(ranges []dateRange) int {
	total := 0
	for _, r := range ranges {
		startMonths := r.start.Year()*12 + int(r.start.Month())
		endMonths := r.end.Year()*12 + int(r.end.Month())
		total += endMonths - startMonths + 1
	}
	return total
}

// submatch returns the text of a capture group from a FindAllStringSubmatchIndex match.
func submatch(text string, m []int, group int) string {
	lo, hi := m[2*group], m[2*group+1]
	if lo < 0 {
		return ""
	}
	return text[lo:hi]
}
