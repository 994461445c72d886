// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/rolemark/rolemark/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSignals outputs a human-readable summary of extracted signals,
// grouped by signal type.
func (p *Printer) PrintSignals(signals []types.Signal) {
	if len(signals) == 0 {
		return
	}

	byType := make(map[types.SignalType][]types.Signal)
	for _, sig := range signals {
		byType[sig.Type] = append(byType[sig.Type], sig)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total signals: %d\n", len(signals)))

	order := []types.SignalType{
		types.SignalExperienceYearsEstimate,
		types.SignalEducationLevelEstimate,
		types.SignalDateRange,
		types.SignalKeywordMatch,
	}
	for _, st := range order {
		group := byType[st]
		if len(group) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n%s:\n", st))
		count := min(len(group), maxItemsToShow)
		for i := 0; i < count; i++ {
			sig := group[i]
			sb.WriteString(fmt.Sprintf("  • %s [%s]\n", sig.Value, sig.Confidence))
		}
		if len(group) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(group)-maxItemsToShow))
		}
	}

	p.printBox("EXTRACTED SIGNALS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBreakdown outputs the per-criterion scores and the weighted total.
func (p *Printer) PrintBreakdown(breakdown *types.ScoreBreakdown) {
	if breakdown == nil {
		return
	}

	var sb strings.Builder
	for _, cs := range breakdown.CriterionScores {
		sb.WriteString(fmt.Sprintf("%-24s %5.1f%%  (weight %d)\n", cs.Name, cs.Score*100, cs.Weight))
		count := min(len(cs.Evidence), 2)
		for i := 0; i < count; i++ {
			ev := cs.Evidence[i]
			if len(ev) > 44 {
				ev = ev[:41] + "..."
			}
			sb.WriteString(fmt.Sprintf("    %s\n", ev))
		}
	}
	sb.WriteString(fmt.Sprintf("\nTotal: %.1f%%", breakdown.TotalScorePct))

	p.printBox("SCORE BREAKDOWN", sb.String())
}

// PrintComparison outputs the side totals and the generated explanation.
func (p *Printer) PrintComparison(left, right *types.ScoreBreakdown, explanation string) {
	if left == nil || right == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Resume A: %5.1f%%\n", left.TotalScorePct))
	sb.WriteString(fmt.Sprintf("Resume B: %5.1f%%\n", right.TotalScorePct))
	sb.WriteString("\n")
	sb.WriteString(explanation)

	p.printBox("COMPARISON", sb.String())
}
