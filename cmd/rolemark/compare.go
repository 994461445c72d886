package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rolemark/rolemark/internal/evaluation"
	"github.com/rolemark/rolemark/internal/observability"
	"github.com/rolemark/rolemark/internal/parsing"
	"github.com/rolemark/rolemark/internal/scoring"
)

var (
	compareResumeA          string
	compareResumeB          string
	compareCriteriaFile     string
	compareEnforceWeightSum bool
	compareVerbose          bool
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two resumes against the same criteria",
	Long:  "Scores two resumes against the criteria in a JSON file and explains which one scored higher and why, naming the criteria that drove the difference.",
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&compareResumeA, "resume-a", "", "Path to first resume text file (required)")
	compareCmd.Flags().StringVar(&compareResumeB, "resume-b", "", "Path to second resume text file (required)")
	compareCmd.Flags().StringVarP(&compareCriteriaFile, "criteria", "c", "", "Path to criteria JSON file (required)")
	compareCmd.Flags().BoolVar(&compareEnforceWeightSum, "enforce-weight-sum", false, "Reject the run unless criteria weights sum to 100")
	compareCmd.Flags().BoolVarP(&compareVerbose, "verbose", "v", false, "Print formatted breakdowns alongside the explanation")

	if err := compareCmd.MarkFlagRequired("resume-a"); err != nil {
		panic(fmt.Sprintf("failed to mark resume-a flag as required: %v", err))
	}
	if err := compareCmd.MarkFlagRequired("resume-b"); err != nil {
		panic(fmt.Sprintf("failed to mark resume-b flag as required: %v", err))
	}
	if err := compareCmd.MarkFlagRequired("criteria"); err != nil {
		panic(fmt.Sprintf("failed to mark criteria flag as required: %v", err))
	}

	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, _ []string) error {
	criteria, err := loadCriteriaFile(compareCriteriaFile)
	if err != nil {
		return err
	}

	textA, err := readTextInput(compareResumeA)
	if err != nil {
		return err
	}
	textB, err := readTextInput(compareResumeB)
	if err != nil {
		return err
	}

	extractor := parsing.NewExtractor()
	opts := evaluation.Options{EnforceWeightSum: compareEnforceWeightSum}

	left, err := evaluation.Evaluate(textA, extractor.ExtractSignals(textA), criteria, opts)
	if err != nil {
		return fmt.Errorf("scoring %s failed: %w", compareResumeA, err)
	}
	right, err := evaluation.Evaluate(textB, extractor.ExtractSignals(textB), criteria, opts)
	if err != nil {
		return fmt.Errorf("scoring %s failed: %w", compareResumeB, err)
	}

	explanation := scoring.Explain(left, right)

	if compareVerbose {
		p := observability.NewPrinter(os.Stdout)
		p.PrintBreakdown(left)
		p.PrintBreakdown(right)
		p.PrintComparison(left, right, explanation)
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"resume_a":    map[string]any{"total_score": left.TotalScore, "total_score_pct": left.TotalScorePct},
		"resume_b":    map[string]any{"total_score": right.TotalScore, "total_score_pct": right.TotalScorePct},
		"explanation": explanation,
	})
}
