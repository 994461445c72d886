package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rolemark/rolemark/internal/evaluation"
	"github.com/rolemark/rolemark/internal/observability"
	"github.com/rolemark/rolemark/internal/parsing"
	"github.com/rolemark/rolemark/internal/types"
	"github.com/rolemark/rolemark/internal/validation"
)

var (
	scoreResumeFile       string
	scoreCriteriaFile     string
	scoreEnforceWeightSum bool
	scoreVerbose          bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a criteria file",
	Long:  "Extracts signals from a resume and scores it against the weighted criteria in a JSON file, printing the per-criterion breakdown and weighted total.",
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreResumeFile, "resume", "r", "", "Path to resume text file (required)")
	scoreCmd.Flags().StringVarP(&scoreCriteriaFile, "criteria", "c", "", "Path to criteria JSON file (required)")
	scoreCmd.Flags().BoolVar(&scoreEnforceWeightSum, "enforce-weight-sum", false, "Reject the run unless criteria weights sum to 100")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a formatted breakdown")

	if err := scoreCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("criteria"); err != nil {
		panic(fmt.Sprintf("failed to mark criteria flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	text, err := readTextInput(scoreResumeFile)
	if err != nil {
		return err
	}

	criteria, err := loadCriteriaFile(scoreCriteriaFile)
	if err != nil {
		return err
	}

	signals := parsing.NewExtractor().ExtractSignals(text)

	breakdown, err := evaluation.Evaluate(text, signals, criteria, evaluation.Options{
		EnforceWeightSum: scoreEnforceWeightSum,
	})
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}

	if scoreVerbose {
		p := observability.NewPrinter(os.Stdout)
		p.PrintSignals(signals)
		p.PrintBreakdown(breakdown)
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(breakdown)
}

// loadCriteriaFile reads a JSON array of criteria and validates each config
// payload against the schema for its type.
func loadCriteriaFile(path string) ([]types.Criterion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var criteria []types.Criterion
	if err := json.Unmarshal(data, &criteria); err != nil {
		return nil, fmt.Errorf("failed to parse criteria file: %w", err)
	}
	if len(criteria) == 0 {
		return nil, fmt.Errorf("criteria file %s contains no criteria", path)
	}

	for i, c := range criteria {
		if err := validation.ValidateConfig(c.Type, c.Config); err != nil {
			return nil, fmt.Errorf("criterion %d (%s): %w", i, c.Name, err)
		}
	}

	return criteria, nil
}
