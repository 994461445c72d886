package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rolemark/rolemark/internal/observability"
	"github.com/rolemark/rolemark/internal/parsing"
)

var (
	extractFile    string
	extractAsJSON  bool
	extractVerbose bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract signals from resume text",
	Long:  "Runs the deterministic signal extractor over a resume text file and prints the date ranges, experience estimate and education level it found. Reads stdin when no file is given.",
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractFile, "file", "f", "", "Path to resume text file (default stdin)")
	extractCmd.Flags().BoolVar(&extractAsJSON, "json", false, "Emit signals as JSON")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a formatted signal summary")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	text, err := readTextInput(extractFile)
	if err != nil {
		return err
	}

	signals := parsing.NewExtractor().ExtractSignals(text)

	if extractAsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(signals)
	}

	if extractVerbose {
		observability.NewPrinter(os.Stdout).PrintSignals(signals)
		return nil
	}

	for _, sig := range signals {
		fmt.Printf("%s\t%s\t%s\n", sig.Type, sig.Value, sig.Confidence)
	}
	return nil
}

// readTextInput reads the resume body from a file, or stdin when path is empty
func readTextInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
