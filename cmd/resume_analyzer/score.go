package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against ATS heuristics",
	Long:  "Score a resume (source document or parsed JSON record) against ATS heuristics and print the report with qualitative feedback.",
	RunE:  runScore,
}

var (
	scoreInputFile  string
	scoreOutputFile string
	scoreAsJSON     bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreInputFile, "in", "i", "", "Path to resume file (.pdf, .docx or .json record) (required)")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to output report JSON file")
	scoreCmd.Flags().BoolVar(&scoreAsJSON, "json", false, "Print the report as JSON instead of formatted output")
	_ = scoreCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	resume, err := loadRecord(scoreInputFile)
	if err != nil {
		return err
	}

	report := scoring.Score(resume)

	if scoreOutputFile != "" || scoreAsJSON {
		jsonBytes, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		if scoreOutputFile != "" {
			if err := os.WriteFile(scoreOutputFile, jsonBytes, 0644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
		}
		if scoreAsJSON {
			_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		}
	}

	if !scoreAsJSON {
		observability.NewPrinter(os.Stdout).PrintScoreReport(report)
	}
	return nil
}
