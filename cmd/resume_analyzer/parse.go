package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/observability"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a PDF or DOCX resume into a structured record",
	Long:  "Parse a PDF or DOCX resume into a structured JSON record that validates against the resume record schema.",
	RunE:  runParse,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseVerbose    bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to resume file (.pdf or .docx) (required)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a summary of the parsed record")
	_ = parseCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	resume, err := loadRecord(parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	if err := writeRecord(resume, parseOutputFile); err != nil {
		return err
	}

	if parseVerbose {
		observability.NewPrinter(os.Stderr).PrintResume(resume)
	}
	if parseOutputFile != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully parsed resume\n")
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", parseOutputFile)
	}
	return nil
}
