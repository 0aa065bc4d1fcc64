// Package main provides the entry point for the Resume Analyzer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_analyzer",
	Short: "Resume parsing, ATS scoring and enhancement",
	Long:  "Resume Analyzer extracts structured records from PDF and DOCX resumes, scores them against ATS heuristics, enhances content through Gemini and renders formatted documents.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
