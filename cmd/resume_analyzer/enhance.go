package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/rewriting"
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance",
	Short: "Enhance resume content through Gemini",
	Long:  "Rewrite the summary, experience responsibilities and project descriptions of a resume through Gemini, producing a new JSON record. Entries whose rewrite fails keep their original text.",
	RunE:  runEnhance,
}

var (
	enhanceInputFile  string
	enhanceOutputFile string
	enhanceAPIKey     string
	enhanceModel      string
	enhanceSuggest    bool
)

func init() {
	enhanceCmd.Flags().StringVarP(&enhanceInputFile, "in", "i", "", "Path to resume file (.pdf, .docx or .json record) (required)")
	enhanceCmd.Flags().StringVarP(&enhanceOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	enhanceCmd.Flags().StringVar(&enhanceAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	enhanceCmd.Flags().StringVar(&enhanceModel, "model", "", "Gemini model name (overrides GEMINI_MODEL env var)")
	enhanceCmd.Flags().BoolVar(&enhanceSuggest, "suggest", false, "Also print improvement suggestions for the enhanced record")
	_ = enhanceCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(enhanceCmd)
}

func runEnhance(_ *cobra.Command, _ []string) error {
	apiKey, err := resolveAPIKey(enhanceAPIKey)
	if err != nil {
		return err
	}

	resume, err := loadRecord(enhanceInputFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	client, err := rewriting.NewGeminiClient(ctx, apiKey, resolveModel(enhanceModel))
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	enhancer := rewriting.NewEnhancer(client)
	enhanced, err := enhancer.EnhanceResume(ctx, resume)
	if err != nil {
		return fmt.Errorf("failed to enhance resume: %w", err)
	}

	if err := writeRecord(enhanced, enhanceOutputFile); err != nil {
		return err
	}

	if enhanceSuggest {
		suggestions, err := enhancer.Suggestions(ctx, enhanced)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: could not generate suggestions: %v\n", err)
		} else {
			observability.NewPrinter(os.Stderr).PrintSuggestions(suggestions)
		}
	}

	if enhanceOutputFile != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully enhanced resume\n")
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", enhanceOutputFile)
	}
	return nil
}
