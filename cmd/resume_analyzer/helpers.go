package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/rewriting"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// loadRecord reads a resume record from either a source document
// (PDF/DOCX) or a previously parsed JSON record.
func loadRecord(path string) (*types.Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := schemas.ValidateResumeJSON(string(data)); err != nil {
			return nil, fmt.Errorf("record does not validate against schema: %w", err)
		}
		var resume types.Resume
		if err := json.Unmarshal(data, &resume); err != nil {
			return nil, fmt.Errorf("failed to parse record JSON: %w", err)
		}
		return &resume, nil
	}

	format, err := extraction.FormatFromFilename(path)
	if err != nil {
		return nil, err
	}
	return parsing.ParseDocument(data, format)
}

// writeRecord marshals the record and writes it to path, or to stdout
// when path is empty.
func writeRecord(resume *types.Resume, path string) error {
	jsonBytes, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// mergedConfig loads an optional config file and overlays explicit
// flag values on top of it.
func mergedConfig(path string, flags config.Config) (config.Config, error) {
	if path == "" {
		return flags, nil
	}

	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := fileCfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return flags.MergeWithDefaults(*fileCfg), nil
}

// resolveAPIKey prefers the flag value over the environment.
func resolveAPIKey(flagValue string) (string, error) {
	apiKey := flagValue
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return "", fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}
	return apiKey, nil
}

// resolveModel falls back to the environment, then the default model.
func resolveModel(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		return model
	}
	return rewriting.DefaultModel
}
