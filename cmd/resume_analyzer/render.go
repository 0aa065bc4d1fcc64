package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/rendering"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume record to DOCX and PDF",
	Long:  "Render a resume (source document or parsed JSON record) to formatted DOCX and PDF documents using one of the built-in styles. PDF output requires Chrome/Chromium on the system.",
	RunE:  runRender,
}

var (
	renderInputFile  string
	renderOutputDir  string
	renderStyle      string
	renderFormat     string
	renderConfigFile string
)

func init() {
	renderCmd.Flags().StringVarP(&renderInputFile, "in", "i", "", "Path to resume file (.pdf, .docx or .json record)")
	renderCmd.Flags().StringVarP(&renderOutputDir, "out-dir", "o", "", "Directory for rendered files (default: current directory)")
	renderCmd.Flags().StringVarP(&renderStyle, "style", "s", "", "Template style: professional, modern or classic (default: professional)")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "both", "Output format: docx, pdf or both")
	renderCmd.Flags().StringVarP(&renderConfigFile, "config", "c", "", "Path to JSON config file")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	if renderFormat != "docx" && renderFormat != "pdf" && renderFormat != "both" {
		return fmt.Errorf("unknown format %q (choose docx, pdf or both)", renderFormat)
	}

	cfg, err := mergedConfig(renderConfigFile, config.Config{
		Input:     renderInputFile,
		OutputDir: renderOutputDir,
		Style:     renderStyle,
	})
	if err != nil {
		return err
	}
	if cfg.Input == "" {
		return fmt.Errorf("input file is required (use --in or the config file)")
	}
	if cfg.Style == "" {
		cfg.Style = string(rendering.StyleProfessional)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}

	style, err := rendering.ParseStyle(cfg.Style)
	if err != nil {
		return err
	}

	resume, err := loadRecord(cfg.Input)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if renderFormat == "docx" || renderFormat == "both" {
		docx, err := rendering.RenderDOCX(resume, style)
		if err != nil {
			return fmt.Errorf("failed to render DOCX: %w", err)
		}
		path := filepath.Join(cfg.OutputDir, "resume.docx")
		if err := os.WriteFile(path, docx, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", path)
	}

	if renderFormat == "pdf" || renderFormat == "both" {
		pdf, err := rendering.RenderPDF(context.Background(), resume, style)
		if err != nil {
			return fmt.Errorf("failed to render PDF: %w", err)
		}
		path := filepath.Join(cfg.OutputDir, "resume.pdf")
		if err := os.WriteFile(path, pdf, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", path)
	}

	return nil
}
