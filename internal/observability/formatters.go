// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/types"
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

// PrintResume outputs a human-readable summary of the parsed record.
func (p *Printer) PrintResume(resume *types.Resume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	info := resume.PersonalInfo
	sb.WriteString(fmt.Sprintf("Name:   %s\n", info.Name))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", info.Email))
	sb.WriteString(fmt.Sprintf("Phone:  %s\n", info.Phone))

	if resume.Summary != "" {
		summary := resume.Summary
		if len(summary) > 50 {
			summary = summary[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nSummary: %s\n", summary))
	}

	if resume.HasExperience() {
		sb.WriteString("\nExperience:\n")
		shown := 0
		for _, exp := range resume.Experience {
			if exp.IsZero() || shown == maxItemsToShow {
				continue
			}
			shown++
			sb.WriteString(fmt.Sprintf("  • %s", exp.Title))
			if exp.Company != "" {
				sb.WriteString(fmt.Sprintf(" @ %s", exp.Company))
			}
			sb.WriteString("\n")
		}
	}

	if resume.HasEducation() {
		sb.WriteString("\nEducation:\n")
		for _, edu := range resume.Education {
			if edu.IsZero() {
				continue
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", edu.Degree))
		}
	}

	if !resume.Skills.IsEmpty() {
		skills := resume.Skills.Technical
		if skills == "" {
			skills = resume.Skills.Soft
		}
		if len(skills) > 40 {
			skills = skills[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nSkills: %s\n", skills))
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoreReport outputs the ATS score with its subscores and feedback.
func (p *Printer) PrintScoreReport(report *scoring.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall Score: %d / 100\n\n", report.Score))

	sub := report.Subscores
	sb.WriteString(fmt.Sprintf("Format & Structure:    %5.1f\n", sub.FormatStructure))
	sb.WriteString(fmt.Sprintf("Keywords:              %5.1f\n", sub.KeywordOptimization))
	sb.WriteString(fmt.Sprintf("Content Quality:       %5.1f\n", sub.ContentQuality))
	sb.WriteString(fmt.Sprintf("Completeness:          %5.1f\n", sub.Completeness))
	sb.WriteString(fmt.Sprintf("Quantifiable Results:  %5.1f\n", sub.QuantifiableResults))

	if len(report.Feedback) > 0 {
		sb.WriteString("\nFeedback:\n")
		count := min(len(report.Feedback), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", report.Feedback[i]))
		}
		if len(report.Feedback) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Feedback)-maxItemsToShow))
		}
	}

	p.printBox("ATS SCORE REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs model-generated improvement suggestions.
func (p *Printer) PrintSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	for i, suggestion := range suggestions {
		if len(suggestion) > 50 {
			suggestion = suggestion[:47] + "..."
		}
		sb.WriteString(suggestion)
		if i < len(suggestions)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("IMPROVEMENT SUGGESTIONS", sb.String())
}
