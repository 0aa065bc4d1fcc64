package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestPrintResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resume := &types.Resume{
		PersonalInfo: types.PersonalInfo{
			Name:  "Jane Smith",
			Email: "jane@example.com",
			Phone: "555-123-4567",
		},
		Summary: "Engineer with 8 years of experience.",
		Experience: []types.Experience{
			{Title: "Senior Engineer", Company: "Acme Corp"},
		},
		Education: []types.Education{
			{Degree: "BS Computer Science"},
		},
		Skills: types.Skills{Technical: "Go, SQL"},
	}

	p.PrintResume(resume)
	output := buf.String()

	assert.Contains(t, output, "PARSED RESUME")
	assert.Contains(t, output, "Jane Smith")
	assert.Contains(t, output, "jane@example.com")
	assert.Contains(t, output, "Senior Engineer @ Acme Corp")
	assert.Contains(t, output, "BS Computer Science")
	assert.Contains(t, output, "Go, SQL")
}

func TestPrintResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResume(nil)

	assert.Empty(t, buf.String())
}

func TestPrintResume_SkipsPlaceholderEntries(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResume(&types.Resume{
		PersonalInfo: types.PersonalInfo{Name: "Jane Smith"},
		Education:    []types.Education{{}},
		Experience:   []types.Experience{{}},
	})
	output := buf.String()

	assert.NotContains(t, output, "Education:")
	assert.NotContains(t, output, "Experience:")
}

func TestPrintScoreReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &scoring.Report{
		Score: 72,
		Subscores: scoring.Subscores{
			FormatStructure:     80,
			KeywordOptimization: 65,
			ContentQuality:      70,
			Completeness:        75,
			QuantifiableResults: 50,
		},
		Feedback: []string{
			"Add more quantifiable achievements",
			"Expand your summary",
		},
	}

	p.PrintScoreReport(report)
	output := buf.String()

	assert.Contains(t, output, "ATS SCORE REPORT")
	assert.Contains(t, output, "72 / 100")
	assert.Contains(t, output, "80.0")
	assert.Contains(t, output, "Feedback:")
	assert.Contains(t, output, "Add more quantifiable achievements")
}

func TestPrintScoreReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreReport(nil)

	assert.Empty(t, buf.String())
}

func TestPrintScoreReport_TruncatesLongFeedbackList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &scoring.Report{
		Feedback: []string{"a", "b", "c", "d", "e", "f", "g"},
	}

	p.PrintScoreReport(report)

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintSuggestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuggestions([]string{"1. Add metrics", "2. Tighten summary"})
	output := buf.String()

	assert.Contains(t, output, "IMPROVEMENT SUGGESTIONS")
	assert.Contains(t, output, "1. Add metrics")
	assert.Contains(t, output, "2. Tighten summary")
}

func TestPrintSuggestions_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuggestions(nil)

	assert.Empty(t, buf.String())
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))

	assert.Contains(t, buf.String(), "...")
}
