package rendering

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Style names a built-in resume template
type Style string

const (
	StyleProfessional Style = "professional"
	StyleModern       Style = "modern"
	StyleClassic      Style = "classic"
)

// Styles returns the available template styles in display order.
func Styles() []Style {
	return []Style{StyleProfessional, StyleModern, StyleClassic}
}

// ParseStyle validates a user-supplied style name.
func ParseStyle(name string) (Style, error) {
	style := Style(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Styles() {
		if style == known {
			return style, nil
		}
	}
	return "", fmt.Errorf("unknown style %q (available: professional, modern, classic)", name)
}

// Document holds the rendered output formats for one resume
type Document struct {
	DOCX []byte
	PDF  []byte
}

// Render produces both output formats for the resume in the given
// style. PDF rendering requires Chrome/Chromium on the system.
func Render(ctx context.Context, resume *types.Resume, style Style) (*Document, error) {
	docx, err := RenderDOCX(resume, style)
	if err != nil {
		return nil, err
	}

	pdf, err := RenderPDF(ctx, resume, style)
	if err != nil {
		return nil, err
	}

	return &Document{DOCX: docx, PDF: pdf}, nil
}
