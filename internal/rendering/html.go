package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

//go:embed templates/*.html
var templateFS embed.FS

// templateData is the data structure passed to a style template
type templateData struct {
	Resume  *types.Resume
	Contact []string
}

// parseStyleTemplate loads and parses the embedded template for a style
func parseStyleTemplate(style Style) (*template.Template, error) {
	name := fmt.Sprintf("templates/%s.html", style)
	tmpl, err := template.New(fmt.Sprintf("%s.html", style)).Funcs(template.FuncMap{
		"bullets": splitBullets,
	}).ParseFS(templateFS, name)
	if err != nil {
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to parse template for style %q", style),
			Cause:   err,
		}
	}
	return tmpl, nil
}

// RenderHTML renders the resume as a standalone HTML document in the
// given style.
func RenderHTML(resume *types.Resume, style Style) (string, error) {
	tmpl, err := parseStyleTemplate(style)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	err = tmpl.Execute(&result, &templateData{
		Resume:  resume,
		Contact: contactLine(resume.PersonalInfo),
	})
	if err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return result.String(), nil
}

// contactLine collects the non-empty contact fields in display order.
func contactLine(info types.PersonalInfo) []string {
	var parts []string
	for _, field := range []string{info.Email, info.Phone, info.LinkedIn, info.GitHub, info.Portfolio} {
		if field != "" {
			parts = append(parts, field)
		}
	}
	return parts
}

// splitBullets turns a newline-joined responsibilities blob into clean
// bullet texts, dropping leading bullet glyphs and blank lines.
func splitBullets(text string) []string {
	var bullets []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "•-* ")
		if line != "" {
			bullets = append(bullets, line)
		}
	}
	return bullets
}
