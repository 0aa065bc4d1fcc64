// Package segmentation splits extracted resume text into named sections
// using keyword header detection.
package segmentation

import "strings"

// sectionDefinition binds a section name to the header keywords that
// open it. Matching is substring-based over the lowercased trimmed
// line; no word-boundary check is applied. That can misfire on short
// lines that merely mention a keyword, but the behavior is part of the
// output contract and must not be tightened.
type sectionDefinition struct {
	name     string
	keywords []string
}

// sectionDefinitions is deliberately an ordered slice, not a map: when
// a line matches keywords of more than one section, the first section
// in this sequence wins, and that tie-break must be deterministic.
var sectionDefinitions = []sectionDefinition{
	{name: "summary", keywords: []string{"summary", "profile", "objective", "about"}},
	{name: "education", keywords: []string{"education", "academic", "qualification"}},
	{name: "experience", keywords: []string{"experience", "employment", "work history", "professional experience"}},
	{name: "skills", keywords: []string{"skills", "technical skills", "competencies"}},
	{name: "projects", keywords: []string{"projects", "portfolio"}},
	{name: "certifications", keywords: []string{"certifications", "certificates", "licenses"}},
}

// SectionNames returns the section names in matching order.
func SectionNames() []string {
	names := make([]string, len(sectionDefinitions))
	for i, def := range sectionDefinitions {
		names[i] = def.name
	}
	return names
}

// Split scans the text line by line and returns a mapping from section
// name to the newline-joined body lines following that section's
// header, up to the next recognized header. Header lines themselves are
// discarded, as are lines before the first header. Sections that
// captured no lines are absent from the result.
func Split(text string) map[string]string {
	sections := make(map[string]string)

	var current string
	var body []string

	flush := func() {
		if current != "" && len(body) > 0 {
			sections[current] = strings.Join(body, "\n")
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if name, ok := matchHeader(line); ok {
			flush()
			current = name
			body = nil
			continue
		}
		if current != "" {
			body = append(body, line)
		}
	}
	flush()

	return sections
}

// matchHeader reports whether the line opens a section, and which one.
func matchHeader(line string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(line))
	for _, def := range sectionDefinitions {
		for _, keyword := range def.keywords {
			if strings.Contains(lower, keyword) {
				return def.name, true
			}
		}
	}
	return "", false
}
