package parsing

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// projectBuilder accumulates one project entry during the scan.
type projectBuilder struct {
	entry       types.Project
	description []string
}

func (b *projectBuilder) build() types.Project {
	b.entry.Description = strings.Join(b.description, " ")
	return b.entry
}

// ExtractProjects scans the projects section line by line. A fully
// upper-case line, or one starting with an upper-case character that is
// not a bullet, names a new project. A "technologies"/"tech stack" line
// fills the technologies field from the text after the first colon;
// everything else joins the description. Zero entries yield a single
// blank placeholder.
func ExtractProjects(text string) []types.Project {
	var entries []types.Project
	var current *projectBuilder

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case startsProject(line):
			if current != nil {
				entries = append(entries, current.build())
			}
			current = &projectBuilder{entry: types.Project{Name: line}}
		case current == nil:
			// Text before the first project name has nothing to attach to.
		case isTechnologiesLine(line):
			current.entry.Technologies = technologiesValue(line)
		default:
			current.description = append(current.description, line)
		}
	}

	if current != nil {
		entries = append(entries, current.build())
	}
	if len(entries) == 0 {
		entries = []types.Project{{}}
	}
	return entries
}

func startsProject(line string) bool {
	if isUpperCase(line) {
		return true
	}
	first := []rune(line)[0]
	return unicode.IsUpper(first) && !isBulletLine(line)
}

// isUpperCase mirrors "every cased character is upper-case, and at
// least one exists".
func isUpperCase(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

func isTechnologiesLine(line string) bool {
	lower := strings.ToLower(line)
	return strings.Contains(lower, "technologies") || strings.Contains(lower, "tech stack")
}

// technologiesValue returns the text after the first colon, or the
// whole line when no colon is present.
func technologiesValue(line string) string {
	if _, after, found := strings.Cut(line, ":"); found {
		return strings.TrimSpace(after)
	}
	return strings.TrimSpace(line)
}
