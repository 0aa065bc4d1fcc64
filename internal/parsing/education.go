package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	degreePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(Bachelor|Master|Ph\.?D|B\.?S\.?|M\.?S\.?|B\.?A\.?|M\.?A\.?).*`),
		regexp.MustCompile(`(?i)(B\.Tech|M\.Tech|B\.E\.|M\.E\.)`),
	}
	yearPattern = regexp.MustCompile(`(19|20)\d{2}`)
	gpaPattern  = regexp.MustCompile(`(\d\.\d+)\s*/?(\d\.\d+)?`)
)

// ExtractEducation scans the education section line by line. A line
// matching a degree pattern opens a new entry, flushing the one in
// progress. Year, GPA and institution fields fill set-if-unset within
// the open entry. Zero entries yield a single blank placeholder.
func ExtractEducation(text string) []types.Education {
	var entries []types.Education
	var current *types.Education

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if isDegreeLine(line) {
			if current != nil {
				entries = append(entries, *current)
			}
			current = &types.Education{Degree: line}
		}
		if current == nil {
			continue
		}

		hasYear := yearPattern.MatchString(line)
		if hasYear && current.GraduationDate == "" {
			current.GraduationDate = yearPattern.FindString(line)
		}
		if gpa := gpaPattern.FindString(line); gpa != "" && current.GPA == "" {
			current.GPA = gpa
		}
		// Any remaining line becomes the institution, once. The degree
		// line excludes itself via the substring check.
		if !hasYear && !strings.Contains(current.Degree, line) && current.Institution == "" {
			current.Institution = line
		}
	}

	if current != nil {
		entries = append(entries, *current)
	}
	if len(entries) == 0 {
		entries = []types.Education{{}}
	}
	return entries
}

func isDegreeLine(line string) bool {
	for _, pattern := range degreePatterns {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}
