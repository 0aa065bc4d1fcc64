package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`[\+\(]?[1-9][0-9 .\-\(\)]{8,}[0-9]`)
	urlPattern   = regexp.MustCompile(`https?://(?:www\.)?[-a-zA-Z0-9@:%._\+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b(?:[-a-zA-Z0-9()@:%_\+.~#?&/=]*)`)
)

// ExtractPersonalInfo scans the entire document text, not a segmented
// section: contact details usually sit above the first section header,
// which the segmenter discards. Missing matches yield empty strings.
func ExtractPersonalInfo(text string) types.PersonalInfo {
	info := types.PersonalInfo{
		Email: emailPattern.FindString(text),
		Phone: phonePattern.FindString(text),
	}

	// The first non-blank line is the candidate name.
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			info.Name = trimmed
			break
		}
	}

	urls := urlPattern.FindAllString(text, -1)
	for _, url := range urls {
		if info.LinkedIn == "" && strings.Contains(strings.ToLower(url), "linkedin") {
			info.LinkedIn = url
		}
		if info.GitHub == "" && strings.Contains(strings.ToLower(url), "github") {
			info.GitHub = url
		}
	}
	for _, url := range urls {
		if url != info.LinkedIn && url != info.GitHub {
			info.Portfolio = url
			break
		}
	}

	return info
}
