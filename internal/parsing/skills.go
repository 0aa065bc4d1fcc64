package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// classifierKeywords marks a skill line as technical. This is the
// parser's coarse split; the scorer carries its own, larger vocabulary.
var classifierKeywords = []string{
	"python", "java", "javascript", "react", "sql", "aws", "docker", "git",
}

// skillHeaderWords identify leftover header lines inside the section body.
var skillHeaderWords = []string{"skills", "technical", "soft"}

var bulletPrefixPattern = regexp.MustCompile(`^[•\-\*]\s*`)

// ExtractSkills strips bullets from the section's lines and classifies
// each as technical or soft by keyword. If no line classifies as
// technical, the whole list lands in the technical field so nothing is
// dropped.
func ExtractSkills(text string) types.Skills {
	if text == "" {
		return types.Skills{}
	}

	var all, technical, soft []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || containsAny(strings.ToLower(line), skillHeaderWords) {
			continue
		}
		line = bulletPrefixPattern.ReplaceAllString(line, "")
		all = append(all, line)

		if containsAny(strings.ToLower(line), classifierKeywords) {
			technical = append(technical, line)
		} else {
			soft = append(soft, line)
		}
	}

	result := types.Skills{
		Technical: strings.Join(technical, ", "),
		Soft:      strings.Join(soft, ", "),
	}
	if result.Technical == "" {
		// Nothing classified as technical: keep the full list there so
		// no skill is dropped, even though it duplicates the soft list.
		result.Technical = strings.Join(all, ", ")
	}
	return result
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
