package parsing

import "strings"

// maxSummarySentences caps how much of the summary section survives.
const maxSummarySentences = 3

// ExtractSummary keeps the first three sentence fragments of the
// summary section. Empty input yields an empty string, not a lone
// period.
func ExtractSummary(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	fragments := strings.Split(strings.TrimSpace(text), ".")
	if len(fragments) > maxSummarySentences {
		fragments = fragments[:maxSummarySentences]
	}

	return strings.TrimSpace(strings.Join(fragments, ". ")) + "."
}
