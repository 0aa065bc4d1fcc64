package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Feedback trigger thresholds. The wording below is advisory text for
// the end user; the thresholds and ordering are the stable contract.
const (
	formatFeedbackThreshold       = 70
	keywordFeedbackThreshold      = 70
	contentFeedbackThreshold      = 70
	completenessFeedbackThreshold = 80
	quantifiableLowThreshold      = 60
	allGoodThreshold              = 70
	quantifiablePraiseThreshold   = 80
)

func generateFeedback(sub Subscores, resume *types.Resume) []string {
	var feedback []string

	if sub.FormatStructure < formatFeedbackThreshold {
		feedback = append(feedback,
			"Consider adding more contact information (email, phone, LinkedIn)")
	}

	if sub.KeywordOptimization < keywordFeedbackThreshold {
		feedback = append(feedback,
			"Add more relevant technical keywords and action verbs to improve ATS visibility",
			"Use strong action verbs like 'achieved', 'implemented', 'led', 'optimized'")
	}

	if sub.ContentQuality < contentFeedbackThreshold {
		feedback = append(feedback,
			"Expand your experience descriptions with more details and context",
			"Consider adding a professional summary (30-100 words)")
	}

	if sub.Completeness < completenessFeedbackThreshold {
		var missing []string
		if resume.Summary == "" {
			missing = append(missing, "Professional Summary")
		}
		if len(resume.Projects) == 0 {
			missing = append(missing, "Projects")
		}
		if len(missing) > 0 {
			feedback = append(feedback,
				fmt.Sprintf("Consider adding: %s", strings.Join(missing, ", ")))
		}
	}

	if sub.QuantifiableResults < quantifiableLowThreshold {
		feedback = append(feedback,
			"Add more quantifiable achievements (e.g., 'Increased efficiency by 30%', 'Managed team of 5')",
			"Use numbers, percentages, and metrics to demonstrate impact")
	}

	if sub.FormatStructure >= allGoodThreshold &&
		sub.KeywordOptimization >= allGoodThreshold &&
		sub.ContentQuality >= allGoodThreshold &&
		sub.Completeness >= allGoodThreshold &&
		sub.QuantifiableResults >= allGoodThreshold {
		feedback = append(feedback,
			"Great job! Your resume is well-structured and ATS-friendly")
	}

	if sub.QuantifiableResults >= quantifiablePraiseThreshold {
		feedback = append(feedback,
			"Excellent use of quantifiable achievements!")
	}

	if len(feedback) == 0 {
		feedback = []string{"Your resume looks great!"}
	}

	return feedback
}
