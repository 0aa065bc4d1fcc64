// Package scoring computes a heuristic applicant-tracking-system score
// for a resume record. Scoring is a pure function: the record is never
// mutated, identical input yields identical output, and the composite
// is always an integer in [0,100].
package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Weights of the five sub-scores in the composite.
const (
	formatStructureWeight     = 0.20
	keywordOptimizationWeight = 0.25
	contentQualityWeight      = 0.20
	completenessWeight        = 0.20
	quantifiableWeight        = 0.15
)

// Keyword saturation points: matching this many terms earns the full
// component score.
const (
	technicalSaturation = 10
	actionSaturation    = 8
	softSaturation      = 5
)

// Subscores holds the five component scores, each in [0,100].
type Subscores struct {
	FormatStructure     float64 `json:"format_structure"`
	KeywordOptimization float64 `json:"keyword_optimization"`
	ContentQuality      float64 `json:"content_quality"`
	Completeness        float64 `json:"completeness"`
	QuantifiableResults float64 `json:"quantifiable_results"`
}

// Report is the scorer's full output.
type Report struct {
	Score     int       `json:"score"`
	Subscores Subscores `json:"subscores"`
	Feedback  []string  `json:"feedback"`
}

// Score evaluates the resume and returns the composite score with
// qualitative feedback. It never fails on a well-shaped record.
func Score(resume *types.Resume) *Report {
	sub := Subscores{
		FormatStructure:     scoreFormatStructure(resume),
		KeywordOptimization: scoreKeywords(resume),
		ContentQuality:      scoreContentQuality(resume),
		Completeness:        scoreCompleteness(resume),
		QuantifiableResults: scoreQuantifiableResults(resume),
	}

	total := sub.FormatStructure*formatStructureWeight +
		sub.KeywordOptimization*keywordOptimizationWeight +
		sub.ContentQuality*contentQualityWeight +
		sub.Completeness*completenessWeight +
		sub.QuantifiableResults*quantifiableWeight

	return &Report{
		// Round half up: callers compare against banded thresholds and
		// expect the common convention, not banker's rounding.
		Score:     int(math.Floor(total + 0.5)),
		Subscores: sub,
		Feedback:  generateFeedback(sub, resume),
	}
}

func scoreFormatStructure(resume *types.Resume) float64 {
	score := 0.0

	if resume.PersonalInfo.Name != "" {
		score += 20
	}
	if resume.PersonalInfo.Email != "" {
		score += 20
	}
	if resume.PersonalInfo.Phone != "" {
		score += 20
	}
	if resume.PersonalInfo.LinkedIn != "" || resume.PersonalInfo.GitHub != "" {
		score += 20
	}

	if resume.Summary != "" {
		score += 10
	}
	if len(resume.Education) > 0 {
		score += 5
	}
	if len(resume.Experience) > 0 {
		score += 5
	}

	return math.Min(score, 100)
}

func scoreKeywords(resume *types.Resume) float64 {
	haystack := strings.ToLower(allText(resume))

	techScore := saturatingCount(haystack, technicalKeywords, technicalSaturation)
	actionScore := saturatingCount(haystack, actionVerbs, actionSaturation)
	softScore := saturatingCount(haystack, softSkillTerms, softSaturation)

	return techScore*0.5 + actionScore*0.3 + softScore*0.2
}

// saturatingCount scores distinct term presence: saturation matched
// terms (or more) earn 100.
func saturatingCount(haystack string, terms []string, saturation int) float64 {
	count := 0
	for _, term := range terms {
		if strings.Contains(haystack, term) {
			count++
		}
	}
	return math.Min(float64(count)/float64(saturation)*100, 100)
}

func scoreContentQuality(resume *types.Resume) float64 {
	score := 0.0

	if words := len(strings.Fields(resume.Summary)); words >= 30 && words <= 100 {
		score += 25
	} else if words > 0 {
		score += 15
	}

	if len(resume.Experience) > 0 {
		responsibilityWords := 0
		for _, exp := range resume.Experience {
			responsibilityWords += len(strings.Fields(exp.Responsibilities))
		}
		switch {
		case responsibilityWords > 100:
			score += 30
		case responsibilityWords > 50:
			score += 20
		case responsibilityWords > 0:
			score += 10
		}
	}

	for _, project := range resume.Projects {
		if project.Description != "" {
			score += 25
			break
		}
	}

	if resume.Skills.Technical != "" && resume.Skills.Soft != "" {
		score += 20
	} else if resume.Skills.Technical != "" || resume.Skills.Soft != "" {
		score += 10
	}

	return math.Min(score, 100)
}

func scoreCompleteness(resume *types.Resume) float64 {
	score := 0.0

	if resume.PersonalInfo.Name != "" {
		score += 20
	}
	if resume.Summary != "" {
		score += 15
	}
	if len(resume.Education) > 0 {
		score += 20
	}
	if len(resume.Experience) > 0 {
		score += 25
	}
	if !resume.Skills.IsEmpty() {
		score += 20
	}

	return math.Min(score, 100)
}

func scoreQuantifiableResults(resume *types.Resume) float64 {
	haystack := allText(resume)

	metrics := 0
	for _, pattern := range metricPatterns {
		metrics += len(pattern.FindAllString(haystack, -1))
	}

	lower := strings.ToLower(haystack)
	for _, pattern := range achievementPatterns {
		metrics += len(pattern.FindAllString(lower, -1))
	}

	switch {
	case metrics >= 10:
		return 100
	case metrics >= 7:
		return 85
	case metrics >= 5:
		return 70
	case metrics >= 3:
		return 50
	case metrics >= 1:
		return 30
	default:
		return 0
	}
}

// allText concatenates every textual field value into one haystack.
func allText(resume *types.Resume) string {
	var parts []string
	add := func(values ...string) {
		for _, v := range values {
			if v != "" {
				parts = append(parts, v)
			}
		}
	}

	info := resume.PersonalInfo
	add(info.Name, info.Email, info.Phone, info.LinkedIn, info.GitHub, info.Portfolio)
	add(resume.Summary)
	for _, edu := range resume.Education {
		add(edu.Degree, edu.Institution, edu.GraduationDate, edu.GPA)
	}
	for _, exp := range resume.Experience {
		add(exp.Title, exp.Company, exp.StartDate, exp.EndDate, exp.Responsibilities)
	}
	add(resume.Skills.Technical, resume.Skills.Soft)
	for _, project := range resume.Projects {
		add(project.Name, project.Description, project.Technologies)
	}

	return strings.Join(parts, " ")
}
