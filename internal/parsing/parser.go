// Package parsing turns extracted resume text into the typed resume
// record using regex and keyword heuristics. Extractors never fail:
// resumes are uncontrolled natural text, so a missing pattern degrades
// to an empty or placeholder value rather than an error.
package parsing

import (
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/segmentation"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// ParseText builds a resume record from extracted plain text. Personal
// info is pulled from the full document; every other extractor receives
// only its segmented section, which may be absent.
func ParseText(text string) *types.Resume {
	sections := segmentation.Split(text)

	return &types.Resume{
		PersonalInfo: ExtractPersonalInfo(text),
		Summary:      ExtractSummary(sections["summary"]),
		Education:    ExtractEducation(sections["education"]),
		Experience:   ExtractExperience(sections["experience"]),
		Skills:       ExtractSkills(sections["skills"]),
		Projects:     ExtractProjects(sections["projects"]),
		RawText:      text,
	}
}

// ParseDocument extracts text from a binary document and parses it.
// Only extraction can fail; the heuristics always produce a record.
func ParseDocument(data []byte, format extraction.Format) (*types.Resume, error) {
	text, err := extraction.Extract(data, format)
	if err != nil {
		return nil, err
	}
	return ParseText(text), nil
}
