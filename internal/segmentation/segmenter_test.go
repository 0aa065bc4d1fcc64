package segmentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_BasicSections(t *testing.T) {
	text := "John Doe\n" +
		"Professional Summary\n" +
		"Seasoned engineer with a decade of experience building systems.\n" +
		"Education\n" +
		"B.S. Computer Science\n" +
		"State University\n" +
		"Skills\n" +
		"Go, Python, SQL\n"

	sections := Split(text)

	// The summary body line contains "experience" so it is itself
	// treated as an experience header; only its following lines would
	// be captured under experience.
	require.Contains(t, sections, "education")
	assert.Equal(t, "B.S. Computer Science\nState University", sections["education"])
	require.Contains(t, sections, "skills")
	assert.Equal(t, "Go, Python, SQL", sections["skills"])
}

func TestSplit_NoHeadersYieldsEmptyMapping(t *testing.T) {
	sections := Split("just a paragraph of text\nwith no recognizable headers at all")

	assert.Empty(t, sections)
}

func TestSplit_LinesBeforeFirstHeaderDiscarded(t *testing.T) {
	text := "John Doe\njohn@x.com\nEducation\nB.Sc. Mathematics"

	sections := Split(text)

	require.Len(t, sections, 1)
	assert.Equal(t, "B.Sc. Mathematics", sections["education"])
}

func TestSplit_HeaderLineNotIncludedInBody(t *testing.T) {
	sections := Split("Education\nState University")

	assert.Equal(t, "State University", sections["education"])
	assert.NotContains(t, sections["education"], "Education")
}

func TestSplit_EmptySectionAbsent(t *testing.T) {
	// Education header immediately followed by the skills header
	// captures nothing, so education must be absent entirely.
	sections := Split("Education\nSkills\nGo, SQL")

	assert.NotContains(t, sections, "education")
	assert.Equal(t, "Go, SQL", sections["skills"])
}

func TestSplit_SubstringMatchIsDeliberate(t *testing.T) {
	// "My education story" is not a clean header but still contains the
	// keyword; the substring heuristic accepts it by contract.
	sections := Split("My education story\nState University")

	assert.Equal(t, "State University", sections["education"])
}

func TestSplit_TieBreakUsesDeclaredOrder(t *testing.T) {
	// The line matches both "experience" and "skills"; the declared
	// order puts experience first.
	sections := Split("Experience with skills\nShipped things")

	require.Contains(t, sections, "experience")
	assert.NotContains(t, sections, "skills")
}

func TestSplit_LastSectionFlushedAtEnd(t *testing.T) {
	sections := Split("Projects\nCLI tool written in Go")

	assert.Equal(t, "CLI tool written in Go", sections["projects"])
}

func TestSectionNames_Order(t *testing.T) {
	assert.Equal(t,
		[]string{"summary", "education", "experience", "skills", "projects", "certifications"},
		SectionNames())
}
