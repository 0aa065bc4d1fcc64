package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEducation_SingleEntry(t *testing.T) {
	text := "Bachelor of Science in Computer Science\n" +
		"State University\n" +
		"Graduated 2019\n" +
		"GPA: 3.8/4.0"

	entries := ExtractEducation(text)

	require.Len(t, entries, 1)
	assert.Equal(t, "Bachelor of Science in Computer Science", entries[0].Degree)
	assert.Equal(t, "State University", entries[0].Institution)
	assert.Equal(t, "2019", entries[0].GraduationDate)
	assert.Equal(t, "3.8/4.0", entries[0].GPA)
}

func TestExtractEducation_MultipleEntries(t *testing.T) {
	text := "Master of Science\n" +
		"Tech Institute\n" +
		"2021\n" +
		"Bachelor of Arts\n" +
		"Liberal College\n" +
		"2017"

	entries := ExtractEducation(text)

	require.Len(t, entries, 2)
	assert.Equal(t, "Master of Science", entries[0].Degree)
	assert.Equal(t, "Tech Institute", entries[0].Institution)
	assert.Equal(t, "2021", entries[0].GraduationDate)
	assert.Equal(t, "Bachelor of Arts", entries[1].Degree)
	assert.Equal(t, "Liberal College", entries[1].Institution)
	assert.Equal(t, "2017", entries[1].GraduationDate)
}

func TestExtractEducation_YearSetOnce(t *testing.T) {
	text := "B.Tech in Electronics\nFirst University 2015\nSomething 2018"

	entries := ExtractEducation(text)

	require.Len(t, entries, 1)
	assert.Equal(t, "2015", entries[0].GraduationDate)
}

func TestExtractEducation_EmptyInputYieldsPlaceholder(t *testing.T) {
	entries := ExtractEducation("")

	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsZero())
}

func TestExtractEducation_NoDegreeLineYieldsPlaceholder(t *testing.T) {
	entries := ExtractEducation("attended some courses\nonline certificates")

	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsZero())
}

func TestExtractEducation_DegreeLineWithInlineYear(t *testing.T) {
	entries := ExtractEducation("M.S. Data Science, 2022\nBig University")

	require.Len(t, entries, 1)
	assert.Equal(t, "2022", entries[0].GraduationDate)
	assert.Equal(t, "Big University", entries[0].Institution)
}
