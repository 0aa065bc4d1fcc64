package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractProjects_NameDescriptionTechnologies(t *testing.T) {
	text := "INVENTORY TRACKER\n" +
		"a warehouse tool that cut stock-outs in half\n" +
		"• tech stack: Go, PostgreSQL"

	projects := ExtractProjects(text)

	require.Len(t, projects, 1)
	assert.Equal(t, "INVENTORY TRACKER", projects[0].Name)
	assert.Equal(t, "a warehouse tool that cut stock-outs in half", projects[0].Description)
	assert.Equal(t, "Go, PostgreSQL", projects[0].Technologies)
}

func TestExtractProjects_CapitalizedLineStartsNewProject(t *testing.T) {
	text := "Chess Engine\n" +
		"plays at club level\n" +
		"Weather Bot\n" +
		"posts daily forecasts"

	projects := ExtractProjects(text)

	require.Len(t, projects, 2)
	assert.Equal(t, "Chess Engine", projects[0].Name)
	assert.Equal(t, "plays at club level", projects[0].Description)
	assert.Equal(t, "Weather Bot", projects[1].Name)
	assert.Equal(t, "posts daily forecasts", projects[1].Description)
}

func TestExtractProjects_BulletLinesJoinDescription(t *testing.T) {
	text := "Side Project\n• first detail\n• second detail"

	projects := ExtractProjects(text)

	require.Len(t, projects, 1)
	assert.Equal(t, "• first detail • second detail", projects[0].Description)
}

func TestExtractProjects_TechnologiesWithoutColon(t *testing.T) {
	projects := ExtractProjects("Tooling\n• built with various technologies")

	require.Len(t, projects, 1)
	// No colon to cut on, so the whole line is kept, bullet included.
	assert.Equal(t, "• built with various technologies", projects[0].Technologies)
}

func TestExtractProjects_LinesBeforeFirstNameIgnored(t *testing.T) {
	projects := ExtractProjects("• stray bullet\nReal Project\n• detail")

	require.Len(t, projects, 1)
	assert.Equal(t, "Real Project", projects[0].Name)
}

func TestExtractProjects_EmptyInputYieldsPlaceholder(t *testing.T) {
	projects := ExtractProjects("")

	require.Len(t, projects, 1)
	assert.True(t, projects[0].IsZero())
}
