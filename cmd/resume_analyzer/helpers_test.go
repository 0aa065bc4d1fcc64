package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/rewriting"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestLoadRecord_JSONRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.json")
	content := `{
		"personal_info": {"name": "Jane Smith", "email": "jane@example.com"},
		"summary": "Engineer.",
		"skills": {"technical": "Go"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	resume, err := loadRecord(path)

	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", resume.PersonalInfo.Name)
	assert.Equal(t, "Go", resume.Skills.Technical)
}

func TestLoadRecord_InvalidJSONRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"education": "BS"}`), 0644))

	_, err := loadRecord(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}

func TestLoadRecord_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0644))

	_, err := loadRecord(path)

	assert.Error(t, err)
}

func TestLoadRecord_MissingFile(t *testing.T) {
	_, err := loadRecord("/nonexistent/resume.pdf")

	assert.Error(t, err)
}

func TestWriteRecord_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	resume := &types.Resume{
		PersonalInfo: types.PersonalInfo{Name: "Jane Smith"},
	}

	require.NoError(t, writeRecord(resume, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "Jane Smith"`)
}

func TestMergedConfig_NoConfigFile(t *testing.T) {
	flags := config.Config{Style: "modern"}

	cfg, err := mergedConfig("", flags)

	require.NoError(t, err)
	assert.Equal(t, flags, cfg)
}

func TestMergedConfig_FlagsWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"style": "classic", "port": 9090}`), 0644))

	cfg, err := mergedConfig(path, config.Config{Style: "modern"})

	require.NoError(t, err)
	assert.Equal(t, "modern", cfg.Style)
	assert.Equal(t, 9090, cfg.Port)
}

func TestMergedConfig_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"style": "fancy"}`), 0644))

	_, err := mergedConfig(path, config.Config{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown style")
}

func TestResolveModel_Default(t *testing.T) {
	t.Setenv("GEMINI_MODEL", "")

	assert.Equal(t, rewriting.DefaultModel, resolveModel(""))
}

func TestResolveModel_FlagWins(t *testing.T) {
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")

	assert.Equal(t, "gemini-2.0-flash", resolveModel("gemini-2.0-flash"))
	assert.Equal(t, "gemini-2.5-pro", resolveModel(""))
}
