package rewriting

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// fakeClient returns canned responses keyed by a prompt substring.
type fakeClient struct {
	mu        sync.Mutex
	responses map[string]string
	err       error
	calls     int
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	for needle, response := range f.responses {
		if strings.Contains(prompt, needle) {
			return response, nil
		}
	}
	return "generic rewrite", nil
}

func (f *fakeClient) Close() error { return nil }

func sampleResume() *types.Resume {
	return &types.Resume{
		Summary: "I write code.",
		Experience: []types.Experience{
			{Title: "Engineer", Company: "Acme", Responsibilities: "• did things"},
		},
		Projects: []types.Project{
			{Name: "Tool", Description: "a small tool"},
		},
		Skills: types.Skills{Technical: "Go", Soft: "teamwork"},
	}
}

func TestEnhanceResume_RewritesSections(t *testing.T) {
	client := &fakeClient{responses: map[string]string{
		"professional summary": "Seasoned engineer delivering measurable results.",
		"job responsibilities": "• Achieved 30% faster builds",
		"project description":  "Built a profiling tool used by 50+ developers.",
	}}
	enhancer := NewEnhancer(client)

	original := sampleResume()
	enhanced, err := enhancer.EnhanceResume(context.Background(), original)

	require.NoError(t, err)
	assert.Equal(t, "Seasoned engineer delivering measurable results.", enhanced.Summary)
	assert.Equal(t, "• Achieved 30% faster builds", enhanced.Experience[0].Responsibilities)
	assert.Equal(t, "Built a profiling tool used by 50+ developers.", enhanced.Projects[0].Description)

	// The input record is untouched.
	assert.Equal(t, "I write code.", original.Summary)
	assert.Equal(t, "• did things", original.Experience[0].Responsibilities)
}

func TestEnhanceResume_ModelFailureKeepsOriginalText(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}
	enhancer := NewEnhancer(client)

	enhanced, err := enhancer.EnhanceResume(context.Background(), sampleResume())

	require.NoError(t, err)
	assert.Equal(t, "I write code.", enhanced.Summary)
	assert.Equal(t, "• did things", enhanced.Experience[0].Responsibilities)
	assert.Equal(t, "a small tool", enhanced.Projects[0].Description)
}

func TestEnhanceResume_EmptySectionsNotSentToModel(t *testing.T) {
	client := &fakeClient{}
	enhancer := NewEnhancer(client)

	_, err := enhancer.EnhanceResume(context.Background(), &types.Resume{
		Experience: []types.Experience{{}},
		Projects:   []types.Project{{}},
	})

	require.NoError(t, err)
	assert.Zero(t, client.calls)
}

func TestEnhanceResume_ClassifiesUnclassifiedSkills(t *testing.T) {
	client := &fakeClient{responses: map[string]string{
		"two categories": "```json\n{\"technical\": \"Go, SQL\", \"soft\": \"mentoring\"}\n```",
	}}
	enhancer := NewEnhancer(client)

	resume := &types.Resume{Skills: types.Skills{Technical: "Go, SQL, mentoring"}}
	enhanced, err := enhancer.EnhanceResume(context.Background(), resume)

	require.NoError(t, err)
	assert.Equal(t, "Go, SQL", enhanced.Skills.Technical)
	assert.Equal(t, "mentoring", enhanced.Skills.Soft)
}

func TestEnhanceResume_UnparseableClassificationKeepsBlob(t *testing.T) {
	client := &fakeClient{responses: map[string]string{
		"two categories": "sorry, I cannot do that",
	}}
	enhancer := NewEnhancer(client)

	enhanced, err := enhancer.EnhanceResume(context.Background(), &types.Resume{
		Skills: types.Skills{Technical: "Go, mentoring"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Go, mentoring", enhanced.Skills.Technical)
	assert.Empty(t, enhanced.Skills.Soft)
}

func TestEnhanceResume_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	client := &fakeClient{err: context.Canceled}
	enhancer := NewEnhancer(client)

	_, err := enhancer.EnhanceResume(ctx, sampleResume())

	assert.ErrorIs(t, err, context.Canceled)
}

func TestSuggestions_SplitsLines(t *testing.T) {
	client := &fakeClient{responses: map[string]string{
		"career coach": "1. Add metrics\n\n2. Tighten summary\n",
	}}
	enhancer := NewEnhancer(client)

	suggestions, err := enhancer.Suggestions(context.Background(), sampleResume())

	require.NoError(t, err)
	assert.Equal(t, []string{"1. Add metrics", "2. Tighten summary"}, suggestions)
}

func TestChatFeedback_PassesQuestionThrough(t *testing.T) {
	client := &fakeClient{responses: map[string]string{
		"resume consultant": "Lead with your strongest project.",
	}}
	enhancer := NewEnhancer(client)

	answer, err := enhancer.ChatFeedback(context.Background(), "What should I improve?", sampleResume())

	require.NoError(t, err)
	assert.Equal(t, "Lead with your strongest project.", answer)
}
