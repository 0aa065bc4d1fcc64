package rewriting

import (
	"context"
	"encoding/json"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// maxConcurrentRewrites bounds parallel model calls per resume.
const maxConcurrentRewrites = 4

// Enhancer rewrites resume sections through a generative model.
type Enhancer struct {
	client Client
}

// NewEnhancer creates an Enhancer backed by the given client.
func NewEnhancer(client Client) *Enhancer {
	return &Enhancer{client: client}
}

// EnhanceResume returns a new record with summary, experience
// responsibilities, project descriptions and skills rewritten. The
// input is never mutated. Entries whose rewrite fails keep their
// original text; only context cancellation aborts the whole pass.
func (e *Enhancer) EnhanceResume(ctx context.Context, resume *types.Resume) (*types.Resume, error) {
	enhanced := resume.Clone()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRewrites)

	if resume.Summary != "" {
		g.Go(func() error {
			text, err := e.generate(ctx, buildSummaryPrompt(resume.Summary))
			if err != nil {
				return ctx.Err()
			}
			enhanced.Summary = text
			return nil
		})
	}

	for i := range resume.Experience {
		if resume.Experience[i].Responsibilities == "" {
			continue
		}
		g.Go(func() error {
			text, err := e.generate(ctx, buildExperiencePrompt(resume.Experience[i]))
			if err != nil {
				return ctx.Err()
			}
			enhanced.Experience[i].Responsibilities = text
			return nil
		})
	}

	for i := range resume.Projects {
		if resume.Projects[i].Description == "" {
			continue
		}
		g.Go(func() error {
			text, err := e.generate(ctx, buildProjectPrompt(resume.Projects[i]))
			if err != nil {
				return ctx.Err()
			}
			enhanced.Projects[i].Description = text
			return nil
		})
	}

	if needsClassification(resume.Skills) {
		g.Go(func() error {
			skills, err := e.classifySkills(ctx, resume.Skills.Technical)
			if err != nil {
				return ctx.Err()
			}
			enhanced.Skills = skills
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return enhanced, nil
}

// needsClassification reports whether the skills look like one
// unclassified blob: everything in technical, nothing in soft.
func needsClassification(skills types.Skills) bool {
	return skills.Technical != "" && skills.Soft == ""
}

// classifySkills asks the model to split an unclassified skill list.
func (e *Enhancer) classifySkills(ctx context.Context, unclassified string) (types.Skills, error) {
	text, err := e.generate(ctx, buildSkillsClassifyPrompt(unclassified))
	if err != nil {
		return types.Skills{}, err
	}

	var skills types.Skills
	if err := json.Unmarshal([]byte(cleanJSONBlock(text)), &skills); err != nil {
		// Unparseable classification keeps the blob where it was.
		return types.Skills{Technical: unclassified}, nil
	}
	return skills, nil
}

// Suggestions asks the model for actionable improvement advice, one
// suggestion per returned element.
func (e *Enhancer) Suggestions(ctx context.Context, resume *types.Resume) ([]string, error) {
	text, err := e.generate(ctx, buildSuggestionsPrompt(resume))
	if err != nil {
		return nil, err
	}

	var suggestions []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			suggestions = append(suggestions, trimmed)
		}
	}
	return suggestions, nil
}

// ChatFeedback answers a free-form question about the resume.
func (e *Enhancer) ChatFeedback(ctx context.Context, question string, resume *types.Resume) (string, error) {
	return e.generate(ctx, buildChatPrompt(question, resume))
}

func (e *Enhancer) generate(ctx context.Context, prompt string) (string, error) {
	text, err := e.client.GenerateContent(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
