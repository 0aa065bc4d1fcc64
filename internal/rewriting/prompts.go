package rewriting

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func buildSummaryPrompt(summary string) string {
	return fmt.Sprintf(`You are an expert resume writer. Enhance the following professional summary to make it more impactful, ATS-friendly, and compelling. Keep it concise (2-3 sentences, 50-80 words).

Focus on:
- Strong action words
- Relevant keywords
- Clear value proposition
- Professional tone
- Quantifiable achievements if mentioned

Original summary:
%s

Return ONLY the enhanced summary text, nothing else.`, summary)
}

func buildExperiencePrompt(exp types.Experience) string {
	return fmt.Sprintf(`You are an expert resume writer. Enhance the following job responsibilities to make them more impactful and ATS-friendly.

Job Title: %s
Company: %s

Original responsibilities:
%s

Requirements:
- Start each point with a strong action verb (achieved, developed, led, implemented, etc.)
- Make achievements quantifiable where possible
- Use industry-relevant keywords
- Keep it concise and impactful
- Format as bullet points (use the • symbol)
- Aim for 3-5 bullet points

Return ONLY the enhanced bullet points, nothing else.`,
		orNA(exp.Title), orNA(exp.Company), exp.Responsibilities)
}

func buildProjectPrompt(project types.Project) string {
	return fmt.Sprintf(`You are an expert resume writer. Enhance the following project description to make it more impressive and ATS-friendly.

Project Name: %s
Technologies: %s

Original description:
%s

Requirements:
- Highlight technical skills and technologies used
- Emphasize impact and results
- Use action-oriented language
- Keep it concise (2-3 sentences)
- Include quantifiable metrics if possible

Return ONLY the enhanced description, nothing else.`,
		orNA(project.Name), orNA(project.Technologies), project.Description)
}

func buildSkillsClassifyPrompt(skills string) string {
	return fmt.Sprintf(`Organize the following skills into two categories: Technical Skills and Soft Skills.

Skills: %s

Return in this exact JSON format:
{
    "technical": "comma-separated list of technical skills",
    "soft": "comma-separated list of soft skills"
}

Return ONLY the JSON, nothing else.`, skills)
}

func buildSuggestionsPrompt(resume *types.Resume) string {
	return fmt.Sprintf(`You are an expert resume reviewer and career coach. Analyze the following resume and provide 5 specific, actionable suggestions for improvement.

Resume:
%s

Focus on:
- ATS optimization
- Content improvements
- Keyword optimization
- Quantifiable achievements
- Professional presentation

Return suggestions as a numbered list. Be specific and actionable.`, formatForAnalysis(resume))
}

func buildChatPrompt(question string, resume *types.Resume) string {
	return fmt.Sprintf(`You are a professional resume consultant. A user is asking for advice about their resume.

Resume Context:
%s

User Question: %s

Provide helpful, specific, and actionable advice. Be encouraging but honest.
Keep your response concise (2-3 paragraphs maximum).`, formatForAnalysis(resume), question)
}

// formatForAnalysis renders the record as readable text for prompts
// that consume the whole resume.
func formatForAnalysis(resume *types.Resume) string {
	var parts []string

	info := resume.PersonalInfo
	parts = append(parts,
		fmt.Sprintf("Name: %s", orNA(info.Name)),
		fmt.Sprintf("Email: %s", orNA(info.Email)),
		fmt.Sprintf("Phone: %s", orNA(info.Phone)))

	if resume.Summary != "" {
		parts = append(parts, fmt.Sprintf("\nProfessional Summary:\n%s", resume.Summary))
	}

	if resume.HasEducation() {
		parts = append(parts, "\nEducation:")
		for _, edu := range resume.Education {
			if !edu.IsZero() {
				parts = append(parts, fmt.Sprintf("- %s from %s", edu.Degree, edu.Institution))
			}
		}
	}

	if resume.HasExperience() {
		parts = append(parts, "\nWork Experience:")
		for _, exp := range resume.Experience {
			if !exp.IsZero() {
				parts = append(parts, fmt.Sprintf("\n%s at %s", exp.Title, exp.Company), exp.Responsibilities)
			}
		}
	}

	if !resume.Skills.IsEmpty() {
		parts = append(parts, "\nSkills:")
		if resume.Skills.Technical != "" {
			parts = append(parts, fmt.Sprintf("Technical: %s", resume.Skills.Technical))
		}
		if resume.Skills.Soft != "" {
			parts = append(parts, fmt.Sprintf("Soft: %s", resume.Skills.Soft))
		}
	}

	if resume.HasProjects() {
		parts = append(parts, "\nProjects:")
		for _, project := range resume.Projects {
			if !project.IsZero() {
				parts = append(parts, fmt.Sprintf("\n%s: %s", project.Name, project.Description))
			}
		}
	}

	return strings.Join(parts, "\n")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
