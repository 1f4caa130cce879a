package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildFeedbackPrompt renders the advisory feedback request. The caller is
// responsible for capping the text lengths before building the prompt.
func (pb *PromptBuilder) BuildFeedbackPrompt(resumeText, jdText string) string {
	return fmt.Sprintf(`Resume: %s
Job Description: %s

Provide:
1. Missing skills/certifications/projects.
2. Verdict (High / Medium / Low suitability).
3. 2-3 improvement suggestions.`,
		resumeText, jdText)
}
