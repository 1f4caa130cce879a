package services

import (
	"context"
	"strings"
)

// FeedbackService adapts the Gemini text generation API to the scoring
// engine's FeedbackGenerator contract, with a bounded retry.
type FeedbackService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewFeedbackService(gemini GeminiService, maxRetries int) *FeedbackService {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &FeedbackService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

func (f *FeedbackService) GenerateFeedback(ctx context.Context, resumeText, jdText string) (string, error) {
	prompt := f.promptBuilder.BuildFeedbackPrompt(resumeText, jdText)

	text, err := f.gemini.GenerateTextWithRetry(ctx, prompt, f.maxRetries)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(text), nil
}
