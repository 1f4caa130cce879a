package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGemini struct {
	text       string
	err        error
	lastPrompt string
	attempts   int
}

func (s *stubGemini) Embed(context.Context, string) ([]float32, error) {
	return nil, errors.New("not implemented")
}

func (s *stubGemini) GenerateText(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func (s *stubGemini) GenerateTextWithRetry(ctx context.Context, prompt string, maxRetries int) (string, error) {
	s.attempts = maxRetries
	return s.GenerateText(ctx, prompt)
}

func TestFeedbackServiceGeneratesFromPrompt(t *testing.T) {
	gemini := &stubGemini{text: "  Add SQL to your skills section.  \n"}
	svc := NewFeedbackService(gemini, 3)

	feedback, err := svc.GenerateFeedback(context.Background(), "resume body", "jd body")
	require.NoError(t, err)

	assert.Equal(t, "Add SQL to your skills section.", feedback)
	assert.Contains(t, gemini.lastPrompt, "resume body")
	assert.Contains(t, gemini.lastPrompt, "jd body")
	assert.Contains(t, gemini.lastPrompt, "improvement suggestions")
	assert.Equal(t, 3, gemini.attempts)
}

func TestFeedbackServicePropagatesError(t *testing.T) {
	gemini := &stubGemini{err: errors.New("quota exhausted")}
	svc := NewFeedbackService(gemini, 2)

	_, err := svc.GenerateFeedback(context.Background(), "resume", "jd")
	assert.Error(t, err)
}
