package scoring

import (
	"context"
	"errors"
	"testing"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

type stubEmbedder struct {
	vectors map[string][]float32
	err     error
	calls   int
}

func (s *stubEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.vectors[text], nil
}

func TestSemanticMatcherCosinePath(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{
		"resume": {1, 0},
		"jd":     {1, 0},
	}}
	matcher := NewSemanticMatcher(embedder, zaptest.NewLogger(t))

	score := matcher.Score(context.Background(), "resume", "jd")

	assert.InDelta(t, 100, score, 1e-9)
	assert.Equal(t, 2, embedder.calls)
}

func TestSemanticMatcherPartialAlignment(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{
		"resume": {1, 0},
		"jd":     {0.8, 0.6},
	}}
	matcher := NewSemanticMatcher(embedder, zaptest.NewLogger(t))

	assert.InDelta(t, 80, matcher.Score(context.Background(), "resume", "jd"), 1e-6)
}

func TestSemanticMatcherNegativeCosinePassesThrough(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{
		"resume": {1, 0},
		"jd":     {-1, 0},
	}}
	matcher := NewSemanticMatcher(embedder, zaptest.NewLogger(t))

	// Opposed embeddings yield a negative sub-score; the matcher does not
	// clamp them.
	assert.InDelta(t, -100, matcher.Score(context.Background(), "resume", "jd"), 1e-6)
}

func TestSemanticMatcherFallback(t *testing.T) {
	resume := "Go developer with PostgreSQL and Docker"
	jd := "Go developer with PostgreSQL and Docker"
	wantFallback := float64(fuzzy.TokenSetRatio(resume, jd))

	tests := []struct {
		name     string
		embedder Embedder
	}{
		{
			name:     "provider error",
			embedder: &stubEmbedder{err: errors.New("quota exhausted")},
		},
		{
			name:     "empty vector",
			embedder: &stubEmbedder{vectors: map[string][]float32{}},
		},
		{
			name: "zero norm vector",
			embedder: &stubEmbedder{vectors: map[string][]float32{
				resume: {0, 0},
				jd:     {0, 0},
			}},
		},
		{
			name:     "no provider configured",
			embedder: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matcher := NewSemanticMatcher(tt.embedder, zaptest.NewLogger(t))

			score := matcher.Score(context.Background(), resume, jd)

			assert.Equal(t, wantFallback, score)
			assert.Equal(t, float64(100), score)
		})
	}
}

func TestCosineSimilarityDimensionMismatch(t *testing.T) {
	_, err := cosineSimilarity([]float32{1, 0}, []float32{1, 0, 0})
	assert.Error(t, err)
}
