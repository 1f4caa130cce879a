package scoring

import (
	"context"
	"errors"
	"fmt"
	"math"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"go.uber.org/zap"
)

// Embedder produces a fixed-length embedding vector for a text, or fails.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

var errNoEmbedder = errors.New("no embedding provider configured")

// SemanticMatcher scores the semantic alignment of resume and job
// description. The nominal path embeds both texts and scales their cosine
// similarity onto a 0-100 range. Cosine similarity is in [-1, 1], so the
// result is not guaranteed non-negative; it is deliberately not clamped
// here. Any provider failure, malformed vector, or zero-norm vector takes
// the fallback path: a token-set fuzzy ratio over the raw texts, which is
// naturally in [0, 100]. The matcher never returns an error.
type SemanticMatcher struct {
	embedder Embedder
	logger   *zap.Logger
}

func NewSemanticMatcher(embedder Embedder, logger *zap.Logger) *SemanticMatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SemanticMatcher{embedder: embedder, logger: logger}
}

func (m *SemanticMatcher) Score(ctx context.Context, resumeText, jdText string) float64 {
	if m.embedder == nil {
		return m.fallback(resumeText, jdText, errNoEmbedder)
	}

	resumeVec, err := m.embedder.Embed(ctx, resumeText)
	if err != nil {
		return m.fallback(resumeText, jdText, fmt.Errorf("embed resume: %w", err))
	}

	jdVec, err := m.embedder.Embed(ctx, jdText)
	if err != nil {
		return m.fallback(resumeText, jdText, fmt.Errorf("embed job description: %w", err))
	}

	cos, err := cosineSimilarity(resumeVec, jdVec)
	if err != nil {
		return m.fallback(resumeText, jdText, err)
	}

	return cos * 100
}

func (m *SemanticMatcher) fallback(resumeText, jdText string, cause error) float64 {
	m.logger.Warn("semantic embeddings unavailable, using fuzzy similarity instead",
		zap.Error(cause),
	)
	return float64(fuzzy.TokenSetRatio(resumeText, jdText))
}

func cosineSimilarity(a, b []float32) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, errors.New("empty embedding vector")
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("embedding dimension mismatch: %d vs %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0, errors.New("zero-norm embedding vector")
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
