package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarityScoreIdenticalTexts(t *testing.T) {
	text := "Backend engineer building Go services with PostgreSQL."

	assert.Equal(t, float64(50), SimilarityScore(text, text))
}

func TestSimilarityScoreCaseInsensitive(t *testing.T) {
	assert.Equal(t, float64(50), SimilarityScore("GO DEVELOPER WITH SQL", "go developer with sql"))
}

func TestSimilarityScoreEmbeddedPhrase(t *testing.T) {
	jd := "5 years of Go and Kubernetes"
	resume := "Unrelated preamble. 5 years of Go and Kubernetes. Unrelated trailer."

	// Partial ratio rewards the JD appearing verbatim inside the resume.
	assert.Equal(t, float64(50), SimilarityScore(resume, jd))
}

func TestSimilarityScoreBounded(t *testing.T) {
	pairs := [][2]string{
		{"completely different text", "nothing in common here at all"},
		{"short", "a much longer block of text about something else entirely"},
		{"alpha beta gamma", "delta epsilon zeta"},
	}

	for _, pair := range pairs {
		score := SimilarityScore(pair[0], pair[1])
		assert.GreaterOrEqual(t, score, float64(0))
		assert.LessOrEqual(t, score, float64(50))
	}
}
