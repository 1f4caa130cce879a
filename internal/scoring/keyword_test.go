package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordScore(t *testing.T) {
	resume := "Senior engineer with Python, Docker and a bit of Kubernetes experience."

	tests := []struct {
		name     string
		resume   string
		keywords []string
		want     float64
	}{
		{
			name:     "empty keyword set",
			resume:   resume,
			keywords: nil,
			want:     0,
		},
		{
			name:     "half of the keywords present",
			resume:   resume,
			keywords: []string{"Python", "SQL"},
			want:     25,
		},
		{
			name:     "all keywords present",
			resume:   resume,
			keywords: []string{"Python", "Docker"},
			want:     50,
		},
		{
			name:     "case insensitive and trimmed",
			resume:   resume,
			keywords: []string{"  pyTHon  ", "DOCKER"},
			want:     50,
		},
		{
			name:     "empty entries never match but stay in the denominator",
			resume:   resume,
			keywords: []string{"Python", "", "   "},
			want:     float64(1) / 3 * 50,
		},
		{
			name:     "no keywords found",
			resume:   resume,
			keywords: []string{"Haskell", "COBOL"},
			want:     0,
		},
		{
			name:     "empty resume",
			resume:   "",
			keywords: []string{"Python"},
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, KeywordScore(tt.resume, tt.keywords), 1e-9)
		})
	}
}

func TestKeywordScoreMonotonicInMatches(t *testing.T) {
	keywords := []string{"Go", "Python", "SQL", "Docker"}

	prev := KeywordScore("", keywords)
	resumes := []string{
		"Go developer",
		"Go and Python developer",
		"Go, Python and SQL developer",
		"Go, Python, SQL and Docker developer",
	}

	for _, resume := range resumes {
		score := KeywordScore(resume, keywords)
		assert.GreaterOrEqual(t, score, prev)
		prev = score
	}

	assert.Equal(t, float64(50), prev)
}
