package scoring

import "strings"

// KeywordScore measures exact must-have skill coverage: each non-empty,
// trimmed keyword is searched case-insensitively as a substring of the
// resume text. The hit ratio is scaled onto [0, 50]. There is no partial
// credit for near-matches.
func KeywordScore(resumeText string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}

	haystack := strings.ToLower(resumeText)

	matched := 0
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if strings.Contains(haystack, kw) {
			matched++
		}
	}

	return float64(matched) / float64(len(keywords)) * 50
}
