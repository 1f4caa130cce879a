package scoring

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// SimilarityScore computes a partial-ratio fuzzy similarity between resume
// and job description, case-insensitively, halved onto [0, 50]. Partial
// ratio rewards resumes that contain the job description's phrasing even
// when surrounded by unrelated content.
func SimilarityScore(resumeText, jdText string) float64 {
	ratio := fuzzy.PartialRatio(strings.ToLower(resumeText), strings.ToLower(jdText))
	return float64(ratio) / 2
}
