package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"airecruiter/resume-screener/internal/models"
	"airecruiter/resume-screener/internal/scoring"
	"airecruiter/resume-screener/internal/services"
)

type SearchHandler struct {
	embedder scoring.Embedder
	index    services.CandidateIndex
}

func NewSearchHandler(embedder scoring.Embedder, index services.CandidateIndex) *SearchHandler {
	return &SearchHandler{
		embedder: embedder,
		index:    index,
	}
}

// HandleSearchCandidates handles GET /candidates/search?q=...: embed the
// query and return previously screened candidates by semantic similarity.
// Unlike scoring, search has no fallback; it degrades to 503 when the
// embedding provider is unavailable.
func (h *SearchHandler) HandleSearchCandidates(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "q is required",
		})
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "limit must be between 1 and 100",
			})
		}
		limit = parsed
	}

	embedding, err := h.embedder.Embed(c.Context(), query)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Embedding provider unavailable",
		})
	}

	matches, err := h.index.SearchSimilar(c.Context(), embedding, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Candidate search failed",
		})
	}

	responses := make([]models.CandidateMatchResponse, 0, len(matches))
	for _, match := range matches {
		responses = append(responses, models.CandidateMatchResponse{
			EvaluationID: match.EvaluationID,
			FileName:     match.FileName,
			Score:        match.Score,
			Verdict:      match.Verdict,
			Similarity:   match.Similarity,
		})
	}

	return c.JSON(fiber.Map{
		"query":      query,
		"candidates": responses,
	})
}
