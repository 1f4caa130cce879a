package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"airecruiter/resume-screener/internal/models"
	"airecruiter/resume-screener/internal/repositories"
)

type ResultHandler struct {
	evalRepo          repositories.EvaluationRepository
	shortlistMinScore float64
}

func NewResultHandler(evalRepo repositories.EvaluationRepository, shortlistMinScore float64) *ResultHandler {
	return &ResultHandler{
		evalRepo:          evalRepo,
		shortlistMinScore: shortlistMinScore,
	}
}

// HandleListResults handles GET /evaluations: every stored evaluation,
// most recent first.
func (h *ResultHandler) HandleListResults(c *fiber.Ctx) error {
	evals, err := h.evalRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load evaluations",
		})
	}

	responses := make([]models.EvaluationResponse, 0, len(evals))
	for i := range evals {
		responses = append(responses, models.NewEvaluationResponse(&evals[i]))
	}

	return c.JSON(fiber.Map{
		"evaluations": responses,
	})
}

// HandleGetResult handles GET /evaluations/:id.
func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid evaluation ID format",
		})
	}

	eval, err := h.evalRepo.FindByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Evaluation not found",
		})
	}

	return c.JSON(models.NewEvaluationResponse(eval))
}

// HandleShortlist handles GET /shortlist: completed evaluations scoring at
// or above the threshold, best first. The threshold defaults to the
// configured shortlist minimum and can be overridden with ?min_score.
func (h *ResultHandler) HandleShortlist(c *fiber.Ctx) error {
	minScore := h.shortlistMinScore
	if raw := c.Query("min_score"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid min_score",
			})
		}
		minScore = parsed
	}

	evals, err := h.evalRepo.FindByMinScore(minScore)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load shortlist",
		})
	}

	responses := make([]models.EvaluationResponse, 0, len(evals))
	for i := range evals {
		responses = append(responses, models.NewEvaluationResponse(&evals[i]))
	}

	return c.JSON(fiber.Map{
		"min_score":  minScore,
		"candidates": responses,
	})
}
