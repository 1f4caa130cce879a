package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"airecruiter/resume-screener/internal/models"
	"airecruiter/resume-screener/internal/repositories"
	"airecruiter/resume-screener/internal/scoring"
	"airecruiter/resume-screener/internal/services"
)

type ScreeningHandler struct {
	screeningRepo repositories.ScreeningRepository
	evalRepo      repositories.EvaluationRepository
	docRepo       repositories.DocumentRepository
	worker        services.Worker
}

func NewScreeningHandler(
	screeningRepo repositories.ScreeningRepository,
	evalRepo repositories.EvaluationRepository,
	docRepo repositories.DocumentRepository,
	worker services.Worker,
) *ScreeningHandler {
	return &ScreeningHandler{
		screeningRepo: screeningRepo,
		evalRepo:      evalRepo,
		docRepo:       docRepo,
		worker:        worker,
	}
}

// HandleCreateScreening handles POST /screenings: queue one evaluation per
// resume against the shared job description, keyword set, strictness and
// model choice.
func (h *ScreeningHandler) HandleCreateScreening(c *fiber.Ctx) error {
	var req models.ScreeningRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Strictness < 0 || req.Strictness > 100 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "strictness must be between 0 and 100",
		})
	}

	model := scoring.ModelChoice(req.Model)
	if model == "" {
		model = scoring.ModelFast
	}
	if model != scoring.ModelFast && model != scoring.ModelDeep {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("model must be %q or %q", scoring.ModelFast, scoring.ModelDeep),
		})
	}

	if len(req.ResumeDocumentIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume_document_ids is required",
		})
	}

	jdDocID, err := uuid.Parse(req.JDDocumentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid jd_document_id format",
		})
	}

	if _, err := h.docRepo.FindByID(jdDocID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "JD document not found",
		})
	}

	resumeIDs := make([]uuid.UUID, 0, len(req.ResumeDocumentIDs))
	for _, raw := range req.ResumeDocumentIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid resume document id: %s", raw),
			})
		}
		resumeIDs = append(resumeIDs, id)
	}

	resumeDocs, err := h.docRepo.FindByIDs(resumeIDs)
	if err != nil || len(resumeDocs) != len(resumeIDs) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "One or more resume documents not found",
		})
	}

	screening := &models.Screening{
		ID:           uuid.New(),
		JDDocumentID: jdDocID,
		Keywords:     strings.Join(req.Keywords, ","),
		Strictness:   req.Strictness,
		Model:        string(model),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := h.screeningRepo.Create(screening); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create screening",
		})
	}

	// Evaluations are created and enqueued in upload order.
	queued := 0
	for _, doc := range resumeDocs {
		eval := &models.Evaluation{
			ScreeningID:      screening.ID,
			ResumeDocumentID: doc.ID,
			FileName:         doc.OriginalFileName,
			Status:           models.StatusQueued,
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
		}

		if err := h.evalRepo.Create(eval); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to create evaluation job",
			})
		}

		h.worker.EnqueueJob(eval.ID)
		queued++
	}

	return c.Status(fiber.StatusAccepted).JSON(models.ScreeningResponse{
		ID:          screening.ID.String(),
		Evaluations: queued,
		Status:      string(models.StatusQueued),
	})
}

// HandleGetScreening handles GET /screenings/:id.
func (h *ScreeningHandler) HandleGetScreening(c *fiber.Ctx) error {
	screeningID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid screening ID format",
		})
	}

	screening, err := h.screeningRepo.FindByID(screeningID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Screening not found",
		})
	}

	evals, err := h.evalRepo.FindByScreeningID(screeningID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load evaluations",
		})
	}

	responses := make([]models.EvaluationResponse, 0, len(evals))
	for i := range evals {
		responses = append(responses, models.NewEvaluationResponse(&evals[i]))
	}

	return c.JSON(models.ScreeningDetailResponse{
		ID:          screening.ID.String(),
		Strictness:  screening.Strictness,
		Model:       screening.Model,
		Keywords:    screening.KeywordList(),
		Evaluations: responses,
	})
}
