package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"airecruiter/resume-screener/internal/models"
	"airecruiter/resume-screener/internal/repositories"
	"airecruiter/resume-screener/internal/scoring"
)

// EvaluatorService runs one queued evaluation end to end: load the
// screening inputs, extract text from both documents, score the resume
// against the job description, and persist the result. Provider failures
// inside the scoring engine degrade gracefully; only repository failures
// fail the item.
type EvaluatorService interface {
	ProcessEvaluation(ctx context.Context, evalID uint) error
}

type evaluatorService struct {
	evalRepo      repositories.EvaluationRepository
	screeningRepo repositories.ScreeningRepository
	docRepo       repositories.DocumentRepository
	extractor     TextExtractor
	engine        *scoring.Engine
	embedder      scoring.Embedder
	index         CandidateIndex
	logger        *zap.Logger
}

func NewEvaluatorService(
	evalRepo repositories.EvaluationRepository,
	screeningRepo repositories.ScreeningRepository,
	docRepo repositories.DocumentRepository,
	extractor TextExtractor,
	engine *scoring.Engine,
	embedder scoring.Embedder,
	index CandidateIndex,
	logger *zap.Logger,
) EvaluatorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &evaluatorService{
		evalRepo:      evalRepo,
		screeningRepo: screeningRepo,
		docRepo:       docRepo,
		extractor:     extractor,
		engine:        engine,
		embedder:      embedder,
		index:         index,
		logger:        logger,
	}
}

func (e *evaluatorService) ProcessEvaluation(ctx context.Context, evalID uint) error {
	if err := e.evalRepo.UpdateStatus(evalID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	eval, err := e.evalRepo.FindByID(evalID)
	if err != nil {
		e.evalRepo.UpdateError(evalID, err.Error())
		return fmt.Errorf("failed to get evaluation: %w", err)
	}

	screening, err := e.screeningRepo.FindByID(eval.ScreeningID)
	if err != nil {
		e.evalRepo.UpdateError(evalID, fmt.Sprintf("screening not found: %v", err))
		return fmt.Errorf("failed to get screening: %w", err)
	}

	jdDoc, err := e.docRepo.FindByID(screening.JDDocumentID)
	if err != nil {
		e.evalRepo.UpdateError(evalID, fmt.Sprintf("JD document not found: %v", err))
		return fmt.Errorf("failed to get JD document: %w", err)
	}

	resumeDoc, err := e.docRepo.FindByID(eval.ResumeDocumentID)
	if err != nil {
		e.evalRepo.UpdateError(evalID, fmt.Sprintf("resume document not found: %v", err))
		return fmt.Errorf("failed to get resume document: %w", err)
	}

	// Extraction never fails; unreadable documents score as empty text.
	jdText := e.extractor.Extract(jdDoc.FilePath)
	resumeText := e.extractor.Extract(resumeDoc.FilePath)

	result := e.engine.Evaluate(ctx, scoring.Input{
		ResumeText: resumeText,
		JDText:     jdText,
		Keywords:   screening.KeywordList(),
		Strictness: screening.Strictness,
		Model:      scoring.ModelChoice(screening.Model),
	})

	update := &repositories.EvaluationResultData{
		Score:    result.Score,
		Verdict:  string(result.Verdict),
		Feedback: result.Feedback,
	}
	if err := e.evalRepo.UpdateResult(evalID, update); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	e.indexCandidate(ctx, eval, resumeText, result)

	return nil
}

// indexCandidate upserts the scored resume into the vector index. Best
// effort: the index is advisory, so embedding or upsert failures are only
// logged.
func (e *evaluatorService) indexCandidate(ctx context.Context, eval *models.Evaluation, resumeText string, result scoring.Result) {
	if e.index == nil || e.embedder == nil || resumeText == "" {
		return
	}

	embedding, err := e.embedder.Embed(ctx, resumeText)
	if err != nil {
		e.logger.Warn("skipping candidate indexing, embedding unavailable",
			zap.Uint("evaluation_id", eval.ID),
			zap.Error(err),
		)
		return
	}

	err = e.index.UpsertCandidate(ctx, eval.ID, eval.FileName, result.Score, string(result.Verdict), resumeText, embedding)
	if err != nil {
		e.logger.Warn("failed to index candidate",
			zap.Uint("evaluation_id", eval.ID),
			zap.Error(err),
		)
	}
}
