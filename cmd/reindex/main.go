// Command reindex rebuilds the Qdrant candidate index from the evaluations
// stored in Postgres. Useful after changing the embedding model or standing
// up a fresh Qdrant instance.
package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"airecruiter/resume-screener/internal/config"
	"airecruiter/resume-screener/internal/logger"
	"airecruiter/resume-screener/internal/models"
	"airecruiter/resume-screener/internal/repositories"
	"airecruiter/resume-screener/internal/services"
)

func main() {
	cfg := config.Load()

	zapLogger, err := logger.New(false, false)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		zapLogger.Fatal("failed to initialize database", zap.Error(err))
	}

	evalRepo := repositories.NewEvaluationRepository(db)
	docRepo := repositories.NewDocumentRepository(db)
	extractor := services.NewTextExtractor(zapLogger)

	geminiService, err := services.NewGeminiService(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.EmbedModel,
		cfg.Gemini.Timeout,
		zapLogger,
	)
	if err != nil {
		zapLogger.Fatal("failed to initialize Gemini client", zap.Error(err))
	}

	candidateIndex, err := services.NewCandidateIndex(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
		zapLogger,
	)
	if err != nil {
		zapLogger.Fatal("failed to initialize Qdrant client", zap.Error(err))
	}

	if err := candidateIndex.InitCollection(); err != nil {
		zapLogger.Fatal("failed to initialize Qdrant collection", zap.Error(err))
	}

	evals, err := evalRepo.FindAll()
	if err != nil {
		zapLogger.Fatal("failed to list evaluations", zap.Error(err))
	}

	ctx := context.Background()
	indexed := 0
	skipped := 0

	for i := range evals {
		eval := &evals[i]
		if eval.Status != models.StatusCompleted || eval.Score == nil || eval.Verdict == nil {
			skipped++
			continue
		}

		doc, err := docRepo.FindByID(eval.ResumeDocumentID)
		if err != nil {
			zapLogger.Warn("resume document missing, skipping",
				zap.Uint("evaluation_id", eval.ID),
				zap.Error(err),
			)
			skipped++
			continue
		}

		resumeText := extractor.Extract(doc.FilePath)
		if resumeText == "" {
			zapLogger.Warn("resume text empty, skipping", zap.Uint("evaluation_id", eval.ID))
			skipped++
			continue
		}

		embedding, err := geminiService.Embed(ctx, resumeText)
		if err != nil {
			zapLogger.Warn("embedding failed, skipping",
				zap.Uint("evaluation_id", eval.ID),
				zap.Error(err),
			)
			skipped++
			continue
		}

		err = candidateIndex.UpsertCandidate(ctx, eval.ID, eval.FileName, *eval.Score, *eval.Verdict, resumeText, embedding)
		if err != nil {
			zapLogger.Warn("upsert failed, skipping",
				zap.Uint("evaluation_id", eval.ID),
				zap.Error(err),
			)
			skipped++
			continue
		}

		indexed++
	}

	zapLogger.Info("reindex finished",
		zap.Int("indexed", indexed),
		zap.Int("skipped", skipped),
	)
}
