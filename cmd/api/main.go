package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"airecruiter/resume-screener/internal/config"
	"airecruiter/resume-screener/internal/handlers"
	"airecruiter/resume-screener/internal/logger"
	"airecruiter/resume-screener/internal/repositories"
	"airecruiter/resume-screener/internal/scoring"
	"airecruiter/resume-screener/internal/services"
)

func main() {
	cfg := config.Load()

	zapLogger, err := logger.New(cfg.Server.Env != "development", cfg.Server.Env == "development")
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		zapLogger.Fatal("failed to initialize database", zap.Error(err))
	}
	zapLogger.Info("database connected and migrated")

	docRepo := repositories.NewDocumentRepository(db)
	screeningRepo := repositories.NewScreeningRepository(db)
	evalRepo := repositories.NewEvaluationRepository(db)

	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		zapLogger.Fatal("failed to create upload directory", zap.Error(err))
	}

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

	feedbackService := services.NewFeedbackService(geminiService, cfg.Worker.RetryMaxAttempts)
	engine := scoring.NewEngine(geminiService, feedbackService, zapLogger)

	evaluatorService := services.NewEvaluatorService(
		evalRepo,
		screeningRepo,
		docRepo,
		extractor,
		engine,
		geminiService,
		candidateIndex,
		zapLogger,
	)

	worker := services.NewWorker(evalRepo, evaluatorService, cfg.Worker.Concurrency, zapLogger)
	worker.Start(context.Background())

	uploadHandler := handlers.NewUploadHandler(docRepo, storageService, cfg.Storage.MaxFileSize)
	screeningHandler := handlers.NewScreeningHandler(screeningRepo, evalRepo, docRepo, worker)
	resultHandler := handlers.NewResultHandler(evalRepo, cfg.Screening.ShortlistMinScore)
	searchHandler := handlers.NewSearchHandler(geminiService, candidateIndex)

	app := fiber.New(fiber.Config{
		AppName:      "Resume Screener API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/upload", uploadHandler.HandleUpload)
	api.Post("/screenings", screeningHandler.HandleCreateScreening)
	api.Get("/screenings/:id", screeningHandler.HandleGetScreening)
	api.Get("/evaluations", resultHandler.HandleListResults)
	api.Get("/evaluations/:id", resultHandler.HandleGetResult)
	api.Get("/shortlist", resultHandler.HandleShortlist)
	api.Get("/candidates/search", searchHandler.HandleSearchCandidates)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Screener API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/upload",
				"POST /api/v1/screenings",
				"GET /api/v1/screenings/:id",
				"GET /api/v1/evaluations",
				"GET /api/v1/evaluations/:id",
				"GET /api/v1/shortlist",
				"GET /api/v1/candidates/search",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zapLogger.Info("shutting down server")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			zapLogger.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zapLogger.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zapLogger.Fatal("failed to start server", zap.Error(err))
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
