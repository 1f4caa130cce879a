package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"airecruiter/resume-screener/internal/repositories"
)

// Worker drains queued evaluations through a fixed pool of goroutines.
// Each evaluation is independent: a failed item is recorded and the rest of
// the batch keeps going. A poller re-enqueues rows left queued across
// restarts.
type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueJob(evalID uint)
}

type worker struct {
	evalRepo    repositories.EvaluationRepository
	evaluator   EvaluatorService
	jobQueue    chan uint
	concurrency int
	wg          sync.WaitGroup
	stopChan    chan struct{}
	logger      *zap.Logger
}

func NewWorker(
	evalRepo repositories.EvaluationRepository,
	evaluator EvaluatorService,
	concurrency int,
	logger *zap.Logger,
) Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &worker{
		evalRepo:    evalRepo,
		evaluator:   evaluator,
		jobQueue:    make(chan uint, 100),
		concurrency: concurrency,
		stopChan:    make(chan struct{}),
		logger:      logger,
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	w.logger.Info("starting worker pool", zap.Int("concurrency", w.concurrency))

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	w.wg.Add(1)
	go w.pollPendingJobs(ctx)
}

// Stop implements Worker.
func (w *worker) Stop() {
	close(w.stopChan)
	w.wg.Wait()
	w.logger.Info("worker stopped")
}

// EnqueueJob implements Worker.
func (w *worker) EnqueueJob(evalID uint) {
	select {
	case w.jobQueue <- evalID:
		w.logger.Debug("evaluation enqueued", zap.Uint("evaluation_id", evalID))
	case <-w.stopChan:
		w.logger.Warn("worker stopped, cannot enqueue evaluation", zap.Uint("evaluation_id", evalID))
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			w.logger.Debug("worker goroutine stopped", zap.Int("worker_id", workerID))
			return
		case evalID := <-w.jobQueue:
			if err := w.evaluator.ProcessEvaluation(ctx, evalID); err != nil {
				w.logger.Error("evaluation failed",
					zap.Int("worker_id", workerID),
					zap.Uint("evaluation_id", evalID),
					zap.Error(err),
				)
			} else {
				w.logger.Info("evaluation completed",
					zap.Int("worker_id", workerID),
					zap.Uint("evaluation_id", evalID),
				)
			}
		}
	}
}

func (w *worker) pollPendingJobs(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ticker.C:
			pending, err := w.evalRepo.FindPendingJobs(10)
			if err != nil {
				w.logger.Warn("failed to fetch pending evaluations", zap.Error(err))
				continue
			}

			for _, job := range pending {
				w.EnqueueJob(job.ID)
			}
		}
	}
}
