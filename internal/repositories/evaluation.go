package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"airecruiter/resume-screener/internal/models"
)

type EvaluationRepository interface {
	Create(eval *models.Evaluation) error
	FindByID(id uint) (*models.Evaluation, error)
	FindAll() ([]models.Evaluation, error)
	FindByScreeningID(screeningID uuid.UUID) ([]models.Evaluation, error)
	FindByMinScore(minScore float64) ([]models.Evaluation, error)
	UpdateStatus(id uint, status models.EvaluationStatus) error
	UpdateResult(id uint, result *EvaluationResultData) error
	UpdateError(id uint, errorMsg string) error
	FindPendingJobs(limit int) ([]models.Evaluation, error)
}

// EvaluationResultData carries the one-shot result write for a completed
// evaluation.
type EvaluationResultData struct {
	Score    float64
	Verdict  string
	Feedback string
}

type evaluationRepository struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) EvaluationRepository {
	return &evaluationRepository{db: db}
}

func (r *evaluationRepository) Create(eval *models.Evaluation) error {
	if err := r.db.Create(eval).Error; err != nil {
		return fmt.Errorf("failed to create evaluation: %w", err)
	}
	return nil
}

func (r *evaluationRepository) FindByID(id uint) (*models.Evaluation, error) {
	var eval models.Evaluation
	if err := r.db.Where("id = ?", id).First(&eval).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("evaluation not found")
		}
		return nil, fmt.Errorf("failed to find evaluation: %w", err)
	}
	return &eval, nil
}

// FindAll returns every stored evaluation, most recent first.
func (r *evaluationRepository) FindAll() ([]models.Evaluation, error) {
	var evals []models.Evaluation
	if err := r.db.Order("id DESC").Find(&evals).Error; err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	return evals, nil
}

func (r *evaluationRepository) FindByScreeningID(screeningID uuid.UUID) ([]models.Evaluation, error) {
	var evals []models.Evaluation
	err := r.db.
		Where("screening_id = ?", screeningID).
		Order("id ASC").
		Find(&evals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list screening evaluations: %w", err)
	}
	return evals, nil
}

// FindByMinScore returns completed evaluations scoring at or above the
// threshold, best first.
func (r *evaluationRepository) FindByMinScore(minScore float64) ([]models.Evaluation, error) {
	var evals []models.Evaluation
	err := r.db.
		Where("score >= ?", minScore).
		Order("score DESC").
		Find(&evals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list shortlisted evaluations: %w", err)
	}
	return evals, nil
}

func (r *evaluationRepository) UpdateStatus(id uint, status models.EvaluationStatus) error {
	result := r.db.Model(&models.Evaluation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("evaluation not found")
	}

	return nil
}

func (r *evaluationRepository) UpdateResult(id uint, data *EvaluationResultData) error {
	result := r.db.Model(&models.Evaluation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     models.StatusCompleted,
			"score":      data.Score,
			"verdict":    data.Verdict,
			"feedback":   data.Feedback,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update result: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("evaluation not found")
	}

	return nil
}

func (r *evaluationRepository) UpdateError(id uint, errorMsg string) error {
	result := r.db.Model(&models.Evaluation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.StatusFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("evaluation not found")
	}

	return nil
}

func (r *evaluationRepository) FindPendingJobs(limit int) ([]models.Evaluation, error) {
	var evals []models.Evaluation
	err := r.db.
		Where("status = ?", models.StatusQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&evals).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending jobs: %w", err)
	}

	return evals, nil
}
