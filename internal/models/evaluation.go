package models

import (
	"time"

	"github.com/google/uuid"
)

type EvaluationStatus string

const (
	StatusQueued     EvaluationStatus = "queued"
	StatusProcessing EvaluationStatus = "processing"
	StatusCompleted  EvaluationStatus = "completed"
	StatusFailed     EvaluationStatus = "failed"
)

// Evaluation is the append-only record of one resume scored against one
// screening. Score, verdict and feedback are written exactly once when the
// evaluation completes.
type Evaluation struct {
	ID               uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	ScreeningID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"screening_id"`
	ResumeDocumentID uuid.UUID        `gorm:"type:uuid;not null" json:"resume_document_id"`
	FileName         string           `gorm:"type:text" json:"file_name"`
	Status           EvaluationStatus `gorm:"not null;default:'queued'" json:"status"`
	Score            *float64         `gorm:"type:decimal(5,2)" json:"score,omitempty"`
	Verdict          *string          `gorm:"type:text" json:"verdict,omitempty"`
	Feedback         *string          `gorm:"type:text" json:"feedback,omitempty"`
	ErrorMessage     *string          `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt        time.Time        `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time        `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	Screening      Screening `gorm:"foreignKey:ScreeningID" json:"-"`
	ResumeDocument Document  `gorm:"foreignKey:ResumeDocumentID" json:"-"`
}

func (Evaluation) TableName() string {
	return "evaluations"
}
