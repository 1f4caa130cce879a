package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Screening holds the batch-shared inputs for one screening run: the job
// description document plus the keyword set, strictness, and model choice
// every resume in the batch is evaluated against.
type Screening struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JDDocumentID uuid.UUID `gorm:"type:uuid;not null" json:"jd_document_id"`
	Keywords     string    `gorm:"type:text" json:"keywords"`
	Strictness   int       `gorm:"not null;default:70" json:"strictness"`
	Model        string    `gorm:"type:text;not null;default:'fast'" json:"model"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	JDDocument Document `gorm:"foreignKey:JDDocumentID" json:"-"`
}

func (Screening) TableName() string {
	return "screenings"
}

// KeywordList splits the stored comma-separated keywords back into the
// ordered set the scoring engine expects. Entries are not trimmed here;
// the keyword matcher trims per entry.
func (s *Screening) KeywordList() []string {
	if s.Keywords == "" {
		return nil
	}
	return strings.Split(s.Keywords, ",")
}
