package models

import (
	"time"

	"github.com/lib/pq"
)

type FileType string

const (
	FileTypeNRCPhoto       FileType = "nrc_photo"
	FileTypeGrade12Results FileType = "grade12_results"
	FileTypePaymentReceipt FileType = "payment_receipt"
)

// FileTypes lists the accepted document kinds in display order.
var FileTypes = []FileType{FileTypeNRCPhoto, FileTypeGrade12Results, FileTypePaymentReceipt}

func (t FileType) Valid() bool {
	for _, ft := range FileTypes {
		if t == ft {
			return true
		}
	}
	return false
}

// ReviewScoreThreshold is the lowest authenticity score that can skip manual review.
const ReviewScoreThreshold = 70

// RequiresReview reports whether staff must inspect a document: a score
// below the threshold or any authenticity flag is enough.
func RequiresReview(score float64, flags []string) bool {
	return score < ReviewScoreThreshold || len(flags) > 0
}

// ApplicationFile is a supporting document stored in object storage.
// ApplicationID is a lookup reference only; the application does not own it.
type ApplicationFile struct {
	ID            string   `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ApplicationID string   `gorm:"column:application_id;type:uuid;index" json:"application_id"`
	FileType      FileType `gorm:"column:file_type;type:text" json:"file_type"`
	FilePath      string   `gorm:"column:file_path;type:text" json:"file_path"`
	FileName      string   `gorm:"column:file_name;type:text" json:"file_name"`
	FileSize      int64    `gorm:"column:file_size;type:bigint" json:"file_size"`
	FileURL       *string  `gorm:"column:file_url;type:text" json:"file_url,omitempty"`

	AuthenticityScore float64        `gorm:"column:authenticity_score;type:numeric" json:"authenticity_score"`
	AuthenticityFlags pq.StringArray `gorm:"column:authenticity_flags;type:text[]" json:"authenticity_flags"`
	RequiresReview    bool           `gorm:"column:requires_review;index" json:"requires_review"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (ApplicationFile) TableName() string { return "application_files" }
