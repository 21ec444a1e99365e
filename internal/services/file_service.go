package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/yoockh/admissions/internal/models"
	pgrepo "github.com/yoockh/admissions/internal/repositories/postgres"
	"github.com/yoockh/admissions/internal/utils"
)

// FileMetadata describes a document the client already put in object
// storage. Required fields are pointers so that an absent or null value is
// distinguishable from a zero score or an empty flag list.
type FileMetadata struct {
	ApplicationID     *string   `json:"application_id"`
	FileType          *string   `json:"file_type"`
	FilePath          *string   `json:"file_path"`
	FileName          *string   `json:"file_name"`
	FileSize          *int64    `json:"file_size"`
	FileURL           *string   `json:"file_url,omitempty"`
	AuthenticityScore *float64  `json:"authenticity_score"`
	AuthenticityFlags *[]string `json:"authenticity_flags"`
}

func (m *FileMetadata) firstMissing() string {
	switch {
	case m.ApplicationID == nil:
		return "application_id"
	case m.FileType == nil:
		return "file_type"
	case m.FilePath == nil:
		return "file_path"
	case m.FileName == nil:
		return "file_name"
	case m.FileSize == nil:
		return "file_size"
	case m.AuthenticityScore == nil:
		return "authenticity_score"
	case m.AuthenticityFlags == nil:
		return "authenticity_flags"
	}
	return ""
}

type FileService interface {
	Ingest(ctx context.Context, m *FileMetadata) (*models.ApplicationFile, error)
	ListByApplication(ctx context.Context, applicationID string) ([]models.ApplicationFile, error)
	ReviewQueue(ctx context.Context, limit int) ([]models.ApplicationFile, error)
}

type fileService struct {
	files pgrepo.ApplicationFileRepository
	audit AuditService
	now   func() time.Time
}

func NewFileService(files pgrepo.ApplicationFileRepository, audit AuditService) FileService {
	return &fileService{files: files, audit: audit, now: utcNow}
}

func invalidFileTypeMessage() string {
	names := make([]string, 0, len(models.FileTypes))
	for _, ft := range models.FileTypes {
		names = append(names, string(ft))
	}
	return "Invalid file_type. Must be one of: " + strings.Join(names, ", ")
}

func (s *fileService) Ingest(ctx context.Context, m *FileMetadata) (*models.ApplicationFile, error) {
	const op = "FileService.Ingest"

	if m == nil {
		return nil, utils.Validation(op, "file metadata is required")
	}
	if name := m.firstMissing(); name != "" {
		return nil, missingField(op, name)
	}

	fileType := models.FileType(*m.FileType)
	if !fileType.Valid() {
		return nil, utils.Validation(op, invalidFileTypeMessage())
	}

	flags := pq.StringArray{}
	flags = append(flags, (*m.AuthenticityFlags)...)

	now := s.now()
	row := &models.ApplicationFile{
		ID:                uuid.NewString(),
		ApplicationID:     *m.ApplicationID,
		FileType:          fileType,
		FilePath:          *m.FilePath,
		FileName:          *m.FileName,
		FileSize:          *m.FileSize,
		FileURL:           m.FileURL,
		AuthenticityScore: *m.AuthenticityScore,
		AuthenticityFlags: flags,
		RequiresReview:    models.RequiresReview(*m.AuthenticityScore, flags),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.files.Insert(ctx, row); err != nil {
		return nil, utils.Persistence(op, "failed to insert application file", err)
	}

	if s.audit != nil {
		review := row.RequiresReview
		s.audit.Record(ctx, &models.IntakeEvent{
			Type:           models.EventFileIngested,
			ApplicationID:  row.ApplicationID,
			FileID:         row.ID,
			FileType:       row.FileType,
			RequiresReview: &review,
			At:             now,
		})
	}
	return row, nil
}

func (s *fileService) ListByApplication(ctx context.Context, applicationID string) ([]models.ApplicationFile, error) {
	const op = "FileService.ListByApplication"

	if applicationID == "" {
		return nil, utils.Validation(op, "application_id is required")
	}

	rows, err := s.files.ListByApplication(ctx, applicationID)
	if err != nil {
		return nil, utils.Persistence(op, "failed to list application files", err)
	}
	if rows == nil {
		rows = []models.ApplicationFile{}
	}
	return rows, nil
}

func (s *fileService) ReviewQueue(ctx context.Context, limit int) ([]models.ApplicationFile, error) {
	const op = "FileService.ReviewQueue"

	rows, err := s.files.ListRequiringReview(ctx, clampLimit(limit))
	if err != nil {
		return nil, utils.Persistence(op, "failed to list files requiring review", err)
	}
	if rows == nil {
		rows = []models.ApplicationFile{}
	}
	return rows, nil
}
