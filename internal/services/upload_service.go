package services

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/yoockh/admissions/internal/models"
	"github.com/yoockh/admissions/internal/storage"
	"github.com/yoockh/admissions/internal/utils"
)

// UploadedDocument is what a client forwards to the file ingestor.
type UploadedDocument struct {
	Bucket      string          `json:"bucket"`
	FilePath    string          `json:"file_path"`
	FileName    string          `json:"file_name"`
	FileSize    int64           `json:"file_size"`
	FileType    models.FileType `json:"file_type"`
	ContentType string          `json:"content_type"`
}

type UploadService interface {
	Upload(ctx context.Context, applicationID string, fileType models.FileType, fileName string, fileSize int64, contentType, ext string, r io.Reader) (*UploadedDocument, error)
}

type uploadService struct {
	uploader storage.Uploader
	bucket   string
}

func NewUploadService(uploader storage.Uploader, bucket string) UploadService {
	return &uploadService{uploader: uploader, bucket: bucket}
}

func (s *uploadService) Upload(ctx context.Context, applicationID string, fileType models.FileType, fileName string, fileSize int64, contentType, ext string, r io.Reader) (*UploadedDocument, error) {
	const op = "UploadService.Upload"

	if applicationID == "" {
		return nil, missingField(op, "application_id")
	}
	if !fileType.Valid() {
		return nil, utils.Validation(op, invalidFileTypeMessage())
	}
	if s.uploader == nil || s.bucket == "" {
		return nil, utils.E(utils.CodeUnavailable, op, "object storage is not configured", nil)
	}

	objectName := "applications/" + applicationID + "/" + string(fileType) + "/" + uuid.NewString() + ext

	storedPath, err := s.uploader.Upload(ctx, s.bucket, objectName, contentType, r)
	if err != nil {
		return nil, utils.Persistence(op, "failed to upload file", err)
	}

	return &UploadedDocument{
		Bucket:      s.bucket,
		FilePath:    storedPath,
		FileName:    fileName,
		FileSize:    fileSize,
		FileType:    fileType,
		ContentType: contentType,
	}, nil
}
