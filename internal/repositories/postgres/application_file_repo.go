package postgres

import (
	"context"

	"github.com/yoockh/admissions/internal/models"
	"gorm.io/gorm"
)

type ApplicationFileRepository interface {
	Insert(ctx context.Context, f *models.ApplicationFile) error
	ListByApplication(ctx context.Context, applicationID string) ([]models.ApplicationFile, error)
	ListRequiringReview(ctx context.Context, limit int) ([]models.ApplicationFile, error)
}

type applicationFileRepo struct {
	db *gorm.DB
}

func NewApplicationFileRepo(db *gorm.DB) ApplicationFileRepository {
	return &applicationFileRepo{db: db}
}

func (r *applicationFileRepo) Insert(ctx context.Context, f *models.ApplicationFile) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *applicationFileRepo) ListByApplication(ctx context.Context, applicationID string) ([]models.ApplicationFile, error) {
	rows := []models.ApplicationFile{}
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *applicationFileRepo) ListRequiringReview(ctx context.Context, limit int) ([]models.ApplicationFile, error) {
	if limit <= 0 {
		limit = 50
	}

	rows := []models.ApplicationFile{}
	err := r.db.WithContext(ctx).
		Where("requires_review = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
