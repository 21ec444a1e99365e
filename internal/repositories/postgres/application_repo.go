package postgres

import (
	"context"
	"errors"

	"github.com/yoockh/admissions/internal/models"
	"github.com/yoockh/admissions/internal/utils"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Insert(ctx context.Context, a *models.Application) error
	GetByID(ctx context.Context, id string) (*models.Application, error)
	ListRecent(ctx context.Context, status models.ApplicationStatus, limit int) ([]models.Application, error)
}

type applicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Insert(ctx context.Context, a *models.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*models.Application, error) {
	var row models.Application
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &row, err
}

// ListRecent returns newest submissions first. An empty status matches all.
func (r *applicationRepo) ListRecent(ctx context.Context, status models.ApplicationStatus, limit int) ([]models.Application, error) {
	if limit <= 0 {
		limit = 50
	}

	q := r.db.WithContext(ctx)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	rows := []models.Application{}
	err := q.Order("submitted_at DESC").Limit(limit).Find(&rows).Error
	return rows, err
}
