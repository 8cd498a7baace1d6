package repository

import (
	"context"

	"gorm.io/gorm"

	"housequay/internal/domain"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(ctx context.Context, rep *domain.Report) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *ReportRepository) GetByID(ctx context.Context, id int64) (*domain.Report, error) {
	var rep domain.Report
	if err := r.db.WithContext(ctx).First(&rep, id).Error; err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *ReportRepository) Update(ctx context.Context, rep *domain.Report) error {
	return r.db.WithContext(ctx).Save(rep).Error
}

func (r *ReportRepository) ListByReporter(ctx context.Context, reporterID int64, limit, offset int) ([]domain.Report, error) {
	var out []domain.Report
	err := r.db.WithContext(ctx).
		Where("reporter_id = ?", reporterID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	return out, err
}

func (r *ReportRepository) List(ctx context.Context, status string, limit, offset int) ([]domain.Report, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Report{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []domain.Report
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&out).Error
	return out, total, err
}
