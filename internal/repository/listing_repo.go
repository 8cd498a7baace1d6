package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"housequay/internal/domain"
)

type ListingFilters struct {
	City       string
	State      string
	MinPrice   float64
	MaxPrice   float64
	BoatSize   string
	MinLength  float64
	Status     string
	HostID     int64
	OnlyLive   bool // active status + is_active, the public search default
	Limit      int
	Offset     int
}

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

func (r *ListingRepository) DB() *gorm.DB { return r.db }

func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *ListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	var l domain.Listing
	if err := r.db.WithContext(ctx).Where("deleted_at IS NULL").First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *ListingRepository) Update(ctx context.Context, l *domain.Listing) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *ListingRepository) UpdateStatus(ctx context.Context, id int64, status domain.ListingStatus, reason string) error {
	updates := map[string]interface{}{"status": status}
	if reason != "" {
		updates["rejected_reason"] = reason
	}
	return r.db.WithContext(ctx).Model(&domain.Listing{}).Where("id = ?", id).Updates(updates).Error
}

// SoftDelete hides a listing from all reads without dropping its rows.
func (r *ListingRepository) SoftDelete(ctx context.Context, id int64, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&domain.Listing{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateAggregates stores the recomputed review cache on the listing row.
func (r *ListingRepository) UpdateAggregates(ctx context.Context, id int64, rating float64, count int) error {
	return r.db.WithContext(ctx).Model(&domain.Listing{}).Where("id = ?", id).
		Updates(map[string]interface{}{"rating": rating, "review_count": count}).Error
}

func (r *ListingRepository) Search(ctx context.Context, f ListingFilters) ([]domain.Listing, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Listing{}).Where("deleted_at IS NULL")

	if f.OnlyLive {
		q = q.Where("status = ? AND is_active = ?", domain.ListingActive, true)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.HostID > 0 {
		q = q.Where("host_id = ?", f.HostID)
	}
	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}
	if f.State != "" {
		q = q.Where("state = ?", f.State)
	}
	if f.MinPrice > 0 {
		q = q.Where("price_per_night >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("price_per_night <= ?", f.MaxPrice)
	}
	if f.BoatSize != "" {
		q = q.Where("boat_size = ?", f.BoatSize)
	}
	if f.MinLength > 0 {
		q = q.Where("max_boat_length >= ?", f.MinLength)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var listings []domain.Listing
	err := q.Order("created_at DESC").Limit(f.Limit).Offset(f.Offset).Find(&listings).Error
	return listings, total, err
}
