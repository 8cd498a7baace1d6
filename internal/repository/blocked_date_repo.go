package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"housequay/internal/domain"
)

type BlockedDateRepository struct {
	db *gorm.DB
}

func NewBlockedDateRepository(db *gorm.DB) *BlockedDateRepository {
	return &BlockedDateRepository{db: db}
}

func (r *BlockedDateRepository) Create(ctx context.Context, b *domain.BlockedDate) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BlockedDateRepository) Delete(ctx context.Context, listingID, id int64) error {
	res := r.db.WithContext(ctx).Where("listing_id = ?", listingID).Delete(&domain.BlockedDate{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BlockedDateRepository) ListForListing(ctx context.Context, listingID int64) ([]domain.BlockedDate, error) {
	var out []domain.BlockedDate
	err := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("start_date ASC").
		Find(&out).Error
	return out, err
}

// HasOverlap reports whether [start, end) intersects any blocked range on
// the listing, using the same half-open rule as bookings.
func (r *BlockedDateRepository) HasOverlap(ctx context.Context, listingID int64, start, end time.Time) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.BlockedDate{}).
		Where("listing_id = ? AND start_date < ? AND ? < end_date", listingID, end, start).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}
