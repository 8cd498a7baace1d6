package repository

import (
	"context"
	"math"

	"gorm.io/gorm"

	"housequay/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) DB() *gorm.DB { return r.db }

// CreateAndRecompute inserts the review and refreshes the listing's cached
// rating/review_count in one transaction, so the aggregate always reflects
// a snapshot that includes the new row.
func (r *ReviewRepository) CreateAndRecompute(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rv).Error; err != nil {
			return err
		}

		var agg struct {
			Avg   float64
			Count int64
		}
		err := tx.Model(&domain.Review{}).
			Select("COALESCE(AVG(overall), 0) AS avg, COUNT(1) AS count").
			Where("listing_id = ?", rv.ListingID).
			Scan(&agg).Error
		if err != nil {
			return err
		}

		rating := math.Round(agg.Avg*10) / 10
		return tx.Model(&domain.Listing{}).Where("id = ?", rv.ListingID).
			Updates(map[string]interface{}{"rating": rating, "review_count": agg.Count}).Error
	})
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var rv domain.Review
	if err := r.db.WithContext(ctx).First(&rv, id).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) GetByBooking(ctx context.Context, bookingID int64) (*domain.Review, error) {
	var rv domain.Review
	if err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&rv).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) ListByListing(ctx context.Context, listingID int64, limit, offset int) ([]domain.Review, error) {
	var out []domain.Review
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	return out, err
}

func (r *ReviewRepository) ListByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]domain.Review, error) {
	var out []domain.Review
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	return out, err
}

func (r *ReviewRepository) SetHostReply(ctx context.Context, id int64, reply string) (*domain.Review, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Review{}).Where("id = ?", id).
		Updates(map[string]interface{}{"host_reply": reply, "replied_at": gorm.Expr("CURRENT_TIMESTAMP")})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}
