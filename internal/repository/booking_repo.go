package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"housequay/internal/domain"
)

// ErrOverlap is returned when a booking insert loses the race against a
// concurrent insert and the database exclusion constraint fires.
var ErrOverlap = errors.New("booking range overlaps an existing booking")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) DB() *gorm.DB { return r.db }

/// HasOverlap applies the half-open overlap rule against active bookings:
// [A,B) conflicts with [C,D) iff A < D and C < B. Boundary touches
// (A == D or B == C) do not conflict.
func (r *BookingRepository) HasOverlap(ctx context.Context, listingID int64, checkIn, checkOut time.Time) (bool, error) {
	var cnt int64
	q := `
SELECT COUNT(1)
FROM bookings
WHERE listing_id = ?
  AND status IN ('pending', 'confirmed')
  AND check_in < ?
  AND ? < check_out
`
	tx := r.db.WithContext(ctx).Raw(q, listingID, checkOut, checkIn).Scan(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// CreateIfAvailable re-checks the overlap inside a transaction before the
// insert, and maps a constraint violation (idx_bookings_no_overlap) to
// ErrOverlap. The constraint is the final arbiter under concurrency; the
// in-transaction check keeps the common path clean.
func (r *BookingRepository) CreateIfAvailable(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		err := tx.Raw(`
SELECT COUNT(1)
FROM bookings
WHERE listing_id = ?
  AND status IN ('pending', 'confirmed')
  AND check_in < ?
  AND ? < check_out
`, b.ListingID, b.CheckOut, b.CheckIn).Scan(&cnt).Error
		if err != nil {
			return err
		}
		if cnt > 0 {
			return ErrOverlap
		}

		if err := tx.Create(b).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && (pgErr.Code == "23505" || pgErr.Code == "23P01") {
				return ErrOverlap
			}
			return err
		}
		return nil
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) GetByIDWithListing(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).Preload("Listing").First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) ListByGuest(ctx context.Context, guestID int64, limit, offset int) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Listing").
		Where("guest_id = ?", guestID).
		Order("check_in DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	return out, err
}

func (r *BookingRepository) ListByHost(ctx context.Context, hostID int64, limit, offset int) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Listing").
		Preload("Guest").
		Where("host_id = ?", hostID).
		Order("check_in DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	return out, err
}

func (r *BookingRepository) ListForListing(ctx context.Context, listingID int64, from, to time.Time) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Where("listing_id = ? AND status IN ('pending', 'confirmed') AND check_in < ? AND ? < check_out",
			listingID, to, from).
		Order("check_in ASC").
		Find(&out).Error
	return out, err
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).Model(&domain.Booking{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *BookingRepository) Cancel(ctx context.Context, id, cancelledBy int64, reason string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&domain.Booking{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":              domain.BookingCancelled,
			"cancelled_at":        at,
			"cancelled_by":        cancelledBy,
			"cancellation_reason": reason,
		}).Error
}

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus, ref string) error {
	updates := map[string]interface{}{"payment_status": status}
	if ref != "" {
		updates["payment_ref"] = ref
	}
	return r.db.WithContext(ctx).Model(&domain.Booking{}).Where("id = ?", id).
		Updates(updates).Error
}

func (r *BookingRepository) CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).Where("status = ?", status).Count(&cnt).Error
	return cnt, err
}
