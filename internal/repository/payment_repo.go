package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"housequay/internal/domain"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, s *domain.PaymentSession) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *PaymentRepository) GetByRef(ctx context.Context, ref string) (*domain.PaymentSession, error) {
	var s domain.PaymentSession
	if err := r.db.WithContext(ctx).Where("session_ref = ?", ref).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PaymentRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.PaymentSession, error) {
	var out []domain.PaymentSession
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// MarkCompletedIdempotent flips a created session to completed and reports
// whether this call did the flip. Repeated provider callbacks are no-ops.
func (r *PaymentRepository) MarkCompletedIdempotent(ctx context.Context, ref, rawPayload string, at time.Time) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&domain.PaymentSession{}).
		Where("session_ref = ? AND status = ?", ref, domain.SessionCreated).
		Updates(map[string]interface{}{
			"status":       domain.SessionCompleted,
			"completed_at": at,
			"raw_payload":  rawPayload,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *PaymentRepository) MarkFailed(ctx context.Context, ref, reason, rawPayload string) error {
	return r.db.WithContext(ctx).Model(&domain.PaymentSession{}).
		Where("session_ref = ?", ref).
		Updates(map[string]interface{}{
			"status":      domain.SessionFailed,
			"fail_reason": reason,
			"raw_payload": rawPayload,
		}).Error
}
