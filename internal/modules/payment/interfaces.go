package payment

import (
	"context"
	"time"

	"housequay/internal/domain"
)

type SessionRepository interface {
	Create(ctx context.Context, s *domain.PaymentSession) error
	GetByRef(ctx context.Context, ref string) (*domain.PaymentSession, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.PaymentSession, error)
	MarkCompletedIdempotent(ctx context.Context, ref, rawPayload string, at time.Time) (bool, error)
	MarkFailed(ctx context.Context, ref, reason, rawPayload string) error
}

type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus, ref string) error
}
