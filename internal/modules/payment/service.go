package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"housequay/internal/domain"
)

type Config struct {
	CheckoutBaseURL string
	SuccessURL      string
	Currency        string
}

type Service struct {
	sessions SessionRepository
	bookings BookingRepository
	cfg      Config
}

func NewService(sessions SessionRepository, bookings BookingRepository, cfg Config) *Service {
	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}
	return &Service{sessions: sessions, bookings: bookings, cfg: cfg}
}

// CreateCheckout opens a payment session for a booking the actor owns.
// Only pending or confirmed bookings with an unpaid balance are payable.
func (s *Service) CreateCheckout(ctx context.Context, actor domain.Actor, bookingID int64) (*CheckoutResponse, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingGone
		}
		return nil, err
	}

	if b.GuestID != actor.UserID {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingPending && b.Status != domain.BookingConfirmed {
		return nil, ErrNotPayable
	}
	if b.PaymentStatus == domain.PaymentCompleted {
		return nil, ErrAlreadyPaid
	}

	ref := uuid.NewString()
	session := &domain.PaymentSession{
		BookingID:   b.ID,
		SessionRef:  ref,
		Amount:      b.Total,
		Currency:    s.cfg.Currency,
		Status:      domain.SessionCreated,
		CheckoutURL: fmt.Sprintf("%s/%s", s.cfg.CheckoutBaseURL, ref),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	if err := s.bookings.UpdatePaymentStatus(ctx, b.ID, domain.PaymentProcessing, ref); err != nil {
		return nil, err
	}

	return &CheckoutResponse{
		SessionRef:  session.SessionRef,
		CheckoutURL: session.CheckoutURL,
		Amount:      session.Amount,
		Currency:    session.Currency,
	}, nil
}

// HandleProviderResult reconciles a processor callback. Completion is
// idempotent: a replayed success callback leaves the booking untouched.
func (s *Service) HandleProviderResult(ctx context.Context, result ProviderResult) error {
	session, err := s.sessions.GetByRef(ctx, result.SessionRef)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownSession
		}
		return err
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}

	switch result.Status {
	case "success", "completed":
		flipped, err := s.sessions.MarkCompletedIdempotent(ctx, session.SessionRef, string(raw), time.Now().UTC())
		if err != nil {
			return err
		}
		if !flipped {
			return nil
		}
		return s.bookings.UpdatePaymentStatus(ctx, session.BookingID, domain.PaymentCompleted, session.SessionRef)
	case "failed", "cancelled":
		if err := s.sessions.MarkFailed(ctx, session.SessionRef, result.Reason, string(raw)); err != nil {
			return err
		}
		return s.bookings.UpdatePaymentStatus(ctx, session.BookingID, domain.PaymentFailed, session.SessionRef)
	default:
		return ErrValidation
	}
}

// ListForBooking returns the session history for a booking the actor may see.
func (s *Service) ListForBooking(ctx context.Context, actor domain.Actor, bookingID int64) ([]domain.PaymentSession, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingGone
		}
		return nil, err
	}
	if b.GuestID != actor.UserID && b.HostID != actor.UserID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	return s.sessions.ListByBooking(ctx, bookingID)
}
